// This file is part of vcsplay.
//
// vcsplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vcsplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vcsplay.  If not, see <https://www.gnu.org/licenses/>.

package television

import (
	"fmt"
	"strings"
)

// The native dimensions of the display. Width is measured in colour clocks
// and Height in scanlines.
const (
	Width  = 228
	Height = 262
)

// Horizontal and vertical regions of the screen. These are used to place
// the guide rectangles in the overlay.
const (
	HBlank       = 68
	VisibleWidth = Width - HBlank
	VSync        = 3
	VBlank       = 37
	Overscan     = 30
)

// Mode selects how a decoded colour is written into the image.
type Mode int

// List of valid Mode values.
const (
	ComponentSplit Mode = iota
	PackedWord
)

func (m Mode) String() string {
	switch m {
	case ComponentSplit:
		return "split"
	case PackedWord:
		return "packed"
	}
	return fmt.Sprintf("unknown mode (%d)", int(m))
}

// ParseMode converts the string representation of a Mode to the Mode
// value. The match is case insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "split":
		return ComponentSplit, nil
	case "packed":
		return PackedWord, nil
	}
	return ComponentSplit, fmt.Errorf("television: unrecognised mode (%s)", s)
}
