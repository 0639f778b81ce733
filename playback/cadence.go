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

package playback

import (
	"errors"
	"fmt"
	"time"

	"github.com/vcsplay/vcsplay/television"
)

// Cadence is the interval between ticks and the number of cycles the core
// is advanced by on each tick. The Cadence of a Session does not change.
type Cadence struct {
	Interval time.Duration
	Cycles   uint32
}

// DefaultCadence is the reference cadence. Slightly more than one frame of
// cycles every ten milliseconds.
var DefaultCadence = Cadence{
	Interval: 10 * time.Millisecond,
	Cycles:   20000,
}

// Validate returns an error if the cadence cannot be used.
func (c Cadence) Validate() error {
	if c.Interval <= 0 {
		return errors.New("playback: cadence interval must be positive")
	}
	if c.Cycles == 0 {
		return errors.New("playback: cadence cycles must be positive")
	}
	return nil
}

func (c Cadence) String() string {
	return fmt.Sprintf("%d cycles every %v", c.Cycles, c.Interval)
}

// Settings for a Session.
type Settings struct {
	Cadence Cadence

	// how decoded colours are written to the image
	Mode television.Mode

	// halve pixel values before using them as palette indices
	Halve bool

	// draw the guide overlay over every presented frame
	Overlay bool
}

// DefaultSettings are suitable for the testcard core.
var DefaultSettings = Settings{
	Cadence: DefaultCadence,
	Mode:    television.ComponentSplit,
	Halve:   true,
}
