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

// Package palette defines the colour map produced by a hardware core. The
// colour map is a fixed table of packed colours indexed by the palette index
// found in the core's pixel output.
//
// Packed colours are stored as 0xRRGGBBAA. The Unpack() function splits a
// packed colour into its components.
package palette

import (
	"image/color"
)

// NumColors is the number of entries in every colour map.
const NumColors = 128

// Black is the colour used for any palette index outside of the colour map.
const Black uint32 = 0x000000ff

// ColorMap is the table of packed colours. A ColorMap is populated once by
// the hardware core and is read-only after that.
type ColorMap [NumColors]uint32

// Lookup returns the packed colour for palette index. Indices outside of
// the map return Black.
func (cm *ColorMap) Lookup(idx uint8) uint32 {
	if int(idx) >= NumColors {
		return Black
	}
	return cm[idx]
}

// Pack a colour into the 0xRRGGBBAA form.
func Pack(col color.RGBA) uint32 {
	return uint32(col.R)<<24 | uint32(col.G)<<16 | uint32(col.B)<<8 | uint32(col.A)
}

// Unpack a packed colour into its components. The alpha component is
// returned as it is in the packed value.
func Unpack(packed uint32) color.RGBA {
	return color.RGBA{
		R: uint8(packed >> 24),
		G: uint8(packed >> 16),
		B: uint8(packed >> 8),
		A: uint8(packed),
	}
}
