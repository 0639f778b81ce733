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

package palette

import (
	"image/color"
	"math"
)

func clamp(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

// phase distance between adjacent hues on the colour wheel. this is the value
// arrived at by following the service manual for the console
const ntscPhase = 26.7

// NTSC returns the colour map for an NTSC console. Palette index i
// corresponds to the colour register value i<<1, ie. the low bit of the
// register (which the console ignores) is dropped.
func NTSC() ColorMap {
	var cm ColorMap
	for i := range cm {
		cm[i] = Pack(ntsc(uint8(i << 1)))
	}
	return cm
}

// ntsc converts a colour register value to RGB using the YIQ colour space.
func ntsc(reg uint8) color.RGBA {
	lum := (reg & 0x0e) >> 1
	hue := (reg & 0xf0) >> 4

	// the min/max values for the Y component of greyscale hues
	const (
		minY = 0.35
		maxY = 1.00
	)

	Y := minY + (float64(lum)/8)*(maxY-minY)

	// hue zero has no colour component
	if hue == 0x00 {
		if lum == 0x00 {
			return color.RGBA{A: 255}
		}
		g := uint8(Y * 255)
		return color.RGBA{R: g, G: g, B: g, A: 255}
	}

	// hue 1 is gold, which is the same phase as the colour burst. the
	// adjustment of -57.28 degrees is 16 colour clocks at 3.58MHz
	const (
		phiBurst = 180
		phiAdj   = -57.28
	)
	phi := (float64(hue)-1)*-ntscPhase + phiAdj + phiBurst
	phi *= math.Pi / 180

	const saturation = 0.3

	I := Y * saturation * math.Sin(phi)
	Q := Y * saturation * math.Cos(phi)

	// NTSC 1953 colorimetry
	R := clamp(Y + (0.956 * I) + (0.619 * Q))
	G := clamp(Y - (0.272 * I) - (0.647 * Q))
	B := clamp(Y - (1.106 * I) + (1.703 * Q))

	return color.RGBA{
		R: uint8(R * 255.0),
		G: uint8(G * 255.0),
		B: uint8(B * 255.0),
		A: 255,
	}
}
