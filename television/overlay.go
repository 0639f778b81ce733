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
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Guide is a translucent rectangle drawn over the screen to mark one of the
// blanking or sync regions.
type Guide struct {
	Label string
	Rect  image.Rectangle
	Color color.NRGBA
}

// Guides is the list of guide rectangles drawn by Overlay().
var Guides = []Guide{
	{
		Label: "vsync",
		Rect:  image.Rect(HBlank, 0, Width, VSync),
		Color: color.NRGBA{R: 255, A: 77},
	},
	{
		Label: "vblank",
		Rect:  image.Rect(HBlank, VSync, Width, VSync+VBlank),
		Color: color.NRGBA{G: 255, A: 77},
	},
	{
		Label: "overscan",
		Rect:  image.Rect(HBlank, Height-Overscan, Width, Height),
		Color: color.NRGBA{B: 255, A: 77},
	},
	{
		Label: "hblank",
		Rect:  image.Rect(0, 0, HBlank, Height),
		Color: color.NRGBA{R: 255, G: 255, B: 255, A: 77},
	},
}

// Overlay copies src to dst and then draws the guide rectangles over dst.
// If dst is nil a new image is allocated. The dst image is returned.
func Overlay(dst *image.RGBA, src *image.RGBA) *image.RGBA {
	if dst == nil || dst.Bounds() != src.Bounds() {
		dst = image.NewRGBA(src.Bounds())
	}
	draw.Copy(dst, image.Point{}, src, src.Bounds(), draw.Src, nil)
	for _, g := range Guides {
		draw.Draw(dst, g.Rect, &image.Uniform{g.Color}, image.Point{}, draw.Over)
	}
	return dst
}
