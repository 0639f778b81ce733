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

package television_test

import (
	"image/color"
	"testing"

	"github.com/vcsplay/vcsplay/palette"
	"github.com/vcsplay/vcsplay/television"
	"github.com/vcsplay/vcsplay/test"
)

func TestOverlay(t *testing.T) {
	cm := palette.NTSC()
	asm := television.NewAssembler(&cm, television.ComponentSplit, false)
	src := asm.Assemble(make([]uint8, television.Width*television.Height))

	dst := television.Overlay(nil, src)
	test.DemandEquality(t, dst.Bounds(), src.Bounds())

	// source image is unchanged
	test.ExpectEquality(t, src.RGBAAt(0, 0), color.RGBA{A: 255})

	// hblank column is lightened equally in all components
	c := dst.RGBAAt(10, 100)
	test.ExpectInequality(t, c.R, uint8(0))
	test.ExpectEquality(t, c.R, c.G)
	test.ExpectEquality(t, c.G, c.B)
	test.ExpectEquality(t, c.A, uint8(255))

	// vsync band is red, vblank band is green and overscan is blue
	c = dst.RGBAAt(100, 1)
	test.ExpectSuccess(t, c.R > 0 && c.G == 0 && c.B == 0)
	c = dst.RGBAAt(100, 20)
	test.ExpectSuccess(t, c.R == 0 && c.G > 0 && c.B == 0)
	c = dst.RGBAAt(100, television.Height-1)
	test.ExpectSuccess(t, c.R == 0 && c.G == 0 && c.B > 0)

	// visible screen is untouched
	test.ExpectEquality(t, dst.RGBAAt(100, 100), color.RGBA{A: 255})

	// destination is reused when it is the correct size
	again := television.Overlay(dst, src)
	test.ExpectSuccess(t, again == dst)
}
