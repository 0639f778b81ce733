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

package palette_test

import (
	"image/color"
	"testing"

	"github.com/vcsplay/vcsplay/palette"
	"github.com/vcsplay/vcsplay/test"
)

func TestPacking(t *testing.T) {
	col := color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x78}
	test.ExpectEquality(t, palette.Pack(col), 0x12345678)
	test.ExpectEquality(t, palette.Unpack(0x12345678), col)
}

func TestNTSC(t *testing.T) {
	cm := palette.NTSC()

	// index zero is black and the greyscale row has equal components
	test.ExpectEquality(t, cm[0], palette.Black)
	for i := 1; i < 8; i++ {
		c := palette.Unpack(cm[i])
		test.ExpectEquality(t, c.R, c.G, i)
		test.ExpectEquality(t, c.G, c.B, i)
	}

	// luminance increases along the greyscale row
	test.ExpectSuccess(t, cm[7] > cm[1])

	// every entry is opaque
	for i := range cm {
		test.ExpectEquality(t, palette.Unpack(cm[i]).A, uint8(255), i)
	}

	// colour entries are not grey
	c := palette.Unpack(cm[0x1c>>1])
	test.ExpectSuccess(t, c.R != c.B)
}

func TestLookup(t *testing.T) {
	cm := palette.NTSC()
	test.ExpectEquality(t, cm.Lookup(5), cm[5])
	test.ExpectEquality(t, cm.Lookup(palette.NumColors), palette.Black)
	test.ExpectEquality(t, cm.Lookup(255), palette.Black)
}
