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
	"bytes"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/vcsplay/vcsplay/palette"
	"github.com/vcsplay/vcsplay/television"
	"github.com/vcsplay/vcsplay/test"
)

// colour map with alpha values that are not opaque. the assembler must force
// the alpha to be opaque in both modes
func translucentMap() *palette.ColorMap {
	var cm palette.ColorMap
	for i := range cm {
		cm[i] = uint32(i)<<24 | uint32(255-i)<<16 | uint32(i*2)<<8 | uint32(i)
	}
	return &cm
}

func randomFrame(rnd *rand.Rand) []uint8 {
	frame := make([]uint8, television.Width*television.Height)
	for i := range frame {
		frame[i] = uint8(rnd.IntN(256))
	}
	return frame
}

func TestModesIdentical(t *testing.T) {
	cm := translucentMap()
	rnd := rand.New(rand.NewPCG(1, 2))

	for _, halve := range []bool{false, true} {
		frame := randomFrame(rnd)

		split := television.NewAssembler(cm, television.ComponentSplit, halve)
		packed := television.NewAssembler(cm, television.PackedWord, halve)

		a := split.Assemble(frame)
		b := packed.Assemble(frame)
		test.ExpectSuccess(t, bytes.Equal(a.Pix, b.Pix), "halve", halve)

		for i := 3; i < len(a.Pix); i += 4 {
			if !test.ExpectEquality(t, a.Pix[i], uint8(255), "alpha", i) {
				break
			}
		}
	}
}

func TestDecode(t *testing.T) {
	cm := translucentMap()

	asm := television.NewAssembler(cm, television.PackedWord, false)
	row := make([]uint8, television.Width)
	row[0] = 10
	row[1] = 200
	asm.Commit(5, row)

	img := asm.Image()
	test.ExpectEquality(t, img.RGBAAt(0, 5), color.RGBA{R: 10, G: 245, B: 20, A: 255})

	// index outside of colour map decodes to black
	test.ExpectEquality(t, img.RGBAAt(1, 5), color.RGBA{A: 255})

	// the same index halved is inside the colour map
	asm = television.NewAssembler(cm, television.ComponentSplit, true)
	asm.Commit(5, row)
	img = asm.Image()
	test.ExpectEquality(t, img.RGBAAt(0, 5), color.RGBA{R: 5, G: 250, B: 10, A: 255})
	test.ExpectEquality(t, img.RGBAAt(1, 5), color.RGBA{R: 100, G: 155, B: 200, A: 255})
}

func TestPartialUpdates(t *testing.T) {
	cm := palette.NTSC()
	rnd := rand.New(rand.NewPCG(3, 4))
	frame := randomFrame(rnd)

	full := television.NewAssembler(&cm, television.ComponentSplit, true)
	full.Assemble(frame)

	// commit one scanline at a time. only the last scanline completes the frame
	part := television.NewAssembler(&cm, television.ComponentSplit, true)
	for y := 0; y < television.Height; y++ {
		complete := part.Commit(y, frame[y*television.Width:(y+1)*television.Width])
		test.ExpectEquality(t, complete, y == television.Height-1, y)
	}
	test.ExpectSuccess(t, bytes.Equal(full.Image().Pix, part.Image().Pix))

	// rows can arrive in any order and in blocks of more than one row
	part = television.NewAssembler(&cm, television.ComponentSplit, true)
	test.ExpectSuccess(t, part.Commit(100, frame[100*television.Width:]))
	test.ExpectFailure(t, part.Commit(0, frame[:100*television.Width]))
	test.ExpectSuccess(t, bytes.Equal(full.Image().Pix, part.Image().Pix))
}

func TestCommitBounds(t *testing.T) {
	cm := palette.NTSC()
	asm := television.NewAssembler(&cm, television.PackedWord, false)

	// out of range rows are ignored
	test.ExpectFailure(t, asm.Commit(-1, make([]uint8, television.Width)))
	test.ExpectFailure(t, asm.Commit(television.Height, make([]uint8, television.Width)))

	// data beyond the end of the image is ignored but the frame is complete
	test.ExpectSuccess(t, asm.Commit(television.Height-1, make([]uint8, television.Width*2)))

	// empty commit is harmless
	test.ExpectFailure(t, asm.Commit(0, nil))
}

func TestMode(t *testing.T) {
	m, err := television.ParseMode("Packed")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, television.PackedWord)
	test.ExpectEquality(t, m.String(), "packed")

	m, err = television.ParseMode("split")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, television.ComponentSplit)

	_, err = television.ParseMode("rgb")
	test.ExpectFailure(t, err)
}
