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
	"encoding/binary"
	"image"

	"github.com/vcsplay/vcsplay/palette"
)

// number of bytes for each pixel in the image
const pixelDepth = 4

// Assembler decodes palette indices into an image of the native display
// size. It is not safe for concurrent use.
type Assembler struct {
	colors *palette.ColorMap
	mode   Mode
	halve  bool

	img *image.RGBA
}

// NewAssembler is the preferred method of initialisation for the Assembler
// type. The colour map is not copied and must not change while the
// Assembler is in use.
func NewAssembler(colors *palette.ColorMap, mode Mode, halve bool) *Assembler {
	return &Assembler{
		colors: colors,
		mode:   mode,
		halve:  halve,
		img:    image.NewRGBA(image.Rect(0, 0, Width, Height)),
	}
}

// Mode returns the mode the Assembler was created with.
func (a *Assembler) Mode() Mode {
	return a.mode
}

// Image returns the image being assembled. The image is reused by the
// Assembler so callers that need to keep the image should take a copy.
func (a *Assembler) Image() *image.RGBA {
	return a.img
}

// Commit palette indices to the image, starting at the beginning of the
// specified row. The length of indices is normally a multiple of the image
// width but this is not required. Data that would fall outside the image is
// ignored.
//
// Returns true if the commit reached the last pixel of the image, meaning
// that the frame is complete.
func (a *Assembler) Commit(row int, indices []uint8) bool {
	if row < 0 || row >= Height {
		return false
	}

	start := row * Width
	if n := Width*Height - start; len(indices) > n {
		indices = indices[:n]
	}

	pix := a.img.Pix[start*pixelDepth : (start+len(indices))*pixelDepth]

	switch a.mode {
	case PackedWord:
		for i, p := range indices {
			col := a.lookup(p)
			binary.BigEndian.PutUint32(pix[i*pixelDepth:], col|0xff)
		}
	default:
		for i, p := range indices {
			col := a.lookup(p)
			o := i * pixelDepth
			pix[o] = uint8(col >> 24)
			pix[o+1] = uint8(col >> 16)
			pix[o+2] = uint8(col >> 8)
			pix[o+3] = 255
		}
	}

	return start+len(indices) == Width*Height
}

// Assemble a complete frame of palette indices and return the image. The
// returned image is the same as that returned by Image().
func (a *Assembler) Assemble(frame []uint8) *image.RGBA {
	a.Commit(0, frame)
	return a.img
}

func (a *Assembler) lookup(p uint8) uint32 {
	if a.halve {
		p >>= 1
	}
	return a.colors.Lookup(p)
}
