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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"
	"sync"
)

// the alpha component is always opaque and is not included in the digest
const pixelDepth = 3

// Video is an implementation of the presentation surface interface that
// produces a chained hash of every frame presented.
type Video struct {
	crit sync.Mutex

	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// FrameNum returns the number of frames that have contributed to the
// digest since the last reset.
func (dig *Video) FrameNum() int {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return dig.frameNum
}

// Present implements the presentation surface interface.
func (dig *Video) Present(frame *image.RGBA) error {
	dig.crit.Lock()
	defer dig.crit.Unlock()

	b := frame.Bounds()

	// length of pixels array contains enough room for the previous frame's
	// digest value
	l := len(dig.digest) + b.Dx()*b.Dy()*pixelDepth
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	i := copy(dig.pixels, dig.digest[:])

	for y := b.Min.Y; y < b.Max.Y; y++ {
		o := frame.PixOffset(b.Min.X, y)
		for x := 0; x < b.Dx(); x++ {
			dig.pixels[i] = frame.Pix[o]
			dig.pixels[i+1] = frame.Pix[o+1]
			dig.pixels[i+2] = frame.Pix[o+2]
			i += pixelDepth
			o += 4
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++

	return nil
}
