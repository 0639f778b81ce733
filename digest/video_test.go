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

package digest_test

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/vcsplay/vcsplay/digest"
	"github.com/vcsplay/vcsplay/test"
)

func TestVideo(t *testing.T) {
	var dig digest.Digest = digest.NewVideo()
	vid := dig.(*digest.Video)

	zero := strings.Repeat("0", 40)
	test.ExpectEquality(t, dig.Hash(), zero)

	frame := image.NewRGBA(image.Rect(0, 0, 4, 4))
	test.ExpectSuccess(t, vid.Present(frame))
	first := dig.Hash()
	test.ExpectInequality(t, first, zero)

	// the same frame presented a second time produces a different hash
	// because the hashes are chained
	test.ExpectSuccess(t, vid.Present(frame))
	second := dig.Hash()
	test.ExpectInequality(t, second, first)
	test.ExpectEquality(t, vid.FrameNum(), 2)

	// after a reset the same sequence of frames produces the same hashes
	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), zero)
	test.ExpectEquality(t, vid.FrameNum(), 0)
	test.ExpectSuccess(t, vid.Present(frame))
	test.ExpectEquality(t, dig.Hash(), first)

	// alpha channel does not contribute to the hash
	dig.ResetDigest()
	for i := 3; i < len(frame.Pix); i += 4 {
		frame.Pix[i] = 255
	}
	test.ExpectSuccess(t, vid.Present(frame))
	test.ExpectEquality(t, dig.Hash(), first)

	// but a change of colour does
	dig.ResetDigest()
	frame.SetRGBA(1, 1, color.RGBA{R: 1, A: 255})
	test.ExpectSuccess(t, vid.Present(frame))
	test.ExpectInequality(t, dig.Hash(), first)
}
