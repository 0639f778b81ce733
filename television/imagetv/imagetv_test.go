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

package imagetv_test

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vcsplay/vcsplay/television/imagetv"
	"github.com/vcsplay/vcsplay/test"
)

func TestNoFrame(t *testing.T) {
	imtv := imagetv.NewImageTV()
	_, err := imtv.Image()
	test.ExpectSuccess(t, errors.Is(err, imagetv.ErrNoFrame))
}

func TestSave(t *testing.T) {
	imtv := imagetv.NewImageTV()
	imtv.SetCaption("collect-01")

	frame := image.NewRGBA(image.Rect(0, 0, 10, 5))
	frame.SetRGBA(3, 2, color.RGBA{R: 200, A: 255})
	test.ExpectSuccess(t, imtv.Present(frame))
	test.ExpectEquality(t, imtv.FrameNum(), 1)

	// the frame is copied by Present()
	frame.SetRGBA(3, 2, color.RGBA{G: 200, A: 255})

	fn := filepath.Join(t.TempDir(), "snapshot")
	saved, err := imtv.Save(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, saved, fn+".png")

	// saving a second time to the same filename fails
	_, err = imtv.Save(fn)
	test.ExpectFailure(t, err)

	f, err := os.Open(saved)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)

	// image is twice as wide and has room for the caption
	test.ExpectEquality(t, img.Bounds().Dx(), 10*imagetv.PixelWidth)
	test.ExpectSuccess(t, img.Bounds().Dy() > 5)

	r, g, _, _ := img.At(6, 2).RGBA()
	test.ExpectEquality(t, r>>8, uint32(200))
	test.ExpectEquality(t, g, uint32(0))
	r, _, _, _ = img.At(7, 2).RGBA()
	test.ExpectEquality(t, r>>8, uint32(200))
}
