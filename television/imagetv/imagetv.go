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

// Package imagetv is a presentation surface that keeps the most recently
// presented frame so that it can be saved as a PNG file. The saved image is
// stretched horizontally to correct the aspect ratio of the display and is
// captioned with the name of the program and the frame number.
package imagetv

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// PixelWidth is the horizontal scaling applied to saved images.
const PixelWidth = 2

// height of the caption strip below the frame
const captionHeight = 16

// ErrNoFrame is returned by Save() and Encode() if no frame has been
// presented.
var ErrNoFrame = errors.New("imagetv: no frame to save")

// ImageTV implements the presentation surface interface.
type ImageTV struct {
	crit sync.Mutex

	// the most recently presented frame and its number
	last     *image.RGBA
	frameNum int

	caption string
}

// NewImageTV is the preferred method of initialisation for the ImageTV
// type.
func NewImageTV() *ImageTV {
	return &ImageTV{}
}

// SetCaption sets the text drawn under the frame in saved images.
func (imtv *ImageTV) SetCaption(caption string) {
	imtv.crit.Lock()
	defer imtv.crit.Unlock()
	imtv.caption = caption
}

// Present implements the presentation surface interface. The frame is
// copied.
func (imtv *ImageTV) Present(frame *image.RGBA) error {
	imtv.crit.Lock()
	defer imtv.crit.Unlock()

	if imtv.last == nil || imtv.last.Bounds() != frame.Bounds() {
		imtv.last = image.NewRGBA(frame.Bounds())
	}
	copy(imtv.last.Pix, frame.Pix)
	imtv.frameNum++

	return nil
}

// FrameNum returns the number of frames presented.
func (imtv *ImageTV) FrameNum() int {
	imtv.crit.Lock()
	defer imtv.crit.Unlock()
	return imtv.frameNum
}

// Image returns the final image as it would be saved to disk.
func (imtv *ImageTV) Image() (*image.RGBA, error) {
	imtv.crit.Lock()
	defer imtv.crit.Unlock()

	if imtv.last == nil {
		return nil, ErrNoFrame
	}

	b := imtv.last.Bounds()
	scaled := image.Rect(0, 0, b.Dx()*PixelWidth, b.Dy())
	img := image.NewRGBA(image.Rect(0, 0, scaled.Dx(), scaled.Dy()+captionHeight))

	draw.Draw(img, img.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)
	draw.NearestNeighbor.Scale(img, scaled, imtv.last, b, draw.Src, nil)

	caption := fmt.Sprintf("frame %d", imtv.frameNum)
	if imtv.caption != "" {
		caption = fmt.Sprintf("%s :: %s", imtv.caption, caption)
	}

	drw := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, scaled.Dy()+captionHeight-4),
	}
	drw.DrawString(caption)

	return img, nil
}

// Encode the final image as PNG data.
func (imtv *ImageTV) Encode(w io.Writer) error {
	img, err := imtv.Image()
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("imagetv: %w", err)
	}
	return nil
}

// Save the final image to disk. The ".png" extension is added to the
// filename base. An existing file will not be overwritten.
func (imtv *ImageTV) Save(fileNameBase string) (string, error) {
	imageName := fmt.Sprintf("%s.png", fileNameBase)

	f, err := os.OpenFile(imageName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("imagetv: %w", err)
	}
	defer f.Close()

	if err := imtv.Encode(f); err != nil {
		_ = os.Remove(imageName)
		return "", err
	}

	return imageName, nil
}
