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

package playback

import (
	"errors"
	"image"
)

// Surface implementations receive every completed frame. The image is
// always the native size of the television and is reused after Present()
// returns. Implementations that need to keep the image must take a copy.
//
// Present() is called from the scheduler goroutine.
type Surface interface {
	Present(img *image.RGBA) error
}

// SurfaceFunc allows a function to be used as a Surface.
type SurfaceFunc func(img *image.RGBA) error

// Present implements the Surface interface.
func (f SurfaceFunc) Present(img *image.RGBA) error {
	return f(img)
}

// ErrSurfaceClosed should be returned by a Surface that can no longer accept
// frames. The session will stop but the error is not treated as a failure.
var ErrSurfaceClosed = errors.New("playback: surface closed")

// discard is used when the driver has no surface.
type discard struct{}

func (discard) Present(_ *image.RGBA) error {
	return nil
}

// Surfaces presents each frame to every Surface in the list, in order. The
// first error stops the frame being presented to the remaining surfaces.
type Surfaces []Surface

// Present implements the Surface interface.
func (ss Surfaces) Present(img *image.RGBA) error {
	for _, s := range ss {
		if err := s.Present(img); err != nil {
			return err
		}
	}
	return nil
}

// LimitFrames returns a Surface that presents no more than n frames to s.
// After that it returns ErrSurfaceClosed, which stops the session. The
// returned Surface must only be used by one session.
func LimitFrames(s Surface, n int) Surface {
	count := 0
	return SurfaceFunc(func(img *image.RGBA) error {
		if count >= n {
			return ErrSurfaceClosed
		}
		count++
		return s.Present(img)
	})
}
