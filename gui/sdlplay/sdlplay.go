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

// Package sdlplay is a window surface for the playback driver, implemented
// with SDL.
package sdlplay

import (
	"fmt"
	"image"
	"sync"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/vcsplay/vcsplay/gui"
	"github.com/vcsplay/vcsplay/playback"
	"github.com/vcsplay/vcsplay/television"
)

const pixelDepth = 4

// the horizontal size of each pixel is doubled
const pixelWidth = 2.0

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// events are sent to this channel. set with ReqSetEventChan
	events chan gui.Event

	// functions to be run on the #mainthread
	service chan func()

	// pending is written by Present() and copied to pixels by Service()
	crit    sync.Mutex
	pending []byte
	dirty   bool
	closed  bool

	// pixels is the byte array that we copy to the texture before applying to
	// the renderer
	pixels []byte

	scale float32
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		service: make(chan func(), 1),
		pending: make([]byte, television.Width*television.Height*pixelDepth),
		pixels:  make([]byte, television.Width*television.Height*pixelDepth),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	setupService()

	// SDL window - window size is set in setScaling() function
	scr.window, err = sdl.CreateWindow("vcsplay",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// texture is the same size as the television. scaling is applied by the
	// renderer in order to fit it in the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(television.Width),
		int32(television.Height))
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	err = scr.setScaling(scale)
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	return scr, nil
}

// use scale of -1 to reapply existing scale value
func (scr *SdlPlay) setScaling(scale float32) error {
	if scale > 0 {
		scr.scale = scale
	}

	w := int32(float32(television.Width) * scr.scale * pixelWidth)
	h := int32(float32(television.Height) * scr.scale)
	scr.window.SetSize(w, h)

	// make sure everything drawn through the renderer is correctly scaled
	return scr.renderer.SetScale(scr.scale*pixelWidth, scr.scale)
}

// Present implements the playback.Surface interface. The image is copied and
// drawn to the window the next time Service() is called.
func (scr *SdlPlay) Present(img *image.RGBA) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	if scr.closed {
		return playback.ErrSurfaceClosed
	}

	copy(scr.pending, img.Pix)
	scr.dirty = true

	return nil
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy() {
	scr.crit.Lock()
	scr.closed = true
	scr.crit.Unlock()

	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}

// IsVisible returns true if the window is being shown.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) IsVisible() bool {
	flgs := scr.window.GetFlags()
	return flgs&sdl.WINDOW_SHOWN == sdl.WINDOW_SHOWN
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}
