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

// Package ebitenplay is a window surface for the playback driver,
// implemented with Ebitengine.
//
// Unlike the sdlplay package, the ebitenplay package owns the main loop. The
// Run() function must be called from the main goroutine and does not return
// until the window has been closed.
package ebitenplay

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/vcsplay/vcsplay/gui"
	"github.com/vcsplay/vcsplay/playback"
	"github.com/vcsplay/vcsplay/television"
)

const pixelDepth = 4

// the horizontal size of each pixel is doubled
const pixelWidth = 2

// keys that are forwarded to the event channel
var forwardedKeys = []ebiten.Key{
	ebiten.KeyN,
	ebiten.KeyP,
	ebiten.KeyS,
	ebiten.KeyC,
	ebiten.KeyO,
	ebiten.KeyQ,
	ebiten.KeyEscape,
}

// EbitenPlay implements the playback.Surface and ebiten.Game interfaces.
type EbitenPlay struct {
	crit    sync.Mutex
	pending []byte
	closed  bool

	screen *ebiten.Image

	events chan gui.Event

	// status is called once per frame and the result is printed in the top
	// left corner of the window. can be nil
	status func() string
}

// NewEbitenPlay is the preferred method of initialisation for the EbitenPlay
// type. Window events are sent to the events channel, which can be nil.
func NewEbitenPlay(events chan gui.Event, status func() string) *EbitenPlay {
	return &EbitenPlay{
		pending: make([]byte, television.Width*television.Height*pixelDepth),
		events:  events,
		status:  status,
	}
}

// Present implements the playback.Surface interface.
func (eb *EbitenPlay) Present(img *image.RGBA) error {
	eb.crit.Lock()
	defer eb.crit.Unlock()
	if eb.closed {
		return playback.ErrSurfaceClosed
	}
	copy(eb.pending, img.Pix)
	return nil
}

// Run opens the window and services it until it is closed.
//
// MUST ONLY be called from the main goroutine
func (eb *EbitenPlay) Run(title string, scale int) error {
	if scale < 1 {
		scale = 1
	}

	ebiten.SetWindowSize(television.Width*pixelWidth*scale, television.Height*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowClosingHandled(true)

	defer func() {
		eb.crit.Lock()
		eb.closed = true
		eb.crit.Unlock()
	}()

	return ebiten.RunGame(eb)
}

// Update implements the ebiten.Game interface.
func (eb *EbitenPlay) Update() error {
	if ebiten.IsWindowBeingClosed() {
		eb.sendEvent(gui.EventQuit{})
		return ebiten.Termination
	}

	eb.crit.Lock()
	closed := eb.closed
	eb.crit.Unlock()
	if closed {
		return ebiten.Termination
	}

	for _, k := range forwardedKeys {
		if inpututil.IsKeyJustPressed(k) {
			eb.sendEvent(gui.EventKeyboard{Key: k.String(), Down: true, Mod: keyMod()})
		}
	}

	return nil
}

func keyMod() gui.KeyMod {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyAlt):
		return gui.KeyModAlt
	case ebiten.IsKeyPressed(ebiten.KeyShift):
		return gui.KeyModShift
	case ebiten.IsKeyPressed(ebiten.KeyControl):
		return gui.KeyModCtrl
	}
	return gui.KeyModNone
}

// Draw implements the ebiten.Game interface.
func (eb *EbitenPlay) Draw(screen *ebiten.Image) {
	if eb.screen == nil {
		eb.screen = ebiten.NewImage(television.Width, television.Height)
	}

	eb.crit.Lock()
	eb.screen.WritePixels(eb.pending)
	eb.crit.Unlock()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(pixelWidth, 1)
	screen.DrawImage(eb.screen, op)

	if eb.status != nil {
		ebitenutil.DebugPrintAt(screen, eb.status(), 2, 2)
	}
}

// Layout implements the ebiten.Game interface.
func (eb *EbitenPlay) Layout(_, _ int) (int, int) {
	return television.Width * pixelWidth, television.Height
}

// Close the surface. Present() returns playback.ErrSurfaceClosed and the
// window closes on the next update.
func (eb *EbitenPlay) Close() {
	eb.crit.Lock()
	defer eb.crit.Unlock()
	eb.closed = true
}

func (eb *EbitenPlay) sendEvent(ev gui.Event) {
	if eb.events == nil {
		return
	}
	select {
	case eb.events <- ev:
	default:
	}
}
