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

package sdlplay

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/vcsplay/vcsplay/gui"
	"github.com/vcsplay/vcsplay/television"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and we have
	// no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service implements gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	// loop until there are no more events to retrieve
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.sendEvent(gui.EventQuit{})

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			mod := gui.KeyModNone
			if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
				sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
				mod = gui.KeyModAlt
			} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
				sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
				mod = gui.KeyModShift
			} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
				sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
				mod = gui.KeyModCtrl
			}

			scr.sendEvent(gui.EventKeyboard{
				Key:  sdl.GetKeyName(ev.Keysym.Sym),
				Mod:  mod,
				Down: ev.Type == sdl.KEYDOWN,
			})
		}
	}

	// run any outstanding service functions
	select {
	case f := <-scr.service:
		f()
	default:
	}

	scr.crit.Lock()
	dirty := scr.dirty
	if dirty {
		copy(scr.pixels, scr.pending)
		scr.dirty = false
	}
	scr.crit.Unlock()

	if !dirty {
		sdl.Delay(1)
		return
	}

	if err := scr.render(); err != nil {
		scr.sendEvent(fmt.Errorf("sdlplay: %w", err))
	}
}

func (scr *SdlPlay) render() error {
	err := scr.texture.Update(nil, unsafe.Pointer(&scr.pixels[0]), television.Width*pixelDepth)
	if err != nil {
		return err
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}

// events are dropped if the channel is full. the window must continue to be
// serviced even if nothing is reading the events
func (scr *SdlPlay) sendEvent(ev gui.Event) {
	if scr.events == nil {
		return
	}
	select {
	case scr.events <- ev:
	default:
	}
}
