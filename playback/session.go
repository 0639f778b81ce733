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
	"fmt"
	"image"

	"github.com/vcsplay/vcsplay/cartridgeloader"
	"github.com/vcsplay/vcsplay/core"
	"github.com/vcsplay/vcsplay/palette"
	"github.com/vcsplay/vcsplay/performance"
	"github.com/vcsplay/vcsplay/television"
)

// ErrNoProgram is returned when a session is requested for an empty program
// image.
var ErrNoProgram = errors.New("playback: no program")

// Session runs a single program image on a single core instance and
// presents the output to a single surface.
type Session struct {
	img      cartridgeloader.ProgramImage
	settings Settings

	instance  core.Instance
	assembler *television.Assembler
	surface   Surface
	meter     performance.Meter
	scheduler *Scheduler

	// overlay image is allocated on first use and reused
	overlay *image.RGBA

	// error from the surface. only accessed from the scheduler goroutine
	presentErr error
}

// NewSession is the preferred method of initialisation for the Session
// type. The colour map must be the colour map of the initialised core. A nil
// surface discards all frames.
//
// The session is created in the Ready state. Call Start() to begin playback.
func NewSession(c core.Core, colors *palette.ColorMap, img cartridgeloader.ProgramImage, surface Surface, settings Settings) (*Session, error) {
	if img.Empty() {
		return nil, ErrNoProgram
	}
	if err := settings.Cadence.Validate(); err != nil {
		return nil, err
	}
	if surface == nil {
		surface = discard{}
	}

	ses := &Session{
		img:       img,
		settings:  settings,
		assembler: television.NewAssembler(colors, settings.Mode, settings.Halve),
		surface:   surface,
	}

	var err error
	ses.instance, err = c.NewInstance(ses.onFrame)
	if err != nil {
		return nil, fmt.Errorf("playback: %w", err)
	}

	err = ses.instance.LoadProgram(img.StartAddress(), img.Data())
	if err != nil {
		return nil, fmt.Errorf("playback: %w", err)
	}

	ses.scheduler = NewScheduler(settings.Cadence.Interval, ses.tick, &ses.meter)

	return ses, nil
}

// onFrame is the FrameFunc given to the core instance. it is called
// synchronously during Advance() and therefore on the scheduler goroutine
func (ses *Session) onFrame(row int, indices []uint8) {
	if !ses.assembler.Commit(row, indices) {
		return
	}

	ses.meter.FrameCompleted()

	// do not present any more frames once the surface has failed
	if ses.presentErr != nil {
		return
	}

	img := ses.assembler.Image()
	if ses.settings.Overlay {
		ses.overlay = television.Overlay(ses.overlay, img)
		img = ses.overlay
	}

	ses.presentErr = ses.surface.Present(img)
}

func (ses *Session) tick() error {
	if err := ses.instance.Advance(ses.settings.Cadence.Cycles); err != nil {
		return fmt.Errorf("playback: %w", err)
	}
	return ses.presentErr
}

// Start playback.
func (ses *Session) Start() {
	ses.scheduler.Start()
}

// Stop playback. Returns when the scheduler has stopped completely.
func (ses *Session) Stop() {
	ses.scheduler.Stop()
}

// Done returns a channel that is closed when the session has stopped.
func (ses *Session) Done() <-chan bool {
	return ses.scheduler.Done()
}

// Err returns the error that stopped the session. A surface that has been
// closed is not an error.
func (ses *Session) Err() error {
	err := ses.scheduler.Err()
	if errors.Is(err, ErrSurfaceClosed) {
		return nil
	}
	return err
}

// State returns the state of the session's scheduler.
func (ses *Session) State() State {
	return ses.scheduler.State()
}

// Image returns the program image being played.
func (ses *Session) Image() cartridgeloader.ProgramImage {
	return ses.img
}

// Settings returns the settings the session was created with.
func (ses *Session) Settings() Settings {
	return ses.settings
}

// Meter returns the throughput meter for the session. The meter is reset
// when the session is created.
func (ses *Session) Meter() *performance.Meter {
	return &ses.meter
}

// FPS is the number of frames completed per second of busy time.
func (ses *Session) FPS() float64 {
	return ses.meter.FPS()
}
