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
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/vcsplay/vcsplay/cartridgeloader"
	"github.com/vcsplay/vcsplay/catalog"
	"github.com/vcsplay/vcsplay/core"
	"github.com/vcsplay/vcsplay/logger"
	"github.com/vcsplay/vcsplay/palette"
)

// ErrNoEntries is returned by Next() and Previous() when no catalog entry
// can be fetched.
var ErrNoEntries = errors.New("playback: no catalog entries can be fetched")

// ErrStopped is returned by Driver functions after Stop() has been called.
var ErrStopped = errors.New("playback: driver stopped")

// Driver owns the current Session and replaces it whenever the program, the
// surface or the settings change.
type Driver struct {
	gate    *core.Gate
	catalog *catalog.Catalog
	fetcher cartridgeloader.Fetcher

	selector cartridgeloader.Selector

	// crit serialises changes to the session. the fields below it are only
	// accessed while crit is held
	crit     sync.Mutex
	colors   *palette.ColorMap
	surface  Surface
	settings Settings
	session  *Session
	stopped  bool

	// the current session for status queries from other goroutines
	current atomic.Pointer[Session]

	// index of the most recently selected catalog entry
	index atomic.Int64

	startOnce sync.Once

	// closed when the core initialisation has been resolved and the first
	// session (if any) has been started
	ready chan bool
	err   error
}

// NewDriver is the preferred method of initialisation for the Driver type.
// A nil fetcher means catalog programs are fetched with the default HTTP
// client.
func NewDriver(gate *core.Gate, cat *catalog.Catalog, fetcher cartridgeloader.Fetcher, settings Settings) *Driver {
	if fetcher == nil {
		fetcher = cartridgeloader.HTTPFetcher{}
	}
	drv := &Driver{
		gate:     gate,
		catalog:  cat,
		fetcher:  fetcher,
		settings: settings,
		surface:  discard{},
		ready:    make(chan bool),
	}
	drv.index.Store(-1)
	return drv
}

// Start the initialisation of the core. Returns immediately. Playback will
// begin when the core is ready and a program has been chosen, in whichever
// order those two things happen.
func (drv *Driver) Start(ctx context.Context) {
	drv.startOnce.Do(func() {
		drv.gate.Start(ctx)
		go drv.waitForCore(ctx)
	})
}

func (drv *Driver) waitForCore(ctx context.Context) {
	defer close(drv.ready)

	colors, err := drv.gate.Wait(ctx)

	drv.crit.Lock()
	defer drv.crit.Unlock()

	if err != nil {
		// cancellation is not a core failure. the driver is stopped instead
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			drv.stopped = true
			logger.Logf(logger.Allow, "playback", "core initialisation cancelled: %v", err)
			return
		}
		drv.err = err
		logger.Log(logger.Allow, "playback", err)
		return
	}

	drv.colors = colors
	_ = drv.restart()
}

// Wait until the core initialisation has been resolved. Returns the
// initialisation error if the core failed, or ErrStopped if the context given
// to Start() was cancelled before the core was ready.
func (drv *Driver) Wait(ctx context.Context) error {
	select {
	case <-drv.ready:
	case <-ctx.Done():
		return ctx.Err()
	}
	if drv.err != nil {
		return drv.err
	}
	if drv.colors == nil {
		return ErrStopped
	}
	return nil
}

// State returns the state of the driver. The driver is Running only when a
// session is running.
func (drv *Driver) State() State {
	select {
	case <-drv.ready:
		if drv.err != nil {
			return Failed
		}
	default:
		return Uninitialised
	}

	if ses := drv.current.Load(); ses != nil {
		return ses.State()
	}

	drv.crit.Lock()
	defer drv.crit.Unlock()
	if drv.stopped {
		return Stopped
	}
	return Ready
}

// Err returns the core initialisation error or the error that stopped the
// current session.
func (drv *Driver) Err() error {
	select {
	case <-drv.ready:
		if drv.err != nil {
			return drv.err
		}
	default:
		return nil
	}
	if ses := drv.current.Load(); ses != nil {
		return ses.Err()
	}
	return nil
}

// Select the catalog entry. The program data is fetched before anything
// else happens. If the fetch fails the error is returned and the current
// program continues to run. Otherwise any uploaded program is cleared and
// the catalog program starts.
func (drv *Driver) Select(ctx context.Context, e catalog.Entry) error {
	if drv.isStopped() {
		return ErrStopped
	}

	// the catalog position moves to the entry even if the fetch fails so that
	// Next() and Previous() can step past an entry that cannot be fetched
	if _, i := drv.catalog.Find(e.Name); i >= 0 {
		drv.index.Store(int64(i))
	}

	img, err := drv.catalog.Image(ctx, drv.fetcher, e)
	if err != nil {
		logger.Logf(logger.Allow, "playback", "select %s: %v", e.Name, err)
		return err
	}

	drv.crit.Lock()
	defer drv.crit.Unlock()
	if drv.stopped {
		return ErrStopped
	}

	drv.selector.SelectEntry(img)

	return drv.restart()
}

// SelectName selects the catalog entry with the name. See Select().
func (drv *Driver) SelectName(ctx context.Context, name string) error {
	e, i := drv.catalog.Find(name)
	if i < 0 {
		return errors.New("playback: no catalog entry named " + name)
	}
	return drv.Select(ctx, e)
}

// Next selects the catalog entry after the current selection. Wraps around
// at the end of the catalog. Entries that can never be fetched, because they
// need a catalog server and there is none, are skipped.
func (drv *Driver) Next(ctx context.Context) error {
	return drv.step(ctx, 1)
}

// Previous selects the catalog entry before the current selection. Wraps
// around at the start of the catalog. Entries are skipped in the same way as
// Next().
func (drv *Driver) Previous(ctx context.Context) error {
	return drv.step(ctx, -1)
}

func (drv *Driver) step(ctx context.Context, dir int) error {
	i := int(drv.index.Load())
	if i < 0 && dir < 0 {
		i = 0
	}

	for range drv.catalog.Len() {
		i += dir
		e := drv.catalog.At(i)
		if drv.catalog.Reachable(e) {
			return drv.Select(ctx, e)
		}
	}

	return ErrNoEntries
}

// Upload reads a program from r and plays it in preference to the selected
// catalog program. Nothing changes if the upload fails.
func (drv *Driver) Upload(ctx context.Context, name string, r io.Reader) error {
	img, err := cartridgeloader.ReadUpload(ctx, name, r)
	if err != nil {
		logger.Log(logger.Allow, "playback", err)
		return err
	}
	return drv.UploadImage(img)
}

// UploadImage plays the program image in preference to the selected catalog
// program.
func (drv *Driver) UploadImage(img cartridgeloader.ProgramImage) error {
	if img.Empty() {
		return cartridgeloader.ErrEmptyProgram
	}

	drv.crit.Lock()
	defer drv.crit.Unlock()
	if drv.stopped {
		return ErrStopped
	}

	drv.selector.Upload(img)
	return drv.restart()
}

// ClearUpload removes the uploaded program. The selected catalog program, if
// there is one, starts again.
func (drv *Driver) ClearUpload() error {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	if drv.stopped {
		return ErrStopped
	}

	drv.selector.ClearUpload()
	return drv.restart()
}

// SetSurface changes the surface that frames are presented to. A nil
// surface discards frames.
func (drv *Driver) SetSurface(s Surface) error {
	if s == nil {
		s = discard{}
	}

	drv.crit.Lock()
	defer drv.crit.Unlock()
	if drv.stopped {
		return ErrStopped
	}

	drv.surface = s
	return drv.restart()
}

// SetSettings changes the playback settings. The current program restarts
// with the new settings.
func (drv *Driver) SetSettings(settings Settings) error {
	if err := settings.Cadence.Validate(); err != nil {
		return err
	}

	drv.crit.Lock()
	defer drv.crit.Unlock()
	if drv.stopped {
		return ErrStopped
	}

	drv.settings = settings
	return drv.restart()
}

// Stop playback. The driver cannot be restarted.
//
// Stop() must not be called from a Surface's Present() function.
func (drv *Driver) Stop() {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	drv.stopped = true
	drv.teardown()
}

func (drv *Driver) isStopped() bool {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.stopped
}

// teardown stops the current session. crit must be held
func (drv *Driver) teardown() {
	if drv.session == nil {
		return
	}
	drv.current.Store(nil)
	drv.session.Stop()
	logger.Logf(logger.Allow, "playback", "stopped %s (%s)", drv.session.Image().Name(), drv.session.Meter())
	drv.session = nil
}

// restart replaces the current session with a new session for the effective
// program. the old session has stopped completely before the new session is
// created. crit must be held
func (drv *Driver) restart() error {
	if drv.err != nil {
		return drv.err
	}

	// core not ready yet. waitForCore() will call restart()
	if drv.colors == nil {
		return nil
	}

	drv.teardown()

	img, ok := drv.selector.Effective()
	if !ok {
		return nil
	}

	ses, err := NewSession(drv.gate.Core(), drv.colors, img, drv.surface, drv.settings)
	if err != nil {
		logger.Logf(logger.Allow, "playback", "%s: %v", img.Name(), err)
		return err
	}

	drv.session = ses
	drv.current.Store(ses)
	ses.Start()

	logger.Logf(logger.Allow, "playback", "running %s at %#04x (%s)", img.Name(), img.StartAddress(), drv.settings.Cadence)

	go func() {
		<-ses.Done()
		if err := ses.Err(); err != nil {
			logger.Logf(logger.Allow, "playback", "%s: %v", img.Name(), err)
		}
	}()

	return nil
}

// Session returns the current session or nil if there is no session.
func (drv *Driver) Session() *Session {
	return drv.current.Load()
}

// FPS of the current session. Zero if there is no session.
func (drv *Driver) FPS() float64 {
	if ses := drv.current.Load(); ses != nil {
		return ses.FPS()
	}
	return 0
}

// ProgramName is the name of the program in the current session. Empty if
// there is no session.
func (drv *Driver) ProgramName() string {
	if ses := drv.current.Load(); ses != nil {
		return ses.Image().Name()
	}
	return ""
}

// Settings returns the current settings.
func (drv *Driver) Settings() Settings {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.settings
}

// Catalog returns the catalog used by the driver.
func (drv *Driver) Catalog() *catalog.Catalog {
	return drv.catalog
}
