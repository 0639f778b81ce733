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

package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/vcsplay/vcsplay/logger"
	"github.com/vcsplay/vcsplay/palette"
)

// State of the Gate.
type State int32

// List of valid State values.
const (
	Uninitialised State = iota
	Initialising
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialised:
		return "uninitialised"
	case Initialising:
		return "initialising"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown state"
}

// ErrNotReady is returned by ColorMap() if the Gate is not in the Ready
// state.
var ErrNotReady = errors.New("core: not ready")

// Gate runs the one-time initialisation of a Core. The initialisation
// happens in the background and the Wait() function is used to block until
// it has finished.
//
// The state of the Gate only moves forward. Once in the Ready or Failed
// state it stays there.
type Gate struct {
	core Core

	once  sync.Once
	done  chan bool
	state atomic.Int32

	// err and colors are written once before done is closed
	err    error
	colors palette.ColorMap
}

// NewGate is the preferred method of initialisation for the Gate type.
func NewGate(core Core) *Gate {
	return &Gate{
		core: core,
		done: make(chan bool),
	}
}

// Core returns the core being guarded by the Gate.
func (g *Gate) Core() Core {
	return g.core
}

// Start initialisation of the core. Only the first call to Start() has any
// effect. The context is passed to the core's Initialise() function.
func (g *Gate) Start(ctx context.Context) {
	g.once.Do(func() {
		g.state.Store(int32(Initialising))
		go g.initialise(ctx)
	})
}

func (g *Gate) initialise(ctx context.Context) {
	defer close(g.done)

	if err := g.core.Initialise(ctx); err != nil {
		g.err = fmt.Errorf("core: initialisation: %w", err)
		g.state.Store(int32(Failed))
		logger.Log(logger.Allow, "core", g.err)
		return
	}

	cm, err := g.core.ColorMap()
	if err != nil {
		g.err = fmt.Errorf("core: colour map: %w", err)
		g.state.Store(int32(Failed))
		logger.Log(logger.Allow, "core", g.err)
		return
	}

	g.colors = cm
	g.state.Store(int32(Ready))
	logger.Log(logger.Allow, "core", "ready")
}

// State returns the current state of the Gate.
func (g *Gate) State() State {
	return State(g.state.Load())
}

// Err returns the initialisation error if the Gate is in the Failed state.
func (g *Gate) Err() error {
	if g.State() != Failed {
		return nil
	}
	<-g.done
	return g.err
}

// Wait blocks until initialisation has finished or the context is done.
// Start() must have been called. Returns the colour map of the core or the
// initialisation error.
//
// The colour map is the same instance for every call and must not be
// modified.
func (g *Gate) Wait(ctx context.Context) (*palette.ColorMap, error) {
	select {
	case <-g.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if g.err != nil {
		return nil, g.err
	}
	return &g.colors, nil
}

// ColorMap returns the colour map without blocking. Returns ErrNotReady if
// the Gate is not in the Ready state.
func (g *Gate) ColorMap() (*palette.ColorMap, error) {
	if g.State() != Ready {
		return nil, ErrNotReady
	}
	return &g.colors, nil
}
