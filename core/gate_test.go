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

package core_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vcsplay/vcsplay/core"
	"github.com/vcsplay/vcsplay/palette"
	"github.com/vcsplay/vcsplay/test"
)

// core that waits for the release channel before completing initialisation
type slowCore struct {
	release chan bool
	initErr error
	calls   atomic.Int32
}

func (c *slowCore) Initialise(ctx context.Context) error {
	c.calls.Add(1)
	select {
	case <-c.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	return c.initErr
}

func (c *slowCore) ColorMap() (palette.ColorMap, error) {
	return palette.NTSC(), nil
}

func (c *slowCore) NewInstance(_ core.FrameFunc) (core.Instance, error) {
	return nil, errors.New("not implemented")
}

func TestGateReady(t *testing.T) {
	c := &slowCore{release: make(chan bool)}
	g := core.NewGate(c)
	test.ExpectEquality(t, g.State(), core.Uninitialised)

	_, err := g.ColorMap()
	test.ExpectSuccess(t, errors.Is(err, core.ErrNotReady))

	g.Start(context.Background())
	g.Start(context.Background())
	test.ExpectEquality(t, g.State(), core.Initialising)

	// wait times out while initialisation is blocked
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = g.Wait(ctx)
	test.ExpectSuccess(t, errors.Is(err, context.DeadlineExceeded))

	close(c.release)
	cm, err := g.Wait(context.Background())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *cm, palette.NTSC())
	test.ExpectEquality(t, g.State(), core.Ready)
	test.ExpectSuccess(t, g.Err())

	// same colour map instance every time
	cm2, err := g.ColorMap()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, cm == cm2)

	// initialisation only happened once
	test.ExpectEquality(t, c.calls.Load(), int32(1))
}

func TestGateFailed(t *testing.T) {
	initErr := errors.New("no wasm")
	c := &slowCore{release: make(chan bool), initErr: initErr}
	close(c.release)

	g := core.NewGate(c)
	g.Start(context.Background())

	_, err := g.Wait(context.Background())
	test.ExpectSuccess(t, errors.Is(err, initErr))
	test.ExpectEquality(t, g.State(), core.Failed)
	test.ExpectSuccess(t, errors.Is(g.Err(), initErr))

	_, err = g.ColorMap()
	test.ExpectSuccess(t, errors.Is(err, core.ErrNotReady))
}
