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
	"sync"
	"sync/atomic"
	"time"

	"github.com/vcsplay/vcsplay/performance"
)

// TickFunc is called by the Scheduler on every tick. Returning an error
// stops the Scheduler.
type TickFunc func() error

// Scheduler calls a TickFunc at a fixed interval on its own goroutine.
type Scheduler struct {
	interval time.Duration
	tick     TickFunc
	meter    *performance.Meter

	state atomic.Int32

	startOnce sync.Once
	stopOnce  sync.Once

	// closing quit asks the goroutine to end. done is closed by the
	// goroutine when it has ended
	quit chan bool
	done chan bool

	// error returned by the TickFunc. only valid after done is closed
	err error
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. The duration of every tick is recorded by the meter, along with any
// ticks that were dropped.
func NewScheduler(interval time.Duration, tick TickFunc, meter *performance.Meter) *Scheduler {
	sch := &Scheduler{
		interval: interval,
		tick:     tick,
		meter:    meter,
		quit:     make(chan bool),
		done:     make(chan bool),
	}
	sch.state.Store(int32(Ready))
	return sch
}

// State returns the current state of the scheduler.
func (sch *Scheduler) State() State {
	return State(sch.state.Load())
}

// Start issuing ticks. The first tick happens one interval after Start() is
// called. Only the first call to Start() has any effect and a Scheduler
// cannot be restarted after Stop().
func (sch *Scheduler) Start() {
	sch.startOnce.Do(func() {
		if sch.State() != Ready {
			return
		}
		sch.state.Store(int32(Running))
		go sch.loop()
	})
}

func (sch *Scheduler) loop() {
	defer close(sch.done)
	defer sch.state.Store(int32(Stopped))

	ticker := time.NewTicker(sch.interval)
	defer ticker.Stop()

	last := time.Now()

	for {
		select {
		case <-sch.quit:
			return
		case t := <-ticker.C:
			// quit takes priority over a tick that arrived at the same time
			select {
			case <-sch.quit:
				return
			default:
			}

			// the ticker drops ticks if the previous tick took too long. count
			// the number of interval boundaries since the last tick to find
			// how many were missed
			if missed := (t.Sub(last)+sch.interval/2)/sch.interval - 1; missed > 0 {
				sch.meter.TickDropped(uint64(missed))
			}
			last = t

			start := time.Now()
			err := sch.tick()
			sch.meter.TickElapsed(time.Since(start))

			if err != nil {
				sch.err = err
				return
			}
		}
	}
}

// Stop the Scheduler. When Stop() returns the ticker has been released and
// no more ticks will happen. A tick that is running when Stop() is called is
// allowed to finish.
//
// Stop() must not be called from within the TickFunc.
func (sch *Scheduler) Stop() {
	sch.stopOnce.Do(func() {
		close(sch.quit)
	})

	// prevent a Start() that hasn't happened yet from ever happening
	sch.startOnce.Do(func() {})

	if sch.state.CompareAndSwap(int32(Ready), int32(Stopped)) {
		return
	}

	<-sch.done
}

// Done returns a channel that is closed when the Scheduler has stopped,
// either because Stop() was called or because the TickFunc returned an
// error. The channel is never closed for a Scheduler that was never started.
func (sch *Scheduler) Done() <-chan bool {
	return sch.done
}

// Err returns the error that caused the Scheduler to stop. Returns nil if
// the Scheduler is still running or was stopped with Stop().
func (sch *Scheduler) Err() error {
	select {
	case <-sch.done:
		return sch.err
	default:
		return nil
	}
}
