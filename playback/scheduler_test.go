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

package playback_test

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vcsplay/vcsplay/performance"
	"github.com/vcsplay/vcsplay/playback"
	"github.com/vcsplay/vcsplay/test"
)

func TestSchedulerStop(t *testing.T) {
	var meter performance.Meter
	var count atomic.Int64

	sch := playback.NewScheduler(time.Millisecond*5, func() error {
		count.Add(1)
		return nil
	}, &meter)
	test.ExpectEquality(t, sch.State(), playback.Ready)

	sch.Start()
	test.ExpectEquality(t, sch.State(), playback.Running)

	time.Sleep(time.Millisecond * 50)
	sch.Stop()
	test.ExpectEquality(t, sch.State(), playback.Stopped)
	test.ExpectSuccess(t, sch.Err())

	// no ticks after Stop() has returned
	n := count.Load()
	test.ExpectSuccess(t, n > 0)
	time.Sleep(time.Millisecond * 30)
	test.ExpectEquality(t, count.Load(), n)
	test.ExpectEquality(t, meter.Ticks(), uint64(n))

	// stopping a second time is harmless and restarting does nothing
	sch.Stop()
	sch.Start()
	time.Sleep(time.Millisecond * 20)
	test.ExpectEquality(t, count.Load(), n)
	test.ExpectEquality(t, sch.State(), playback.Stopped)
}

func TestSchedulerStopBeforeStart(t *testing.T) {
	var meter performance.Meter
	var count atomic.Int64

	sch := playback.NewScheduler(time.Millisecond, func() error {
		count.Add(1)
		return nil
	}, &meter)

	sch.Stop()
	test.ExpectEquality(t, sch.State(), playback.Stopped)

	sch.Start()
	time.Sleep(time.Millisecond * 10)
	test.ExpectEquality(t, count.Load(), int64(0))
	test.ExpectEquality(t, sch.State(), playback.Stopped)
}

func TestSchedulerCadence(t *testing.T) {
	var meter performance.Meter
	var count atomic.Int64

	const interval = time.Millisecond * 10

	sch := playback.NewScheduler(interval, func() error {
		count.Add(1)
		return nil
	}, &meter)

	sch.Start()
	time.Sleep(interval * 20)
	sch.Stop()

	// twenty intervals should produce close to twenty ticks. allow plenty of
	// room for a busy test machine but never more ticks than intervals
	n := count.Load()
	test.ExpectSuccess(t, n >= 5, n)
	test.ExpectSuccess(t, n <= 21, n)
}

func TestSchedulerOverrun(t *testing.T) {
	var meter performance.Meter
	var count atomic.Int64
	var running atomic.Int32
	var overlap atomic.Bool

	const interval = time.Millisecond * 5

	sch := playback.NewScheduler(interval, func() error {
		if running.Add(1) > 1 {
			overlap.Store(true)
		}
		defer running.Add(-1)

		count.Add(1)

		// each tick takes more than three intervals
		time.Sleep(interval*3 + interval/2)
		return nil
	}, &meter)

	sch.Start()
	time.Sleep(interval * 40)
	sch.Stop()

	// ticks never overlap and missed boundaries are dropped, not caught up
	test.ExpectFailure(t, overlap.Load())
	test.ExpectSuccess(t, count.Load() <= 14, count.Load())
	test.ExpectSuccess(t, meter.Dropped() > 0, meter.Dropped())
	test.ExpectSuccess(t, meter.Busy() >= time.Duration(count.Load())*interval*3)
}

func TestSchedulerError(t *testing.T) {
	var meter performance.Meter
	var count atomic.Int64

	errTick := errors.New("tick error")

	sch := playback.NewScheduler(time.Millisecond, func() error {
		if count.Add(1) == 3 {
			return errTick
		}
		return nil
	}, &meter)

	test.ExpectSuccess(t, sch.Err())

	sch.Start()

	select {
	case <-sch.Done():
	case <-time.After(time.Second * 2):
		t.Fatalf("scheduler did not stop after tick error")
	}

	test.ExpectSuccess(t, errors.Is(sch.Err(), errTick))
	test.ExpectEquality(t, sch.State(), playback.Stopped)
	test.ExpectEquality(t, count.Load(), int64(3))

	// Stop() after the scheduler has stopped itself returns immediately
	sch.Stop()
	test.ExpectSuccess(t, errors.Is(sch.Err(), errTick))
}

func TestCadence(t *testing.T) {
	test.ExpectSuccess(t, playback.DefaultCadence.Validate())
	test.ExpectEquality(t, playback.DefaultCadence.Interval, time.Millisecond*10)
	test.ExpectEquality(t, playback.DefaultCadence.Cycles, uint32(20000))

	test.ExpectFailure(t, playback.Cadence{Interval: 0, Cycles: 100}.Validate())
	test.ExpectFailure(t, playback.Cadence{Interval: time.Millisecond, Cycles: 0}.Validate())

	test.ExpectEquality(t, playback.Stopped.String(), "stopped")
	test.ExpectEquality(t, playback.Failed.String(), "failed")
}
