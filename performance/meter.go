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

package performance

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Meter counts completed frames and accumulates busy time. The zero value is
// ready to use. Counters are updated and read with atomic operations so the
// Meter can be read from a different goroutine to the one updating it.
type Meter struct {
	frames  atomic.Uint64
	busy    atomic.Int64 // nanoseconds
	ticks   atomic.Uint64
	dropped atomic.Uint64
}

// FrameCompleted increases the count of completed frames by one.
func (m *Meter) FrameCompleted() {
	m.frames.Add(1)
}

// TickElapsed adds the duration of one tick to the busy time.
func (m *Meter) TickElapsed(d time.Duration) {
	m.ticks.Add(1)
	if d > 0 {
		m.busy.Add(int64(d))
	}
}

// TickDropped records that n ticks were not run because the previous tick
// was still running when they were due.
func (m *Meter) TickDropped(n uint64) {
	m.dropped.Add(n)
}

// Reset all counters to zero.
func (m *Meter) Reset() {
	m.frames.Store(0)
	m.busy.Store(0)
	m.ticks.Store(0)
	m.dropped.Store(0)
}

// FPS returns the number of frames completed for every second of busy time.
// Returns zero if there has been no busy time.
func (m *Meter) FPS() float64 {
	busy := m.busy.Load()
	if busy == 0 {
		return 0
	}
	busyMs := float64(busy) / float64(time.Millisecond)
	return float64(m.frames.Load()) * 1000 / busyMs
}

// Frames returns the number of completed frames.
func (m *Meter) Frames() uint64 {
	return m.frames.Load()
}

// Busy returns the accumulated busy time.
func (m *Meter) Busy() time.Duration {
	return time.Duration(m.busy.Load())
}

// Ticks returns the number of ticks that have been run.
func (m *Meter) Ticks() uint64 {
	return m.ticks.Load()
}

// Dropped returns the number of ticks that were not run.
func (m *Meter) Dropped() uint64 {
	return m.dropped.Load()
}

func (m *Meter) String() string {
	return fmt.Sprintf("%.2f fps (%d frames in %d ticks, %d dropped)", m.FPS(), m.Frames(), m.Ticks(), m.Dropped())
}
