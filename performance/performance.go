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
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vcsplay/vcsplay/cartridgeloader"
	"github.com/vcsplay/vcsplay/core"
	"github.com/vcsplay/vcsplay/television"
)

// sentinal error returned by the run loop.
var timedOut = errors.New("performance timed out")

// LeadTime is the amount of time the core runs before measurement begins.
// This allows the frame rate to settle down.
var LeadTime = 2 * time.Second

// Check the performance of the core using the supplied program image. The
// core is advanced by the specified number of cycles at a time, as quickly
// as possible, for the specified duration. The pixel data is decoded with an
// Assembler using the specified mode.
//
// A cpu, memory profile, a trace (or a combination of those) is created as
// defined by the Profile argument.
func Check(ctx context.Context, output io.Writer, profile Profile, gate *core.Gate, img cartridgeloader.ProgramImage,
	mode television.Mode, halve bool, cycles uint32, duration string) error {

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	gate.Start(ctx)
	colors, err := gate.Wait(ctx)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var meter Meter
	asm := television.NewAssembler(colors, mode, halve)

	ins, err := gate.Core().NewInstance(func(row int, indices []uint8) {
		if asm.Commit(row, indices) {
			meter.FrameCompleted()
		}
	})
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	if err := ins.LoadProgram(img.StartAddress(), img.Data()); err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	runner := func() error {
		// lead time is signalled on the lead channel. the conclusion of the
		// measurement period is signalled on the end channel
		var lead, end <-chan time.Time
		if LeadTime > 0 {
			lead = time.After(LeadTime)
		} else {
			end = time.After(dur)
		}

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-lead:
				// performance measurement has begun
				meter.Reset()
				lead = nil
				end = time.After(dur)
			case <-end:
				return timedOut
			default:
			}

			start := time.Now()
			if err := ins.Advance(cycles); err != nil {
				return err
			}
			meter.TickElapsed(time.Since(start))
		}
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	// calculate performance
	numFrames := int(meter.Frames())
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)
	fmt.Fprintf(output, "%.2f fps of busy time (%d ticks of %d cycles)\n", meter.FPS(), meter.Ticks(), cycles)

	return nil
}
