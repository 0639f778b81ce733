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

// Package testcard is a stand-in hardware core used to bring up the playback
// driver. It does not execute the program. Instead it produces a test card
// image with the same timing as the real hardware, coloured according to the
// program data so that different programs produce different images.
//
// Pixels are delivered one scanline at a time as colour register values,
// meaning that the values are even and must be halved before being used as
// palette indices.
package testcard

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/vcsplay/vcsplay/core"
	"github.com/vcsplay/vcsplay/palette"
	"github.com/vcsplay/vcsplay/television"
)

// ColorClocksPerCycle is the number of colour clocks (pixels) for every CPU
// cycle.
const ColorClocksPerCycle = 3

// size of the test card. the same as the native display size
const (
	clocksPerScanline = television.Width
	scanlinesPerFrame = television.Height
	clocksPerFrame    = clocksPerScanline * scanlinesPerFrame
)

// the first and last scanline of the visible screen
const (
	visibleTop    = television.VSync + television.VBlank
	visibleBottom = television.Height - television.Overscan
)

// Sentinel errors.
var (
	ErrNotInitialised = errors.New("testcard: not initialised")
	ErrNoProgram      = errors.New("testcard: no program loaded")
)

// Core implements the core.Core interface.
type Core struct {
	// delay before initialisation completes
	initDelay time.Duration

	initialised atomic.Bool
}

// NewCore is the preferred method of initialisation for the Core type. The
// delay argument simulates the time taken to initialise a real core.
func NewCore(delay time.Duration) *Core {
	return &Core{
		initDelay: delay,
	}
}

// Initialise implements the core.Core interface.
func (c *Core) Initialise(ctx context.Context) error {
	if c.initDelay > 0 {
		select {
		case <-time.After(c.initDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	c.initialised.Store(true)
	return nil
}

// ColorMap implements the core.Core interface.
func (c *Core) ColorMap() (palette.ColorMap, error) {
	if !c.initialised.Load() {
		return palette.ColorMap{}, ErrNotInitialised
	}
	return palette.NTSC(), nil
}

// NewInstance implements the core.Core interface.
func (c *Core) NewInstance(onFrame core.FrameFunc) (core.Instance, error) {
	if !c.initialised.Load() {
		return nil, ErrNotInitialised
	}
	return &Instance{
		onFrame:  onFrame,
		scanline: make([]uint8, clocksPerScanline),
	}, nil
}

// Instance implements the core.Instance interface. It is not safe for
// concurrent use.
type Instance struct {
	onFrame core.FrameFunc

	startAddress uint16
	program      []uint8

	// position in the frame, measured in colour clocks
	clock int

	// number of frames completed
	frameNum int

	scanline []uint8
}

// LoadProgram implements the core.Instance interface.
func (ins *Instance) LoadProgram(startAddress uint16, data []uint8) error {
	if len(data) == 0 {
		return ErrNoProgram
	}
	if int(startAddress)+len(data) > 0x10000 {
		return fmt.Errorf("testcard: program of %d bytes does not fit at %#04x", len(data), startAddress)
	}
	ins.startAddress = startAddress
	ins.program = make([]uint8, len(data))
	copy(ins.program, data)
	ins.clock = 0
	ins.frameNum = 0
	return nil
}

// Advance implements the core.Instance interface.
func (ins *Instance) Advance(cycles uint32) error {
	if len(ins.program) == 0 {
		return ErrNoProgram
	}

	for n := int(cycles) * ColorClocksPerCycle; n > 0; n-- {
		x := ins.clock % clocksPerScanline
		y := ins.clock / clocksPerScanline

		ins.scanline[x] = ins.pixel(x, y)

		if x == clocksPerScanline-1 && ins.onFrame != nil {
			ins.onFrame(y, ins.scanline)
		}

		ins.clock++
		if ins.clock >= clocksPerFrame {
			ins.clock = 0
			ins.frameNum++
		}
	}

	return nil
}

// FrameNum returns the number of completed frames.
func (ins *Instance) FrameNum() int {
	return ins.frameNum
}

// pixel returns the colour register value for the position. the visible
// screen is divided into sixteen columns of hue and eight rows of luminance.
// the program data decides the order of the hues, and the columns scroll by
// one hue every eight frames
func (ins *Instance) pixel(x, y int) uint8 {
	if x < television.HBlank || y < visibleTop || y >= visibleBottom {
		return 0
	}

	col := (x - television.HBlank) / (television.VisibleWidth / 16)
	row := (y - visibleTop) * 8 / (visibleBottom - visibleTop)

	seed := int(ins.program[(col+int(ins.startAddress))%len(ins.program)])
	hue := (col + seed + ins.frameNum/8) % 16

	return uint8(hue<<4 | row<<1)
}
