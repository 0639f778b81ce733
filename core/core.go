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

// Package core defines the interface to a hardware emulation core. The core
// is treated as a stepped state machine: it is initialised once, after which
// any number of instances can be created. Each instance has a program loaded
// into it and is then advanced a number of cycles at a time.
//
// Pixel data is delivered by the instance to the FrameFunc registered when
// the instance was created. The function is called synchronously from within
// Advance(), zero or more times per call, with either a full frame or a part
// of a frame starting at the specified row.
//
// Initialisation of the core is guarded by the Gate type. Nothing can use
// the core until the Gate has reached the Ready state.
package core

import (
	"context"

	"github.com/vcsplay/vcsplay/palette"
)

// FrameFunc receives pixel data from an instance. The indices are palette
// indices (or colour register values, depending on the core) for the pixels
// starting at the beginning of row. The slice is only valid for the duration
// of the call.
type FrameFunc func(row int, indices []uint8)

// Core is the interface to the hardware emulation core.
type Core interface {
	// Initialise the core. Called exactly once, through the Gate type
	Initialise(ctx context.Context) error

	// ColorMap returns the palette of the core. Only valid after
	// Initialise() has returned successfully
	ColorMap() (palette.ColorMap, error)

	// NewInstance creates a new instance of the emulated hardware. The
	// FrameFunc is called whenever the instance has pixel data
	NewInstance(onFrame FrameFunc) (Instance, error)
}

// Instance is a single instance of the emulated hardware.
type Instance interface {
	// LoadProgram installs program data at the start address. Can be called
	// more than once to swap programs
	LoadProgram(startAddress uint16, data []uint8) error

	// Advance the hardware by the number of cycles
	Advance(cycles uint32) error
}
