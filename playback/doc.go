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

// Package playback bridges a hardware core to a presentation surface in real
// time.
//
// The Scheduler type advances the core at a fixed wall-clock interval, by a
// fixed number of cycles each time. The interval and the number of cycles
// together are the Cadence. Ticks never overlap: each tick is a blocking call
// to the core and the next tick does not start until the previous one has
// returned. If a tick takes longer than the interval then the interval
// boundaries that were missed are dropped (and counted) rather than being
// run late or in a burst.
//
// A Session joins a single program image, a single core instance and a
// single Surface. Pixel data from the core is decoded by a
// television.Assembler and every completed frame is presented to the
// Surface. The throughput of the session is measured with a
// performance.Meter.
//
// The Driver owns the current Session. Whenever the program, the surface or
// the settings change, the current Session is stopped completely before the
// new Session is started. No tick from the old Session can run after the new
// Session has been created.
//
// The Driver waits for the core's initialisation Gate before creating the
// first Session. If initialisation fails then the Driver enters the Failed
// state and no Session is ever created.
package playback
