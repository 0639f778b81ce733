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

// Package performance contains helper functions relating to performance.
//
// The Meter type measures the throughput of a running playback session. It
// counts completed frames and accumulates the time spent advancing the
// hardware core. Time between ticks is not counted, so an idle scheduler does
// not reduce the measured rate.
//
// Check() is a quick way of running a core for a fixed duration of time, as
// fast as possible. It will optionally generate profiling information.
//
// RunProfiler() can be used to generate the various profile types. On its own
// it will not limit the amount of time the program runs for so it is useful
// for more real-world situations.
//
// CalcFPS() calculates frames-per-second in aggregate along with an accuracy
// value (as compared to the display specification). Probably not suitable
// for "live" FPS monitoring. Use the Meter type for that.
package performance
