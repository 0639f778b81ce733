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

// State of a Scheduler or of the Driver.
type State int32

// List of valid State values.
//
// Failed is only used by the Driver, to indicate that the core could not be
// initialised.
const (
	Uninitialised State = iota
	Ready
	Running
	Stopped
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialised:
		return "uninitialised"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	case Failed:
		return "failed"
	}
	return "unknown state"
}
