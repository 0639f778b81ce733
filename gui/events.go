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

package gui

// Event is the type sent over the event channel. See ReqSetEventChan.
type Event interface{}

// KeyMod identifies the modifier key held down during a keyboard event.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventQuit is sent when the window has been closed.
type EventQuit struct{}

// EventKeyboard is sent when a key is pressed or released.
type EventKeyboard struct {
	Key  string
	Down bool
	Mod  KeyMod
}
