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

package userinput

import (
	"strings"

	"github.com/vcsplay/vcsplay/gui"
)

// Action is the result of a key press.
type Action int

// List of valid Action values.
const (
	ActionNone Action = iota
	ActionNext
	ActionPrevious
	ActionSnapshot
	ActionCopy
	ActionOverlay
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionNext:
		return "next"
	case ActionPrevious:
		return "previous"
	case ActionSnapshot:
		return "snapshot"
	case ActionCopy:
		return "copy"
	case ActionOverlay:
		return "overlay"
	case ActionQuit:
		return "quit"
	}
	return "unknown action"
}

// KeyAction returns the Action for a keyboard event. Key release events and
// keys with modifiers other than shift are ignored.
func KeyAction(ev gui.EventKeyboard) Action {
	if !ev.Down {
		return ActionNone
	}
	if ev.Mod != gui.KeyModNone && ev.Mod != gui.KeyModShift {
		return ActionNone
	}

	switch strings.ToLower(ev.Key) {
	case "n", "right":
		return ActionNext
	case "p", "left":
		return ActionPrevious
	case "s":
		return ActionSnapshot
	case "c":
		return ActionCopy
	case "o":
		return ActionOverlay
	case "q", "escape":
		return ActionQuit
	}

	return ActionNone
}
