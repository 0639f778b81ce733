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
	"context"

	"github.com/vcsplay/vcsplay/gui"
)

// HandleInput is implemented by the type that carries out the actions
// requested by the user.
type HandleInput interface {
	Next(ctx context.Context) error
	Previous(ctx context.Context) error
	Snapshot() error
	Copy() error
	ToggleOverlay() error
}

// HandleEvent carries out the action for the event. Returns true if the
// event is a request to quit. Errors from the handler are returned but do
// not mean that the application should quit.
func HandleEvent(ctx context.Context, ev gui.Event, handle HandleInput) (bool, error) {
	switch ev := ev.(type) {
	case gui.EventQuit:
		return true, nil

	case gui.EventKeyboard:
		switch KeyAction(ev) {
		case ActionNext:
			return false, handle.Next(ctx)
		case ActionPrevious:
			return false, handle.Previous(ctx)
		case ActionSnapshot:
			return false, handle.Snapshot()
		case ActionCopy:
			return false, handle.Copy()
		case ActionOverlay:
			return false, handle.ToggleOverlay()
		case ActionQuit:
			return true, nil
		}

	case error:
		return false, ev
	}

	return false, nil
}
