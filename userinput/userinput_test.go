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

package userinput_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vcsplay/vcsplay/gui"
	"github.com/vcsplay/vcsplay/test"
	"github.com/vcsplay/vcsplay/userinput"
)

type handler struct {
	calls []string
	err   error
}

func (h *handler) Next(_ context.Context) error {
	h.calls = append(h.calls, "next")
	return h.err
}

func (h *handler) Previous(_ context.Context) error {
	h.calls = append(h.calls, "previous")
	return h.err
}

func (h *handler) Snapshot() error {
	h.calls = append(h.calls, "snapshot")
	return h.err
}

func (h *handler) Copy() error {
	h.calls = append(h.calls, "copy")
	return h.err
}

func (h *handler) ToggleOverlay() error {
	h.calls = append(h.calls, "overlay")
	return h.err
}

func TestKeyAction(t *testing.T) {
	for _, c := range []struct {
		ev     gui.EventKeyboard
		action userinput.Action
	}{
		{ev: gui.EventKeyboard{Key: "N", Down: true}, action: userinput.ActionNext},
		{ev: gui.EventKeyboard{Key: "n", Down: true}, action: userinput.ActionNext},
		{ev: gui.EventKeyboard{Key: "Right", Down: true}, action: userinput.ActionNext},
		{ev: gui.EventKeyboard{Key: "P", Down: true, Mod: gui.KeyModShift}, action: userinput.ActionPrevious},
		{ev: gui.EventKeyboard{Key: "Left", Down: true}, action: userinput.ActionPrevious},
		{ev: gui.EventKeyboard{Key: "S", Down: true}, action: userinput.ActionSnapshot},
		{ev: gui.EventKeyboard{Key: "C", Down: true}, action: userinput.ActionCopy},
		{ev: gui.EventKeyboard{Key: "O", Down: true}, action: userinput.ActionOverlay},
		{ev: gui.EventKeyboard{Key: "Escape", Down: true}, action: userinput.ActionQuit},
		{ev: gui.EventKeyboard{Key: "Q", Down: true}, action: userinput.ActionQuit},

		// releases and modified keys do nothing
		{ev: gui.EventKeyboard{Key: "N", Down: false}, action: userinput.ActionNone},
		{ev: gui.EventKeyboard{Key: "C", Down: true, Mod: gui.KeyModCtrl}, action: userinput.ActionNone},
		{ev: gui.EventKeyboard{Key: "X", Down: true}, action: userinput.ActionNone},
	} {
		test.ExpectEquality(t, userinput.KeyAction(c.ev), c.action, c.ev.Key)
	}
}

func TestHandleEvent(t *testing.T) {
	ctx := context.Background()
	h := &handler{}

	for _, k := range []string{"N", "P", "S", "C", "O", "X"} {
		quit, err := userinput.HandleEvent(ctx, gui.EventKeyboard{Key: k, Down: true}, h)
		test.ExpectSuccess(t, err)
		test.ExpectFailure(t, quit)
	}
	test.ExpectEquality(t, strings.Join(h.calls, ","), "next,previous,snapshot,copy,overlay")

	quit, err := userinput.HandleEvent(ctx, gui.EventKeyboard{Key: "Q", Down: true}, h)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, quit)

	quit, err = userinput.HandleEvent(ctx, gui.EventQuit{}, h)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, quit)

	// errors from the handler are returned but are not a reason to quit
	h.err = errors.New("fetch failed")
	quit, err = userinput.HandleEvent(ctx, gui.EventKeyboard{Key: "N", Down: true}, h)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, quit)

	// errors sent over the event channel are returned
	quit, err = userinput.HandleEvent(ctx, errors.New("window error"), h)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, quit)
}

func TestFormatStatus(t *testing.T) {
	s := userinput.FormatStatus(0, "collect-01", 59.94)
	test.ExpectSuccess(t, strings.HasPrefix(s, "collect-01 :: 59.9 fps"))

	s = userinput.FormatStatus(0, "", 0)
	test.ExpectSuccess(t, strings.HasPrefix(s, "no program :: 0.0 fps"))

	s = userinput.FormatStatus(20, "collect-01", 59.94)
	test.ExpectEquality(t, len(s), 19)
}
