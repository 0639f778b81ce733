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

package sdlplay

import (
	"fmt"

	"github.com/vcsplay/vcsplay/gui"
)

// SetFeature implements the gui.GUI interface. The request is serviced by
// the next call to Service().
//
// MUST NOT be called from the #mainthread
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	done := make(chan error, 1)
	scr.service <- func() {
		done <- scr.serviceFeatureRequest(request, args)
	}
	return <-done
}

func (scr *SdlPlay) serviceFeatureRequest(request gui.FeatureReq, args []gui.FeatureReqData) (err error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sdlplay: %s: %v", request, r)
		}
	}()

	switch request {
	case gui.ReqSetEventChan:
		scr.events = args[0].(chan gui.Event)

	case gui.ReqSetVisibility:
		scr.showWindow(args[0].(bool))

	case gui.ReqSetCaption:
		scr.window.SetTitle(args[0].(string))

	case gui.ReqSetScale:
		err = scr.setScaling(args[0].(float32))

	default:
		return fmt.Errorf("%w: %s", gui.ErrUnsupportedFeature, request)
	}

	return err
}
