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

import "errors"

// FeatureReq is used to request the setting of a gui attribute.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// List of valid feature requests. Argument must be of the type specified.
const (
	// the channel that window events are sent to
	ReqSetEventChan FeatureReq = "ReqSetEventChan" // chan Event

	// whether the window is visible
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// the text in the window title. normally the program name and the
	// current FPS
	ReqSetCaption FeatureReq = "ReqSetCaption" // string

	// the size of each pixel in the window. the horizontal scale is doubled
	ReqSetScale FeatureReq = "ReqSetScale" // float32
)

// ErrUnsupportedFeature is returned if GUI does not support the requested
// feature.
var ErrUnsupportedFeature = errors.New("gui: unsupported feature")
