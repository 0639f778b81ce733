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

// Package gui defines the interface between the application and the windowed
// presentation surfaces. Implementations are in the sub-packages.
package gui

import "github.com/vcsplay/vcsplay/playback"

// GUI is implemented by windowed surfaces. Frames are presented from the
// playback goroutine through the playback.Surface interface but the window
// itself belongs to the main thread.
type GUI interface {
	playback.Surface

	// Send a request to set a GUI feature. MUST NOT be called from the
	// #mainthread
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// Service the window. Draws the most recent frame and forwards window
	// events. MUST ONLY be called from the #mainthread
	Service()

	// Destroy the window. MUST ONLY be called from the #mainthread
	Destroy()
}
