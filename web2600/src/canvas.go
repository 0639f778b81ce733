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

//go:build js && wasm

package main

import (
	"encoding/base64"
	"image"
	"syscall/js"

	"github.com/vcsplay/vcsplay/television"
)

// Canvas implements the playback.Surface interface by passing each frame to
// the worker as a base64 encoded string of RGBA values. The page scales the
// canvas by two horizontally.
type Canvas struct {
	// the worker in which our WASM application is running
	worker js.Value

	frameNum int
}

// NewCanvas is the preferred method of initialisation for the Canvas type.
func NewCanvas(worker js.Value) *Canvas {
	scr := &Canvas{worker: worker}
	scr.worker.Call("updateCanvasSize", television.Width, television.Height)
	return scr
}

// Present implements the playback.Surface interface.
func (scr *Canvas) Present(img *image.RGBA) error {
	scr.frameNum++
	scr.worker.Call("updateDebug", "frameNum", scr.frameNum)
	scr.worker.Call("updateCanvas", base64.StdEncoding.EncodeToString(img.Pix))
	return nil
}
