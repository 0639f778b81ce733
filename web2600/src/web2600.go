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
	"context"
	"fmt"
	"syscall/js"
	"time"

	"github.com/vcsplay/vcsplay/cartridgeloader"
	"github.com/vcsplay/vcsplay/catalog"
	"github.com/vcsplay/vcsplay/core"
	"github.com/vcsplay/vcsplay/core/testcard"
	"github.com/vcsplay/vcsplay/logger"
	"github.com/vcsplay/vcsplay/performance"
	"github.com/vcsplay/vcsplay/playback"
)

func main() {
	worker := js.Global().Get("self")

	// the catalog server is the origin of the page
	cat, err := catalog.New(js.Global().Get("location").Get("origin").String())
	if err != nil {
		panic(err)
	}

	ctx := context.Background()

	drv := playback.NewDriver(core.NewGate(testcard.NewCore(0)), cat, nil, playback.DefaultSettings)
	_ = drv.SetSurface(NewCanvas(worker))
	drv.Start(ctx)

	// list of catalog entries for the drop down
	for _, e := range cat.Entries() {
		worker.Call("addCatalogEntry", e.Name, e.Label(), e.Category.String())
	}

	// message handler receives commands from the page. fetching blocks so
	// every command is run in its own goroutine
	messageHandler := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		data := args[0].Get("data")
		cmd := data.Get("cmd").String()

		go func() {
			var err error

			switch cmd {
			case "select":
				err = drv.SelectName(ctx, data.Get("name").String())
			case "next":
				err = drv.Next(ctx)
			case "previous":
				err = drv.Previous(ctx)
			case "upload":
				b := make([]byte, data.Get("data").Get("length").Int())
				js.CopyBytesToGo(b, data.Get("data"))
				err = drv.UploadImage(cartridgeloader.NewUploadedImage(data.Get("name").String(), b))
			case "clearUpload":
				err = drv.ClearUpload()
			case "overlay":
				s := drv.Settings()
				s.Overlay = data.Get("on").Bool()
				err = drv.SetSettings(s)
			default:
				logger.Logf(logger.Allow, "web2600", "unknown command: %s", cmd)
			}

			if err != nil {
				worker.Call("showError", fmt.Sprintf("%s: %v", cmd, err))
			}
		}()

		return nil
	})
	defer func() {
		worker.Call("removeEventListener", "message", messageHandler, false)
		messageHandler.Release()
	}()
	worker.Call("addEventListener", "message", messageHandler, false)

	if err := drv.Wait(ctx); err != nil {
		worker.Call("showError", err.Error())
		return
	}

	// status values are sent to the page once a second
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		worker.Call("updateStatus", drv.ProgramName(), performance.FormatFPS(drv.FPS()))
	}
}
