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

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/vcsplay/vcsplay/logger"
)

// the server can only be launched once per process
var launch sync.Once

// Launch the statsview server in a new goroutine. The address of the server
// is written to output. The returned function stops the server.
func Launch(output io.Writer) func() {
	var mgr *statsview.ViewManager

	launch.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr = statsview.New()
		go mgr.Start()

		logger.Logf(logger.Allow, "statsview", "launched on %s", Address)
		fmt.Fprintf(output, "stats server available at http://%s%s\n", Address, url)
	})

	return func() {
		if mgr != nil {
			mgr.Stop()
			logger.Log(logger.Allow, "statsview", "stopped")
		}
	}
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
