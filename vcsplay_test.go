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

package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vcsplay/vcsplay/cartridgeloader"
	"github.com/vcsplay/vcsplay/catalog"
	"github.com/vcsplay/vcsplay/core"
	"github.com/vcsplay/vcsplay/core/testcard"
	"github.com/vcsplay/vcsplay/digest"
	"github.com/vcsplay/vcsplay/playback"
	"github.com/vcsplay/vcsplay/test"
)

func writeProgram(t *testing.T, name string, fill byte, size int) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, bytes.Repeat([]byte{fill}, size), 0o600))
	return fn
}

func TestLoadProgram(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/roms/collect_1.bin" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(bytes.Repeat([]byte{0xea}, 2048))
	}))
	defer srv.Close()

	cat, err := catalog.New(srv.URL)
	test.DemandSuccess(t, err)

	ctx := context.Background()
	f := cartridgeloader.HTTPFetcher{}

	_, err = loadProgram(ctx, cat, f, "")
	test.ExpectSuccess(t, errors.Is(err, errNoProgram))

	// catalog entry
	img, err := loadProgram(ctx, cat, f, "collect-01")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Name(), "collect-01")
	test.ExpectEquality(t, img.StartAddress(), uint16(0xf800))
	test.ExpectEquality(t, len(img.Data()), 2048)

	// file
	fn := writeProgram(t, "program.bin", 0xea, 4096)
	img, err = loadProgram(ctx, cat, f, fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Name(), "program.bin")
	test.ExpectEquality(t, img.StartAddress(), uint16(0xf000))

	// missing file
	_, err = loadProgram(ctx, cat, f, filepath.Join(t.TempDir(), "missing.bin"))
	test.ExpectFailure(t, err)
}

func TestPlayFramesDigest(t *testing.T) {
	settings := playback.DefaultSettings
	settings.Cadence.Interval = time.Millisecond

	run := func(fill byte) string {
		t.Helper()

		ld := cartridgeloader.NewLoader(writeProgram(t, "program.bin", fill, 4096))
		test.DemandSuccess(t, ld.Load(context.Background()))
		img, err := ld.Image()
		test.DemandSuccess(t, err)

		dig := digest.NewVideo()
		err = playFrames(context.Background(), core.NewGate(testcard.NewCore(0)), img, dig, settings, 20)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, dig.FrameNum(), 20)

		return dig.Hash()
	}

	// the same program always produces the same frames
	a := run(0x00)
	test.ExpectEquality(t, run(0x00), a)

	// a different program produces different frames
	test.ExpectInequality(t, run(0x05), a)

	// at least one frame is required
	img := cartridgeloader.NewUploadedImage("program.bin", make([]byte, 4096))
	err := playFrames(context.Background(), core.NewGate(testcard.NewCore(0)), img, digest.NewVideo(), settings, 0)
	test.ExpectFailure(t, err)
}
