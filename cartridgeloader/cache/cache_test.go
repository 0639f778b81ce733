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

package cache_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/vcsplay/vcsplay/cartridgeloader"
	"github.com/vcsplay/vcsplay/cartridgeloader/cache"
	"github.com/vcsplay/vcsplay/test"
)

func TestCache(t *testing.T) {
	ctx := context.Background()

	fn := filepath.Join(t.TempDir(), "cache.db")
	c, err := cache.Open(fn, nil)
	test.DemandSuccess(t, err)
	defer c.Close()

	_, ok, err := c.Get(ctx, "http://example.com/a.bin")
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, c.Put(ctx, "http://example.com/a.bin", []byte{1, 2, 3}))
	data, ok, err := c.Get(ctx, "http://example.com/a.bin")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, string(data), string([]byte{1, 2, 3}))

	// replace existing data
	test.ExpectSuccess(t, c.Put(ctx, "http://example.com/a.bin", []byte{4}))
	data, _, _ = c.Get(ctx, "http://example.com/a.bin")
	test.ExpectEquality(t, len(data), 1)

	n, err := c.Len(ctx)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 1)

	test.ExpectSuccess(t, c.Clear(ctx))
	n, _ = c.Len(ctx)
	test.ExpectEquality(t, n, 0)
}

func TestCacheFetch(t *testing.T) {
	ctx := context.Background()

	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.URL.Path != "/adventure.bin" {
			http.NotFound(w, r)
			return
		}
		w.Write(make([]byte, 4096))
	}))
	defer srv.Close()

	c, err := cache.Open(filepath.Join(t.TempDir(), "cache.db"), cartridgeloader.HTTPFetcher{Client: srv.Client()})
	test.DemandSuccess(t, err)
	defer c.Close()

	// first fetch goes to the server, the second is from the cache
	for range 2 {
		data, err := c.Fetch(ctx, srv.URL+"/adventure.bin")
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, len(data), 4096)
	}
	test.ExpectEquality(t, requests.Load(), int32(1))

	// failures are not cached
	_, err = c.Fetch(ctx, srv.URL+"/missing.bin")
	var fe *cartridgeloader.FetchError
	test.ExpectSuccess(t, errors.As(err, &fe))
	n, _ := c.Len(ctx)
	test.ExpectEquality(t, n, 1)
}
