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

// Package cache keeps a copy of program data fetched from the catalog in a
// sqlite database, so that catalog programs can be played without
// contacting the server each time.
package cache

import (
	"context"
	"crypto/sha1"
	"database/sql"
	"fmt"
	"time"

	"github.com/vcsplay/vcsplay/cartridgeloader"
	"github.com/vcsplay/vcsplay/logger"

	_ "github.com/mattn/go-sqlite3"
)

// Cache of fetched program data, keyed by URL.
type Cache struct {
	db   *sql.DB
	next cartridgeloader.Fetcher
}

// Open the cache database, creating it if necessary. Programs not in the
// cache are retrieved with next. If next is nil then a
// cartridgeloader.HTTPFetcher is used.
func Open(file string, next cartridgeloader.Fetcher) (*Cache, error) {
	if next == nil {
		next = cartridgeloader.HTTPFetcher{}
	}

	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS program (url TEXT PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, data BLOB NOT NULL, fetched INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: %w", err)
	}

	return &Cache{
		db:   db,
		next: next,
	}, nil
}

// Close the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get program data for URL. Returns false if there is no data for the URL.
func (c *Cache) Get(ctx context.Context, url string) ([]byte, bool, error) {
	var data []byte
	var hash string
	switch err := c.db.QueryRowContext(ctx, "SELECT data, sha1 FROM program WHERE url = ?", url).Scan(&data, &hash); err {
	case sql.ErrNoRows:
		return nil, false, nil
	case nil:
		// treat corrupted entries as missing
		if fmt.Sprintf("%x", sha1.Sum(data)) != hash {
			logger.Logf(logger.Allow, "cache", "hash mismatch for %s", url)
			return nil, false, nil
		}
		return data, true, nil
	default:
		return nil, false, fmt.Errorf("cache: %w", err)
	}
}

// Put program data for URL, replacing any existing data.
func (c *Cache) Put(ctx context.Context, url string, data []byte) error {
	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if _, err := c.db.ExecContext(ctx, "INSERT OR REPLACE INTO program (url, sha1, data, fetched) VALUES (?, ?, ?, ?)", url, hash, data, time.Now().Unix()); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	return nil
}

// Len returns the number of programs in the cache.
func (c *Cache) Len(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM program").Scan(&n); err != nil {
		return 0, fmt.Errorf("cache: %w", err)
	}
	return n, nil
}

// Clear all programs from the cache.
func (c *Cache) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM program"); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	return nil
}

// Fetch implements the cartridgeloader.Fetcher interface. Program data is
// returned from the cache if it is present. Otherwise the data is retrieved
// from the next Fetcher and added to the cache. A failure to add to the cache
// is logged but is not an error.
func (c *Cache) Fetch(ctx context.Context, url string) ([]byte, error) {
	data, ok, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	if ok {
		return data, nil
	}

	data, err = c.next.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := c.Put(ctx, url, data); err != nil {
		logger.Log(logger.Allow, "cache", err)
	}

	return data, nil
}
