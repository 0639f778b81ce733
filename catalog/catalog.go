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

// Package catalog is the fixed list of programs that can be played without
// the user supplying a program file. There are two categories of program:
// test programs that exercise specific parts of the hardware and games.
//
// Only games of 4K or less are in the catalog. The start address of each
// game is decided by its size.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vcsplay/vcsplay/cartridgeloader"
)

// Category of catalog entry.
type Category int

// List of valid Category values.
const (
	Test Category = iota
	Game
)

func (c Category) String() string {
	switch c {
	case Test:
		return "test"
	case Game:
		return "game"
	}
	return "unknown category"
}

// Entry is a single program in the catalog.
type Entry struct {
	Name         string
	Description  string
	URL          string
	StartAddress uint16

	// size of the program in kilobytes. zero if the size is not known
	SizeKB float64

	Category Category

	// optional URL with more information about the program
	InfoURL string
}

// Label is the name of the entry with the size appended, if the size is
// known.
func (e Entry) Label() string {
	if e.SizeKB == 0 {
		return e.Name
	}
	return fmt.Sprintf("%s (%sK)", e.Name, strconv.FormatFloat(e.SizeKB, 'f', -1, 64))
}

func (e Entry) String() string {
	return e.Label()
}

// the largest game in the catalog
const maxGameSizeKB = 4

// ErrNoServer is returned when an entry with a relative URL is resolved and
// there is no catalog server.
var ErrNoServer = errors.New("catalog: no server for relative URL")

// Catalog is the list of catalog entries. A Catalog is not modified after
// creation and is safe for concurrent use.
type Catalog struct {
	entries []Entry
	server  *url.URL
}

// New creates the catalog. The server is used to resolve the URLs of the
// test programs. It can be empty, in which case test programs cannot be
// fetched.
func New(server string) (*Catalog, error) {
	cat := &Catalog{}

	server = strings.TrimSpace(server)
	if server != "" {
		u, err := url.Parse(server)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("catalog: server must be an absolute URL (%s)", server)
		}
		cat.server = u
	}

	for _, e := range testPrograms {
		e.Category = Test
		cat.entries = append(cat.entries, e)
	}

	for _, e := range games {
		if e.SizeKB > maxGameSizeKB {
			continue
		}
		e.Category = Game
		e.URL = fmt.Sprintf("%s%s.bin", gameServer, e.Name)
		e.StartAddress = cartridgeloader.StartAddress(int(e.SizeKB * 1024))
		cat.entries = append(cat.entries, e)
	}

	return cat, nil
}

// Len returns the number of entries in the catalog.
func (cat *Catalog) Len() int {
	return len(cat.entries)
}

// Entries returns a copy of all entries. Test programs are listed first.
func (cat *Catalog) Entries() []Entry {
	e := make([]Entry, len(cat.entries))
	copy(e, cat.entries)
	return e
}

// At returns the entry at index i. The index wraps around in both
// directions so that it is always valid.
func (cat *Catalog) At(i int) Entry {
	n := len(cat.entries)
	return cat.entries[((i%n)+n)%n]
}

// Find the entry with the name. The search is case insensitive. Returns the
// entry and its index, or -1 if there is no entry with that name.
func (cat *Catalog) Find(name string) (Entry, int) {
	name = strings.TrimSpace(name)
	for i, e := range cat.entries {
		if strings.EqualFold(e.Name, name) {
			return e, i
		}
	}
	return Entry{}, -1
}

// ResolveURL returns the absolute URL for the entry.
func (cat *Catalog) ResolveURL(e Entry) (string, error) {
	u, err := url.Parse(e.URL)
	if err != nil {
		return "", fmt.Errorf("catalog: %w", err)
	}
	if u.IsAbs() {
		return u.String(), nil
	}
	if cat.server == nil {
		return "", fmt.Errorf("%w (%s)", ErrNoServer, e.Name)
	}
	return cat.server.ResolveReference(u).String(), nil
}

// Reachable returns false if the entry's URL can never be resolved. That is
// the case for entries with a relative URL when the catalog has no server.
func (cat *Catalog) Reachable(e Entry) bool {
	_, err := cat.ResolveURL(e)
	return err == nil
}

// Image fetches the program data for the entry and returns it as a
// cartridgeloader.ProgramImage, with the entry's name and start address.
func (cat *Catalog) Image(ctx context.Context, f cartridgeloader.Fetcher, e Entry) (cartridgeloader.ProgramImage, error) {
	u, err := cat.ResolveURL(e)
	if err != nil {
		return cartridgeloader.ProgramImage{}, err
	}
	data, err := f.Fetch(ctx, u)
	if err != nil {
		return cartridgeloader.ProgramImage{}, err
	}
	return cartridgeloader.NewCatalogImage(e.Name, e.StartAddress, data), nil
}
