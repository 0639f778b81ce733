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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// WarningBoilerPlate is written at the top of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while vcsplay is running ***"

// separator between key and value in the preferences file.
const keySep = " :: "

// Disk represents preference values as stored on disk. Values are added to a
// Disk instance with Add(). Keys not added to an instance are preserved when
// the file is saved, meaning that more than one Disk instance can share the
// same file.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, errors.New("prefs: no path for preferences file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) || strings.ContainsAny(key, "\n") {
		return fmt.Errorf("prefs: illegal key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already added (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// read the key/value pairs in the preferences file. a missing file results
// in an empty map and no error.
func (dsk *Disk) read() (map[string]string, error) {
	vals := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return vals, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line is the boiler plate warning
	if scanner.Scan() && scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("prefs: not a valid preferences file (%s)", dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) != 2 {
			continue
		}
		vals[kv[0]] = kv[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return vals, nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	vals, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		vals[k] = p.String()
	}

	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, vals[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. Values for keys that are not in the file
// are left unchanged. A missing file is not an error.
func (dsk *Disk) Load() error {
	vals, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := vals[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return nil
}
