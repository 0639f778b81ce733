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

package cartridgeloader

import (
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Loader is used to read a program supplied by the user, either from a local
// file or from a http(s) URL.
type Loader struct {
	// filename of program to load
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte

	// client used for http(s) requests. nil means http.DefaultClient
	Client *http.Client
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns the base of the filename with the extension removed.
func (cl Loader) ShortName() string {
	var base string
	if isRemote(cl.Filename) {
		base = path.Base(cl.Filename)
	} else {
		base = filepath.Base(cl.Filename)
	}
	return strings.TrimSuffix(base, path.Ext(base))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

func isRemote(filename string) bool {
	u, err := url.Parse(filename)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// Load the program data. Filenames with a http or https scheme are fetched
// with Fetch(). Anything else is treated as a local file.
func (cl *Loader) Load(ctx context.Context) error {
	if cl.HasLoaded() {
		return nil
	}

	var err error

	if isRemote(cl.Filename) {
		cl.Data, err = Fetch(ctx, cl.Client, cl.Filename)
		if err != nil {
			return err
		}
	} else {
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}
		if len(cl.Data) == 0 {
			return fmt.Errorf("%w (%s)", ErrEmptyProgram, cl.Filename)
		}
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return errors.New("cartridgeloader: unexpected hash value")
	}

	cl.Hash = hash

	return nil
}

// Image returns the loaded data as an uploaded ProgramImage. The name of the
// image is the base of the filename. Load() must have been called
// successfully.
func (cl Loader) Image() (ProgramImage, error) {
	if !cl.HasLoaded() {
		return ProgramImage{}, fmt.Errorf("%w (%s)", ErrEmptyProgram, cl.Filename)
	}
	name := filepath.Base(cl.Filename)
	if isRemote(cl.Filename) {
		name = path.Base(cl.Filename)
	}
	return NewUploadedImage(name, cl.Data), nil
}
