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
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrEmptyProgram is returned when program data has been read successfully
// but there is no data.
var ErrEmptyProgram = errors.New("cartridgeloader: program is empty")

// FetchError is returned by Fetch() when the server responds with anything
// other than a success status.
type FetchError struct {
	Status int
	URL    string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("cartridgeloader: fetch failed: %d %s (%s)", e.Status, http.StatusText(e.Status), e.URL)
}

// Fetcher implementations retrieve program data from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher implements the Fetcher interface with the Fetch() function.
type HTTPFetcher struct {
	// nil means http.DefaultClient
	Client *http.Client
}

// Fetch implements the Fetcher interface.
func (f HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return Fetch(ctx, f.Client, url)
}

// Fetch the program data at the URL. If client is nil then
// http.DefaultClient is used.
func Fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("cartridgeloader: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cartridgeloader: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Status: resp.StatusCode, URL: url}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cartridgeloader: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrEmptyProgram, url)
	}

	return data, nil
}

// reader that stops with the context's error once the context is done
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr contextReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}

// ReadUpload reads the entire contents of r and creates an uploaded
// ProgramImage with the supplied name. An empty upload is an error and no
// image is produced.
func ReadUpload(ctx context.Context, name string, r io.Reader) (ProgramImage, error) {
	data, err := io.ReadAll(contextReader{ctx: ctx, r: r})
	if err != nil {
		return ProgramImage{}, fmt.Errorf("cartridgeloader: %s: %w", name, err)
	}
	if len(data) == 0 {
		return ProgramImage{}, fmt.Errorf("%w (%s)", ErrEmptyProgram, name)
	}
	return NewUploadedImage(name, data), nil
}
