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

package userinput

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// CopyImage copies the image to the system clipboard as a PNG.
func CopyImage(img image.Image) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return fmt.Errorf("userinput: clipboard: %w", clipboardErr)
	}

	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		return fmt.Errorf("userinput: %w", err)
	}

	clipboard.Write(clipboard.FmtImage, b.Bytes())

	return nil
}
