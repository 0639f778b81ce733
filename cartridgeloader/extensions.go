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
	"path/filepath"
	"slices"
	"strings"
)

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package. Program files with other extensions can still be
// loaded but they will not be offered by any file listing.
var FileExtensions = [...]string{".BIN", ".ROM", ".A26", ".2K", ".4K"}

// HasProgramExtension returns true if the filename ends with one of the
// extensions in FileExtensions. The comparison is case insensitive.
func HasProgramExtension(filename string) bool {
	return slices.Contains(FileExtensions[:], strings.ToUpper(filepath.Ext(filename)))
}
