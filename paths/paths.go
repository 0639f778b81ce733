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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function. that function should be used instead.
const baseResourcePath = ".vcsplay"

// ResourcePath returns the path of the named file in the subPth directory of
// the resource directory. Directories that do not exist are created. Either
// argument can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	dir := filepath.Join(base, subPth)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	return filepath.Join(dir, file), nil
}

// getBasePath() returns baseResourcePath if it exists in the current
// directory. otherwise the baseResourcePath (without the leading dot) in the
// user's config directory.
func getBasePath() (string, error) {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath, nil
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, baseResourcePath[1:]), nil
}
