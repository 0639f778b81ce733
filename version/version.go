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

// Package version reports the version of the application. The version number
// is set at link time with:
//
//	-ldflags "-X github.com/vcsplay/vcsplay/version.number=v0.1.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "vcsplay"

// set by the linker. empty if the project was not built with a version number
var number string

var (
	version  string
	revision string
	release  bool
)

// Version returns the version string, the revision string and whether this
// is a numbered release.
//
// The version string is "unreleased" if the binary was built from a vcs
// checkout without a version number and "local" if there is no vcs
// information at all. A revision that has uncommitted changes is suffixed
// with "+dirty".
func Version() (string, string, bool) {
	return version, revision, release
}

// String returns a single line description of the version suitable for
// logging and for the --version flag.
func String() string {
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

func init() {
	version, revision = fromBuildInfo(number)
	release = number != "" && version == number
}

func fromBuildInfo(number string) (string, string) {
	var vcs bool
	var rev string
	var dirty bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = v.Value
			case "vcs.modified":
				dirty = v.Value == "true"
			}
		}
	}

	if rev == "" {
		rev = "no revision information"
	} else if dirty {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
