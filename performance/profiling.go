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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"
)

// Profile specifies which profiles are to be generated by RunProfiler(). The
// values can be combined.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
	ProfileTrace
)

// ProfileAll generates every profile type.
const ProfileAll = ProfileCPU | ProfileMem | ProfileTrace

// ParseProfileString converts a comma separated list of profile names to a
// Profile value. Valid names are "cpu", "mem", "trace", "all" and "none".
func ParseProfileString(s string) (Profile, error) {
	p := ProfileNone
	for _, n := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "", "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "trace":
			p |= ProfileTrace
		case "all":
			p |= ProfileAll
		default:
			return ProfileNone, fmt.Errorf("performance: unknown profile type (%s)", n)
		}
	}
	return p, nil
}

func (p Profile) String() string {
	if p == ProfileNone {
		return "none"
	}
	var s []string
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "cpu")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "mem")
	}
	if p&ProfileTrace == ProfileTrace {
		s = append(s, "trace")
	}
	return strings.Join(s, ",")
}

// RunProfiler runs the supplied function and creates the profiles specified
// by the profile argument. Profile files are named with the filenameHeader
// followed by the profile type. For example, "performance_cpu.profile".
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenameHeader))
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = fmt.Errorf("performance: %w", err)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(fmt.Sprintf("%s_trace.profile", filenameHeader))
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = fmt.Errorf("performance: %w", err)
			}
		}()

		if err := trace.Start(f); err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer trace.Stop()
	}

	if err := run(); err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", filenameHeader))
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("performance: %w", err)
		}
	}

	return nil
}
