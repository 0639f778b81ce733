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

package playback

import (
	"fmt"
	"time"

	"github.com/vcsplay/vcsplay/paths"
	"github.com/vcsplay/vcsplay/prefs"
	"github.com/vcsplay/vcsplay/television"
)

// the name of the preferences file in the resource directory
const prefsFile = "preferences"

// Preferences for playback. Values are stored on disk in the shared
// preferences file.
type Preferences struct {
	dsk *prefs.Disk

	// milliseconds between ticks
	Interval prefs.Int

	// cycles per tick
	Cycles prefs.Int

	// "split" or "packed"
	Mode prefs.String

	Halve   prefs.Bool
	Overlay prefs.Bool

	// server for the catalog test programs
	Server prefs.String

	// sqlite file for the fetch cache. empty string disables the cache
	Cache prefs.String
}

func (p *Preferences) String() string {
	return fmt.Sprintf("interval=%sms cycles=%s mode=%s halve=%s overlay=%s",
		p.Interval.String(), p.Cycles.String(), p.Mode.String(), p.Halve.String(), p.Overlay.String())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, fmt.Errorf("playback: %w", err)
	}
	return LoadPreferences(pth)
}

// LoadPreferences creates a Preferences instance using the named file.
// Default values are used for any value not in the file.
func LoadPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Interval.SetRange(1, 1000)
	p.Cycles.SetRange(1, 1000000)

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("playback: %w", err)
	}

	for _, v := range []struct {
		key string
		p   interface {
			String() string
			Set(prefs.Value) error
			Get() prefs.Value
		}
	}{
		{key: "playback.interval", p: &p.Interval},
		{key: "playback.cycles", p: &p.Cycles},
		{key: "television.mode", p: &p.Mode},
		{key: "television.halve", p: &p.Halve},
		{key: "television.overlay", p: &p.Overlay},
		{key: "catalog.server", p: &p.Server},
		{key: "catalog.cache", p: &p.Cache},
	} {
		if err := p.dsk.Add(v.key, v.p); err != nil {
			return nil, fmt.Errorf("playback: %w", err)
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, fmt.Errorf("playback: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Interval.Set(int(DefaultSettings.Cadence.Interval / time.Millisecond))
	_ = p.Cycles.Set(DefaultSettings.Cadence.Cycles)
	_ = p.Mode.Set(DefaultSettings.Mode.String())
	_ = p.Halve.Set(DefaultSettings.Halve)
	_ = p.Overlay.Set(DefaultSettings.Overlay)
	_ = p.Server.Set("")
	_ = p.Cache.Set("")
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if err := p.dsk.Load(); err != nil {
		return fmt.Errorf("playback: %w", err)
	}
	return nil
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if err := p.dsk.Save(); err != nil {
		return fmt.Errorf("playback: %w", err)
	}
	return nil
}

// Settings returns the preference values as a Settings instance.
func (p *Preferences) Settings() (Settings, error) {
	mode, err := television.ParseMode(p.Mode.String())
	if err != nil {
		return Settings{}, fmt.Errorf("playback: %w", err)
	}

	s := Settings{
		Cadence: Cadence{
			Interval: time.Duration(p.Interval.Get().(int)) * time.Millisecond,
			Cycles:   uint32(p.Cycles.Get().(int)),
		},
		Mode:    mode,
		Halve:   p.Halve.Get().(bool),
		Overlay: p.Overlay.Get().(bool),
	}

	if err := s.Cadence.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}
