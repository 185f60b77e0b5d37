// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

package hardware

import (
	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/paths"
	"github.com/gopher2a03/gopher2a03/prefs"
)

// error patterns
const (
	BadFrameRate = "hardware: frame rate must be positive (%v)"
)

// NTSCFrameRate is the nominal frame rate of an NTSC console.
const NTSCFrameRate = 60.0988

// Preferences for the hardware package.
type Preferences struct {
	dsk *prefs.Disk

	// whether the emulation starts in turbo mode
	Turbo prefs.Bool

	// frames per second when not in turbo mode
	FPS prefs.Float
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

func defaultPreferences() *Preferences {
	p := &Preferences{}
	p.Turbo.Set(false)
	p.FPS.Set(NTSCFrameRate)
	p.FPS.SetHookPre(func(v prefs.Value) error {
		if f, ok := v.(float64); ok && f <= 0.0 {
			return curated.Errorf(BadFrameRate, f)
		}
		return nil
	})
	return p
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are stored in the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences but uses the named file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := defaultPreferences()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.turbo", &p.Turbo)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.fps", &p.FPS)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
