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

package rewind

import (
	"github.com/gopher2a03/gopher2a03/paths"
	"github.com/gopher2a03/gopher2a03/prefs"
)

// Preferences for the rewind system.
type Preferences struct {
	dsk *prefs.Disk

	// the number of snapshots kept in the history
	MaxEntries prefs.Int

	// a snapshot is taken every Freq frames
	Freq prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// default values
const (
	maxEntries   = 600
	snapshotFreq = 1
)

// the smallest usable history is two entries
const minEntries = 2

func defaultPreferences() *Preferences {
	p := &Preferences{}
	p.MaxEntries.Set(maxEntries)
	p.Freq.Set(snapshotFreq)
	p.MaxEntries.SetHookPre(func(v prefs.Value) error {
		return checkAtLeast(v, minEntries)
	})
	p.Freq.SetHookPre(func(v prefs.Value) error {
		return checkAtLeast(v, 1)
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
	err = p.dsk.Add("rewind.maxEntries", &p.MaxEntries)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rewind.freq", &p.Freq)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Load rewind preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current rewind preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
