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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/gopher2a03/gopher2a03/curated"
)

// DefaultPrefsFile is the name of the file used by most Disk instances.
const DefaultPrefsFile = "preferences"

// separator between key and value in the prefs file
const separator = " :: "

// header is the first line of the prefs file
const header = "*** gopher2a03 preferences file. do not edit ***"

// error patterns
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	FileError    = "prefs: %v"
	BadHeader    = "prefs: not a preferences file (%s)"
)

// Disk associates preference values with keys in a file.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add a preference value to the Disk instance under the key.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// read the prefs file into a map of raw values. a missing file is an empty
// map
func (dsk *Disk) read() (map[string]string, error) {
	raw := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return raw, nil
		}
		return nil, curated.Errorf(FileError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() && scanner.Text() != header {
		return nil, curated.Errorf(BadHeader, dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		raw[strings.TrimSpace(k)] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(FileError, err)
	}

	return raw, nil
}

// Save the current values to disk. Entries in the file belonging to other
// Disk instances are preserved.
func (dsk *Disk) Save() error {
	raw, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		raw[k] = p.String()
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(FileError, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, header)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, raw[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf(FileError, err)
	}
	if err := f.Close(); err != nil {
		return curated.Errorf(FileError, err)
	}

	return nil
}

// Load values from disk. Keys not in the file keep their current value. If
// saveOnFail is true and the file could not be loaded then the current
// values are saved, creating the file.
func (dsk *Disk) Load(saveOnFail bool) error {
	raw, err := dsk.read()
	if err != nil {
		if saveOnFail {
			return dsk.Save()
		}
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := raw[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(FileError, err)
			}
		}
	}

	return nil
}
