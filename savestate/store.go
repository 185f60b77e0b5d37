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

package savestate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/logger"
	"github.com/gopher2a03/gopher2a03/paths"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
)

// error patterns
const (
	NoFile     = "savestate: no file (%s)"
	BadSlot    = "savestate: slot number out of range (%d)"
	StoreError = "savestate: %v"
	Closed     = "savestate: store is closed"
)

// NumSlots is the number of save state slots per cartridge.
const NumSlots = 10

// the directory in the resource path used by the default store
const savesDir = "saves"

// Store manages the save files for cartridges. Files are named by the name of
// the cartridge, which should be stable between sessions. The ROM hash is a
// good choice.
type Store struct {
	fs   afero.Fs
	base string

	enc    *zstd.Encoder
	dec    *zstd.Decoder
	closed bool
}

// NewStore is the preferred method of initialisation for the Store type.
func NewStore(fs afero.Fs, base string) (*Store, error) {
	st := &Store{
		fs:   fs,
		base: base,
	}

	var err error
	st.enc, err = zstd.NewWriter(nil)
	if err != nil {
		return nil, curated.Errorf(StoreError, err)
	}
	st.dec, err = zstd.NewReader(nil)
	if err != nil {
		_ = st.enc.Close()
		return nil, curated.Errorf(StoreError, err)
	}

	if err := st.fs.MkdirAll(base, 0700); err != nil {
		_ = st.Close()
		return nil, curated.Errorf(StoreError, err)
	}

	return st, nil
}

// Close releases the resources used by the compressor. Save state slots can
// not be used after the store is closed. Save RAM is unaffected.
func (st *Store) Close() error {
	if st.closed {
		return nil
	}
	st.closed = true
	st.dec.Close()
	if err := st.enc.Close(); err != nil {
		return curated.Errorf(StoreError, err)
	}
	return nil
}

// NewDefaultStore returns a Store in the resource path of the operating
// system's file system.
func NewDefaultStore() (*Store, error) {
	pth, err := paths.ResourcePath(savesDir, "")
	if err != nil {
		return nil, err
	}
	return NewStore(afero.NewOsFs(), pth)
}

func (st *Store) String() string {
	return st.base
}

func (st *Store) ramPath(name string) string {
	return filepath.Join(st.base, fmt.Sprintf("%s.sav", name))
}

func (st *Store) slotPath(name string, slot int) string {
	return filepath.Join(st.base, fmt.Sprintf("%s.state%d.zst", name, slot))
}

// write data to the file via a temporary file
func (st *Store) write(pth string, data []byte) error {
	tmp := pth + ".tmp"
	if err := afero.WriteFile(st.fs, tmp, data, 0600); err != nil {
		return curated.Errorf(StoreError, err)
	}
	if err := st.fs.Rename(tmp, pth); err != nil {
		_ = st.fs.Remove(tmp)
		return curated.Errorf(StoreError, err)
	}
	return nil
}

func (st *Store) read(pth string) ([]byte, error) {
	data, err := afero.ReadFile(st.fs, pth)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoFile, filepath.Base(pth))
		}
		return nil, curated.Errorf(StoreError, err)
	}
	return data, nil
}

// SaveRAM writes the contents of a cartridge's save RAM.
func (st *Store) SaveRAM(name string, data []byte) error {
	if err := st.write(st.ramPath(name), data); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "savestate", "save RAM written for %s", name)
	return nil
}

// LoadRAM returns the save RAM for the named cartridge.
func (st *Store) LoadRAM(name string) ([]byte, error) {
	return st.read(st.ramPath(name))
}

// SaveSlot compresses and writes the save state to the numbered slot.
func (st *Store) SaveSlot(name string, slot int, data []byte) error {
	if slot < 0 || slot >= NumSlots {
		return curated.Errorf(BadSlot, slot)
	}
	if st.closed {
		return curated.Errorf(Closed)
	}
	if err := st.write(st.slotPath(name, slot), st.enc.EncodeAll(data, nil)); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "savestate", "slot %d written for %s", slot, name)
	return nil
}

// LoadSlot returns the decompressed save state in the numbered slot.
func (st *Store) LoadSlot(name string, slot int) ([]byte, error) {
	if slot < 0 || slot >= NumSlots {
		return nil, curated.Errorf(BadSlot, slot)
	}
	if st.closed {
		return nil, curated.Errorf(Closed)
	}
	data, err := st.read(st.slotPath(name, slot))
	if err != nil {
		return nil, err
	}
	data, err = st.dec.DecodeAll(data, nil)
	if err != nil {
		return nil, curated.Errorf(StoreError, err)
	}
	return data, nil
}

// HasSlot returns true if there is a save state in the numbered slot.
func (st *Store) HasSlot(name string, slot int) bool {
	ok, err := afero.Exists(st.fs, st.slotPath(name, slot))
	return err == nil && ok
}
