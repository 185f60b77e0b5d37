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
	"bytes"
	"crypto/sha1"
	"encoding/binary"
	"hash/crc32"

	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/logger"
)

// error patterns
const (
	NoState        = "hardware: no save state"
	StateMagic     = "hardware: not a save state"
	StateVersion   = "hardware: save state version mismatch (%d, expected %d)"
	StateCartridge = "hardware: save state is for a different cartridge"
	StateLength    = "hardware: save state length mismatch (%d, expected %d)"
	StateChecksum  = "hardware: save state checksum mismatch"
	StateCorrupt   = "hardware: save state corrupt: %v"
)

// stateMagic identifies a save state
const stateMagic = "G2A03STATE"

// stateFormat should be increased whenever the serialized layout of any
// component changes
const stateFormat uint16 = 2

// layout of the save state header. all values are little endian
//
//	magic      10 bytes
//	format      2 bytes
//	rom sha1   20 bytes
//	crc32       4 bytes (of the payload)
//	length      4 bytes (of the payload)
const stateHeaderSize = len(stateMagic) + 2 + sha1.Size + 4 + 4

// SaveState stores the current state in the save state slot.
func (nes *NES) SaveState() error {
	if !nes.Cart.IsLoaded() {
		return curated.Errorf(NoCartridge)
	}
	nes.slot = nes.StateData()
	logger.Log(logger.Allow, "hardware", "state saved")
	return nil
}

// LoadState restores the machine from the save state slot.
func (nes *NES) LoadState() error {
	if nes.slot == nil {
		return curated.Errorf(NoState)
	}
	if err := nes.LoadStateData(nes.slot); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "hardware", "state loaded: %s", nes.Status())
	return nil
}

// HasState returns true if the save state slot is occupied.
func (nes *NES) HasState() bool {
	return nes.slot != nil
}

// StateData returns the current state of the machine as a save state. The
// data can be given to LoadStateData() as long as the same cartridge is
// loaded.
func (nes *NES) StateData() []byte {
	payload := nes.snapshot()

	b := make([]byte, 0, stateHeaderSize+len(payload))
	b = append(b, stateMagic...)
	b = binary.LittleEndian.AppendUint16(b, stateFormat)
	b = append(b, nes.romHash[:]...)
	b = binary.LittleEndian.AppendUint32(b, crc32.ChecksumIEEE(payload))
	b = binary.LittleEndian.AppendUint32(b, uint32(len(payload)))
	b = append(b, payload...)

	return b
}

// LoadStateData restores the machine from a save state. Every field of the
// save state header is checked before the machine is changed. If the payload
// cannot be restored completely the machine is returned to the state it was
// in before the call.
func (nes *NES) LoadStateData(data []byte) error {
	if !nes.Cart.IsLoaded() {
		return curated.Errorf(NoCartridge)
	}

	if len(data) < stateHeaderSize || !bytes.Equal(data[:len(stateMagic)], []byte(stateMagic)) {
		return curated.Errorf(StateMagic)
	}
	hdr := data[len(stateMagic):stateHeaderSize]

	format := binary.LittleEndian.Uint16(hdr)
	if format != stateFormat {
		return curated.Errorf(StateVersion, format, stateFormat)
	}
	hdr = hdr[2:]

	if !bytes.Equal(hdr[:sha1.Size], nes.romHash[:]) {
		return curated.Errorf(StateCartridge)
	}
	hdr = hdr[sha1.Size:]

	crc := binary.LittleEndian.Uint32(hdr)
	length := int(binary.LittleEndian.Uint32(hdr[4:]))

	payload := data[stateHeaderSize:]
	if length != len(payload) {
		return curated.Errorf(StateLength, len(payload), length)
	}
	if crc != crc32.ChecksumIEEE(payload) {
		return curated.Errorf(StateChecksum)
	}

	return nes.restore(payload)
}
