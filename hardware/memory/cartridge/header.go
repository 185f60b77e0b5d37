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

package cartridge

import (
	"fmt"

	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/hardware/memory/cartridge/mapper"
)

// error patterns
const (
	NotINES   = "cartridge: not an iNES file"
	ShortData = "cartridge: data too short (%d bytes, expected %d)"
)

// HeaderSize is the size of the iNES header.
const HeaderSize = 16

// TrainerSize is the size of the optional trainer that follows the header.
const TrainerSize = 512

var magic = []byte{'N', 'E', 'S', 0x1a}

// Header is the information parsed from the iNES header.
type Header struct {
	// size in bytes
	PrgSize int
	ChrSize int

	MapperID int

	// mirroring as specified by the header. mappers can override this
	Mirroring mapper.Mirroring

	// save RAM is battery backed
	HasSRAM bool

	// the trainer is skipped when loading
	HasTrainer bool

	// number of 8KB banks of PRG RAM
	NumPrgRAMBanks int

	// the mapper is not supported and the cartridge was loaded with mapper 0
	Fallback bool
}

func (h Header) String() string {
	s := fmt.Sprintf("mapper %d, PRG %dKB, CHR %dKB, %s mirroring", h.MapperID, h.PrgSize/1024, h.ChrSize/1024, h.Mirroring)
	if h.ChrSize == 0 {
		s = fmt.Sprintf("%s, CHR RAM", s)
	}
	if h.HasSRAM {
		s = fmt.Sprintf("%s, battery", s)
	}
	if h.HasTrainer {
		s = fmt.Sprintf("%s, trainer", s)
	}
	if h.Fallback {
		s = fmt.Sprintf("%s (unsupported mapper)", s)
	}
	return s
}

// ParseHeader parses the iNES header at the start of the data. The data must
// be large enough for the PRG and CHR banks declared by the header.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, curated.Errorf(ShortData, len(data), HeaderSize)
	}
	for i := range magic {
		if data[i] != magic[i] {
			return Header{}, curated.Errorf(NotINES)
		}
	}

	h := Header{
		PrgSize:        int(data[4]) * 0x4000,
		ChrSize:        int(data[5]) * 0x2000,
		MapperID:       int(data[6]>>4) | int(data[7]&0xf0),
		HasSRAM:        data[6]&0x02 == 0x02,
		HasTrainer:     data[6]&0x04 == 0x04,
		NumPrgRAMBanks: int(data[8]),
	}

	if data[6]&0x01 == 0x01 {
		h.Mirroring = mapper.Vertical
	} else {
		h.Mirroring = mapper.Horizontal
	}

	// a value of zero means one bank for compatibility
	if h.NumPrgRAMBanks == 0 {
		h.NumPrgRAMBanks = 1
	}

	expected := HeaderSize + h.PrgSize + h.ChrSize
	if h.HasTrainer {
		expected += TrainerSize
	}
	if len(data) < expected {
		return Header{}, curated.Errorf(ShortData, len(data), expected)
	}

	return h, nil
}
