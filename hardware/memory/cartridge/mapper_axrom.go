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
	"github.com/gopher2a03/gopher2a03/hardware/memory/cartridge/mapper"
	"github.com/gopher2a03/gopher2a03/hardware/serializer"
)

// AxROM switches all 32KB of PRG. Bit 4 of the register selects which
// nametable is used for single screen mirroring.
type axrom struct {
	mapper.Banks
	register uint8
}

func newAxROM() mapper.Mapper {
	return &axrom{}
}

// ID implements the mapper.Mapper interface.
func (m *axrom) ID() string {
	return "AxROM"
}

// Initialise implements the mapper.Mapper interface.
func (m *axrom) Initialise(numPrg, numChr, numSav int) {
	m.InitialiseBanks(numPrg, numChr, numSav)
	m.register = 0
	m.SetChrBank8K(0)
	m.SetSavBank8K(0)
	m.update()
}

func (m *axrom) update() {
	m.SetPrgBank32K(int(m.register & 0x07))
	if m.register&0x10 == 0x10 {
		m.SetMirroring(mapper.OneScreenUpper)
	} else {
		m.SetMirroring(mapper.OneScreenLower)
	}
}

// OnCPUWrite implements the mapper.Mapper interface.
func (m *axrom) OnCPUWrite(address uint16, data uint8) {
	if address < 0x8000 {
		return
	}
	m.register = data
	m.update()
}

// Serialize implements the serializer.Serializable interface.
func (m *axrom) Serialize(s *serializer.Serializer) {
	m.Banks.Serialize(s)
	s.Uint8(&m.register)
}
