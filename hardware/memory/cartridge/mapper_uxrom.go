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

// UxROM switches the 16KB bank at $8000. The last bank is fixed at $C000.
type uxrom struct {
	mapper.Banks
	bank uint8
}

func newUxROM() mapper.Mapper {
	return &uxrom{}
}

// ID implements the mapper.Mapper interface.
func (m *uxrom) ID() string {
	return "UxROM"
}

// Initialise implements the mapper.Mapper interface.
func (m *uxrom) Initialise(numPrg, numChr, numSav int) {
	m.InitialiseBanks(numPrg, numChr, numSav)
	m.bank = 0
	m.SetPrgBank16K(0, 0)
	m.SetPrgBank16K(1, -1)
	m.SetChrBank8K(0)
	m.SetSavBank8K(0)
}

// OnCPUWrite implements the mapper.Mapper interface.
func (m *uxrom) OnCPUWrite(address uint16, data uint8) {
	if address < 0x8000 {
		return
	}
	m.bank = data
	m.SetPrgBank16K(0, int(m.bank))
}

// Serialize implements the serializer.Serializable interface.
func (m *uxrom) Serialize(s *serializer.Serializer) {
	m.Banks.Serialize(s)
	s.Uint8(&m.bank)
}
