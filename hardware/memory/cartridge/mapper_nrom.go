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

import "github.com/gopher2a03/gopher2a03/hardware/memory/cartridge/mapper"

// NROM has no bank switching. A 16KB PRG ROM is mirrored in the upper half of
// the address space.
type nrom struct {
	mapper.Banks
}

func newNROM() mapper.Mapper {
	return &nrom{}
}

// ID implements the mapper.Mapper interface.
func (m *nrom) ID() string {
	return "NROM"
}

// Initialise implements the mapper.Mapper interface.
func (m *nrom) Initialise(numPrg, numChr, numSav int) {
	m.InitialiseBanks(numPrg, numChr, numSav)
	m.SetPrgBank16K(0, 0)
	m.SetPrgBank16K(1, -1)
	m.SetChrBank8K(0)
	m.SetSavBank8K(0)
}

// OnCPUWrite implements the mapper.Mapper interface.
func (m *nrom) OnCPUWrite(_ uint16, _ uint8) {
}
