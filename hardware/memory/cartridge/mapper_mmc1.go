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

// MMC1 registers are written one bit at a time through a five bit shift
// register. The fifth write copies the shift register to the register
// selected by bits 13 and 14 of the address.
//
//	$8000-$9FFF	control
//	$A000-$BFFF	CHR bank 0
//	$C000-$DFFF	CHR bank 1
//	$E000-$FFFF	PRG bank
//
// Writing a value with bit 7 set resets the shift register and fixes the last
// PRG bank at $C000.
//
// Cartridges with 512KB of PRG (SUROM) use bit 4 of CHR bank 0 to select the
// 256KB half of PRG.
type mmc1 struct {
	mapper.Banks

	shift uint8
	count uint8

	control uint8
	chr0    uint8
	chr1    uint8
	prg     uint8
}

func newMMC1() mapper.Mapper {
	return &mmc1{}
}

// ID implements the mapper.Mapper interface.
func (m *mmc1) ID() string {
	return "MMC1"
}

// Initialise implements the mapper.Mapper interface.
func (m *mmc1) Initialise(numPrg, numChr, numSav int) {
	m.InitialiseBanks(numPrg, numChr, numSav)
	m.shift = 0
	m.count = 0
	m.control = 0x0c
	m.chr0 = 0
	m.chr1 = 0
	m.prg = 0
	m.SetSavBank8K(0)
	m.update()
}

// OnCPUWrite implements the mapper.Mapper interface.
func (m *mmc1) OnCPUWrite(address uint16, data uint8) {
	if address < 0x8000 {
		return
	}

	if data&0x80 == 0x80 {
		m.shift = 0
		m.count = 0
		m.control |= 0x0c
		m.update()
		return
	}

	m.shift |= (data & 0x01) << m.count
	m.count++
	if m.count < 5 {
		return
	}

	switch (address >> 13) & 0x03 {
	case 0:
		m.control = m.shift
	case 1:
		m.chr0 = m.shift
	case 2:
		m.chr1 = m.shift
	case 3:
		m.prg = m.shift
	}

	m.shift = 0
	m.count = 0
	m.update()
}

func (m *mmc1) update() {
	switch m.control & 0x03 {
	case 0:
		m.SetMirroring(mapper.OneScreenLower)
	case 1:
		m.SetMirroring(mapper.OneScreenUpper)
	case 2:
		m.SetMirroring(mapper.Vertical)
	case 3:
		m.SetMirroring(mapper.Horizontal)
	}

	bank := int(m.prg & 0x0f)
	last := -1
	outer := 0
	if m.NumPrgBanks(0x4000) > 16 {
		outer = int(m.chr0 & 0x10)
		last = outer | 0x0f
	}

	switch (m.control >> 2) & 0x03 {
	case 0, 1:
		m.SetPrgBank32K((outer | bank) >> 1)
	case 2:
		m.SetPrgBank16K(0, outer)
		m.SetPrgBank16K(1, outer|bank)
	case 3:
		m.SetPrgBank16K(0, outer|bank)
		m.SetPrgBank16K(1, last)
	}

	if m.control&0x10 == 0x10 {
		m.SetChrBank4K(0, int(m.chr0))
		m.SetChrBank4K(1, int(m.chr1))
	} else {
		m.SetChrBank8K(int(m.chr0 >> 1))
	}
}

// Serialize implements the serializer.Serializable interface.
func (m *mmc1) Serialize(s *serializer.Serializer) {
	m.Banks.Serialize(s)
	s.Uint8(&m.shift)
	s.Uint8Range(&m.count, 4, "shift count")
	s.Uint8(&m.control)
	s.Uint8(&m.chr0)
	s.Uint8(&m.chr1)
	s.Uint8(&m.prg)
}
