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

// MMC3 has eight bank registers, selected by writing to the bank select
// register at even addresses in $8000-$9FFF and written through odd
// addresses in the same range.
//
//	R0, R1	2KB CHR banks
//	R2-R5	1KB CHR banks
//	R6, R7	8KB PRG banks
//
// The scanline counter is clocked by the PPU through OnScanline(). When the
// counter reaches zero an interrupt is raised if interrupts are enabled.
type mmc3 struct {
	mapper.Banks

	bankSelect uint8
	registers  [8]uint8

	reload          uint8
	counter         uint8
	reloadRequested bool
	irqEnabled      bool
	irqPending      bool
}

func newMMC3() mapper.Mapper {
	return &mmc3{}
}

// ID implements the mapper.Mapper interface.
func (m *mmc3) ID() string {
	return "MMC3"
}

// Initialise implements the mapper.Mapper interface.
func (m *mmc3) Initialise(numPrg, numChr, numSav int) {
	m.InitialiseBanks(numPrg, numChr, numSav)
	m.bankSelect = 0
	m.registers = [8]uint8{0, 2, 4, 5, 6, 7, 0, 1}
	m.reload = 0
	m.counter = 0
	m.reloadRequested = false
	m.irqEnabled = false
	m.irqPending = false
	m.SetSavBank8K(0)
	m.update()
}

// OnCPUWrite implements the mapper.Mapper interface.
func (m *mmc3) OnCPUWrite(address uint16, data uint8) {
	if address < 0x8000 {
		return
	}

	even := address&0x01 == 0x00

	switch address & 0xe000 {
	case 0x8000:
		if even {
			m.bankSelect = data
		} else {
			m.registers[m.bankSelect&0x07] = data
		}
		m.update()
	case 0xa000:
		if even {
			if data&0x01 == 0x01 {
				m.SetMirroring(mapper.Horizontal)
			} else {
				m.SetMirroring(mapper.Vertical)
			}
		} else {
			// PRG RAM protect. the chip enable bit is ignored so that the
			// RAM can always be read
			m.SetCanWriteSav(data&0x40 == 0x00)
		}
	case 0xc000:
		if even {
			m.reload = data
		} else {
			m.counter = 0
			m.reloadRequested = true
		}
	case 0xe000:
		if even {
			m.irqEnabled = false
			m.irqPending = false
		} else {
			m.irqEnabled = true
		}
	}
}

func (m *mmc3) update() {
	r := m.registers

	if m.bankSelect&0x40 == 0x40 {
		m.SetPrgBank8K(0, -2)
		m.SetPrgBank8K(2, int(r[6]&0x3f))
	} else {
		m.SetPrgBank8K(0, int(r[6]&0x3f))
		m.SetPrgBank8K(2, -2)
	}
	m.SetPrgBank8K(1, int(r[7]&0x3f))
	m.SetPrgBank8K(3, -1)

	// the 2KB banks are at $0000 unless CHR inversion is set
	big := 0
	small := 4
	if m.bankSelect&0x80 == 0x80 {
		big = 4
		small = 0
	}
	m.SetChrBank1K(big+0, int(r[0]&0xfe))
	m.SetChrBank1K(big+1, int(r[0]|0x01))
	m.SetChrBank1K(big+2, int(r[1]&0xfe))
	m.SetChrBank1K(big+3, int(r[1]|0x01))
	m.SetChrBank1K(small+0, int(r[2]))
	m.SetChrBank1K(small+1, int(r[3]))
	m.SetChrBank1K(small+2, int(r[4]))
	m.SetChrBank1K(small+3, int(r[5]))
}

// OnScanline implements the mapper.Mapper interface.
func (m *mmc3) OnScanline() {
	if m.reloadRequested || m.counter == 0 {
		m.counter = m.reload
		m.reloadRequested = false
	} else {
		m.counter--
	}

	if m.counter == 0 && m.irqEnabled {
		m.irqPending = true
	}
}

// TestAndClearIRQ implements the mapper.Mapper interface.
func (m *mmc3) TestAndClearIRQ() bool {
	p := m.irqPending
	m.irqPending = false
	return p
}

// Serialize implements the serializer.Serializable interface.
func (m *mmc3) Serialize(s *serializer.Serializer) {
	m.Banks.Serialize(s)
	s.Uint8(&m.bankSelect)
	for i := range m.registers {
		s.Uint8(&m.registers[i])
	}
	s.Uint8(&m.reload)
	s.Uint8(&m.counter)
	s.Bool(&m.reloadRequested)
	s.Bool(&m.irqEnabled)
	s.Bool(&m.irqPending)
}
