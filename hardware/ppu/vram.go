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

package ppu

func (ppu *PPU) read(address uint16) uint8 {
	address &= 0x3fff
	switch {
	case address < 0x2000:
		return ppu.cart.ReadPPU(address)
	case address < 0x3f00:
		return ppu.nametables[ppu.cart.Mirroring().NametableOffset(address)]
	}
	return ppu.readPalette(address)
}

func (ppu *PPU) write(address uint16, data uint8) {
	address &= 0x3fff
	switch {
	case address < 0x2000:
		ppu.cart.WritePPU(address, data)
	case address < 0x3f00:
		ppu.nametables[ppu.cart.Mirroring().NametableOffset(address)] = data
	default:
		ppu.palette[paletteIndex(address)] = data & 0x3f
	}
}

// entries 0x10, 0x14, 0x18 and 0x1c are mirrors of 0x00, 0x04, 0x08 and 0x0c
func paletteIndex(address uint16) uint16 {
	idx := address & 0x1f
	if idx&0x13 == 0x10 {
		idx &^= 0x10
	}
	return idx
}

func (ppu *PPU) readPalette(address uint16) uint8 {
	return ppu.palette[paletteIndex(address)]
}

// Peek returns the value at the address in PPU memory without side effects.
func (ppu *PPU) Peek(address uint16) uint8 {
	return ppu.read(address)
}
