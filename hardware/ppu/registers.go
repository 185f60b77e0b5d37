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

// PPUCTRL bits.
const (
	ctrlNametable       = 0x03
	ctrlIncrement       = 0x04
	ctrlSpriteTable     = 0x08
	ctrlBackgroundTable = 0x10
	ctrlSpriteSize      = 0x20
	ctrlNMI             = 0x80
)

// PPUMASK bits.
const (
	maskGreyscale      = 0x01
	maskBackgroundLeft = 0x02
	maskSpritesLeft    = 0x04
	maskBackground     = 0x08
	maskSprites        = 0x10
)

// PPUSTATUS bits.
const (
	statusOverflow   = 0x20
	statusSpriteZero = 0x40
	statusVBlank     = 0x80
)

// ReadRegister returns the value of the register. Only the lower three bits
// of the address are used.
func (ppu *PPU) ReadRegister(address uint16) uint8 {
	switch address & 0x07 {
	case 2:
		r := ppu.status&0xe0 | ppu.openBus&0x1f
		ppu.status &^= statusVBlank
		ppu.w = false
		ppu.openBus = r
		return r
	case 4:
		ppu.openBus = ppu.oam[ppu.oamAddr]
		return ppu.openBus
	case 7:
		addr := ppu.v & 0x3fff
		var r uint8
		if addr < 0x3f00 {
			r = ppu.readBuffer
			ppu.readBuffer = ppu.read(addr)
		} else {
			// palette reads are not buffered. the buffer is filled with the
			// nametable byte underneath the palette
			r = ppu.readPalette(addr)
			ppu.readBuffer = ppu.read(addr - 0x1000)
		}
		ppu.incrementV()
		ppu.openBus = r
		return r
	}

	// write only registers
	return ppu.openBus
}

// WriteRegister writes the value to the register. Only the lower three bits
// of the address are used.
func (ppu *PPU) WriteRegister(address uint16, data uint8) {
	ppu.openBus = data

	switch address & 0x07 {
	case 0:
		// enabling NMI during vblank causes an immediate NMI
		if ppu.ctrl&ctrlNMI == 0 && data&ctrlNMI == ctrlNMI && ppu.status&statusVBlank == statusVBlank {
			if ppu.nmi != nil {
				ppu.nmi.SignalNMI()
			}
		}
		ppu.ctrl = data
		ppu.t = (ppu.t &^ 0x0c00) | uint16(data&ctrlNametable)<<10
	case 1:
		ppu.mask = data
	case 3:
		ppu.oamAddr = data
	case 4:
		ppu.oam[ppu.oamAddr] = data
		ppu.oamAddr++
	case 5:
		if !ppu.w {
			ppu.t = (ppu.t &^ 0x001f) | uint16(data>>3)
			ppu.x = data & 0x07
		} else {
			ppu.t = (ppu.t &^ 0x73e0) | uint16(data&0x07)<<12 | uint16(data&0xf8)<<2
		}
		ppu.w = !ppu.w
	case 6:
		if !ppu.w {
			ppu.t = (ppu.t & 0x00ff) | uint16(data&0x3f)<<8
		} else {
			ppu.t = (ppu.t & 0xff00) | uint16(data)
			ppu.v = ppu.t
		}
		ppu.w = !ppu.w
	case 7:
		ppu.write(ppu.v&0x3fff, data)
		ppu.incrementV()
	}
}

func (ppu *PPU) incrementV() {
	if ppu.ctrl&ctrlIncrement == ctrlIncrement {
		ppu.v += 32
	} else {
		ppu.v++
	}
	ppu.v &= 0x7fff
}

func (ppu *PPU) incrementY() {
	if ppu.v&0x7000 != 0x7000 {
		ppu.v += 0x1000
		return
	}

	ppu.v &^= 0x7000
	y := (ppu.v & 0x03e0) >> 5
	switch y {
	case 29:
		y = 0
		ppu.v ^= 0x0800
	case 31:
		y = 0
	default:
		y++
	}
	ppu.v = (ppu.v &^ 0x03e0) | y<<5
}

func (ppu *PPU) copyX() {
	ppu.v = (ppu.v &^ 0x041f) | (ppu.t & 0x041f)
}

func (ppu *PPU) copyY() {
	ppu.v = (ppu.v &^ 0x7be0) | (ppu.t & 0x7be0)
}
