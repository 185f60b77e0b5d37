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

// maximum number of sprites on one line
const spritesPerLine = 8

func (ppu *PPU) renderScanline() {
	var bg [Width]uint8
	var spr [Width]uint8
	var behind [Width]bool
	var zero [Width]bool

	if ppu.mask&maskBackground == maskBackground {
		ppu.renderBackground(&bg)
	}
	if ppu.mask&maskSprites == maskSprites {
		ppu.renderSprites(&spr, &behind, &zero)
	}

	row := ppu.frameBuffer[ppu.line*Width : (ppu.line+1)*Width]

	for x := range Width {
		b := bg[x]
		s := spr[x]
		if x < 8 {
			if ppu.mask&maskBackgroundLeft == 0 {
				b = 0
			}
			if ppu.mask&maskSpritesLeft == 0 {
				s = 0
			}
		}

		var c uint8
		switch {
		case b&0x03 == 0 && s&0x03 == 0:
			c = 0
		case b&0x03 == 0:
			c = 0x10 | s
		case s&0x03 == 0:
			c = b
		default:
			if zero[x] && x != Width-1 {
				ppu.status |= statusSpriteZero
			}
			if behind[x] {
				c = b
			} else {
				c = 0x10 | s
			}
		}

		col := ppu.readPalette(uint16(c))
		if ppu.mask&maskGreyscale == maskGreyscale {
			col &= 0x30
		}
		row[x] = Palette[col&0x3f]
	}
}

// the value of each pixel is the palette number in bits 2 and 3 and the
// pattern value in bits 0 and 1.
func (ppu *PPU) renderBackground(bg *[Width]uint8) {
	v := ppu.v
	fineY := (v >> 12) & 0x07

	base := uint16(0x0000)
	if ppu.ctrl&ctrlBackgroundTable == ctrlBackgroundTable {
		base = 0x1000
	}

	// 33 tiles to allow for fine X scrolling
	for tile := range 33 {
		id := ppu.read(0x2000 | (v & 0x0fff))
		attr := ppu.read(0x23c0 | (v & 0x0c00) | ((v >> 4) & 0x38) | ((v >> 2) & 0x07))
		shift := ((v >> 4) & 0x04) | (v & 0x02)
		pal := (attr >> shift) & 0x03

		addr := base + uint16(id)*16 + fineY
		lo := ppu.read(addr)
		hi := ppu.read(addr + 8)

		for b := range 8 {
			px := tile*8 + b - int(ppu.x)
			if px < 0 || px >= Width {
				continue
			}
			bit := 7 - b
			p := (lo>>bit)&0x01 | ((hi>>bit)&0x01)<<1
			if p != 0 {
				bg[px] = pal<<2 | p
			}
		}

		// coarse X increment with wrap into the next nametable
		if v&0x001f == 0x001f {
			v &^= 0x001f
			v ^= 0x0400
		} else {
			v++
		}
	}
}

func (ppu *PPU) renderSprites(spr *[Width]uint8, behind *[Width]bool, zero *[Width]bool) {
	height := 8
	if ppu.ctrl&ctrlSpriteSize == ctrlSpriteSize {
		height = 16
	}

	count := 0
	for i := range 64 {
		o := ppu.oam[i*4 : i*4+4]

		// sprites are drawn one line below their Y coordinate
		row := ppu.line - int(o[0]) - 1
		if row < 0 || row >= height {
			continue
		}

		count++
		if count > spritesPerLine {
			ppu.status |= statusOverflow
			break
		}

		tile := o[1]
		attr := o[2]
		sx := int(o[3])

		if attr&0x80 == 0x80 {
			row = height - 1 - row
		}

		var addr uint16
		if height == 16 {
			table := uint16(tile&0x01) * 0x1000
			tile &= 0xfe
			if row >= 8 {
				tile++
				row -= 8
			}
			addr = table + uint16(tile)*16 + uint16(row)
		} else {
			table := uint16(0x0000)
			if ppu.ctrl&ctrlSpriteTable == ctrlSpriteTable {
				table = 0x1000
			}
			addr = table + uint16(tile)*16 + uint16(row)
		}

		lo := ppu.read(addr)
		hi := ppu.read(addr + 8)

		for b := range 8 {
			px := sx + b
			if px >= Width {
				break
			}

			// lower numbered sprites have priority
			if spr[px]&0x03 != 0 {
				continue
			}

			bit := 7 - b
			if attr&0x40 == 0x40 {
				bit = b
			}
			p := (lo>>bit)&0x01 | ((hi>>bit)&0x01)<<1
			if p == 0 {
				continue
			}

			spr[px] = (attr&0x03)<<2 | p
			behind[px] = attr&0x20 == 0x20
			zero[px] = i == 0
		}
	}
}
