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

package cartridge_test

import "github.com/gopher2a03/gopher2a03/hardware/memory/cartridge"

// rom creates iNES data for the mapper. every PRG byte is the index of the
// 4KB bank it belongs to and every CHR byte is the index of its 1KB bank.
func rom(mapperID int, prg16K int, chr8K int, flags6 uint8) []byte {
	d := []byte{'N', 'E', 'S', 0x1a, uint8(prg16K), uint8(chr8K),
		uint8(mapperID&0x0f)<<4 | flags6, uint8(mapperID & 0xf0),
		0, 0, 0, 0, 0, 0, 0, 0}

	if flags6&0x04 == 0x04 {
		d = append(d, make([]byte, cartridge.TrainerSize)...)
	}

	for i := range prg16K * 0x4000 {
		d = append(d, uint8(i/0x1000))
	}
	for i := range chr8K * 0x2000 {
		d = append(d, uint8(i/0x0400))
	}

	return d
}

type irq struct {
	count int
}

func (i *irq) SignalIRQ() {
	i.count++
}
