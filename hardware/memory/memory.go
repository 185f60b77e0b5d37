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

package memory

import (
	"github.com/gopher2a03/gopher2a03/hardware/memory/cartridge"
	"github.com/gopher2a03/gopher2a03/hardware/memory/memorymap"
	"github.com/gopher2a03/gopher2a03/hardware/serializer"
)

// PPU is the register interface of the picture unit. The address is in the
// range $2000 to $2007.
type PPU interface {
	ReadRegister(address uint16) uint8
	WriteRegister(address uint16, data uint8)
}

// IO is the register window owned by the CPU. The address is in the range
// $4000 to $401F.
type IO interface {
	HandleIORead(address uint16) uint8
	HandleIOWrite(address uint16, data uint8)
}

// Memory is the CPU bus of the NES. It implements the cpubus.Memory
// interface.
type Memory struct {
	RAM  *RAM
	Cart *cartridge.Cartridge

	ppu PPU
	io  IO
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The PPU and IO areas read as zero until Plumb() is called.
func NewMemory(cart *cartridge.Cartridge) *Memory {
	return &Memory{
		RAM:  &RAM{},
		Cart: cart,
	}
}

// Plumb the PPU and the IO registers into the bus.
func (mem *Memory) Plumb(ppu PPU, io IO) {
	mem.ppu = ppu
	mem.io = io
}

// AttachCartridge replaces the cartridge on the bus.
func (mem *Memory) AttachCartridge(cart *cartridge.Cartridge) {
	mem.Cart = cart
}

// Reset clears internal RAM.
func (mem *Memory) Reset() {
	mem.RAM.Reset()
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		return mem.RAM.Read(ma)
	case memorymap.PPU:
		if mem.ppu != nil {
			return mem.ppu.ReadRegister(ma)
		}
	case memorymap.IO:
		if mem.io != nil {
			return mem.io.HandleIORead(ma)
		}
	case memorymap.Cartridge:
		if mem.Cart != nil {
			return mem.Cart.ReadCPU(ma)
		}
	}
	return 0
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	ma, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		mem.RAM.Write(ma, data)
	case memorymap.PPU:
		if mem.ppu != nil {
			mem.ppu.WriteRegister(ma, data)
		}
	case memorymap.IO:
		if mem.io != nil {
			mem.io.HandleIOWrite(ma, data)
		}
	case memorymap.Cartridge:
		if mem.Cart != nil {
			mem.Cart.WriteCPU(ma, data)
		}
	}
}

// Peek returns the value at the address without side effects. Registers
// always peek as zero.
func (mem *Memory) Peek(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		return mem.RAM.Read(ma)
	case memorymap.Cartridge:
		if mem.Cart != nil {
			return mem.Cart.ReadCPU(ma)
		}
	}
	return 0
}

// Serialize implements the serializer.Serializable interface. Only the
// internal RAM is serialized. The other areas are serialized by their owners.
func (mem *Memory) Serialize(s *serializer.Serializer) {
	s.Object(mem.RAM)
}
