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

package cpu

import "github.com/gopher2a03/gopher2a03/hardware/memory/cpubus"

// APU is the audio unit as seen from the CPU's register window.
type APU interface {
	ReadRegister(address uint16) uint8
	WriteRegister(address uint16, data uint8)
}

// Controllers is the pair of controller ports as seen from the CPU's
// register window.
type Controllers interface {
	// Read the next bit from the controller at the address (0x4016 or
	// 0x4017)
	Read(address uint16) uint8

	// Write the strobe value. Writes only ever come through 0x4016
	Write(data uint8)
}

// the cost of sprite DMA
const dmaCycles = 512

// HandleIORead services a read from the CPU's register window (0x4000 to
// 0x401f).
func (mc *CPU) HandleIORead(address uint16) uint8 {
	switch address {
	case cpubus.OAMDMAAddress:
		return mc.dmaRegister
	case cpubus.JOY1Address, cpubus.JOY2Address:
		if mc.controllers != nil {
			return mc.controllers.Read(address)
		}
		return 0
	}

	if mc.apu != nil {
		return mc.apu.ReadRegister(address)
	}
	return 0
}

// HandleIOWrite services a write to the CPU's register window (0x4000 to
// 0x401f). A write to the sprite DMA register copies 256 bytes from the page
// indicated by the value to the PPU's OAM. The cost of the copy is charged
// to the current step.
func (mc *CPU) HandleIOWrite(address uint16, data uint8) {
	switch address {
	case cpubus.OAMDMAAddress:
		mc.dmaRegister = data
		src := uint16(data) << 8
		for i := uint16(0); i < 256; i++ {
			mc.write8(cpubus.OAMDATAAddress, mc.read8(src+i))
		}
		mc.cycles += dmaCycles
		mc.LastResult.DMACycles += dmaCycles
		return

	case cpubus.JOY1Address:
		if mc.controllers != nil {
			mc.controllers.Write(data)
		}
		return
	}

	// 0x4017 writes go to the APU frame counter
	if mc.apu != nil {
		mc.apu.WriteRegister(address, data)
	}
}
