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

import (
	"github.com/gopher2a03/gopher2a03/hardware/cpu/execution"
	"github.com/gopher2a03/gopher2a03/hardware/cpu/instructions"
)

// resolveOperand sets the OperandAddress, InstructionData and PageFault
// fields of LastResult according to the addressing mode of the instruction.
// the PC is not changed
func (mc *CPU) resolveOperand(defn *instructions.Definition) {
	pc := mc.PC.Address()

	switch defn.Bytes {
	case 2:
		mc.LastResult.InstructionData = uint16(mc.read8(pc + 1))
	case 3:
		mc.LastResult.InstructionData = mc.read16(pc + 1)
	}
	data := mc.LastResult.InstructionData

	var address uint16

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		return

	case instructions.Immediate:
		address = pc + 1

	case instructions.Relative:
		address = pc + uint16(defn.Bytes) + uint16(int8(data))

	case instructions.ZeroPage:
		address = data

	case instructions.ZeroPageIndexedX:
		address = (data + mc.X.Address()) & 0x00ff
		if data+mc.X.Address() > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

	case instructions.ZeroPageIndexedY:
		address = (data + mc.Y.Address()) & 0x00ff
		if data+mc.Y.Address() > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

	case instructions.Absolute:
		address = data

	case instructions.AbsoluteIndexedX:
		address = data + mc.X.Address()
		mc.LastResult.PageFault = data&0xff00 != address&0xff00

	case instructions.AbsoluteIndexedY:
		address = data + mc.Y.Address()
		mc.LastResult.PageFault = data&0xff00 != address&0xff00

	case instructions.Indirect:
		// the high byte of the pointer is not incremented when the low byte
		// wraps around
		hi := (data & 0xff00) | ((data + 1) & 0x00ff)
		if data&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}
		address = uint16(mc.read8(data)) | (uint16(mc.read8(hi)) << 8)

	case instructions.IndexedIndirect:
		lo := (data + mc.X.Address()) & 0x00ff
		hi := (lo + 1) & 0x00ff
		if lo == 0xff {
			mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
		}
		address = uint16(mc.read8(lo)) | (uint16(mc.read8(hi)) << 8)

	case instructions.IndirectIndexed:
		lo := data
		hi := (lo + 1) & 0x00ff
		base := uint16(mc.read8(lo)) | (uint16(mc.read8(hi)) << 8)
		address = base + mc.Y.Address()
		mc.LastResult.PageFault = base&0xff00 != address&0xff00
	}

	mc.LastResult.OperandAddress = address
}
