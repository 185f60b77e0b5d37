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
	"github.com/gopher2a03/gopher2a03/hardware/cpu/instructions"
	"github.com/gopher2a03/gopher2a03/hardware/cpu/registers"
	"github.com/gopher2a03/gopher2a03/hardware/memory/cpubus"
)

// setNZ sets the sign and zero flags according to the value
func (mc *CPU) setNZ(v uint8) {
	mc.Status.Sign = v&0x80 == 0x80
	mc.Status.Zero = v == 0
}

// operand returns the value at the operand address or the accumulator
func (mc *CPU) operand(defn *instructions.Definition) uint8 {
	if defn.AddressingMode == instructions.Accumulator {
		return mc.A.Value()
	}
	return mc.read8(mc.LastResult.OperandAddress)
}

// storeOperand writes the value to the operand address or the accumulator
func (mc *CPU) storeOperand(defn *instructions.Definition, v uint8) {
	if defn.AddressingMode == instructions.Accumulator {
		mc.A.Load(v)
		return
	}
	mc.write8(mc.LastResult.OperandAddress, v)
}

// compare is used by CMP, CPX and CPY
func (mc *CPU) compare(r registers.Register, v uint8) {
	carry, res := r.Compare(v)
	mc.Status.Carry = carry
	mc.setNZ(res)
}

// executeInstruction performs the instruction described by the definition.
// the operand has already been resolved. the PC is advanced and the cost of
// the instruction added to the step's cycle count
func (mc *CPU) executeInstruction(defn *instructions.Definition) {
	address := mc.PC.Address()
	nextPC := address + uint16(defn.Bytes)

	var branch bool

	switch defn.Operator {
	case instructions.Adc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(mc.operand(defn), mc.Status.Carry)
		mc.setNZ(mc.A.Value())

	case instructions.Sbc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(mc.operand(defn), mc.Status.Carry)
		mc.setNZ(mc.A.Value())

	case instructions.And:
		mc.A.AND(mc.operand(defn))
		mc.setNZ(mc.A.Value())

	case instructions.Ora:
		mc.A.ORA(mc.operand(defn))
		mc.setNZ(mc.A.Value())

	case instructions.Eor:
		mc.A.EOR(mc.operand(defn))
		mc.setNZ(mc.A.Value())

	case instructions.Asl:
		r := registers.NewRegister(mc.operand(defn), "")
		mc.Status.Carry = r.ASL()
		mc.storeOperand(defn, r.Value())
		mc.setNZ(r.Value())

	case instructions.Lsr:
		r := registers.NewRegister(mc.operand(defn), "")
		mc.Status.Carry = r.LSR()
		mc.storeOperand(defn, r.Value())
		mc.setNZ(r.Value())

	case instructions.Rol:
		r := registers.NewRegister(mc.operand(defn), "")
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.storeOperand(defn, r.Value())
		mc.setNZ(r.Value())

	case instructions.Ror:
		r := registers.NewRegister(mc.operand(defn), "")
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.storeOperand(defn, r.Value())
		mc.setNZ(r.Value())

	case instructions.Bcc:
		branch = !mc.Status.Carry
	case instructions.Bcs:
		branch = mc.Status.Carry
	case instructions.Beq:
		branch = mc.Status.Zero
	case instructions.Bne:
		branch = !mc.Status.Zero
	case instructions.Bmi:
		branch = mc.Status.Sign
	case instructions.Bpl:
		branch = !mc.Status.Sign
	case instructions.Bvc:
		branch = !mc.Status.Overflow
	case instructions.Bvs:
		branch = mc.Status.Overflow

	case instructions.Bit:
		v := mc.operand(defn)
		mc.Status.Zero = mc.A.Value()&v == 0
		mc.Status.Sign = v&0x80 == 0x80
		mc.Status.Overflow = v&0x40 == 0x40

	case instructions.Brk:
		mc.push16(address + 2)
		mc.pushStatus(true)
		mc.Status.InterruptDisable = true
		nextPC = mc.read16(cpubus.IRQ)

	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Clv:
		mc.Status.Overflow = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Sed:
		mc.Status.DecimalMode = true
	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Cmp:
		mc.compare(mc.A, mc.operand(defn))
	case instructions.Cpx:
		mc.compare(mc.X, mc.operand(defn))
	case instructions.Cpy:
		mc.compare(mc.Y, mc.operand(defn))

	case instructions.Dec:
		v := mc.operand(defn) - 1
		mc.storeOperand(defn, v)
		mc.setNZ(v)
	case instructions.Inc:
		v := mc.operand(defn) + 1
		mc.storeOperand(defn, v)
		mc.setNZ(v)

	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.setNZ(mc.X.Value())
	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.setNZ(mc.Y.Value())
	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.setNZ(mc.X.Value())
	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.setNZ(mc.Y.Value())

	case instructions.Jmp:
		nextPC = mc.LastResult.OperandAddress

	case instructions.Jsr:
		mc.push16(nextPC - 1)
		nextPC = mc.LastResult.OperandAddress

	case instructions.Rts:
		nextPC = mc.pop16() + 1

	case instructions.Rti:
		mc.popStatus()
		nextPC = mc.pop16()

	case instructions.Lda:
		mc.A.Load(mc.operand(defn))
		mc.setNZ(mc.A.Value())
	case instructions.Ldx:
		mc.X.Load(mc.operand(defn))
		mc.setNZ(mc.X.Value())
	case instructions.Ldy:
		mc.Y.Load(mc.operand(defn))
		mc.setNZ(mc.Y.Value())

	case instructions.Sta:
		mc.write8(mc.LastResult.OperandAddress, mc.A.Value())
	case instructions.Stx:
		mc.write8(mc.LastResult.OperandAddress, mc.X.Value())
	case instructions.Sty:
		mc.write8(mc.LastResult.OperandAddress, mc.Y.Value())

	case instructions.Nop:

	case instructions.Pha:
		mc.push8(mc.A.Value())
	case instructions.Php:
		mc.pushStatus(true)
	case instructions.Pla:
		mc.A.Load(mc.pop8())
		mc.setNZ(mc.A.Value())
	case instructions.Plp:
		mc.popStatus()

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setNZ(mc.X.Value())
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setNZ(mc.Y.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setNZ(mc.X.Value())
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setNZ(mc.A.Value())
	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setNZ(mc.A.Value())
	}

	cycles := defn.Cycles

	if mc.LastResult.PageFault {
		if defn.PageSensitive {
			cycles++
		} else {
			// the worst case is already in the base cycle count
			mc.LastResult.PageFault = false
		}
	}

	if branch {
		mc.LastResult.BranchSuccess = true
		nextPC = mc.LastResult.OperandAddress
		cycles++
		if address&0xff00 != nextPC&0xff00 {
			mc.LastResult.PageFault = true
			cycles++
		}
	}

	mc.cycles += cycles
	mc.PC.Load(nextPC)
}
