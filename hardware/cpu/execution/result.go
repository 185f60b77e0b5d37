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

package execution

import (
	"fmt"
	"strings"

	"github.com/gopher2a03/gopher2a03/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the opcode read from Address
	OpCode uint8

	// a reference to the instruction definition. nil if the opcode is
	// undocumented
	Defn *instructions.Definition

	// the operand bytes of the instruction, little-endian. only valid if
	// Defn is not nil
	InstructionData uint16

	// the effective address of the operand. not meaningful for implied,
	// accumulator or immediate addressing
	OperandAddress uint16

	// the number of cycles taken by the step. this includes the cost of any
	// interrupt serviced before or after the instruction and the cost of any
	// DMA triggered by the instruction
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a branch instruction branched
	BranchSuccess bool

	// whether the opcode was undocumented. the CPU skips the byte and charges
	// a nominal cost
	Undefined bool

	// a known quirk of the 6502 was triggered
	CPUBug Bug

	// number of cycles taken by an interrupt serviced during the step
	InterruptCycles int

	// number of cycles taken by sprite DMA during the step
	DMACycles int

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x ", r.Address))

	if r.Undefined {
		s.WriteString(fmt.Sprintf("%02x ??? (undocumented opcode)", r.OpCode))
		return s.String()
	}

	if r.Defn == nil {
		s.WriteString("no instruction")
		return s.String()
	}

	s.WriteString(r.Defn.Operator.String())

	switch r.Defn.AddressingMode {
	case instructions.Implied:
	case instructions.Accumulator:
		s.WriteString(" A")
	case instructions.Immediate:
		s.WriteString(fmt.Sprintf(" #$%02x", r.InstructionData))
	case instructions.Relative:
		s.WriteString(fmt.Sprintf(" $%04x", r.OperandAddress))
	case instructions.ZeroPage:
		s.WriteString(fmt.Sprintf(" $%02x", r.InstructionData))
	case instructions.ZeroPageIndexedX:
		s.WriteString(fmt.Sprintf(" $%02x,X", r.InstructionData))
	case instructions.ZeroPageIndexedY:
		s.WriteString(fmt.Sprintf(" $%02x,Y", r.InstructionData))
	case instructions.Absolute:
		s.WriteString(fmt.Sprintf(" $%04x", r.InstructionData))
	case instructions.AbsoluteIndexedX:
		s.WriteString(fmt.Sprintf(" $%04x,X", r.InstructionData))
	case instructions.AbsoluteIndexedY:
		s.WriteString(fmt.Sprintf(" $%04x,Y", r.InstructionData))
	case instructions.Indirect:
		s.WriteString(fmt.Sprintf(" ($%04x)", r.InstructionData))
	case instructions.IndexedIndirect:
		s.WriteString(fmt.Sprintf(" ($%02x,X)", r.InstructionData))
	case instructions.IndirectIndexed:
		s.WriteString(fmt.Sprintf(" ($%02x),Y", r.InstructionData))
	}

	s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))

	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.BranchSuccess {
		s.WriteString(" branched")
	}
	if r.CPUBug != NoBug {
		s.WriteString(" * ")
		s.WriteString(string(r.CPUBug))
		s.WriteString(" *")
	}

	return s.String()
}
