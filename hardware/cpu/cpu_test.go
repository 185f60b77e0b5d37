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

package cpu_test

import (
	"testing"

	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/hardware/cpu"
	"github.com/gopher2a03/gopher2a03/hardware/cpu/execution"
	"github.com/gopher2a03/gopher2a03/hardware/cpu/instructions"
	"github.com/gopher2a03/gopher2a03/hardware/serializer"
	"github.com/gopher2a03/gopher2a03/test"
)

func TestReset(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0xfffc, 0x00, 0x80)
	mc := cpu.NewCPU(mem)
	mc.A.Load(0x12)
	mc.SP.Load(0x00)
	mc.Status.Carry = true
	mc.SignalNMI()

	mc.Reset()
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8000))
	test.ExpectEquality(t, mc.A.Value(), uint8(0))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	test.ExpectEquality(t, mc.Cycles(), uint64(0))

	nmi, irq := mc.PendingInterrupts()
	test.ExpectFailure(t, nmi)
	test.ExpectFailure(t, irq)
}

func TestNoMemory(t *testing.T) {
	mc := cpu.NewCPU(nil)
	mc.Reset()
	_, err := mc.Execute()
	test.ExpectSuccess(t, curated.Is(err, cpu.NoMemory))
}

func TestStatusInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	mem.putInstructions(0, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "nv-bDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")

	// PHP; PLP
	mem.putInstructions(7, 0x08, 0x28)
	step(t, mc) // PHP
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfe))

	// pushed copy has the break and unused bits
	mem.assert(t, 0x01ff, 0x34)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true

	step(t, mc) // PLP
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
}

func TestArithmetic(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDA #$50; ADC #$50
	origin := mem.putInstructions(0, 0xa9, 0x50, 0x69, 0x50)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xa0))
	test.ExpectEquality(t, mc.Status.String(), "NV-bdIzc")

	// CLC; LDA #$01; ADC #$0a; SEC; SBC #$08
	origin = mem.putInstructions(origin, 0x18, 0xa9, 0x01, 0x69, 0x0a, 0x38, 0xe9, 0x08)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(11))
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(3))
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzC")

	// decimal mode has no effect on the 2A03
	// SED; CLC; LDA #$09; ADC #$01
	mem.putInstructions(origin, 0xf8, 0x18, 0xa9, 0x09, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x0a))
}

func TestCompare(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDA #$40; CMP #$40; CMP #$41; CMP #$3f
	mem.putInstructions(0, 0xa9, 0x40, 0xc9, 0x40, 0xc9, 0x41, 0xc9, 0x3f)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZC")
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdIzc")
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzC")

	// register is not altered
	test.ExpectEquality(t, mc.A.Value(), uint8(0x40))

	// LDX #$00; CPX #$01; LDY #$ff; CPY $10 (contains $80)
	mem.putInstructions(8, 0xa2, 0x00, 0xe0, 0x01, 0xa0, 0xff, 0xc4, 0x10)
	mem.putInstructions(0x10, 0x80)
	step(t, mc)
	step(t, mc)
	test.ExpectFailure(t, mc.Status.Carry)
	step(t, mc)
	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Carry)
}

func TestBitwise(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// ORA #$ff; EOR #$f0; AND #$01
	mem.putInstructions(0, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xff))
	test.ExpectSuccess(t, mc.Status.Sign)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x0f))
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))

	// BIT $20 (contains $c0)
	mem.putInstructions(6, 0x24, 0x20)
	mem.putInstructions(0x20, 0xc0)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "NV-bdIZc")
	mem.assert(t, 0x20, 0xc0)
}

func TestShiftsAndMemory(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDA #$81; ASL A; ROR A
	mem.putInstructions(0, 0xa9, 0x81, 0x0a, 0x6a)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x02))
	test.ExpectSuccess(t, mc.Status.Carry)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x81))
	test.ExpectFailure(t, mc.Status.Carry)

	// LSR $30; INC $30; DEC $31
	mem.putInstructions(4, 0x46, 0x30, 0xe6, 0x30, 0xc6, 0x31)
	mem.putInstructions(0x30, 0x03, 0x01)
	step(t, mc)
	mem.assert(t, 0x30, 0x01)
	test.ExpectSuccess(t, mc.Status.Carry)
	step(t, mc)
	mem.assert(t, 0x30, 0x02)
	step(t, mc)
	mem.assert(t, 0x31, 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)

	// LDX #$05; STX $40,Y; LDY $40,X
	mem.putInstructions(10, 0xa2, 0x05, 0x96, 0x40, 0xb4, 0x40)
	step(t, mc)
	r := step(t, mc)

	// STX only has zero page indexed by Y
	test.ExpectEquality(t, r.Defn.AddressingMode, instructions.ZeroPageIndexedY)
	mem.assert(t, 0x40, 0x05)
	step(t, mc)
	test.ExpectEquality(t, mc.Y.Value(), uint8(0))
}

func TestZeroPageWrap(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDX #$10; LDA $f8,X
	mem.putInstructions(0, 0xa2, 0x10, 0xb5, 0xf8)
	mem.putInstructions(0x08, 0x99)
	mem.putInstructions(0x0108, 0x11)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x99))
	test.ExpectEquality(t, r.CPUBug, execution.ZeroPageIndexBug)
	test.ExpectEquality(t, r.OperandAddress, uint16(0x0008))
}

func TestJumpIndirectBug(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// JMP ($30ff)
	mem.putInstructions(0, 0x6c, 0xff, 0x30)
	mem.putInstructions(0x30ff, 0x80)
	mem.putInstructions(0x3000, 0x12)
	mem.putInstructions(0x3100, 0x34)

	r := step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1280))
	test.ExpectEquality(t, r.CPUBug, execution.JmpIndirectAddressingBug)
	test.ExpectEquality(t, r.Cycles, 5)
}

func TestIndirectAddressing(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDX #$04; LDA ($20,X)
	mem.putInstructions(0, 0xa2, 0x04, 0xa1, 0x20)
	mem.putInstructions(0x24, 0x00, 0x05)
	mem.putInstructions(0x0500, 0x77)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x77))

	// LDY #$10; LDA ($24),Y - no page cross
	mem.putInstructions(4, 0xa0, 0x10, 0xb1, 0x24)
	mem.putInstructions(0x0510, 0x66)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x66))
	test.ExpectFailure(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 5)

	// LDY #$ff; LDA ($26),Y - page cross
	mem.putInstructions(8, 0xa0, 0xff, 0xb1, 0x26)
	mem.putInstructions(0x26, 0x01, 0x05)
	mem.putInstructions(0x0600, 0x55)
	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x55))
	test.ExpectSuccess(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 6)

	// STA ($26),Y - page cross has no additional cost
	mem.putInstructions(12, 0x91, 0x26)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectFailure(t, r.PageFault)
}

func TestAbsoluteIndexed(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDX #$01; LDA $12ff,X; LDA $1200,X
	mem.putInstructions(0, 0xa2, 0x01, 0xbd, 0xff, 0x12, 0xbd, 0x00, 0x12)
	mem.putInstructions(0x1300, 0xaa)
	mem.putInstructions(0x1201, 0xbb)
	step(t, mc)

	r := step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xaa))
	test.ExpectSuccess(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 5)

	r = step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xbb))
	test.ExpectFailure(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 4)
}

func TestBranching(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDA #$00; BNE +$05; BEQ +$02
	mem.putInstructions(0, 0xa9, 0x00, 0xd0, 0x05, 0xf0, 0x02)
	step(t, mc)

	// branch not taken
	r := step(t, mc)
	test.ExpectFailure(t, r.BranchSuccess)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0004))

	// branch taken to the same page
	r = step(t, mc)
	test.ExpectSuccess(t, r.BranchSuccess)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0008))

	// backwards branch
	// BEQ -$0a
	mem.putInstructions(0x0008, 0xf0, 0xf6)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0000))

	// branch taken to a different page
	mc.PC.Load(0x00f0)
	mem.putInstructions(0x00f0, 0xf0, 0x20)
	r = step(t, mc)
	test.ExpectSuccess(t, r.BranchSuccess)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0112))
}

func TestSubroutine(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// JSR $0300
	mem.putInstructions(0x0200, 0x20, 0x00, 0x03)

	// LDA #$ee; RTS
	mem.putInstructions(0x0300, 0xa9, 0xee, 0x60)

	mc.PC.Load(0x0200)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0300))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))

	// return address minus one
	mem.assert(t, 0x01ff, 0x02)
	mem.assert(t, 0x01fe, 0x02)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0203))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.A.Value(), uint8(0xee))
}

func TestStack(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDA #$80; PHA; LDA #$00; PLA; LDX #$10; TXS; TSX
	mem.putInstructions(0, 0xa9, 0x80, 0x48, 0xa9, 0x00, 0x68, 0xa2, 0x10, 0x9a, 0xba)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x01ff, 0x80)
	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Zero)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
	test.ExpectSuccess(t, mc.Status.Sign)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0x10))
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), uint8(0x10))
}

func TestUndocumentedOpcode(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// undocumented opcode; LDA #$01
	mem.putInstructions(0, 0x02, 0xa9, 0x01)

	cycles, err := mc.Execute()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 2)
	test.ExpectSuccess(t, mc.LastResult.Undefined)
	test.ExpectEquality(t, mc.LastResult.OpCode, uint8(0x02))
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0001))

	// execution continues normally
	r := step(t, mc)
	test.ExpectFailure(t, r.Undefined)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
	test.ExpectEquality(t, mc.Cycles(), uint64(4))
}

func TestBRK(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// IRQ vector
	mem.putInstructions(0xfffe, 0x00, 0x04)

	// CLI; BRK
	mem.putInstructions(0x0200, 0x58, 0x00)

	// RTI
	mem.putInstructions(0x0400, 0x40)

	mc.PC.Load(0x0200)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0400))

	// PC+2 and status with break and unused bits
	mem.assert(t, 0x01ff, 0x02)
	mem.assert(t, 0x01fe, 0x03)
	mem.assert(t, 0x01fd, 0x30)

	// live register never has the break flag
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")

	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0203))
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
}

func TestInterrupts(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// NMI vector and IRQ vector
	mem.putInstructions(0xfffa, 0x00, 0x05)
	mem.putInstructions(0xfffe, 0x00, 0x06)

	// NOP
	mem.putInstructions(0x0000, 0xea)
	mem.putInstructions(0x0500, 0xea)
	mem.putInstructions(0x0600, 0xea)

	// IRQ is ignored when interrupts are disabled
	mc.SignalIRQ()
	_, irq := mc.PendingInterrupts()
	test.ExpectFailure(t, irq)

	// NMI is always latched and serviced before the instruction
	mc.SignalNMI()
	r := step(t, mc)
	test.ExpectEquality(t, r.InterruptCycles, 14)
	test.ExpectEquality(t, r.Cycles, 16)
	test.ExpectEquality(t, r.Address, uint16(0x0500))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0501))

	// pushed status has the unused bit but not the break bit
	mem.assert(t, 0x01ff, 0x00)
	mem.assert(t, 0x01fe, 0x00)
	mem.assert(t, 0x01fd, 0x24)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	nmi, _ := mc.PendingInterrupts()
	test.ExpectFailure(t, nmi)
}

func TestInterruptPriority(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.putInstructions(0xfffa, 0x00, 0x05)
	mem.putInstructions(0xfffe, 0x00, 0x06)
	mem.putInstructions(0x0500, 0xea)

	// CLI
	mem.putInstructions(0x0000, 0x58)
	step(t, mc)

	mc.SignalIRQ()
	mc.SignalNMI()

	// NMI first, then the instruction at the NMI vector, then the IRQ
	r := step(t, mc)
	test.ExpectEquality(t, r.Address, uint16(0x0500))
	test.ExpectEquality(t, r.InterruptCycles, 21)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0600))

	// the IRQ pushed the address following the NOP in the NMI handler
	mem.assert(t, 0x01fc, 0x05)
	mem.assert(t, 0x01fb, 0x01)

	nmi, irq := mc.PendingInterrupts()
	test.ExpectFailure(t, nmi)
	test.ExpectFailure(t, irq)
}

func TestSpriteDMA(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mem.io = mc
	mc.Reset()

	// LDA #$03; STA $4014
	mem.putInstructions(0, 0xa9, 0x03, 0x8d, 0x14, 0x40)
	step(t, mc)

	clear(mem.reads)
	clear(mem.writes)

	r := step(t, mc)
	test.ExpectEquality(t, r.DMACycles, 512)
	test.ExpectEquality(t, r.Cycles, 4+512)

	// exactly 256 reads from the source page
	var reads int
	for a := uint16(0x0300); a <= 0x03ff; a++ {
		test.ExpectEquality(t, mem.reads[a], 1, a)
		reads += mem.reads[a]
	}
	test.ExpectEquality(t, reads, 256)

	// exactly 256 writes to OAMDATA
	test.ExpectEquality(t, mem.writes[0x2004], 256)

	// the DMA register can be read back
	test.ExpectEquality(t, mc.HandleIORead(0x4014), uint8(0x03))
}

type mockAPU struct {
	lastWrite uint16
	value     uint8
}

func (a *mockAPU) ReadRegister(address uint16) uint8 {
	return a.value
}

func (a *mockAPU) WriteRegister(address uint16, data uint8) {
	a.lastWrite = address
}

type mockControllers struct {
	strobe uint8
}

func (c *mockControllers) Read(address uint16) uint8 {
	return 0x40 | uint8(address&0x01)
}

func (c *mockControllers) Write(data uint8) {
	c.strobe = data
}

func TestIORouting(t *testing.T) {
	mc := cpu.NewCPU(newMockMem())
	apu := &mockAPU{value: 0x1f}
	ctrl := &mockControllers{}
	mc.AttachIO(apu, ctrl)

	test.ExpectEquality(t, mc.HandleIORead(0x4015), uint8(0x1f))
	test.ExpectEquality(t, mc.HandleIORead(0x4016), uint8(0x40))
	test.ExpectEquality(t, mc.HandleIORead(0x4017), uint8(0x41))

	mc.HandleIOWrite(0x4016, 0x01)
	test.ExpectEquality(t, ctrl.strobe, uint8(0x01))

	// writes to the second controller port go to the APU frame counter
	mc.HandleIOWrite(0x4017, 0x40)
	test.ExpectEquality(t, apu.lastWrite, uint16(0x4017))

	// no devices attached
	mc.AttachIO(nil, nil)
	test.ExpectEquality(t, mc.HandleIORead(0x4015), uint8(0))
	test.ExpectEquality(t, mc.HandleIORead(0x4016), uint8(0))
}

func TestAllDefinitions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	for _, defn := range instructions.GetDefinitions() {
		if defn == nil {
			continue
		}
		mem.clear()
		mc.Reset()
		mc.PC.Load(0x0200)
		mem.putInstructions(0x0200, defn.OpCode, 0x10, 0x20)
		r := step(t, mc)
		test.ExpectEquality(t, r.Defn.OpCode, defn.OpCode)
	}
}

func TestFlagsFollowResult(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	loads := []uint8{0xa9, 0xa2, 0xa0}
	for _, op := range loads {
		for _, v := range []uint8{0x00, 0x01, 0x7f, 0x80, 0xff} {
			mem.clear()
			mc.Reset()
			mem.putInstructions(0, op, v)
			step(t, mc)
			test.ExpectEquality(t, mc.Status.Zero, v == 0, op, v)
			test.ExpectEquality(t, mc.Status.Sign, v&0x80 == 0x80, op, v)
		}
	}
}

func TestSerialize(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// LDA #$81; LDX #$02; SEC; PHA
	mem.putInstructions(0, 0xa9, 0x81, 0xa2, 0x02, 0x38, 0x48, 0xea)
	for range 4 {
		step(t, mc)
	}
	mc.SignalNMI()

	s := serializer.NewSaver()
	s.Object(mc)
	saved := s.Data()
	state := mc.String()
	cycles := mc.Cycles()

	// change state
	step(t, mc)
	mc.Reset()
	test.ExpectInequality(t, mc.String(), state)

	r := serializer.NewRestorer(saved)
	r.Object(mc)
	test.DemandSuccess(t, r.Err())
	test.ExpectEquality(t, mc.String(), state)
	test.ExpectEquality(t, mc.Cycles(), cycles)

	nmi, _ := mc.PendingInterrupts()
	test.ExpectSuccess(t, nmi)

	// serializing the restored state gives the same stream
	s2 := serializer.NewSaver()
	s2.Object(mc)
	test.ExpectEquality(t, string(s2.Data()), string(saved))
}
