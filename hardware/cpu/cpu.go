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
	"fmt"

	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/hardware/cpu/execution"
	"github.com/gopher2a03/gopher2a03/hardware/cpu/instructions"
	"github.com/gopher2a03/gopher2a03/hardware/cpu/registers"
	"github.com/gopher2a03/gopher2a03/hardware/memory/cpubus"
	"github.com/gopher2a03/gopher2a03/hardware/serializer"
	"github.com/gopher2a03/gopher2a03/logger"
)

// error patterns
const (
	NoMemory = "cpu: no memory attached"
)

// the cost of servicing an interrupt
const interruptCycles = 7

// CPU implements the 2A03 as found in the NES. Register logic is implemented
// by the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	mem          cpubus.Memory
	apu          APU
	controllers  Controllers
	instructions []*instructions.Definition

	// interrupt latches. cleared when the interrupt is serviced
	pendingNMI bool
	pendingIRQ bool

	// cycles taken by the current step and cycles taken since reset
	cycles      int
	totalCycles uint64

	// the last value written to the sprite DMA register
	dmaRegister uint8

	// last result. contains diagnostics for the most recent step
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The CPU does not take ownership of the memory.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewRegister(0xff, "SP"),
		Status:       registers.NewStatusRegister(),
		instructions: instructions.GetDefinitions(),
	}
}

// Plumb a new memory bus into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

// AttachIO connects the devices serviced through the CPU's register window.
// Either argument can be nil.
func (mc *CPU) AttachIO(apu APU, controllers Controllers) {
	mc.apu = apu
	mc.controllers = controllers
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC from the reset vector.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true

	mc.cycles = 0
	mc.totalCycles = 0
	mc.pendingNMI = false
	mc.pendingIRQ = false
	mc.dmaRegister = 0

	if mc.mem == nil {
		mc.PC.Load(0)
		return
	}
	mc.PC.Load(mc.read16(cpubus.Reset))
}

// Cycles returns the number of cycles executed since the last reset.
func (mc *CPU) Cycles() uint64 {
	return mc.totalCycles
}

// SignalNMI latches a non-maskable interrupt. It will be serviced at the next
// instruction boundary.
func (mc *CPU) SignalNMI() {
	mc.pendingNMI = true
}

// SignalIRQ latches an interrupt request. The request is ignored if the
// interrupt disable flag is set at the time of the signal.
func (mc *CPU) SignalIRQ() {
	if !mc.Status.InterruptDisable {
		mc.pendingIRQ = true
	}
}

// PendingInterrupts returns the state of the NMI and IRQ latches.
func (mc *CPU) PendingInterrupts() (nmi bool, irq bool) {
	return mc.pendingNMI, mc.pendingIRQ
}

func (mc *CPU) read8(address uint16) uint8 {
	return mc.mem.Read(address)
}

func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

func (mc *CPU) write8(address uint16, value uint8) {
	mc.mem.Write(address, value)
}

func (mc *CPU) push8(value uint8) {
	mc.write8(cpubus.StackBase|mc.SP.Address(), value)
	mc.SP.Load(mc.SP.Value() - 1)
}

func (mc *CPU) push16(value uint16) {
	mc.push8(uint8(value >> 8))
	mc.push8(uint8(value))
}

func (mc *CPU) pop8() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.read8(cpubus.StackBase | mc.SP.Address())
}

func (mc *CPU) pop16() uint16 {
	lo := mc.pop8()
	hi := mc.pop8()
	return (uint16(hi) << 8) | uint16(lo)
}

// pushStatus pushes the status register to the stack. the break flag is only
// set in the pushed copy and only for software interrupts
func (mc *CPU) pushStatus(software bool) {
	v := mc.Status.Value() | registers.Unused
	if software {
		v |= registers.Break
	}
	mc.push8(v)
}

func (mc *CPU) popStatus() {
	mc.Status.FromValue(mc.pop8())
}

// serviceInterrupts handles any pending interrupt. NMI takes priority over
// IRQ. returns the number of cycles consumed
func (mc *CPU) serviceInterrupts() int {
	var vector uint16
	var cost int

	switch {
	case mc.pendingNMI:
		vector = cpubus.NMI

		// the NMI is charged twice the cost of a normal interrupt
		cost = interruptCycles * 2
		mc.pendingNMI = false
	case mc.pendingIRQ:
		vector = cpubus.IRQ
		cost = interruptCycles
		mc.pendingIRQ = false
	default:
		return 0
	}

	mc.push16(mc.PC.Address())
	mc.pushStatus(false)
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16(vector))

	mc.cycles += cost
	mc.LastResult.InterruptCycles += cost

	return cost
}

// Execute a single instruction. Returns the number of cycles taken by the
// instruction, including any interrupt serviced before or after it.
func (mc *CPU) Execute() (int, error) {
	if mc.mem == nil {
		return 0, curated.Errorf(NoMemory)
	}

	mc.cycles = 0
	mc.LastResult.Reset()

	mc.serviceInterrupts()

	mc.LastResult.Address = mc.PC.Address()
	opcode := mc.read8(mc.PC.Address())
	mc.LastResult.OpCode = opcode

	defn := mc.instructions[opcode]
	if defn == nil {
		mc.LastResult.Undefined = true
		logger.Logf(logger.Allow, "cpu", "undocumented opcode (%#02x) at (%#04x)", opcode, mc.PC.Address())
		mc.PC.Add(1)
		mc.cycles += 2
		return mc.finalise(), nil
	}
	mc.LastResult.Defn = defn

	mc.resolveOperand(defn)
	mc.executeInstruction(defn)
	mc.serviceInterrupts()

	return mc.finalise(), nil
}

func (mc *CPU) finalise() int {
	mc.totalCycles += uint64(mc.cycles)
	mc.LastResult.Cycles = mc.cycles
	mc.LastResult.Final = true
	return mc.cycles
}

// Serialize implements the serializer.Serializable interface.
func (mc *CPU) Serialize(s *serializer.Serializer) {
	s.Object(&mc.PC)
	s.Object(&mc.A)
	s.Object(&mc.X)
	s.Object(&mc.Y)
	s.Object(&mc.SP)
	s.Object(&mc.Status)
	s.Bool(&mc.pendingNMI)
	s.Bool(&mc.pendingIRQ)
	s.Int(&mc.cycles)
	s.Uint64(&mc.totalCycles)
	s.Uint8(&mc.dmaRegister)
}
