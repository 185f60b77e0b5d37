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

// Package cpu emulates the 2A03 CPU found in the NES. The 2A03 is a 6502
// without the decimal mode circuitry and with the audio hardware and the
// sprite DMA unit on the same die.
//
// The CPU is stepped one instruction at a time with the Execute() function.
// The number of cycles taken by the instruction is returned so that the
// caller can step the rest of the console by the same amount:
//
//	cycles, err := mc.Execute()
//	if err != nil {
//		return err
//	}
//	ppu.Step(cycles)
//
// Interrupts are signalled with SignalNMI() and SignalIRQ(). The CPU latches
// the signal and services it at the next instruction boundary.
//
// The CPU accesses memory through the cpubus.Memory interface. It does not
// own the memory. The registers between 0x4000 and 0x401f are forwarded from
// the memory bus back to the CPU with HandleIORead() and HandleIOWrite(). The
// CPU services sprite DMA and the controller ports itself and forwards
// everything else to the APU.
//
// Opcodes that are not documented do not stop the CPU. The byte is skipped
// and a nominal cost of two cycles is charged. The condition is recorded in
// the LastResult field and in the log.
package cpu
