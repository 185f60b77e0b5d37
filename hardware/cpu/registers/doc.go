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

// Package registers implements the three types of register found in the 6502
// family of CPUs: the 8-bit general purpose register, the 16-bit program
// counter and the status register.
//
// The general purpose Register type is used for the accumulator, the two
// index registers and the stack pointer. The arithmetic and logical methods
// return the carry and overflow states so that the CPU can update the status
// register as appropriate.
package registers
