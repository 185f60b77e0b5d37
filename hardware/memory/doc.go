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

// Package memory implements the memory model of the NES as seen by the CPU.
// The cpubus and memorymap sub-packages help with this.
//
// The emulation views memory through conceptual busses implemented as Go
// interfaces. The CPU sees one bus (cpubus.Memory) and the Memory type
// routes each access to the correct area.
//
//	                      CARTRIDGE
//	                          |
//	                          |
//	    CPU ---- cpu bus ---- MEMORY ---- PPU registers
//	     |                    |
//	     |                    |
//	     +--- IO registers ---+
//	            (APU, controllers, sprite DMA)
//
// The IO registers at $4000 to $401F are owned by the CPU because sprite DMA
// adds cycles to the instruction being executed. The Memory type forwards
// these addresses back to the CPU, which in turn forwards them to the APU
// and the controllers.
//
// Internal RAM is 2KB and is mirrored four times. The eight PPU registers
// are mirrored every eight bytes from $2000 to $3FFF.
package memory
