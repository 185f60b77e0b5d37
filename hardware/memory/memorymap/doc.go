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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents.
//
// The CPU address space of the NES is divided into four areas. Internal RAM
// is mirrored four times in the first 8KB. The eight PPU registers are
// mirrored through the next 8KB. A small window of APU and IO registers
// follows and the rest of the address space belongs to the cartridge.
//
// MapAddress() returns the primary address and the Area an address belongs
// to.
package memorymap
