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

// Package mapper defines the interface that every cartridge mapper
// implements and the bank table that the mappers use to describe which
// physical bank is visible in each slot of the address space.
//
// A mapper never touches cartridge memory itself. The Cartridge type asks
// the mapper to translate a logical bank index into a physical bank index
// and then accesses its own bank memory. Translation is a pure function of
// the index and the mapper's registers.
//
// The address space is divided into slots of fixed size:
//
//	PRG	$8000 to $ffff	8 slots of 4KB
//	CHR	$0000 to $1fff	8 slots of 1KB (PPU address space)
//	SAV	$6000 to $7fff	1 slot of 8KB
//
// Mappers that switch banks at a coarser granularity use the helper
// functions of the Banks type, which set consecutive slots.
package mapper
