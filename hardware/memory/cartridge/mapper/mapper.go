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

package mapper

import "github.com/gopher2a03/gopher2a03/hardware/serializer"

// Mapper implementations translate logical bank indexes into physical bank
// indexes and keep track of the bank switching registers of the cartridge.
//
// A logical bank index is the index of the slot in the address space (see
// package documentation). The physical bank index is the index of the bank
// in the cartridge's bank memory.
type Mapper interface {
	ID() string

	// Initialise is called once when the cartridge is loaded. The number of
	// PRG banks is in 4KB units, the number of CHR banks is in 1KB units
	// and the number of SAV banks in 8KB units. A CHR bank count of zero
	// means the cartridge has 8KB of CHR RAM
	Initialise(numPrg, numChr, numSav int)

	MappedPrgBank(i int) int
	MappedChrBank(i int) int
	MappedSavBank(i int) int

	CanWritePrg() bool
	CanWriteChr() bool
	CanWriteSav() bool

	// size in bytes of each region of memory
	PrgMemorySize() int
	ChrMemorySize() int
	SavMemorySize() int

	// Mirroring returns Undefined if the mirroring from the cartridge header
	// should be used
	Mirroring() Mirroring

	// OnCPUWrite is called for every CPU write to the cartridge address
	// space, whether or not the underlying memory is writable
	OnCPUWrite(address uint16, data uint8)

	// OnScanline is called once for every rendered scanline. TestAndClearIRQ
	// returns true if the mapper has raised an interrupt. Most mappers do
	// nothing with either
	OnScanline()
	TestAndClearIRQ() bool

	serializer.Serializable
}
