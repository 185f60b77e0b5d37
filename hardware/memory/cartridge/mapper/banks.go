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

import (
	"fmt"
	"strings"

	"github.com/gopher2a03/gopher2a03/hardware/serializer"
)

// Bank sizes and the number of slots for each region.
const (
	PrgBankSize = 0x1000
	ChrBankSize = 0x0400
	SavBankSize = 0x2000

	NumPrgSlots = 8
	NumChrSlots = 8
	NumSavSlots = 1
)

// Banks is the bank table used by every mapper. Mappers embed Banks and call
// the Set functions as the bank switching registers change.
//
// Banks implements all the methods of the Mapper interface except ID(),
// Initialise() and OnCPUWrite().
type Banks struct {
	prg [NumPrgSlots]int
	chr [NumChrSlots]int
	sav [NumSavSlots]int

	numPrg int
	numChr int
	numSav int

	canWritePrg bool
	canWriteChr bool
	canWriteSav bool

	mirroring Mirroring
}

// InitialiseBanks resets the bank table for the number of banks in the
// cartridge. Should be called by the mapper's Initialise() function.
func (b *Banks) InitialiseBanks(numPrg, numChr, numSav int) {
	*b = Banks{
		numPrg:      numPrg,
		numChr:      numChr,
		numSav:      numSav,
		canWriteSav: true,
	}

	// no CHR ROM means the cartridge has 8KB of CHR RAM
	if b.numChr == 0 {
		b.numChr = 8
		b.canWriteChr = true
	}
}

// SetCanWriteSav specifies whether SAV memory can be written to.
func (b *Banks) SetCanWriteSav(v bool) {
	b.canWriteSav = v
}

// SetMirroring changes the mirroring reported by the mapper.
func (b *Banks) SetMirroring(m Mirroring) {
	b.mirroring = m
}

// NumPrgBanks returns the number of banks for the bank size.
func (b *Banks) NumPrgBanks(size int) int {
	return b.numPrg * PrgBankSize / size
}

// NumChrBanks returns the number of banks for the bank size.
func (b *Banks) NumChrBanks(size int) int {
	return b.numChr * ChrBankSize / size
}

// resolve a bank index. a negative index counts from the last bank. indexes
// are wrapped so that the result is always a valid bank
func resolve(index int, count int) int {
	if count <= 0 {
		return 0
	}
	if index < 0 {
		index += count
	}
	index %= count
	if index < 0 {
		index += count
	}
	return index
}

func (b *Banks) setPrg(slot int, size int, bank int) {
	n := size / PrgBankSize
	bank = resolve(bank, b.NumPrgBanks(size))
	for i := range n {
		b.prg[slot*n+i] = bank*n + i
	}
}

func (b *Banks) setChr(slot int, size int, bank int) {
	n := size / ChrBankSize
	bank = resolve(bank, b.NumChrBanks(size))
	for i := range n {
		b.chr[slot*n+i] = bank*n + i
	}
}

// SetPrgBank32K maps a 32KB bank to the entire PRG address space.
func (b *Banks) SetPrgBank32K(bank int) {
	b.setPrg(0, 0x8000, bank)
}

// SetPrgBank16K maps a 16KB bank to one of the two 16KB slots.
func (b *Banks) SetPrgBank16K(slot int, bank int) {
	b.setPrg(slot, 0x4000, bank)
}

// SetPrgBank8K maps an 8KB bank to one of the four 8KB slots.
func (b *Banks) SetPrgBank8K(slot int, bank int) {
	b.setPrg(slot, 0x2000, bank)
}

// SetChrBank8K maps an 8KB bank to the entire CHR address space.
func (b *Banks) SetChrBank8K(bank int) {
	b.setChr(0, 0x2000, bank)
}

// SetChrBank4K maps a 4KB bank to one of the two 4KB slots.
func (b *Banks) SetChrBank4K(slot int, bank int) {
	b.setChr(slot, 0x1000, bank)
}

// SetChrBank1K maps a 1KB bank to one of the eight 1KB slots.
func (b *Banks) SetChrBank1K(slot int, bank int) {
	b.setChr(slot, 0x0400, bank)
}

// SetSavBank8K maps an 8KB bank of save RAM.
func (b *Banks) SetSavBank8K(bank int) {
	b.sav[0] = resolve(bank, b.numSav)
}

// MappedPrgBank implements the Mapper interface.
func (b *Banks) MappedPrgBank(i int) int {
	return b.prg[i]
}

// MappedChrBank implements the Mapper interface.
func (b *Banks) MappedChrBank(i int) int {
	return b.chr[i]
}

// MappedSavBank implements the Mapper interface.
func (b *Banks) MappedSavBank(i int) int {
	return b.sav[i]
}

// CanWritePrg implements the Mapper interface.
func (b *Banks) CanWritePrg() bool {
	return b.canWritePrg
}

// CanWriteChr implements the Mapper interface.
func (b *Banks) CanWriteChr() bool {
	return b.canWriteChr
}

// CanWriteSav implements the Mapper interface.
func (b *Banks) CanWriteSav() bool {
	return b.canWriteSav
}

// PrgMemorySize implements the Mapper interface.
func (b *Banks) PrgMemorySize() int {
	return b.numPrg * PrgBankSize
}

// ChrMemorySize implements the Mapper interface.
func (b *Banks) ChrMemorySize() int {
	return b.numChr * ChrBankSize
}

// SavMemorySize implements the Mapper interface.
func (b *Banks) SavMemorySize() int {
	return b.numSav * SavBankSize
}

// Mirroring implements the Mapper interface.
func (b *Banks) Mirroring() Mirroring {
	return b.mirroring
}

// OnScanline implements the Mapper interface.
func (b *Banks) OnScanline() {
}

// TestAndClearIRQ implements the Mapper interface.
func (b *Banks) TestAndClearIRQ() bool {
	return false
}

func (b *Banks) String() string {
	s := strings.Builder{}
	s.WriteString("PRG:")
	for _, v := range b.prg {
		s.WriteString(fmt.Sprintf(" %d", v))
	}
	s.WriteString(" CHR:")
	for _, v := range b.chr {
		s.WriteString(fmt.Sprintf(" %d", v))
	}
	s.WriteString(fmt.Sprintf(" SAV: %d", b.sav[0]))
	return s.String()
}

// Serialize implements the serializer.Serializable interface. The bank
// counts are not serialized; they are fixed for the loaded cartridge. A
// restored bank index must be valid for those counts.
func (b *Banks) Serialize(s *serializer.Serializer) {
	for i := range b.prg {
		s.IntRange(&b.prg[i], 0, max(b.numPrg-1, 0), "PRG bank")
	}
	for i := range b.chr {
		s.IntRange(&b.chr[i], 0, max(b.numChr-1, 0), "CHR bank")
	}
	for i := range b.sav {
		s.IntRange(&b.sav[i], 0, max(b.numSav-1, 0), "SAV bank")
	}
	m := int(b.mirroring)
	s.IntRange(&m, int(Undefined), int(OneScreenUpper), "mirroring")
	b.mirroring = Mirroring(m)
	s.Bool(&b.canWriteSav)
}
