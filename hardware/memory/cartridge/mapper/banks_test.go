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

package mapper_test

import (
	"testing"

	"github.com/gopher2a03/gopher2a03/hardware/memory/cartridge/mapper"
	"github.com/gopher2a03/gopher2a03/hardware/serializer"
	"github.com/gopher2a03/gopher2a03/test"
)

func TestBanks(t *testing.T) {
	var b mapper.Banks

	// 128KB of PRG, 32KB of CHR, 8KB of SAV
	b.InitialiseBanks(32, 32, 1)
	test.ExpectEquality(t, b.PrgMemorySize(), 0x20000)
	test.ExpectEquality(t, b.ChrMemorySize(), 0x8000)
	test.ExpectEquality(t, b.SavMemorySize(), 0x2000)
	test.ExpectFailure(t, b.CanWritePrg())
	test.ExpectFailure(t, b.CanWriteChr())
	test.ExpectSuccess(t, b.CanWriteSav())

	// 16KB bank 2 in the first slot and the last bank in the second slot
	b.SetPrgBank16K(0, 2)
	b.SetPrgBank16K(1, -1)
	for i := range 4 {
		test.ExpectEquality(t, b.MappedPrgBank(i), 8+i)
		test.ExpectEquality(t, b.MappedPrgBank(4+i), 28+i)
	}

	// 8KB granularity with the second last bank
	b.SetPrgBank8K(2, -2)
	test.ExpectEquality(t, b.MappedPrgBank(4), 28)
	test.ExpectEquality(t, b.MappedPrgBank(5), 29)

	b.SetPrgBank32K(1)
	for i := range 8 {
		test.ExpectEquality(t, b.MappedPrgBank(i), 8+i)
	}

	b.SetChrBank4K(1, 3)
	for i := range 4 {
		test.ExpectEquality(t, b.MappedChrBank(4+i), 12+i)
	}
	b.SetChrBank1K(7, 31)
	test.ExpectEquality(t, b.MappedChrBank(7), 31)

	// out of range banks wrap
	b.SetChrBank8K(5)
	test.ExpectEquality(t, b.MappedChrBank(0), 8)
}

func TestChrRAM(t *testing.T) {
	var b mapper.Banks
	b.InitialiseBanks(8, 0, 0)
	test.ExpectSuccess(t, b.CanWriteChr())
	test.ExpectEquality(t, b.ChrMemorySize(), 0x2000)
	test.ExpectEquality(t, b.SavMemorySize(), 0)
}

func TestTranslationIsPure(t *testing.T) {
	var b mapper.Banks
	b.InitialiseBanks(16, 16, 1)
	b.SetPrgBank16K(0, 1)

	first := b.MappedPrgBank(0)
	test.ExpectEquality(t, b.MappedPrgBank(0), first)

	b.SetPrgBank16K(0, 2)
	test.ExpectInequality(t, b.MappedPrgBank(0), first)
}

func TestBanksSerialize(t *testing.T) {
	var b mapper.Banks
	b.InitialiseBanks(16, 16, 1)
	b.SetPrgBank16K(0, 3)
	b.SetChrBank4K(1, 2)
	b.SetMirroring(mapper.Vertical)

	s := serializer.NewSaver()
	s.Object(&b)

	var c mapper.Banks
	c.InitialiseBanks(16, 16, 1)
	r := serializer.NewRestorer(s.Data())
	r.Object(&c)
	test.DemandSuccess(t, r.Err())
	test.ExpectEquality(t, c.String(), b.String())
	test.ExpectEquality(t, c.Mirroring(), mapper.Vertical)
}

func TestMirroring(t *testing.T) {
	test.ExpectEquality(t, mapper.Horizontal.NametableOffset(0x2400), uint16(0x0000))
	test.ExpectEquality(t, mapper.Horizontal.NametableOffset(0x2801), uint16(0x0401))
	test.ExpectEquality(t, mapper.Vertical.NametableOffset(0x2801), uint16(0x0001))
	test.ExpectEquality(t, mapper.Vertical.NametableOffset(0x2c10), uint16(0x0410))
	test.ExpectEquality(t, mapper.OneScreenLower.NametableOffset(0x2c10), uint16(0x0010))
	test.ExpectEquality(t, mapper.OneScreenUpper.NametableOffset(0x2010), uint16(0x0410))

	// 0x3000 to 0x3eff mirrors 0x2000 to 0x2eff
	test.ExpectEquality(t, mapper.Vertical.NametableOffset(0x3401), uint16(0x0401))
}
