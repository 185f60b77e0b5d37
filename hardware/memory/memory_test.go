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

package memory_test

import (
	"testing"

	"github.com/gopher2a03/gopher2a03/hardware/memory"
	"github.com/gopher2a03/gopher2a03/hardware/memory/cartridge"
	"github.com/gopher2a03/gopher2a03/hardware/serializer"
	"github.com/gopher2a03/gopher2a03/test"
)

type registers struct {
	reads  []uint16
	writes map[uint16]uint8
}

func newRegisters() *registers {
	return &registers{writes: make(map[uint16]uint8)}
}

func (r *registers) ReadRegister(address uint16) uint8 {
	r.reads = append(r.reads, address)
	return uint8(address)
}

func (r *registers) WriteRegister(address uint16, data uint8) {
	r.writes[address] = data
}

func (r *registers) HandleIORead(address uint16) uint8 {
	return r.ReadRegister(address)
}

func (r *registers) HandleIOWrite(address uint16, data uint8) {
	r.WriteRegister(address, data)
}

func TestRAMMirroring(t *testing.T) {
	mem := memory.NewMemory(nil)
	mem.Write(0x0001, 0x11)
	test.ExpectEquality(t, mem.Read(0x0801), 0x11)
	test.ExpectEquality(t, mem.Read(0x1001), 0x11)
	test.ExpectEquality(t, mem.Read(0x1801), 0x11)

	mem.Write(0x1fff, 0x22)
	test.ExpectEquality(t, mem.Read(0x07ff), 0x22)

	mem.Reset()
	test.ExpectEquality(t, mem.Read(0x0001), 0x00)
}

func TestRouting(t *testing.T) {
	ppu := newRegisters()
	io := newRegisters()
	mem := memory.NewMemory(nil)

	// nothing plumbed
	test.ExpectEquality(t, mem.Read(0x2002), 0x00)
	mem.Write(0x4016, 0x01)

	mem.Plumb(ppu, io)

	// PPU registers are mirrored every eight bytes
	test.ExpectEquality(t, mem.Read(0x3ffa), 0x02)
	test.ExpectEquality(t, ppu.reads[0], 0x2002)
	mem.Write(0x2008, 0x80)
	test.ExpectEquality(t, ppu.writes[0x2000], 0x80)

	test.ExpectEquality(t, mem.Read(0x4016), 0x16)
	mem.Write(0x4014, 0x02)
	test.ExpectEquality(t, io.writes[0x4014], 0x02)
	test.ExpectEquality(t, len(ppu.writes), 1)

	// peeking has no side effects
	reads := len(ppu.reads)
	test.ExpectEquality(t, mem.Peek(0x2002), 0x00)
	test.ExpectEquality(t, len(ppu.reads), reads)

	// no cartridge attached
	test.ExpectEquality(t, mem.Read(0x8000), 0x00)
}

func TestCartridge(t *testing.T) {
	cart := cartridge.NewCartridge(nil)
	d := []byte{'N', 'E', 'S', 0x1a, 1, 1, 0x02, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, 0x4000)
	prg[0] = 0xea
	d = append(d, prg...)
	d = append(d, make([]byte, 0x2000)...)
	_, err := cart.Load(d)
	test.DemandSuccess(t, err)

	mem := memory.NewMemory(cart)
	test.ExpectEquality(t, mem.Read(0x8000), 0xea)
	test.ExpectEquality(t, mem.Read(0xc000), 0xea)
	test.ExpectEquality(t, mem.Peek(0xc000), 0xea)

	mem.Write(0x6000, 0x42)
	test.ExpectEquality(t, mem.Read(0x6000), 0x42)
	test.ExpectEquality(t, mem.Read(0x4020), 0x00)
}

func TestSerialize(t *testing.T) {
	mem := memory.NewMemory(nil)
	mem.Write(0x0010, 0x99)

	s := serializer.NewSaver()
	mem.Serialize(s)
	test.ExpectEquality(t, len(s.Data()), memory.RAMSize)

	mem.Reset()
	r := serializer.NewRestorer(s.Data())
	mem.Serialize(r)
	test.DemandSuccess(t, r.Err())
	test.ExpectEquality(t, mem.Read(0x0810), 0x99)
}
