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

package cpu_test

import (
	"testing"

	"github.com/gopher2a03/gopher2a03/hardware/cpu"
	"github.com/gopher2a03/gopher2a03/hardware/cpu/execution"
	"github.com/gopher2a03/gopher2a03/test"
)

type mockMem struct {
	internal []uint8

	// if not nil, addresses 0x4000 to 0x401f are forwarded to the CPU
	io *cpu.CPU

	// access counters
	reads  map[uint16]int
	writes map[uint16]int
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
		reads:    make(map[uint16]int),
		writes:   make(map[uint16]int),
	}
}

func (mem *mockMem) Read(address uint16) uint8 {
	mem.reads[address]++
	if mem.io != nil && address >= 0x4000 && address <= 0x401f {
		return mem.io.HandleIORead(address)
	}
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.writes[address]++
	if mem.io != nil && address >= 0x4000 && address <= 0x401f {
		mem.io.HandleIOWrite(address, data)
		return
	}
	mem.internal[address] = data
}

// putInstructions places bytes in memory from origin and returns the address
// after the last byte
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[uint16(i)+origin] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) clear() {
	clear(mem.internal)
	clear(mem.reads)
	clear(mem.writes)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %04x)", mem.internal[address], value, address)
	}
}

// step executes one instruction and checks that the result is consistent
// with the instruction definition
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	cycles, err := mc.Execute()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, cycles, mc.LastResult.Cycles)
	return mc.LastResult
}
