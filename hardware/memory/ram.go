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

package memory

import (
	"fmt"
	"strings"

	"github.com/gopher2a03/gopher2a03/hardware/memory/memorymap"
	"github.com/gopher2a03/gopher2a03/hardware/serializer"
)

// RAMSize is the amount of internal RAM.
const RAMSize = 0x0800

// RAM is the 2KB of internal RAM.
type RAM struct {
	data [RAMSize]uint8
}

func (ram *RAM) String() string {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := range RAMSize / 16 {
		s.WriteString(fmt.Sprintf("%03X- | ", y))
		for x := range 16 {
			s.WriteString(fmt.Sprintf(" %02x", ram.data[(y*16)+x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}

// Reset clears RAM.
func (ram *RAM) Reset() {
	clear(ram.data[:])
}

// Read returns the value at the address. The address is mirrored.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.data[address&memorymap.MaskRAM]
}

// Write the value to the address. The address is mirrored.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.data[address&memorymap.MaskRAM] = data
}

// Serialize implements the serializer.Serializable interface.
func (ram *RAM) Serialize(s *serializer.Serializer) {
	s.Buffer(ram.data[:])
}
