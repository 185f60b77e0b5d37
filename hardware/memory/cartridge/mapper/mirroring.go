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

// Mirroring describes how the 2KB of nametable RAM in the console is mapped
// to the four logical nametables.
type Mirroring int

// List of valid Mirroring values. Undefined is used by a mapper to indicate
// that the mirroring specified by the cartridge header should be used.
const (
	Undefined Mirroring = iota
	Horizontal
	Vertical
	OneScreenLower
	OneScreenUpper
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case OneScreenLower:
		return "one screen (lower)"
	case OneScreenUpper:
		return "one screen (upper)"
	}
	return "undefined"
}

// NametableOffset returns the offset into the 2KB nametable RAM for the
// address. The address should be in the range 0x2000 to 0x2fff. Bits above
// that range are ignored.
func (m Mirroring) NametableOffset(address uint16) uint16 {
	address &= 0x0fff
	table := address / 0x0400
	offset := address & 0x03ff

	switch m {
	case Vertical:
		return (table&0x01)*0x0400 + offset
	case OneScreenLower:
		return offset
	case OneScreenUpper:
		return 0x0400 + offset
	}

	// horizontal and undefined
	return (table>>1)*0x0400 + offset
}
