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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in
// memory. Useful for reference.
func Summary() string {
	s := strings.Builder{}

	var area, current Area
	var start uint16

	for a := uint32(0); a <= 0xffff; a++ {
		_, area = MapAddress(uint16(a))
		if area != current {
			if current != Undefined {
				s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, a-1, current))
			}
			current = area
			start = uint16(a)
		}
	}
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, 0xffff, current))

	return s.String()
}
