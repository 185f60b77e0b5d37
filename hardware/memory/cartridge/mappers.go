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

package cartridge

import "github.com/gopher2a03/gopher2a03/hardware/memory/cartridge/mapper"

// mappers indexed by iNES mapper number.
var mappers = map[int]func() mapper.Mapper{
	0: newNROM,
	1: newMMC1,
	2: newUxROM,
	3: newCNROM,
	4: newMMC3,
	7: newAxROM,
}

// IsSupported returns true if the iNES mapper number is supported.
func IsSupported(id int) bool {
	_, ok := mappers[id]
	return ok
}
