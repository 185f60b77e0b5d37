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

// Package cartridge fully implements loading of NES cartridges in the iNES
// format and the bank switching of the supported mappers.
//
// The Cartridge type owns the bank memory and the active mapper. A new
// mapper instance is created every time a cartridge is loaded. The mapper
// translates bank indexes and the Cartridge does the memory access.
//
// Supported mappers:
//
//	0	NROM
//	1	MMC1 (SxROM)
//	2	UxROM
//	3	CNROM
//	4	MMC3 (TxROM)
//	7	AxROM
//
// A cartridge that requires any other mapper is loaded with the NROM mapper.
// The cartridge will probably not work correctly but the emulation will
// continue. The Fallback field of the Header records when this has happened.
//
// Before a cartridge has been loaded, every operation is a no-op and all
// reads return zero.
package cartridge
