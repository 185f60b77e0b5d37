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

// Package cartridgeloader is used to specify the data that is to be attached
// to the emulated NES.
//
// When the cartridge is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Local files and data over HTTP are supported.
//
// ROM images can be stored inside zip, 7z, rar or gzip archives. The archive
// type is detected by the first few bytes of the file, falling back to the
// filename extension. The first entry in the archive with a recognised file
// extension is used.
//
// The simplest use of the Loader type:
//
//	cl := cartridgeloader.NewLoader("roms/game.zip")
//	err := cl.Load()
//	hdr, err := nes.LoadROM(cl.Data)
package cartridgeloader
