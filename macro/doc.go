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

// Package macro runs Lua scripts that control the emulation. Macros are
// useful for automating the collation of screenshots and digests in a
// repeatable manner, and for testing.
//
// The following functions are available to a macro:
//
//	press(player, button)     press a button on the controller
//	release(player, button)   release a button on the controller
//	frames(n)                 run the emulation forward for n frames
//	rewind(n)                 run the emulation backwards for n frames
//	turbo(on)                 turn turbo mode on or off
//	savestate()               save the current state to the state slot
//	loadstate()               restore the state slot
//	digest()                  returns the hash of the current frame
//	frame()                   returns the current frame number
//	ram(address)              returns the value at the CPU address
//	bank(address)             returns the 16KB PRG bank mapped to the address
//	                          or -1 if the address is not in PRG memory
//	log(message)              adds the message to the log
//
// Players are numbered from one. Buttons are named as in the input package:
// "A", "B", "Select", "Start", "Up", "Down", "Left" and "Right". Button
// names are not case sensitive.
//
// An error in a macro stops the macro and is returned to the caller.
// Scripts run until they finish or until the context is cancelled.
package macro
