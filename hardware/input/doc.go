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

// Package input implements the two standard controllers of the NES and the
// event queue through which button presses reach them.
//
// Controllers are read serially. Writing 1 to bit 0 of $4016 latches the
// state of both controllers and writing 0 starts the serial read. Each read
// of $4016 (controller one) or $4017 (controller two) returns the next
// button in the order A, B, Select, Start, Up, Down, Left, Right. After
// eight reads every further read returns 1 until the controllers are
// strobed again.
//
// Bit 6 of every read is set. This is the open bus value left on the data
// lines by the address high byte and some games depend on it.
//
// Button events can be applied immediately with Controllers.SetButton() or
// pushed onto the Input queue from a different goroutine and applied by
// Input.Process() at the start of the next frame.
//
// The state of the buttons is not serialized. It belongs to the player and
// is unaffected by a rewind or by loading a save state.
package input
