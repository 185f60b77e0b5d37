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

// Package ebitengui presents the emulation in a window using the ebiten game
// library. Audio is played with oto.
//
// Player one is controlled with the cursor keys, X (A button), Z (B button),
// right shift (Select) and enter (Start). Player two uses W, A, S, D, G, F,
// left shift and space.
//
// Other keys:
//
//	F5          save state
//	F7          load state
//	Backspace   rewind for as long as the key is held
//	Tab         toggle turbo mode
//	F12         screenshot
//	F1          reset
//	F9          mute
//
// The emulation is paced by the frame limiter in the hardware package
// rather than by ebiten's tick rate.
package ebitengui
