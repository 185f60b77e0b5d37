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

package input

import "strings"

// Button identifies a controller button. The value is the bit position in
// the serial read order.
type Button int

// List of valid Button values.
const (
	A Button = iota
	B
	Select
	Start
	Up
	Down
	Left
	Right
)

// NumButtons is the number of buttons on a standard controller.
const NumButtons = 8

func (b Button) String() string {
	switch b {
	case A:
		return "A"
	case B:
		return "B"
	case Select:
		return "Select"
	case Start:
		return "Start"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "unknown button"
}

// ButtonFromString is the inverse of Button.String(). The match is case
// insensitive.
func ButtonFromString(s string) (Button, bool) {
	for b := range Button(NumButtons) {
		if strings.EqualFold(b.String(), s) {
			return b, true
		}
	}
	return 0, false
}
