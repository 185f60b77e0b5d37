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

package logger

import (
	"io"
	"os"
)

const maxCentral = 256

var central = NewLogger(maxCentral)

// Log adds an entry to the central log.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central log.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear the central log.
func Clear() {
	central.Clear()
}

// Write the contents of the central log.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the most recent entries of the central log.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho echoes new entries in the central log to the writer. Output to a
// terminal is colourised.
func SetEcho(output io.Writer, writeRecent bool) {
	if f, ok := output.(*os.File); ok && isTerminal(f) {
		output = NewColorizer(f)
	}
	central.SetEcho(output, writeRecent)
}

// BorrowLog gives the function access to the entries of the central log.
func BorrowLog(f func([]Entry)) {
	central.BorrowLog(f)
}
