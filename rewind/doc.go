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

// Package rewind keeps a history of machine snapshots so that the emulation
// can be run backwards.
//
// Snapshots are opaque byte slices produced by the hardware package. The
// Rewind type decides when a snapshot should be taken (the Freq preference)
// and how many are kept (the MaxEntries preference). When the history is full
// the oldest snapshot is forgotten.
//
// The history must be reset whenever a new cartridge is loaded. Snapshots
// from one cartridge are meaningless to another.
package rewind
