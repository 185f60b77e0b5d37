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

// Package prefs holds typed preference values and stores them on disk.
//
// Preference values are of type Bool, Int, Float or String. Each can have a
// hook that is called before and after the value changes. A pre-hook that
// returns an error prevents the value from changing.
//
// A Disk instance associates preference values with keys and saves/loads
// them to/from a file. The file format is one preference per line:
//
//	rewind.maxEntries :: 100
//
// Keys not registered with a Disk instance are preserved when the file is
// saved. This means that several Disk instances can share the same file.
package prefs
