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

// Package savestate stores save RAM and save state slots on disk.
//
// Files are stored through an afero.Fs, rooted at a base directory. The
// default store uses the operating system's file system and the "saves"
// directory in the resource path. Tests use an in-memory file system.
//
// Save RAM is stored as is, so that it can be shared with other emulators.
// Save state slots are compressed with zstd. Files are written to a
// temporary file and renamed so that a failed write does not destroy an
// existing file.
package savestate
