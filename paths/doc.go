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

// Package paths resolves the location of files used by the emulator:
// preferences, save-RAM and save-state files, screenshots.
//
// All files live in a single base directory. If a directory named
// ".gopher2a03" exists in the current working directory then that is used
// (a portable installation). Otherwise the base directory is "gopher2a03" in
// the directory returned by os.UserConfigDir().
package paths
