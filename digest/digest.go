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

// Package digest produces cryptographic hashes of the emulation's output.
// The hash can be used to compare output from subsequent emulation runs. If a
// new hash differs from a previously recorded value then something has
// changed.
//
// Hashes are chained. The hash of a frame (or block of audio) includes the
// hash of the previous frame, so the final hash represents the entire run.
//
// The use of sha1 is fine for this application because this is not a
// cryptographic task.
package digest

// Digest implementations return the current hash value as a hex string.
type Digest interface {
	Hash() string
	ResetDigest()
}
