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

// Package serializer saves and restores the state of the emulated hardware.
//
// The same Serializer type is used for both directions. Each stateful
// component implements the Serializable interface by visiting its fields in
// a fixed order:
//
//	func (p *PPU) Serialize(s *serializer.Serializer) {
//		s.Uint8(&p.ctrl)
//		s.Uint8(&p.mask)
//		s.Buffer(p.oam[:])
//		s.Object(&p.loopy)
//	}
//
// When saving, the field values are appended to the stream. When restoring,
// the field values are replaced by values read from the stream. The stream
// contains the raw little-endian bytes of each field with no framing, so the
// order of the visits must never depend on the direction.
//
// A restore that runs out of data stops changing fields and records an
// error. The error is returned by Err().
package serializer
