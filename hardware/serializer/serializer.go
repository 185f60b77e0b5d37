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

package serializer

import (
	"encoding/binary"
	"math"

	"github.com/gopher2a03/gopher2a03/curated"
)

// error patterns
const (
	ShortData  = "serializer: data exhausted after %d bytes"
	OutOfRange = "serializer: %s out of range (%d not in %d to %d)"
)

// Serializable is implemented by every component that has state.
type Serializable interface {
	Serialize(s *Serializer)
}

// Serializer visits fields and either saves or restores them.
type Serializer struct {
	saving bool
	data   []byte
	pos    int
	err    error
}

// NewSaver returns a Serializer that appends fields to a new stream.
func NewSaver() *Serializer {
	return &Serializer{
		saving: true,
		data:   make([]byte, 0, 4096),
	}
}

// NewRestorer returns a Serializer that replaces fields with values read from
// the data.
func NewRestorer(data []byte) *Serializer {
	return &Serializer{
		data: data,
	}
}

// Saving returns true if the Serializer is saving fields.
func (s *Serializer) Saving() bool {
	return s.saving
}

// Data returns the saved stream.
func (s *Serializer) Data() []byte {
	return s.data
}

// Err returns the first error encountered while restoring.
func (s *Serializer) Err() error {
	return s.err
}

// Remaining returns the number of bytes not yet restored. Always zero when
// saving.
func (s *Serializer) Remaining() int {
	if s.saving {
		return 0
	}
	return len(s.data) - s.pos
}

// next returns the next n bytes of the stream or nil if there aren't enough
func (s *Serializer) next(n int) []byte {
	if s.err != nil {
		return nil
	}
	if s.pos+n > len(s.data) {
		s.err = curated.Errorf(ShortData, s.pos)
		return nil
	}
	b := s.data[s.pos : s.pos+n]
	s.pos += n
	return b
}

// Uint8 visits an 8-bit field.
func (s *Serializer) Uint8(v *uint8) {
	if s.saving {
		s.data = append(s.data, *v)
		return
	}
	if b := s.next(1); b != nil {
		*v = b[0]
	}
}

// Uint16 visits a 16-bit field.
func (s *Serializer) Uint16(v *uint16) {
	if s.saving {
		s.data = binary.LittleEndian.AppendUint16(s.data, *v)
		return
	}
	if b := s.next(2); b != nil {
		*v = binary.LittleEndian.Uint16(b)
	}
}

// Uint32 visits a 32-bit field.
func (s *Serializer) Uint32(v *uint32) {
	if s.saving {
		s.data = binary.LittleEndian.AppendUint32(s.data, *v)
		return
	}
	if b := s.next(4); b != nil {
		*v = binary.LittleEndian.Uint32(b)
	}
}

// Uint64 visits a 64-bit field.
func (s *Serializer) Uint64(v *uint64) {
	if s.saving {
		s.data = binary.LittleEndian.AppendUint64(s.data, *v)
		return
	}
	if b := s.next(8); b != nil {
		*v = binary.LittleEndian.Uint64(b)
	}
}

// Int visits an int field. Stored as 64 bits regardless of platform.
func (s *Serializer) Int(v *int) {
	u := uint64(int64(*v))
	s.Uint64(&u)
	if !s.saving && s.err == nil {
		*v = int(int64(u))
	}
}

// IntRange visits an int field that must be between lo and hi inclusive.
// When restoring, a value outside of the range is an error and the field is
// left unchanged.
func (s *Serializer) IntRange(v *int, lo int, hi int, name string) {
	if s.saving {
		s.Int(v)
		return
	}
	n := *v
	s.Int(&n)
	if s.err != nil {
		return
	}
	if n < lo || n > hi {
		s.err = curated.Errorf(OutOfRange, name, n, lo, hi)
		return
	}
	*v = n
}

// Uint8Range visits a uint8 field that must not be greater than hi. When
// restoring, a value outside of the range is an error and the field is left
// unchanged.
func (s *Serializer) Uint8Range(v *uint8, hi uint8, name string) {
	if s.saving {
		s.Uint8(v)
		return
	}
	n := *v
	s.Uint8(&n)
	if s.err != nil {
		return
	}
	if n > hi {
		s.err = curated.Errorf(OutOfRange, name, n, 0, hi)
		return
	}
	*v = n
}

// Bool visits a boolean field. Stored as a single byte.
func (s *Serializer) Bool(v *bool) {
	var b uint8
	if *v {
		b = 1
	}
	s.Uint8(&b)
	if !s.saving && s.err == nil {
		*v = b != 0
	}
}

// Float64 visits a float64 field.
func (s *Serializer) Float64(v *float64) {
	u := math.Float64bits(*v)
	s.Uint64(&u)
	if !s.saving && s.err == nil {
		*v = math.Float64frombits(u)
	}
}

// Buffer visits a fixed length byte slice. The length of the slice is not
// stored; it must be the same when restoring.
func (s *Serializer) Buffer(v []byte) {
	if s.saving {
		s.data = append(s.data, v...)
		return
	}
	if b := s.next(len(v)); b != nil {
		copy(v, b)
	}
}

// Object visits a nested Serializable.
func (s *Serializer) Object(o Serializable) {
	o.Serialize(s)
}
