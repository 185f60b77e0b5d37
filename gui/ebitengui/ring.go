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

package ebitengui

import (
	"encoding/binary"
	"math"
	"sync"
)

// ring is the buffer between the emulation, which writes samples one at a
// time, and the audio player, which reads them in blocks from another
// goroutine. When the buffer is full the oldest samples are overwritten.
type ring struct {
	crit sync.Mutex
	buf  []float32
	head int
	used int
}

func newRing(size int) *ring {
	return &ring{
		buf: make([]float32, size),
	}
}

func (r *ring) write(v float32) {
	r.crit.Lock()
	defer r.crit.Unlock()

	tail := (r.head + r.used) % len(r.buf)
	r.buf[tail] = v
	if r.used < len(r.buf) {
		r.used++
	} else {
		r.head = (r.head + 1) % len(r.buf)
	}
}

// Read implements the io.Reader interface. Samples are returned as 32bit
// little-endian floats. Silence is returned if there are not enough samples.
func (r *ring) Read(p []byte) (int, error) {
	r.crit.Lock()
	defer r.crit.Unlock()

	n := len(p) / 4
	for i := range n {
		var v float32
		if r.used > 0 {
			v = r.buf[r.head]
			r.head = (r.head + 1) % len(r.buf)
			r.used--
		}
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
	}

	return n * 4, nil
}

func (r *ring) len() int {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.used
}

func (r *ring) clear() {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.head = 0
	r.used = 0
}
