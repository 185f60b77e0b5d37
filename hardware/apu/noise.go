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

package apu

import (
	"fmt"

	"github.com/gopher2a03/gopher2a03/hardware/serializer"
)

var noiseTable = [16]uint16{
	4, 8, 16, 32, 64, 96, 128, 160, 202, 254, 380, 508, 762, 1016, 2034, 4068,
}

type noise struct {
	enabled bool

	// short mode takes feedback from bit 6 rather than bit 1
	mode bool

	period uint16
	timer  uint16

	// 15 bit linear feedback shift register
	shift uint16

	length lengthCounter
	env    envelope
}

func (n *noise) String() string {
	return fmt.Sprintf("%04x/%d/%d", n.period, n.length.value, n.env.output())
}

func (n *noise) write(reg uint16, data uint8) {
	switch reg {
	case 0:
		n.length.halt = data&0x20 == 0x20
		n.env.loop = n.length.halt
		n.env.constant = data&0x10 == 0x10
		n.env.volume = data & 0x0f
	case 2:
		n.mode = data&0x80 == 0x80
		n.period = noiseTable[data&0x0f]
	case 3:
		if n.enabled {
			n.length.load(data >> 3)
		}
		n.env.start = true
	}
}

func (n *noise) setEnabled(enabled bool) {
	n.enabled = enabled
	if !enabled {
		n.length.value = 0
	}
}

func (n *noise) clockTimer() {
	if n.timer > 0 {
		n.timer--
		return
	}
	n.timer = n.period

	bit := 1
	if n.mode {
		bit = 6
	}
	feedback := (n.shift & 0x01) ^ ((n.shift >> bit) & 0x01)
	n.shift >>= 1
	n.shift |= feedback << 14
}

func (n *noise) output() uint8 {
	if n.length.value == 0 || n.shift&0x01 == 0x01 {
		return 0
	}
	return n.env.output()
}

func (n *noise) serialize(s *serializer.Serializer) {
	s.Bool(&n.enabled)
	s.Bool(&n.mode)
	s.Uint16(&n.period)
	s.Uint16(&n.timer)
	s.Uint16(&n.shift)
	n.length.serialize(s)
	n.env.serialize(s)
}
