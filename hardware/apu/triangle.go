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

var triangleTable = [32]uint8{
	15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

type triangle struct {
	enabled bool

	period uint16
	timer  uint16
	step   uint8

	length lengthCounter

	// the control flag is also the length counter halt flag
	control      bool
	linearReload uint8
	linear       uint8
	reloadFlag   bool
}

func (t *triangle) String() string {
	return fmt.Sprintf("%03x/%d/%d", t.period, t.length.value, t.linear)
}

func (t *triangle) write(reg uint16, data uint8) {
	switch reg {
	case 0:
		t.control = data&0x80 == 0x80
		t.length.halt = t.control
		t.linearReload = data & 0x7f
	case 2:
		t.period = (t.period & 0x0700) | uint16(data)
	case 3:
		t.period = (t.period & 0x00ff) | uint16(data&0x07)<<8
		if t.enabled {
			t.length.load(data >> 3)
		}
		t.reloadFlag = true
	}
}

func (t *triangle) setEnabled(enabled bool) {
	t.enabled = enabled
	if !enabled {
		t.length.value = 0
	}
}

func (t *triangle) clockTimer() {
	if t.timer == 0 {
		t.timer = t.period
		if t.length.value > 0 && t.linear > 0 {
			t.step = (t.step + 1) & 0x1f
		}
	} else {
		t.timer--
	}
}

func (t *triangle) clockLinear() {
	if t.reloadFlag {
		t.linear = t.linearReload
	} else if t.linear > 0 {
		t.linear--
	}
	if !t.control {
		t.reloadFlag = false
	}
}

func (t *triangle) output() uint8 {
	return triangleTable[t.step]
}

func (t *triangle) serialize(s *serializer.Serializer) {
	s.Bool(&t.enabled)
	s.Uint16(&t.period)
	s.Uint16(&t.timer)
	s.Uint8Range(&t.step, uint8(len(triangleTable)-1), "triangle step")
	t.length.serialize(s)
	s.Bool(&t.control)
	s.Uint8(&t.linearReload)
	s.Uint8(&t.linear)
	s.Bool(&t.reloadFlag)
}
