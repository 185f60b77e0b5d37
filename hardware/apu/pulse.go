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

var dutyTable = [4][8]uint8{
	{0, 1, 0, 0, 0, 0, 0, 0},
	{0, 1, 1, 0, 0, 0, 0, 0},
	{0, 1, 1, 1, 1, 0, 0, 0},
	{1, 0, 0, 1, 1, 1, 1, 1},
}

type pulse struct {
	// pulse 1 negates the sweep change with ones complement
	onesComplement bool

	enabled bool

	duty    uint8
	dutyPos uint8

	period uint16
	timer  uint16

	length lengthCounter
	env    envelope

	sweepEnabled bool
	sweepNegate  bool
	sweepReload  bool
	sweepPeriod  uint8
	sweepShift   uint8
	sweepDivider uint8
}

func (p *pulse) String() string {
	return fmt.Sprintf("%03x/%d/%d", p.period, p.length.value, p.env.output())
}

func (p *pulse) write(reg uint16, data uint8) {
	switch reg {
	case 0:
		p.duty = data >> 6
		p.length.halt = data&0x20 == 0x20
		p.env.loop = p.length.halt
		p.env.constant = data&0x10 == 0x10
		p.env.volume = data & 0x0f
	case 1:
		p.sweepEnabled = data&0x80 == 0x80
		p.sweepPeriod = (data >> 4) & 0x07
		p.sweepNegate = data&0x08 == 0x08
		p.sweepShift = data & 0x07
		p.sweepReload = true
	case 2:
		p.period = (p.period & 0x0700) | uint16(data)
	case 3:
		p.period = (p.period & 0x00ff) | uint16(data&0x07)<<8
		if p.enabled {
			p.length.load(data >> 3)
		}
		p.dutyPos = 0
		p.env.start = true
	}
}

func (p *pulse) setEnabled(enabled bool) {
	p.enabled = enabled
	if !enabled {
		p.length.value = 0
	}
}

func (p *pulse) clockTimer() {
	if p.timer == 0 {
		p.timer = p.period
		p.dutyPos = (p.dutyPos + 1) & 0x07
	} else {
		p.timer--
	}
}

func (p *pulse) targetPeriod() int {
	change := int(p.period >> p.sweepShift)
	if p.sweepNegate {
		change = -change
		if p.onesComplement {
			change--
		}
	}
	return int(p.period) + change
}

// the channel is muted when the period is too low or when the sweep target
// overflows, whether or not the sweep is enabled
func (p *pulse) muted() bool {
	return p.period < 8 || p.targetPeriod() > 0x7ff
}

func (p *pulse) clockSweep() {
	if p.sweepDivider == 0 && p.sweepEnabled && p.sweepShift > 0 && !p.muted() {
		t := p.targetPeriod()
		if t < 0 {
			t = 0
		}
		p.period = uint16(t)
	}
	if p.sweepDivider == 0 || p.sweepReload {
		p.sweepDivider = p.sweepPeriod
		p.sweepReload = false
	} else {
		p.sweepDivider--
	}
}

func (p *pulse) output() uint8 {
	if p.length.value == 0 || p.muted() || dutyTable[p.duty][p.dutyPos] == 0 {
		return 0
	}
	return p.env.output()
}

func (p *pulse) serialize(s *serializer.Serializer) {
	s.Bool(&p.enabled)
	s.Uint8Range(&p.duty, uint8(len(dutyTable)-1), "duty")
	s.Uint8Range(&p.dutyPos, uint8(len(dutyTable[0])-1), "duty position")
	s.Uint16(&p.period)
	s.Uint16(&p.timer)
	p.length.serialize(s)
	p.env.serialize(s)
	s.Bool(&p.sweepEnabled)
	s.Bool(&p.sweepNegate)
	s.Bool(&p.sweepReload)
	s.Uint8(&p.sweepPeriod)
	s.Uint8(&p.sweepShift)
	s.Uint8(&p.sweepDivider)
}
