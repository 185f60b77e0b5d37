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

// rate in CPU cycles
var dmcTable = [16]uint16{
	428, 380, 340, 320, 286, 254, 226, 214, 190, 160, 142, 128, 106, 84, 72, 54,
}

type dmc struct {
	irqEnabled bool
	loop       bool
	irq        bool

	rate  uint16
	timer uint16

	sampleAddress uint16
	sampleLength  uint16

	// memory reader
	currentAddress uint16
	bytesRemaining uint16
	buffer         uint8
	bufferEmpty    bool

	// output unit
	shift         uint8
	bitsRemaining uint8
	silence       bool
	level         uint8
}

func (d *dmc) String() string {
	return fmt.Sprintf("%04x/%d/%d", d.currentAddress, d.bytesRemaining, d.level)
}

func (d *dmc) write(reg uint16, data uint8) {
	switch reg {
	case 0:
		d.irqEnabled = data&0x80 == 0x80
		if !d.irqEnabled {
			d.irq = false
		}
		d.loop = data&0x40 == 0x40
		d.rate = dmcTable[data&0x0f]
	case 1:
		d.level = data & 0x7f
	case 2:
		d.sampleAddress = 0xc000 | uint16(data)<<6
	case 3:
		d.sampleLength = uint16(data)<<4 | 0x0001
	}
}

func (d *dmc) setEnabled(enabled bool) {
	d.irq = false
	if !enabled {
		d.bytesRemaining = 0
	} else if d.bytesRemaining == 0 {
		d.restart()
	}
}

func (d *dmc) restart() {
	d.currentAddress = d.sampleAddress
	d.bytesRemaining = d.sampleLength
}

func (d *dmc) clock(mem Memory) {
	if d.bufferEmpty && d.bytesRemaining > 0 {
		if mem != nil {
			d.buffer = mem.Read(d.currentAddress)
		}
		d.bufferEmpty = false

		// address wraps to $8000
		d.currentAddress++
		if d.currentAddress == 0x0000 {
			d.currentAddress = 0x8000
		}

		d.bytesRemaining--
		if d.bytesRemaining == 0 {
			if d.loop {
				d.restart()
			} else if d.irqEnabled {
				d.irq = true
			}
		}
	}

	if d.timer > 0 {
		d.timer--
		return
	}
	if d.rate > 0 {
		d.timer = d.rate - 1
	}

	if d.bitsRemaining == 0 {
		d.bitsRemaining = 8
		if d.bufferEmpty {
			d.silence = true
		} else {
			d.silence = false
			d.shift = d.buffer
			d.bufferEmpty = true
		}
	}

	if !d.silence {
		if d.shift&0x01 == 0x01 {
			if d.level <= 125 {
				d.level += 2
			}
		} else if d.level >= 2 {
			d.level -= 2
		}
	}

	d.shift >>= 1
	d.bitsRemaining--
}

func (d *dmc) output() uint8 {
	return d.level
}

func (d *dmc) serialize(s *serializer.Serializer) {
	s.Bool(&d.irqEnabled)
	s.Bool(&d.loop)
	s.Bool(&d.irq)
	s.Uint16(&d.rate)
	s.Uint16(&d.timer)
	s.Uint16(&d.sampleAddress)
	s.Uint16(&d.sampleLength)
	s.Uint16(&d.currentAddress)
	s.Uint16(&d.bytesRemaining)
	s.Uint8(&d.buffer)
	s.Bool(&d.bufferEmpty)
	s.Uint8(&d.shift)
	s.Uint8(&d.bitsRemaining)
	s.Bool(&d.silence)
	s.Uint8Range(&d.level, 0x7f, "DMC level")
}
