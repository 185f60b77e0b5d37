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

import "github.com/gopher2a03/gopher2a03/hardware/serializer"

// frame counter steps in CPU cycles
const (
	stepQuarter1 = 7457
	stepHalf1    = 14913
	stepQuarter3 = 22371
	stepFour     = 29829
	stepFive     = 37281
)

type frameCounter struct {
	fiveStep bool
	inhibit  bool
	irq      bool
	cycle    int
}

// write to $4017. returns true if the quarter and half frame units should be
// clocked immediately.
func (f *frameCounter) write(data uint8) bool {
	f.fiveStep = data&0x80 == 0x80
	f.inhibit = data&0x40 == 0x40
	if f.inhibit {
		f.irq = false
	}
	f.cycle = 0
	return f.fiveStep
}

// clock the frame counter by one CPU cycle. returns whether a quarter frame
// and a half frame clock occurred.
func (f *frameCounter) clock() (quarter bool, half bool) {
	f.cycle++

	switch f.cycle {
	case stepQuarter1, stepQuarter3:
		quarter = true
	case stepHalf1:
		quarter = true
		half = true
	case stepFour:
		if !f.fiveStep {
			quarter = true
			half = true
			if !f.inhibit {
				f.irq = true
			}
			f.cycle = 0
		}
	case stepFive:
		quarter = true
		half = true
		f.cycle = 0
	}

	return quarter, half
}

func (f *frameCounter) serialize(s *serializer.Serializer) {
	s.Bool(&f.fiveStep)
	s.Bool(&f.inhibit)
	s.Bool(&f.irq)
	s.IntRange(&f.cycle, 0, stepFive, "frame counter cycle")
}
