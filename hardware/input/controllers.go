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

package input

import (
	"fmt"

	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/hardware/memory/cpubus"
	"github.com/gopher2a03/gopher2a03/hardware/serializer"
)

// NumPlayers is the number of controller ports.
const NumPlayers = 2

// error patterns
const (
	BadPlayer = "input: no controller for player %d"
	BadButton = "input: unknown button (%d)"
)

const openBus = 0x40

type pad struct {
	// live state of the buttons. bit positions are given by the Button type
	state uint8

	// latched copy being shifted out and the number of bits read so far
	shift uint8
	count uint8
}

func (p *pad) latch() {
	p.shift = p.state
	p.count = 0
}

func (p *pad) read(strobe bool) uint8 {
	if strobe {
		return p.state & 0x01
	}
	if p.count >= NumButtons {
		return 0x01
	}
	b := p.shift & 0x01
	p.shift >>= 1
	p.count++
	return b
}

// Controllers are the two controller ports. It implements the cpu.Controllers
// interface.
type Controllers struct {
	pads   [NumPlayers]pad
	strobe bool
}

// NewControllers is the preferred method of initialisation for the
// Controllers type.
func NewControllers() *Controllers {
	return &Controllers{}
}

func (c *Controllers) String() string {
	return fmt.Sprintf("P1: %08b P2: %08b strobe: %v", c.pads[0].state, c.pads[1].state, c.strobe)
}

// Reset releases all buttons.
func (c *Controllers) Reset() {
	*c = Controllers{}
}

// SetButton changes the state of a button.
func (c *Controllers) SetButton(player int, b Button, pressed bool) error {
	if player < 0 || player >= NumPlayers {
		return curated.Errorf(BadPlayer, player)
	}
	if b < 0 || b >= NumButtons {
		return curated.Errorf(BadButton, b)
	}

	p := &c.pads[player]
	if pressed {
		p.state |= 1 << b
	} else {
		p.state &^= 1 << b
	}

	// while strobe is high the shift register follows the buttons
	if c.strobe {
		p.latch()
	}

	return nil
}

// IsPressed returns the state of a button. Returns false for an invalid
// player or button.
func (c *Controllers) IsPressed(player int, b Button) bool {
	if player < 0 || player >= NumPlayers || b < 0 || b >= NumButtons {
		return false
	}
	return c.pads[player].state&(1<<b) != 0
}

// Read implements the cpu.Controllers interface.
func (c *Controllers) Read(address uint16) uint8 {
	switch address {
	case cpubus.JOY1Address:
		return openBus | c.pads[0].read(c.strobe)
	case cpubus.JOY2Address:
		return openBus | c.pads[1].read(c.strobe)
	}
	return openBus
}

// Write implements the cpu.Controllers interface.
func (c *Controllers) Write(data uint8) {
	c.strobe = data&0x01 == 0x01
	if c.strobe {
		for i := range c.pads {
			c.pads[i].latch()
		}
	}
}

// Serialize implements the serializer.Serializable interface. The live state
// of the buttons is not included.
func (c *Controllers) Serialize(s *serializer.Serializer) {
	for i := range c.pads {
		s.Uint8(&c.pads[i].shift)
		s.Uint8Range(&c.pads[i].count, NumButtons, "controller bit count")
	}
	s.Bool(&c.strobe)
}
