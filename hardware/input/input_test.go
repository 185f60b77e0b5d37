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

package input_test

import (
	"testing"

	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/hardware/input"
	"github.com/gopher2a03/gopher2a03/hardware/serializer"
	"github.com/gopher2a03/gopher2a03/test"
)

func readAll(c *input.Controllers, address uint16) []uint8 {
	var r []uint8
	for range 10 {
		r = append(r, c.Read(address))
	}
	return r
}

func TestSerialRead(t *testing.T) {
	c := input.NewControllers()
	test.DemandSuccess(t, c.SetButton(0, input.A, true))
	test.DemandSuccess(t, c.SetButton(0, input.Start, true))
	test.DemandSuccess(t, c.SetButton(1, input.Right, true))

	c.Write(1)
	c.Write(0)

	expected := []uint8{0x41, 0x40, 0x40, 0x41, 0x40, 0x40, 0x40, 0x40, 0x41, 0x41}
	for i, v := range readAll(c, 0x4016) {
		test.ExpectEquality(t, v, expected[i], i)
	}

	expected = []uint8{0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x41, 0x41, 0x41}
	for i, v := range readAll(c, 0x4017) {
		test.ExpectEquality(t, v, expected[i], i)
	}

	// state changes after the latch are not seen until the next strobe
	test.DemandSuccess(t, c.SetButton(0, input.B, true))
	c.Write(1)
	c.Write(0)
	test.ExpectEquality(t, c.Read(0x4016), 0x41)
	test.ExpectEquality(t, c.Read(0x4016), 0x41)
}

func TestStrobeHigh(t *testing.T) {
	c := input.NewControllers()
	c.Write(1)

	// while strobe is high every read returns the A button
	test.ExpectEquality(t, c.Read(0x4016), 0x40)
	test.DemandSuccess(t, c.SetButton(0, input.A, true))
	test.ExpectEquality(t, c.Read(0x4016), 0x41)
	test.ExpectEquality(t, c.Read(0x4016), 0x41)
}

func TestBadArguments(t *testing.T) {
	c := input.NewControllers()
	err := c.SetButton(2, input.A, true)
	test.ExpectSuccess(t, curated.Is(err, input.BadPlayer))
	err = c.SetButton(0, input.Button(8), true)
	test.ExpectSuccess(t, curated.Is(err, input.BadButton))
	test.ExpectFailure(t, c.IsPressed(5, input.A))
}

func TestButtonNames(t *testing.T) {
	b, ok := input.ButtonFromString("select")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, input.Select)
	_, ok = input.ButtonFromString("turbo")
	test.ExpectFailure(t, ok)
}

func TestPushedEvents(t *testing.T) {
	c := input.NewControllers()
	inp := input.NewInput(c)

	test.DemandSuccess(t, inp.PushEvent(input.Event{Player: 1, Button: input.Up, Pressed: true}))
	test.ExpectFailure(t, c.IsPressed(1, input.Up))
	test.DemandSuccess(t, inp.Process())
	test.ExpectSuccess(t, c.IsPressed(1, input.Up))

	var err error
	for range 100 {
		err = inp.PushEvent(input.Event{Player: 0, Button: input.A, Pressed: true})
		if err != nil {
			break
		}
	}
	test.ExpectSuccess(t, curated.Is(err, input.QueueFull))
}

func TestSerialize(t *testing.T) {
	c := input.NewControllers()
	test.DemandSuccess(t, c.SetButton(0, input.B, true))
	c.Write(1)
	c.Write(0)
	c.Read(0x4016)

	s := serializer.NewSaver()
	c.Serialize(s)

	// the buttons change after the snapshot
	test.DemandSuccess(t, c.SetButton(0, input.B, false))
	test.DemandSuccess(t, c.SetButton(0, input.Select, true))

	r := serializer.NewRestorer(s.Data())
	c.Serialize(r)
	test.DemandSuccess(t, r.Err())

	// the shift register is restored but the buttons are as they are now
	test.ExpectEquality(t, c.Read(0x4016), 0x41)
	test.ExpectFailure(t, c.IsPressed(0, input.B))
	test.ExpectSuccess(t, c.IsPressed(0, input.Select))
}
