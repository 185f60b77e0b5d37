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
	"github.com/gopher2a03/gopher2a03/curated"
)

// error patterns
const (
	QueueFull = "input: pushed event queue is full: input dropped"
)

// Event is a change of state for one button.
type Event struct {
	Player  int
	Button  Button
	Pressed bool
}

// Input coordinates the delivery of button events to the controllers.
type Input struct {
	controllers *Controllers

	// events pushed onto the input queue
	pushed chan Event
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(controllers *Controllers) *Input {
	return &Input{
		controllers: controllers,
		pushed:      make(chan Event, 64),
	}
}

// HandleEvent applies the event to the controllers immediately.
func (inp *Input) HandleEvent(ev Event) error {
	return inp.controllers.SetButton(ev.Player, ev.Button, ev.Pressed)
}

// PushEvent pushes an Event onto the queue. Safe to call from any goroutine.
// Will drop the event and return an error if the queue is full.
func (inp *Input) PushEvent(ev Event) error {
	select {
	case inp.pushed <- ev:
	default:
		return curated.Errorf(QueueFull)
	}
	return nil
}

// Process applies every pushed event. Should be called from the emulation
// goroutine.
func (inp *Input) Process() error {
	for {
		select {
		case ev := <-inp.pushed:
			if err := inp.HandleEvent(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}
