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
	"github.com/gopher2a03/gopher2a03/hardware/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyBinding is the controller button operated by a key.
type keyBinding struct {
	player int
	button input.Button
}

// the default key bindings. player one is on the cursor keys, player two is
// on WASD
var keyBindings = map[ebiten.Key]keyBinding{
	ebiten.KeyArrowUp:    {0, input.Up},
	ebiten.KeyArrowDown:  {0, input.Down},
	ebiten.KeyArrowLeft:  {0, input.Left},
	ebiten.KeyArrowRight: {0, input.Right},
	ebiten.KeyX:          {0, input.A},
	ebiten.KeyZ:          {0, input.B},
	ebiten.KeyShiftRight: {0, input.Select},
	ebiten.KeyEnter:      {0, input.Start},

	ebiten.KeyW:         {1, input.Up},
	ebiten.KeyS:         {1, input.Down},
	ebiten.KeyA:         {1, input.Left},
	ebiten.KeyD:         {1, input.Right},
	ebiten.KeyG:         {1, input.A},
	ebiten.KeyF:         {1, input.B},
	ebiten.KeyShiftLeft: {1, input.Select},
	ebiten.KeySpace:     {1, input.Start},
}

// hotkey is an action that is not a controller button.
type hotkey int

const (
	hotkeyNone hotkey = iota
	hotkeySaveState
	hotkeyLoadState
	hotkeyTurbo
	hotkeyScreenshot
	hotkeyReset
	hotkeyMute
)

// keys that trigger a hotkey when they are first pressed. rewinding is not
// included because it is active for as long as the key is held
var hotkeys = map[ebiten.Key]hotkey{
	ebiten.KeyF5:  hotkeySaveState,
	ebiten.KeyF7:  hotkeyLoadState,
	ebiten.KeyTab: hotkeyTurbo,
	ebiten.KeyF12: hotkeyScreenshot,
	ebiten.KeyF1:  hotkeyReset,
	ebiten.KeyF9:  hotkeyMute,
}

const rewindKey = ebiten.KeyBackspace

// keyEvents returns an input event for every bound key that has changed
// state. The state of keys is tracked by the map, which is updated.
func keyEvents(state map[ebiten.Key]bool, pressed func(ebiten.Key) bool) []input.Event {
	var events []input.Event
	for k, b := range keyBindings {
		p := pressed(k)
		if p == state[k] {
			continue
		}
		state[k] = p
		events = append(events, input.Event{
			Player:  b.player,
			Button:  b.button,
			Pressed: p,
		})
	}
	return events
}

// triggered returns the hotkeys that have just been pressed.
func triggered(justPressed func(ebiten.Key) bool) []hotkey {
	var h []hotkey
	for k, v := range hotkeys {
		if justPressed(k) {
			h = append(h, v)
		}
	}
	return h
}
