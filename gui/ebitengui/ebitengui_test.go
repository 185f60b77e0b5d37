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
	"testing"

	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/hardware"
	"github.com/gopher2a03/gopher2a03/hardware/apu"
	"github.com/gopher2a03/gopher2a03/hardware/input"
	"github.com/gopher2a03/gopher2a03/savestate"
	"github.com/gopher2a03/gopher2a03/test"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/afero"
)

func readSamples(r *ring, n int) []float32 {
	p := make([]byte, n*4)
	c, _ := r.Read(p)
	s := make([]float32, c/4)
	for i := range s {
		s[i] = math.Float32frombits(binary.LittleEndian.Uint32(p[i*4:]))
	}
	return s
}

func TestRing(t *testing.T) {
	r := newRing(4)

	r.write(0.1)
	r.write(0.2)
	test.ExpectEquality(t, r.len(), 2)

	// underrun is filled with silence
	s := readSamples(r, 3)
	test.DemandEquality(t, len(s), 3)
	test.ExpectEquality(t, s[0], float32(0.1))
	test.ExpectEquality(t, s[1], float32(0.2))
	test.ExpectEquality(t, s[2], float32(0.0))
	test.ExpectEquality(t, r.len(), 0)

	// overrun drops the oldest samples
	for i := range 6 {
		r.write(float32(i))
	}
	test.ExpectEquality(t, r.len(), 4)
	s = readSamples(r, 4)
	test.ExpectEquality(t, s[0], float32(2))
	test.ExpectEquality(t, s[3], float32(5))

	r.write(1.0)
	r.clear()
	test.ExpectEquality(t, r.len(), 0)

	// partial samples are not written
	p := make([]byte, 7)
	n, err := r.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
}

func TestKeyEvents(t *testing.T) {
	state := make(map[ebiten.Key]bool)
	down := map[ebiten.Key]bool{
		ebiten.KeyX:     true,
		ebiten.KeySpace: true,
	}
	pressed := func(k ebiten.Key) bool { return down[k] }

	ev := keyEvents(state, pressed)
	test.DemandEquality(t, len(ev), 2)

	var a, start bool
	for _, e := range ev {
		test.ExpectSuccess(t, e.Pressed)
		switch {
		case e.Player == 0 && e.Button == input.A:
			a = true
		case e.Player == 1 && e.Button == input.Start:
			start = true
		}
	}
	test.ExpectSuccess(t, a)
	test.ExpectSuccess(t, start)

	// no change, no events
	test.ExpectEquality(t, len(keyEvents(state, pressed)), 0)

	delete(down, ebiten.KeyX)
	ev = keyEvents(state, pressed)
	test.DemandEquality(t, len(ev), 1)
	test.ExpectEquality(t, ev[0], input.Event{Player: 0, Button: input.A, Pressed: false})
}

func TestHotkeys(t *testing.T) {
	h := triggered(func(k ebiten.Key) bool { return k == ebiten.KeyF5 || k == ebiten.KeyTab })
	test.DemandEquality(t, len(h), 2)

	var save, turbo bool
	for _, v := range h {
		save = save || v == hotkeySaveState
		turbo = turbo || v == hotkeyTurbo
	}
	test.ExpectSuccess(t, save)
	test.ExpectSuccess(t, turbo)

	// rewinding is held, not triggered
	_, ok := hotkeys[rewindKey]
	test.ExpectFailure(t, ok)
}

func TestToRGBA(t *testing.T) {
	dst := make([]byte, 8)
	toRGBA(dst, []uint32{0x112233, 0xaabbcc})
	test.ExpectEquality(t, string(dst), "\x11\x22\x33\xff\xaa\xbb\xcc\xff")
}

type countingSink struct {
	n int
}

func (s *countingSink) SetSample(float32) {
	s.n++
}

// NES with an NROM image that loops at the reset address
func newNES(t *testing.T, sink apu.Sink) *hardware.NES {
	t.Helper()

	rom := make([]byte, 16+0x4000+0x2000)
	copy(rom, "NES\x1a")
	rom[4] = 1
	rom[5] = 1
	prg := rom[16 : 16+0x4000]
	copy(prg, []byte{0x4c, 0x00, 0x80})
	binary.LittleEndian.PutUint16(prg[0x3ffc:], 0x8000)

	nes, err := hardware.NewNES(hardware.Environment{Audio: sink})
	test.DemandSuccess(t, err)
	_, err = nes.LoadROM(rom)
	test.DemandSuccess(t, err)
	nes.SetTurbo(true)
	return nes
}

func TestMute(t *testing.T) {
	sink := &countingSink{}
	nes := newNES(t, sink)

	win := &Window{nes: nes, sink: sink}

	test.DemandSuccess(t, nes.ExecuteFrame(false))
	n := sink.n
	test.ExpectInequality(t, n, 0)

	win.toggleMute()
	test.DemandSuccess(t, nes.ExecuteFrame(false))
	test.ExpectEquality(t, sink.n, n)

	win.toggleMute()
	test.DemandSuccess(t, nes.ExecuteFrame(false))
	test.ExpectInequality(t, sink.n, n)

	_, ok := hotkeys[ebiten.KeyF9]
	test.ExpectSuccess(t, ok)
}

func TestStateHotkeys(t *testing.T) {
	store, err := savestate.NewStore(afero.NewMemMapFs(), "/saves")
	test.DemandSuccess(t, err)
	defer store.Close()

	nes := newNES(t, nil)
	win := &Window{nes: nes, opts: Options{Store: store}}

	// nothing in memory or on disk
	test.ExpectSuccess(t, curated.Is(win.loadState(), hardware.NoState))

	test.DemandSuccess(t, nes.ExecuteFrame(false))
	test.DemandSuccess(t, win.saveState())
	test.ExpectSuccess(t, store.HasSlot(nes.ROMHash(), hotkeySlot))

	// a new session finds the state on disk
	other := newNES(t, nil)
	win = &Window{nes: other, opts: Options{Store: store}}
	test.DemandSuccess(t, win.loadState())
	test.ExpectEquality(t, other.Frame(), 1)
}
