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

package hardware

import (
	"crypto/sha1"
	"fmt"

	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/hardware/apu"
	"github.com/gopher2a03/gopher2a03/hardware/cpu"
	"github.com/gopher2a03/gopher2a03/hardware/input"
	"github.com/gopher2a03/gopher2a03/hardware/memory"
	"github.com/gopher2a03/gopher2a03/hardware/memory/cartridge"
	"github.com/gopher2a03/gopher2a03/hardware/ppu"
	"github.com/gopher2a03/gopher2a03/hardware/serializer"
	"github.com/gopher2a03/gopher2a03/logger"
	"github.com/gopher2a03/gopher2a03/performance/limiter"
	"github.com/gopher2a03/gopher2a03/prefs"
	"github.com/gopher2a03/gopher2a03/rewind"
)

// error patterns
const (
	NoCartridge = "hardware: no cartridge loaded"
)

// Environment is the set of outbound collaborators used by the NES. Any field
// can be left empty.
type Environment struct {
	// audio samples are discarded if Audio is nil
	Audio apu.Sink

	// RealClock is used if Clock is nil
	Clock limiter.Clock

	// default preferences, not stored on disk, are used if Prefs or
	// RewindPrefs is nil
	Prefs       *Preferences
	RewindPrefs *rewind.Preferences
}

// NES is the main container for the emulated components of the NES.
type NES struct {
	Prefs *Preferences

	CPU         *cpu.CPU
	Mem         *memory.Memory
	PPU         *ppu.PPU
	APU         *apu.APU
	Cart        *cartridge.Cartridge
	Controllers *input.Controllers
	Input       *input.Input

	Rewind  *rewind.Rewind
	Limiter *limiter.Limiter

	turbo bool

	// sha1 of the loaded ROM image. used to match save states to cartridges
	romHash [sha1.Size]byte

	// the save state slot. nil if there is no saved state
	slot []byte

	// copy of the PPU frame buffer made when a frame completes
	frameBuffer []uint32
}

// NewNES creates a new NES and everything associated with the hardware. The
// units are created once and reset when a cartridge is loaded.
func NewNES(env Environment) (*NES, error) {
	nes := &NES{
		Prefs:       env.Prefs,
		frameBuffer: make([]uint32, ppu.Width*ppu.Height),
	}
	if nes.Prefs == nil {
		nes.Prefs = defaultPreferences()
	}

	nes.Mem = memory.NewMemory(nil)
	nes.CPU = cpu.NewCPU(nes.Mem)
	nes.Cart = cartridge.NewCartridge(nes.CPU)
	nes.Mem.AttachCartridge(nes.Cart)
	nes.PPU = ppu.NewPPU(nes.Cart, nes.CPU)
	nes.APU = apu.NewAPU(env.Audio, nes.CPU, nes.Mem)
	nes.Controllers = input.NewControllers()
	nes.Input = input.NewInput(nes.Controllers)

	nes.CPU.AttachIO(nes.APU, nes.Controllers)
	nes.Mem.Plumb(nes.PPU, nes.CPU)

	nes.Rewind = rewind.NewRewind(env.RewindPrefs)
	nes.Limiter = limiter.NewLimiter(env.Clock, float32(nes.Prefs.FPS.Get().(float64)))
	nes.Prefs.FPS.SetHookPost(func(v prefs.Value) error {
		nes.Limiter.SetLimit(float32(v.(float64)))
		return nil
	})

	nes.turbo = nes.Prefs.Turbo.Get().(bool)

	nes.Reset()

	return nes, nil
}

func (nes *NES) String() string {
	return fmt.Sprintf("%s\n%s\n%s", nes.Cart, nes.CPU, nes.PPU)
}

// LoadROM creates a new cartridge from the iNES data and resets the machine.
// The rewind history and the save state slot are discarded.
//
// If the data cannot be loaded the existing cartridge remains in place.
func (nes *NES) LoadROM(data []byte) (cartridge.Header, error) {
	cart := cartridge.NewCartridge(nes.CPU)
	hdr, err := cart.Load(data)
	if err != nil {
		return hdr, err
	}

	nes.Cart = cart
	nes.Mem.AttachCartridge(cart)
	nes.PPU.Plumb(cart)
	nes.romHash = sha1.Sum(data)
	nes.slot = nil

	nes.Reset()
	nes.Rewind.Reset()

	logger.Logf(logger.Allow, "hardware", "loaded %x", nes.romHash)

	return hdr, nil
}

// ROMHash returns the sha1 of the loaded ROM image as a hex string. Returns
// the empty string if no cartridge is loaded.
func (nes *NES) ROMHash() string {
	if !nes.Cart.IsLoaded() {
		return ""
	}
	return fmt.Sprintf("%x", nes.romHash)
}

// Reset emulates the reset switch. All units are returned to their power on
// state.
func (nes *NES) Reset() {
	nes.Mem.Reset()
	nes.PPU.Reset()
	nes.APU.Reset()
	nes.Controllers.Reset()

	// the CPU is reset last because it reads the reset vector
	nes.CPU.Reset()

	clear(nes.frameBuffer)
}

// SetTurbo changes the turbo mode. The frame limiter is ignored in turbo mode.
func (nes *NES) SetTurbo(turbo bool) {
	nes.turbo = turbo
}

// Turbo returns true if turbo mode is on.
func (nes *NES) Turbo() bool {
	return nes.turbo
}

// SetButton changes the state of a controller button immediately. Use
// Input.PushEvent() to change the state from another goroutine.
func (nes *NES) SetButton(player int, b input.Button, pressed bool) error {
	return nes.Controllers.SetButton(player, b, pressed)
}

// FrameBuffer returns the pixels of the most recently completed frame. Pixels
// are packed as 0x00RRGGBB, ppu.Width pixels per row.
func (nes *NES) FrameBuffer() []uint32 {
	return nes.frameBuffer
}

// Frame returns the number of frames completed by the PPU.
func (nes *NES) Frame() uint64 {
	return nes.PPU.Frame()
}

// Status returns a single line summary of the position in the frame and of
// the interrupts waiting to be serviced.
func (nes *NES) Status() string {
	line, dot := nes.PPU.Coords()
	nmi, irq := nes.CPU.PendingInterrupts()
	return fmt.Sprintf("frame=%d line=%d dot=%d PC=%s nmi=%v irq=%v", nes.Frame(), line, dot, nes.CPU.PC, nmi, irq)
}

// Peek returns the value at the address without side effects.
func (nes *NES) Peek(address uint16) uint8 {
	return nes.Mem.Peek(address)
}

// Serialize implements the serializer.Serializable interface.
func (nes *NES) Serialize(s *serializer.Serializer) {
	s.Bool(&nes.turbo)
	s.Object(nes.CPU)
	s.Object(nes.PPU)
	s.Object(nes.APU)
	s.Object(nes.Cart)
	s.Object(nes.Mem)
	s.Object(nes.Controllers)
}

// snapshot of the entire machine
func (nes *NES) snapshot() []byte {
	s := serializer.NewSaver()
	nes.Serialize(s)
	return s.Data()
}

// restore the machine from the snapshot. if the snapshot can not be restored
// completely the machine is returned to the state it was in before the call
func (nes *NES) restore(data []byte) error {
	rollback := nes.snapshot()

	r := serializer.NewRestorer(data)
	nes.Serialize(r)

	err := r.Err()
	if err == nil && r.Remaining() != 0 {
		err = curated.Errorf(StateLength, len(data)-r.Remaining(), len(data))
	}
	if err != nil {
		r = serializer.NewRestorer(rollback)
		nes.Serialize(r)
		return curated.Errorf(StateCorrupt, err)
	}

	return nil
}
