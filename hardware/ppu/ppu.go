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

package ppu

import (
	"fmt"

	"github.com/gopher2a03/gopher2a03/hardware/memory/cartridge/mapper"
	"github.com/gopher2a03/gopher2a03/hardware/serializer"
)

// Dimensions of the frame buffer.
const (
	Width  = 256
	Height = 240
)

// Timing of a frame.
const (
	DotsPerCycle  = 3
	DotsPerLine   = 341
	LinesPerFrame = 262
	VisibleLines  = 240
	VBlankLine    = 241
	PreRenderLine = 261
)

// the dot on which the cartridge is told about a new scanline. this matches
// when the MMC3 sees the rise of A12 in the default configuration.
const scanlineNotifyDot = 260

// Cartridge is the interface to the cartridge required by the PPU.
type Cartridge interface {
	ReadPPU(address uint16) uint8
	WritePPU(address uint16, data uint8)
	Mirroring() mapper.Mirroring
	OnScanline()
}

// NMISignaller is implemented by the CPU.
type NMISignaller interface {
	SignalNMI()
}

// PPU is the picture processing unit.
type PPU struct {
	cart Cartridge
	nmi  NMISignaller

	ctrl   uint8
	mask   uint8
	status uint8

	oamAddr uint8
	oam     [256]uint8

	// internal scroll registers
	v uint16
	t uint16
	x uint8
	w bool

	// buffered value returned by PPUDATA reads
	readBuffer uint8

	// last value written to any register
	openBus uint8

	nametables [0x800]uint8
	palette    [32]uint8

	dot      int
	line     int
	frame    uint64
	oddFrame bool

	frameBuffer [Width * Height]uint32
}

// NewPPU is the preferred method of initialisation for the PPU type. The
// cartridge must not be nil.
func NewPPU(cart Cartridge, nmi NMISignaller) *PPU {
	ppu := &PPU{
		cart: cart,
		nmi:  nmi,
	}
	ppu.Reset()
	return ppu
}

// Plumb a new cartridge into the PPU.
func (ppu *PPU) Plumb(cart Cartridge) {
	ppu.cart = cart
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("frame=%d line=%d dot=%d v=%04x t=%04x x=%d w=%v", ppu.frame, ppu.line, ppu.dot, ppu.v, ppu.t, ppu.x, ppu.w)
}

// Reset the PPU to its power on state.
func (ppu *PPU) Reset() {
	ppu.ctrl = 0
	ppu.mask = 0
	ppu.status = 0
	ppu.oamAddr = 0
	clear(ppu.oam[:])
	ppu.v = 0
	ppu.t = 0
	ppu.x = 0
	ppu.w = false
	ppu.readBuffer = 0
	ppu.openBus = 0
	clear(ppu.nametables[:])
	clear(ppu.palette[:])
	ppu.dot = 0
	ppu.line = 0
	ppu.frame = 0
	ppu.oddFrame = false
	clear(ppu.frameBuffer[:])
}

// FrameBuffer returns the pixels of the most recent frame. The slice is
// reused and the caller should copy it if necessary.
func (ppu *PPU) FrameBuffer() []uint32 {
	return ppu.frameBuffer[:]
}

// Frame returns the number of completed frames since the last reset.
func (ppu *PPU) Frame() uint64 {
	return ppu.frame
}

// Coords returns the current line and dot.
func (ppu *PPU) Coords() (int, int) {
	return ppu.line, ppu.dot
}

func (ppu *PPU) renderingEnabled() bool {
	return ppu.mask&(maskBackground|maskSprites) != 0
}

// Step the PPU by the number of CPU cycles. Returns true if a frame was
// completed.
func (ppu *PPU) Step(cycles int) bool {
	done := false
	for range cycles * DotsPerCycle {
		if ppu.tick() {
			done = true
		}
	}
	return done
}

func (ppu *PPU) tick() bool {
	rendering := ppu.renderingEnabled()

	switch {
	case ppu.line < VisibleLines:
		switch ppu.dot {
		case 256:
			ppu.renderScanline()
			if rendering {
				ppu.incrementY()
			}
		case 257:
			if rendering {
				ppu.copyX()
			}
		case scanlineNotifyDot:
			if rendering {
				ppu.cart.OnScanline()
			}
		}

	case ppu.line == VBlankLine:
		if ppu.dot == 1 {
			ppu.status |= statusVBlank
			if ppu.ctrl&ctrlNMI == ctrlNMI && ppu.nmi != nil {
				ppu.nmi.SignalNMI()
			}
		}

	case ppu.line == PreRenderLine:
		switch ppu.dot {
		case 1:
			ppu.status &^= statusVBlank | statusSpriteZero | statusOverflow
		case 256:
			if rendering {
				ppu.incrementY()
			}
		case 257:
			if rendering {
				ppu.copyX()
			}
		case scanlineNotifyDot:
			if rendering {
				ppu.cart.OnScanline()
			}
		case 304:
			if rendering {
				ppu.copyY()
			}
		}
	}

	ppu.dot++

	// the last dot of the pre-render line is skipped on odd frames
	if ppu.line == PreRenderLine && ppu.dot == DotsPerLine-1 && ppu.oddFrame && rendering {
		ppu.dot++
	}

	if ppu.dot >= DotsPerLine {
		ppu.dot = 0
		ppu.line++
		if ppu.line >= LinesPerFrame {
			ppu.line = 0
			ppu.frame++
			ppu.oddFrame = !ppu.oddFrame
			return true
		}
	}

	return false
}

// Serialize implements the serializer.Serializable interface. The frame
// buffer is not included.
func (ppu *PPU) Serialize(s *serializer.Serializer) {
	s.Uint8(&ppu.ctrl)
	s.Uint8(&ppu.mask)
	s.Uint8(&ppu.status)
	s.Uint8(&ppu.oamAddr)
	s.Buffer(ppu.oam[:])
	s.Uint16(&ppu.v)
	s.Uint16(&ppu.t)
	s.Uint8Range(&ppu.x, 0x07, "fine x")
	s.Bool(&ppu.w)
	s.Uint8(&ppu.readBuffer)
	s.Uint8(&ppu.openBus)
	s.Buffer(ppu.nametables[:])
	s.Buffer(ppu.palette[:])
	s.IntRange(&ppu.dot, 0, DotsPerLine-1, "dot")
	s.IntRange(&ppu.line, 0, LinesPerFrame-1, "line")
	s.Uint64(&ppu.frame)
	s.Bool(&ppu.oddFrame)
}
