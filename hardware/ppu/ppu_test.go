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

package ppu_test

import (
	"testing"

	"github.com/gopher2a03/gopher2a03/hardware/memory/cartridge/mapper"
	"github.com/gopher2a03/gopher2a03/hardware/ppu"
	"github.com/gopher2a03/gopher2a03/hardware/serializer"
	"github.com/gopher2a03/gopher2a03/test"
)

type mockCart struct {
	chr       [0x2000]uint8
	mirroring mapper.Mirroring
	scanlines int
}

func (c *mockCart) ReadPPU(address uint16) uint8 {
	return c.chr[address&0x1fff]
}

func (c *mockCart) WritePPU(address uint16, data uint8) {
	c.chr[address&0x1fff] = data
}

func (c *mockCart) Mirroring() mapper.Mirroring {
	return c.mirroring
}

func (c *mockCart) OnScanline() {
	c.scanlines++
}

type mockNMI struct {
	count int
}

func (n *mockNMI) SignalNMI() {
	n.count++
}

func setAddress(p *ppu.PPU, address uint16) {
	p.WriteRegister(0x2006, uint8(address>>8))
	p.WriteRegister(0x2006, uint8(address))
}

// runFrame steps the PPU one CPU cycle at a time until a frame completes and
// returns the number of cycles taken.
func runFrame(p *ppu.PPU) int {
	c := 1
	for !p.Step(1) {
		c++
	}
	return c
}

func TestDataRegister(t *testing.T) {
	cart := &mockCart{mirroring: mapper.Vertical}
	p := ppu.NewPPU(cart, nil)

	setAddress(p, 0x2108)
	p.WriteRegister(0x2007, 0x55)
	p.WriteRegister(0x2007, 0x66)

	// reads are buffered
	setAddress(p, 0x2108)
	p.ReadRegister(0x2007)
	test.ExpectEquality(t, p.ReadRegister(0x2007), 0x55)
	test.ExpectEquality(t, p.ReadRegister(0x2007), 0x66)

	// vertical mirroring
	test.ExpectEquality(t, p.Peek(0x2908), 0x55)
	test.ExpectEquality(t, p.Peek(0x2508), 0x00)
	test.ExpectEquality(t, p.Peek(0x3108), 0x55)

	// increment by 32
	p.WriteRegister(0x2000, 0x04)
	setAddress(p, 0x2000)
	p.WriteRegister(0x2007, 0x01)
	p.WriteRegister(0x2007, 0x02)
	test.ExpectEquality(t, p.Peek(0x2020), 0x02)

	// pattern tables are in the cartridge
	p.WriteRegister(0x2000, 0x00)
	setAddress(p, 0x0010)
	p.WriteRegister(0x2007, 0x77)
	test.ExpectEquality(t, cart.chr[0x0010], 0x77)
}

func TestPalette(t *testing.T) {
	p := ppu.NewPPU(&mockCart{}, nil)

	setAddress(p, 0x3f10)
	p.WriteRegister(0x2007, 0x21)
	setAddress(p, 0x3f01)
	p.WriteRegister(0x2007, 0x12)

	test.ExpectEquality(t, p.Peek(0x3f00), 0x21)
	test.ExpectEquality(t, p.Peek(0x3f11), 0x00)
	test.ExpectEquality(t, p.Peek(0x3f21), 0x12)

	// palette reads are not buffered
	setAddress(p, 0x3f01)
	test.ExpectEquality(t, p.ReadRegister(0x2007), 0x12)
}

func TestOAM(t *testing.T) {
	p := ppu.NewPPU(&mockCart{}, nil)
	p.WriteRegister(0x2003, 0xfe)
	p.WriteRegister(0x2004, 0x10)
	p.WriteRegister(0x2004, 0x20)
	p.WriteRegister(0x2004, 0x30)

	p.WriteRegister(0x2003, 0xff)
	test.ExpectEquality(t, p.ReadRegister(0x2004), 0x20)
	p.WriteRegister(0x2003, 0x00)
	test.ExpectEquality(t, p.ReadRegister(0x2004), 0x30)
}

func TestFrameTiming(t *testing.T) {
	nmi := &mockNMI{}
	p := ppu.NewPPU(&mockCart{}, nmi)

	// 262 lines of 341 dots with rendering disabled
	test.ExpectEquality(t, runFrame(p), 29781)
	test.ExpectEquality(t, p.Frame(), uint64(1))
	test.ExpectEquality(t, nmi.count, 0)

	p.WriteRegister(0x2000, 0x80)
	for nmi.count == 0 {
		p.Step(1)
	}
	line, _ := p.Coords()
	test.ExpectEquality(t, line, ppu.VBlankLine)

	// enabling NMI during vblank causes an immediate NMI
	p.WriteRegister(0x2000, 0x00)
	p.Step(10)
	p.WriteRegister(0x2000, 0x80)
	test.ExpectEquality(t, nmi.count, 2)

	// reading status clears the vblank flag
	test.ExpectEquality(t, p.ReadRegister(0x2002)&0x80, 0x80)
	test.ExpectEquality(t, p.ReadRegister(0x2002)&0x80, 0x00)

	// no immediate NMI once the flag has been cleared
	p.WriteRegister(0x2000, 0x00)
	p.WriteRegister(0x2000, 0x80)
	test.ExpectEquality(t, nmi.count, 2)

	runFrame(p)
	test.ExpectEquality(t, nmi.count, 2)
}

func TestRendering(t *testing.T) {
	cart := &mockCart{mirroring: mapper.Horizontal}

	// tile 1 is solid colour 1
	for i := range 8 {
		cart.chr[0x0010+i] = 0xff
	}

	p := ppu.NewPPU(cart, nil)

	// palette
	setAddress(p, 0x3f00)
	p.WriteRegister(0x2007, 0x0f)
	p.WriteRegister(0x2007, 0x30)

	// fill the first nametable with tile 1 except for the top left tile
	setAddress(p, 0x2001)
	for range 0x3bf {
		p.WriteRegister(0x2007, 0x01)
	}

	setAddress(p, 0x0000)
	p.WriteRegister(0x2005, 0x00)
	p.WriteRegister(0x2005, 0x00)
	p.WriteRegister(0x2001, 0x0a)

	runFrame(p)
	fb := p.FrameBuffer()
	test.ExpectEquality(t, len(fb), ppu.Width*ppu.Height)
	test.ExpectEquality(t, fb[0], ppu.Palette[0x0f])
	test.ExpectEquality(t, fb[7], ppu.Palette[0x0f])
	test.ExpectEquality(t, fb[8], ppu.Palette[0x30])
	test.ExpectEquality(t, fb[ppu.Width*239+255], ppu.Palette[0x30])

	// the MMC3 scanline counter is clocked on every rendered line
	test.ExpectEquality(t, cart.scanlines, 241)

	// left column masking
	p.WriteRegister(0x2001, 0x08)
	runFrame(p)
	test.ExpectEquality(t, fb[ppu.Width*8+0], ppu.Palette[0x0f])
	test.ExpectEquality(t, fb[ppu.Width*8+7], ppu.Palette[0x0f])
	test.ExpectEquality(t, fb[ppu.Width*8+8], ppu.Palette[0x30])

	// greyscale
	setAddress(p, 0x3f01)
	p.WriteRegister(0x2007, 0x16)
	setAddress(p, 0x0000)
	p.WriteRegister(0x2001, 0x0b)
	runFrame(p)
	test.ExpectEquality(t, fb[ppu.Width*8+8], ppu.Palette[0x10])
}

func TestSerialize(t *testing.T) {
	p := ppu.NewPPU(&mockCart{}, nil)
	setAddress(p, 0x2345)
	p.WriteRegister(0x2007, 0x99)
	p.Step(1000)

	s := serializer.NewSaver()
	p.Serialize(s)
	snapshot := s.Data()

	p.Reset()
	r := serializer.NewRestorer(snapshot)
	p.Serialize(r)
	test.DemandSuccess(t, r.Err())
	test.ExpectEquality(t, r.Remaining(), 0)
	test.ExpectEquality(t, p.Peek(0x2345), 0x99)

	s = serializer.NewSaver()
	p.Serialize(s)
	test.ExpectEquality(t, string(s.Data()), string(snapshot))
}
