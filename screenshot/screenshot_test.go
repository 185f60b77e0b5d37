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

package screenshot_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/hardware/ppu"
	"github.com/gopher2a03/gopher2a03/screenshot"
	"github.com/gopher2a03/gopher2a03/test"
)

func pattern() []uint32 {
	pixels := make([]uint32, ppu.Width*ppu.Height)
	for i := range pixels {
		pixels[i] = ppu.Palette[(i%ppu.Width)%len(ppu.Palette)]
	}
	return pixels
}

func TestImage(t *testing.T) {
	pixels := pattern()
	pixels[0] = 0x123456

	img, err := screenshot.Image(pixels)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), ppu.Width)
	test.ExpectEquality(t, img.Bounds().Dy(), ppu.Height)

	c := img.RGBAAt(0, 0)
	test.ExpectEquality(t, c.R, 0x12)
	test.ExpectEquality(t, c.G, 0x34)
	test.ExpectEquality(t, c.B, 0x56)
	test.ExpectEquality(t, c.A, 0xff)

	_, err = screenshot.Image(pixels[:100])
	test.ExpectSuccess(t, curated.Is(err, screenshot.BadFrameBuffer))
}

func TestScale(t *testing.T) {
	img, err := screenshot.Image(pattern())
	test.DemandSuccess(t, err)

	scaled, err := screenshot.Scale(img, 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, scaled.Bounds().Dx(), ppu.Width*3)
	test.ExpectEquality(t, scaled.Bounds().Dy(), ppu.Height*3)

	// nearest neighbour scaling duplicates pixels exactly
	for x := range 3 {
		test.ExpectEquality(t, scaled.RGBAAt(30+x, 6), img.RGBAAt(10, 2))
	}

	_, err = screenshot.Scale(img, 0)
	test.ExpectSuccess(t, curated.Is(err, screenshot.BadScale))
}

func TestEncode(t *testing.T) {
	var b bytes.Buffer
	test.DemandSuccess(t, screenshot.Encode(&b, pattern(), 2))

	img, err := png.Decode(&b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), ppu.Width*2)
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "shot.png")
	test.DemandSuccess(t, screenshot.Save(fn, pattern(), 1))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Width, ppu.Width)
	test.ExpectEquality(t, cfg.Height, ppu.Height)
}
