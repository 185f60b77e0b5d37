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

// Package screenshot converts the frame buffer to an image and saves it as a
// PNG file. The image can be scaled, using nearest neighbour scaling so that
// pixel edges remain sharp.
package screenshot

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/hardware/ppu"
	"github.com/gopher2a03/gopher2a03/logger"
	"github.com/gopher2a03/gopher2a03/paths"
	"golang.org/x/image/draw"
)

// error patterns
const (
	ScreenshotError = "screenshot: %v"
	BadScale        = "screenshot: scale must be at least one (%d)"
	BadFrameBuffer  = "screenshot: frame buffer is the wrong size (%d)"
)

// Image converts a frame buffer of packed 0x00RRGGBB values to an image.
func Image(pixels []uint32) (*image.RGBA, error) {
	if len(pixels) != ppu.Width*ppu.Height {
		return nil, curated.Errorf(BadFrameBuffer, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, ppu.Width, ppu.Height))
	for i, p := range pixels {
		img.SetRGBA(i%ppu.Width, i/ppu.Width, color.RGBA{
			R: uint8(p >> 16),
			G: uint8(p >> 8),
			B: uint8(p),
			A: 0xff,
		})
	}

	return img, nil
}

// Scale returns a copy of the image scaled by an integer amount.
func Scale(src *image.RGBA, scale int) (*image.RGBA, error) {
	if scale < 1 {
		return nil, curated.Errorf(BadScale, scale)
	}
	if scale == 1 {
		return src, nil
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	return dst, nil
}

// Encode the frame buffer as a PNG at the specified scale.
func Encode(w io.Writer, pixels []uint32, scale int) error {
	img, err := Image(pixels)
	if err != nil {
		return err
	}

	img, err = Scale(img, scale)
	if err != nil {
		return err
	}

	if err := png.Encode(w, img); err != nil {
		return curated.Errorf(ScreenshotError, err)
	}

	return nil
}

// Save the frame buffer to the named file.
func Save(path string, pixels []uint32, scale int) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(ScreenshotError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(ScreenshotError, err)
		}
	}()

	if err := Encode(f, pixels, scale); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s", path)

	return nil
}

// SaveUnique saves the frame buffer to a uniquely named file in the
// screenshots directory of the resource path. Returns the path of the new
// file.
func SaveUnique(name string, pixels []uint32, scale int) (string, error) {
	dir, err := paths.ResourcePath("screenshots", "")
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, paths.UniqueFilename("screenshot", name, time.Now())+".png")
	return path, Save(path, pixels, scale)
}
