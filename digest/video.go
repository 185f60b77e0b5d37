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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// Video produces a chained hash of frame buffers.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

// each pixel is stored as red, green, blue
const pixelDepth = 3

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames added since the last reset.
func (dig *Video) Frames() int {
	return dig.frames
}

// AddFrame adds the frame buffer to the digest. Pixels are packed as
// 0x00RRGGBB.
func (dig *Video) AddFrame(pixels []uint32) {
	l := len(dig.digest) + len(pixels)*pixelDepth
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	copy(dig.pixels, dig.digest[:])

	i := len(dig.digest)
	for _, p := range pixels {
		dig.pixels[i] = byte(p >> 16)
		dig.pixels[i+1] = byte(p >> 8)
		dig.pixels[i+2] = byte(p)
		i += pixelDepth
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}

// Frame returns the hash of a single frame buffer. The hash is not chained.
func Frame(pixels []uint32) string {
	var dig Video
	dig.AddFrame(pixels)
	return dig.Hash()
}
