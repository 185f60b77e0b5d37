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
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/hardware/apu"
)

// error patterns
const (
	AudioError = "ebitengui: audio: %v"
)

// about a quarter of a second of audio
const ringSize = apu.SampleRate / 4

// Audio plays the samples produced by the APU. It implements the apu.Sink
// interface.
type Audio struct {
	ctx    *oto.Context
	player *oto.Player
	ring   *ring
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() (*Audio, error) {
	op := &oto.NewContextOptions{
		SampleRate:   apu.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   50 * time.Millisecond,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf(AudioError, err)
	}
	<-ready

	aud := &Audio{
		ctx:  ctx,
		ring: newRing(ringSize),
	}
	aud.player = ctx.NewPlayer(aud.ring)
	aud.player.Play()

	return aud, nil
}

// SetSample implements the apu.Sink interface.
func (aud *Audio) SetSample(v float32) {
	aud.ring.write(v)
}

// Clear discards buffered audio. Used when rewinding so that the sound of
// the future is not heard.
func (aud *Audio) Clear() {
	aud.ring.clear()
}

// Close the audio player.
func (aud *Audio) Close() error {
	if err := aud.player.Close(); err != nil {
		return curated.Errorf(AudioError, err)
	}
	return nil
}
