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

package apu

// lookup tables for the non-linear mixer
var pulseTable [31]float32
var tndTable [203]float32

func init() {
	for i := 1; i < len(pulseTable); i++ {
		pulseTable[i] = 95.52 / (8128.0/float32(i) + 100.0)
	}
	for i := 1; i < len(tndTable); i++ {
		tndTable[i] = 163.67 / (24329.0/float32(i) + 100.0)
	}
}

// mix returns a value between 0.0 and 1.0.
func (apu *APU) mix() float32 {
	p := apu.pulse1.output() + apu.pulse2.output()
	tnd := 3*int(apu.triangle.output()) + 2*int(apu.noise.output()) + int(apu.dmc.output())
	return pulseTable[p] + tndTable[tnd]
}

// first order high pass filter. removes the DC offset from the mixer output
type highPass struct {
	alpha   float64
	prevIn  float64
	prevOut float64
}

func newHighPass(sampleRate float64, cutoff float64) highPass {
	rc := 1.0 / (2.0 * 3.141592653589793 * cutoff)
	dt := 1.0 / sampleRate
	return highPass{alpha: rc / (rc + dt)}
}

func (f *highPass) filter(in float32) float32 {
	out := f.alpha * (f.prevOut + float64(in) - f.prevIn)
	f.prevIn = float64(in)
	f.prevOut = out
	if out > 1.0 {
		out = 1.0
	} else if out < -1.0 {
		out = -1.0
	}
	return float32(out)
}
