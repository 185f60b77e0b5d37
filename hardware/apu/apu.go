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

import (
	"fmt"

	"github.com/gopher2a03/gopher2a03/hardware/serializer"
)

// CPUClock is the frequency of the CPU in an NTSC console.
const CPUClock = 1789773

// SampleRate is the frequency at which samples are sent to the Sink.
const SampleRate = 44100

// Sink receives audio samples. Samples are in the range -1.0 to 1.0.
type Sink interface {
	SetSample(sample float32)
}

// IRQSignaller is implemented by the CPU.
type IRQSignaller interface {
	SignalIRQ()
}

// Memory is used by the DMC to fetch sample data.
type Memory interface {
	Read(address uint16) uint8
}

// APU is the audio processing unit.
type APU struct {
	sink Sink
	irq  IRQSignaller
	mem  Memory

	pulse1   pulse
	pulse2   pulse
	triangle triangle
	noise    noise
	dmc      dmc

	frame frameCounter

	// number of CPU cycles since reset
	cycles uint64

	// accumulates SampleRate every CPU cycle. a sample is produced when the
	// value reaches CPUClock
	sampleClock int

	filter highPass
}

// NewAPU is the preferred method of initialisation for the APU type. Any of
// the arguments can be nil.
func NewAPU(sink Sink, irq IRQSignaller, mem Memory) *APU {
	apu := &APU{
		sink: sink,
		irq:  irq,
		mem:  mem,
	}
	apu.Reset()
	return apu
}

// Plumb the DMC's memory and the interrupt line.
func (apu *APU) Plumb(irq IRQSignaller, mem Memory) {
	apu.irq = irq
	apu.mem = mem
}

// SetSink changes where samples are sent. A nil Sink discards samples.
func (apu *APU) SetSink(sink Sink) {
	apu.sink = sink
}

func (apu *APU) String() string {
	return fmt.Sprintf("P1: %s P2: %s T: %s N: %s D: %s", &apu.pulse1, &apu.pulse2, &apu.triangle, &apu.noise, &apu.dmc)
}

// Reset the APU to its power on state.
func (apu *APU) Reset() {
	apu.pulse1 = pulse{onesComplement: true}
	apu.pulse2 = pulse{}
	apu.triangle = triangle{}
	apu.noise = noise{shift: 1}
	apu.dmc = dmc{bufferEmpty: true}
	apu.frame = frameCounter{}
	apu.cycles = 0
	apu.sampleClock = 0
	apu.filter = newHighPass(SampleRate, 90)
}

// Step the APU by the number of CPU cycles.
func (apu *APU) Step(cycles int) {
	for range cycles {
		apu.clock()
	}

	if apu.irq != nil && (apu.frame.irq || apu.dmc.irq) {
		apu.irq.SignalIRQ()
	}
}

func (apu *APU) clock() {
	apu.triangle.clockTimer()
	if apu.cycles&0x01 == 0x01 {
		apu.pulse1.clockTimer()
		apu.pulse2.clockTimer()
		apu.noise.clockTimer()
	}
	apu.dmc.clock(apu.mem)

	quarter, half := apu.frame.clock()
	if quarter {
		apu.clockQuarter()
	}
	if half {
		apu.clockHalf()
	}

	apu.cycles++

	apu.sampleClock += SampleRate
	if apu.sampleClock >= CPUClock {
		apu.sampleClock -= CPUClock
		if apu.sink != nil {
			apu.sink.SetSample(apu.filter.filter(apu.mix()))
		}
	}
}

func (apu *APU) clockQuarter() {
	apu.pulse1.env.clock()
	apu.pulse2.env.clock()
	apu.noise.env.clock()
	apu.triangle.clockLinear()
}

func (apu *APU) clockHalf() {
	apu.pulse1.length.clock()
	apu.pulse2.length.clock()
	apu.triangle.length.clock()
	apu.noise.length.clock()
	apu.pulse1.clockSweep()
	apu.pulse2.clockSweep()
}

// ReadRegister returns the value of the register. Only the status register
// ($4015) can be read.
func (apu *APU) ReadRegister(address uint16) uint8 {
	if address != 0x4015 {
		return 0
	}

	var r uint8
	if apu.pulse1.length.value > 0 {
		r |= 0x01
	}
	if apu.pulse2.length.value > 0 {
		r |= 0x02
	}
	if apu.triangle.length.value > 0 {
		r |= 0x04
	}
	if apu.noise.length.value > 0 {
		r |= 0x08
	}
	if apu.dmc.bytesRemaining > 0 {
		r |= 0x10
	}
	if apu.frame.irq {
		r |= 0x40
	}
	if apu.dmc.irq {
		r |= 0x80
	}

	apu.frame.irq = false

	return r
}

// WriteRegister writes the value to the register.
func (apu *APU) WriteRegister(address uint16, data uint8) {
	switch {
	case address >= 0x4000 && address <= 0x4003:
		apu.pulse1.write(address-0x4000, data)
	case address >= 0x4004 && address <= 0x4007:
		apu.pulse2.write(address-0x4004, data)
	case address >= 0x4008 && address <= 0x400b:
		apu.triangle.write(address-0x4008, data)
	case address >= 0x400c && address <= 0x400f:
		apu.noise.write(address-0x400c, data)
	case address >= 0x4010 && address <= 0x4013:
		apu.dmc.write(address-0x4010, data)
	case address == 0x4015:
		apu.pulse1.setEnabled(data&0x01 == 0x01)
		apu.pulse2.setEnabled(data&0x02 == 0x02)
		apu.triangle.setEnabled(data&0x04 == 0x04)
		apu.noise.setEnabled(data&0x08 == 0x08)
		apu.dmc.setEnabled(data&0x10 == 0x10)
	case address == 0x4017:
		if apu.frame.write(data) {
			apu.clockQuarter()
			apu.clockHalf()
		}
	}
}

// Serialize implements the serializer.Serializable interface.
func (apu *APU) Serialize(s *serializer.Serializer) {
	apu.pulse1.serialize(s)
	apu.pulse2.serialize(s)
	apu.triangle.serialize(s)
	apu.noise.serialize(s)
	apu.dmc.serialize(s)
	apu.frame.serialize(s)
	s.Uint64(&apu.cycles)
	s.IntRange(&apu.sampleClock, 0, CPUClock-1, "sample clock")
	s.Float64(&apu.filter.prevIn)
	s.Float64(&apu.filter.prevOut)
}
