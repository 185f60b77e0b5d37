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

package apu_test

import (
	"testing"

	"github.com/gopher2a03/gopher2a03/hardware/apu"
	"github.com/gopher2a03/gopher2a03/hardware/serializer"
	"github.com/gopher2a03/gopher2a03/test"
)

type mockIRQ struct {
	count int
}

func (m *mockIRQ) SignalIRQ() {
	m.count++
}

type mockMem struct {
	reads []uint16
}

func (m *mockMem) Read(address uint16) uint8 {
	m.reads = append(m.reads, address)
	return 0x55
}

type mockSink struct {
	samples []float32
}

func (m *mockSink) SetSample(sample float32) {
	m.samples = append(m.samples, sample)
}

func TestLengthCounter(t *testing.T) {
	a := apu.NewAPU(nil, nil, nil)

	// length counter is not loaded while the channel is disabled
	a.WriteRegister(0x4003, 0x08)
	test.ExpectEquality(t, a.ReadRegister(0x4015), 0x00)

	a.WriteRegister(0x4015, 0x0f)
	a.WriteRegister(0x4003, 0x08)
	a.WriteRegister(0x4007, 0x08)
	a.WriteRegister(0x400b, 0x08)
	a.WriteRegister(0x400f, 0x08)
	test.ExpectEquality(t, a.ReadRegister(0x4015), 0x0f)

	// disabling a channel clears its length counter
	a.WriteRegister(0x4015, 0x0e)
	test.ExpectEquality(t, a.ReadRegister(0x4015), 0x0e)

	// length index 3 has a value of 2. the write to $4017 in five step mode
	// clocks the half frame immediately
	a.WriteRegister(0x4015, 0x01)
	a.WriteRegister(0x4003, 0x18)
	a.WriteRegister(0x4017, 0x80)
	test.ExpectEquality(t, a.ReadRegister(0x4015), 0x01)
	a.Step(14912)
	test.ExpectEquality(t, a.ReadRegister(0x4015), 0x01)
	a.Step(1)
	test.ExpectEquality(t, a.ReadRegister(0x4015), 0x00)
}

func TestFrameIRQ(t *testing.T) {
	irq := &mockIRQ{}
	a := apu.NewAPU(nil, irq, nil)

	a.Step(29828)
	test.ExpectEquality(t, irq.count, 0)
	a.Step(1)
	test.ExpectEquality(t, irq.count, 1)

	// the interrupt line stays asserted until the status is read
	a.Step(10)
	test.ExpectEquality(t, irq.count, 2)
	test.ExpectEquality(t, a.ReadRegister(0x4015), 0x40)
	test.ExpectEquality(t, a.ReadRegister(0x4015), 0x00)
	a.Step(10)
	test.ExpectEquality(t, irq.count, 2)

	// inhibit flag
	a.WriteRegister(0x4017, 0x40)
	a.Step(40000)
	test.ExpectEquality(t, irq.count, 2)

	// five step mode never raises the interrupt
	a.WriteRegister(0x4017, 0x80)
	a.Step(80000)
	test.ExpectEquality(t, irq.count, 2)

	// setting the inhibit flag clears a pending interrupt
	a.WriteRegister(0x4017, 0x00)
	a.Step(29829)
	test.ExpectEquality(t, irq.count, 3)
	a.WriteRegister(0x4017, 0x40)
	test.ExpectEquality(t, a.ReadRegister(0x4015), 0x00)
}

func TestDMC(t *testing.T) {
	irq := &mockIRQ{}
	mem := &mockMem{}
	a := apu.NewAPU(nil, irq, mem)
	a.WriteRegister(0x4017, 0x40)

	// IRQ enabled, fastest rate, sample at $c000 one byte long
	a.WriteRegister(0x4010, 0x8f)
	a.WriteRegister(0x4012, 0x00)
	a.WriteRegister(0x4013, 0x00)
	a.WriteRegister(0x4015, 0x10)
	test.ExpectEquality(t, a.ReadRegister(0x4015), 0x10)

	a.Step(1)
	test.DemandEquality(t, len(mem.reads), 1)
	test.ExpectEquality(t, mem.reads[0], 0xc000)
	test.ExpectEquality(t, a.ReadRegister(0x4015), 0x80)
	test.ExpectEquality(t, irq.count, 1)

	// writing to the status register clears the DMC interrupt
	a.WriteRegister(0x4015, 0x00)
	test.ExpectEquality(t, a.ReadRegister(0x4015), 0x00)
}

func TestDMCAddressWrap(t *testing.T) {
	mem := &mockMem{}
	a := apu.NewAPU(nil, nil, mem)

	// sample at $ffc0, 65 bytes long
	a.WriteRegister(0x4010, 0x0f)
	a.WriteRegister(0x4012, 0xff)
	a.WriteRegister(0x4013, 0x04)
	a.WriteRegister(0x4015, 0x10)
	a.Step(40000)

	test.DemandEquality(t, len(mem.reads), 65)
	test.ExpectEquality(t, mem.reads[0], 0xffc0)
	test.ExpectEquality(t, mem.reads[63], 0xffff)
	test.ExpectEquality(t, mem.reads[64], 0x8000)
	test.ExpectEquality(t, a.ReadRegister(0x4015)&0x10, 0x00)
}

func TestSampleRate(t *testing.T) {
	sink := &mockSink{}
	a := apu.NewAPU(sink, nil, nil)
	a.Step(apu.CPUClock)
	test.ExpectEquality(t, len(sink.samples), apu.SampleRate)

	// the triangle channel outputs a constant level when it is silent. the
	// filter removes it
	n := len(sink.samples)
	test.ExpectApproximate(t, sink.samples[n-1], 0.0, 0.001)
}

func TestPulseOutput(t *testing.T) {
	sink := &mockSink{}
	a := apu.NewAPU(sink, nil, nil)

	// duty 50%, halted length counter, constant volume 15
	a.WriteRegister(0x4015, 0x01)
	a.WriteRegister(0x4000, 0xbf)
	a.WriteRegister(0x4002, 0xfd)
	a.WriteRegister(0x4003, 0x00)
	a.Step(apu.CPUClock / 60)

	var lo, hi float32
	for _, s := range sink.samples {
		test.ExpectApproximate(t, s, 0.0, 1.0)
		lo = min(lo, s)
		hi = max(hi, s)
	}
	if hi-lo < 0.05 {
		t.Errorf("pulse channel not audible: range %f", hi-lo)
	}

	// a period below eight mutes the channel
	sink.samples = sink.samples[:0]
	a.WriteRegister(0x4002, 0x04)
	a.Step(apu.CPUClock / 10)
	n := len(sink.samples)
	test.ExpectApproximate(t, sink.samples[n-1], 0.0, 0.001)
}

func TestSerialize(t *testing.T) {
	a := apu.NewAPU(nil, nil, nil)
	a.WriteRegister(0x4015, 0x1f)
	a.WriteRegister(0x4000, 0x3f)
	a.WriteRegister(0x4003, 0x08)
	a.WriteRegister(0x4011, 0x40)
	a.Step(1000)

	s := serializer.NewSaver()
	a.Serialize(s)
	snapshot := s.Data()

	a.Reset()
	test.ExpectEquality(t, a.ReadRegister(0x4015), 0x00)

	r := serializer.NewRestorer(snapshot)
	a.Serialize(r)
	test.DemandSuccess(t, r.Err())
	test.ExpectEquality(t, r.Remaining(), 0)
	test.ExpectEquality(t, a.ReadRegister(0x4015), 0x01)

	s = serializer.NewSaver()
	a.Serialize(s)
	test.ExpectEquality(t, string(s.Data()), string(snapshot))
}
