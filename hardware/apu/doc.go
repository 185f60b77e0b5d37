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

// Package apu implements the audio processing unit of the NES.
//
// The APU has five channels: two pulse channels, a triangle channel, a noise
// channel and the delta modulation channel (DMC). The channels are driven by
// timers that are clocked by the CPU and are modulated by the frame counter,
// which produces quarter frame (envelope and linear counter) and half frame
// (length counter and sweep) clocks.
//
// The output of the channels is combined by a non-linear mixer and samples
// are sent to a Sink at SampleRate. The Sink is the only way audio leaves the
// emulation.
//
// The frame counter and the DMC can raise interrupts. The interrupt line is
// level triggered and the CPU is signalled after every step in which an
// interrupt flag is set.
package apu
