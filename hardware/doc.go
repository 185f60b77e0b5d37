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

// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The NES type is the root of the emulation and contains references to all
// the NES sub-systems. A frame of emulation is run with ExecuteFrame(), which
// interleaves the CPU with the PPU and APU until the PPU completes a frame.
// ExecuteFrame() also takes care of the rewind history and frame pacing.
//
// The state of the machine can be saved to a single in-memory slot with
// SaveState() and restored with LoadState(). The slot can be persisted with
// StateData() and LoadStateData(). Loading a state that does not match the
// loaded cartridge, or that is corrupt in any way, leaves the machine as it
// was.
package hardware
