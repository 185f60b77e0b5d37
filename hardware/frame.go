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

package hardware

// ExecuteCPUAndPPUFrame runs the CPU, PPU and APU in lockstep until the PPU
// completes a frame. The PPU and APU are stepped by the number of cycles
// taken by each CPU instruction.
func (nes *NES) ExecuteCPUAndPPUFrame() error {
	for {
		cycles, err := nes.CPU.Execute()
		if err != nil {
			return err
		}

		done := nes.PPU.Step(cycles)
		nes.APU.Step(cycles)

		if done {
			return nil
		}
	}
}

// ExecuteFrame runs the emulation for one frame.
//
// Pushed input events are applied first. In the forward direction a frame is
// run and, if the rewind system asks for it, the state at the start of the
// frame is added to the rewind history.
//
// When rewinding, the state at the start of the previous frame is taken from
// the rewind history and that frame is run again. If there is no more
// history the frame is skipped.
//
// In both directions the function waits for the frame limiter unless turbo
// mode is on. The function does nothing if no cartridge is loaded.
func (nes *NES) ExecuteFrame(rewinding bool) error {
	if !nes.Cart.IsLoaded() {
		return nil
	}

	// pushed input is applied in both directions. the buttons are not part
	// of the rewind history so a held button stays held
	if err := nes.Input.Process(); err != nil {
		return err
	}

	if rewinding {
		snapshot, ok := nes.Rewind.Rewind()
		if !ok {
			return nil
		}
		if err := nes.restore(snapshot); err != nil {
			return err
		}
		if err := nes.ExecuteCPUAndPPUFrame(); err != nil {
			return err
		}
		nes.finaliseFrame()
		nes.pace()
		return nil
	}

	var snapshot []byte
	due := nes.Rewind.Due()
	if due {
		snapshot = nes.snapshot()
	}

	if err := nes.ExecuteCPUAndPPUFrame(); err != nil {
		return err
	}
	nes.finaliseFrame()

	if due {
		nes.Rewind.Capture(snapshot)
	}

	nes.pace()

	return nil
}

func (nes *NES) finaliseFrame() {
	copy(nes.frameBuffer, nes.PPU.FrameBuffer())
}

func (nes *NES) pace() {
	if !nes.turbo {
		nes.Limiter.Wait()
	}
}
