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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/hardware"
)

// error patterns
const (
	PerformanceError = "performance: %v"
)

// DefaultDuration is a reasonable duration for a performance check.
const DefaultDuration = 5 * time.Second

// Result of a performance check.
type Result struct {
	Frames   uint64
	Duration time.Duration
	FPS      float64
	Accuracy float64
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%",
		r.FPS, r.Frames, r.Duration.Seconds(), r.Accuracy)
}

// Check the performance of the emulator. A cartridge must already be loaded.
//
// Emulation runs for the duration and optionally creates a profile as
// defined by the Profile argument. In uncapped mode the frame limiter is
// ignored and the emulator runs as fast as it can.
func Check(output io.Writer, nes *hardware.NES, p Profile, profileDir string, uncapped bool, duration time.Duration) (Result, error) {
	if !nes.Cart.IsLoaded() {
		return Result{}, curated.Errorf(hardware.NoCartridge)
	}
	if duration <= 0 {
		return Result{}, curated.Errorf(PerformanceError, "duration must be positive")
	}

	turbo := nes.Turbo()
	nes.SetTurbo(uncapped)
	defer nes.SetTurbo(turbo)

	var res Result

	runner := func() error {
		startFrame := nes.Frame()
		start := time.Now()

		for time.Since(start) < duration {
			if err := nes.ExecuteFrame(false); err != nil {
				return err
			}
		}

		res.Duration = time.Since(start)
		res.Frames = nes.Frame() - startFrame
		return nil
	}

	if err := RunProfiler(p, profileDir, runner); err != nil {
		return Result{}, curated.Errorf(PerformanceError, err)
	}

	res.FPS, res.Accuracy = CalcFPS(res.Frames, res.Duration.Seconds(), nes.Prefs.FPS.Get().(float64))

	if output != nil {
		_, _ = io.WriteString(output, res.String()+"\n")
	}

	return res, nil
}
