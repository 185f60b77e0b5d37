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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/gopher2a03/gopher2a03/digest"
	"github.com/gopher2a03/gopher2a03/hardware"
	"github.com/gopher2a03/gopher2a03/logger"
	"github.com/gopher2a03/gopher2a03/macro"
	"github.com/gopher2a03/gopher2a03/modalflag"
	"github.com/gopher2a03/gopher2a03/screenshot"
	"github.com/gopher2a03/gopher2a03/wavwriter"
)

// headless runs the emulation without a window. The emulation runs for a
// fixed number of frames or, if a macro is given, for as long as the macro
// runs. Default preferences are used so that results are repeatable.
func headless(ctx context.Context, md *modalflag.Modes) (rerr error) {
	md.NewMode()

	frames := md.AddInt("frames", 600, "number of frames to run (ignored if -macro is used)")
	wav := md.AddString("wav", "", "record audio to wav file")
	shot := md.AddString("screenshot", "", "save final frame to png file")
	scale := md.AddInt("scale", 1, "screenshot scaling")
	dig := md.AddBool("digest", false, "print video and audio digests")
	mcr := md.AddString("macro", "", "lua macro to run")
	viz := md.AddString("memviz", "", "write graphviz dump of the CPU registers and controllers to file")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	}

	cl, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	var audio sinks

	var ww *wavwriter.WavWriter
	if *wav != "" {
		ww = wavwriter.NewWavWriter(*wav)
		audio = append(audio, ww)
	}

	var audioDigest *digest.Audio
	var videoDigest *digest.Video
	if *dig {
		audioDigest = digest.NewAudio()
		videoDigest = digest.NewVideo()
		audio = append(audio, audioDigest)
	}

	env := hardware.Environment{}
	if len(audio) > 0 {
		env.Audio = audio
	}

	nes, _, err := newNES(env, cl, nil)
	if err != nil {
		return err
	}

	// headless emulation runs as quickly as possible
	nes.SetTurbo(true)

	// the audio recorded so far is written however the emulation ends
	if ww != nil {
		defer func() {
			if err := ww.End(); err != nil && rerr == nil {
				rerr = err
			}
		}()
	}

	if *mcr != "" {
		m := macro.NewMacro(nes)
		defer m.Close()
		if err := m.RunFile(ctx, *mcr); err != nil {
			return err
		}
	} else {
		for range *frames {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := nes.ExecuteFrame(false); err != nil {
				return err
			}
			if videoDigest != nil {
				videoDigest.AddFrame(nes.FrameBuffer())
			}
		}
	}

	if *shot != "" {
		if err := screenshot.Save(*shot, nes.FrameBuffer(), *scale); err != nil {
			return err
		}
	}

	if *dig {
		// a macro controls the frames so the video digest is of the final
		// frame only
		if videoDigest.Frames() == 0 {
			videoDigest.AddFrame(nes.FrameBuffer())
		}
		fmt.Fprintf(md.Output, "video: %s\n", videoDigest.Hash())
		fmt.Fprintf(md.Output, "audio: %s\n", audioDigest.Hash())
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		memviz.Map(f, &nes.CPU.PC, &nes.CPU.A, &nes.CPU.X, &nes.CPU.Y, &nes.CPU.SP, &nes.CPU.Status, nes.Controllers)
		if err := f.Close(); err != nil {
			return err
		}
	}

	logger.Logf(logger.Allow, "headless", "finished: %s", nes.Status())
	fmt.Fprintf(md.Output, "%d frames\n", nes.Frame())

	return nil
}
