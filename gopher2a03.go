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
	"io"
	"os"
	"os/signal"

	"github.com/gopher2a03/gopher2a03/cartridgeloader"
	"github.com/gopher2a03/gopher2a03/gui/ebitengui"
	"github.com/gopher2a03/gopher2a03/hardware"
	"github.com/gopher2a03/gopher2a03/hardware/apu"
	"github.com/gopher2a03/gopher2a03/hardware/memory/cartridge"
	"github.com/gopher2a03/gopher2a03/hardware/memory/memorymap"
	"github.com/gopher2a03/gopher2a03/logger"
	"github.com/gopher2a03/gopher2a03/modalflag"
	"github.com/gopher2a03/gopher2a03/performance"
	"github.com/gopher2a03/gopher2a03/rewind"
	"github.com/gopher2a03/gopher2a03/savestate"
	"github.com/gopher2a03/gopher2a03/statsview"
	"github.com/gopher2a03/gopher2a03/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch runs the mode selected by the arguments. returns the exit value for
// the program.
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS", "PERFORMANCE", "INFO", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "HEADLESS":
		err = headless(ctx, md)

	case "PERFORMANCE":
		err = perform(md)

	case "INFO":
		err = info(md)

	case "VERSION":
		fmt.Fprintln(output, version.Version())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// cartridgeArg returns a loader for the ROM named on the command line. The
// ROM is not loaded.
func cartridgeArg(md *modalflag.Modes) (*cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("a ROM file is required")
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	cl := cartridgeloader.NewLoader(md.GetArg(0))
	return &cl, nil
}

// newNES creates the NES and inserts the cartridge, loading it first if
// necessary. Save RAM is loaded from the store if the cartridge has battery
// backed RAM.
func newNES(env hardware.Environment, cl *cartridgeloader.Loader, store *savestate.Store) (*hardware.NES, cartridge.Header, error) {
	nes, err := hardware.NewNES(env)
	if err != nil {
		return nil, cartridge.Header{}, err
	}

	if !cl.HasLoaded() {
		if err := cl.Load(); err != nil {
			return nil, cartridge.Header{}, err
		}
	}

	hdr, err := nes.LoadROM(cl.Data)
	if err != nil {
		return nil, cartridge.Header{}, err
	}

	if hdr.HasSRAM && store != nil {
		data, err := store.LoadRAM(nes.ROMHash())
		if err == nil {
			nes.Cart.LoadSaveRAM(data)
		} else {
			logger.Log(logger.Allow, "gopher2a03", err)
		}
	}

	return nes, hdr, nil
}

// saveRAM writes the save RAM of the cartridge to the store.
func saveRAM(nes *hardware.NES, store *savestate.Store) error {
	if store == nil || !nes.Cart.HasSaveRAM() {
		return nil
	}
	return store.SaveRAM(nes.ROMHash(), nes.Cart.SaveRAM())
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddInt("scale", 3, "window scaling")
	noAudio := md.AddBool("noaudio", false, "disable audio")
	turbo := md.AddBool("turbo", false, "start in turbo mode")
	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	}

	if *stats && statsview.Available() {
		statsview.Launch(md.Output)
	}

	cl, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	env := hardware.Environment{}

	env.Prefs, err = hardware.NewPreferences()
	if err != nil {
		return err
	}
	env.RewindPrefs, err = rewind.NewPreferences()
	if err != nil {
		return err
	}

	var aud *ebitengui.Audio
	if !*noAudio {
		aud, err = ebitengui.NewAudio()
		if err != nil {
			logger.Log(logger.Allow, "gopher2a03", err)
		} else {
			env.Audio = aud
			defer aud.Close()
		}
	}

	store, err := savestate.NewDefaultStore()
	if err != nil {
		return err
	}
	defer store.Close()

	nes, _, err := newNES(env, cl, store)
	if err != nil {
		return err
	}
	nes.SetTurbo(*turbo || nes.Prefs.Turbo.Get().(bool))

	win := ebitengui.NewWindow(nes, ebitengui.Options{
		Title: fmt.Sprintf("%s - %s", version.ApplicationName, cl.ShortName()),
		Name:  cl.ShortName(),
		Scale: *scale,
		Store: store,
		Audio: aud,
	})

	err = win.Run()
	if serr := saveRAM(nes, store); serr != nil && err == nil {
		err = serr
	}
	return err
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddDuration("duration", performance.DefaultDuration, "run duration")
	profile := md.AddString("profile", "none", "create profile: none, cpu, mem, block")
	uncapped := md.AddBool("uncapped", true, "run without the frame limiter")
	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	}

	if *stats && statsview.Available() {
		statsview.Launch(md.Output)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	cl, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	prefs, err := hardware.NewPreferences()
	if err != nil {
		return err
	}

	nes, _, err := newNES(hardware.Environment{Prefs: prefs}, cl, nil)
	if err != nil {
		return err
	}

	_, err = performance.Check(md.Output, nes, prf, ".", *uncapped, *duration)
	return err
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	memmap := md.AddBool("memmap", false, "print the CPU memory map")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cl, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	if err := cl.Load(); err != nil {
		return err
	}

	hdr, err := cartridge.ParseHeader(cl.Data)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s\n", cl.Name)
	fmt.Fprintf(md.Output, "sha1: %s\n", cl.Hash)
	fmt.Fprintf(md.Output, "%s\n", hdr)
	if !cartridge.IsSupported(hdr.MapperID) {
		fmt.Fprintf(md.Output, "mapper %d is not supported (NROM will be used)\n", hdr.MapperID)
	}
	if hdr.HasSRAM {
		fmt.Fprintf(md.Output, "battery backed save RAM\n")
	}
	if hdr.HasTrainer {
		fmt.Fprintf(md.Output, "trainer (ignored)\n")
	}
	if *memmap {
		fmt.Fprintf(md.Output, "\n%s", memorymap.Summary())
	}

	return nil
}

// sinks sends audio samples to more than one apu.Sink.
type sinks []apu.Sink

// SetSample implements the apu.Sink interface.
func (s sinks) SetSample(v float32) {
	for _, k := range s {
		k.SetSample(v)
	}
}
