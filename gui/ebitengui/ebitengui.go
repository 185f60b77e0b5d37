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
	"fmt"

	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/hardware"
	"github.com/gopher2a03/gopher2a03/hardware/apu"
	"github.com/gopher2a03/gopher2a03/hardware/ppu"
	"github.com/gopher2a03/gopher2a03/logger"
	"github.com/gopher2a03/gopher2a03/savestate"
	"github.com/gopher2a03/gopher2a03/screenshot"
	"github.com/gopher2a03/gopher2a03/version"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// error patterns
const (
	WindowError = "ebitengui: %v"
)

// the state slot used by the save state hotkeys
const hotkeySlot = 0

// Options for the window. All fields are optional.
type Options struct {
	// window title
	Title string

	// short name of the loaded ROM. used to name screenshots
	Name string

	// window size is the size of the NES screen multiplied by the scale
	Scale int

	// save states are kept in memory only if Store is nil
	Store *savestate.Store

	// the audio player used by the NES. buffered audio is discarded while
	// rewinding
	Audio *Audio
}

// Window implements the ebiten.Game interface.
type Window struct {
	nes  *hardware.NES
	opts Options

	img    *ebiten.Image
	pixels []byte

	// state of the keys bound to controller buttons
	keys map[ebiten.Key]bool

	// the sink given to the APU when the audio is not muted
	sink  apu.Sink
	muted bool
}

// NewWindow is the preferred method of initialisation for the Window type.
func NewWindow(nes *hardware.NES, opts Options) *Window {
	if opts.Scale < 1 {
		opts.Scale = 3
	}
	if opts.Title == "" {
		opts.Title = version.ApplicationName
	}

	win := &Window{
		nes:    nes,
		opts:   opts,
		img:    ebiten.NewImage(ppu.Width, ppu.Height),
		pixels: make([]byte, ppu.Width*ppu.Height*4),
		keys:   make(map[ebiten.Key]bool),
	}
	if opts.Audio != nil {
		win.sink = opts.Audio
	}
	return win
}

// Run opens the window and runs the emulation until the window is closed.
// Must be called from the main goroutine.
func (win *Window) Run() error {
	ebiten.SetWindowTitle(win.opts.Title)
	ebiten.SetWindowSize(ppu.Width*win.opts.Scale, ppu.Height*win.opts.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// the frame limiter paces the emulation
	ebiten.SetVsyncEnabled(false)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(win); err != nil {
		return curated.Errorf(WindowError, err)
	}
	return nil
}

// Update implements the ebiten.Game interface.
func (win *Window) Update() error {
	for _, ev := range keyEvents(win.keys, ebiten.IsKeyPressed) {
		if err := win.nes.Input.PushEvent(ev); err != nil {
			logger.Log(logger.Allow, "ebitengui", err)
		}
	}

	for _, h := range triggered(inpututil.IsKeyJustPressed) {
		win.hotkey(h)
	}

	rewinding := ebiten.IsKeyPressed(rewindKey)
	if rewinding && win.opts.Audio != nil {
		win.opts.Audio.Clear()
	}

	if err := win.nes.ExecuteFrame(rewinding); err != nil {
		return curated.Errorf(WindowError, err)
	}

	return nil
}

func (win *Window) hotkey(h hotkey) {
	var err error

	switch h {
	case hotkeySaveState:
		err = win.saveState()
	case hotkeyLoadState:
		err = win.loadState()
	case hotkeyTurbo:
		win.nes.SetTurbo(!win.nes.Turbo())
		logger.Logf(logger.Allow, "ebitengui", "turbo: %v", win.nes.Turbo())
	case hotkeyScreenshot:
		_, err = screenshot.SaveUnique(win.opts.Name, win.nes.FrameBuffer(), win.opts.Scale)
	case hotkeyReset:
		win.nes.Reset()
	case hotkeyMute:
		win.toggleMute()
		logger.Logf(logger.Allow, "ebitengui", "muted: %v", win.muted)
	}

	if err != nil {
		logger.Log(logger.Allow, "ebitengui", err)
	}
}

// samples are discarded by the APU while muted
func (win *Window) toggleMute() {
	win.muted = !win.muted
	if win.muted {
		win.nes.APU.SetSink(nil)
		if win.opts.Audio != nil {
			win.opts.Audio.Clear()
		}
		return
	}
	win.nes.APU.SetSink(win.sink)
}

func (win *Window) saveState() error {
	if err := win.nes.SaveState(); err != nil {
		return err
	}
	if win.opts.Store != nil {
		return win.opts.Store.SaveSlot(win.nes.ROMHash(), hotkeySlot, win.nes.StateData())
	}
	return nil
}

// the state in memory takes priority over the state on disk
func (win *Window) loadState() error {
	if win.nes.HasState() || win.opts.Store == nil || !win.opts.Store.HasSlot(win.nes.ROMHash(), hotkeySlot) {
		return win.nes.LoadState()
	}

	data, err := win.opts.Store.LoadSlot(win.nes.ROMHash(), hotkeySlot)
	if err != nil {
		return err
	}
	return win.nes.LoadStateData(data)
}

// Draw implements the ebiten.Game interface.
func (win *Window) Draw(screen *ebiten.Image) {
	toRGBA(win.pixels, win.nes.FrameBuffer())
	win.img.WritePixels(win.pixels)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale := min(float64(sw)/ppu.Width, float64(sh)/ppu.Height)

	var opts ebiten.DrawImageOptions
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate((float64(sw)-ppu.Width*scale)/2, (float64(sh)-ppu.Height*scale)/2)
	opts.Filter = ebiten.FilterNearest
	screen.DrawImage(win.img, &opts)

	if win.nes.Frame()%60 == 0 {
		ebiten.SetWindowTitle(fmt.Sprintf("%s (%.1f fps)", win.opts.Title, win.nes.Limiter.Measured.Load().(float32)))
	}
}

// Layout implements the ebiten.Game interface.
func (win *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// convert packed 0x00RRGGBB pixels to RGBA bytes
func toRGBA(dst []byte, pixels []uint32) {
	for i, p := range pixels {
		dst[i*4] = uint8(p >> 16)
		dst[i*4+1] = uint8(p >> 8)
		dst[i*4+2] = uint8(p)
		dst[i*4+3] = 0xff
	}
}
