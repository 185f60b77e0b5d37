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

package macro

import (
	"context"
	"fmt"

	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/digest"
	"github.com/gopher2a03/gopher2a03/hardware"
	"github.com/gopher2a03/gopher2a03/hardware/input"
	"github.com/gopher2a03/gopher2a03/logger"
	lua "github.com/yuin/gopher-lua"
)

// error patterns
const (
	MacroError = "macro: %v"
)

// Macro runs Lua scripts against an instance of the NES.
type Macro struct {
	nes *hardware.NES
	L   *lua.LState

	// the name of the file or chunk being run. used for logging
	name string
}

// NewMacro is the preferred method of initialisation for the Macro type.
// Close() should be called when the Macro is no longer required.
func NewMacro(nes *hardware.NES) *Macro {
	mcr := &Macro{
		nes: nes,
		L:   lua.NewState(),
	}

	funcs := map[string]lua.LGFunction{
		"press":     mcr.press,
		"release":   mcr.release,
		"frames":    mcr.frames,
		"rewind":    mcr.rewind,
		"turbo":     mcr.turbo,
		"savestate": mcr.savestate,
		"loadstate": mcr.loadstate,
		"digest":    mcr.digest,
		"frame":     mcr.frame,
		"ram":       mcr.ram,
		"bank":      mcr.bank,
		"log":       mcr.log,
	}
	for n, f := range funcs {
		mcr.L.SetGlobal(n, mcr.L.NewFunction(f))
	}

	return mcr
}

// Close the Lua state.
func (mcr *Macro) Close() {
	mcr.L.Close()
}

// RunFile runs the Lua script in the named file.
func (mcr *Macro) RunFile(ctx context.Context, filename string) error {
	mcr.name = filename
	mcr.L.SetContext(ctx)
	if err := mcr.L.DoFile(filename); err != nil {
		return curated.Errorf(MacroError, err)
	}
	return nil
}

// RunString runs the Lua script in the string.
func (mcr *Macro) RunString(ctx context.Context, script string) error {
	mcr.name = "string"
	mcr.L.SetContext(ctx)
	if err := mcr.L.DoString(script); err != nil {
		return curated.Errorf(MacroError, err)
	}
	return nil
}

// raise a Lua error if err is not nil
func (mcr *Macro) check(L *lua.LState, err error) {
	if err != nil {
		L.RaiseError("%v", err)
	}
}

func (mcr *Macro) button(L *lua.LState, pressed bool) int {
	player := L.CheckInt(1)
	name := L.CheckString(2)

	b, ok := input.ButtonFromString(name)
	if !ok {
		L.ArgError(2, fmt.Sprintf("unknown button: %s", name))
		return 0
	}

	mcr.check(L, mcr.nes.SetButton(player-1, b, pressed))
	return 0
}

func (mcr *Macro) press(L *lua.LState) int {
	return mcr.button(L, true)
}

func (mcr *Macro) release(L *lua.LState) int {
	return mcr.button(L, false)
}

func (mcr *Macro) run(L *lua.LState, rewinding bool) int {
	n := L.OptInt(1, 1)
	if n < 0 {
		L.ArgError(1, "number of frames cannot be negative")
		return 0
	}

	for range n {
		// check for context cancellation between frames
		if ctx := L.Context(); ctx != nil {
			mcr.check(L, ctx.Err())
		}
		mcr.check(L, mcr.nes.ExecuteFrame(rewinding))
	}
	return 0
}

func (mcr *Macro) frames(L *lua.LState) int {
	return mcr.run(L, false)
}

func (mcr *Macro) rewind(L *lua.LState) int {
	return mcr.run(L, true)
}

func (mcr *Macro) turbo(L *lua.LState) int {
	mcr.nes.SetTurbo(L.CheckBool(1))
	return 0
}

func (mcr *Macro) savestate(L *lua.LState) int {
	mcr.check(L, mcr.nes.SaveState())
	return 0
}

func (mcr *Macro) loadstate(L *lua.LState) int {
	mcr.check(L, mcr.nes.LoadState())
	return 0
}

func (mcr *Macro) digest(L *lua.LState) int {
	L.Push(lua.LString(digest.Frame(mcr.nes.FrameBuffer())))
	return 1
}

func (mcr *Macro) frame(L *lua.LState) int {
	L.Push(lua.LNumber(mcr.nes.Frame()))
	return 1
}

func (mcr *Macro) ram(L *lua.LState) int {
	address := L.CheckInt(1)
	if address < 0 || address > 0xffff {
		L.ArgError(1, "address out of range")
		return 0
	}
	L.Push(lua.LNumber(mcr.nes.Peek(uint16(address))))
	return 1
}

func (mcr *Macro) bank(L *lua.LState) int {
	address := L.CheckInt(1)
	if address < 0 || address > 0xffff {
		L.ArgError(1, "address out of range")
		return 0
	}
	L.Push(lua.LNumber(mcr.nes.Cart.PrgBankIndex16K(uint16(address))))
	return 1
}

func (mcr *Macro) log(L *lua.LState) int {
	logger.Logf(logger.Allow, "macro", "%s: %s", mcr.name, L.CheckString(1))
	return 0
}
