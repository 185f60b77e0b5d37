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

// Package modalflag handles command lines that are made up of modes, with each
// mode having its own set of flags. For example:
//
//	gopher2a03 HEADLESS -frames 600 -wav out.wav game.nes
//
// The Modes type is initialised with the program arguments. Sub-modes and
// flags are added and Parse() is called. After parsing, Mode() returns the
// selected sub-mode and NewMode() prepares for the flags of that mode.
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADLESS")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		...
//	}
//
// The first sub-mode in the list is the default and is selected if the next
// argument is not one of the listed sub-modes.
package modalflag
