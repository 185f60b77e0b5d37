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

// Package ppu implements the picture processing unit of the NES.
//
// The PPU runs three dots for every CPU cycle. A frame is 262 lines of 341
// dots. Lines 0 to 239 are visible, line 241 starts the vertical blank and
// line 261 is the pre-render line.
//
// Rendering is done a line at a time. When a visible line reaches dot 256 the
// background and sprites for the entire line are drawn into the frame buffer.
// Changes to the PPU registers in the middle of a line are not visible until
// the next line, which is good enough for the majority of games.
//
// The scroll position is kept in the internal v and t registers in the way
// that the real hardware does it:
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
//
// Fine X scroll is held separately in the x register.
//
// Pattern tables are read from the cartridge. Nametable memory is the 2KB
// inside the console and is arranged according to the cartridge's current
// mirroring.
package ppu
