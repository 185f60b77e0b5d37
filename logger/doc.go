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

// Package logger is the central log for the emulator. Log entries are tagged
// with the name of the component making the entry. A repeated entry is not
// stored twice; instead the repeat count of the most recent entry is
// increased.
//
// Logging is gated by a Permission. Use logger.Allow for entries that should
// always be logged. Components that can be run in a speculative context (the
// rewind system, for example) can supply a Permission that disallows logging
// while they are active.
//
// The log is not intended for high-frequency events and holds a maximum of
// 256 entries.
package logger
