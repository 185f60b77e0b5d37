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

// Package test contains helper functions for the package tests of the
// emulator. The functions report failure through the testing.T instance and
// are marked as helpers so that failure messages point to the calling line.
//
// The Expect*() functions report an error and allow the test to continue.
// The Demand*() functions stop the test immediately. Use Demand*() when later
// parts of the test depend on the value being correct.
//
// The optional tags argument is printed at the start of a failure message.
// It is useful when the test is in a loop.
package test
