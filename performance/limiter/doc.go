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

// Package limiter keeps the emulation running at a fixed number of frames per
// second.
//
// A Limiter is created with a Clock and the target rate:
//
//	lmtr := limiter.NewLimiter(limiter.RealClock{}, 60.0988)
//
// The emulation then calls Wait() once per frame:
//
//	for {
//		runFrame()
//		lmtr.Wait()
//	}
//
// Wait() sleeps for whatever remains of the frame period. If the emulation
// falls behind by more than one frame the limiter resynchronises rather than
// running quickly to catch up.
package limiter
