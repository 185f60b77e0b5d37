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

package limiter

import (
	"sync/atomic"
	"time"
)

// Limiter paces calls to Wait() to a fixed rate.
type Limiter struct {
	clock Clock

	// whether Wait() should sleep at all
	Active bool

	period time.Duration

	// the time at which the current frame period ends. the zero value means
	// that the limiter has not started
	deadline time.Time

	// the measured FPS is the number of frames divided by the elapsed time
	// since the previous measurement. measurements are made once per second
	measureTime time.Time
	measureCt   int

	// Measured is stored as a float32. it is read by the GUI goroutine
	Measured atomic.Value
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// A nil Clock is replaced by RealClock.
func NewLimiter(clock Clock, fps float32) *Limiter {
	if clock == nil {
		clock = RealClock{}
	}
	lmtr := &Limiter{
		clock:  clock,
		Active: true,
	}
	lmtr.Measured.Store(float32(0.0))
	lmtr.SetLimit(fps)
	return lmtr
}

// SetLimit changes the number of frames per second. A value of zero or less
// disables the limiter.
func (lmtr *Limiter) SetLimit(fps float32) {
	if fps <= 0.0 {
		lmtr.period = 0
	} else {
		lmtr.period = time.Duration(float64(time.Second) / float64(fps))
	}
	lmtr.deadline = time.Time{}
	lmtr.measureCt = 0
	lmtr.measureTime = time.Time{}
}

// Period returns the duration of one frame.
func (lmtr *Limiter) Period() time.Duration {
	return lmtr.period
}

// Wait sleeps until the end of the current frame period.
func (lmtr *Limiter) Wait() {
	now := lmtr.clock.Now()
	lmtr.measure(now)

	if !lmtr.Active || lmtr.period == 0 {
		lmtr.deadline = time.Time{}
		return
	}

	if lmtr.deadline.IsZero() {
		lmtr.deadline = now.Add(lmtr.period)
		return
	}

	if now.Before(lmtr.deadline) {
		lmtr.clock.Sleep(lmtr.deadline.Sub(now))
		lmtr.deadline = lmtr.deadline.Add(lmtr.period)
		return
	}

	// running late. resynchronise if more than a frame behind
	lmtr.deadline = lmtr.deadline.Add(lmtr.period)
	if now.After(lmtr.deadline) {
		lmtr.deadline = now.Add(lmtr.period)
	}
}

func (lmtr *Limiter) measure(now time.Time) {
	if lmtr.measureTime.IsZero() {
		lmtr.measureTime = now
		return
	}

	lmtr.measureCt++
	d := now.Sub(lmtr.measureTime)
	if d >= time.Second {
		lmtr.Measured.Store(float32(float64(lmtr.measureCt) / d.Seconds()))
		lmtr.measureTime = now
		lmtr.measureCt = 0
	}
}
