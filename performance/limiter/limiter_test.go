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

package limiter_test

import (
	"testing"
	"time"

	"github.com/gopher2a03/gopher2a03/performance/limiter"
	"github.com/gopher2a03/gopher2a03/test"
)

// fakeClock advances only when Sleep() is called or when the test moves it
// forward explicitly
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func TestWait(t *testing.T) {
	clk := &fakeClock{now: time.Unix(1000, 0)}
	lmtr := limiter.NewLimiter(clk, 50)
	test.ExpectEquality(t, lmtr.Period(), 20*time.Millisecond)

	// first call starts the period
	lmtr.Wait()
	test.ExpectEquality(t, len(clk.slept), 0)

	// frame took 5ms so the limiter sleeps for the remaining 15ms
	clk.now = clk.now.Add(5 * time.Millisecond)
	lmtr.Wait()
	test.DemandEquality(t, len(clk.slept), 1)
	test.ExpectEquality(t, clk.slept[0], 15*time.Millisecond)

	// frame took longer than the period but not by more than one frame
	clk.now = clk.now.Add(25 * time.Millisecond)
	lmtr.Wait()
	test.ExpectEquality(t, len(clk.slept), 1)

	// the next frame is shortened to make up the difference
	clk.now = clk.now.Add(5 * time.Millisecond)
	lmtr.Wait()
	test.DemandEquality(t, len(clk.slept), 2)
	test.ExpectEquality(t, clk.slept[1], 10*time.Millisecond)

	// a long stall causes the limiter to resynchronise
	clk.now = clk.now.Add(time.Second)
	lmtr.Wait()
	clk.now = clk.now.Add(5 * time.Millisecond)
	lmtr.Wait()
	test.DemandEquality(t, len(clk.slept), 3)
	test.ExpectEquality(t, clk.slept[2], 15*time.Millisecond)
}

func TestInactive(t *testing.T) {
	clk := &fakeClock{now: time.Unix(1000, 0)}
	lmtr := limiter.NewLimiter(clk, 60)
	lmtr.Active = false
	for range 10 {
		lmtr.Wait()
		clk.now = clk.now.Add(time.Millisecond)
	}
	test.ExpectEquality(t, len(clk.slept), 0)

	lmtr.Active = true
	lmtr.SetLimit(0)
	for range 10 {
		lmtr.Wait()
	}
	test.ExpectEquality(t, len(clk.slept), 0)
}

func TestMeasured(t *testing.T) {
	clk := &fakeClock{now: time.Unix(1000, 0)}
	lmtr := limiter.NewLimiter(clk, 50)
	lmtr.Active = false
	for range 51 {
		lmtr.Wait()
		clk.now = clk.now.Add(20 * time.Millisecond)
	}
	test.ExpectApproximate(t, lmtr.Measured.Load().(float32), 50.0, 0.5)
}
