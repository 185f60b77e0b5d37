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

package rewind

import (
	"fmt"

	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/logger"
	"github.com/gopher2a03/gopher2a03/prefs"
)

// error patterns
const (
	BadPreference = "rewind: preference value too small (%d, minimum %d)"
)

func checkAtLeast(v prefs.Value, limit int) error {
	n, ok := v.(int)
	if ok && n < limit {
		return curated.Errorf(BadPreference, n, limit)
	}
	return nil
}

// Rewind is a circular history of snapshots.
type Rewind struct {
	Prefs *Preferences

	entries [][]byte

	// index of the oldest entry and the number of entries
	start int
	count int

	// frames remaining before the next snapshot is due
	countdown int
}

// NewRewind is the preferred method of initialisation for the Rewind type. A
// nil Preferences instance is replaced by the default preference values,
// which are not stored on disk.
func NewRewind(p *Preferences) *Rewind {
	if p == nil {
		p = defaultPreferences()
	}

	r := &Rewind{Prefs: p}

	// changing the number of entries discards the history
	p.MaxEntries.SetHookPost(func(_ prefs.Value) error {
		r.Reset()
		return nil
	})

	r.Reset()
	return r
}

func (r *Rewind) String() string {
	return fmt.Sprintf("%d/%d", r.count, len(r.entries))
}

// Reset drops all entries. Should be called whenever a new cartridge is
// loaded.
func (r *Rewind) Reset() {
	n := r.Prefs.MaxEntries.Get().(int)
	if n < minEntries {
		n = minEntries
	}
	r.entries = make([][]byte, n)
	r.start = 0
	r.count = 0
	r.countdown = 0
}

// Due returns true if the frame that is about to be completed should be
// captured. It should be called exactly once per forward frame.
func (r *Rewind) Due() bool {
	if r.countdown > 0 {
		r.countdown--
		return false
	}
	r.countdown = r.Prefs.Freq.Get().(int) - 1
	return true
}

// Capture adds a snapshot to the history, forgetting the oldest snapshot if
// the history is full. The Rewind type takes ownership of the slice.
func (r *Rewind) Capture(snapshot []byte) {
	if r.count == len(r.entries) {
		r.start = (r.start + 1) % len(r.entries)
		r.count--
	}
	r.entries[(r.start+r.count)%len(r.entries)] = snapshot
	r.count++
}

// Rewind removes the most recent snapshot and returns the one before it.
//
// Snapshots are taken at the start of a frame. The most recent snapshot is
// therefore the start of the frame currently on screen and the returned
// snapshot is the start of the frame preceding it.
//
// Returns false if there are fewer than two snapshots in the history. The
// history is unchanged in that case.
func (r *Rewind) Rewind() ([]byte, bool) {
	if r.count < 2 {
		logger.Log(logger.Allow, "rewind", "no more history")
		return nil, false
	}

	r.count--
	r.entries[(r.start+r.count)%len(r.entries)] = nil

	// rewinding restarts the snapshot cadence
	r.countdown = 0

	return r.entries[(r.start+r.count-1)%len(r.entries)], true
}

// Len returns the number of snapshots in the history.
func (r *Rewind) Len() int {
	return r.count
}

// Cap returns the maximum number of snapshots in the history.
func (r *Rewind) Cap() int {
	return len(r.entries)
}
