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

package rewind_test

import (
	"path/filepath"
	"testing"

	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/prefs"
	"github.com/gopher2a03/gopher2a03/rewind"
	"github.com/gopher2a03/gopher2a03/test"
)

func newPrefs(t *testing.T) *rewind.Preferences {
	t.Helper()
	p, err := rewind.NewPreferencesFromFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	return p
}

func TestRing(t *testing.T) {
	p := newPrefs(t)
	test.DemandSuccess(t, p.MaxEntries.Set(4))

	r := rewind.NewRewind(p)
	test.ExpectEquality(t, r.Cap(), 4)
	test.ExpectEquality(t, r.Len(), 0)

	for i := range 6 {
		r.Capture([]byte{byte(i)})
	}
	test.ExpectEquality(t, r.Len(), 4)

	// entries 0 and 1 have been forgotten. the newest entry (5) is dropped and
	// the one before it is returned
	for _, expected := range []byte{4, 3, 2} {
		s, ok := r.Rewind()
		test.DemandSuccess(t, ok)
		test.ExpectEquality(t, s[0], expected)
	}

	_, ok := r.Rewind()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, r.Len(), 1)

	// capture continues from the rewound position
	r.Capture([]byte{9})
	s, ok := r.Rewind()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, s[0], 2)
}

func TestDue(t *testing.T) {
	p := newPrefs(t)
	test.DemandSuccess(t, p.Freq.Set(3))
	r := rewind.NewRewind(p)

	var due []bool
	for range 7 {
		due = append(due, r.Due())
	}
	expected := []bool{true, false, false, true, false, false, true}
	for i := range expected {
		test.ExpectEquality(t, due[i], expected[i], i)
	}
}

func TestReset(t *testing.T) {
	r := rewind.NewRewind(nil)
	r.Capture([]byte{0})
	r.Capture([]byte{1})
	r.Reset()
	test.ExpectEquality(t, r.Len(), 0)
	_, ok := r.Rewind()
	test.ExpectFailure(t, ok)

	// changing the preference discards the history
	r.Capture([]byte{0})
	test.DemandSuccess(t, r.Prefs.MaxEntries.Set(10))
	test.ExpectEquality(t, r.Len(), 0)
	test.ExpectEquality(t, r.Cap(), 10)
}

func TestPreferences(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	p, err := rewind.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.MaxEntries.Get().(int), 600)

	err = p.MaxEntries.Set(1)
	test.ExpectSuccess(t, curated.Is(err, rewind.BadPreference))
	test.ExpectEquality(t, p.MaxEntries.Get().(int), 600)

	test.DemandSuccess(t, p.MaxEntries.Set(25))
	test.DemandSuccess(t, p.Save())

	q, err := rewind.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.MaxEntries.Get().(int), 25)
}
