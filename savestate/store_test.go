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

package savestate_test

import (
	"bytes"
	"testing"

	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/savestate"
	"github.com/gopher2a03/gopher2a03/test"
	"github.com/spf13/afero"
)

func TestRAM(t *testing.T) {
	fs := afero.NewMemMapFs()
	st, err := savestate.NewStore(fs, "/saves")
	test.DemandSuccess(t, err)

	_, err = st.LoadRAM("game")
	test.ExpectSuccess(t, curated.Is(err, savestate.NoFile))

	ram := []byte{0x01, 0x02, 0x03}
	test.DemandSuccess(t, st.SaveRAM("game", ram))

	// save RAM is not compressed
	raw, err := afero.ReadFile(fs, "/saves/game.sav")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(raw), string(ram))

	d, err := st.LoadRAM("game")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), string(ram))

	// the temporary file has been removed
	ok, err := afero.Exists(fs, "/saves/game.sav.tmp")
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, ok)
}

func TestSlots(t *testing.T) {
	fs := afero.NewMemMapFs()
	st, err := savestate.NewStore(fs, "/saves")
	test.DemandSuccess(t, err)

	state := bytes.Repeat([]byte("G2A03STATE"), 1000)
	test.ExpectFailure(t, st.HasSlot("game", 3))
	test.DemandSuccess(t, st.SaveSlot("game", 3, state))
	test.ExpectSuccess(t, st.HasSlot("game", 3))

	// slots are compressed
	raw, err := afero.ReadFile(fs, "/saves/game.state3.zst")
	test.DemandSuccess(t, err)
	if len(raw) >= len(state) {
		t.Errorf("slot data is not compressed: %d bytes", len(raw))
	}

	d, err := st.LoadSlot("game", 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), string(state))

	_, err = st.LoadSlot("game", 4)
	test.ExpectSuccess(t, curated.Is(err, savestate.NoFile))

	test.ExpectSuccess(t, curated.Is(st.SaveSlot("game", savestate.NumSlots, state), savestate.BadSlot))
	_, err = st.LoadSlot("game", -1)
	test.ExpectSuccess(t, curated.Is(err, savestate.BadSlot))

	// corrupt slot
	test.DemandSuccess(t, afero.WriteFile(fs, "/saves/game.state5.zst", []byte("not zstd"), 0600))
	_, err = st.LoadSlot("game", 5)
	test.ExpectSuccess(t, curated.Is(err, savestate.StoreError))
}

func TestClose(t *testing.T) {
	fs := afero.NewMemMapFs()
	st, err := savestate.NewStore(fs, "/saves")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, st.SaveSlot("game", 0, []byte("state")))

	test.DemandSuccess(t, st.Close())
	test.ExpectSuccess(t, st.Close())

	test.ExpectSuccess(t, curated.Is(st.SaveSlot("game", 0, []byte("state")), savestate.Closed))
	_, err = st.LoadSlot("game", 0)
	test.ExpectSuccess(t, curated.Is(err, savestate.Closed))

	// save RAM does not need the compressor
	test.ExpectSuccess(t, st.SaveRAM("game", []byte{1, 2, 3}))
	d, err := st.LoadRAM("game")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), string([]byte{1, 2, 3}))
}
