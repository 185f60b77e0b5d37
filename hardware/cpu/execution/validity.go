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

package execution

import (
	"github.com/gopher2a03/gopher2a03/curated"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised")
	}

	if r.Undefined {
		if r.Defn != nil {
			return curated.Errorf("cpu: undocumented opcode (%#02x) has a definition", r.OpCode)
		}
		if r.Cycles-r.InterruptCycles != 2 {
			return curated.Errorf("cpu: undocumented opcode (%#02x) took %d cycles instead of 2", r.OpCode, r.Cycles-r.InterruptCycles)
		}
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: no definition for opcode (%#02x)", r.OpCode)
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && r.PageFault && !r.Defn.IsBranch() {
		return curated.Errorf("cpu: unexpected page fault")
	}

	if r.BranchSuccess && !r.Defn.IsBranch() {
		return curated.Errorf("cpu: branch success for non-branch instruction")
	}

	cycles := r.Cycles - r.InterruptCycles - r.DMACycles

	if r.Defn.IsBranch() {
		if cycles != r.Defn.Cycles && cycles != r.Defn.Cycles+1 && cycles != r.Defn.Cycles+2 {
			return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d, %d or %d)",
				r.Defn.OpCode,
				r.Defn.Operator,
				cycles,
				r.Defn.Cycles,
				r.Defn.Cycles+1,
				r.Defn.Cycles+2)
		}
		if !r.BranchSuccess && cycles != r.Defn.Cycles {
			return curated.Errorf("cpu: failed branch took %d cycles", cycles)
		}
		return nil
	}

	if r.Defn.PageSensitive && r.PageFault {
		if cycles != r.Defn.Cycles+1 {
			return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode,
				r.Defn.Operator,
				cycles,
				r.Defn.Cycles+1)
		}
		return nil
	}

	if cycles != r.Defn.Cycles {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode,
			r.Defn.Operator,
			cycles,
			r.Defn.Cycles)
	}

	return nil
}
