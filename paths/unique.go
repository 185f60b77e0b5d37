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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename from the time that should not collide
// with an existing file. The function does not check.
//
// Format of returned string is:
//
//	prefix_name_YYYYMMDD_HHMMSS
//
// Where name is usually the short name of the loaded ROM. If the name is
// empty the returned string will be of the format:
//
//	prefix_YYYYMMDD_HHMMSS
func UniqueFilename(prefix string, name string, t time.Time) string {
	stamp := t.Format("20060102_150405")

	name = strings.TrimSpace(name)
	if len(name) > 0 {
		return fmt.Sprintf("%s_%s_%s", prefix, name, stamp)
	}
	return fmt.Sprintf("%s_%s", prefix, stamp)
}
