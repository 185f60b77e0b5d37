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

package performance

import (
	"strings"

	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/gopher2a03/gopher2a03/logger"
	"github.com/pkg/profile"
)

// error patterns
const (
	UnknownProfile = "performance: unknown profile type (%s)"
)

// Profile specifies which type of profile to create. Only one type of
// profile can be active at once.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileBlock
)

func (p Profile) String() string {
	switch p {
	case ProfileNone:
		return "none"
	case ProfileCPU:
		return "cpu"
	case ProfileMem:
		return "mem"
	case ProfileBlock:
		return "block"
	}
	return "unknown"
}

// ParseProfile converts a string to a Profile value. Case insensitive. The
// empty string is the same as "none".
func ParseProfile(s string) (Profile, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ProfileNone, nil
	}
	for _, p := range []Profile{ProfileNone, ProfileCPU, ProfileMem, ProfileBlock} {
		if strings.EqualFold(p.String(), s) {
			return p, nil
		}
	}
	return ProfileNone, curated.Errorf(UnknownProfile, s)
}

// RunProfiler runs the function, creating the requested profile in the
// directory. The profile file is named after the profile type.
func RunProfiler(p Profile, dir string, run func() error) error {
	var opt func(*profile.Profile)

	switch p {
	case ProfileNone:
		return run()
	case ProfileCPU:
		opt = profile.CPUProfile
	case ProfileMem:
		opt = profile.MemProfile
	case ProfileBlock:
		opt = profile.BlockProfile
	default:
		return curated.Errorf(UnknownProfile, p)
	}

	logger.Logf(logger.Allow, "performance", "creating %s profile in %s", p, dir)

	prof := profile.Start(opt, profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet)
	defer prof.Stop()

	return run()
}
