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
	"os"
	"path/filepath"
	"strings"

	"github.com/gopher2a03/gopher2a03/curated"
)

const portablePath = ".gopher2a03"
const configDir = "gopher2a03"

// error patterns
const (
	NoBasePath = "paths: %v"
)

// BasePath returns the base directory for all resources. It is not created
// by this function.
func BasePath() (string, error) {
	if fi, err := os.Stat(portablePath); err == nil && fi.IsDir() {
		return portablePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", curated.Errorf(NoBasePath, err)
	}

	return filepath.Join(cnf, configDir), nil
}

// ResourcePath returns the path of the resource inside the base directory.
// The final element is treated as a file name and is never created but all
// directories leading to it are.
//
// For example, the following creates the "saves" directory if necessary and
// returns the path to the "game.sav" file within that directory:
//
//	ResourcePath("saves", "game.sav")
//
// To return and create a directory, use an empty string as the final element:
//
//	ResourcePath("screenshots", "")
func ResourcePath(resource ...string) (string, error) {
	b, err := BasePath()
	if err != nil {
		return "", err
	}
	return join(b, resource...)
}

func join(base string, resource ...string) (string, error) {
	p := filepath.Join(resource...)
	if !strings.HasPrefix(p, base) {
		p = filepath.Join(base, p)
	}

	dir := p
	if len(resource) > 0 && resource[len(resource)-1] != "" {
		dir = filepath.Dir(p)
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", curated.Errorf(NoBasePath, err)
	}

	return p, nil
}
