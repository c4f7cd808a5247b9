// This file is part of Gopherv.
//
// Gopherv is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherv is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherv.  If not, see <https://www.gnu.org/licenses/>.

// Package paths contains functions to prepare paths for files used by the
// emulator, such as the preferences file.
//
// If a directory called .gopherv exists in the current working directory it
// is used as the base for all resources. Otherwise the base is a gopherv
// directory inside the user's configuration directory, as reported by
// os.UserConfigDir().
package paths

import (
	"os"
	"path/filepath"
)

const baseResourcePath = ".gopherv"

// ResourcePath returns the path to the named resource inside the
// subdirectory subPth of the resource base. The subdirectory is created if it
// does not exist. Both arguments can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, subPth)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}

	return filepath.Join(dir, file), nil
}

func basePath() (string, error) {
	if st, err := os.Stat(baseResourcePath); err == nil && st.IsDir() {
		return baseResourcePath, nil
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cfg, baseResourcePath[1:]), nil
}
