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

// Package version records the version of the application. The version number
// can be set at link time:
//
//	go build -ldflags "-X github.com/gopherv/gopherv/version.number=v0.1.0"
//
// Without a number the version is "unreleased" if the binary was built from a
// version control checkout and "local" otherwise.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name of the application.
const ApplicationName = "Gopherv"

// set by the linker.
var number string

// Info describes the build.
type Info struct {
	Version  string
	Revision string

	// true if the version is a release number set by the linker
	Release bool
}

func (inf Info) String() string {
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Version, inf.Revision)
}

// Read returns the version information for the running binary.
func Read() Info {
	settings := make(map[string]string)
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}
	}
	return fromSettings(number, settings)
}

func fromSettings(number string, settings map[string]string) Info {
	inf := Info{
		Revision: "no revision information",
	}

	if rev := settings["vcs.revision"]; rev != "" {
		inf.Revision = rev
		if settings["vcs.modified"] == "true" {
			inf.Revision = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		inf.Version = number
		inf.Release = true
	case settings["vcs"] != "":
		inf.Version = "unreleased"
	default:
		inf.Version = "local"
	}

	return inf
}
