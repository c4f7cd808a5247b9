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

package environment_test

import (
	"path/filepath"
	"testing"

	"github.com/gopherv/gopherv/environment"
	"github.com/gopherv/gopherv/hardware/preferences"
	"github.com/gopherv/gopherv/logger"
	"github.com/gopherv/gopherv/test"
)

func TestPermission(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)

	var perm logger.Permission = env
	test.ExpectFailure(t, perm.AllowLogging())

	test.ExpectSuccess(t, p.LogTraps.Set(true))
	test.ExpectSuccess(t, perm.AllowLogging())

	other, err := environment.NewEnvironment("thumbnail", p)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, other.AllowLogging())

	env.Normalise()
	test.ExpectFailure(t, perm.AllowLogging())
}
