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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/gopherv/gopherv/hardware/preferences"
	"github.com/gopherv/gopherv/prefs"
	"github.com/gopherv/gopherv/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.ClockSpeed.Get().(float64), preferences.DefaultClockSpeed)
	test.ExpectEquality(t, p.LogTraps.Get().(bool), false)
	test.ExpectEquality(t, p.TerminalEcho.Get().(bool), true)
	test.ExpectEquality(t, p.TextImage.String(), preferences.DefaultTextImage)
}

func TestSaveAndLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.LogTraps.Set(true))
	test.ExpectSuccess(t, p.ClockSpeed.Set(50.0))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.LogTraps.Get().(bool), true)
	test.ExpectEquality(t, q.ClockSpeed.Get().(float64), 50.0)

	q.SetDefaults()
	test.ExpectEquality(t, q.LogTraps.Get().(bool), false)
	test.ExpectSuccess(t, q.Load())
	test.ExpectEquality(t, q.LogTraps.Get().(bool), true)
}

func TestCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.ClockSpeed.Set(50.0))
	test.ExpectSuccess(t, p.Save())

	prefs.PushCommandLineStack("cpu.clockspeed::0")
	defer prefs.PopCommandLineStack()

	q, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.ClockSpeed.Get().(float64), 0.0)
}
