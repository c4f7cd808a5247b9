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

package prefs_test

import (
	"testing"

	"github.com/gopherv/gopherv/prefs"
	"github.com/gopherv/gopherv/test"
)

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	ok, v := prefs.GetCommandLinePref("foo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "bar")

	// value has been consumed
	ok, _ = prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)

	// a second group hides the first
	prefs.PushCommandLineStack("cpu.clockspeed::5")
	ok, _ = prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.clockspeed::5")

	// unused entries are returned on pop
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	// popping an empty stack is harmless
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineStackMalformed(t *testing.T) {
	prefs.PushCommandLineStack("foo; ::; bar::baz::qux; a :: b ")
	ok, v := prefs.GetCommandLinePref("a")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "b")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "::")
}
