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

package govern_test

import (
	"testing"

	"github.com/gopherv/gopherv/debugger/govern"
	"github.com/gopherv/gopherv/test"
)

func TestState(t *testing.T) {
	test.ExpectEquality(t, govern.Running.String(), "Running")
	test.ExpectEquality(t, govern.Halted.String(), "Halted")
	test.ExpectEquality(t, govern.State(100).String(), "")

	test.ExpectSuccess(t, govern.Running.Continues())
	test.ExpectSuccess(t, govern.Stepping.Continues())
	test.ExpectFailure(t, govern.Paused.Continues())
	test.ExpectFailure(t, govern.Halted.Continues())
	test.ExpectFailure(t, govern.Ending.Continues())
}
