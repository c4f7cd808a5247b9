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

package screen_test

import (
	"testing"

	"github.com/gopherv/gopherv/hardware/memory/bus"
	"github.com/gopherv/gopherv/hardware/peripherals/screen"
	"github.com/gopherv/gopherv/test"
)

func TestNewScreen(t *testing.T) {
	_, err := screen.NewScreen(0x1002, 2, 4)
	test.ExpectFailure(t, err)
	_, err = screen.NewScreen(0x1000, 3, 4)
	test.ExpectFailure(t, err)
	_, err = screen.NewScreen(0x1000, 2, 33)
	test.ExpectFailure(t, err)
	_, err = screen.NewScreen(0x1000, 2, 32)
	test.ExpectSuccess(t, err)
}

func TestAccess(t *testing.T) {
	scr, err := screen.NewScreen(0x1000, 4, 4)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, scr.Write(0x100c, 0xf, bus.Word), bus.Success)
	test.ExpectEquality(t, scr.Write(0x1010, 0xf, bus.Word), bus.NotInRange)
	test.ExpectEquality(t, scr.Write(0x0ffc, 0xf, bus.Word), bus.NotInRange)
	test.ExpectEquality(t, scr.Write(0x1004, 0xf, bus.Byte), bus.Misaligned)
	test.ExpectEquality(t, scr.Write(0x1006, 0xf, bus.Word), bus.Misaligned)

	_, r := scr.Read(0x1000, bus.Word, false, false)
	test.ExpectEquality(t, r, bus.NotInRange)

	rows := scr.Rows()
	test.ExpectEquality(t, len(rows), 4)
	test.ExpectEquality(t, rows[1], uint32(0))
	test.ExpectEquality(t, rows[3], uint32(0xf))

	scr.Clear()
	test.ExpectEquality(t, scr.Rows()[3], uint32(0))
}

func TestRender(t *testing.T) {
	scr, err := screen.NewScreen(0x1000, 2, 4)
	test.DemandSuccess(t, err)

	// column 0 is the rightmost character
	scr.Write(0x1000, 0b0101, bus.Word)
	scr.Write(0x1004, 0b0011, bus.Word)

	tw := &test.CompareWriter{}
	test.ExpectSuccess(t, scr.Render(tw))
	test.ExpectEquality(t, tw.String(), " ▀▄█\n")
}
