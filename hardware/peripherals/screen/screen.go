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

// Package screen implements a monochrome bitmap display. Each row of the
// display is one word of memory and bit n of the word is column n. Column 0
// is at the right hand edge of the display.
//
// The display can only be written to, and only with word-sized accesses.
package screen

import (
	"fmt"
	"io"
	"strings"

	"github.com/gopherv/gopherv/hardware/memory/bus"
)

// MaxColumns is the largest number of columns a display can have.
const MaxColumns = 32

// Screen is the bitmap display device.
type Screen struct {
	origin  uint32
	columns int
	rows    []uint32
}

// NewScreen is the preferred method of initialisation for the Screen type. The
// number of rows must be even because two rows are rendered as a single line
// of text.
func NewScreen(origin uint32, rows int, columns int) (*Screen, error) {
	if origin%4 != 0 {
		return nil, fmt.Errorf("screen: origin must be word aligned")
	}
	if rows <= 0 || rows%2 != 0 {
		return nil, fmt.Errorf("screen: number of rows must be even")
	}
	if columns <= 0 || columns > MaxColumns {
		return nil, fmt.Errorf("screen: number of columns must be between 1 and %d", MaxColumns)
	}
	return &Screen{
		origin:  origin,
		columns: columns,
		rows:    make([]uint32, rows),
	}, nil
}

func (scr *Screen) String() string {
	return fmt.Sprintf("screen %08x: %dx%d", scr.origin, len(scr.rows), scr.columns)
}

// Write implements the bus.Device interface.
func (scr *Screen) Write(address uint32, data uint32, size bus.DataSize) bus.AccessResult {
	if address < scr.origin || address-scr.origin >= uint32(len(scr.rows))*4 {
		return bus.NotInRange
	}
	if size != bus.Word || address%4 != 0 {
		return bus.Misaligned
	}
	scr.rows[(address-scr.origin)/4] = data
	return bus.Success
}

// Read implements the bus.Device interface. The display cannot be read.
func (scr *Screen) Read(_ uint32, _ bus.DataSize, _ bool, _ bool) (uint32, bus.AccessResult) {
	return 0, bus.NotInRange
}

// Rows returns a copy of the display memory.
func (scr *Screen) Rows() []uint32 {
	r := make([]uint32, len(scr.rows))
	copy(r, scr.rows)
	return r
}

// Clear the display.
func (scr *Screen) Clear() {
	for i := range scr.rows {
		scr.rows[i] = 0
	}
}

// Render draws the display to w. Each line of text shows two rows of the
// display using the upper and lower half block characters.
func (scr *Screen) Render(w io.Writer) error {
	s := strings.Builder{}
	for row := 0; row < len(scr.rows); row += 2 {
		upper := scr.rows[row]
		lower := scr.rows[row+1]
		for col := scr.columns - 1; col >= 0; col-- {
			u := upper&(1<<col) != 0
			l := lower&(1<<col) != 0
			switch {
			case u && l:
				s.WriteRune('█')
			case u:
				s.WriteRune('▀')
			case l:
				s.WriteRune('▄')
			default:
				s.WriteRune(' ')
			}
		}
		s.WriteRune('\n')
	}
	_, err := io.WriteString(w, s.String())
	return err
}
