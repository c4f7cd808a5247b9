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

// Package terminal implements a write-only text terminal. Characters written
// to the terminal address are appended to the current row. The terminal
// understands the following control characters:
//
//	8	backspace
//	10	newline
//	12	clear
//	13	newline
//
// Other characters are printed if they are in the range 32 to 126 or are
// greater than 160. Rows wrap at the column width and the terminal scrolls
// upwards when a newline is required on the last row.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/gopherv/gopherv/hardware/memory/bus"
	"github.com/gopherv/gopherv/logger"
)

// control characters.
const (
	charBackspace = 8
	charNewline   = 10
	charClear     = 12
	charReturn    = 13
)

// Terminal is the text terminal device.
type Terminal struct {
	address uint32
	columns int

	rows    [][]rune
	current int

	echo io.Writer
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type.
func NewTerminal(address uint32, rows int, columns int) (*Terminal, error) {
	if address%4 != 0 {
		return nil, fmt.Errorf("terminal: address must be word aligned")
	}
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("terminal: rows and columns must be greater than zero")
	}
	return &Terminal{
		address: address,
		columns: columns,
		rows:    make([][]rune, rows),
	}, nil
}

func (trm *Terminal) String() string {
	return strings.Join(trm.Rows(), "\n")
}

// SetEcho sets the writer that receives a copy of everything printed to the
// terminal. A nil writer disables the echo.
func (trm *Terminal) SetEcho(w io.Writer) {
	trm.echo = w
}

// Rows returns the contents of each row of the terminal.
func (trm *Terminal) Rows() []string {
	r := make([]string, len(trm.rows))
	for i := range trm.rows {
		r[i] = string(trm.rows[i])
	}
	return r
}

// Write implements the bus.Device interface. The terminal accepts accesses of
// any size at its address.
func (trm *Terminal) Write(address uint32, data uint32, _ bus.DataSize) bus.AccessResult {
	if address != trm.address {
		return bus.NotInRange
	}
	trm.put(rune(data))
	return bus.Success
}

// Read implements the bus.Device interface. The terminal cannot be read.
func (trm *Terminal) Read(_ uint32, _ bus.DataSize, _ bool, _ bool) (uint32, bus.AccessResult) {
	return 0, bus.NotInRange
}

func (trm *Terminal) put(r rune) {
	switch {
	case r == charNewline || r == charReturn:
		trm.newline()
		trm.echoString("\n")
	case r == charClear:
		trm.Clear()
		trm.echoString("\n")
	case r == charBackspace:
		row := trm.rows[trm.current]
		if len(row) > 0 {
			trm.rows[trm.current] = row[:len(row)-1]
			trm.echoString("\b \b")
		}
	case (r >= 32 && r < 127) || r > 160:
		trm.rows[trm.current] = append(trm.rows[trm.current], r)
		trm.echoString(string(r))
		if len(trm.rows[trm.current]) == trm.columns {
			trm.newline()
			trm.echoString("\n")
		}
	}
}

// echo is abandoned after the first failed write. the rows are unaffected
func (trm *Terminal) echoString(s string) {
	if trm.echo == nil {
		return
	}
	if _, err := io.WriteString(trm.echo, s); err != nil {
		logger.Logf(logger.Allow, "terminal", "echo: %v", err)
		trm.echo = nil
	}
}

func (trm *Terminal) newline() {
	if trm.current < len(trm.rows)-1 {
		trm.current++
		return
	}

	// scroll upwards
	copy(trm.rows, trm.rows[1:])
	trm.rows[trm.current] = nil
}

// Clear empties every row and moves printing to the first row.
func (trm *Terminal) Clear() {
	for i := range trm.rows {
		trm.rows[i] = nil
	}
	trm.current = 0
}
