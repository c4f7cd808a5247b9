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

//go:build !linux

package easyterm

import (
	"fmt"
	"os"
)

// Terminal is not supported on this platform.
type Terminal struct{}

// NewTerminal always returns an error on this platform.
func NewTerminal(_, _ *os.File) (*Terminal, error) {
	return nil, fmt.Errorf("easyterm: not supported on this platform")
}

// CleanUp does nothing on this platform.
func (pt *Terminal) CleanUp() {}

// CBreakMode does nothing on this platform.
func (pt *Terminal) CBreakMode() error { return nil }

// ReadRune always returns an error on this platform.
func (pt *Terminal) ReadRune() (rune, error) {
	return 0, fmt.Errorf("easyterm: not supported on this platform")
}
