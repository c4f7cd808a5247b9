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

package main

import (
	"os"

	"github.com/gopherv/gopherv/debugger/terminal/easyterm"
	"github.com/gopherv/gopherv/hardware/peripherals/keyboard"
	"github.com/gopherv/gopherv/logger"
)

// hostKeyboard connects the host keyboard to the keyboard device.
var hostKeyboard = feedKeyboard

// feedKeyboard puts the host terminal into cbreak mode and forwards every key
// press to the keyboard device. The returned function restores the terminal.
//
// If stdin is not a terminal then the keyboard device receives no input.
func feedKeyboard(kb *keyboard.Keyboard) func() {
	term, err := easyterm.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		logger.Logf(logger.Allow, "keyboard", "no host keyboard: %v", err)
		return func() {}
	}

	err = term.CBreakMode()
	if err != nil {
		logger.Logf(logger.Allow, "keyboard", "no host keyboard: %v", err)
		term.CleanUp()
		return func() {}
	}

	go func() {
		for {
			r, err := term.ReadRune()
			if err != nil {
				return
			}
			kb.Push(r)
		}
	}()

	return term.CleanUp
}
