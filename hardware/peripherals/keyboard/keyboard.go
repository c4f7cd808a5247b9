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

// Package keyboard implements a read-only keyboard buffer. Reading from the
// keyboard address returns the oldest character in the buffer and removes it.
// If the buffer is empty the read returns zero.
//
// The keyboard raises an interrupt on the bus when the buffer becomes
// non-empty and clears it when the buffer becomes empty again.
//
// Characters arrive from the host with Push(), which is safe to call from any
// goroutine. Pushed characters are not visible to the emulation until
// Service() is called, which must happen on the goroutine that drives the
// machine.
package keyboard

import (
	"fmt"
	"sync"

	"github.com/gopherv/gopherv/hardware/memory/bus"
	"github.com/gopherv/gopherv/logger"
)

// BufferSize is the maximum number of characters the keyboard holds.
const BufferSize = 256

// Keyboard is the keyboard device.
type Keyboard struct {
	address uint32
	bus     bus.Interrupter

	buffer []rune

	// characters pushed by the host that have not yet been moved to the
	// buffer by Service()
	crit    sync.Mutex
	pending []rune
}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
func NewKeyboard(address uint32) *Keyboard {
	return &Keyboard{
		address: address,
		buffer:  make([]rune, 0, BufferSize),
	}
}

func (kb *Keyboard) String() string {
	return fmt.Sprintf("keyboard %08x: %d buffered", kb.address, len(kb.buffer))
}

// Connect implements the bus.Connector interface.
func (kb *Keyboard) Connect(b bus.Interrupter) {
	kb.bus = b
}

// Push adds a character to the keyboard. Safe to call from any goroutine.
func (kb *Keyboard) Push(r rune) {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	kb.pending = append(kb.pending, r)
}

// Service moves pushed characters into the keyboard buffer. Characters that
// do not fit in the buffer and zero characters are discarded.
func (kb *Keyboard) Service() {
	kb.crit.Lock()
	pending := kb.pending
	kb.pending = nil
	kb.crit.Unlock()

	for _, r := range pending {
		kb.add(r)
	}
}

func (kb *Keyboard) add(r rune) {
	if r == 0 {
		return
	}
	if len(kb.buffer) >= BufferSize {
		logger.Logf(logger.Allow, "keyboard", "buffer full, dropping %q", r)
		return
	}
	if len(kb.buffer) == 0 && kb.bus != nil {
		kb.bus.PostInterrupt()
	}
	kb.buffer = append(kb.buffer, r)
}

// Buffered returns the number of characters in the buffer.
func (kb *Keyboard) Buffered() int {
	return len(kb.buffer)
}

// Write implements the bus.Device interface. The keyboard cannot be written
// to.
func (kb *Keyboard) Write(_ uint32, _ uint32, _ bus.DataSize) bus.AccessResult {
	return bus.NotInRange
}

// Read implements the bus.Device interface. The keyboard accepts accesses of
// any size at its address.
func (kb *Keyboard) Read(address uint32, _ bus.DataSize, readOnly bool, _ bool) (uint32, bus.AccessResult) {
	if address != kb.address {
		return 0, bus.NotInRange
	}

	if len(kb.buffer) == 0 {
		return 0, bus.Success
	}

	r := kb.buffer[0]
	if !readOnly {
		copy(kb.buffer, kb.buffer[1:])
		kb.buffer = kb.buffer[:len(kb.buffer)-1]
		if len(kb.buffer) == 0 && kb.bus != nil {
			kb.bus.ClearInterrupt()
		}
	}

	return uint32(r), bus.Success
}
