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

package keyboard_test

import (
	"sync"
	"testing"

	"github.com/gopherv/gopherv/hardware/memory/bus"
	"github.com/gopherv/gopherv/hardware/peripherals/keyboard"
	"github.com/gopherv/gopherv/test"
)

func TestBuffer(t *testing.T) {
	b := bus.NewBus()
	kb := keyboard.NewKeyboard(0x100)
	b.Connect(kb)

	v, r := b.Read(0x100, bus.Word, false, false)
	test.ExpectEquality(t, r, bus.Success)
	test.ExpectEquality(t, v, uint32(0))
	test.ExpectFailure(t, b.HasInterrupt())

	kb.Push('a')
	kb.Push('b')

	// characters are not visible until serviced
	test.ExpectEquality(t, kb.Buffered(), 0)
	test.ExpectFailure(t, b.HasInterrupt())

	kb.Service()
	test.ExpectEquality(t, kb.Buffered(), 2)
	test.ExpectSuccess(t, b.HasInterrupt())

	// read-only access does not consume
	v, _ = b.Read(0x100, bus.Byte, true, false)
	test.ExpectEquality(t, v, uint32('a'))
	test.ExpectEquality(t, kb.Buffered(), 2)

	v, _ = b.Read(0x100, bus.Byte, false, false)
	test.ExpectEquality(t, v, uint32('a'))
	test.ExpectSuccess(t, b.HasInterrupt())

	v, _ = b.Read(0x100, bus.Byte, false, false)
	test.ExpectEquality(t, v, uint32('b'))
	test.ExpectFailure(t, b.HasInterrupt())

	v, _ = b.Read(0x100, bus.Byte, false, false)
	test.ExpectEquality(t, v, uint32(0))
	test.ExpectFailure(t, b.HasInterrupt())
}

func TestBufferLimit(t *testing.T) {
	kb := keyboard.NewKeyboard(0x100)
	for i := 0; i < keyboard.BufferSize+10; i++ {
		kb.Push('x')
	}
	kb.Push(0)
	kb.Service()
	test.ExpectEquality(t, kb.Buffered(), keyboard.BufferSize)
}

func TestAccess(t *testing.T) {
	kb := keyboard.NewKeyboard(0x100)
	_, r := kb.Read(0x104, bus.Word, false, false)
	test.ExpectEquality(t, r, bus.NotInRange)
	test.ExpectEquality(t, kb.Write(0x100, 1, bus.Word), bus.NotInRange)
}

func TestConcurrentPush(t *testing.T) {
	kb := keyboard.NewKeyboard(0x100)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 16; j++ {
				kb.Push('k')
			}
		}()
	}
	wg.Wait()

	kb.Service()
	test.ExpectEquality(t, kb.Buffered(), 64)
}
