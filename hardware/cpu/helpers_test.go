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

package cpu_test

import (
	"testing"

	"github.com/gopherv/gopherv/hardware/cpu"
	"github.com/gopherv/gopherv/hardware/cpu/encoding"
	"github.com/gopherv/gopherv/hardware/memory/bus"
	"github.com/gopherv/gopherv/hardware/memory/memorymap"
	"github.com/gopherv/gopherv/hardware/memory/ram"
	"github.com/gopherv/gopherv/logger"
	"github.com/gopherv/gopherv/test"
)

type mockTimer struct {
	pending bool
	time    uint64
}

func (tmr *mockTimer) HasInterrupt() bool {
	return tmr.pending
}

func (tmr *mockTimer) TimeLow() uint32 {
	return uint32(tmr.time)
}

func (tmr *mockTimer) TimeHigh() uint32 {
	return uint32(tmr.time >> 32)
}

// testMachine is a CPU attached to a bus with RAM covering the entire RAM
// area of the memory map.
type testMachine struct {
	bus   *bus.Bus
	mc    *cpu.CPU
	tmr   *mockTimer
	debug int
}

func newTestMachine() *testMachine {
	m := &testMachine{
		bus: bus.NewBus(),
		tmr: &mockTimer{},
	}
	m.bus.Connect(ram.NewRAM(memorymap.OriginRAM, memorymap.MemtopRAM))
	m.mc = cpu.NewCPU(logger.Allow, m.bus, m.bus, m.tmr, func() { m.debug++ })
	m.mc.Reset()
	return m
}

// load instructions into memory at the text origin and reset the CPU.
func (m *testMachine) load(t *testing.T, instructions ...uint32) {
	t.Helper()
	m.mc.Reset()
	for i, v := range instructions {
		r := m.bus.Write(memorymap.OriginText+uint32(i*4), v, bus.Word)
		test.DemandEquality(t, r, bus.Success)
	}
}

// clock the CPU the number of times.
func (m *testMachine) clock(n int) {
	for i := 0; i < n; i++ {
		m.mc.Clock()
	}
}

func (m *testMachine) csr(t *testing.T, address uint32) uint32 {
	t.Helper()
	v, ok := m.mc.CSR().Read(address, true)
	test.DemandSuccess(t, ok)
	return v
}

// asm is a shorthand for encoding.MustEncode.
func asm(mnemonic string, operands ...int32) uint32 {
	return encoding.MustEncode(mnemonic, operands...)
}
