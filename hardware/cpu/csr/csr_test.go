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

package csr_test

import (
	"testing"

	"github.com/gopherv/gopherv/hardware/cpu/csr"
	"github.com/gopherv/gopherv/test"
)

type line struct {
	pending bool
}

func (l *line) HasInterrupt() bool {
	return l.pending
}

type timer struct {
	line
	time uint64
}

func (t *timer) TimeLow() uint32 {
	return uint32(t.time)
}

func (t *timer) TimeHigh() uint32 {
	return uint32(t.time >> 32)
}

type counters struct {
	cycle   uint64
	instret uint64
}

func (c *counters) Cycle() uint64 {
	return c.cycle
}

func (c *counters) Instret() uint64 {
	return c.instret
}

func newCSR() (*csr.CSR, *line, *timer, *counters, *int) {
	ext := &line{}
	tmr := &timer{}
	cnt := &counters{}
	debug := new(int)
	return csr.NewCSR(ext, tmr, cnt, func() { *debug++ }), ext, tmr, cnt, debug
}

func read(t *testing.T, c *csr.CSR, address uint32) uint32 {
	t.Helper()
	v, ok := c.Read(address, true)
	test.DemandSuccess(t, ok)
	return v
}

func TestNames(t *testing.T) {
	for _, a := range csr.ValidAddresses() {
		test.ExpectInequality(t, csr.Name(a), "???", a)
	}
	test.ExpectEquality(t, csr.Name(csr.Mstatus), "mstatus")
	test.ExpectEquality(t, csr.Name(csr.InstretH), "instreth")
	test.ExpectEquality(t, csr.Name(0x123), "???")
	test.ExpectEquality(t, len(csr.ValidAddresses()), 21)
	test.ExpectEquality(t, csr.ValidAddresses()[0], uint32(csr.Mstatus))
	test.ExpectEquality(t, csr.ValidAddresses()[20], uint32(csr.Debug))
}

func TestInvalidAddress(t *testing.T) {
	c, _, _, _, _ := newCSR()
	_, ok := c.Read(0x123, false)
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, c.Write(0x123, 0))
}

func TestMstatus(t *testing.T) {
	c, _, _, _, _ := newCSR()
	test.ExpectEquality(t, read(t, c, csr.Mstatus), csr.MstatusMPP)

	test.ExpectSuccess(t, c.Write(csr.Mstatus, 0xffffffff))
	test.ExpectEquality(t, read(t, c, csr.Mstatus), csr.MstatusMPP|csr.MstatusMIE|csr.MstatusMPIE)
	test.ExpectSuccess(t, c.InterruptsEnabled())

	test.ExpectSuccess(t, c.Write(csr.Mstatus, 0))
	test.ExpectEquality(t, read(t, c, csr.Mstatus), csr.MstatusMPP)
	test.ExpectFailure(t, c.InterruptsEnabled())
}

func TestWriteMasks(t *testing.T) {
	c, _, _, _, _ := newCSR()

	test.ExpectSuccess(t, c.Write(csr.Mie, 0xffffffff))
	test.ExpectEquality(t, read(t, c, csr.Mie), uint32(0x888))

	test.ExpectSuccess(t, c.Write(csr.Mtvec, 0x12345677))
	test.ExpectEquality(t, read(t, c, csr.Mtvec), uint32(0x12345675))

	test.ExpectSuccess(t, c.Write(csr.Mepc, 0x12345677))
	test.ExpectEquality(t, read(t, c, csr.Mepc), uint32(0x12345674))

	for _, a := range []uint32{csr.Mscratch, csr.Mcause, csr.Mtval, csr.Ureg00} {
		test.ExpectSuccess(t, c.Write(a, 0xdeadbeef), a)
		test.ExpectEquality(t, read(t, c, a), uint32(0xdeadbeef), a)
	}

	// misa is writable but does not change
	test.ExpectSuccess(t, c.Write(csr.Misa, 0))
	test.ExpectEquality(t, read(t, c, csr.Misa), uint32(0x40001100))

	// mip is writable but does not change
	test.ExpectSuccess(t, c.Write(csr.Mip, 0xffffffff))
	test.ExpectEquality(t, read(t, c, csr.Mip), uint32(0))
}

func TestReadOnlyRegisters(t *testing.T) {
	c, _, _, _, _ := newCSR()
	for _, a := range []uint32{csr.Cycle, csr.Time, csr.Instret, csr.CycleH, csr.TimeH, csr.InstretH,
		csr.Mvendorid, csr.Marchid, csr.Mimpid, csr.Mhartid, csr.Debug} {
		test.ExpectFailure(t, c.Write(a, 1), a)
	}
}

func TestCounters(t *testing.T) {
	c, _, tmr, cnt, _ := newCSR()
	cnt.cycle = 0x100000002
	cnt.instret = 0x300000004
	tmr.time = 0x500000006

	test.ExpectEquality(t, read(t, c, csr.Cycle), uint32(2))
	test.ExpectEquality(t, read(t, c, csr.CycleH), uint32(1))
	test.ExpectEquality(t, read(t, c, csr.Instret), uint32(4))
	test.ExpectEquality(t, read(t, c, csr.InstretH), uint32(3))
	test.ExpectEquality(t, read(t, c, csr.Time), uint32(6))
	test.ExpectEquality(t, read(t, c, csr.TimeH), uint32(5))
	test.ExpectEquality(t, read(t, c, csr.Mhartid), uint32(0))
}

func TestDebug(t *testing.T) {
	c, _, _, _, debug := newCSR()

	v, ok := c.Read(csr.Debug, true)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint32(0))
	test.ExpectEquality(t, *debug, 0)

	_, ok = c.Read(csr.Debug, false)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, *debug, 1)

	// a nil callback is allowed
	c = csr.NewCSR(nil, nil, nil, nil)
	_, ok = c.Read(csr.Debug, false)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, read(t, c, csr.Time), uint32(0))
}

func TestTrapRoundTrip(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		c, _, _, _, _ := newCSR()
		if enabled {
			c.Write(csr.Mstatus, csr.MstatusMIE)
		}
		c.Write(csr.Mtvec, 0x00400100)

		pc := c.ExecuteException(0x00400020, 2, 0xbad, false)
		test.ExpectEquality(t, pc, uint32(0x00400100), enabled)
		test.ExpectEquality(t, read(t, c, csr.Mepc), uint32(0x00400020), enabled)
		test.ExpectEquality(t, read(t, c, csr.Mcause), uint32(2), enabled)
		test.ExpectEquality(t, read(t, c, csr.Mtval), uint32(0xbad), enabled)
		test.ExpectFailure(t, c.InterruptsEnabled(), enabled)
		test.ExpectEquality(t, read(t, c, csr.Mstatus)&csr.MstatusMPIE != 0, enabled)

		pc = c.ReturnException()
		test.ExpectEquality(t, pc, uint32(0x00400020), enabled)
		test.ExpectEquality(t, c.InterruptsEnabled(), enabled)
		test.ExpectEquality(t, read(t, c, csr.Mstatus)&csr.MstatusMPIE, csr.MstatusMPIE, enabled)
	}
}

func TestVectoredDispatch(t *testing.T) {
	c, _, _, _, _ := newCSR()
	c.Write(csr.Mtvec, 0x00400101)

	// exceptions are never vectored
	test.ExpectEquality(t, c.ExecuteException(0x00400000, 11, 0, false), uint32(0x00400100))

	// interrupts are
	test.ExpectEquality(t, c.ExecuteException(0x00400000, 7, 0, true), uint32(0x0040011c))
	test.ExpectEquality(t, read(t, c, csr.Mcause), uint32(0x80000007))

	c.Write(csr.Mtvec, 0x00400100)
	test.ExpectEquality(t, c.ExecuteException(0x00400000, 7, 0, true), uint32(0x00400100))
}

func TestCheckInterrupts(t *testing.T) {
	c, ext, tmr, _, _ := newCSR()
	c.Write(csr.Mtvec, 0x00400100)
	c.Write(csr.Mie, 1<<csr.MachineExternal|1<<csr.MachineTimer)

	ext.pending = true
	tmr.pending = true

	// interrupts disabled
	taken, _ := c.CheckInterrupts(0x00400010)
	test.ExpectFailure(t, taken)

	// mip reflects the interrupt lines even if interrupts are disabled
	test.ExpectEquality(t, read(t, c, csr.Mip), uint32(0x880))

	c.Write(csr.Mstatus, csr.MstatusMIE)
	taken, pc := c.CheckInterrupts(0x00400010)
	test.ExpectSuccess(t, taken)
	test.ExpectEquality(t, pc, uint32(0x00400100))
	test.ExpectEquality(t, read(t, c, csr.Mcause), csr.InterruptFlag|csr.MachineExternal)
	test.ExpectEquality(t, read(t, c, csr.Mepc), uint32(0x00400010))
	test.ExpectEquality(t, read(t, c, csr.Mtval), uint32(0))

	// the trap disabled interrupts
	taken, _ = c.CheckInterrupts(0x00400100)
	test.ExpectFailure(t, taken)

	// timer is next in priority once the external line is clear
	ext.pending = false
	c.ReturnException()
	taken, _ = c.CheckInterrupts(0x00400010)
	test.ExpectSuccess(t, taken)
	test.ExpectEquality(t, read(t, c, csr.Mcause), csr.InterruptFlag|csr.MachineTimer)

	// pending but not enabled
	c.ReturnException()
	c.Write(csr.Mie, 0)
	taken, _ = c.CheckInterrupts(0x00400010)
	test.ExpectFailure(t, taken)
}

func TestReset(t *testing.T) {
	c, _, _, _, _ := newCSR()
	c.Write(csr.Mstatus, csr.MstatusMIE|csr.MstatusMPIE)
	c.Write(csr.Mcause, 5)
	c.Reset(0)
	test.ExpectFailure(t, c.InterruptsEnabled())
	test.ExpectEquality(t, read(t, c, csr.Mcause), uint32(0))
	test.ExpectEquality(t, read(t, c, csr.Mstatus), csr.MstatusMPP|csr.MstatusMPIE)
}
