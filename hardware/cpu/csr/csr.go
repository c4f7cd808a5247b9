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

package csr

import (
	"fmt"
)

// ExternalInterrupt is the aggregated external interrupt line.
type ExternalInterrupt interface {
	HasInterrupt() bool
}

// Timer is the interface to the machine timer.
type Timer interface {
	HasInterrupt() bool
	TimeLow() uint32
	TimeHigh() uint32
}

// Counters is the interface to the performance counters kept by the CPU.
type Counters interface {
	Cycle() uint64
	Instret() uint64
}

// CSR is the control and status register file.
type CSR struct {
	ext      ExternalInterrupt
	timer    Timer
	counters Counters

	// called when the Debug address is read
	onDebug func()

	// the MIE and MPIE bits are the only writable bits of mstatus
	mstatus uint32

	mie      uint32
	mip      uint32
	mtvec    uint32
	mscratch uint32
	mepc     uint32
	mcause   uint32
	mtval    uint32
	ureg00   uint32
}

// NewCSR is the preferred method of initialisation for the CSR type. Any of
// the arguments can be nil.
func NewCSR(ext ExternalInterrupt, timer Timer, counters Counters, onDebug func()) *CSR {
	return &CSR{
		ext:      ext,
		timer:    timer,
		counters: counters,
		onDebug:  onDebug,
		mstatus:  MstatusMPP,
	}
}

func (c *CSR) String() string {
	return fmt.Sprintf("mstatus=%08x mepc=%08x mcause=%08x mtval=%08x", c.readMstatus(), c.mepc, c.mcause, c.mtval)
}

// Reset disables interrupts and sets the mcause register.
func (c *CSR) Reset(cause uint32) {
	c.mstatus &^= MstatusMIE
	c.mcause = cause
}

func (c *CSR) readMstatus() uint32 {
	return c.mstatus | MstatusMPP
}

// InterruptsEnabled returns the state of the MIE bit of mstatus.
func (c *CSR) InterruptsEnabled() bool {
	return c.mstatus&MstatusMIE == MstatusMIE
}

// updateMip recalculates the pending interrupt bits from the interrupt lines.
// software interrupts are not implemented.
func (c *CSR) updateMip() {
	c.mip = 0
	if c.timer != nil && c.timer.HasInterrupt() {
		c.mip |= 1 << MachineTimer
	}
	if c.ext != nil && c.ext.HasInterrupt() {
		c.mip |= 1 << MachineExternal
	}
}

// Read the register at address. Returns false if the address is not a valid
// register. A read of the Debug address with readOnly false calls the debug
// callback.
func (c *CSR) Read(address uint32, readOnly bool) (uint32, bool) {
	switch address {
	case Mstatus:
		return c.readMstatus(), true
	case Misa:
		return MisaValue, true
	case Mie:
		return c.mie, true
	case Mtvec:
		return c.mtvec, true
	case Mscratch:
		return c.mscratch, true
	case Mepc:
		return c.mepc, true
	case Mcause:
		return c.mcause, true
	case Mtval:
		return c.mtval, true
	case Mip:
		c.updateMip()
		return c.mip, true
	case Ureg00:
		return c.ureg00, true
	case Cycle:
		return uint32(c.cycle()), true
	case CycleH:
		return uint32(c.cycle() >> 32), true
	case Instret:
		return uint32(c.instret()), true
	case InstretH:
		return uint32(c.instret() >> 32), true
	case Time:
		if c.timer == nil {
			return 0, true
		}
		return c.timer.TimeLow(), true
	case TimeH:
		if c.timer == nil {
			return 0, true
		}
		return c.timer.TimeHigh(), true
	case Mvendorid, Marchid, Mimpid, Mhartid:
		return 0, true
	case Debug:
		if !readOnly && c.onDebug != nil {
			c.onDebug()
		}
		return 0, true
	}

	return 0, false
}

func (c *CSR) cycle() uint64 {
	if c.counters == nil {
		return 0
	}
	return c.counters.Cycle()
}

func (c *CSR) instret() uint64 {
	if c.counters == nil {
		return 0
	}
	return c.counters.Instret()
}

// Write value to the register at address. Returns false if the register does
// not exist or cannot be written to.
func (c *CSR) Write(address uint32, value uint32) bool {
	switch address {
	case Mstatus:
		c.mstatus = value & (MstatusMIE | MstatusMPIE)
	case Misa:
		// writable but the value never changes
	case Mie:
		c.mie = value & mieWritable
	case Mtvec:
		c.mtvec = value &^ 0b10
	case Mscratch:
		c.mscratch = value
	case Mepc:
		c.mepc = value &^ 0b11
	case Mcause:
		c.mcause = value
	case Mtval:
		c.mtval = value
	case Mip:
		// machine level pending bits cannot be written directly. the write is
		// accepted but has no effect
	case Ureg00:
		c.ureg00 = value
	default:
		return false
	}

	return true
}

// ExecuteException enters a trap. The epc, cause and value are recorded and
// interrupts are disabled. The returned value is the address of the trap
// handler.
//
// If the low bit of mtvec is set and the trap is an interrupt then the handler
// address is vectored by the cause. Otherwise the handler address is the base
// address in mtvec.
func (c *CSR) ExecuteException(epc uint32, cause uint32, value uint32, interrupt bool) uint32 {
	c.mepc = epc
	c.mcause = cause
	if interrupt {
		c.mcause |= InterruptFlag
	}
	c.mtval = value

	if c.InterruptsEnabled() {
		c.mstatus |= MstatusMPIE
	} else {
		c.mstatus &^= MstatusMPIE
	}
	c.mstatus &^= MstatusMIE

	// the mode bit is never part of the handler address
	base := c.mtvec &^ 0b11
	if !interrupt || c.mtvec&0b01 == 0 {
		return base
	}
	return base + 4*cause
}

// ReturnException leaves a trap. Interrupts are enabled if they were enabled
// before the trap was entered. The returned value is the address to return
// to.
func (c *CSR) ReturnException() uint32 {
	if c.mstatus&MstatusMPIE == MstatusMPIE {
		c.mstatus |= MstatusMIE
	} else {
		c.mstatus &^= MstatusMIE
	}
	c.mstatus |= MstatusMPIE
	return c.mepc
}

// CheckInterrupts takes the highest priority interrupt that is both pending
// and enabled, if interrupts are enabled at all. The pc argument is the
// address that execution would otherwise continue from. Returns true and the
// address of the handler if an interrupt was taken.
func (c *CSR) CheckInterrupts(pc uint32) (bool, uint32) {
	if !c.InterruptsEnabled() {
		return false, 0
	}

	c.updateMip()

	cause, ok := highestPriority(c.mip & c.mie)
	if !ok {
		return false, 0
	}

	return true, c.ExecuteException(pc, cause, 0, true)
}

// highestPriority returns the cause of the highest priority interrupt in the
// pending bit field.
func highestPriority(pending uint32) (uint32, bool) {
	for _, cause := range InterruptPriority {
		if pending&(1<<cause) != 0 {
			return cause, true
		}
	}
	return 0, false
}
