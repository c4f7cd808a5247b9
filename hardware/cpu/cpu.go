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

package cpu

import (
	"fmt"

	"github.com/gopherv/gopherv/hardware/cpu/csr"
	"github.com/gopherv/gopherv/hardware/cpu/registers"
	"github.com/gopherv/gopherv/hardware/memory/bus"
	"github.com/gopherv/gopherv/hardware/memory/memorymap"
	"github.com/gopherv/gopherv/logger"
)

// Memory defines the memory operations required by the CPU. The bus.Bus type
// satisfies this interface.
type Memory interface {
	Read(address uint32, size bus.DataSize, readOnly bool, signed bool) (uint32, bus.AccessResult)
	Write(address uint32, data uint32, size bus.DataSize) bus.AccessResult
}

// CPU implements a single RV32IM hart running in machine mode.
type CPU struct {
	perm logger.Permission
	mem  Memory

	// the CPU is the sole owner of the CSR file
	csr *csr.CSR

	reg registers.Registers
	pc  registers.ProgramCounter

	// the address of the next instruction if no trap is taken. set to PC+4
	// at the start of every clock
	newPC uint32

	// the highest priority exception raised during the current clock and its
	// trap value
	exception      Exception
	exceptionValue uint32

	// the instruction word fetched by the most recent clock and the exception
	// that it raised
	lastInstruction uint32
	lastException   Exception

	cycle   uint64
	instret uint64
}

// NewCPU is the preferred method of initialisation for the CPU type.
//
// Trap entries are logged when the permission allows it. A nil permission is
// the same as logger.Deny. The ext and tmr
// arguments are the interrupt sources presented to the CSR file; either may be
// nil. The onDebug function is called when a program reads the debug CSR and
// may also be nil.
//
// The CPU is not reset by this function. Reset() must be called before the
// first call to Clock().
func NewCPU(perm logger.Permission, mem Memory, ext csr.ExternalInterrupt, tmr csr.Timer, onDebug func()) *CPU {
	if perm == nil {
		perm = logger.Deny
	}

	mc := &CPU{
		perm:          perm,
		mem:           mem,
		exception:     NoException,
		lastException: NoException,
	}
	mc.csr = csr.NewCSR(ext, tmr, mc, onDebug)
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s", mc.pc.Label(), mc.pc, mc.csr)
}

// Reset the CPU. The PC is set to the origin of the text area, the registers
// and counters are cleared and interrupts are disabled.
func (mc *CPU) Reset() {
	mc.pc.Load(memorymap.OriginText)
	mc.reg.Reset()
	mc.csr.Reset(0)
	mc.cycle = 0
	mc.instret = 0
	mc.exception = NoException
	mc.lastException = NoException
	mc.lastInstruction = 0
}

// Clock executes exactly one instruction. If the instruction raises an
// exception then the trap is taken and the PC is set to the trap handler.
// Interrupts are checked at the end of every clock.
//
// Clock panics if the PC is misaligned when the instruction is fetched. This
// can only happen if the PC was changed with SetPC().
func (mc *CPU) Clock() {
	mc.exception = NoException
	mc.exceptionValue = 0

	pc := mc.pc.Address()
	mc.newPC = pc + 4

	instr, r := mc.mem.Read(pc, bus.Word, false, false)
	switch r {
	case bus.NotInRange:
		mc.raise(InstructionAccessFault, pc)
	case bus.Misaligned:
		panic(fmt.Sprintf("cpu: misaligned instruction fetch at %08x", pc))
	default:
		mc.lastInstruction = instr
		ins := Decode(instr)
		if ins.Valid() {
			ins.execute(mc, instr)
		} else {
			mc.raise(IllegalInstruction, instr)
		}
	}

	if mc.newPC&0b11 != 0 {
		mc.raise(InstructionAddressMisaligned, mc.newPC)
	}

	mc.cycle++

	if mc.exception != NoException {
		logger.Logf(mc.perm, "cpu", "%s (%08x) at %08x", mc.exception, mc.exceptionValue, pc)
		mc.pc.Load(mc.csr.ExecuteException(pc, mc.exception.Cause(), mc.exceptionValue, false))
	} else {
		mc.instret++
		mc.pc.Load(mc.newPC)
	}
	mc.lastException = mc.exception

	// checking interrupts against the PC chosen above means that an interrupt
	// pending when mret executes is taken with mepc pointing to the mret
	// target
	if taken, handler := mc.csr.CheckInterrupts(mc.pc.Address()); taken {
		mc.pc.Load(handler)
	}
}

// raise an exception. the exception is only recorded if it has a higher
// priority than any exception already raised during the clock.
func (mc *CPU) raise(e Exception, value uint32) {
	if e.Outranks(mc.exception) {
		mc.exception = e
		mc.exceptionValue = value
	}
}

// ReadReg returns the value of the integer register. Register zero always
// reads as zero.
func (mc *CPU) ReadReg(reg uint32) uint32 {
	return mc.reg.Read(reg)
}

// WriteReg sets the value of the integer register. Writes to register zero are
// ignored.
func (mc *CPU) WriteReg(reg uint32, value uint32) {
	mc.reg.Write(reg, value)
}

// Registers returns a copy of the register file.
func (mc *CPU) Registers() registers.Registers {
	return mc.reg
}

// PC returns the address of the next instruction to be executed.
func (mc *CPU) PC() uint32 {
	return mc.pc.Address()
}

// SetPC sets the address of the next instruction to be executed. The address
// must be a multiple of four.
func (mc *CPU) SetPC(pc uint32) {
	mc.pc.Load(pc)
}

// CSR returns the CSR file owned by the CPU.
func (mc *CPU) CSR() *csr.CSR {
	return mc.csr
}

// Cycle implements the csr.Counters interface. It returns the number of
// clocks since the last reset.
func (mc *CPU) Cycle() uint64 {
	return mc.cycle
}

// Instret implements the csr.Counters interface. It returns the number of
// instructions that completed without an exception since the last reset.
func (mc *CPU) Instret() uint64 {
	return mc.instret
}

// LastException returns the exception raised by the most recent clock.
func (mc *CPU) LastException() Exception {
	return mc.lastException
}

// LastInstruction returns the instruction word fetched by the most recent
// clock.
func (mc *CPU) LastInstruction() uint32 {
	return mc.lastInstruction
}

// Peek returns the instruction word at the PC without any side effects.
func (mc *CPU) Peek() (uint32, bool) {
	v, r := mc.mem.Read(mc.pc.Address(), bus.Word, true, false)
	return v, r == bus.Success
}
