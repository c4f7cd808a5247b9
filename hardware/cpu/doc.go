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

// Package cpu emulates a 32-bit RISC-V processor implementing the RV32I base
// integer instruction set and the M extension, with a machine mode trap model
// provided by the csr sub-package.
//
// The CPU executes exactly one instruction for every call to Clock(). The
// instruction is fetched from the Memory interface at the program counter,
// decoded by looking up bits [6:2] of the opcode in a table of decoders and
// then executed. A synchronous exception raised during the clock is turned
// into a trap at the end of the clock. Interrupts are checked after that.
//
// Let's assume mem is an implementation of the Memory interface with a
// program loaded at the text origin:
//
//	mc := cpu.NewCPU(logger.Allow, mem, nil, nil, nil)
//	mc.Reset()
//
//	for mc.LastException() == cpu.NoException {
//		mc.Clock()
//	}
//
// Instructions can be disassembled without affecting the state of the CPU
// with the Disassemble() function.
package cpu
