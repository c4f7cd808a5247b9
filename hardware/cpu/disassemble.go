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
)

func hex(v uint32) string {
	return fmt.Sprintf("0x%08x", v)
}

// Disassemble returns the instruction word as assembly text. Words that do not
// decode to a legal instruction are returned as "???".
//
// Disassembly has no side effects and does not require a CPU instance.
func Disassemble(instr uint32) string {
	ins := Decode(instr)
	if !ins.Valid() {
		return ins.Mnemonic
	}

	reg := registers.Name

	var operands string
	switch ins.Operands {
	case NoOperands:
		return ins.Mnemonic
	case Immediate:
		operands = fmt.Sprintf("%s, %s, %s", reg(rd(instr)), reg(rs1(instr)), hex(immI(instr)))
	case Shift:
		operands = fmt.Sprintf("%s, %s, %d", reg(rd(instr)), reg(rs1(instr)), immI(instr)&0x1f)
	case Register:
		operands = fmt.Sprintf("%s, %s, %s", reg(rd(instr)), reg(rs1(instr)), reg(rs2(instr)))
	case Load:
		operands = fmt.Sprintf("%s, %s(%s)", reg(rd(instr)), hex(immI(instr)), reg(rs1(instr)))
	case Store:
		operands = fmt.Sprintf("%s, %s(%s)", reg(rs2(instr)), hex(immS(instr)), reg(rs1(instr)))
	case Upper:
		operands = fmt.Sprintf("%s, %s", reg(rd(instr)), hex(immU(instr)))
	case Branch:
		operands = fmt.Sprintf("%s, %s, %s", reg(rs1(instr)), reg(rs2(instr)), hex(immB(instr)))
	case Jump:
		operands = fmt.Sprintf("%s, %s", reg(rd(instr)), hex(immJ(instr)))
	case Fence:
		imm := immI(instr)
		operands = fmt.Sprintf("%d, %d", (imm>>4)&0x0f, imm&0x0f)
	case CSRRegister:
		operands = fmt.Sprintf("%s, %s, %s", reg(rd(instr)), csr.Name(csrAddress(instr)), reg(rs1(instr)))
	case CSRImmediate:
		operands = fmt.Sprintf("%s, %s, %d", reg(rd(instr)), csr.Name(csrAddress(instr)), rs1(instr))
	}

	return fmt.Sprintf("%s %s", ins.Mnemonic, operands)
}

// DisassembleNext disassembles the instruction at the PC without side
// effects. The second return value is false if the PC does not point to
// readable memory.
func (mc *CPU) DisassembleNext() (string, bool) {
	instr, ok := mc.Peek()
	if !ok {
		return "", false
	}
	return Disassemble(instr), true
}
