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

// Operands describes how the operands of an instruction are presented in
// disassembly.
type Operands int

// List of valid Operands values.
const (
	NoOperands   Operands = iota // mnemonic only
	Immediate                    // rd, rs1, imm
	Shift                        // rd, rs1, shamt
	Register                     // rd, rs1, rs2
	Load                         // rd, imm(rs1)
	Store                        // rs2, imm(rs1)
	Upper                        // rd, imm
	Branch                       // rs1, rs2, imm
	Jump                         // rd, imm
	Fence                        // pred, succ
	CSRRegister                  // rd, csr, rs1
	CSRImmediate                 // rd, csr, uimm
)

// Instruction is a decoded instruction.
type Instruction struct {
	Mnemonic string
	Operands Operands

	// execute the instruction with the instruction word as the argument. nil
	// for an illegal instruction
	execute func(mc *CPU, instr uint32)
}

// Valid returns false if the instruction word could not be decoded.
func (ins Instruction) Valid() bool {
	return ins.execute != nil
}

// the result of decoding an illegal instruction.
var illegal = Instruction{Mnemonic: "???"}

// decoders indexed by bits [6:2] of the opcode. the lowest two bits of the
// opcode must be 0b11 and are checked before the table is consulted.
var decoders = [32]func(instr uint32) Instruction{
	0b00000: decodeLoad,
	0b00011: decodeMiscMem,
	0b00100: decodeOpImm,
	0b00101: decodeAuipc,
	0b01000: decodeStore,
	0b01100: decodeOp,
	0b01101: decodeLui,
	0b11000: decodeBranch,
	0b11001: decodeJalr,
	0b11011: decodeJal,
	0b11100: decodeSystem,
}

func init() {
	for i := range decoders {
		if decoders[i] == nil {
			decoders[i] = decodeIllegal
		}
	}
}

// Decode the instruction word. The Valid() function of the returned
// Instruction will be false if the word is not a legal instruction.
func Decode(instr uint32) Instruction {
	if instr&0b11 != 0b11 {
		return illegal
	}
	return decoders[opcode(instr)>>2](instr)
}
