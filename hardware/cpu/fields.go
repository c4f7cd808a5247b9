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

// fields of the instruction word common to all encodings.

func opcode(instr uint32) uint32 {
	return instr & 0x7f
}

func rd(instr uint32) uint32 {
	return (instr >> 7) & 0x1f
}

func func3(instr uint32) uint32 {
	return (instr >> 12) & 0x07
}

func rs1(instr uint32) uint32 {
	return (instr >> 15) & 0x1f
}

func rs2(instr uint32) uint32 {
	return (instr >> 20) & 0x1f
}

func func7(instr uint32) uint32 {
	return instr >> 25
}

// the CSR address of the Zicsr instructions. it is never sign extended.
func csrAddress(instr uint32) uint32 {
	return instr >> 20
}

// signExtend treats the lower number of bits of v as a two's complement value
// and extends the sign to the full 32 bits.
func signExtend(v uint32, bits uint) uint32 {
	shift := 32 - bits
	return uint32(int32(v<<shift) >> shift)
}

// immI extracts the 12 bit immediate of I-type instructions.
func immI(instr uint32) uint32 {
	return signExtend(instr>>20, 12)
}

// immS extracts the 12 bit immediate of S-type instructions.
func immS(instr uint32) uint32 {
	imm := ((instr >> 25) << 5) | ((instr >> 7) & 0x1f)
	return signExtend(imm, 12)
}

// immB extracts the 13 bit immediate of B-type instructions. bit zero is
// always zero.
func immB(instr uint32) uint32 {
	imm := (((instr >> 31) & 0x01) << 12) |
		(((instr >> 7) & 0x01) << 11) |
		(((instr >> 25) & 0x3f) << 5) |
		(((instr >> 8) & 0x0f) << 1)
	return signExtend(imm, 13)
}

// immU extracts the immediate of U-type instructions. the immediate occupies
// the upper 20 bits and so is already in position.
func immU(instr uint32) uint32 {
	return instr &^ 0xfff
}

// immJ extracts the 21 bit immediate of J-type instructions. bit zero is
// always zero.
func immJ(instr uint32) uint32 {
	imm := (((instr >> 31) & 0x01) << 20) |
		(((instr >> 12) & 0xff) << 12) |
		(((instr >> 20) & 0x01) << 11) |
		(((instr >> 21) & 0x3ff) << 1)
	return signExtend(imm, 21)
}
