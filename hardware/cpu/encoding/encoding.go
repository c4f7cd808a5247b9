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

// Package encoding builds RV32IM instruction words. It is the inverse of the
// decoder in the cpu package and is used to create programs for tests and
// for the machine's built-in demonstration images.
//
// Instructions are encoded by mnemonic with the operands in the same order
// as they appear in disassembly:
//
//	addi, _ := encoding.Encode("addi", registers.A0, registers.Zero, 42)
//	sw, _ := encoding.Encode("sw", registers.A0, registers.SP, -4)
//
// Load and store operands are given as register, base register, offset.
package encoding

import (
	"strings"

	"github.com/gopherv/gopherv/curated"
)

// Major opcodes.
const (
	OpLoad    = 0b0000011
	OpMiscMem = 0b0001111
	OpImm     = 0b0010011
	OpAuipc   = 0b0010111
	OpStore   = 0b0100011
	Op        = 0b0110011
	OpLui     = 0b0110111
	OpBranch  = 0b1100011
	OpJalr    = 0b1100111
	OpJal     = 0b1101111
	OpSystem  = 0b1110011
)

// R builds an R-type instruction word.
func R(opcode, rd, funct3, rs1, rs2, funct7 uint32) uint32 {
	return opcode&0x7f | (rd&0x1f)<<7 | (funct3&0x7)<<12 | (rs1&0x1f)<<15 | (rs2&0x1f)<<20 | (funct7&0x7f)<<25
}

// I builds an I-type instruction word. Only the lower 12 bits of the
// immediate are used.
func I(opcode, rd, funct3, rs1 uint32, imm int32) uint32 {
	return opcode&0x7f | (rd&0x1f)<<7 | (funct3&0x7)<<12 | (rs1&0x1f)<<15 | (uint32(imm)&0xfff)<<20
}

// S builds an S-type instruction word.
func S(opcode, funct3, rs1, rs2 uint32, imm int32) uint32 {
	v := uint32(imm)
	return opcode&0x7f | (v&0x1f)<<7 | (funct3&0x7)<<12 | (rs1&0x1f)<<15 | (rs2&0x1f)<<20 | ((v>>5)&0x7f)<<25
}

// B builds a B-type instruction word. The offset must be even.
func B(opcode, funct3, rs1, rs2 uint32, imm int32) uint32 {
	v := uint32(imm)
	return opcode&0x7f |
		((v>>11)&0x1)<<7 | ((v>>1)&0xf)<<8 |
		(funct3&0x7)<<12 | (rs1&0x1f)<<15 | (rs2&0x1f)<<20 |
		((v>>5)&0x3f)<<25 | ((v>>12)&0x1)<<31
}

// U builds a U-type instruction word. The immediate is the value of the upper
// 20 bits.
func U(opcode, rd, imm uint32) uint32 {
	return opcode&0x7f | (rd&0x1f)<<7 | (imm&0xfffff)<<12
}

// J builds a J-type instruction word. The offset must be even.
func J(opcode, rd uint32, imm int32) uint32 {
	v := uint32(imm)
	return opcode&0x7f | (rd&0x1f)<<7 |
		((v>>12)&0xff)<<12 | ((v>>11)&0x1)<<20 |
		((v>>1)&0x3ff)<<21 | ((v>>20)&0x1)<<31
}

type format int

const (
	formatR format = iota
	formatI
	formatShift
	formatLoad
	formatS
	formatB
	formatU
	formatJ
	formatFence
	formatCSR
	formatNone
)

// number of operands for each format.
var operandCount = map[format]int{
	formatR:     3,
	formatI:     3,
	formatShift: 3,
	formatLoad:  3,
	formatS:     3,
	formatB:     3,
	formatU:     2,
	formatJ:     2,
	formatFence: 2,
	formatCSR:   3,
	formatNone:  0,
}

type definition struct {
	format format
	opcode uint32
	funct3 uint32

	// funct7 for R-type instructions and the upper bits of the immediate for
	// shifts and the system instructions
	funct7 uint32

	// the rs2 field of the system instructions
	rs2 uint32
}

var definitions = map[string]definition{
	"lb":  {format: formatLoad, opcode: OpLoad, funct3: 0b000},
	"lh":  {format: formatLoad, opcode: OpLoad, funct3: 0b001},
	"lw":  {format: formatLoad, opcode: OpLoad, funct3: 0b010},
	"lbu": {format: formatLoad, opcode: OpLoad, funct3: 0b100},
	"lhu": {format: formatLoad, opcode: OpLoad, funct3: 0b101},

	"sb": {format: formatS, opcode: OpStore, funct3: 0b000},
	"sh": {format: formatS, opcode: OpStore, funct3: 0b001},
	"sw": {format: formatS, opcode: OpStore, funct3: 0b010},

	"addi":  {format: formatI, opcode: OpImm, funct3: 0b000},
	"slti":  {format: formatI, opcode: OpImm, funct3: 0b010},
	"sltiu": {format: formatI, opcode: OpImm, funct3: 0b011},
	"xori":  {format: formatI, opcode: OpImm, funct3: 0b100},
	"ori":   {format: formatI, opcode: OpImm, funct3: 0b110},
	"andi":  {format: formatI, opcode: OpImm, funct3: 0b111},
	"slli":  {format: formatShift, opcode: OpImm, funct3: 0b001},
	"srli":  {format: formatShift, opcode: OpImm, funct3: 0b101},
	"srai":  {format: formatShift, opcode: OpImm, funct3: 0b101, funct7: 0b0100000},

	"add":  {format: formatR, opcode: Op, funct3: 0b000},
	"sub":  {format: formatR, opcode: Op, funct3: 0b000, funct7: 0b0100000},
	"sll":  {format: formatR, opcode: Op, funct3: 0b001},
	"slt":  {format: formatR, opcode: Op, funct3: 0b010},
	"sltu": {format: formatR, opcode: Op, funct3: 0b011},
	"xor":  {format: formatR, opcode: Op, funct3: 0b100},
	"srl":  {format: formatR, opcode: Op, funct3: 0b101},
	"sra":  {format: formatR, opcode: Op, funct3: 0b101, funct7: 0b0100000},
	"or":   {format: formatR, opcode: Op, funct3: 0b110},
	"and":  {format: formatR, opcode: Op, funct3: 0b111},

	"mul":    {format: formatR, opcode: Op, funct3: 0b000, funct7: 0b0000001},
	"mulh":   {format: formatR, opcode: Op, funct3: 0b001, funct7: 0b0000001},
	"mulhsu": {format: formatR, opcode: Op, funct3: 0b010, funct7: 0b0000001},
	"mulhu":  {format: formatR, opcode: Op, funct3: 0b011, funct7: 0b0000001},
	"div":    {format: formatR, opcode: Op, funct3: 0b100, funct7: 0b0000001},
	"divu":   {format: formatR, opcode: Op, funct3: 0b101, funct7: 0b0000001},
	"rem":    {format: formatR, opcode: Op, funct3: 0b110, funct7: 0b0000001},
	"remu":   {format: formatR, opcode: Op, funct3: 0b111, funct7: 0b0000001},

	"lui":   {format: formatU, opcode: OpLui},
	"auipc": {format: formatU, opcode: OpAuipc},

	"beq":  {format: formatB, opcode: OpBranch, funct3: 0b000},
	"bne":  {format: formatB, opcode: OpBranch, funct3: 0b001},
	"blt":  {format: formatB, opcode: OpBranch, funct3: 0b100},
	"bge":  {format: formatB, opcode: OpBranch, funct3: 0b101},
	"bltu": {format: formatB, opcode: OpBranch, funct3: 0b110},
	"bgeu": {format: formatB, opcode: OpBranch, funct3: 0b111},

	"jal":  {format: formatJ, opcode: OpJal},
	"jalr": {format: formatI, opcode: OpJalr, funct3: 0b000},

	"fence": {format: formatFence, opcode: OpMiscMem, funct3: 0b000},

	"ecall":  {format: formatNone, opcode: OpSystem, rs2: 0},
	"ebreak": {format: formatNone, opcode: OpSystem, rs2: 1},
	"mret":   {format: formatNone, opcode: OpSystem, funct7: 0b0011000, rs2: 2},

	"csrrw":  {format: formatCSR, opcode: OpSystem, funct3: 0b001},
	"csrrs":  {format: formatCSR, opcode: OpSystem, funct3: 0b010},
	"csrrc":  {format: formatCSR, opcode: OpSystem, funct3: 0b011},
	"csrrwi": {format: formatCSR, opcode: OpSystem, funct3: 0b101},
	"csrrsi": {format: formatCSR, opcode: OpSystem, funct3: 0b110},
	"csrrci": {format: formatCSR, opcode: OpSystem, funct3: 0b111},
}

// Encode the instruction with the operands. The number of operands must be
// correct for the instruction.
func Encode(mnemonic string, operands ...int32) (uint32, error) {
	defn, ok := definitions[strings.ToLower(mnemonic)]
	if !ok {
		return 0, curated.Errorf("encoding: unknown instruction: %s", mnemonic)
	}

	if len(operands) != operandCount[defn.format] {
		return 0, curated.Errorf("encoding: %s: wrong number of operands (%d)", mnemonic, len(operands))
	}

	op := func(i int) uint32 {
		return uint32(operands[i])
	}

	switch defn.format {
	case formatR:
		return R(defn.opcode, op(0), defn.funct3, op(1), op(2), defn.funct7), nil
	case formatI, formatLoad:
		return I(defn.opcode, op(0), defn.funct3, op(1), operands[2]), nil
	case formatShift:
		return I(defn.opcode, op(0), defn.funct3, op(1), int32(defn.funct7<<5|op(2)&0x1f)), nil
	case formatS:
		return S(defn.opcode, defn.funct3, op(1), op(0), operands[2]), nil
	case formatB:
		return B(defn.opcode, defn.funct3, op(0), op(1), operands[2]), nil
	case formatU:
		return U(defn.opcode, op(0), op(1)), nil
	case formatJ:
		return J(defn.opcode, op(0), operands[1]), nil
	case formatFence:
		return I(defn.opcode, 0, defn.funct3, 0, int32((op(0)&0xf)<<4|op(1)&0xf)), nil
	case formatCSR:
		return I(defn.opcode, op(0), defn.funct3, op(2), int32(op(1)&0xfff)), nil
	case formatNone:
		return R(defn.opcode, 0, defn.funct3, 0, defn.rs2, defn.funct7), nil
	}

	return 0, curated.Errorf("encoding: %s: unsupported format", mnemonic)
}

// MustEncode is like Encode but panics on error. Intended for building test
// programs from literal instructions.
func MustEncode(mnemonic string, operands ...int32) uint32 {
	v, err := Encode(mnemonic, operands...)
	if err != nil {
		panic(err)
	}
	return v
}
