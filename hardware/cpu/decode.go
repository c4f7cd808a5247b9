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

func decodeIllegal(_ uint32) Instruction {
	return illegal
}

func decodeLoad(instr uint32) Instruction {
	switch func3(instr) {
	case 0b000:
		return Instruction{"lb", Load, (*CPU).lb}
	case 0b001:
		return Instruction{"lh", Load, (*CPU).lh}
	case 0b010:
		return Instruction{"lw", Load, (*CPU).lw}
	case 0b100:
		return Instruction{"lbu", Load, (*CPU).lbu}
	case 0b101:
		return Instruction{"lhu", Load, (*CPU).lhu}
	}
	return illegal
}

func decodeStore(instr uint32) Instruction {
	switch func3(instr) {
	case 0b000:
		return Instruction{"sb", Store, (*CPU).sb}
	case 0b001:
		return Instruction{"sh", Store, (*CPU).sh}
	case 0b010:
		return Instruction{"sw", Store, (*CPU).sw}
	}
	return illegal
}

func decodeOpImm(instr uint32) Instruction {
	switch func3(instr) {
	case 0b000:
		return Instruction{"addi", Immediate, (*CPU).addi}
	case 0b010:
		return Instruction{"slti", Immediate, (*CPU).slti}
	case 0b011:
		return Instruction{"sltiu", Immediate, (*CPU).sltiu}
	case 0b100:
		return Instruction{"xori", Immediate, (*CPU).xori}
	case 0b110:
		return Instruction{"ori", Immediate, (*CPU).ori}
	case 0b111:
		return Instruction{"andi", Immediate, (*CPU).andi}
	case 0b001:
		if func7(instr) == 0b0000000 {
			return Instruction{"slli", Shift, (*CPU).slli}
		}
	case 0b101:
		switch func7(instr) {
		case 0b0000000:
			return Instruction{"srli", Shift, (*CPU).srli}
		case 0b0100000:
			return Instruction{"srai", Shift, (*CPU).srai}
		}
	}
	return illegal
}

func decodeOp(instr uint32) Instruction {
	switch func7(instr) {
	case 0b0000000:
		switch func3(instr) {
		case 0b000:
			return Instruction{"add", Register, (*CPU).add}
		case 0b001:
			return Instruction{"sll", Register, (*CPU).sll}
		case 0b010:
			return Instruction{"slt", Register, (*CPU).slt}
		case 0b011:
			return Instruction{"sltu", Register, (*CPU).sltu}
		case 0b100:
			return Instruction{"xor", Register, (*CPU).xor}
		case 0b101:
			return Instruction{"srl", Register, (*CPU).srl}
		case 0b110:
			return Instruction{"or", Register, (*CPU).or}
		case 0b111:
			return Instruction{"and", Register, (*CPU).and}
		}
	case 0b0100000:
		switch func3(instr) {
		case 0b000:
			return Instruction{"sub", Register, (*CPU).sub}
		case 0b101:
			return Instruction{"sra", Register, (*CPU).sra}
		}
	case 0b0000001:
		// M extension
		switch func3(instr) {
		case 0b000:
			return Instruction{"mul", Register, (*CPU).mul}
		case 0b001:
			return Instruction{"mulh", Register, (*CPU).mulh}
		case 0b010:
			return Instruction{"mulhsu", Register, (*CPU).mulhsu}
		case 0b011:
			return Instruction{"mulhu", Register, (*CPU).mulhu}
		case 0b100:
			return Instruction{"div", Register, (*CPU).div}
		case 0b101:
			return Instruction{"divu", Register, (*CPU).divu}
		case 0b110:
			return Instruction{"rem", Register, (*CPU).rem}
		case 0b111:
			return Instruction{"remu", Register, (*CPU).remu}
		}
	}
	return illegal
}

func decodeLui(_ uint32) Instruction {
	return Instruction{"lui", Upper, (*CPU).lui}
}

func decodeAuipc(_ uint32) Instruction {
	return Instruction{"auipc", Upper, (*CPU).auipc}
}

func decodeBranch(instr uint32) Instruction {
	switch func3(instr) {
	case 0b000:
		return Instruction{"beq", Branch, (*CPU).beq}
	case 0b001:
		return Instruction{"bne", Branch, (*CPU).bne}
	case 0b100:
		return Instruction{"blt", Branch, (*CPU).blt}
	case 0b101:
		return Instruction{"bge", Branch, (*CPU).bge}
	case 0b110:
		return Instruction{"bltu", Branch, (*CPU).bltu}
	case 0b111:
		return Instruction{"bgeu", Branch, (*CPU).bgeu}
	}
	return illegal
}

func decodeJal(_ uint32) Instruction {
	return Instruction{"jal", Jump, (*CPU).jal}
}

func decodeJalr(instr uint32) Instruction {
	if func3(instr) != 0b000 {
		return illegal
	}
	return Instruction{"jalr", Immediate, (*CPU).jalr}
}

func decodeMiscMem(instr uint32) Instruction {
	if func3(instr) != 0b000 {
		return illegal
	}
	return Instruction{"fence", Fence, (*CPU).fence}
}

func decodeSystem(instr uint32) Instruction {
	switch func3(instr) {
	case 0b000:
		if rd(instr) != 0 || rs1(instr) != 0 {
			break
		}
		switch func7(instr) {
		case 0b0000000:
			switch rs2(instr) {
			case 0:
				return Instruction{"ecall", NoOperands, (*CPU).ecall}
			case 1:
				return Instruction{"ebreak", NoOperands, (*CPU).ebreak}
			}
		case 0b0011000:
			if rs2(instr) == 2 {
				return Instruction{"mret", NoOperands, (*CPU).mret}
			}
		}
	case 0b001:
		return Instruction{"csrrw", CSRRegister, (*CPU).csrrw}
	case 0b010:
		return Instruction{"csrrs", CSRRegister, (*CPU).csrrs}
	case 0b011:
		return Instruction{"csrrc", CSRRegister, (*CPU).csrrc}
	case 0b101:
		return Instruction{"csrrwi", CSRImmediate, (*CPU).csrrwi}
	case 0b110:
		return Instruction{"csrrsi", CSRImmediate, (*CPU).csrrsi}
	case 0b111:
		return Instruction{"csrrci", CSRImmediate, (*CPU).csrrci}
	}
	return illegal
}
