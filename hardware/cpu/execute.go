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
	"github.com/gopherv/gopherv/hardware/memory/bus"
)

// integer register-immediate instructions

func (mc *CPU) addi(instr uint32) {
	mc.reg.Write(rd(instr), mc.reg.Read(rs1(instr))+immI(instr))
}

func (mc *CPU) slti(instr uint32) {
	mc.reg.Write(rd(instr), boolToWord(int32(mc.reg.Read(rs1(instr))) < int32(immI(instr))))
}

func (mc *CPU) sltiu(instr uint32) {
	mc.reg.Write(rd(instr), boolToWord(mc.reg.Read(rs1(instr)) < immI(instr)))
}

func (mc *CPU) xori(instr uint32) {
	mc.reg.Write(rd(instr), mc.reg.Read(rs1(instr))^immI(instr))
}

func (mc *CPU) ori(instr uint32) {
	mc.reg.Write(rd(instr), mc.reg.Read(rs1(instr))|immI(instr))
}

func (mc *CPU) andi(instr uint32) {
	mc.reg.Write(rd(instr), mc.reg.Read(rs1(instr))&immI(instr))
}

func (mc *CPU) slli(instr uint32) {
	mc.reg.Write(rd(instr), mc.reg.Read(rs1(instr))<<(immI(instr)&0x1f))
}

func (mc *CPU) srli(instr uint32) {
	mc.reg.Write(rd(instr), mc.reg.Read(rs1(instr))>>(immI(instr)&0x1f))
}

func (mc *CPU) srai(instr uint32) {
	mc.reg.Write(rd(instr), uint32(int32(mc.reg.Read(rs1(instr)))>>(immI(instr)&0x1f)))
}

// integer register-register instructions

func (mc *CPU) add(instr uint32) {
	mc.reg.Write(rd(instr), mc.reg.Read(rs1(instr))+mc.reg.Read(rs2(instr)))
}

func (mc *CPU) sub(instr uint32) {
	mc.reg.Write(rd(instr), mc.reg.Read(rs1(instr))-mc.reg.Read(rs2(instr)))
}

func (mc *CPU) sll(instr uint32) {
	mc.reg.Write(rd(instr), mc.reg.Read(rs1(instr))<<(mc.reg.Read(rs2(instr))&0x1f))
}

func (mc *CPU) slt(instr uint32) {
	mc.reg.Write(rd(instr), boolToWord(int32(mc.reg.Read(rs1(instr))) < int32(mc.reg.Read(rs2(instr)))))
}

func (mc *CPU) sltu(instr uint32) {
	mc.reg.Write(rd(instr), boolToWord(mc.reg.Read(rs1(instr)) < mc.reg.Read(rs2(instr))))
}

func (mc *CPU) xor(instr uint32) {
	mc.reg.Write(rd(instr), mc.reg.Read(rs1(instr))^mc.reg.Read(rs2(instr)))
}

func (mc *CPU) srl(instr uint32) {
	mc.reg.Write(rd(instr), mc.reg.Read(rs1(instr))>>(mc.reg.Read(rs2(instr))&0x1f))
}

func (mc *CPU) sra(instr uint32) {
	mc.reg.Write(rd(instr), uint32(int32(mc.reg.Read(rs1(instr)))>>(mc.reg.Read(rs2(instr))&0x1f)))
}

func (mc *CPU) or(instr uint32) {
	mc.reg.Write(rd(instr), mc.reg.Read(rs1(instr))|mc.reg.Read(rs2(instr)))
}

func (mc *CPU) and(instr uint32) {
	mc.reg.Write(rd(instr), mc.reg.Read(rs1(instr))&mc.reg.Read(rs2(instr)))
}

// multiply and divide instructions

func (mc *CPU) mul(instr uint32) {
	mc.reg.Write(rd(instr), mc.reg.Read(rs1(instr))*mc.reg.Read(rs2(instr)))
}

func (mc *CPU) mulh(instr uint32) {
	a := int64(int32(mc.reg.Read(rs1(instr))))
	b := int64(int32(mc.reg.Read(rs2(instr))))
	mc.reg.Write(rd(instr), uint32(uint64(a*b)>>32))
}

func (mc *CPU) mulhsu(instr uint32) {
	a := int64(int32(mc.reg.Read(rs1(instr))))
	b := int64(mc.reg.Read(rs2(instr)))
	mc.reg.Write(rd(instr), uint32(uint64(a*b)>>32))
}

func (mc *CPU) mulhu(instr uint32) {
	a := uint64(mc.reg.Read(rs1(instr)))
	b := uint64(mc.reg.Read(rs2(instr)))
	mc.reg.Write(rd(instr), uint32((a*b)>>32))
}

// signed division of the most negative value by -1 overflows. the quotient is
// the dividend and the remainder is zero, which is also how Go defines the
// result of the overflowing division.

func (mc *CPU) div(instr uint32) {
	a := int32(mc.reg.Read(rs1(instr)))
	b := int32(mc.reg.Read(rs2(instr)))
	if b == 0 {
		mc.reg.Write(rd(instr), 0xffffffff)
		return
	}
	mc.reg.Write(rd(instr), uint32(a/b))
}

func (mc *CPU) divu(instr uint32) {
	a := mc.reg.Read(rs1(instr))
	b := mc.reg.Read(rs2(instr))
	if b == 0 {
		mc.reg.Write(rd(instr), 0xffffffff)
		return
	}
	mc.reg.Write(rd(instr), a/b)
}

func (mc *CPU) rem(instr uint32) {
	a := int32(mc.reg.Read(rs1(instr)))
	b := int32(mc.reg.Read(rs2(instr)))
	if b == 0 {
		mc.reg.Write(rd(instr), uint32(a))
		return
	}
	mc.reg.Write(rd(instr), uint32(a%b))
}

func (mc *CPU) remu(instr uint32) {
	a := mc.reg.Read(rs1(instr))
	b := mc.reg.Read(rs2(instr))
	if b == 0 {
		mc.reg.Write(rd(instr), a)
		return
	}
	mc.reg.Write(rd(instr), a%b)
}

// upper immediate instructions

func (mc *CPU) lui(instr uint32) {
	mc.reg.Write(rd(instr), immU(instr))
}

func (mc *CPU) auipc(instr uint32) {
	mc.reg.Write(rd(instr), mc.pc.Address()+immU(instr))
}

// loads and stores

func (mc *CPU) load(instr uint32, size bus.DataSize, signed bool) {
	address := mc.reg.Read(rs1(instr)) + immI(instr)
	v, r := mc.mem.Read(address, size, false, signed)
	switch r {
	case bus.NotInRange:
		mc.raise(LoadAccessFault, address)
	case bus.Misaligned:
		mc.raise(LoadAddressMisaligned, address)
	default:
		mc.reg.Write(rd(instr), v)
	}
}

func (mc *CPU) lb(instr uint32) {
	mc.load(instr, bus.Byte, true)
}

func (mc *CPU) lh(instr uint32) {
	mc.load(instr, bus.HalfWord, true)
}

func (mc *CPU) lw(instr uint32) {
	mc.load(instr, bus.Word, false)
}

func (mc *CPU) lbu(instr uint32) {
	mc.load(instr, bus.Byte, false)
}

func (mc *CPU) lhu(instr uint32) {
	mc.load(instr, bus.HalfWord, false)
}

func (mc *CPU) store(instr uint32, size bus.DataSize) {
	address := mc.reg.Read(rs1(instr)) + immS(instr)
	switch mc.mem.Write(address, mc.reg.Read(rs2(instr)), size) {
	case bus.NotInRange:
		mc.raise(StoreAccessFault, address)
	case bus.Misaligned:
		mc.raise(StoreAddressMisaligned, address)
	}
}

func (mc *CPU) sb(instr uint32) {
	mc.store(instr, bus.Byte)
}

func (mc *CPU) sh(instr uint32) {
	mc.store(instr, bus.HalfWord)
}

func (mc *CPU) sw(instr uint32) {
	mc.store(instr, bus.Word)
}

// control transfer instructions. a misaligned target is trapped at the end of
// the clock, in which case the link register is left unchanged.

func (mc *CPU) branch(instr uint32, taken bool) {
	if taken {
		mc.newPC = mc.pc.Address() + immB(instr)
	}
}

func (mc *CPU) beq(instr uint32) {
	mc.branch(instr, mc.reg.Read(rs1(instr)) == mc.reg.Read(rs2(instr)))
}

func (mc *CPU) bne(instr uint32) {
	mc.branch(instr, mc.reg.Read(rs1(instr)) != mc.reg.Read(rs2(instr)))
}

func (mc *CPU) blt(instr uint32) {
	mc.branch(instr, int32(mc.reg.Read(rs1(instr))) < int32(mc.reg.Read(rs2(instr))))
}

func (mc *CPU) bge(instr uint32) {
	mc.branch(instr, int32(mc.reg.Read(rs1(instr))) >= int32(mc.reg.Read(rs2(instr))))
}

func (mc *CPU) bltu(instr uint32) {
	mc.branch(instr, mc.reg.Read(rs1(instr)) < mc.reg.Read(rs2(instr)))
}

func (mc *CPU) bgeu(instr uint32) {
	mc.branch(instr, mc.reg.Read(rs1(instr)) >= mc.reg.Read(rs2(instr)))
}

func (mc *CPU) jump(instr uint32, target uint32) {
	if target&0b11 == 0 {
		mc.reg.Write(rd(instr), mc.pc.Address()+4)
	}
	mc.newPC = target
}

func (mc *CPU) jal(instr uint32) {
	mc.jump(instr, mc.pc.Address()+immJ(instr))
}

func (mc *CPU) jalr(instr uint32) {
	mc.jump(instr, (mc.reg.Read(rs1(instr))+immI(instr))&^1)
}

// memory ordering is always strict so fence does nothing.
func (mc *CPU) fence(_ uint32) {
}

// system instructions

func (mc *CPU) ecall(_ uint32) {
	mc.raise(MEnvironmentCall, 0)
}

func (mc *CPU) ebreak(_ uint32) {
	mc.raise(EnvironmentBreak, 0)
}

func (mc *CPU) mret(_ uint32) {
	mc.newPC = mc.csr.ReturnException()
}

// csrSwap implements csrrw and csrrwi. the CSR is not read if the destination
// register is zero. the destination register is only written once every CSR
// access has succeeded.
func (mc *CPU) csrSwap(instr uint32, value uint32) {
	address := csrAddress(instr)

	var old uint32
	if rd(instr) != 0 {
		var ok bool
		old, ok = mc.csr.Read(address, false)
		if !ok {
			mc.raise(IllegalInstruction, instr)
			return
		}
	}

	if !mc.csr.Write(address, value) {
		mc.raise(IllegalInstruction, instr)
		return
	}

	mc.reg.Write(rd(instr), old)
}

// csrModify implements the set and clear variants of the CSR instructions.
// the CSR is always read but is only written if the mask operand is not
// register zero (or an immediate of zero).
func (mc *CPU) csrModify(instr uint32, mask uint32, write bool, f func(old, mask uint32) uint32) {
	address := csrAddress(instr)

	old, ok := mc.csr.Read(address, false)
	if !ok {
		mc.raise(IllegalInstruction, instr)
		return
	}

	if write && !mc.csr.Write(address, f(old, mask)) {
		mc.raise(IllegalInstruction, instr)
		return
	}

	mc.reg.Write(rd(instr), old)
}

func setBits(old, mask uint32) uint32 {
	return old | mask
}

func clearBits(old, mask uint32) uint32 {
	return old &^ mask
}

func (mc *CPU) csrrw(instr uint32) {
	mc.csrSwap(instr, mc.reg.Read(rs1(instr)))
}

func (mc *CPU) csrrs(instr uint32) {
	mc.csrModify(instr, mc.reg.Read(rs1(instr)), rs1(instr) != 0, setBits)
}

func (mc *CPU) csrrc(instr uint32) {
	mc.csrModify(instr, mc.reg.Read(rs1(instr)), rs1(instr) != 0, clearBits)
}

// the rs1 field of the immediate forms is a five bit unsigned immediate.

func (mc *CPU) csrrwi(instr uint32) {
	mc.csrSwap(instr, rs1(instr))
}

func (mc *CPU) csrrsi(instr uint32) {
	mc.csrModify(instr, rs1(instr), rs1(instr) != 0, setBits)
}

func (mc *CPU) csrrci(instr uint32) {
	mc.csrModify(instr, rs1(instr), rs1(instr) != 0, clearBits)
}

func boolToWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
