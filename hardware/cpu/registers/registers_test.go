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

package registers_test

import (
	"testing"

	"github.com/gopherv/gopherv/hardware/cpu/registers"
	"github.com/gopherv/gopherv/test"
)

func TestZeroRegister(t *testing.T) {
	var r registers.Registers
	r.Write(registers.Zero, 0xdeadbeef)
	test.ExpectEquality(t, r.Read(registers.Zero), uint32(0))

	for i := uint32(1); i < registers.NumRegisters; i++ {
		r.Write(i, i*3)
	}
	for i := uint32(1); i < registers.NumRegisters; i++ {
		test.ExpectEquality(t, r.Read(i), i*3, i)
	}

	r.Reset()
	for i := uint32(0); i < registers.NumRegisters; i++ {
		test.ExpectEquality(t, r.Read(i), uint32(0), i)
	}
}

func TestNames(t *testing.T) {
	test.ExpectEquality(t, registers.Name(0), "zero")
	test.ExpectEquality(t, registers.Name(registers.SP), "sp")
	test.ExpectEquality(t, registers.Name(registers.A0), "a0")
	test.ExpectEquality(t, registers.Name(8), "s0")
	test.ExpectEquality(t, registers.Name(18), "s2")
	test.ExpectEquality(t, registers.Name(27), "s11")
	test.ExpectEquality(t, registers.Name(31), "t6")
	test.ExpectEquality(t, registers.Name(32), "???")

	for i := uint32(0); i < registers.NumRegisters; i++ {
		n, ok := registers.Lookup(registers.Name(i))
		test.ExpectSuccess(t, ok, i)
		test.ExpectEquality(t, n, i)
	}

	n, ok := registers.Lookup("x17")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, uint32(registers.A7))

	n, ok = registers.Lookup(" FP")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, uint32(8))

	_, ok = registers.Lookup("x32")
	test.ExpectFailure(t, ok)
	_, ok = registers.Lookup("q1")
	test.ExpectFailure(t, ok)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), uint32(0))

	pc.Load(0x00400000)
	test.ExpectFailure(t, pc.Add(4))
	test.ExpectEquality(t, pc.Address(), uint32(0x00400004))
	test.ExpectEquality(t, pc.String(), "00400004")

	pc.Load(0xfffffffc)
	test.ExpectSuccess(t, pc.Add(4))
	test.ExpectEquality(t, pc.Address(), uint32(0))
}

func TestString(t *testing.T) {
	var r registers.Registers
	r.Write(registers.RA, 0x12)
	s := r.String()
	test.ExpectEquality(t, s[:27], "zero=00000000   ra=00000012")
}
