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

package ram_test

import (
	"testing"

	"github.com/gopherv/gopherv/curated"
	"github.com/gopherv/gopherv/hardware/memory/bus"
	"github.com/gopherv/gopherv/hardware/memory/ram"
	"github.com/gopherv/gopherv/test"
)

func TestLittleEndian(t *testing.T) {
	mem := ram.NewRAM(0x1000, 0x1fff)

	test.ExpectEquality(t, mem.Write(0x1000, 0x80c0e0f0, bus.Word), bus.Success)

	for i, b := range []uint32{0xf0, 0xe0, 0xc0, 0x80} {
		v, r := mem.Read(0x1000+uint32(i), bus.Byte, false, false)
		test.ExpectEquality(t, r, bus.Success, i)
		test.ExpectEquality(t, v, b, i)
	}

	v, _ := mem.Read(0x1000, bus.HalfWord, false, false)
	test.ExpectEquality(t, v, uint32(0xe0f0))
	v, _ = mem.Read(0x1002, bus.HalfWord, false, false)
	test.ExpectEquality(t, v, uint32(0x80c0))
}

func TestSignExtension(t *testing.T) {
	mem := ram.NewRAM(0x1000, 0x1fff)
	test.ExpectEquality(t, mem.Write(0x1000, 0x00807f80, bus.Word), bus.Success)

	v, _ := mem.Read(0x1000, bus.Byte, false, true)
	test.ExpectEquality(t, v, uint32(0xffffff80))
	v, _ = mem.Read(0x1000, bus.Byte, false, false)
	test.ExpectEquality(t, v, uint32(0x80))
	v, _ = mem.Read(0x1001, bus.Byte, false, true)
	test.ExpectEquality(t, v, uint32(0x7f))

	v, _ = mem.Read(0x1000, bus.HalfWord, false, true)
	test.ExpectEquality(t, v, uint32(0x7f80))
	v, _ = mem.Read(0x1002, bus.HalfWord, false, true)
	test.ExpectEquality(t, v, uint32(0x80))

	test.ExpectEquality(t, mem.Write(0x1002, 0x8000, bus.HalfWord), bus.Success)
	v, _ = mem.Read(0x1002, bus.HalfWord, false, true)
	test.ExpectEquality(t, v, uint32(0xffff8000))
	v, _ = mem.Read(0x1002, bus.HalfWord, false, false)
	test.ExpectEquality(t, v, uint32(0x8000))
}

func TestNarrowWrites(t *testing.T) {
	mem := ram.NewRAM(0x1000, 0x1fff)
	test.ExpectEquality(t, mem.Write(0x1000, 0xffffffff, bus.Word), bus.Success)
	test.ExpectEquality(t, mem.Write(0x1001, 0x12345600, bus.Byte), bus.Success)
	test.ExpectEquality(t, mem.Write(0x1002, 0xabcd1234, bus.HalfWord), bus.Success)

	v, _ := mem.Read(0x1000, bus.Word, false, false)
	test.ExpectEquality(t, v, uint32(0x123400ff))
}

func TestAlignment(t *testing.T) {
	mem := ram.NewRAM(0x1000, 0x1fff)
	test.ExpectEquality(t, mem.Write(0x1000, 0x11223344, bus.Word), bus.Success)

	for _, a := range []uint32{0x1001, 0x1002, 0x1003} {
		_, r := mem.Read(a, bus.Word, false, false)
		test.ExpectEquality(t, r, bus.Misaligned, a)
		test.ExpectEquality(t, mem.Write(a, 0, bus.Word), bus.Misaligned, a)
	}
	for _, a := range []uint32{0x1001, 0x1003} {
		_, r := mem.Read(a, bus.HalfWord, false, false)
		test.ExpectEquality(t, r, bus.Misaligned, a)
		test.ExpectEquality(t, mem.Write(a, 0, bus.HalfWord), bus.Misaligned, a)
	}

	// misaligned writes do not change memory
	v, _ := mem.Read(0x1000, bus.Word, false, false)
	test.ExpectEquality(t, v, uint32(0x11223344))
}

func TestRange(t *testing.T) {
	mem := ram.NewRAM(0x1000, 0x1fff)
	_, r := mem.Read(0x0ffc, bus.Word, false, false)
	test.ExpectEquality(t, r, bus.NotInRange)
	_, r = mem.Read(0x2000, bus.Byte, false, false)
	test.ExpectEquality(t, r, bus.NotInRange)
	test.ExpectEquality(t, mem.Write(0x2000, 0, bus.Word), bus.NotInRange)
	test.ExpectEquality(t, mem.Write(0x1ffc, 1, bus.Word), bus.Success)
	test.ExpectEquality(t, mem.Write(0x1fff, 1, bus.Byte), bus.Success)
}

func TestPaging(t *testing.T) {
	mem := ram.NewRAM(0, 0x03ffffff)
	test.ExpectEquality(t, mem.Pages(), 0)

	// reading does not allocate
	v, r := mem.Read(0x03fffffc, bus.Word, false, false)
	test.ExpectEquality(t, r, bus.Success)
	test.ExpectEquality(t, v, uint32(0))
	test.ExpectEquality(t, mem.Pages(), 0)

	test.ExpectEquality(t, mem.Write(0x03fffffc, 1, bus.Word), bus.Success)
	test.ExpectEquality(t, mem.Write(0x03fff000, 1, bus.Word), bus.Success)
	test.ExpectEquality(t, mem.Pages(), 1)
	test.ExpectEquality(t, mem.Write(0x00400000, 1, bus.Word), bus.Success)
	test.ExpectEquality(t, mem.Pages(), 2)

	test.ExpectSuccess(t, mem.Close())
	test.ExpectEquality(t, mem.Pages(), 0)
}

func TestLoad(t *testing.T) {
	mem := ram.NewRAM(0x1000, 0x3fff)

	// image straddles a page boundary
	data := make([]byte, 8)
	for i := range data {
		data[i] = uint8(i + 1)
	}
	test.ExpectSuccess(t, mem.Load(0x1ffc, data))

	v, _ := mem.Read(0x1ffc, bus.Word, false, false)
	test.ExpectEquality(t, v, uint32(0x04030201))
	v, _ = mem.Read(0x2000, bus.Word, false, false)
	test.ExpectEquality(t, v, uint32(0x08070605))

	err := mem.Load(0x3ffc, data)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.IsAny(err))

	test.ExpectFailure(t, mem.Load(0x0, data))
	test.ExpectSuccess(t, mem.Load(0x0, nil))
}

func TestROM(t *testing.T) {
	rom := ram.NewROM(0x1000, 0x1fff)
	test.ExpectSuccess(t, rom.Load(0x1000, []byte{0x13, 0x00, 0x00, 0x00}))

	v, r := rom.Read(0x1000, bus.Word, false, false)
	test.ExpectEquality(t, r, bus.Success)
	test.ExpectEquality(t, v, uint32(0x13))

	test.ExpectEquality(t, rom.Write(0x1000, 0, bus.Word), bus.NotInRange)
	v, _ = rom.Read(0x1000, bus.Word, false, false)
	test.ExpectEquality(t, v, uint32(0x13))

	_, r = rom.Read(0x1002, bus.Word, false, false)
	test.ExpectEquality(t, r, bus.Misaligned)
}
