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

// Package ram implements byte-addressable memory devices for the bus. RAM
// can be read and written by the CPU. ROM can only be read, its contents are
// set with the Load() function.
//
// Values are stored little-endian. Word accesses must be 4-byte aligned and
// half-word accesses must be 2-byte aligned. Byte accesses can be at any
// address.
//
// Memory is allocated in pages of PageSize bytes the first time a page is
// written to. Reading from a page that has never been written returns zero.
package ram

import (
	"encoding/binary"

	"github.com/gopherv/gopherv/curated"
	"github.com/gopherv/gopherv/hardware/memory/bus"
)

// PageSize is the size in bytes of each unit of allocation.
const PageSize = 4096

type page [PageSize]byte

// memory is the storage shared by the RAM and ROM types.
type memory struct {
	label  string
	origin uint32
	memtop uint32
	pages  map[uint32]*page
}

func newMemory(label string, origin uint32, memtop uint32) memory {
	if origin%4 != 0 || memtop%4 != 3 || memtop < origin {
		panic("ram: origin and memtop must span whole words")
	}
	return memory{
		label:  label,
		origin: origin,
		memtop: memtop,
		pages:  make(map[uint32]*page),
	}
}

func (mem *memory) inRange(address uint32) bool {
	return address >= mem.origin && address <= mem.memtop
}

func aligned(address uint32, size bus.DataSize) bool {
	switch size {
	case bus.Word:
		return address&0b11 == 0
	case bus.HalfWord:
		return address&0b01 == 0
	}
	return true
}

// bytes returns the slice of the page holding the address, starting at the
// address. if alloc is false and the page does not exist then nil is returned.
func (mem *memory) bytes(address uint32, alloc bool) []byte {
	offset := address - mem.origin
	n := offset / PageSize
	p, ok := mem.pages[n]
	if !ok {
		if !alloc {
			return nil
		}
		p = &page{}
		mem.pages[n] = p
	}
	return p[offset%PageSize:]
}

func (mem *memory) write(address uint32, data uint32, size bus.DataSize) bus.AccessResult {
	if !mem.inRange(address) {
		return bus.NotInRange
	}
	if !aligned(address, size) {
		return bus.Misaligned
	}

	b := mem.bytes(address, true)
	switch size {
	case bus.Word:
		binary.LittleEndian.PutUint32(b, data)
	case bus.HalfWord:
		binary.LittleEndian.PutUint16(b, uint16(data))
	case bus.Byte:
		b[0] = uint8(data)
	}

	return bus.Success
}

func (mem *memory) read(address uint32, size bus.DataSize, signed bool) (uint32, bus.AccessResult) {
	if !mem.inRange(address) {
		return 0, bus.NotInRange
	}
	if !aligned(address, size) {
		return 0, bus.Misaligned
	}

	b := mem.bytes(address, false)
	if b == nil {
		return 0, bus.Success
	}

	switch size {
	case bus.HalfWord:
		v := binary.LittleEndian.Uint16(b)
		if signed {
			return uint32(int32(int16(v))), bus.Success
		}
		return uint32(v), bus.Success
	case bus.Byte:
		if signed {
			return uint32(int32(int8(b[0]))), bus.Success
		}
		return uint32(b[0]), bus.Success
	}

	return binary.LittleEndian.Uint32(b), bus.Success
}

// Load copies data into memory starting at address.
func (mem *memory) Load(address uint32, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	end := uint64(address) + uint64(len(data)) - 1
	if !mem.inRange(address) || end > uint64(mem.memtop) {
		return curated.Errorf("%s: image of %d bytes does not fit at %08x", mem.label, len(data), address)
	}

	for len(data) > 0 {
		n := copy(mem.bytes(address, true), data)
		data = data[n:]
		address += uint32(n)
	}

	return nil
}

// Pages returns the number of pages that have been allocated.
func (mem *memory) Pages() int {
	return len(mem.pages)
}

// Close implements the io.Closer interface. All pages are released.
func (mem *memory) Close() error {
	mem.pages = make(map[uint32]*page)
	return nil
}
