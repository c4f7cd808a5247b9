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

// Package memorymap describes the address space of the machine. The address
// space is 32 bits wide and is divided into the following areas:
//
//	00000000 -> 03ffffff	RAM
//	  00400000 -> 00ffffff	  Text (program code, reset vector)
//	  01010000 -> 0103ffff	  Data
//	  01040000 ->		  Heap (grows upwards)
//	           -> 03fffffc	  Stack (grows downwards)
//	f0000000 -> f000007f	Screen
//	f0000080 -> f0000083	Terminal (write) and Keyboard (read)
//	f0000090 -> f000009f	Timer
//
// The Text, Data, Heap and Stack areas are conventions inside RAM. They are
// used to place binary images and to initialise the stack pointer but
// otherwise have no effect on how memory is accessed.
package memorymap

import (
	"fmt"
	"strings"
)

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case Screen:
		return "Screen"
	case Terminal:
		return "Terminal"
	case Timer:
		return "Timer"
	}

	return "undefined"
}

// The different memory areas in the machine. The keyboard shares an address
// with the terminal and so is not listed separately.
const (
	Undefined Area = iota
	RAM
	Screen
	Terminal
	Timer
)

// The origin and memory top for each area of memory.
const (
	OriginRAM      = uint32(0x00000000)
	MemtopRAM      = uint32(0x03ffffff)
	OriginText     = uint32(0x00400000)
	MemtopText     = uint32(0x00ffffff)
	OriginData     = uint32(0x01010000)
	MemtopData     = uint32(0x0103ffff)
	OriginScreen   = uint32(0xf0000000)
	MemtopScreen   = uint32(0xf000007f)
	OriginTerminal = uint32(0xf0000080)
	MemtopTerminal = uint32(0xf0000083)
	OriginTimer    = uint32(0xf0000090)
	MemtopTimer    = uint32(0xf000009f)
)

// Addresses of single-address devices and conventional pointers.
const (
	TerminalAddress = OriginTerminal
	KeyboardAddress = OriginTerminal
	HeapBase        = uint32(0x01040000)
	StackBase       = uint32(0x03fffffc)
)

// Dimensions of the display devices.
const (
	ScreenRows      = 32
	ScreenColumns   = 32
	TerminalRows    = 16
	TerminalColumns = 40
)

// MapAddress returns the area the address belongs to.
func MapAddress(address uint32) Area {
	switch {
	case address <= MemtopRAM:
		return RAM
	case address >= OriginScreen && address <= MemtopScreen:
		return Screen
	case address >= OriginTerminal && address <= MemtopTerminal:
		return Terminal
	case address >= OriginTimer && address <= MemtopTimer:
		return Timer
	}
	return Undefined
}

// Summary returns a table of the areas of memory with their origin and
// memory top.
func Summary() string {
	s := strings.Builder{}
	for _, a := range []struct {
		area   Area
		origin uint32
		memtop uint32
	}{
		{RAM, OriginRAM, MemtopRAM},
		{Screen, OriginScreen, MemtopScreen},
		{Terminal, OriginTerminal, MemtopTerminal},
		{Timer, OriginTimer, MemtopTimer},
	} {
		s.WriteString(fmt.Sprintf("%08x -> %08x\t%s\n", a.origin, a.memtop, a.area))
	}
	return s.String()
}
