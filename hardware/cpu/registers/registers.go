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

package registers

import (
	"fmt"
	"strconv"
	"strings"
)

// NumRegisters is the number of integer registers.
const NumRegisters = 32

// Zero is the hardwired zero register.
const Zero = 0

// ABI register numbers used by the machine and by tests.
const (
	RA = 1
	SP = 2
	GP = 3
	A0 = 10
	A1 = 11
	A7 = 17
)

var abiNames = [NumRegisters]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// Name returns the ABI name of the register.
func Name(reg uint32) string {
	if reg >= NumRegisters {
		return "???"
	}
	return abiNames[reg]
}

// Lookup returns the register number for the name. Both ABI names and
// architectural names are accepted. "fp" is an alias for s0.
func Lookup(name string) (uint32, bool) {
	name = strings.ToLower(strings.TrimSpace(name))

	if name == "fp" {
		return 8, true
	}

	for i, n := range abiNames {
		if n == name {
			return uint32(i), true
		}
	}

	if n, ok := strings.CutPrefix(name, "x"); ok {
		v, err := strconv.ParseUint(n, 10, 8)
		if err == nil && v < NumRegisters {
			return uint32(v), true
		}
	}

	return 0, false
}

// Registers is the integer register file.
type Registers struct {
	r [NumRegisters]uint32
}

func (r *Registers) String() string {
	var s strings.Builder
	for i := range r.r {
		if i > 0 {
			if i%4 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString(" ")
			}
		}
		s.WriteString(fmt.Sprintf("%4s=%08x", abiNames[i], r.r[i]))
	}
	return s.String()
}

// Reset sets every register to zero.
func (r *Registers) Reset() {
	clear(r.r[:])
}

// Read returns the value of the register. Out of range register numbers panic.
func (r *Registers) Read(reg uint32) uint32 {
	return r.r[reg]
}

// Write value to the register. Writes to register zero are ignored.
func (r *Registers) Write(reg uint32, value uint32) {
	if reg == Zero {
		return
	}
	r.r[reg] = value
}
