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

import "fmt"

// ProgramCounter represents the PC register.
type ProgramCounter struct {
	value uint32
}

// NewProgramCounter is the preferred method of initialisation for the
// ProgramCounter type.
func NewProgramCounter(val uint32) ProgramCounter {
	return ProgramCounter{value: val}
}

// Label returns the name of the register.
func (pc ProgramCounter) Label() string {
	return "pc"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%08x", pc.value)
}

// Address returns the current value of the PC.
func (pc ProgramCounter) Address() uint32 {
	return pc.value
}

// Load a value into the PC.
func (pc *ProgramCounter) Load(val uint32) {
	pc.value = val
}

// Add a value to the PC. Returns true if the address wrapped.
func (pc *ProgramCounter) Add(val uint32) bool {
	v := pc.value
	pc.value += val
	return pc.value < v
}
