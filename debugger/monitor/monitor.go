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

package monitor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gopherv/gopherv/hardware"
	"github.com/gopherv/gopherv/hardware/cpu/csr"
	"github.com/gopherv/gopherv/hardware/cpu/registers"
	"github.com/gopherv/gopherv/hardware/memory/bus"
	"github.com/gopherv/gopherv/hardware/memory/memorymap"
)

// Unmapped is printed in place of a value for an address that no device
// claims.
const Unmapped = "????????"

// PeekError is wrapped by errors returned from Peek().
var PeekError = errors.New("cannot peek address")

// Monitor is a read-only view of a machine.
type Monitor struct {
	m *hardware.Machine
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(m *hardware.Machine) *Monitor {
	return &Monitor{m: m}
}

// CPU returns the disassembly of the next instruction, the program counter
// and the general purpose registers.
func (mon *Monitor) CPU() string {
	s := strings.Builder{}

	dsm, ok := mon.m.CPU.DisassembleNext()
	if !ok {
		dsm = Unmapped
	}
	s.WriteString(fmt.Sprintf("pc=%08x  %s\n", mon.m.CPU.PC(), dsm))

	reg := mon.m.CPU.Registers()
	s.WriteString(reg.String())

	return s.String()
}

// CSR returns the value of every valid control and status register.
func (mon *Monitor) CSR() string {
	s := strings.Builder{}
	for _, a := range csr.ValidAddresses() {
		v, _ := mon.m.CPU.CSR().Read(a, true)
		s.WriteString(fmt.Sprintf("%-9s %03x = %08x\n", csr.Name(a), a, v))
	}
	return s.String()
}

// Memory returns a dump of the words starting at address. The address is
// rounded down to a word boundary. Four words are shown on each line.
func (mon *Monitor) Memory(address uint32, words int) string {
	address &^= 0b11

	s := strings.Builder{}
	for i := 0; i < words; i++ {
		a := address + uint32(i*4)
		if i%4 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%08x:", a))
		}

		v, r := mon.m.Bus.Peek(a)
		if r == bus.Success {
			s.WriteString(fmt.Sprintf(" %08x", v))
		} else {
			s.WriteString(" " + Unmapped)
		}
	}
	if words > 0 {
		s.WriteString("\n")
	}

	return s.String()
}

// AddressInfo is returned by Peek().
type AddressInfo struct {
	Address uint32
	Area    memorymap.Area
	Data    uint32

	// the register used to specify the address, if any
	Register string
}

func (ai AddressInfo) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%08x", ai.Address))
	if ai.Register != "" {
		s.WriteString(fmt.Sprintf(" (%s)", ai.Register))
	}
	s.WriteString(fmt.Sprintf(" [%s] = %08x", ai.Area, ai.Data))
	return s.String()
}

// Peek returns the word at the address. The address can be a uint32 or a
// string. A string is either a number, in any base accepted by
// strconv.ParseUint(), or the name of a register, in which case the value in
// the register is used as the address.
func (mon *Monitor) Peek(address any) (AddressInfo, error) {
	var ai AddressInfo

	switch address := address.(type) {
	case uint32:
		ai.Address = address
	case string:
		if reg, ok := registers.Lookup(address); ok {
			ai.Address = mon.m.CPU.ReadReg(reg)
			ai.Register = registers.Name(reg)
		} else if address == "pc" {
			ai.Address = mon.m.CPU.PC()
			ai.Register = "pc"
		} else {
			v, err := strconv.ParseUint(address, 0, 32)
			if err != nil {
				return ai, fmt.Errorf("%w: %v", PeekError, address)
			}
			ai.Address = uint32(v)
		}
	default:
		panic(fmt.Sprintf("unsupported address type (%T)", address))
	}

	ai.Area = memorymap.MapAddress(ai.Address)

	var r bus.AccessResult
	ai.Data, r = mon.m.Bus.Peek(ai.Address)
	if r != bus.Success {
		return ai, fmt.Errorf("%w: %08x (%s)", PeekError, ai.Address, r)
	}

	return ai, nil
}

// Devices returns the screen and terminal as they would appear to the user.
func (mon *Monitor) Devices() string {
	s := strings.Builder{}
	_ = mon.m.Screen.Render(&s)
	s.WriteString(strings.Repeat("-", memorymap.TerminalColumns))
	s.WriteString("\n")
	for _, r := range mon.m.Terminal.Rows() {
		s.WriteString(r)
		s.WriteString("\n")
	}
	return s.String()
}
