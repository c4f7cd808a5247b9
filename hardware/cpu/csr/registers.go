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

package csr

// Addresses of the implemented registers.
const (
	Mstatus = 0x300
	Misa    = 0x301

	Mie   = 0x304
	Mtvec = 0x305

	Mscratch = 0x340
	Mepc     = 0x341
	Mcause   = 0x342
	Mtval    = 0x343
	Mip      = 0x344

	Ureg00 = 0x800

	Cycle   = 0xc00
	Time    = 0xc01
	Instret = 0xc02

	CycleH   = 0xc80
	TimeH    = 0xc81
	InstretH = 0xc82

	Mvendorid = 0xf11
	Marchid   = 0xf12
	Mimpid    = 0xf13
	Mhartid   = 0xf14

	// reading this address (other than with readOnly) calls the debug
	// callback. it is not a RISC-V register
	Debug = 0xfc0
)

// the order of the list is the order used by inspection tools.
var validAddresses = []uint32{
	Mstatus, Misa, Mie, Mtvec, Mscratch, Mepc, Mcause, Mtval, Mip,
	Ureg00, Cycle, Time, Instret, CycleH, TimeH, InstretH,
	Mvendorid, Marchid, Mimpid, Mhartid, Debug,
}

var names = map[uint32]string{
	Mstatus:   "mstatus",
	Misa:      "misa",
	Mie:       "mie",
	Mtvec:     "mtvec",
	Mscratch:  "mscratch",
	Mepc:      "mepc",
	Mcause:    "mcause",
	Mtval:     "mtval",
	Mip:       "mip",
	Ureg00:    "ureg00",
	Cycle:     "cycle",
	Time:      "time",
	Instret:   "instret",
	CycleH:    "cycleh",
	TimeH:     "timeh",
	InstretH:  "instreth",
	Mvendorid: "mvendorid",
	Marchid:   "marchid",
	Mimpid:    "mimpid",
	Mhartid:   "mhartid",
	Debug:     "debug",
}

// Name returns the name of the register at the address. Unknown addresses
// return "???".
func Name(address uint32) string {
	if n, ok := names[address]; ok {
		return n
	}
	return "???"
}

// ValidAddresses returns the address of every implemented register.
func ValidAddresses() []uint32 {
	v := make([]uint32, len(validAddresses))
	copy(v, validAddresses)
	return v
}

// Bits in the mstatus register.
const (
	MstatusMIE  = uint32(1 << 3)
	MstatusMPIE = uint32(1 << 7)

	// previous privilege is always machine mode
	MstatusMPP = uint32(0b11 << 11)
)

// MisaValue is the fixed value of the misa register: a 32 bit machine with the
// base integer and multiply/divide extensions.
const MisaValue = uint32(0b01<<30 | 1<<('I'-'A') | 1<<('M'-'A'))

// Interrupt cause codes. The same numbers are the bit positions in the mie and
// mip registers.
const (
	UserSoftware       = 0
	SupervisorSoftware = 1
	MachineSoftware    = 3
	UserTimer          = 4
	SupervisorTimer    = 5
	MachineTimer       = 7
	UserExternal       = 8
	SupervisorExternal = 9
	MachineExternal    = 11
)

// InterruptPriority lists the interrupt causes from the highest priority to
// the lowest.
var InterruptPriority = [...]uint32{
	MachineExternal, MachineSoftware, MachineTimer,
	SupervisorExternal, SupervisorSoftware, SupervisorTimer,
	UserExternal, UserSoftware, UserTimer,
}

// the bits of mie that can be written. software interrupts are not raised by
// anything in the machine but the enable bit is still writable.
const mieWritable = uint32(1<<MachineExternal | 1<<MachineSoftware | 1<<MachineTimer)

// InterruptFlag is set in mcause when the trap was caused by an interrupt.
const InterruptFlag = uint32(1 << 31)
