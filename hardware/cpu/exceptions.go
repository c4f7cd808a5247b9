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

// Exception is a synchronous exception. The value of an Exception is the
// cause code written to mcause when the exception is taken.
type Exception int

// List of valid Exception values.
const (
	NoException Exception = -1

	InstructionAddressMisaligned Exception = 0
	InstructionAccessFault       Exception = 1
	IllegalInstruction           Exception = 2
	EnvironmentBreak             Exception = 3
	LoadAddressMisaligned        Exception = 4
	LoadAccessFault              Exception = 5
	StoreAddressMisaligned       Exception = 6
	StoreAccessFault             Exception = 7
	UEnvironmentCall             Exception = 8
	SEnvironmentCall             Exception = 9
	MEnvironmentCall             Exception = 11
)

func (e Exception) String() string {
	switch e {
	case NoException:
		return "no exception"
	case InstructionAddressMisaligned:
		return "instruction address misaligned"
	case InstructionAccessFault:
		return "instruction access fault"
	case IllegalInstruction:
		return "illegal instruction"
	case EnvironmentBreak:
		return "environment break"
	case LoadAddressMisaligned:
		return "load address misaligned"
	case LoadAccessFault:
		return "load access fault"
	case StoreAddressMisaligned:
		return "store address misaligned"
	case StoreAccessFault:
		return "store access fault"
	case UEnvironmentCall:
		return "environment call from u-mode"
	case SEnvironmentCall:
		return "environment call from s-mode"
	case MEnvironmentCall:
		return "environment call from m-mode"
	}
	return "unknown exception"
}

// Cause returns the cause code of the exception.
func (e Exception) Cause() uint32 {
	return uint32(e)
}

// ExceptionPriority lists the exceptions from the highest priority to the
// lowest. When more than one exception is raised during a clock the one with
// the highest priority is taken.
var ExceptionPriority = [...]Exception{
	InstructionAccessFault,
	IllegalInstruction,
	InstructionAddressMisaligned,
	EnvironmentBreak,
	MEnvironmentCall,
	SEnvironmentCall,
	UEnvironmentCall,
	LoadAddressMisaligned,
	StoreAddressMisaligned,
	LoadAccessFault,
	StoreAccessFault,
}

// rank of the exception in the priority list. lower values have higher
// priority. NoException and unknown values rank below everything.
func (e Exception) rank() int {
	for i, p := range ExceptionPriority {
		if p == e {
			return i
		}
	}
	return len(ExceptionPriority)
}

// Outranks returns true if the exception has a higher priority than the other
// exception. Every exception outranks NoException.
func (e Exception) Outranks(o Exception) bool {
	return e.rank() < o.rank()
}
