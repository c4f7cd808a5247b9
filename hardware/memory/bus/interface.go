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

package bus

// DataSize is the width of a memory access.
type DataSize int

// List of valid DataSize values.
const (
	Word DataSize = iota
	HalfWord
	Byte
)

func (sz DataSize) String() string {
	switch sz {
	case Word:
		return "word"
	case HalfWord:
		return "halfword"
	case Byte:
		return "byte"
	}
	return "unknown size"
}

// Bytes returns the number of bytes in an access of this size.
func (sz DataSize) Bytes() uint32 {
	switch sz {
	case HalfWord:
		return 2
	case Byte:
		return 1
	}
	return 4
}

// AccessResult is the outcome of a memory access.
type AccessResult int

// List of valid AccessResult values.
const (
	Success AccessResult = iota
	NotInRange
	Misaligned
)

func (r AccessResult) String() string {
	switch r {
	case Success:
		return "success"
	case NotInRange:
		return "not in range"
	case Misaligned:
		return "misaligned"
	}
	return "unknown result"
}

// Device is implemented by everything that can be attached to the bus.
//
// A device must return NotInRange for any address it does not claim and must
// not change its state when it does so. A read with readOnly set must not
// change the state of the device either. For reads narrower than a word the
// signed flag selects between sign and zero extension of the result.
type Device interface {
	Write(address uint32, data uint32, size DataSize) AccessResult
	Read(address uint32, size DataSize, readOnly bool, signed bool) (uint32, AccessResult)
}

// Interrupter is the interface to the aggregated interrupt line. Devices
// should call PostInterrupt() when their pending condition becomes true and
// ClearInterrupt() when it becomes false.
type Interrupter interface {
	PostInterrupt()
	ClearInterrupt()
}

// Connector is implemented by devices that need a reference to the bus. The
// reference is not owned by the device.
type Connector interface {
	Connect(bus Interrupter)
}
