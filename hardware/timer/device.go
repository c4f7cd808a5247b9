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

package timer

import (
	"fmt"

	"github.com/gopherv/gopherv/hardware/memory/bus"
)

// the offsets of each register from the origin of the device.
const (
	regTimeLow     = 0
	regTimeHigh    = 4
	regCompareLow  = 8
	regCompareHigh = 12

	deviceSize = 16
)

// Device exposes a Timer on the bus.
type Device struct {
	origin uint32
	tmr    *Timer
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice(origin uint32, tmr *Timer) *Device {
	return &Device{
		origin: origin,
		tmr:    tmr,
	}
}

func (dev *Device) String() string {
	return fmt.Sprintf("timer %08x: time=%d compare=%d", dev.origin, dev.tmr.Time(), dev.tmr.Compare())
}

// Timer returns the timer exposed by the device.
func (dev *Device) Timer() *Timer {
	return dev.tmr
}

// check returns the register offset for the address, or a result other than
// Success if the device cannot service the access.
func (dev *Device) check(address uint32, size bus.DataSize) (uint32, bus.AccessResult) {
	if address < dev.origin || address-dev.origin >= deviceSize {
		return 0, bus.NotInRange
	}
	if size != bus.Word || address%4 != 0 {
		return 0, bus.Misaligned
	}
	return address - dev.origin, bus.Success
}

// Write implements the bus.Device interface.
func (dev *Device) Write(address uint32, data uint32, size bus.DataSize) bus.AccessResult {
	reg, r := dev.check(address, size)
	if r != bus.Success {
		return r
	}

	switch reg {
	case regTimeLow:
		dev.tmr.SetTimeLow(data)
	case regTimeHigh:
		dev.tmr.SetTimeHigh(data)
	case regCompareLow:
		dev.tmr.SetCompareLow(data)
	case regCompareHigh:
		dev.tmr.SetCompareHigh(data)
	}

	return bus.Success
}

// Read implements the bus.Device interface.
func (dev *Device) Read(address uint32, size bus.DataSize, _ bool, _ bool) (uint32, bus.AccessResult) {
	reg, r := dev.check(address, size)
	if r != bus.Success {
		return 0, r
	}

	switch reg {
	case regTimeLow:
		return dev.tmr.TimeLow(), bus.Success
	case regTimeHigh:
		return dev.tmr.TimeHigh(), bus.Success
	case regCompareLow:
		return dev.tmr.CompareLow(), bus.Success
	}

	return dev.tmr.CompareHigh(), bus.Success
}
