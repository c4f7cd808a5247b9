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

import (
	"errors"
	"io"
)

// Bus is the address-routed connection between the CPU and the attached
// devices. The Bus owns the devices attached to it.
type Bus struct {
	devices []Device

	// number of devices with a pending interrupt
	interrupts int
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	return &Bus{}
}

// Connect attaches a device to the bus. Devices are consulted in the order in
// which they are attached.
func (b *Bus) Connect(dev Device) {
	b.devices = append(b.devices, dev)
	if c, ok := dev.(Connector); ok {
		c.Connect(b)
	}
}

// Write data to the address. The result of the first device that claims the
// address is returned.
func (b *Bus) Write(address uint32, data uint32, size DataSize) AccessResult {
	for _, d := range b.devices {
		if r := d.Write(address, data, size); r != NotInRange {
			return r
		}
	}
	return NotInRange
}

// Read from the address. The result of the first device that claims the
// address is returned. A readOnly read will not cause any side effects in the
// device.
func (b *Bus) Read(address uint32, size DataSize, readOnly bool, signed bool) (uint32, AccessResult) {
	for _, d := range b.devices {
		if v, r := d.Read(address, size, readOnly, signed); r != NotInRange {
			return v, r
		}
	}
	return 0, NotInRange
}

// HasInterrupt returns true if any device has a pending interrupt.
func (b *Bus) HasInterrupt() bool {
	return b.interrupts != 0
}

// PostInterrupt implements the Interrupter interface.
func (b *Bus) PostInterrupt() {
	b.interrupts++
}

// ClearInterrupt implements the Interrupter interface.
func (b *Bus) ClearInterrupt() {
	if b.interrupts > 0 {
		b.interrupts--
	}
}

// Close releases every device that implements the io.Closer interface. The
// bus should not be used after Close() has been called.
func (b *Bus) Close() error {
	var errs []error
	for _, d := range b.devices {
		if c, ok := d.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	b.devices = nil
	b.interrupts = 0
	return errors.Join(errs...)
}
