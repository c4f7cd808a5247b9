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

package ram

import (
	"fmt"

	"github.com/gopherv/gopherv/hardware/memory/bus"
)

// ROM is read-only memory. Writes from the bus are not claimed by the device
// and so result in NotInRange, as if nothing was at the address.
type ROM struct {
	memory
}

// NewROM is the preferred method of initialisation for the ROM type. The
// origin must be word aligned and memtop must be the last byte of a word.
func NewROM(origin uint32, memtop uint32) *ROM {
	return &ROM{memory: newMemory("rom", origin, memtop)}
}

func (r *ROM) String() string {
	return fmt.Sprintf("ROM %08x -> %08x (%d pages)", r.origin, r.memtop, len(r.pages))
}

// Write implements the bus.Device interface.
func (r *ROM) Write(_ uint32, _ uint32, _ bus.DataSize) bus.AccessResult {
	return bus.NotInRange
}

// Read implements the bus.Device interface.
func (r *ROM) Read(address uint32, size bus.DataSize, _ bool, signed bool) (uint32, bus.AccessResult) {
	return r.read(address, size, signed)
}
