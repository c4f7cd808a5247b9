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

// RAM is read/write memory.
type RAM struct {
	memory
}

// NewRAM is the preferred method of initialisation for the RAM type. The
// origin must be word aligned and memtop must be the last byte of a word.
func NewRAM(origin uint32, memtop uint32) *RAM {
	return &RAM{memory: newMemory("ram", origin, memtop)}
}

func (r *RAM) String() string {
	return fmt.Sprintf("RAM %08x -> %08x (%d pages)", r.origin, r.memtop, len(r.pages))
}

// Write implements the bus.Device interface.
func (r *RAM) Write(address uint32, data uint32, size bus.DataSize) bus.AccessResult {
	return r.write(address, data, size)
}

// Read implements the bus.Device interface.
func (r *RAM) Read(address uint32, size bus.DataSize, _ bool, signed bool) (uint32, bus.AccessResult) {
	return r.read(address, size, signed)
}
