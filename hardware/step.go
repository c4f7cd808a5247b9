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

package hardware

// Step the machine forward the number of clocks specified. Stepping stops
// early if the program reads the debug CSR. Returns the number of clocks that
// were executed.
//
// The keyboard is serviced once, before the first clock.
func (m *Machine) Step(clocks int) int {
	m.halted = false
	m.Keyboard.Service()

	n := 0
	for n < clocks {
		m.CPU.Clock()
		n++
		if m.halted {
			break
		}
	}

	return n
}
