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

package performance

import "fmt"

// CalcCPS returns the number of clocks per second.
func CalcCPS(clocks uint64, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(clocks) / seconds
}

// FormatCPS returns the clocks per second value with a suitable unit.
func FormatCPS(cps float64) string {
	switch {
	case cps >= 1e6:
		return fmt.Sprintf("%.2f MHz", cps/1e6)
	case cps >= 1e3:
		return fmt.Sprintf("%.2f kHz", cps/1e3)
	}
	return fmt.Sprintf("%.2f Hz", cps)
}
