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
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/gopherv/gopherv/hardware"
)

// MemvizMachine writes a Graphviz description of the machine and everything
// it references. The output can be large if many pages of RAM have been
// touched.
func MemvizMachine(w io.Writer, m *hardware.Machine) {
	memviz.Map(w, m)
}
