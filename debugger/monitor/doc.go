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

// Package monitor provides read-only views of a running machine. Nothing in
// this package changes the state of the emulation: memory is peeked and the
// CSRs are read with the readOnly flag set.
//
// The views are plain text and intended for the INSPECT mode of the command
// line tool and for tests. MemvizMachine() writes a Graphviz description of
// the structure of the machine.
package monitor
