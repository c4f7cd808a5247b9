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

// Package csr implements the control and status registers of the CPU and the
// trap state machine.
//
// Only machine mode is implemented. Trap entry is performed by
// ExecuteException() and trap exit by ReturnException(). The two functions
// shadow the interrupt enable bit (MIE) of mstatus with the previous enable
// bit (MPIE) so that traps are not re-entrant unless the handler allows it.
//
// The CSR file does not own the devices it reports on. The external
// interrupt line, the timer and the CPU counters are supplied as interfaces
// when the CSR file is created.
package csr
