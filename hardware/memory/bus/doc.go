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

// Package bus routes memory accesses from the CPU to the devices attached to
// the machine.
//
// Devices are attached with Connect() and are consulted in the order they
// were attached. The first device that claims an address answers the access.
// A device claims an address by returning anything other than NotInRange, so
// a device that returns Misaligned stops the search just as a device that
// returns Success does.
//
// Two devices can share an address as long as each answers only one kind of
// access. The terminal and keyboard devices are the example of this in the
// machine: the terminal only accepts writes and the keyboard only accepts
// reads.
//
// The bus also aggregates the interrupt lines of the attached devices into a
// single level. Devices that can interrupt implement the Connector interface
// and are given the bus as an Interrupter when they are attached.
package bus
