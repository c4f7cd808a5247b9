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

// Package hardware is the base package for the RV32IM machine emulation. It
// and its sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains external
// references to all the machine sub-systems. From here, the emulation can
// either be started to run continuously (with optional callback to check for
// continuation); or it can be stepped a number of clocks at a time.
//
// The devices are connected to the bus in a fixed order: RAM, Screen,
// Terminal, Keyboard and Timer. The Terminal and the Keyboard share an
// address and the order means that writes go to the Terminal and reads to the
// Keyboard.
//
// A program can end a continuous run by writing to the debug CSR.
package hardware
