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

// Package prefs holds the typed preference values used to configure the
// emulation, and the Disk type that stores them in a plain text file.
//
// Each line of a preferences file is a key/value pair separated by " :: ".
// Keys are dotted names, for example:
//
//	cpu.clockspeed :: 10.000
//	terminal.echo :: true
//
// Values can be overridden for the duration of a session with the command
// line stack. See PushCommandLineStack().
package prefs
