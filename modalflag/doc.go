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

// Package modalflag wraps the flag package in the Go standard library and adds
// the idea of program modes. A mode is a command line argument that selects a
// different way of running the program, each with its own set of flags.
//
// Arguments are registered with NewArgs() and then consumed one layer at a
// time with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM", "INSPECT")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		steps := md.AddInt("n", 16, "number of instructions")
//		...
//	}
//
// The first sub-mode listed is the default and is chosen when the next
// argument does not name a sub-mode. Sub-mode comparisons are case
// insensitive. Help is printed to the Output writer automatically when the
// -help flag is given.
package modalflag
