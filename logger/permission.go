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

package logger

// Permission implementations decide whether a log request is turned into a
// log entry. The environment of the main emulation implements Permission and
// allows CPU trap logging only when the cpu.logtraps preference is set.
type Permission interface {
	AllowLogging() bool
}

type fixed bool

func (f fixed) AllowLogging() bool {
	return bool(f)
}

// Allow permits every log request. Used for entries that should always be
// made, such as problems loading an image.
var Allow Permission = fixed(true)

// Deny refuses every log request.
var Deny Permission = fixed(false)
