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

// Package timer implements the machine timer. The timer counts milliseconds
// and raises an interrupt whenever the count is greater than or equal to the
// compare value.
//
// The count is never stored. It is derived from a TimeSource and an offset,
// and setting the count changes the offset. A TimeSource other than the
// WallClock can be supplied for testing.
//
// The Device type exposes the timer on the bus as four word registers:
//
//	+0	time (low word)
//	+4	time (high word)
//	+8	compare (low word)
//	+12	compare (high word)
package timer

import "time"

// TimeSource is the interface to the real time used by the timer.
type TimeSource interface {
	// Milliseconds returns the current time in milliseconds.
	Milliseconds() uint64
}

// WallClock is the TimeSource used by default. The time is the number of
// milliseconds since the Unix epoch.
type WallClock struct{}

// Milliseconds implements the TimeSource interface.
func (WallClock) Milliseconds() uint64 {
	return uint64(time.Now().UnixMilli())
}

// CompareReset is the value of the compare register after a reset. No time
// value can be greater than it so the timer will not interrupt until the
// compare register is written to.
const CompareReset = uint64(0xffffffffffffffff)

// Timer is the millisecond timer.
type Timer struct {
	src TimeSource

	// real time minus logical time
	offset uint64

	compare uint64
}

// NewTimer is the preferred method of initialisation for the Timer type. If
// src is nil then the WallClock is used.
func NewTimer(src TimeSource) *Timer {
	if src == nil {
		src = WallClock{}
	}
	tmr := &Timer{src: src}
	tmr.Reset()
	return tmr
}

// Reset the timer. The time value is the same as the time source and the
// compare register is set to CompareReset.
func (tmr *Timer) Reset() {
	tmr.offset = 0
	tmr.compare = CompareReset
}

// HasInterrupt returns true if the time is greater than or equal to the
// compare value.
func (tmr *Timer) HasInterrupt() bool {
	return tmr.Time() >= tmr.compare
}

// Time returns the full 64 bit time value.
func (tmr *Timer) Time() uint64 {
	return tmr.src.Milliseconds() - tmr.offset
}

// TimeLow returns the low word of the time value.
func (tmr *Timer) TimeLow() uint32 {
	return uint32(tmr.Time())
}

// TimeHigh returns the high word of the time value.
func (tmr *Timer) TimeHigh() uint32 {
	return uint32(tmr.Time() >> 32)
}

// SetTime changes the time value.
func (tmr *Timer) SetTime(t uint64) {
	tmr.offset = tmr.src.Milliseconds() - t
}

// SetTimeLow changes the low word of the time value.
func (tmr *Timer) SetTimeLow(v uint32) {
	tmr.SetTime(tmr.Time()&0xffffffff00000000 | uint64(v))
}

// SetTimeHigh changes the high word of the time value.
func (tmr *Timer) SetTimeHigh(v uint32) {
	tmr.SetTime(tmr.Time()&0x00000000ffffffff | uint64(v)<<32)
}

// Compare returns the full 64 bit compare value.
func (tmr *Timer) Compare() uint64 {
	return tmr.compare
}

// CompareLow returns the low word of the compare value.
func (tmr *Timer) CompareLow() uint32 {
	return uint32(tmr.compare)
}

// CompareHigh returns the high word of the compare value.
func (tmr *Timer) CompareHigh() uint32 {
	return uint32(tmr.compare >> 32)
}

// SetCompare changes the compare value.
func (tmr *Timer) SetCompare(v uint64) {
	tmr.compare = v
}

// SetCompareLow changes the low word of the compare value.
func (tmr *Timer) SetCompareLow(v uint32) {
	tmr.compare = tmr.compare&0xffffffff00000000 | uint64(v)
}

// SetCompareHigh changes the high word of the compare value.
func (tmr *Timer) SetCompareHigh(v uint32) {
	tmr.compare = tmr.compare&0x00000000ffffffff | uint64(v)<<32
}
