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

// Package limiter provides a rough and ready way of limiting the number of
// clocks executed per second.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(ctx, 1000)
//
// The machine is then stalled by calling Wait() before every clock. For
// example:
//
//	for {
//		lim.Wait()
//		mc.Clock()
//	}
//
// Clocks are released in batches so that high rates do not require a tick for
// every clock. A rate of zero or less means that Wait() never blocks.
package limiter

import (
	"context"
	"math"
	"sync/atomic"
	"time"
)

// TicksPerSecond is the highest rate at which batches of clocks are released.
const TicksPerSecond = 100

// Limiter releases clocks at a fixed rate.
type Limiter struct {
	// clocks per second stored as float64 bits
	rate atomic.Uint64

	tick chan bool

	// number of clocks left in the current batch. only touched by the
	// goroutine calling Wait()
	remaining int
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The ticker goroutine ends when the context is cancelled, after which Wait()
// no longer blocks.
func NewLimiter(ctx context.Context, clocksPerSecond float64) *Limiter {
	lim := &Limiter{
		tick: make(chan bool),
	}
	lim.SetRate(clocksPerSecond)

	go func() {
		defer close(lim.tick)

		next := time.Now()

		for {
			period, _ := schedule(lim.Rate())
			if period == 0 {
				// unlimited. check again shortly in case the rate changes
				period = time.Second / TicksPerSecond
			}

			// ticks are scheduled against an absolute deadline so that
			// oversleeping does not accumulate. if the deadline has fallen
			// too far behind then start again from now
			next = next.Add(period)
			if now := time.Now(); next.Before(now.Add(-period)) {
				next = now
			}

			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Until(next)):
			}

			select {
			case <-ctx.Done():
				return
			case lim.tick <- true:
			}
		}
	}()

	return lim
}

// schedule returns the tick period and the number of clocks to release on
// every tick for the rate. A zero period means the rate is unlimited.
func schedule(clocksPerSecond float64) (time.Duration, int) {
	if clocksPerSecond <= 0 || math.IsInf(clocksPerSecond, 1) || math.IsNaN(clocksPerSecond) {
		return 0, 0
	}

	if clocksPerSecond >= TicksPerSecond {
		return time.Second / TicksPerSecond, int(math.Round(clocksPerSecond / TicksPerSecond))
	}

	return time.Duration(float64(time.Second) / clocksPerSecond), 1
}

// SetRate changes the number of clocks per second. A rate of zero or less
// removes the limit. Safe to call from any goroutine.
func (lim *Limiter) SetRate(clocksPerSecond float64) {
	lim.rate.Store(math.Float64bits(clocksPerSecond))
}

// Rate returns the current number of clocks per second.
func (lim *Limiter) Rate() float64 {
	return math.Float64frombits(lim.rate.Load())
}

// Unlimited returns true if Wait() will never block.
func (lim *Limiter) Unlimited() bool {
	period, _ := schedule(lim.Rate())
	return period == 0
}

// Wait blocks until the next clock is allowed.
func (lim *Limiter) Wait() {
	if lim.remaining > 0 {
		lim.remaining--
		return
	}

	_, batch := schedule(lim.Rate())
	if batch == 0 {
		return
	}

	// a closed channel means the context has been cancelled
	if _, ok := <-lim.tick; !ok {
		return
	}

	lim.remaining = batch - 1
}

// HasWaited returns true if the next clock is allowed without blocking.
// Unlike Wait() it does not consume the clock.
func (lim *Limiter) HasWaited() bool {
	if lim.remaining > 0 || lim.Unlimited() {
		return true
	}

	select {
	case _, ok := <-lim.tick:
		if ok {
			_, batch := schedule(lim.Rate())
			lim.remaining = batch
		}
		return true
	default:
		return false
	}
}
