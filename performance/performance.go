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

package performance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gopherv/gopherv/curated"
	"github.com/gopherv/gopherv/debugger/govern"
	"github.com/gopherv/gopherv/hardware"
)

var timedOut = errors.New("performance timed out")

// LeadTime is the period the machine runs for before measurement begins.
var LeadTime = 2 * time.Second

// Check runs the machine as fast as possible for the duration and writes the
// number of clocks per second to output. The clock speed preference is
// ignored for the duration of the check.
//
// If the program writes to the debug CSR before the duration has elapsed then
// the measurement covers the time the program ran for.
func Check(output io.Writer, profile Profile, m *hardware.Machine, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	clockSpeed := m.Env().Prefs.ClockSpeed.Get()
	err = m.Env().Prefs.ClockSpeed.Set(0.0)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer m.Env().Prefs.ClockSpeed.Set(clockSpeed)

	startClock := m.CPU.Cycle()
	startTime := time.Now()

	var state govern.State

	// run for specified period of time
	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has finished. buffered so that the timers never
		// block if the machine halts early
		timerChan := make(chan bool, 2)

		time.AfterFunc(LeadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		var err error
		state, err = m.Run(context.Background(), func() (govern.State, error) {
			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}

				// lead time has concluded and measurement begins
				startClock = m.CPU.Cycle()
				startTime = time.Now()
			default:
			}
			return govern.Running, nil
		})
		return err
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	elapsed := time.Since(startTime).Seconds()
	numClocks := m.CPU.Cycle() - startClock
	cps := CalcCPS(numClocks, elapsed)

	halted := ""
	if state == govern.Halted {
		halted = " [halted]"
	}

	_, err = io.WriteString(output, fmt.Sprintf("%s (%d clocks in %.2f seconds)%s\n", FormatCPS(cps), numClocks, elapsed, halted))
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	return nil
}
