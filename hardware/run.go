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

package hardware

import (
	"context"

	"github.com/gopherv/gopherv/curated"
	"github.com/gopherv/gopherv/debugger/govern"
	"github.com/gopherv/gopherv/performance/limiter"
	"github.com/gopherv/gopherv/prefs"
)

// PerformanceBrake is the number of clocks between each call to the
// continueCheck function in Run(). The keyboard is serviced at the same
// interval.
const PerformanceBrake = 100

// Run sets the emulation running as quickly as the clock speed preference
// allows. The rate follows changes to the preference while running.
//
// The continueCheck function is called every PerformanceBrake clocks. Run()
// will return when continueCheck returns a state other than Running or
// Stepping, when the context is cancelled, or when the program reads the
// debug CSR. A nil continueCheck means the emulation only stops for the last
// two reasons.
//
// A debug break only pauses the emulation. Calling Run() again continues from
// the instruction after the debug CSR read.
//
// Returns the state of the emulation at the time Run() returned.
func (m *Machine) Run(ctx context.Context, continueCheck func() (govern.State, error)) (govern.State, error) {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lmtr := limiter.NewLimiter(ctx, m.env.Prefs.ClockSpeed.Get().(float64))

	m.env.Prefs.ClockSpeed.SetHookPost(func(v prefs.Value) error {
		lmtr.SetRate(v.(float64))
		return nil
	})
	defer m.env.Prefs.ClockSpeed.SetHookPost(nil)

	var err error

	state := govern.Running
	brake := 0

	m.halted = false
	m.Keyboard.Service()

	for state.Continues() {
		lmtr.Wait()
		m.CPU.Clock()
		if m.halted {
			return govern.Halted, nil
		}

		brake++
		if brake < PerformanceBrake {
			continue
		}
		brake = 0

		m.Keyboard.Service()

		if ctx.Err() != nil {
			return govern.Ending, nil
		}

		state, err = continueCheck()
		if err != nil {
			return state, curated.Errorf("machine: %v", err)
		}
	}

	return state, nil
}
