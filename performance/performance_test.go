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

package performance_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopherv/gopherv/environment"
	"github.com/gopherv/gopherv/hardware"
	"github.com/gopherv/gopherv/hardware/cpu/csr"
	"github.com/gopherv/gopherv/hardware/cpu/encoding"
	"github.com/gopherv/gopherv/hardware/memory/bus"
	"github.com/gopherv/gopherv/hardware/memory/memorymap"
	"github.com/gopherv/gopherv/hardware/preferences"
	"github.com/gopherv/gopherv/performance"
	"github.com/gopherv/gopherv/test"
)

func TestProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu, MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "cpu,mem")

	p, err = performance.ParseProfile("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "none")

	p, err = performance.ParseProfile("trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileTrace)

	_, err = performance.ParseProfile("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCPS(t *testing.T) {
	test.ExpectEquality(t, performance.CalcCPS(1000, 2), 500.0)
	test.ExpectEquality(t, performance.CalcCPS(1000, 0), 0.0)
	test.ExpectEquality(t, performance.FormatCPS(500), "500.00 Hz")
	test.ExpectEquality(t, performance.FormatCPS(2500), "2.50 kHz")
	test.ExpectEquality(t, performance.FormatCPS(12345678), "12.35 MHz")
}

func TestRunProfiler(t *testing.T) {
	runErr := errors.New("test error")

	called := false
	err := performance.RunProfiler(performance.ProfileNone, "unused", func() error {
		called = true
		return runErr
	})
	test.ExpectSuccess(t, called)
	test.ExpectSuccess(t, errors.Is(err, runErr))

	hdr := filepath.Join(t.TempDir(), "test")
	err = performance.RunProfiler(performance.ProfileMem|performance.ProfileTrace, hdr, func() error {
		return nil
	})
	test.ExpectSuccess(t, err)

	_, err = os.Stat(hdr + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(hdr + "_trace.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(hdr + "_cpu.profile")
	test.ExpectFailure(t, err)
}

func newMachine(t *testing.T, program ...uint32) *hardware.Machine {
	t.Helper()

	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	m, err := hardware.NewMachine(env, nil)
	test.DemandSuccess(t, err)

	for i, v := range program {
		test.DemandEquality(t, m.Bus.Write(memorymap.OriginText+uint32(i*4), v, bus.Word), bus.Success)
	}
	m.Reset()

	return m
}

func TestCheck(t *testing.T) {
	performance.LeadTime = 0

	m := newMachine(t, encoding.MustEncode("jal", 0, 0))
	test.DemandSuccess(t, m.Env().Prefs.ClockSpeed.Set(10.0))

	var b strings.Builder
	err := performance.Check(&b, performance.ProfileNone, m, "50ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(b.String(), " clocks in "))
	test.ExpectFailure(t, strings.Contains(b.String(), "[halted]"))
	test.ExpectInequality(t, m.CPU.Cycle(), uint64(0))

	// the clock speed preference is restored
	test.ExpectEquality(t, m.Env().Prefs.ClockSpeed.Get().(float64), 10.0)

	err = performance.Check(&b, performance.ProfileNone, m, "soon")
	test.ExpectFailure(t, err)
}

func TestCheckHalted(t *testing.T) {
	performance.LeadTime = 0

	m := newMachine(t,
		encoding.MustEncode("addi", 10, 0, 1),
		encoding.MustEncode("csrrs", 6, csr.Debug, 0),
	)

	var b strings.Builder
	err := performance.Check(&b, performance.ProfileNone, m, "10s")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(b.String(), "(2 clocks in "))
	test.ExpectSuccess(t, strings.HasSuffix(b.String(), "[halted]\n"))
	test.ExpectEquality(t, m.CPU.Cycle(), uint64(2))
}
