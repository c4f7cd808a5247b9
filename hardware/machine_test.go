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

package hardware_test

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherv/gopherv/debugger/govern"
	"github.com/gopherv/gopherv/environment"
	"github.com/gopherv/gopherv/hardware"
	"github.com/gopherv/gopherv/hardware/cpu/csr"
	"github.com/gopherv/gopherv/hardware/cpu/encoding"
	"github.com/gopherv/gopherv/hardware/cpu/registers"
	"github.com/gopherv/gopherv/hardware/memory/bus"
	"github.com/gopherv/gopherv/hardware/memory/memorymap"
	"github.com/gopherv/gopherv/hardware/preferences"
	"github.com/gopherv/gopherv/imageloader"
	"github.com/gopherv/gopherv/test"
)

const (
	t0 = 5
	t1 = 6
	a0 = 10
)

type mockTime struct {
	ms uint64
}

func (src *mockTime) Milliseconds() uint64 {
	return src.ms
}

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()

	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.ClockSpeed.Set(0))

	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)

	m, err := hardware.NewMachine(env, &mockTime{})
	test.DemandSuccess(t, err)

	return m
}

func load(t *testing.T, m *hardware.Machine, instructions ...uint32) {
	t.Helper()
	for i, v := range instructions {
		r := m.Bus.Write(memorymap.OriginText+uint32(i*4), v, bus.Word)
		test.DemandEquality(t, r, bus.Success)
	}
	m.Reset()
}

// prints "Hi" to the terminal, sets one pixel on the screen and then halts
var hello = []uint32{
	encoding.MustEncode("lui", t0, 0xf0000),
	encoding.MustEncode("addi", t1, 0, 'H'),
	encoding.MustEncode("sw", t1, t0, 0x80),
	encoding.MustEncode("addi", t1, 0, 'i'),
	encoding.MustEncode("sw", t1, t0, 0x80),
	encoding.MustEncode("addi", t1, 0, 1),
	encoding.MustEncode("sw", t1, t0, 0),
	encoding.MustEncode("csrrs", t1, csr.Debug, 0),
	encoding.MustEncode("jal", 0, 0),
}

// loops forever
var spin = []uint32{
	encoding.MustEncode("jal", 0, 0),
}

func TestNoEnvironment(t *testing.T) {
	_, err := hardware.NewMachine(nil, nil)
	test.ExpectFailure(t, err)
}

func TestReset(t *testing.T) {
	m := newMachine(t)
	test.ExpectEquality(t, m.CPU.PC(), memorymap.OriginText)
	test.ExpectEquality(t, m.CPU.ReadReg(registers.SP), memorymap.StackBase)
	test.ExpectFailure(t, m.Halted())
}

func TestStep(t *testing.T) {
	m := newMachine(t)
	load(t, m, hello...)

	n := m.Step(100)
	test.ExpectEquality(t, n, 8)
	test.ExpectSuccess(t, m.Halted())
	test.ExpectEquality(t, m.Terminal.Rows()[0], "Hi")
	test.ExpectEquality(t, m.Screen.Rows()[0], uint32(1))
	test.ExpectEquality(t, m.CPU.Instret(), uint64(8))

	// stepping after a debug break continues with the next instruction
	n = m.Step(1)
	test.ExpectEquality(t, n, 1)
	test.ExpectFailure(t, m.Halted())

	m.Reset()
	test.ExpectFailure(t, m.Halted())
	test.ExpectEquality(t, m.Terminal.Rows()[0], "")
	test.ExpectEquality(t, m.Screen.Rows()[0], uint32(0))
}

func TestKeyboard(t *testing.T) {
	m := newMachine(t)
	load(t, m,
		encoding.MustEncode("lui", t0, 0xf0000),
		encoding.MustEncode("lw", a0, t0, 0x80),
		encoding.MustEncode("csrrs", t1, csr.Debug, 0),
	)

	m.Keyboard.Push('x')
	test.ExpectEquality(t, m.Keyboard.Buffered(), 0)

	m.Step(3)
	test.ExpectEquality(t, m.CPU.ReadReg(a0), uint32('x'))
	test.ExpectEquality(t, m.Keyboard.Buffered(), 0)
}

func TestTimer(t *testing.T) {
	src := &mockTime{ms: 1000}

	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	m, err := hardware.NewMachine(env, src)
	test.DemandSuccess(t, err)

	// read the low word of the timer device
	load(t, m,
		encoding.MustEncode("lui", t0, 0xf0000),
		encoding.MustEncode("lw", a0, t0, 0x90),
	)
	src.ms = 1500
	m.Step(2)
	test.ExpectEquality(t, m.CPU.ReadReg(a0), uint32(1500))
}

func TestRunHalt(t *testing.T) {
	m := newMachine(t)
	load(t, m, hello...)

	state, err := m.Run(context.Background(), nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Halted)
	test.ExpectEquality(t, m.CPU.Cycle(), uint64(8))
}

func TestRunResume(t *testing.T) {
	m := newMachine(t)
	load(t, m,
		encoding.MustEncode("csrrs", t1, csr.Debug, 0),
		encoding.MustEncode("addi", a0, 0, 42),
		encoding.MustEncode("csrrs", t1, csr.Debug, 0),
		encoding.MustEncode("jal", 0, 0),
	)

	state, err := m.Run(context.Background(), nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Halted)
	test.ExpectEquality(t, m.CPU.PC(), memorymap.OriginText+4)
	test.ExpectEquality(t, m.CPU.ReadReg(a0), uint32(0))

	state, err = m.Run(context.Background(), nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Halted)
	test.ExpectEquality(t, m.CPU.PC(), memorymap.OriginText+12)
	test.ExpectEquality(t, m.CPU.ReadReg(a0), uint32(42))
	test.ExpectEquality(t, m.CPU.Cycle(), uint64(3))
}

func TestRunContinueCheck(t *testing.T) {
	m := newMachine(t)
	load(t, m, spin...)

	checks := 0
	state, err := m.Run(context.Background(), func() (govern.State, error) {
		checks++
		if checks == 3 {
			return govern.Paused, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Paused)
	test.ExpectEquality(t, m.CPU.Cycle(), uint64(3*hardware.PerformanceBrake))
}

func TestRunCancel(t *testing.T) {
	m := newMachine(t)
	load(t, m, spin...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state, err := m.Run(ctx, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Ending)
	test.ExpectEquality(t, m.CPU.Cycle(), uint64(hardware.PerformanceBrake))
}

func TestRunLimited(t *testing.T) {
	m := newMachine(t)
	load(t, m, spin...)
	test.DemandSuccess(t, m.Env().Prefs.ClockSpeed.Set(1000.0))

	// the rate is changed to unlimited by the continue check. without the
	// change the test would take ten seconds
	checks := 0
	state, err := m.Run(context.Background(), func() (govern.State, error) {
		checks++
		if checks == 1 {
			_ = m.Env().Prefs.ClockSpeed.Set(0.0)
		}
		if checks == 100 {
			return govern.Paused, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Paused)
	test.ExpectEquality(t, m.CPU.Cycle(), uint64(100*hardware.PerformanceBrake))
}

func TestAttachImages(t *testing.T) {
	m := newMachine(t)

	text := make([]byte, 0, len(hello)*4)
	for _, v := range hello {
		text = binary.LittleEndian.AppendUint32(text, v)
	}
	pth := filepath.Join(t.TempDir(), "text.bin")
	test.DemandSuccess(t, os.WriteFile(pth, text, 0o644))

	data := imageloader.NewLoaderFromData("data", imageloader.Data, []byte{0x78, 0x56, 0x34, 0x12})

	err := m.AttachImages(imageloader.NewLoader(pth, imageloader.Text), data)
	test.DemandSuccess(t, err)

	v, r := m.Bus.Read(memorymap.OriginData, bus.Word, true, false)
	test.ExpectEquality(t, r, bus.Success)
	test.ExpectEquality(t, v, uint32(0x12345678))

	m.Step(100)
	test.ExpectEquality(t, m.Terminal.Rows()[0], "Hi")

	err = m.AttachImages(imageloader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"), imageloader.Text))
	test.ExpectFailure(t, err)
}
