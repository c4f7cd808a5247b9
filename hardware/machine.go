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
	"fmt"
	"strings"

	"github.com/gopherv/gopherv/curated"
	"github.com/gopherv/gopherv/environment"
	"github.com/gopherv/gopherv/hardware/cpu"
	"github.com/gopherv/gopherv/hardware/cpu/registers"
	"github.com/gopherv/gopherv/hardware/memory/bus"
	"github.com/gopherv/gopherv/hardware/memory/memorymap"
	"github.com/gopherv/gopherv/hardware/memory/ram"
	"github.com/gopherv/gopherv/hardware/peripherals/keyboard"
	"github.com/gopherv/gopherv/hardware/peripherals/screen"
	"github.com/gopherv/gopherv/hardware/peripherals/terminal"
	"github.com/gopherv/gopherv/hardware/timer"
	"github.com/gopherv/gopherv/imageloader"
	"github.com/gopherv/gopherv/logger"
)

// Machine struct is the main container for the emulated components of the
// machine.
type Machine struct {
	env *environment.Environment

	Bus      *bus.Bus
	RAM      *ram.RAM
	Screen   *screen.Screen
	Terminal *terminal.Terminal
	Keyboard *keyboard.Keyboard
	Timer    *timer.Timer
	CPU      *cpu.CPU

	// set when the program reads the debug CSR. cleared at the start of
	// every Run() and Step()
	halted bool
}

// NewMachine creates a new machine and everything associated with the
// hardware. It is used for all aspects of emulation: debugging sessions, and
// regular play. A nil TimeSource means the wall clock is used.
func NewMachine(env *environment.Environment, src timer.TimeSource) (*Machine, error) {
	var err error

	if env == nil {
		return nil, curated.Errorf("machine: %v", "no environment")
	}

	m := &Machine{
		env:      env,
		Bus:      bus.NewBus(),
		RAM:      ram.NewRAM(memorymap.OriginRAM, memorymap.MemtopRAM),
		Keyboard: keyboard.NewKeyboard(memorymap.KeyboardAddress),
		Timer:    timer.NewTimer(src),
	}

	m.Screen, err = screen.NewScreen(memorymap.OriginScreen, memorymap.ScreenRows, memorymap.ScreenColumns)
	if err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}

	m.Terminal, err = terminal.NewTerminal(memorymap.TerminalAddress, memorymap.TerminalRows, memorymap.TerminalColumns)
	if err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}

	m.Bus.Connect(m.RAM)
	m.Bus.Connect(m.Screen)
	m.Bus.Connect(m.Terminal)
	m.Bus.Connect(m.Keyboard)
	m.Bus.Connect(timer.NewDevice(memorymap.OriginTimer, m.Timer))

	m.CPU = cpu.NewCPU(env, m.Bus, m.Bus, m.Timer, m.debugBreak)

	m.Reset()

	return m, nil
}

func (m *Machine) String() string {
	s := strings.Builder{}
	s.WriteString(m.CPU.String())
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("cycle=%d instret=%d", m.CPU.Cycle(), m.CPU.Instret()))
	if m.halted {
		s.WriteString(" [halted]")
	}
	return s.String()
}

// Env returns the environment the machine was created with.
func (m *Machine) Env() *environment.Environment {
	return m.env
}

func (m *Machine) debugBreak() {
	logger.Logf(m.env, "machine", "debug break at %08x", m.CPU.PC())
	m.halted = true
}

// Halted returns true if the most recent Run() or Step() stopped because the
// program read the debug CSR.
func (m *Machine) Halted() bool {
	return m.halted
}

// Reset emulates the reset switch. The contents of RAM are preserved so that
// any attached images survive. The stack pointer is initialised to the base
// of the stack.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.CPU.WriteReg(registers.SP, memorymap.StackBase)
	m.Timer.Reset()
	m.Screen.Clear()
	m.Terminal.Clear()
	m.halted = false
}

// AttachImages loads the images into RAM and resets the machine.
func (m *Machine) AttachImages(loaders ...imageloader.Loader) error {
	for i := range loaders {
		if err := loaders[i].Load(); err != nil {
			return curated.Errorf("machine: %v", err)
		}
		if err := loaders[i].Attach(m.RAM); err != nil {
			return curated.Errorf("machine: %v", err)
		}
	}

	m.Reset()

	return nil
}

// Close releases the resources held by the devices on the bus.
func (m *Machine) Close() error {
	return m.Bus.Close()
}
