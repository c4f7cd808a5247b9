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

package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/gopherv/gopherv/debugger/monitor"
	"github.com/gopherv/gopherv/digest"
	"github.com/gopherv/gopherv/hardware/cpu"
	"github.com/gopherv/gopherv/hardware/memory/memorymap"
	"github.com/gopherv/gopherv/imageloader"
	"github.com/gopherv/gopherv/modalflag"
	"github.com/gopherv/gopherv/performance"
	"github.com/gopherv/gopherv/statsview"
	"github.com/gopherv/gopherv/version"
)

func main() {
	// #ctrlc ends a continuous run
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	exitVal := launch(ctx, os.Stdout, os.Args[1:])

	stop()
	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch the mode selected by the arguments. returns the value to use with
// os.Exit()
func launch(ctx context.Context, output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "INSPECT", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)

	case "DISASM":
		err = disasm(md)

	case "INSPECT":
		err = inspect(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	c := addCommonFlags(md)
	steps := md.AddInt("steps", 0, "number of clocks to run for. zero runs until the program halts")
	stats := md.AddBool("statsview", false, "run stats server (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Fprintln(md.Output, "! stats server not available in this build")
		}
	}

	m, err := c.machine(md)
	if err != nil {
		return err
	}
	defer m.Close()

	if m.Env().Prefs.TerminalEcho.Get().(bool) {
		m.Terminal.SetEcho(md.Output)
	}

	stopKeyboard := hostKeyboard(m.Keyboard)
	defer stopKeyboard()

	if *steps > 0 {
		n := m.Step(*steps)
		fmt.Fprintf(md.Output, "\n* %d clocks\n", n)
		return nil
	}

	state, err := m.Run(ctx, nil)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "\n* %s after %d clocks\n", strings.ToLower(state.String()), m.CPU.Cycle())

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddString("origin", fmt.Sprintf("%#08x", memorymap.OriginText), "address of the first instruction")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("text image required for %s mode", md)
	case 1:
		addr, err := strconv.ParseUint(*origin, 0, 32)
		if err != nil {
			return fmt.Errorf("origin: %w", err)
		}

		ld := imageloader.NewLoader(md.GetArg(0), imageloader.Text)
		err = ld.Load()
		if err != nil {
			return err
		}

		for i := 0; i < len(ld.Data); i += 4 {
			var b [4]byte
			copy(b[:], ld.Data[i:])
			instr := binary.LittleEndian.Uint32(b[:])
			fmt.Fprintf(md.Output, "%08x: %08x  %s\n", uint32(addr)+uint32(i), instr, cpu.Disassemble(instr))
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func inspect(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommonFlags(md)
	steps := md.AddInt("steps", 0, "number of clocks to run before inspection")
	memory := md.AddString("memory", "", "address or register of a memory dump")
	words := md.AddInt("words", 16, "number of words in the memory dump")
	memviz := md.AddString("memviz", "", "write graphviz rendering of the machine to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := c.machine(md)
	if err != nil {
		return err
	}
	defer m.Close()

	m.Step(*steps)

	mon := monitor.NewMonitor(m)

	fmt.Fprintln(md.Output, mon.CPU())
	fmt.Fprintln(md.Output)
	fmt.Fprint(md.Output, mon.CSR())
	fmt.Fprintln(md.Output)
	fmt.Fprint(md.Output, mon.Devices())

	scrDigest := digest.NewScreen(m.Screen)
	scrDigest.Update()
	trmDigest := digest.NewTerminal(m.Terminal)
	trmDigest.Update()
	fmt.Fprintf(md.Output, "screen digest: %s\nterminal digest: %s\n", scrDigest.Hash(), trmDigest.Hash())

	if *memory != "" {
		ai, err := mon.Peek(*memory)
		if err != nil {
			return err
		}
		fmt.Fprintln(md.Output)
		fmt.Fprint(md.Output, mon.Memory(ai.Address, *words))
	}

	if *memviz != "" {
		f, err := os.Create(*memviz)
		if err != nil {
			return err
		}
		monitor.MemvizMachine(f, m)
		err = f.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommonFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: cpu, mem, trace (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	m, err := c.machine(md)
	if err != nil {
		return err
	}
	defer m.Close()

	return performance.Check(md.Output, prf, m, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	inf := version.Read()
	if *revision {
		fmt.Fprintln(md.Output, inf.String())
	} else {
		fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, inf.Version)
	}

	return nil
}
