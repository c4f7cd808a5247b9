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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/gopherv/gopherv/environment"
	"github.com/gopherv/gopherv/hardware"
	"github.com/gopherv/gopherv/hardware/preferences"
	"github.com/gopherv/gopherv/imageloader"
	"github.com/gopherv/gopherv/logger"
	"github.com/gopherv/gopherv/modalflag"
	"github.com/gopherv/gopherv/prefs"
)

// flags shared by every mode that creates a machine.
type commonFlags struct {
	prefsFile *string
	cps       *float64
	log       *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		prefsFile: md.AddString("prefs", "", "preferences file to use instead of the default"),
		cps:       md.AddFloat64("cps", preferences.DefaultClockSpeed, "clocks per second. zero or less is unlimited"),
		log:       md.AddBool("log", false, "echo trap log to stdout"),
	}
}

// machine creates a machine according to the flags and the remaining
// arguments, which name the text and data images in that order. If no
// arguments are given then the images named in the preferences are used.
func (c commonFlags) machine(md *modalflag.Modes) (*hardware.Machine, error) {
	// flags that were set on the command line take priority over the values
	// in the preferences file
	var override []string
	md.Visit(func(flag string) {
		switch flag {
		case "cps":
			override = append(override, fmt.Sprintf("cpu.clockspeed::%g", *c.cps))
		case "log":
			override = append(override, fmt.Sprintf("cpu.logtraps::%v", *c.log))
		}
	})
	prefs.PushCommandLineStack(strings.Join(override, "; "))
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences(*c.prefsFile)
	if err != nil {
		return nil, err
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	if err != nil {
		return nil, err
	}

	if *c.log {
		logger.SetEcho(md.Output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	var loaders []imageloader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
		loaders = append(loaders, imageloader.NewLoader(p.TextImage.String(), imageloader.Text))

		// the data image named in the preferences is optional
		data := p.DataImage.String()
		if data != "" {
			_, err := os.Stat(data)
			if strings.Contains(data, "://") || !errors.Is(err, fs.ErrNotExist) {
				loaders = append(loaders, imageloader.NewLoader(data, imageloader.Data))
			}
		}
	case 1:
		loaders = append(loaders, imageloader.NewLoader(md.GetArg(0), imageloader.Text))
	case 2:
		loaders = append(loaders, imageloader.NewLoader(md.GetArg(0), imageloader.Text))
		loaders = append(loaders, imageloader.NewLoader(md.GetArg(1), imageloader.Data))
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	m, err := hardware.NewMachine(env, nil)
	if err != nil {
		return nil, err
	}

	err = m.AttachImages(loaders...)
	if err != nil {
		m.Close()
		return nil, err
	}

	return m, nil
}
