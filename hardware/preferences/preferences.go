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

// Package preferences holds the preference values that configure the
// emulated machine.
package preferences

import (
	"github.com/gopherv/gopherv/paths"
	"github.com/gopherv/gopherv/prefs"
)

// DefaultPrefsFile is the name of the preferences file inside the resource
// directory.
const DefaultPrefsFile = "preferences"

// default values for the preferences.
const (
	DefaultClockSpeed = 1000000.0
	DefaultTextImage  = "text.bin"
	DefaultDataImage  = "data.bin"
)

// Preferences defines and collates the preference values used by the machine.
type Preferences struct {
	dsk *prefs.Disk

	// instructions per second. a value of zero or less means the machine
	// runs as fast as the host allows
	ClockSpeed prefs.Float

	// log every trap taken by the CPU
	LogTraps prefs.Bool

	// copy terminal output to the host's stdout
	TerminalEcho prefs.Bool

	// default image files loaded into the text and data segments
	TextImage prefs.String
	DataImage prefs.String
}

func (p *Preferences) String() string {
	return p.ClockSpeed.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If pth is empty the preferences file in the resource
// directory is used.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if pth == "" {
		var err error
		pth, err = paths.ResourcePath("", DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("cpu.clockspeed", &p.ClockSpeed)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.logtraps", &p.LogTraps)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("terminal.echo", &p.TerminalEcho)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.textimage", &p.TextImage)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.dataimage", &p.DataImage)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.ClockSpeed.Set(DefaultClockSpeed)
	p.LogTraps.Set(false)
	p.TerminalEcho.Set(true)
	p.TextImage.Set(DefaultTextImage)
	p.DataImage.Set(DefaultDataImage)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
