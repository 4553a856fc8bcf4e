// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences holds the preference values of the emulated machine.
// Values are backed by the prefs package and persisted in the resource
// directory.
package preferences

import (
	"github.com/jetsetilly/gopher8080/paths"
	"github.com/jetsetilly/gopher8080/prefs"
)

// DefaultPrefsFile is the name of the file the preferences are stored in.
const DefaultPrefsFile = "preferences"

// Default values.
const (
	DefaultROMStart         = 0
	DefaultRAMStart         = 0
	DefaultClock            = 2000000
	DefaultPropagationLimit = 65536
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// memory below ROMStart*0x400 is writable, as is memory at or above
	// RAMStart*0x400. everything in between is ROM
	ROMStart prefs.Int
	RAMStart prefs.Int

	// the clock frequency of the CPU in Hz. the emulation advances a logical
	// clock so this value only matters when pacing emulation against wall
	// clock time or when converting cycles to samples
	Clock prefs.Int

	// the maximum number of node notifications in a single propagation run
	// through the signal network. wiring that forms a feedback loop would
	// otherwise never settle
	PropagationLimit prefs.Int

	// log every interrupt acknowledged by the CPU
	LogInterrupts prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

// NewPreferencesFromFile creates a Preferences instance backed by the named
// file. An empty filename creates an instance that is never saved, useful for
// testing.
func NewPreferencesFromFile(filename string) (*Preferences, error) {
	return newPreferences(filename)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if pth == "" {
		return p, nil
	}

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err = p.dsk.Add("machine.romstart", &p.ROMStart); err != nil {
		return nil, err
	}
	if err = p.dsk.Add("machine.ramstart", &p.RAMStart); err != nil {
		return nil, err
	}
	if err = p.dsk.Add("machine.clock", &p.Clock); err != nil {
		return nil, err
	}
	if err = p.dsk.Add("signal.propagationlimit", &p.PropagationLimit); err != nil {
		return nil, err
	}
	if err = p.dsk.Add("cpu.loginterrupts", &p.LogInterrupts); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.ROMStart.Set(DefaultROMStart)
	p.RAMStart.Set(DefaultRAMStart)
	p.Clock.Set(DefaultClock)
	p.PropagationLimit.Set(DefaultPropagationLimit)
	p.LogInterrupts.Set(false)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
