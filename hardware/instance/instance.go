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

// Package instance defines those parts of the emulation that are shared by
// every component of a single machine but are not the machine itself. An
// Instance is created once and passed to every component when it is
// constructed.
//
// Particularly useful when running more than one machine at the same time, in
// tests for example. Nothing in the emulation is a package level singleton.
package instance

import (
	"github.com/jetsetilly/gopher8080/hardware/preferences"
	"github.com/jetsetilly/gopher8080/hardware/scheduler"
	"github.com/jetsetilly/gopher8080/hardware/signal"
)

// Label indicates the context of the instance.
type Label string

// List of value Label values.
const (
	Main    Label = ""
	Testing Label = "testing"

	// a silent instance never adds entries to the log
	Silent Label = "silent"
)

// Instance defines those parts of the emulation that are shared between the
// components of one machine.
type Instance struct {
	Label Label

	// the preferences of the running instance. this instance can be shared
	// with other running instances of the emulation
	Prefs *preferences.Preferences

	// the logical clock of the machine and the events waiting on it
	Scheduler *scheduler.Scheduler

	// the arena of nodes and pins wiring the chips together
	Network *signal.Network
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil, in which case a new prefs instance will be
// created from the preferences file. Providing a non-nil value allows the
// preferences of more than one instance to be synchronised.
func NewInstance(label Label, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Label:     label,
		Scheduler: scheduler.NewScheduler(),
	}
	ins.Network = signal.NewNetwork(ins)

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs
	ins.Network.SetPropagationLimit(ins.Prefs.PropagationLimit.Get().(int))

	return ins, nil
}

// NewTestingInstance creates an instance with default preferences that are
// never written to disk.
func NewTestingInstance() *Instance {
	prefs, err := preferences.NewPreferencesFromFile("")
	if err != nil {
		panic(err)
	}
	ins, err := NewInstance(Testing, prefs)
	if err != nil {
		panic(err)
	}
	return ins
}

// Normalise ensures the instance is in a known default state. Useful for
// regression testing where the initial state must be the same for every run of
// the test.
func (ins *Instance) Normalise() {
	ins.Prefs.SetDefaults()
	ins.Network.SetPropagationLimit(ins.Prefs.PropagationLimit.Get().(int))
}

// AllowLogging implements the logger.Permission interface.
func (ins *Instance) AllowLogging() bool {
	return ins.Label != Silent
}
