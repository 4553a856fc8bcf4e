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

package govern

// State indicates the emulation's state. The state is consulted by a run loop
// between quanta of CPU execution.
type State int

// List of possible emulation states.
const (
	// the default state. never entered once the emulation has begun
	EmulatorStart State = iota

	// the run loop should return and the monitor should wait for input
	Paused

	// the monitor is single stepping the CPU
	Stepping

	// the run loop should continue until a halt condition
	Running

	// the program is exiting
	Ending
)

var stateNames = [...]string{"EmulatorStart", "Paused", "Stepping", "Running", "Ending"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return ""
	}
	return stateNames[s]
}

// Continues returns true if a run loop should keep executing instructions in
// this state.
func (s State) Continues() bool {
	return s == Running || s == Stepping
}
