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

package hardware

import (
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/debugger/govern"
	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
)

// While the continueCheck() function only runs between calls to the CPU's
// Exec() function, it can still be expensive to do a full continue check
// after every instruction.
//
// PerformanceBrake is the minimum number of cycles the CPU is asked to
// execute before the continueCheck() function is called again.
const PerformanceBrake = 100

// Halt indicates why a run of the emulation stopped.
type Halt int

// List of Halt values.
const (
	// the requested number of cycles has elapsed or the continue check
	// ended the run
	Completed Halt = iota

	// the program counter is at an address in the breakpoints set
	Breakpoint

	// the next instruction is in an excluded category
	Excluded

	// the machine is suspended
	Suspended

	// the CPU wrote to an address in the watches set
	Watchpoint
)

func (h Halt) String() string {
	switch h {
	case Completed:
		return "completed"
	case Breakpoint:
		return "breakpoint"
	case Excluded:
		return "excluded instruction"
	case Suspended:
		return "suspended"
	case Watchpoint:
		return "watchpoint"
	}
	return ""
}

// Run the emulation for at least the number of cycles. The run stops early if
// a breakpoint is reached or a watched address is written. Returns the number of cycles that elapsed and the
// reason for stopping.
func (m *Machine) Run(cycles int64) (int64, Halt) {
	var elapsed int64
	m.watched = false
	for elapsed < cycles {
		if m.CPU.IsSuspended() {
			return elapsed, Suspended
		}
		elapsed += m.CPU.Exec(cycles-elapsed, instructions.None, m.Breakpoints)
		if m.watchHit() {
			return elapsed, Watchpoint
		}
		if m.Breakpoints[m.CPU.Regs.PC] {
			return elapsed, Breakpoint
		}
	}
	return elapsed, Completed
}

// RunUntil runs the emulation until the next instruction intersects the
// exclude category, a breakpoint is reached or a watched address is written. The instruction at the
// current program counter is always executed, so calling RunUntil() again
// after it stops on an excluded instruction will move past it.
//
// The continueCheck function is called every PerformanceBrake cycles and can
// be nil. Returning a state that does not continue ends the run.
func (m *Machine) RunUntil(exclude instructions.Category, continueCheck func() (govern.State, error)) (Halt, error) {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	if m.CPU.IsSuspended() {
		return Suspended, nil
	}

	m.watched = false
	m.CPU.Exec(1, instructions.None, nil)

	for {
		if m.CPU.IsSuspended() {
			return Suspended, nil
		}
		if m.watchHit() {
			return Watchpoint, nil
		}
		if m.Breakpoints[m.CPU.Regs.PC] {
			return Breakpoint, nil
		}
		if m.excluded(exclude) {
			return Excluded, nil
		}

		m.CPU.Exec(PerformanceBrake, exclude, m.Breakpoints)

		state, err := continueCheck()
		if err != nil {
			return Completed, err
		}
		switch state {
		case govern.Running, govern.Stepping:
		case govern.Ending, govern.Paused:
			return Completed, nil
		default:
			return Completed, curated.Errorf("machine: unsupported emulation state (%v) in RunUntil() function", state)
		}
	}
}

// excluded returns true if the instruction at the program counter is in the
// exclude category. A halted CPU has no next instruction.
func (m *Machine) excluded(exclude instructions.Category) bool {
	if exclude == instructions.None || m.CPU.Regs.Halted {
		return false
	}
	return cpu.Opcodes[m.Mem.Peek(m.CPU.Regs.PC)].Category&exclude != instructions.None
}

// watchHit returns true once for every write to a watched address.
func (m *Machine) watchHit() bool {
	hit := m.watched
	m.watched = false
	return hit
}
