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

package debugger

import (
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8080/debugger/govern"
	"github.com/jetsetilly/gopher8080/debugger/terminal"
	"github.com/jetsetilly/gopher8080/disassembly"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/logger"
)

// Debugger is the basic monitor implementation.
type Debugger struct {
	machine *hardware.Machine
	term    terminal.Terminal
	eval    evaluator

	// the monitor ends when the state is govern.Ending
	state govern.State

	// interrupt signals from the operating system
	intEvents chan os.Signal
}

// NewDebugger creates and initialises everything required for a new
// monitoring session.
func NewDebugger(m *hardware.Machine, term terminal.Terminal) *Debugger {
	return &Debugger{
		machine:   m,
		term:      term,
		eval:      evaluator{machine: m},
		state:     govern.Paused,
		intEvents: make(chan os.Signal, 1),
	}
}

// Start the main monitor loop. The loop ends with the QUIT command or when
// the terminal has no more input.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return err
	}
	defer dbg.term.CleanUp()

	signal.Notify(dbg.intEvents, os.Interrupt)
	defer signal.Stop(dbg.intEvents)

	return dbg.inputLoop()
}

func (dbg *Debugger) inputLoop() error {
	for dbg.state != govern.Ending {
		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				dbg.state = govern.Ending
				return nil
			}
			return err
		}

		dbg.term.TermPrintLine(terminal.StyleEcho, input)

		if err := dbg.parseInput(input); err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}
	return nil
}

// prompt shows the instruction at the program counter.
func (dbg *Debugger) prompt() terminal.Prompt {
	e := disassembly.Decode(dbg.machine.Mem, dbg.machine.CPU.Regs.PC)
	return terminal.NewPrompt(e.String(), dbg.machine.CPU.Regs.Halted)
}

// parseInput parses and executes a single line of input.
func (dbg *Debugger) parseInput(input string) error {
	cmd, err := parseCommand(input)
	if err != nil {
		return err
	}
	if cmd == nil {
		return nil
	}
	return dbg.processCommand(cmd)
}

// interrupted checks the terminal and the operating system for a request to
// stop a long running command.
func (dbg *Debugger) interrupted() bool {
	select {
	case <-dbg.intEvents:
		return true
	default:
	}
	return dbg.term.Interrupted()
}

// continueCheck is used by the run loops of the machine.
func (dbg *Debugger) continueCheck() (govern.State, error) {
	if dbg.interrupted() {
		logger.Log(dbg.machine.Instance, "monitor", "run interrupted")
		return govern.Paused, nil
	}
	return govern.Running, nil
}
