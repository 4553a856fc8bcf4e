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
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/debugger/govern"
	"github.com/jetsetilly/gopher8080/debugger/terminal"
	"github.com/jetsetilly/gopher8080/disassembly"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/logger"
)

// the number of cycles run between interrupt checks by the RUN command
const runQuantum = 10000

// the number of instructions shown by DISASM with no range
const disasmLength = 16

// the number of bytes shown on each line by PEEK
const peekLineLength = 16

// Sentinal errors for the processCommand() function.
const (
	argCount   = "%s: wrong number of arguments"
	argUnknown = "%s: unrecognised argument (%s)"
	argRange   = "%s: value out of range for %s (%#x)"
)

// processCommand executes the command.
func (dbg *Debugger) processCommand(cmd *command) error {
	keyword := strings.ToUpper(cmd.Keyword)
	args := cmd.Args

	switch keyword {
	case cmdHelp:
		return dbg.cmdHelp(args)

	case cmdQuit:
		if len(args) != 0 {
			return curated.Errorf(argCount, keyword)
		}
		dbg.state = govern.Ending

	case cmdStep:
		n := 1
		switch len(args) {
		case 0:
		case 1:
			var err error
			n, err = dbg.eval.evaluate(args[0])
			if err != nil {
				return err
			}
		default:
			return curated.Errorf(argCount, keyword)
		}
		for range n {
			address := dbg.machine.CPU.Regs.PC
			halted := dbg.machine.CPU.Regs.Halted
			dbg.machine.Step()
			if !halted {
				e := disassembly.Decode(dbg.machine.Mem, address)
				dbg.term.TermPrintLine(terminal.StyleCPUStep, e.String())
			}
		}
		dbg.term.TermPrintLine(terminal.StyleCPUStep, dbg.machine.CPU.String())

	case cmdRun:
		switch len(args) {
		case 0:
			halt, err := dbg.machine.RunUntil(instructions.None, dbg.continueCheck)
			if err != nil {
				return err
			}
			dbg.printHalt(halt)
		case 1:
			cycles, err := dbg.eval.evaluate(args[0])
			if err != nil {
				return err
			}
			dbg.run(int64(cycles))
		default:
			return curated.Errorf(argCount, keyword)
		}

	case cmdUntil:
		if len(args) != 1 {
			return curated.Errorf(argCount, keyword)
		}
		cat, ok := instructions.ParseCategory(args[0])
		if !ok {
			return curated.Errorf(argUnknown, keyword, args[0])
		}
		halt, err := dbg.machine.RunUntil(cat, dbg.continueCheck)
		if err != nil {
			return err
		}
		dbg.printHalt(halt)

	case cmdBreak:
		if len(args) == 0 {
			dbg.listBreakpoints()
			return nil
		}
		for _, a := range args {
			address, err := dbg.eval.address(a)
			if err != nil {
				return err
			}
			dbg.machine.Breakpoints[address] = true
			dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("break at %04x", address))
		}

	case cmdClear:
		if len(args) == 0 {
			clear(dbg.machine.Breakpoints)
			dbg.term.TermPrintLine(terminal.StyleFeedback, "breakpoints cleared")
			return nil
		}
		for _, a := range args {
			address, err := dbg.eval.address(a)
			if err != nil {
				return err
			}
			if !dbg.machine.Breakpoints[address] {
				return curated.Errorf("%s: no breakpoint at %04x", keyword, address)
			}
			delete(dbg.machine.Breakpoints, address)
		}

	case cmdWatch:
		if len(args) == 0 {
			dbg.listWatches()
			return nil
		}
		for _, a := range args {
			address, err := dbg.eval.address(a)
			if err != nil {
				return err
			}
			dbg.machine.Watches[address] = true
			dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("watch %04x", address))
		}

	case cmdUnwatch:
		if len(args) == 0 {
			clear(dbg.machine.Watches)
			dbg.term.TermPrintLine(terminal.StyleFeedback, "watches cleared")
			return nil
		}
		for _, a := range args {
			address, err := dbg.eval.address(a)
			if err != nil {
				return err
			}
			if !dbg.machine.Watches[address] {
				return curated.Errorf("%s: no watch at %04x", keyword, address)
			}
			delete(dbg.machine.Watches, address)
		}

	case cmdRegs:
		switch len(args) {
		case 0:
		case 2:
			w, ok := dbg.machine.CPU.Regs.Width(args[0])
			if !ok {
				return curated.Errorf(argUnknown, keyword, args[0])
			}
			v, err := dbg.eval.evaluate(args[1])
			if err != nil {
				return err
			}

			// negative values are accepted and stored as two's complement
			if v < -(1<<(w-1)) || v >= 1<<w {
				return curated.Errorf(argRange, keyword, strings.ToUpper(args[0]), v)
			}
			dbg.machine.CPU.Regs.Set(args[0], v)
		default:
			return curated.Errorf(argCount, keyword)
		}
		dbg.term.TermPrintLine(terminal.StyleCPUStep, dbg.machine.CPU.String())

	case cmdDisasm:
		from := dbg.machine.CPU.Regs.PC
		var to uint16
		var err error

		switch len(args) {
		case 0:
		case 1, 2:
			from, err = dbg.eval.address(args[0])
			if err != nil {
				return err
			}
		default:
			return curated.Errorf(argCount, keyword)
		}

		if len(args) == 2 {
			to, err = dbg.eval.address(args[1])
			if err != nil {
				return err
			}
		} else {
			// the end of the range is found by decoding forward
			to = from
			for range disasmLength - 1 {
				n := disassembly.Decode(dbg.machine.Mem, to).Next()
				if n < to {
					break
				}
				to = n
			}
		}

		s := &strings.Builder{}
		err = disassembly.Write(s, disassembly.Range(dbg.machine.Mem, from, to), disassembly.WriteAttr{ByteCode: true})
		if err != nil {
			return err
		}
		dbg.printLines(terminal.StyleFeedback, s.String())

	case cmdPeek:
		if len(args) < 1 || len(args) > 2 {
			return curated.Errorf(argCount, keyword)
		}
		address, err := dbg.eval.address(args[0])
		if err != nil {
			return err
		}
		n := 1
		if len(args) == 2 {
			n, err = dbg.eval.evaluate(args[1])
			if err != nil {
				return err
			}
		}
		dbg.peek(address, n)

	case cmdPoke:
		if len(args) < 2 {
			return curated.Errorf(argCount, keyword)
		}
		address, err := dbg.eval.address(args[0])
		if err != nil {
			return err
		}

		// evaluate every value before changing memory
		data := make([]uint8, 0, len(args)-1)
		for _, a := range args[1:] {
			v, err := dbg.eval.byteValue(a)
			if err != nil {
				return err
			}
			data = append(data, v)
		}
		for i, v := range data {
			dbg.machine.Mem.Poke(address+uint16(i), v)
		}

	case cmdReset:
		if len(args) != 0 {
			return curated.Errorf(argCount, keyword)
		}
		dbg.machine.Reset()
		dbg.term.TermPrintLine(terminal.StyleFeedback, "machine reset")

	case cmdInterrupt:
		if len(args) != 1 {
			return curated.Errorf(argCount, keyword)
		}
		v, err := dbg.eval.evaluate(args[0])
		if err != nil {
			return err
		}
		if v < 0 || v > 7 {
			return curated.Errorf("%s: vector must be between 0 and 7 (%d)", keyword, v)
		}
		dbg.machine.Interrupt(v)

	case cmdLoad:
		if len(args) < 1 || len(args) > 2 {
			return curated.Errorf(argCount, keyword)
		}
		dest := -1
		if len(args) == 2 {
			address, err := dbg.eval.address(args[1])
			if err != nil {
				return err
			}
			dest = int(address)
		}
		inf, err := dbg.machine.Load(args[0], dest)
		if err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("loaded %s", inf))

	case cmdSave:
		if len(args) != 3 {
			return curated.Errorf(argCount, keyword)
		}
		from, err := dbg.eval.address(args[1])
		if err != nil {
			return err
		}
		to, err := dbg.eval.address(args[2])
		if err != nil {
			return err
		}
		if to < from {
			return curated.Errorf("%s: end address is before start address", keyword)
		}
		n := int(to) - int(from) + 1
		if err := memory.Save(args[0], dbg.machine.Mem, from, n); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("saved %d bytes to %s", n, args[0]))

	case cmdLog:
		switch len(args) {
		case 0:
			s := &strings.Builder{}
			logger.Write(s)
			dbg.printLines(terminal.StyleLog, s.String())
		case 1:
			if strings.ToUpper(args[0]) != "CLEAR" {
				return curated.Errorf(argUnknown, keyword, args[0])
			}
			logger.Clear()
		default:
			return curated.Errorf(argCount, keyword)
		}

	case cmdDevices:
		if len(args) != 0 {
			return curated.Errorf(argCount, keyword)
		}
		dbg.printLines(terminal.StyleFeedback, dbg.machine.String())

	case cmdMemviz:
		if len(args) != 1 {
			return curated.Errorf(argCount, keyword)
		}
		if err := dbg.memviz(args[0]); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("memviz written to %s", args[0]))

	default:
		return curated.Errorf("%s is not yet implemented", keyword)
	}

	return nil
}

// run the machine for the number of cycles. interrupts are checked every
// runQuantum cycles.
func (dbg *Debugger) run(cycles int64) {
	var elapsed int64
	for elapsed < cycles {
		n, halt := dbg.machine.Run(min(runQuantum, cycles-elapsed))
		elapsed += n
		if halt != hardware.Completed {
			dbg.printHalt(halt)
			return
		}
		if dbg.interrupted() {
			break
		}
	}
	dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("%d cycles", elapsed))
}

func (dbg *Debugger) printHalt(halt hardware.Halt) {
	if halt == hardware.Watchpoint {
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("halted: %s at %04x (%s)", halt, dbg.machine.CPU.Regs.PC, dbg.machine.LastWatch()))
		return
	}
	dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("halted: %s at %04x", halt, dbg.machine.CPU.Regs.PC))
}

func (dbg *Debugger) listBreakpoints() {
	if len(dbg.machine.Breakpoints) == 0 {
		dbg.term.TermPrintLine(terminal.StyleFeedback, "no breakpoints")
		return
	}
	l := make([]uint16, 0, len(dbg.machine.Breakpoints))
	for a := range dbg.machine.Breakpoints {
		l = append(l, a)
	}
	slices.Sort(l)
	for _, a := range l {
		e := disassembly.Decode(dbg.machine.Mem, a)
		dbg.term.TermPrintLine(terminal.StyleFeedback, e.String())
	}
}

func (dbg *Debugger) listWatches() {
	if len(dbg.machine.Watches) == 0 {
		dbg.term.TermPrintLine(terminal.StyleFeedback, "no watches")
		return
	}
	l := slices.Sorted(maps.Keys(dbg.machine.Watches))
	for _, a := range l {
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("%04x: %02x", a, dbg.machine.Mem.Peek(a)))
	}
}

func (dbg *Debugger) peek(address uint16, n int) {
	s := &strings.Builder{}
	for i := range n {
		if i%peekLineLength == 0 {
			if i > 0 {
				dbg.term.TermPrintLine(terminal.StyleFeedback, s.String())
				s.Reset()
			}
			fmt.Fprintf(s, "%04x:", address+uint16(i))
		}
		fmt.Fprintf(s, " %02x", dbg.machine.Mem.Peek(address+uint16(i)))
	}
	if s.Len() > 0 {
		dbg.term.TermPrintLine(terminal.StyleFeedback, s.String())
	}
}

// printLines prints each line of the string as a separate terminal line.
func (dbg *Debugger) printLines(style terminal.Style, s string) {
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		dbg.term.TermPrintLine(style, l)
	}
}
