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
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/debugger/terminal"
)

// the order in which commands are listed by HELP.
var helpOrder = []string{
	cmdStep, cmdRun, cmdUntil, cmdBreak, cmdClear,
	cmdWatch, cmdUnwatch, cmdRegs, cmdDisasm, cmdPeek, cmdPoke,
	cmdReset, cmdInterrupt, cmdLoad, cmdSave,
	cmdLog, cmdDevices, cmdMemviz, cmdHelp, cmdQuit,
}

var helps = map[string]string{
	cmdStep:      "Step forward one instruction, or the number of instructions given",
	cmdRun:       "Run until a breakpoint, a watch or until interrupted. A number of cycles can be given",
	cmdUntil:     "Run until the next instruction is in the category (IO, IOR, IOW, JMP, CALL, RET, HLT, MR, MW, UND)",
	cmdBreak:     "Halt when the program counter reaches the address. With no address, list breakpoints",
	cmdClear:     "Clear the breakpoint at the address. With no address, clear all breakpoints",
	cmdWatch:     "Halt after the CPU writes to the address. With no address, list watches",
	cmdUnwatch:   "Remove the watch on the address. With no address, remove all watches",
	cmdRegs:      "Display the CPU registers. A register can be changed with REGS <name> <value>",
	cmdDisasm:    "Disassemble memory from the program counter or from the address range given",
	cmdPeek:      "Inspect memory. The number of bytes can be given after the address",
	cmdPoke:      "Modify memory. Any number of bytes can be given after the address",
	cmdReset:     "Reset the CPU and peripheral devices. Memory is not cleared",
	cmdInterrupt: "Request an interrupt with the RST instruction for the vector (0 to 7)",
	cmdLoad:      "Load an Intel HEX or binary file. Binary files are loaded at address zero unless an address is given",
	cmdSave:      "Save memory between two addresses (inclusive) to file. Files with a .hex extension are saved as Intel HEX",
	cmdLog:       "Display the log. LOG CLEAR empties the log",
	cmdDevices:   "Display the state of the CPU, memory and peripheral devices",
	cmdMemviz:    "Write a Graphviz description of the CPU and peripheral devices to file",
	cmdHelp:      "Lists commands and provides help for individual commands",
	cmdQuit:      "Exits the monitor",
}

func (dbg *Debugger) cmdHelp(args []string) error {
	switch len(args) {
	case 0:
		s := strings.Builder{}
		for i, c := range helpOrder {
			if i > 0 && i%6 == 0 {
				dbg.term.TermPrintLine(terminal.StyleHelp, strings.TrimSpace(s.String()))
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("%-10s", c))
		}
		dbg.term.TermPrintLine(terminal.StyleHelp, strings.TrimSpace(s.String()))
		dbg.term.TermPrintLine(terminal.StyleHelp, "")
		dbg.term.TermPrintLine(terminal.StyleHelp, "Numeric arguments are expressions. Register names can be used in expressions")
	case 1:
		h, ok := helps[strings.ToUpper(args[0])]
		if !ok {
			return curated.Errorf("%s: no help for %s", cmdHelp, args[0])
		}
		dbg.term.TermPrintLine(terminal.StyleHelp, h)
	default:
		return curated.Errorf(argCount, cmdHelp)
	}
	return nil
}
