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

// Package debugger implements the machine monitor. The monitor is a command
// line interface to a running hardware.Machine: it can step and run the
// machine, set breakpoints, inspect and change registers and memory, and
// load and save memory images.
//
// Command lines are parsed by a grammar built with participle. Numeric
// arguments are expressions evaluated by a starlark interpreter in which the
// CPU registers are predeclared. For example:
//
//	BREAK PC+3
//	POKE HL 0x3e
//	PEEK "peek(SP) | peek(SP+1) << 8"
//
// Numbers ending in H, in the style of Intel assemblers, are also accepted
// and are rewritten as hexadecimal before evaluation.
//
// Interaction with the user is through the terminal.Terminal interface. A
// long running command is stopped by the terminal's Interrupted() function
// or by an interrupt signal from the operating system.
package debugger
