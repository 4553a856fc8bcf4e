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

// Package disassembly decodes 8080A machine code into a form suitable for
// display. Nothing is executed: decoding only reads memory through the Peek()
// function of the memory.Area interface and so has no side effects on the
// emulation.
//
// The numeric values in operands are formatted with the Templates type. The
// DefaultTemplates produce plain hexadecimal numbers and the IntelTemplates
// produce numbers in the style of the Intel assembler, with a trailing H and a
// leading zero where the number would otherwise begin with a letter.
//
//	e := disassembly.Decode(mem, 0x0100)
//	fmt.Println(e.Simplified)
//
// Every Entry also carries a simplified form of the instruction which is
// always formatted the same way regardless of the templates used.
package disassembly
