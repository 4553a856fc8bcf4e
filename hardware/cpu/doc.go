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

// Package cpu emulates the Intel 8080A microprocessor. Like all 8-bit
// processors of the era, the 8080A executes instructions according to the
// single byte value read from the address pointed to by the program counter.
// This single byte is the opcode and is looked up in the Opcodes table. The
// Behaviour of the opcode then moves execution of the program forward and
// reports how many cycles it took.
//
// The CPU does not own a clock of its own. The logical clock is the scheduler
// found in the instance, which the CPU advances by the number of cycles every
// instruction consumes. Before every instruction the scheduler is drained so
// that peripheral events due at the current time always happen before the CPU
// can observe them.
//
// The bread-and-butter of the CPU type is the Exec() function. Its arguments
// are the minimum number of cycles to run for, a mask of instruction
// categories that should stop execution before they are executed and an
// optional set of breakpoint addresses.
//
//	mc := cpu.NewCPU(ins, mem, ports)
//
//	for {
//		mc.Exec(1000, instructions.None, nil)
//	}
//
// Stepping a single instruction is a call to Exec() with a minCycles value
// of zero. Stopping before the next I/O instruction is a call with the
// instructions.IO mask.
//
// The register file is exported as the Regs field. The LastResult field
// describes the last instruction executed or the last interrupt acknowledged,
// which is useful for debuggers.
package cpu
