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

// Package hardware is the base package for the 8080A emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains references to
// all the sub-systems of a reference board: the CPU, memory, the port space
// and the peripheral chips wired to it. From here, the emulation can either
// be run for a number of cycles, run until a condition is met, or stepped
// one instruction at a time.
//
// The board has the following peripherals:
//
//	ports f0-f3	8255A peripheral interface
//	ports f4-f7	8254 interval timer
//	port  f8	output latch
//
// Counter 0 of the 8254 is clocked through its clock pin by a frequency
// generator with a period of 64 CPU cycles. Counters 1 and 2 count the CPU
// clock directly. The output of counter 0 drives a frequency divider and is
// observed by a probe. The output of the divider can be read on PC0 of the
// 8255A.
//
// Memory is a MappedMemory. CPU writes to an address in the Watches set stop
// Run() and RunUntil() with the Watchpoint halt once the instruction has
// completed.
package hardware
