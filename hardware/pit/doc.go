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

// Package pit emulates the Intel 8254 programmable interval timer.
//
// The 8254 has three independent counters. Each counter has a clock input, a
// gate input and an output. In this emulation a counter is either connected
// to a clock pin, in which case it counts the falling edges of whatever is
// driving the node the pin is attached to, or it is connected directly to the
// system clock. A direct counter does not count each cycle individually but
// schedules an event with the scheduler for the time at which its output
// would next change. Direct counters support modes 0, 1 and 2. Counters with
// a clock pin support all six modes.
//
// The PIT occupies four consecutive ports. The low two bits of the port
// number select the register: 0 to 2 for the counters and 3 for the control
// word. Reading the control word port returns 0xff.
//
// The 8253 is available with New8253(). It differs only in that control words
// with both select bits set, the read-back command of the 8254, are ignored.
package pit
