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

// Package ppi emulates the Intel 8255A programmable peripheral interface.
//
// The 8255A has three 8 bit ports, A, B and C, and 24 pins. Pins 0 to 7 are
// port A, 8 to 15 are port B and 16 to 23 are port C. Every pin can be
// attached to a node of the signal network.
//
// Port A supports modes 0 (basic input/output), 1 (strobed input/output) and
// 2 (bidirectional bus). Port B supports modes 0 and 1. In modes 1 and 2 some
// of the port C pins are used as handshake lines and are no longer available
// for general use.
//
// The PPI occupies four consecutive ports. The low two bits of the port number
// select the register: 0 to 2 for ports A to C and 3 for the control word.
// Writing the control word with bit 7 clear sets or resets a single port C
// pin. Reading the control word returns 0xff.
//
// Pins that are not driven read as high.
package ppi
