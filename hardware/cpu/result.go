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

package cpu

import "fmt"

// Result describes the last instruction executed or interrupt acknowledged by
// the CPU.
type Result struct {
	// the address of the instruction. for an interrupt this is the PC at
	// the time the interrupt was acknowledged
	Address uint16

	// nil if the result is for an interrupt
	Opcode *Opcode

	// the vector data placed on the bus by the interrupting device. only
	// valid if Opcode is nil
	Vector int

	Cycles int
}

func (r Result) String() string {
	if r.Opcode == nil {
		return fmt.Sprintf("%04x interrupt %#x (%d cycles)", r.Address, r.Vector, r.Cycles)
	}
	return fmt.Sprintf("%04x %s %s (%d cycles)", r.Address, r.Opcode.Mnemonic, r.Opcode.Operands, r.Cycles)
}
