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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
)

// Entry is a single decoded instruction.
type Entry struct {
	Address uint16

	// the bytes of the instruction. the length of the slice is the same as
	// the Bytes field of the definition
	Bytes []uint8

	Definition instructions.Definition

	// mnemonic and operand text formatted according to the templates used
	// to decode the entry
	Mnemonic string
	Operands string

	// the instruction as a single line in a format that doesn't depend on
	// any templates
	Simplified string
}

// Bytecode returns the instruction bytes as a string of hexadecimal pairs.
func (e Entry) Bytecode() string {
	s := strings.Builder{}
	for i, b := range e.Bytes {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", b))
	}
	return s.String()
}

// Operand returns the value of the instruction's immediate data. Returns
// false if the instruction has no immediate data.
func (e Entry) Operand() (uint16, bool) {
	switch len(e.Bytes) {
	case 2:
		return uint16(e.Bytes[1]), true
	case 3:
		return uint16(e.Bytes[2])<<8 | uint16(e.Bytes[1]), true
	}
	return 0, false
}

// Next returns the address of the instruction that follows this one in
// memory.
func (e Entry) Next() uint16 {
	return e.Address + uint16(len(e.Bytes))
}

func (e Entry) String() string {
	return fmt.Sprintf("%04x  %-8s  %s", e.Address, e.Bytecode(), e.Simplified)
}
