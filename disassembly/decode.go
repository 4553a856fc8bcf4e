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

	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/memory"
)

// Decode the instruction at the address using the DefaultTemplates.
func Decode(mem memory.Area, address uint16) Entry {
	return DefaultTemplates.Decode(mem, address)
}

// DecodeBytes decodes the instruction in the bytes using the
// DefaultTemplates.
func DecodeBytes(bytes []uint8, address uint16) Entry {
	return DefaultTemplates.DecodeBytes(bytes, address)
}

// Range decodes consecutive instructions using the DefaultTemplates.
func Range(mem memory.Area, from uint16, to uint16) []Entry {
	return DefaultTemplates.Range(mem, from, to)
}

// Decode the instruction at the address. Addresses wrap around the top of
// memory.
func (tmpl Templates) Decode(mem memory.Area, address uint16) Entry {
	defn := instructions.Definitions[mem.Peek(address)]
	b := make([]uint8, defn.Bytes)
	for i := range b {
		b[i] = mem.Peek(address + uint16(i))
	}
	return tmpl.DecodeBytes(b, address)
}

// DecodeBytes decodes the instruction in the bytes. The first byte is the
// opcode. If there are fewer bytes than the instruction requires then the
// bytes are reused from the beginning of the slice.
//
// The bytes slice must not be empty.
func (tmpl Templates) DecodeBytes(bytes []uint8, address uint16) Entry {
	if len(bytes) == 0 {
		panic("disassembly: no bytes to decode")
	}

	defn := instructions.Definitions[bytes[0]]

	e := Entry{
		Address:    address,
		Bytes:      make([]uint8, defn.Bytes),
		Definition: defn,
	}
	for i := range e.Bytes {
		e.Bytes[i] = bytes[i%len(bytes)]
	}

	v, _ := e.Operand()
	e.Mnemonic = tmpl.text(defn.Mnemonic)
	e.Operands = tmpl.text(defn.Operands + tmpl.value(defn.Bytes, v))

	operands := defn.Operands + DefaultTemplates.value(defn.Bytes, v)
	if operands == "" {
		e.Simplified = defn.Mnemonic
	} else {
		e.Simplified = fmt.Sprintf("%s %s", defn.Mnemonic, operands)
	}

	return e
}

// Range decodes consecutive instructions beginning at the from address. The
// last entry is the one that contains the to address. Decoding stops at the
// top of memory.
func (tmpl Templates) Range(mem memory.Area, from uint16, to uint16) []Entry {
	var entries []Entry

	address := int(from)
	for address <= int(to) && address <= 0xffff {
		e := tmpl.Decode(mem, uint16(address))
		entries = append(entries, e)
		address += len(e.Bytes)
	}

	return entries
}
