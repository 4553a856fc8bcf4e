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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8080/disassembly"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/test"
)

func TestDecodeBytes(t *testing.T) {
	e := disassembly.DecodeBytes([]uint8{0x00}, 0x0000)
	test.ExpectEquality(t, e.Mnemonic, "NOP")
	test.ExpectEquality(t, e.Operands, "")
	test.ExpectEquality(t, e.Simplified, "NOP")

	e = disassembly.DecodeBytes([]uint8{0x06, 0x3e}, 0x0000)
	test.ExpectEquality(t, e.Mnemonic, "MVI")
	test.ExpectEquality(t, e.Operands, "B,3E")
	test.ExpectEquality(t, e.Simplified, "MVI B,3E")

	e = disassembly.DecodeBytes([]uint8{0x21, 0x34, 0x12}, 0x0100)
	test.ExpectEquality(t, e.Simplified, "LXI H,1234")
	test.ExpectEquality(t, e.Bytecode(), "21 34 12")
	test.ExpectEquality(t, e.Next(), uint16(0x0103))
	v, ok := e.Operand()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint16(0x1234))

	e = disassembly.DecodeBytes([]uint8{0x78}, 0x0000)
	test.ExpectEquality(t, e.Simplified, "MOV A,B")

	e = disassembly.DecodeBytes([]uint8{0xf5}, 0x0000)
	test.ExpectEquality(t, e.Simplified, "PUSH PSW")

	e = disassembly.DecodeBytes([]uint8{0xff}, 0x0000)
	test.ExpectEquality(t, e.Simplified, "RST 7")

	// undocumented instructions are shown as the instruction they behave as
	e = disassembly.DecodeBytes([]uint8{0xdd, 0x00, 0x20}, 0x0000)
	test.ExpectEquality(t, e.Simplified, "CALL 2000")
	test.ExpectSuccess(t, e.Definition.Undocumented())

	// short slices wrap around
	e = disassembly.DecodeBytes([]uint8{0xc3}, 0x0000)
	test.ExpectEquality(t, e.Simplified, "JMP C3C3")
	test.ExpectEquality(t, len(e.Bytes), 3)

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	disassembly.DecodeBytes([]uint8{}, 0x0000)
}

func TestTemplates(t *testing.T) {
	e := disassembly.IntelTemplates.DecodeBytes([]uint8{0x3e, 0xff}, 0x0000)
	test.ExpectEquality(t, e.Operands, "A,0FFH")
	test.ExpectEquality(t, e.Simplified, "MVI A,FF")

	e = disassembly.IntelTemplates.DecodeBytes([]uint8{0xc3, 0x00, 0x10}, 0x0000)
	test.ExpectEquality(t, e.Operands, "1000H")

	tmpl := disassembly.Templates{
		Byte:      "$%02x",
		Word:      "$%04x",
		LowerCase: true,
	}
	e = tmpl.DecodeBytes([]uint8{0xd3, 0xf8}, 0x0000)
	test.ExpectEquality(t, e.Mnemonic, "out")
	test.ExpectEquality(t, e.Operands, "$f8")
	test.ExpectEquality(t, e.Simplified, "OUT F8")
}

func TestRange(t *testing.T) {
	mem := memory.NewSimpleMemory(logger.Allow, "test", 0, 0)

	// LXI SP,0100 ; MVI A,01 ; OUT F8 ; HLT
	for i, b := range []uint8{0x31, 0x00, 0x01, 0x3e, 0x01, 0xd3, 0xf8, 0x76} {
		mem.Poke(uint16(i), b)
	}

	entries := disassembly.Range(mem, 0x0000, 0x0007)
	test.ExpectEquality(t, len(entries), 4)
	test.ExpectEquality(t, entries[0].Simplified, "LXI SP,0100")
	test.ExpectEquality(t, entries[2].Address, uint16(0x0005))
	test.ExpectEquality(t, entries[3].Simplified, "HLT")

	// the last entry contains the to address
	entries = disassembly.Range(mem, 0x0000, 0x0004)
	test.ExpectEquality(t, len(entries), 2)

	// decoding stops at the top of memory
	entries = disassembly.Range(mem, 0xfffe, 0xffff)
	test.ExpectEquality(t, len(entries), 2)

	s := &strings.Builder{}
	test.ExpectSuccess(t, disassembly.Write(s, disassembly.Range(mem, 0x0000, 0x0007), disassembly.WriteAttr{}))
	test.ExpectEquality(t, s.String(), "0000  LXI SP,0100\n0003  MVI A,01\n0005  OUT F8\n0007  HLT\n")
}
