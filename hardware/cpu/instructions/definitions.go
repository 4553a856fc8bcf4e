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

package instructions

import "fmt"

// Definition defines an opcode of the 8080A. It does not define the behaviour
// of the instruction.
//
// The Operands field is the fixed part of the operand text. For instructions
// longer than one byte the immediate value follows the fixed part. For
// example, the MVI B instruction has the operand text "B," and is followed by
// a byte value.
type Definition struct {
	OpCode   uint8
	Mnemonic string
	Operands string
	Bytes    int
	Category Category
}

func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s %s +%dbytes [%s]", defn.OpCode, defn.Mnemonic, defn.Operands, defn.Bytes, defn.Category)
}

// Undocumented returns true if the instruction is not documented by Intel.
func (defn Definition) Undocumented() bool {
	return defn.Category&UND == UND
}

// Definitions lists every opcode in opcode order.
var Definitions = [256]Definition{
	{OpCode: 0x00, Mnemonic: "NOP", Operands: "", Bytes: 1, Category: None},
	{OpCode: 0x01, Mnemonic: "LXI", Operands: "B,", Bytes: 3, Category: None},
	{OpCode: 0x02, Mnemonic: "STAX", Operands: "B", Bytes: 1, Category: MW},
	{OpCode: 0x03, Mnemonic: "INX", Operands: "B", Bytes: 1, Category: None},
	{OpCode: 0x04, Mnemonic: "INR", Operands: "B", Bytes: 1, Category: None},
	{OpCode: 0x05, Mnemonic: "DCR", Operands: "B", Bytes: 1, Category: None},
	{OpCode: 0x06, Mnemonic: "MVI", Operands: "B,", Bytes: 2, Category: None},
	{OpCode: 0x07, Mnemonic: "RLC", Operands: "", Bytes: 1, Category: None},
	{OpCode: 0x08, Mnemonic: "NOP", Operands: "", Bytes: 1, Category: UND},
	{OpCode: 0x09, Mnemonic: "DAD", Operands: "B", Bytes: 1, Category: None},
	{OpCode: 0x0a, Mnemonic: "LDAX", Operands: "B", Bytes: 1, Category: MR},
	{OpCode: 0x0b, Mnemonic: "DCX", Operands: "B", Bytes: 1, Category: None},
	{OpCode: 0x0c, Mnemonic: "INR", Operands: "C", Bytes: 1, Category: None},
	{OpCode: 0x0d, Mnemonic: "DCR", Operands: "C", Bytes: 1, Category: None},
	{OpCode: 0x0e, Mnemonic: "MVI", Operands: "C,", Bytes: 2, Category: None},
	{OpCode: 0x0f, Mnemonic: "RRC", Operands: "", Bytes: 1, Category: None},
	{OpCode: 0x10, Mnemonic: "NOP", Operands: "", Bytes: 1, Category: UND},
	{OpCode: 0x11, Mnemonic: "LXI", Operands: "D,", Bytes: 3, Category: None},
	{OpCode: 0x12, Mnemonic: "STAX", Operands: "D", Bytes: 1, Category: MW},
	{OpCode: 0x13, Mnemonic: "INX", Operands: "D", Bytes: 1, Category: None},
	{OpCode: 0x14, Mnemonic: "INR", Operands: "D", Bytes: 1, Category: None},
	{OpCode: 0x15, Mnemonic: "DCR", Operands: "D", Bytes: 1, Category: None},
	{OpCode: 0x16, Mnemonic: "MVI", Operands: "D,", Bytes: 2, Category: None},
	{OpCode: 0x17, Mnemonic: "RAL", Operands: "", Bytes: 1, Category: None},
	{OpCode: 0x18, Mnemonic: "NOP", Operands: "", Bytes: 1, Category: UND},
	{OpCode: 0x19, Mnemonic: "DAD", Operands: "D", Bytes: 1, Category: None},
	{OpCode: 0x1a, Mnemonic: "LDAX", Operands: "D", Bytes: 1, Category: MR},
	{OpCode: 0x1b, Mnemonic: "DCX", Operands: "D", Bytes: 1, Category: None},
	{OpCode: 0x1c, Mnemonic: "INR", Operands: "E", Bytes: 1, Category: None},
	{OpCode: 0x1d, Mnemonic: "DCR", Operands: "E", Bytes: 1, Category: None},
	{OpCode: 0x1e, Mnemonic: "MVI", Operands: "E,", Bytes: 2, Category: None},
	{OpCode: 0x1f, Mnemonic: "RAR", Operands: "", Bytes: 1, Category: None},
	{OpCode: 0x20, Mnemonic: "NOP", Operands: "", Bytes: 1, Category: UND},
	{OpCode: 0x21, Mnemonic: "LXI", Operands: "H,", Bytes: 3, Category: None},
	{OpCode: 0x22, Mnemonic: "SHLD", Operands: "", Bytes: 3, Category: MW},
	{OpCode: 0x23, Mnemonic: "INX", Operands: "H", Bytes: 1, Category: None},
	{OpCode: 0x24, Mnemonic: "INR", Operands: "H", Bytes: 1, Category: None},
	{OpCode: 0x25, Mnemonic: "DCR", Operands: "H", Bytes: 1, Category: None},
	{OpCode: 0x26, Mnemonic: "MVI", Operands: "H,", Bytes: 2, Category: None},
	{OpCode: 0x27, Mnemonic: "DAA", Operands: "", Bytes: 1, Category: None},
	{OpCode: 0x28, Mnemonic: "NOP", Operands: "", Bytes: 1, Category: UND},
	{OpCode: 0x29, Mnemonic: "DAD", Operands: "H", Bytes: 1, Category: None},
	{OpCode: 0x2a, Mnemonic: "LHLD", Operands: "", Bytes: 3, Category: MR},
	{OpCode: 0x2b, Mnemonic: "DCX", Operands: "H", Bytes: 1, Category: None},
	{OpCode: 0x2c, Mnemonic: "INR", Operands: "L", Bytes: 1, Category: None},
	{OpCode: 0x2d, Mnemonic: "DCR", Operands: "L", Bytes: 1, Category: None},
	{OpCode: 0x2e, Mnemonic: "MVI", Operands: "L,", Bytes: 2, Category: None},
	{OpCode: 0x2f, Mnemonic: "CMA", Operands: "", Bytes: 1, Category: None},
	{OpCode: 0x30, Mnemonic: "NOP", Operands: "", Bytes: 1, Category: UND},
	{OpCode: 0x31, Mnemonic: "LXI", Operands: "SP,", Bytes: 3, Category: None},
	{OpCode: 0x32, Mnemonic: "STA", Operands: "", Bytes: 3, Category: MW},
	{OpCode: 0x33, Mnemonic: "INX", Operands: "SP", Bytes: 1, Category: None},
	{OpCode: 0x34, Mnemonic: "INR", Operands: "M", Bytes: 1, Category: MR | MW},
	{OpCode: 0x35, Mnemonic: "DCR", Operands: "M", Bytes: 1, Category: MR | MW},
	{OpCode: 0x36, Mnemonic: "MVI", Operands: "M,", Bytes: 2, Category: MW},
	{OpCode: 0x37, Mnemonic: "STC", Operands: "", Bytes: 1, Category: None},
	{OpCode: 0x38, Mnemonic: "NOP", Operands: "", Bytes: 1, Category: UND},
	{OpCode: 0x39, Mnemonic: "DAD", Operands: "SP", Bytes: 1, Category: None},
	{OpCode: 0x3a, Mnemonic: "LDA", Operands: "", Bytes: 3, Category: MR},
	{OpCode: 0x3b, Mnemonic: "DCX", Operands: "SP", Bytes: 1, Category: None},
	{OpCode: 0x3c, Mnemonic: "INR", Operands: "A", Bytes: 1, Category: None},
	{OpCode: 0x3d, Mnemonic: "DCR", Operands: "A", Bytes: 1, Category: None},
	{OpCode: 0x3e, Mnemonic: "MVI", Operands: "A,", Bytes: 2, Category: None},
	{OpCode: 0x3f, Mnemonic: "CMC", Operands: "", Bytes: 1, Category: None},
	{OpCode: 0x40, Mnemonic: "MOV", Operands: "B,B", Bytes: 1, Category: None},
	{OpCode: 0x41, Mnemonic: "MOV", Operands: "B,C", Bytes: 1, Category: None},
	{OpCode: 0x42, Mnemonic: "MOV", Operands: "B,D", Bytes: 1, Category: None},
	{OpCode: 0x43, Mnemonic: "MOV", Operands: "B,E", Bytes: 1, Category: None},
	{OpCode: 0x44, Mnemonic: "MOV", Operands: "B,H", Bytes: 1, Category: None},
	{OpCode: 0x45, Mnemonic: "MOV", Operands: "B,L", Bytes: 1, Category: None},
	{OpCode: 0x46, Mnemonic: "MOV", Operands: "B,M", Bytes: 1, Category: MR},
	{OpCode: 0x47, Mnemonic: "MOV", Operands: "B,A", Bytes: 1, Category: None},
	{OpCode: 0x48, Mnemonic: "MOV", Operands: "C,B", Bytes: 1, Category: None},
	{OpCode: 0x49, Mnemonic: "MOV", Operands: "C,C", Bytes: 1, Category: None},
	{OpCode: 0x4a, Mnemonic: "MOV", Operands: "C,D", Bytes: 1, Category: None},
	{OpCode: 0x4b, Mnemonic: "MOV", Operands: "C,E", Bytes: 1, Category: None},
	{OpCode: 0x4c, Mnemonic: "MOV", Operands: "C,H", Bytes: 1, Category: None},
	{OpCode: 0x4d, Mnemonic: "MOV", Operands: "C,L", Bytes: 1, Category: None},
	{OpCode: 0x4e, Mnemonic: "MOV", Operands: "C,M", Bytes: 1, Category: MR},
	{OpCode: 0x4f, Mnemonic: "MOV", Operands: "C,A", Bytes: 1, Category: None},
	{OpCode: 0x50, Mnemonic: "MOV", Operands: "D,B", Bytes: 1, Category: None},
	{OpCode: 0x51, Mnemonic: "MOV", Operands: "D,C", Bytes: 1, Category: None},
	{OpCode: 0x52, Mnemonic: "MOV", Operands: "D,D", Bytes: 1, Category: None},
	{OpCode: 0x53, Mnemonic: "MOV", Operands: "D,E", Bytes: 1, Category: None},
	{OpCode: 0x54, Mnemonic: "MOV", Operands: "D,H", Bytes: 1, Category: None},
	{OpCode: 0x55, Mnemonic: "MOV", Operands: "D,L", Bytes: 1, Category: None},
	{OpCode: 0x56, Mnemonic: "MOV", Operands: "D,M", Bytes: 1, Category: MR},
	{OpCode: 0x57, Mnemonic: "MOV", Operands: "D,A", Bytes: 1, Category: None},
	{OpCode: 0x58, Mnemonic: "MOV", Operands: "E,B", Bytes: 1, Category: None},
	{OpCode: 0x59, Mnemonic: "MOV", Operands: "E,C", Bytes: 1, Category: None},
	{OpCode: 0x5a, Mnemonic: "MOV", Operands: "E,D", Bytes: 1, Category: None},
	{OpCode: 0x5b, Mnemonic: "MOV", Operands: "E,E", Bytes: 1, Category: None},
	{OpCode: 0x5c, Mnemonic: "MOV", Operands: "E,H", Bytes: 1, Category: None},
	{OpCode: 0x5d, Mnemonic: "MOV", Operands: "E,L", Bytes: 1, Category: None},
	{OpCode: 0x5e, Mnemonic: "MOV", Operands: "E,M", Bytes: 1, Category: MR},
	{OpCode: 0x5f, Mnemonic: "MOV", Operands: "E,A", Bytes: 1, Category: None},
	{OpCode: 0x60, Mnemonic: "MOV", Operands: "H,B", Bytes: 1, Category: None},
	{OpCode: 0x61, Mnemonic: "MOV", Operands: "H,C", Bytes: 1, Category: None},
	{OpCode: 0x62, Mnemonic: "MOV", Operands: "H,D", Bytes: 1, Category: None},
	{OpCode: 0x63, Mnemonic: "MOV", Operands: "H,E", Bytes: 1, Category: None},
	{OpCode: 0x64, Mnemonic: "MOV", Operands: "H,H", Bytes: 1, Category: None},
	{OpCode: 0x65, Mnemonic: "MOV", Operands: "H,L", Bytes: 1, Category: None},
	{OpCode: 0x66, Mnemonic: "MOV", Operands: "H,M", Bytes: 1, Category: MR},
	{OpCode: 0x67, Mnemonic: "MOV", Operands: "H,A", Bytes: 1, Category: None},
	{OpCode: 0x68, Mnemonic: "MOV", Operands: "L,B", Bytes: 1, Category: None},
	{OpCode: 0x69, Mnemonic: "MOV", Operands: "L,C", Bytes: 1, Category: None},
	{OpCode: 0x6a, Mnemonic: "MOV", Operands: "L,D", Bytes: 1, Category: None},
	{OpCode: 0x6b, Mnemonic: "MOV", Operands: "L,E", Bytes: 1, Category: None},
	{OpCode: 0x6c, Mnemonic: "MOV", Operands: "L,H", Bytes: 1, Category: None},
	{OpCode: 0x6d, Mnemonic: "MOV", Operands: "L,L", Bytes: 1, Category: None},
	{OpCode: 0x6e, Mnemonic: "MOV", Operands: "L,M", Bytes: 1, Category: MR},
	{OpCode: 0x6f, Mnemonic: "MOV", Operands: "L,A", Bytes: 1, Category: None},
	{OpCode: 0x70, Mnemonic: "MOV", Operands: "M,B", Bytes: 1, Category: MW},
	{OpCode: 0x71, Mnemonic: "MOV", Operands: "M,C", Bytes: 1, Category: MW},
	{OpCode: 0x72, Mnemonic: "MOV", Operands: "M,D", Bytes: 1, Category: MW},
	{OpCode: 0x73, Mnemonic: "MOV", Operands: "M,E", Bytes: 1, Category: MW},
	{OpCode: 0x74, Mnemonic: "MOV", Operands: "M,H", Bytes: 1, Category: MW},
	{OpCode: 0x75, Mnemonic: "MOV", Operands: "M,L", Bytes: 1, Category: MW},
	{OpCode: 0x76, Mnemonic: "HLT", Operands: "", Bytes: 1, Category: HLT},
	{OpCode: 0x77, Mnemonic: "MOV", Operands: "M,A", Bytes: 1, Category: MW},
	{OpCode: 0x78, Mnemonic: "MOV", Operands: "A,B", Bytes: 1, Category: None},
	{OpCode: 0x79, Mnemonic: "MOV", Operands: "A,C", Bytes: 1, Category: None},
	{OpCode: 0x7a, Mnemonic: "MOV", Operands: "A,D", Bytes: 1, Category: None},
	{OpCode: 0x7b, Mnemonic: "MOV", Operands: "A,E", Bytes: 1, Category: None},
	{OpCode: 0x7c, Mnemonic: "MOV", Operands: "A,H", Bytes: 1, Category: None},
	{OpCode: 0x7d, Mnemonic: "MOV", Operands: "A,L", Bytes: 1, Category: None},
	{OpCode: 0x7e, Mnemonic: "MOV", Operands: "A,M", Bytes: 1, Category: MR},
	{OpCode: 0x7f, Mnemonic: "MOV", Operands: "A,A", Bytes: 1, Category: None},
	{OpCode: 0x80, Mnemonic: "ADD", Operands: "B", Bytes: 1, Category: None},
	{OpCode: 0x81, Mnemonic: "ADD", Operands: "C", Bytes: 1, Category: None},
	{OpCode: 0x82, Mnemonic: "ADD", Operands: "D", Bytes: 1, Category: None},
	{OpCode: 0x83, Mnemonic: "ADD", Operands: "E", Bytes: 1, Category: None},
	{OpCode: 0x84, Mnemonic: "ADD", Operands: "H", Bytes: 1, Category: None},
	{OpCode: 0x85, Mnemonic: "ADD", Operands: "L", Bytes: 1, Category: None},
	{OpCode: 0x86, Mnemonic: "ADD", Operands: "M", Bytes: 1, Category: MR},
	{OpCode: 0x87, Mnemonic: "ADD", Operands: "A", Bytes: 1, Category: None},
	{OpCode: 0x88, Mnemonic: "ADC", Operands: "B", Bytes: 1, Category: None},
	{OpCode: 0x89, Mnemonic: "ADC", Operands: "C", Bytes: 1, Category: None},
	{OpCode: 0x8a, Mnemonic: "ADC", Operands: "D", Bytes: 1, Category: None},
	{OpCode: 0x8b, Mnemonic: "ADC", Operands: "E", Bytes: 1, Category: None},
	{OpCode: 0x8c, Mnemonic: "ADC", Operands: "H", Bytes: 1, Category: None},
	{OpCode: 0x8d, Mnemonic: "ADC", Operands: "L", Bytes: 1, Category: None},
	{OpCode: 0x8e, Mnemonic: "ADC", Operands: "M", Bytes: 1, Category: MR},
	{OpCode: 0x8f, Mnemonic: "ADC", Operands: "A", Bytes: 1, Category: None},
	{OpCode: 0x90, Mnemonic: "SUB", Operands: "B", Bytes: 1, Category: None},
	{OpCode: 0x91, Mnemonic: "SUB", Operands: "C", Bytes: 1, Category: None},
	{OpCode: 0x92, Mnemonic: "SUB", Operands: "D", Bytes: 1, Category: None},
	{OpCode: 0x93, Mnemonic: "SUB", Operands: "E", Bytes: 1, Category: None},
	{OpCode: 0x94, Mnemonic: "SUB", Operands: "H", Bytes: 1, Category: None},
	{OpCode: 0x95, Mnemonic: "SUB", Operands: "L", Bytes: 1, Category: None},
	{OpCode: 0x96, Mnemonic: "SUB", Operands: "M", Bytes: 1, Category: MR},
	{OpCode: 0x97, Mnemonic: "SUB", Operands: "A", Bytes: 1, Category: None},
	{OpCode: 0x98, Mnemonic: "SBB", Operands: "B", Bytes: 1, Category: None},
	{OpCode: 0x99, Mnemonic: "SBB", Operands: "C", Bytes: 1, Category: None},
	{OpCode: 0x9a, Mnemonic: "SBB", Operands: "D", Bytes: 1, Category: None},
	{OpCode: 0x9b, Mnemonic: "SBB", Operands: "E", Bytes: 1, Category: None},
	{OpCode: 0x9c, Mnemonic: "SBB", Operands: "H", Bytes: 1, Category: None},
	{OpCode: 0x9d, Mnemonic: "SBB", Operands: "L", Bytes: 1, Category: None},
	{OpCode: 0x9e, Mnemonic: "SBB", Operands: "M", Bytes: 1, Category: MR},
	{OpCode: 0x9f, Mnemonic: "SBB", Operands: "A", Bytes: 1, Category: None},
	{OpCode: 0xa0, Mnemonic: "ANA", Operands: "B", Bytes: 1, Category: None},
	{OpCode: 0xa1, Mnemonic: "ANA", Operands: "C", Bytes: 1, Category: None},
	{OpCode: 0xa2, Mnemonic: "ANA", Operands: "D", Bytes: 1, Category: None},
	{OpCode: 0xa3, Mnemonic: "ANA", Operands: "E", Bytes: 1, Category: None},
	{OpCode: 0xa4, Mnemonic: "ANA", Operands: "H", Bytes: 1, Category: None},
	{OpCode: 0xa5, Mnemonic: "ANA", Operands: "L", Bytes: 1, Category: None},
	{OpCode: 0xa6, Mnemonic: "ANA", Operands: "M", Bytes: 1, Category: MR},
	{OpCode: 0xa7, Mnemonic: "ANA", Operands: "A", Bytes: 1, Category: None},
	{OpCode: 0xa8, Mnemonic: "XRA", Operands: "B", Bytes: 1, Category: None},
	{OpCode: 0xa9, Mnemonic: "XRA", Operands: "C", Bytes: 1, Category: None},
	{OpCode: 0xaa, Mnemonic: "XRA", Operands: "D", Bytes: 1, Category: None},
	{OpCode: 0xab, Mnemonic: "XRA", Operands: "E", Bytes: 1, Category: None},
	{OpCode: 0xac, Mnemonic: "XRA", Operands: "H", Bytes: 1, Category: None},
	{OpCode: 0xad, Mnemonic: "XRA", Operands: "L", Bytes: 1, Category: None},
	{OpCode: 0xae, Mnemonic: "XRA", Operands: "M", Bytes: 1, Category: MR},
	{OpCode: 0xaf, Mnemonic: "XRA", Operands: "A", Bytes: 1, Category: None},
	{OpCode: 0xb0, Mnemonic: "ORA", Operands: "B", Bytes: 1, Category: None},
	{OpCode: 0xb1, Mnemonic: "ORA", Operands: "C", Bytes: 1, Category: None},
	{OpCode: 0xb2, Mnemonic: "ORA", Operands: "D", Bytes: 1, Category: None},
	{OpCode: 0xb3, Mnemonic: "ORA", Operands: "E", Bytes: 1, Category: None},
	{OpCode: 0xb4, Mnemonic: "ORA", Operands: "H", Bytes: 1, Category: None},
	{OpCode: 0xb5, Mnemonic: "ORA", Operands: "L", Bytes: 1, Category: None},
	{OpCode: 0xb6, Mnemonic: "ORA", Operands: "M", Bytes: 1, Category: MR},
	{OpCode: 0xb7, Mnemonic: "ORA", Operands: "A", Bytes: 1, Category: None},
	{OpCode: 0xb8, Mnemonic: "CMP", Operands: "B", Bytes: 1, Category: None},
	{OpCode: 0xb9, Mnemonic: "CMP", Operands: "C", Bytes: 1, Category: None},
	{OpCode: 0xba, Mnemonic: "CMP", Operands: "D", Bytes: 1, Category: None},
	{OpCode: 0xbb, Mnemonic: "CMP", Operands: "E", Bytes: 1, Category: None},
	{OpCode: 0xbc, Mnemonic: "CMP", Operands: "H", Bytes: 1, Category: None},
	{OpCode: 0xbd, Mnemonic: "CMP", Operands: "L", Bytes: 1, Category: None},
	{OpCode: 0xbe, Mnemonic: "CMP", Operands: "M", Bytes: 1, Category: MR},
	{OpCode: 0xbf, Mnemonic: "CMP", Operands: "A", Bytes: 1, Category: None},
	{OpCode: 0xc0, Mnemonic: "RNZ", Operands: "", Bytes: 1, Category: RET | MR},
	{OpCode: 0xc1, Mnemonic: "POP", Operands: "B", Bytes: 1, Category: MR},
	{OpCode: 0xc2, Mnemonic: "JNZ", Operands: "", Bytes: 3, Category: JMP},
	{OpCode: 0xc3, Mnemonic: "JMP", Operands: "", Bytes: 3, Category: JMP},
	{OpCode: 0xc4, Mnemonic: "CNZ", Operands: "", Bytes: 3, Category: CALL | MW},
	{OpCode: 0xc5, Mnemonic: "PUSH", Operands: "B", Bytes: 1, Category: MW},
	{OpCode: 0xc6, Mnemonic: "ADI", Operands: "", Bytes: 2, Category: None},
	{OpCode: 0xc7, Mnemonic: "RST", Operands: "0", Bytes: 1, Category: CALL | MW},
	{OpCode: 0xc8, Mnemonic: "RZ", Operands: "", Bytes: 1, Category: RET | MR},
	{OpCode: 0xc9, Mnemonic: "RET", Operands: "", Bytes: 1, Category: RET | MR},
	{OpCode: 0xca, Mnemonic: "JZ", Operands: "", Bytes: 3, Category: JMP},
	{OpCode: 0xcb, Mnemonic: "JMP", Operands: "", Bytes: 3, Category: UND | JMP},
	{OpCode: 0xcc, Mnemonic: "CZ", Operands: "", Bytes: 3, Category: CALL | MW},
	{OpCode: 0xcd, Mnemonic: "CALL", Operands: "", Bytes: 3, Category: CALL | MW},
	{OpCode: 0xce, Mnemonic: "ACI", Operands: "", Bytes: 2, Category: None},
	{OpCode: 0xcf, Mnemonic: "RST", Operands: "1", Bytes: 1, Category: CALL | MW},
	{OpCode: 0xd0, Mnemonic: "RNC", Operands: "", Bytes: 1, Category: RET | MR},
	{OpCode: 0xd1, Mnemonic: "POP", Operands: "D", Bytes: 1, Category: MR},
	{OpCode: 0xd2, Mnemonic: "JNC", Operands: "", Bytes: 3, Category: JMP},
	{OpCode: 0xd3, Mnemonic: "OUT", Operands: "", Bytes: 2, Category: IOW},
	{OpCode: 0xd4, Mnemonic: "CNC", Operands: "", Bytes: 3, Category: CALL | MW},
	{OpCode: 0xd5, Mnemonic: "PUSH", Operands: "D", Bytes: 1, Category: MW},
	{OpCode: 0xd6, Mnemonic: "SUI", Operands: "", Bytes: 2, Category: None},
	{OpCode: 0xd7, Mnemonic: "RST", Operands: "2", Bytes: 1, Category: CALL | MW},
	{OpCode: 0xd8, Mnemonic: "RC", Operands: "", Bytes: 1, Category: RET | MR},
	{OpCode: 0xd9, Mnemonic: "RET", Operands: "", Bytes: 1, Category: UND | RET | MR},
	{OpCode: 0xda, Mnemonic: "JC", Operands: "", Bytes: 3, Category: JMP},
	{OpCode: 0xdb, Mnemonic: "IN", Operands: "", Bytes: 2, Category: IOR},
	{OpCode: 0xdc, Mnemonic: "CC", Operands: "", Bytes: 3, Category: CALL | MW},
	{OpCode: 0xdd, Mnemonic: "CALL", Operands: "", Bytes: 3, Category: UND | CALL | MW},
	{OpCode: 0xde, Mnemonic: "SBI", Operands: "", Bytes: 2, Category: None},
	{OpCode: 0xdf, Mnemonic: "RST", Operands: "3", Bytes: 1, Category: CALL | MW},
	{OpCode: 0xe0, Mnemonic: "RPO", Operands: "", Bytes: 1, Category: RET | MR},
	{OpCode: 0xe1, Mnemonic: "POP", Operands: "H", Bytes: 1, Category: MR},
	{OpCode: 0xe2, Mnemonic: "JPO", Operands: "", Bytes: 3, Category: JMP},
	{OpCode: 0xe3, Mnemonic: "XTHL", Operands: "", Bytes: 1, Category: MR | MW},
	{OpCode: 0xe4, Mnemonic: "CPO", Operands: "", Bytes: 3, Category: CALL | MW},
	{OpCode: 0xe5, Mnemonic: "PUSH", Operands: "H", Bytes: 1, Category: MW},
	{OpCode: 0xe6, Mnemonic: "ANI", Operands: "", Bytes: 2, Category: None},
	{OpCode: 0xe7, Mnemonic: "RST", Operands: "4", Bytes: 1, Category: CALL | MW},
	{OpCode: 0xe8, Mnemonic: "RPE", Operands: "", Bytes: 1, Category: RET | MR},
	{OpCode: 0xe9, Mnemonic: "PCHL", Operands: "", Bytes: 1, Category: JMP},
	{OpCode: 0xea, Mnemonic: "JPE", Operands: "", Bytes: 3, Category: JMP},
	{OpCode: 0xeb, Mnemonic: "XCHG", Operands: "", Bytes: 1, Category: None},
	{OpCode: 0xec, Mnemonic: "CPE", Operands: "", Bytes: 3, Category: CALL | MW},
	{OpCode: 0xed, Mnemonic: "CALL", Operands: "", Bytes: 3, Category: UND | CALL | MW},
	{OpCode: 0xee, Mnemonic: "XRI", Operands: "", Bytes: 2, Category: None},
	{OpCode: 0xef, Mnemonic: "RST", Operands: "5", Bytes: 1, Category: CALL | MW},
	{OpCode: 0xf0, Mnemonic: "RP", Operands: "", Bytes: 1, Category: RET | MR},
	{OpCode: 0xf1, Mnemonic: "POP", Operands: "PSW", Bytes: 1, Category: MR},
	{OpCode: 0xf2, Mnemonic: "JP", Operands: "", Bytes: 3, Category: JMP},
	{OpCode: 0xf3, Mnemonic: "DI", Operands: "", Bytes: 1, Category: None},
	{OpCode: 0xf4, Mnemonic: "CP", Operands: "", Bytes: 3, Category: CALL | MW},
	{OpCode: 0xf5, Mnemonic: "PUSH", Operands: "PSW", Bytes: 1, Category: MW},
	{OpCode: 0xf6, Mnemonic: "ORI", Operands: "", Bytes: 2, Category: None},
	{OpCode: 0xf7, Mnemonic: "RST", Operands: "6", Bytes: 1, Category: CALL | MW},
	{OpCode: 0xf8, Mnemonic: "RM", Operands: "", Bytes: 1, Category: RET | MR},
	{OpCode: 0xf9, Mnemonic: "SPHL", Operands: "", Bytes: 1, Category: None},
	{OpCode: 0xfa, Mnemonic: "JM", Operands: "", Bytes: 3, Category: JMP},
	{OpCode: 0xfb, Mnemonic: "EI", Operands: "", Bytes: 1, Category: None},
	{OpCode: 0xfc, Mnemonic: "CM", Operands: "", Bytes: 3, Category: CALL | MW},
	{OpCode: 0xfd, Mnemonic: "CALL", Operands: "", Bytes: 3, Category: UND | CALL | MW},
	{OpCode: 0xfe, Mnemonic: "CPI", Operands: "", Bytes: 2, Category: None},
	{OpCode: 0xff, Mnemonic: "RST", Operands: "7", Bytes: 1, Category: CALL | MW},
}
