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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/test"
)

func TestDefinitions(t *testing.T) {
	for i, defn := range instructions.Definitions {
		test.ExpectEquality(t, int(defn.OpCode), i)
		test.ExpectSuccess(t, defn.Bytes >= 1 && defn.Bytes <= 3, defn)
		test.ExpectInequality(t, defn.Mnemonic, "", defn)
	}

	und := 0
	for _, defn := range instructions.Definitions {
		if defn.Undocumented() {
			und++
		}
	}
	test.ExpectEquality(t, und, 12)

	test.ExpectEquality(t, instructions.Definitions[0xcb].Mnemonic, "JMP")
	test.ExpectEquality(t, instructions.Definitions[0xcb].Category, instructions.UND|instructions.JMP)
	test.ExpectEquality(t, instructions.Definitions[0xdb].Category, instructions.IOR)
	test.ExpectEquality(t, instructions.Definitions[0xd3].Category, instructions.IOW)
	test.ExpectEquality(t, instructions.Definitions[0x76].Category, instructions.HLT)
}

func TestCategory(t *testing.T) {
	test.ExpectEquality(t, instructions.HLT, instructions.Category(1))
	test.ExpectEquality(t, instructions.None.String(), "None")
	test.ExpectEquality(t, (instructions.CALL | instructions.MW).String(), "CALL|MW")

	c, ok := instructions.ParseCategory("io")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, instructions.IOR|instructions.IOW)

	c, ok = instructions.ParseCategory("RET")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, instructions.RET)

	_, ok = instructions.ParseCategory("LDIR")
	test.ExpectFailure(t, ok)
}
