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

import "strings"

// Category is a bitmask classifying the effect of an instruction. The CPU's
// run loop can be asked to stop before executing an instruction of a
// particular category.
type Category int

// None is the category of instructions with no notable effect.
const None Category = 0

// List of valid Category bits.
const (
	// instruction halts the CPU
	HLT Category = 1 << iota

	// instruction alters the flow of the program
	JMP
	CALL
	RET

	// instruction reads or writes the port space
	IOR
	IOW

	// instruction reads or writes memory, not including the instruction
	// fetch
	MR
	MW

	// block instruction. executed in several steps, with the scheduler drained
	// between each step. there are no block instructions in the 8080A
	BLK

	// undocumented instruction
	UND
)

// IO is a convenience mask for both IOR and IOW.
const IO = IOR | IOW

var categoryNames = []struct {
	c Category
	s string
}{
	{HLT, "HLT"},
	{JMP, "JMP"},
	{CALL, "CALL"},
	{RET, "RET"},
	{IOR, "IOR"},
	{IOW, "IOW"},
	{MR, "MR"},
	{MW, "MW"},
	{BLK, "BLK"},
	{UND, "UND"},
}

func (c Category) String() string {
	if c == None {
		return "None"
	}
	var s []string
	for _, n := range categoryNames {
		if c&n.c == n.c {
			s = append(s, n.s)
		}
	}
	return strings.Join(s, "|")
}

// ParseCategory returns the Category with the name. Names are the same as
// used by the String() function. The name IO is also accepted. Returns false
// if the name is not recognised.
func ParseCategory(name string) (Category, bool) {
	name = strings.ToUpper(name)
	if name == "IO" {
		return IO, true
	}
	for _, n := range categoryNames {
		if n.s == name {
			return n.c, true
		}
	}
	return None, false
}
