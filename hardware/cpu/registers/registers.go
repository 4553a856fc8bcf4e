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

package registers

import (
	"fmt"
	"strings"
)

// File is the register file of the 8080A. The 8 bit registers can also be
// accessed as register pairs.
type File struct {
	A uint8
	F Flags
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8

	PC uint16
	SP uint16

	// interrupts enabled
	IE bool

	// interrupts are not accepted for one instruction after an EI
	// instruction
	TID bool

	// the CPU has executed a HLT instruction and is waiting for an interrupt
	Halted bool
}

// NewFile is the preferred method of initialisation for the File type.
func NewFile() File {
	return File{F: FixFlags(0)}
}

func (r File) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%04x SP=%04x A=%02x F=%s B=%02x C=%02x D=%02x E=%02x H=%02x L=%02x",
		r.PC, r.SP, r.A, r.F, r.B, r.C, r.D, r.E, r.H, r.L))
	if r.IE {
		s.WriteString(" IE")
	}
	if r.Halted {
		s.WriteString(" HALTED")
	}
	return s.String()
}

// BC returns the BC register pair.
func (r *File) BC() uint16 {
	return uint16(r.B)<<8 | uint16(r.C)
}

// SetBC loads the BC register pair.
func (r *File) SetBC(v uint16) {
	r.B = uint8(v >> 8)
	r.C = uint8(v)
}

// DE returns the DE register pair.
func (r *File) DE() uint16 {
	return uint16(r.D)<<8 | uint16(r.E)
}

// SetDE loads the DE register pair.
func (r *File) SetDE(v uint16) {
	r.D = uint8(v >> 8)
	r.E = uint8(v)
}

// HL returns the HL register pair.
func (r *File) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// SetHL loads the HL register pair.
func (r *File) SetHL(v uint16) {
	r.H = uint8(v >> 8)
	r.L = uint8(v)
}

// PSW returns the program status word, the accumulator and flags.
func (r *File) PSW() uint16 {
	return uint16(r.A)<<8 | uint16(r.F)
}

// SetPSW loads the program status word. The fixed bits of the flags are
// forced.
func (r *File) SetPSW(v uint16) {
	r.A = uint8(v >> 8)
	r.F = FixFlags(uint8(v))
}

// Register names as used by the instruction encoding. The encoding of M is
// the memory location pointed to by HL.
const (
	RegB = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegM
	RegA
)

// Names of the 8 bit registers in encoding order.
var Names = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

// Get returns the value of the named register. Returns false if the name is
// not recognised. The name M is not a register and is not recognised.
func (r *File) Get(name string) (int, bool) {
	switch strings.ToUpper(name) {
	case "A":
		return int(r.A), true
	case "F":
		return int(r.F), true
	case "B":
		return int(r.B), true
	case "C":
		return int(r.C), true
	case "D":
		return int(r.D), true
	case "E":
		return int(r.E), true
	case "H":
		return int(r.H), true
	case "L":
		return int(r.L), true
	case "BC":
		return int(r.BC()), true
	case "DE":
		return int(r.DE()), true
	case "HL":
		return int(r.HL()), true
	case "PSW":
		return int(r.PSW()), true
	case "PC":
		return int(r.PC), true
	case "SP":
		return int(r.SP), true
	}
	return 0, false
}

// Set the named register. Values are masked to the width of the register.
// Returns false if the name is not recognised.
func (r *File) Set(name string, v int) bool {
	switch strings.ToUpper(name) {
	case "A":
		r.A = uint8(v)
	case "F":
		r.F = FixFlags(uint8(v))
	case "B":
		r.B = uint8(v)
	case "C":
		r.C = uint8(v)
	case "D":
		r.D = uint8(v)
	case "E":
		r.E = uint8(v)
	case "H":
		r.H = uint8(v)
	case "L":
		r.L = uint8(v)
	case "BC":
		r.SetBC(uint16(v))
	case "DE":
		r.SetDE(uint16(v))
	case "HL":
		r.SetHL(uint16(v))
	case "PSW":
		r.SetPSW(uint16(v))
	case "PC":
		r.PC = uint16(v)
	case "SP":
		r.SP = uint16(v)
	default:
		return false
	}
	return true
}

// Width returns the number of bits in the named register. Returns false if the
// name is not recognised.
func (r *File) Width(name string) (int, bool) {
	switch strings.ToUpper(name) {
	case "A", "F", "B", "C", "D", "E", "H", "L":
		return 8, true
	case "BC", "DE", "HL", "PSW", "PC", "SP":
		return 16, true
	}
	return 0, false
}

// RegisterNames lists every name accepted by Get() and Set().
var RegisterNames = []string{"A", "F", "B", "C", "D", "E", "H", "L", "BC", "DE", "HL", "PSW", "PC", "SP"}
