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

import "strings"

// Flags is the flag register of the 8080A. Bits 1, 3 and 5 are fixed at 1, 0
// and 0 respectively.
type Flags uint8

// List of flag bits.
const (
	Sign     Flags = 0x80
	Zero     Flags = 0x40
	AuxCarry Flags = 0x10
	Parity   Flags = 0x04
	Carry    Flags = 0x01
)

// the fixed bits of the flags register
const (
	fixedAnd = 0xd5
	fixedOr  = 0x02
)

// FixFlags forces the fixed bits of the value into place. All values loaded
// into the flags register must pass through this function.
func FixFlags(v uint8) Flags {
	return Flags((v & fixedAnd) | fixedOr)
}

// Label returns the canonical name for the flags register.
func (f Flags) Label() string {
	return "F"
}

// String returns the flags in the order they appear in the register. Set flags
// are shown in upper case. Fixed bits are shown as a dash.
func (f Flags) String() string {
	s := strings.Builder{}

	flag := func(b Flags, set rune, clear rune) {
		if f&b == b {
			s.WriteRune(set)
		} else {
			s.WriteRune(clear)
		}
	}

	flag(Sign, 'S', 's')
	flag(Zero, 'Z', 'z')
	s.WriteRune('-')
	flag(AuxCarry, 'A', 'a')
	s.WriteRune('-')
	flag(Parity, 'P', 'p')
	s.WriteRune('-')
	flag(Carry, 'C', 'c')

	return s.String()
}

// Is returns true if every bit in b is set.
func (f Flags) Is(b Flags) bool {
	return f&b == b
}

// Set or clear the flag bits.
func (f *Flags) Set(b Flags, v bool) {
	if v {
		*f |= b
	} else {
		*f &^= b
	}
}

// szp is the sign, zero and parity flags for every possible result byte.
var szp [256]Flags

func init() {
	for v := range 256 {
		var f Flags
		if v&0x80 == 0x80 {
			f |= Sign
		}
		if v == 0 {
			f |= Zero
		}

		// parity flag is set when the number of set bits is even
		p := 0
		for b := v; b != 0; b >>= 1 {
			p += b & 1
		}
		if p%2 == 0 {
			f |= Parity
		}

		szp[v] = f
	}
}

// SZP sets the sign, zero and parity flags for the result. The auxiliary carry
// and carry flags are unchanged.
func (f *Flags) SZP(result uint8) {
	*f = (*f &^ (Sign | Zero | Parity)) | szp[result]
}
