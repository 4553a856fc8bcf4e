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
	"unicode"
)

// Templates specify how the numeric values in an operand are formatted.
type Templates struct {
	// fmt verbs for byte and word values
	Byte string
	Word string

	// prefix values with a zero if they would otherwise start with a
	// character that isn't a digit
	PrependZero bool

	// mnemonic and operand are shown in lower case
	LowerCase bool
}

// DefaultTemplates format values as plain upper case hexadecimal numbers.
var DefaultTemplates = Templates{
	Byte: "%02X",
	Word: "%04X",
}

// IntelTemplates format values in the style of the Intel assembler.
var IntelTemplates = Templates{
	Byte:        "%02XH",
	Word:        "%04XH",
	PrependZero: true,
}

func (tmpl Templates) value(bytes int, v uint16) string {
	var s string
	switch bytes {
	case 2:
		s = fmt.Sprintf(tmpl.Byte, uint8(v))
	case 3:
		s = fmt.Sprintf(tmpl.Word, v)
	default:
		return ""
	}

	if tmpl.PrependZero && len(s) > 0 && !unicode.IsDigit(rune(s[0])) {
		s = "0" + s
	}

	return s
}

func (tmpl Templates) text(s string) string {
	if tmpl.LowerCase {
		return strings.ToLower(s)
	}
	return s
}
