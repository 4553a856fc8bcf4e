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
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	ByteCode bool
}

// columns information for groups of entries
type columns struct {
	mnemonic int
	operands int
}

func (col *columns) update(e Entry) {
	col.mnemonic = max(col.mnemonic, len(e.Mnemonic))
	col.operands = max(col.operands, len(e.Operands))
}

// Write entries to io.Writer. The mnemonic and operand columns are as wide as
// the widest entry.
func Write(output io.Writer, entries []Entry, attr WriteAttr) error {
	var col columns
	for _, e := range entries {
		col.update(e)
	}

	for _, e := range entries {
		s := fmt.Sprintf("%04x ", e.Address)
		if attr.ByteCode {
			s = fmt.Sprintf("%s %-8s ", s, e.Bytecode())
		}
		s = fmt.Sprintf("%s %-*s %-*s", s, col.mnemonic, e.Mnemonic, col.operands, e.Operands)
		if _, err := io.WriteString(output, fmt.Sprintf("%s\n", strings.TrimRight(s, " "))); err != nil {
			return err
		}
	}

	return nil
}
