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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAddress converts a string to a 16 bit address. Hexadecimal values can
// be written with a 0x or $ prefix, or with the Intel h suffix. Values
// without a prefix or suffix are decimal.
func ParseAddress(s string) (uint16, error) {
	t := strings.TrimSpace(s)
	base := 10

	switch {
	case strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X"):
		t = t[2:]
		base = 16
	case strings.HasPrefix(t, "$"):
		t = t[1:]
		base = 16
	case strings.HasSuffix(t, "h") || strings.HasSuffix(t, "H"):
		t = t[:len(t)-1]
		base = 16
	}

	v, err := strconv.ParseUint(t, base, 16)
	if err != nil {
		return 0, fmt.Errorf("not a valid address: %s", s)
	}
	return uint16(v), nil
}

// address implements the flag.Value interface.
type address struct {
	value uint16
}

func (a *address) String() string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("0x%04x", a.value)
}

func (a *address) Set(s string) error {
	v, err := ParseAddress(s)
	if err != nil {
		return err
	}
	a.value = v
	return nil
}
