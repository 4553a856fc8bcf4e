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

package memory

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
)

// Intel HEX record types.
const (
	hexData  = 0x00
	hexEnd   = 0x01
	hexStart = 0x03

	// record types above this value are not valid Intel HEX
	hexMaxRecordType = 0x05
)

// maximum number of data bytes written in a single record.
const hexBytesPerLine = 16

// Sentinal errors returned by the HEX reader.
const (
	InvalidHEX     = "memory: invalid intel hex: line %d: %v"
	UnsupportedHEX = "memory: unsupported intel hex record type: line %d: %02x"
)

// Info describes the result of loading data into memory.
type Info struct {
	// number of bytes loaded
	Number int

	// the lowest and highest address written to. only valid if Number is
	// greater than zero
	Min uint16
	Max uint16

	// start address from an Intel HEX start record. -1 if there was no such
	// record
	Start int
}

func (inf Info) String() string {
	if inf.Number == 0 {
		return "no data"
	}
	s := fmt.Sprintf("%d bytes %04x-%04x", inf.Number, inf.Min, inf.Max)
	if inf.Start != -1 {
		s = fmt.Sprintf("%s start %04x", s, inf.Start)
	}
	return s
}

func newInfo() Info {
	return Info{Start: -1}
}

func (inf *Info) record(address uint16) {
	if inf.Number == 0 || address < inf.Min {
		inf.Min = address
	}
	if inf.Number == 0 || address > inf.Max {
		inf.Max = address
	}
	inf.Number++
}

// WriteHEX writes number bytes of memory starting at the start address as
// Intel HEX. The records are addressed from the dest address, which will
// usually be the same as the start address. The output ends with an end of
// file record.
func WriteHEX(w io.Writer, mem Area, start uint16, number int, dest uint16) error {
	b := bufio.NewWriter(w)

	src := start
	address := dest
	for number > 0 {
		count := min(hexBytesPerLine, number)

		fmt.Fprintf(b, ":%02X%04X%02X", count, address, hexData)
		sum := count + int(address&0xff) + int(address>>8)
		for i := 0; i < count; i++ {
			d := mem.Peek(src)
			sum += int(d)
			fmt.Fprintf(b, "%02X", d)
			src++
			address++
		}
		fmt.Fprintf(b, "%02X\n", (-sum)&0xff)

		number -= count
	}
	fmt.Fprintf(b, ":000000%02XFF\n", hexEnd)

	return b.Flush()
}

// ReadHEX reads Intel HEX data into memory. Data is written with Poke() and
// so the ROM region is not protected.
//
// If dest is not negative then the data is relocated such that the first data
// record is loaded at the dest address. Otherwise data is loaded at the
// addresses given in the records.
func ReadHEX(r io.Reader, mem Area, dest int) (Info, error) {
	inf := newInfo()

	scanner := bufio.NewScanner(r)

	var offset int
	var line int

	for {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return inf, err
			}
			return inf, curated.Errorf(InvalidHEX, line, "no end of file record")
		}
		line++

		s := strings.TrimSpace(scanner.Text())
		if len(s) == 0 {
			continue
		}

		if s[0] != ':' {
			return inf, curated.Errorf(InvalidHEX, line, "missing start code")
		}

		raw, err := hexBytes(s[1:])
		if err != nil {
			return inf, curated.Errorf(InvalidHEX, line, err)
		}

		// length, address (2 bytes), type and checksum
		if len(raw) < 5 {
			return inf, curated.Errorf(InvalidHEX, line, "record too short")
		}

		length := int(raw[0])
		if len(raw) < length+5 {
			return inf, curated.Errorf(InvalidHEX, line, "record too short")
		}

		address := uint16(raw[1])<<8 | uint16(raw[2])
		recordType := int(raw[3])

		if recordType > hexMaxRecordType {
			return inf, curated.Errorf(InvalidHEX, line, fmt.Sprintf("record type %02x", recordType))
		}

		var sum uint8
		for _, v := range raw[:length+5] {
			sum += v
		}
		if sum != 0 {
			return inf, curated.Errorf(InvalidHEX, line, "checksum")
		}

		switch recordType {
		case hexStart:
			inf.Start = int(address)
			continue
		case hexEnd:
			return inf, nil
		case hexData:
		default:
			return inf, curated.Errorf(UnsupportedHEX, line, recordType)
		}

		if dest >= 0 {
			offset = dest - int(address)
			dest = -1
		}

		for i, v := range raw[4 : 4+length] {
			a := uint16(int(address) + offset + i)
			mem.Poke(a, v)
			inf.record(a)
		}
	}
}

// decode hex string into bytes.
func hexBytes(s string) ([]uint8, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd number of digits")
	}
	b := make([]uint8, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		v, err := strconv.ParseUint(s[i:i+2], 16, 8)
		if err != nil {
			return nil, err
		}
		b = append(b, uint8(v))
	}
	return b, nil
}
