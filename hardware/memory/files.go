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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ReadRaw reads binary data into memory beginning at the dest address.
// Addresses wrap around the top of the address space.
func ReadRaw(r io.Reader, mem Area, dest uint16) (Info, error) {
	inf := newInfo()

	b := bufio.NewReader(r)
	for {
		v, err := b.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return inf, nil
			}
			return inf, err
		}
		mem.Poke(dest, v)
		inf.record(dest)
		dest++
	}
}

// WriteRaw writes number bytes of memory beginning at the start address.
func WriteRaw(w io.Writer, mem Area, start uint16, number int) error {
	b := bufio.NewWriter(w)
	for i := 0; i < number; i++ {
		if err := b.WriteByte(mem.Peek(start + uint16(i))); err != nil {
			return err
		}
	}
	return b.Flush()
}

// IsHEX returns true if the filename has an extension commonly used by Intel
// HEX files.
func IsHEX(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hex", ".ihx", ".ihex":
		return true
	}
	return false
}

// Load the named file into memory. Files with a HEX extension are read as
// Intel HEX, anything else is read as raw binary data. Raw data is loaded at
// the dest address, or at address zero if dest is negative. HEX data is
// relocated to dest if dest is not negative.
func Load(filename string, mem Area, dest int) (Info, error) {
	f, err := os.Open(filename)
	if err != nil {
		return newInfo(), errors.Wrap(err, "memory")
	}
	defer f.Close()

	var inf Info
	if IsHEX(filename) {
		inf, err = ReadHEX(f, mem, dest)
	} else {
		inf, err = ReadRaw(f, mem, uint16(max(dest, 0)))
	}
	if err != nil {
		return inf, errors.Wrapf(err, "memory: loading %s", filename)
	}

	return inf, nil
}

// Save number bytes of memory beginning at the start address to the named
// file. The format is chosen by the extension of the filename in the same way
// as Load().
func Save(filename string, mem Area, start uint16, number int) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "memory")
	}

	if IsHEX(filename) {
		err = WriteHEX(f, mem, start, number, start)
	} else {
		err = WriteRaw(f, mem, start, number)
	}
	if err != nil {
		f.Close()
		return errors.Wrapf(err, "memory: saving %s", filename)
	}

	return errors.Wrap(f.Close(), "memory")
}
