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

package memory_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/test"
)

// a permission that allows logging only when enabled
type permission bool

func (p permission) AllowLogging() bool {
	return bool(p)
}

func TestROMWriteLogging(t *testing.T) {
	entries := func() []logger.Entry {
		var ents []logger.Entry
		logger.BorrowLog(func(e []logger.Entry) {
			ents = append(ents, e...)
		})
		return ents
	}

	logger.Clear()
	defer logger.Clear()

	mem := memory.NewSimpleMemory(permission(false), "quiet", 1, 2)
	mem.Write(0x0400, 0x55)
	test.ExpectEquality(t, len(entries()), 0)

	mem = memory.NewSimpleMemory(permission(true), "noisy", 1, 2)
	mem.Write(0x0400, 0x55)
	ents := entries()
	test.DemandEquality(t, len(ents), 1)
	test.ExpectEquality(t, ents[0].Tag, "memory")
}

func TestROMRegion(t *testing.T) {
	// rom from 0x0400 to 0x07ff
	mem := memory.NewSimpleMemory(logger.Allow, "test", 1, 2)

	for _, a := range []uint16{0x0000, 0x03ff, 0x0800, 0xffff} {
		mem.Write(a, 0x55)
		test.ExpectEquality(t, mem.Read(a), uint8(0x55), a)
	}

	for _, a := range []uint16{0x0400, 0x0500, 0x07ff} {
		mem.Write(a, 0x55)
		test.ExpectEquality(t, mem.Read(a), uint8(0x00), a)

		// poke ignores the rom region
		mem.Poke(a, 0xaa)
		test.ExpectEquality(t, mem.Peek(a), uint8(0xaa), a)
		test.ExpectEquality(t, mem.Read(a), uint8(0xaa), a)
	}

	// all memory is writable with the default values
	mem = memory.NewSimpleMemory(logger.Allow, "test", 0, 0)
	test.ExpectSuccess(t, mem.Writable(0x0000))
	test.ExpectSuccess(t, mem.Writable(0xffff))

	// all memory is read-only
	mem.SetRAMStart(memory.MaxBlock)
	test.ExpectFailure(t, mem.Writable(0x0000))
	test.ExpectFailure(t, mem.Writable(0xffff))

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	mem.SetROMStart(memory.MaxBlock + 1)
}

func TestCopyFillCompare(t *testing.T) {
	mem := memory.NewSimpleMemory(logger.Allow, "test", 0, 0)

	test.ExpectEquality(t, memory.Fill(mem, 0x1000, 0x100f, 0xe5), 16)
	test.ExpectEquality(t, mem.Peek(0x0fff), uint8(0x00))
	test.ExpectEquality(t, mem.Peek(0x1000), uint8(0xe5))
	test.ExpectEquality(t, mem.Peek(0x100f), uint8(0xe5))
	test.ExpectEquality(t, mem.Peek(0x1010), uint8(0x00))

	mem.Poke(0x1008, 0x01)
	test.ExpectEquality(t, memory.Copy(mem, mem, 0x1000, 0x100f, 0x2000), 16)

	_, different := memory.Compare(mem, mem, 0x1000, 0x100f, 0x2000)
	test.ExpectFailure(t, different)

	mem.Poke(0x2004, 0x00)
	a, different := memory.Compare(mem, mem, 0x1000, 0x100f, 0x2000)
	test.ExpectSuccess(t, different)
	test.ExpectEquality(t, a, uint16(0x1004))

	// ranges wrap around the top of memory
	test.ExpectEquality(t, memory.Fill(mem, 0xfffe, 0x0001, 0x77), 4)
	test.ExpectEquality(t, mem.Peek(0xffff), uint8(0x77))
	test.ExpectEquality(t, mem.Peek(0x0001), uint8(0x77))
	test.ExpectEquality(t, mem.Peek(0x0002), uint8(0x00))
}

func TestWriteHEX(t *testing.T) {
	mem := memory.NewSimpleMemory(logger.Allow, "test", 0, 0)
	for i := 0; i < 18; i++ {
		mem.Poke(uint16(0x0100+i), uint8(i))
	}

	b := &bytes.Buffer{}
	test.ExpectSuccess(t, memory.WriteHEX(b, mem, 0x0100, 18, 0x0100))

	expected := ":10010000000102030405060708090A0B0C0D0E0F77\n" +
		":020110001011CC\n" +
		":00000001FF\n"
	test.ExpectEquality(t, b.String(), expected)
}

func TestReadHEX(t *testing.T) {
	src := ":00012303D9\n" +
		"\n" +
		":0400100001020304E2\n" +
		":00000001FF\n"

	mem := memory.NewSimpleMemory(logger.Allow, "test", 0, 0)
	inf, err := memory.ReadHEX(strings.NewReader(src), mem, -1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, inf.Number, 4)
	test.ExpectEquality(t, inf.Min, uint16(0x0010))
	test.ExpectEquality(t, inf.Max, uint16(0x0013))
	test.ExpectEquality(t, inf.Start, 0x0123)
	test.ExpectEquality(t, mem.Peek(0x0010), uint8(0x01))
	test.ExpectEquality(t, mem.Peek(0x0013), uint8(0x04))

	// relocated
	mem = memory.NewSimpleMemory(logger.Allow, "test", 0, 0)
	inf, err = memory.ReadHEX(strings.NewReader(src), mem, 0x8000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, inf.Min, uint16(0x8000))
	test.ExpectEquality(t, mem.Peek(0x8003), uint8(0x04))
	test.ExpectEquality(t, mem.Peek(0x0010), uint8(0x00))
}

func TestReadHEXErrors(t *testing.T) {
	mem := memory.NewSimpleMemory(logger.Allow, "test", 0, 0)

	invalid := []string{
		// bad checksum
		":0400100001020304E3\n:00000001FF\n",

		// no start code
		"0400100001020304E2\n:00000001FF\n",

		// truncated record
		":0400100001020304\n:00000001FF\n",

		// record type out of range
		":00000006FA\n",

		// no end of file record
		":0400100001020304E2\n",
	}

	for i, s := range invalid {
		_, err := memory.ReadHEX(strings.NewReader(s), mem, -1)
		test.ExpectSuccess(t, curated.Is(err, memory.InvalidHEX), i, err)
	}

	// extended segment address records are valid intel hex but not supported
	_, err := memory.ReadHEX(strings.NewReader(":020000021000EC\n:00000001FF\n"), mem, -1)
	test.ExpectSuccess(t, curated.Is(err, memory.UnsupportedHEX))
}

func TestHEXRoundTrip(t *testing.T) {
	a := memory.NewSimpleMemory(logger.Allow, "a", 0, 0)
	for i := 0; i < 1000; i++ {
		a.Poke(uint16(0xf000+i), uint8(i*7))
	}

	b := &bytes.Buffer{}
	test.ExpectSuccess(t, memory.WriteHEX(b, a, 0xf000, 1000, 0xf000))

	c := memory.NewSimpleMemory(logger.Allow, "c", 0, 0)
	inf, err := memory.ReadHEX(b, c, -1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, inf.Number, 1000)

	_, different := memory.Compare(a, c, 0x0000, 0xffff, 0x0000)
	test.ExpectFailure(t, different)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()

	a := memory.NewSimpleMemory(logger.Allow, "a", 0, 0)
	memory.Fill(a, 0x0000, 0x00ff, 0x3c)

	for _, name := range []string{"test.hex", "test.bin"} {
		fn := filepath.Join(dir, name)
		test.ExpectSuccess(t, memory.Save(fn, a, 0x0000, 0x100))

		b := memory.NewSimpleMemory(logger.Allow, "b", 0, 0)
		inf, err := memory.Load(fn, b, -1)
		test.ExpectSuccess(t, err, name)
		test.ExpectEquality(t, inf.Number, 0x100, name)
		test.ExpectEquality(t, b.Peek(0x00ff), uint8(0x3c), name)
		test.ExpectEquality(t, b.Peek(0x0100), uint8(0x00), name)
	}

	// raw data loaded at an address
	b := memory.NewSimpleMemory(logger.Allow, "b", 0, 0)
	inf, err := memory.Load(filepath.Join(dir, "test.bin"), b, 0x4000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, inf.Min, uint16(0x4000))
	test.ExpectEquality(t, inf.Max, uint16(0x40ff))

	// missing files
	_, err = memory.Load(filepath.Join(dir, "missing.hex"), b, -1)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))

	// errors from the hex reader can still be identified
	fn := filepath.Join(dir, "bad.hex")
	test.ExpectSuccess(t, os.WriteFile(fn, []byte(":0100000000FE\n"), 0o600))
	_, err = memory.Load(fn, b, -1)
	test.ExpectSuccess(t, curated.Is(errors.Cause(err), memory.InvalidHEX))
}

func TestMappedMemory(t *testing.T) {
	// rom from 0x0400 to 0x07ff
	mem := memory.NewMappedMemory(logger.Allow, "mapped", 1, 2)
	var _ memory.Memory = mem

	// without listeners mapped memory is the same as simple memory
	mem.Write(0x0000, 0x11)
	test.ExpectEquality(t, mem.Read(0x0000), uint8(0x11))

	type write struct {
		address   uint16
		old, data uint8
	}
	var writes []write
	mem.OnWrite = func(address uint16, old uint8, data uint8) {
		writes = append(writes, write{address: address, old: old, data: data})
	}

	// a device at 0x8000 that reads as the inverse of what is stored there
	mem.OnRead = func(address uint16, data uint8) uint8 {
		if address == 0x8000 {
			return ^data
		}
		return data
	}

	mem.Write(0x0000, 0x22)
	mem.Write(0x0400, 0x33)
	mem.Write(0x8000, 0x0f)

	test.DemandEquality(t, len(writes), 2)
	test.ExpectEquality(t, writes[0], write{address: 0x0000, old: 0x11, data: 0x22})
	test.ExpectEquality(t, writes[1], write{address: 0x8000, old: 0x00, data: 0x0f})

	// the rom write was ignored
	test.ExpectEquality(t, mem.Read(0x0400), uint8(0x00))

	test.ExpectEquality(t, mem.Read(0x8000), uint8(0xf0))
	test.ExpectEquality(t, mem.Peek(0x8000), uint8(0x0f))

	// poke does not reach the listeners
	mem.Poke(0x0001, 0x44)
	test.ExpectEquality(t, len(writes), 2)
}
