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

package curated_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/test"
)

const invalidRecord = "hex: invalid record: %v"
const unsupportedRecord = "hex: unsupported record type: %02x"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("memory: %v", "file not found")
	test.ExpectEquality(t, e.Error(), "memory: file not found")

	f := curated.Errorf("memory: %v", e)
	test.ExpectEquality(t, f.Error(), "memory: file not found")

	// only adjacent parts are considered
	g := curated.Errorf("machine: %v", f)
	test.ExpectEquality(t, g.Error(), "machine: memory: file not found")
}

func TestIsAndHas(t *testing.T) {
	e := curated.Errorf(invalidRecord, "checksum")
	test.ExpectSuccess(t, curated.Is(e, invalidRecord))
	test.ExpectFailure(t, curated.Has(e, unsupportedRecord))

	f := curated.Errorf("memory: %v", e)
	test.ExpectFailure(t, curated.Is(f, invalidRecord))
	test.ExpectSuccess(t, curated.Has(f, invalidRecord))
	test.ExpectSuccess(t, curated.Has(f, "memory: %v"))

	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.IsAny(f))
}

func TestUncurated(t *testing.T) {
	e := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(e))
	test.ExpectFailure(t, curated.Is(e, invalidRecord))
	test.ExpectFailure(t, curated.Has(e, invalidRecord))
	test.ExpectFailure(t, curated.IsAny(nil))

	// a curated error wrapped by fmt.Errorf() is no longer curated
	w := fmt.Errorf("wrapped: %w", curated.Errorf(invalidRecord, "checksum"))
	test.ExpectFailure(t, curated.IsAny(w))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("memory: %v", io.ErrUnexpectedEOF)
	test.ExpectSuccess(t, errors.Is(e, io.ErrUnexpectedEOF))
	test.ExpectEquality(t, e.Error(), "memory: unexpected EOF")
}
