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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/prefs"
	"github.com/jetsetilly/gopher8080/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("machine.clock::4000000")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "machine.clock::4000000")

	prefs.PushCommandLineStack("  machine.clock ::  4000000 ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "machine.clock::4000000")

	// unused values are returned sorted by key
	prefs.PushCommandLineStack("machine.romstart::1; cpu.loginterrupts::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.loginterrupts::true; machine.romstart::1")

	// malformed pairs are ignored
	prefs.PushCommandLineStack("machine.clock;machine.romstart::1::2;machine.ramstart::8")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "machine.ramstart::8")
}

func TestCommandLineGet(t *testing.T) {
	prefs.PushCommandLineStack("machine.clock::4000000;machine.romstart::1")
	defer prefs.PopCommandLineStack()

	ok, v := prefs.GetCommandLinePref("machine.clock")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "4000000")

	// values can only be used once
	ok, _ = prefs.GetCommandLinePref("machine.clock")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("machine.ramstart")
	test.ExpectFailure(t, ok)
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("machine.clock::1")
	prefs.PushCommandLineStack("machine.clock::2")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the top group is consulted
	ok, v := prefs.GetCommandLinePref("machine.clock")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "2")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "machine.clock::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
