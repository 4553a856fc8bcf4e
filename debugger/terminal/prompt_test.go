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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/debugger/terminal"
	"github.com/jetsetilly/gopher8080/test"
)

func TestPrompt(t *testing.T) {
	p := terminal.NewPrompt(" 0000  NOP ", false)
	test.ExpectEquality(t, p.String(), "[ 0000  NOP ] >> ")

	p = terminal.NewPrompt("0004  HLT", true)
	test.ExpectEquality(t, p.String(), "[ 0004  HLT (halted) ] >> ")
}
