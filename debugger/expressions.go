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

package debugger

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// matches numbers in the style of Intel assemblers. the number must begin
// with a decimal digit
var intelHex = regexp.MustCompile(`\b([0-9][0-9a-fA-F]*)[hH]\b`)

// evaluator evaluates expressions in the context of the machine.
type evaluator struct {
	machine *hardware.Machine
}

// predeclared returns the names available to an expression. Every register
// name is declared in upper and lower case.
func (ev evaluator) predeclared() starlark.StringDict {
	pred := starlark.StringDict{}

	for _, n := range registers.RegisterNames {
		v, _ := ev.machine.CPU.Regs.Get(n)
		pred[n] = starlark.MakeInt(v)
		pred[strings.ToLower(n)] = starlark.MakeInt(v)
	}

	m := starlark.MakeInt(int(ev.machine.Mem.Peek(ev.machine.CPU.Regs.HL())))
	pred["M"] = m
	pred["m"] = m

	pred["peek"] = starlark.NewBuiltin("peek", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var address int
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &address); err != nil {
			return nil, err
		}
		return starlark.MakeInt(int(ev.machine.Mem.Peek(uint16(address)))), nil
	})

	pred["cycles"] = starlark.MakeInt64(ev.machine.CPU.Cycles())

	return pred
}

// evaluate the expression and return the result as an integer.
func (ev evaluator) evaluate(expr string) (int, error) {
	expr = intelHex.ReplaceAllString(expr, "0x$1")

	thread := starlark.Thread{Name: "monitor"}
	opts := syntax.FileOptions{}

	prog := fmt.Sprintf("rc = (%s)\n", expr)
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, ev.predeclared())
	if err != nil {
		return 0, curated.Errorf("expression: %v", err)
	}

	switch rc := dict["rc"].(type) {
	case starlark.Int:
		v, ok := rc.Int64()
		if !ok {
			return 0, curated.Errorf("expression: %v", "value out of range")
		}
		return int(v), nil
	case starlark.Bool:
		if rc {
			return 1, nil
		}
		return 0, nil
	}

	return 0, curated.Errorf("expression: %v", fmt.Sprintf("not a number (%s)", dict["rc"].Type()))
}

// address evaluates the expression and checks that the result is a valid
// address.
func (ev evaluator) address(expr string) (uint16, error) {
	v, err := ev.evaluate(expr)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 0xffff {
		return 0, curated.Errorf("expression: %v", fmt.Sprintf("address out of range (%#x)", v))
	}
	return uint16(v), nil
}

// byteValue evaluates the expression and checks that the result fits in a
// byte. Negative values down to -128 are accepted and stored as two's
// complement.
func (ev evaluator) byteValue(expr string) (uint8, error) {
	v, err := ev.evaluate(expr)
	if err != nil {
		return 0, err
	}
	if v < -128 || v > 0xff {
		return 0, curated.Errorf("expression: %v", fmt.Sprintf("value out of range (%#x)", v))
	}
	return uint8(v), nil
}
