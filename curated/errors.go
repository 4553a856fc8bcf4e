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

package curated

import (
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface.
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The pattern is a fmt formatting string
// and is kept with the error so that it can be matched by the Is() and Has()
// functions. Formatting is deferred until Error() is called.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the formatted error message with any repeated adjacent parts
// of the chain removed.
func (er curated) Error() string {
	p := strings.SplitN(fmt.Sprintf(er.pattern, er.values...), ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		p = p[1:]
	}
	return strings.Join(p, ": ")
}

// Unwrap returns the errors found in the values of the curated error. This
// allows errors.Is() and errors.As() to see through a curated error.
func (er curated) Unwrap() []error {
	var w []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			w = append(w, e)
		}
	}
	return w
}

// IsAny returns true if the error was created by Errorf().
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Is returns true if the error was created by Errorf() with the pattern.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has returns true if an error created by Errorf() with the pattern is
// anywhere in the chain of curated errors.
func Has(err error, pattern string) bool {
	er, ok := err.(curated)
	if !ok {
		return false
	}
	if er.pattern == pattern {
		return true
	}
	for _, e := range er.Unwrap() {
		if Has(e, pattern) {
			return true
		}
	}
	return false
}
