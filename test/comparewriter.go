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

package test

import "strings"

// CompareWriter implements the io.Writer interface. It captures output so
// that it can be compared with an expected string.
type CompareWriter struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	return tw.buffer.Write(p)
}

// Clear the captured output.
func (tw *CompareWriter) Clear() {
	tw.buffer.Reset()
}

// Compare captured output with the expected string.
func (tw *CompareWriter) Compare(s string) bool {
	return s == tw.buffer.String()
}

func (tw *CompareWriter) String() string {
	return tw.buffer.String()
}
