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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(), which takes a formatting pattern
// and values in the same way as the fmt package.
//
// The pattern is kept with the error and can be tested for with the Is() and
// Has() functions. Patterns that need to be tested for should be stored as
// constants:
//
//	const InvalidHEX = "hex: invalid record on line %d: %v"
//
//	err := curated.Errorf(InvalidHEX, 10, "checksum")
//	if curated.Is(err, InvalidHEX) {
//		...
//	}
//
// Is() only matches the outermost error. Has() matches the pattern anywhere
// in a chain of curated errors:
//
//	f := curated.Errorf("memory: %v", err)
//	curated.Is(f, InvalidHEX)  // false
//	curated.Has(f, InvalidHEX) // true
//
// IsAny() answers whether an error was created by Errorf() at all. We can
// think of curated errors as expected errors and uncurated errors as
// unexpected.
//
// Error chains are thought of as parts separated by ": ". When the message is
// produced by Error(), a part that is repeated immediately is dropped. This
// means a function can add a prefix to an error without worrying whether the
// callee has already added the same prefix:
//
//	curated.Errorf("memory: %v", curated.Errorf("memory: file not found"))
//
// produces the message "memory: file not found".
package curated
