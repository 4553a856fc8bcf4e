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

// the number of bytes in the inclusive range start to end. the range wraps
// around the top of the address space so a start address greater than the
// end address is valid.
func rangeLen(start uint16, end uint16) int {
	return int(end-start) + 1
}

// Copy the inclusive range start to end in the src area to the dst area,
// beginning at the dest address. Addresses wrap around the top of the address
// space. Returns the number of bytes copied.
func Copy(src Area, dst Area, start uint16, end uint16, dest uint16) int {
	n := rangeLen(start, end)
	for i := 0; i < n; i++ {
		dst.Poke(dest+uint16(i), src.Peek(start+uint16(i)))
	}
	return n
}

// Fill the inclusive range start to end with the data value. Returns the number
// of bytes filled.
func Fill(mem Area, start uint16, end uint16, data uint8) int {
	n := rangeLen(start, end)
	for i := 0; i < n; i++ {
		mem.Poke(start+uint16(i), data)
	}
	return n
}

// Compare the inclusive range start to end in the a area with the area
// beginning at the dest address in the b area. Returns the address in a of the
// first difference and true. Returns false if the ranges are identical.
func Compare(a Area, b Area, start uint16, end uint16, dest uint16) (uint16, bool) {
	n := rangeLen(start, end)
	for i := 0; i < n; i++ {
		if a.Peek(start+uint16(i)) != b.Peek(dest+uint16(i)) {
			return start + uint16(i), true
		}
	}
	return 0, false
}
