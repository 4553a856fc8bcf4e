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

package paths

import (
	"fmt"
	"strings"
	"time"
)

const timestampLayout = "20060102_150405"

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. The name of the loaded program
// is included if it is supplied.
//
// Used to generate filenames for WAV recordings.
func UniqueFilename(prepend string, programName string) string {
	timestamp := time.Now().Format(timestampLayout)
	if c := strings.TrimSpace(programName); c != "" {
		return fmt.Sprintf("%s_%s_%s", prepend, c, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
