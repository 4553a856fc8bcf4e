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

package terminal

import (
	"fmt"
	"strings"
)

// Prompt specifies the prompt text and the prompt style.
type Prompt struct {
	// the content. usually the address and disassembly of the next
	// instruction
	Content string

	// the CPU is halted and is waiting for an interrupt
	Halted bool
}

// NewPrompt is a convenience function for creating a Prompt.
func NewPrompt(content string, halted bool) Prompt {
	return Prompt{Content: content, Halted: halted}
}

// String returns the prompt with "standard" decoration. Good for terminals
// with no graphical capabilities at all.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString("[ ")
	s.WriteString(strings.TrimSpace(p.Content))
	if p.Halted {
		s.WriteString(" (halted)")
	}
	s.WriteString(" ]")
	return fmt.Sprintf("%s >> ", s.String())
}
