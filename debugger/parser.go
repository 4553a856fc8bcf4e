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
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// monitor command keywords.
const (
	cmdStep      = "STEP"
	cmdRun       = "RUN"
	cmdUntil     = "UNTIL"
	cmdBreak     = "BREAK"
	cmdClear     = "CLEAR"
	cmdWatch     = "WATCH"
	cmdUnwatch   = "UNWATCH"
	cmdRegs      = "REGS"
	cmdDisasm    = "DISASM"
	cmdPeek      = "PEEK"
	cmdPoke      = "POKE"
	cmdReset     = "RESET"
	cmdInterrupt = "INTERRUPT"
	cmdLoad      = "LOAD"
	cmdSave      = "SAVE"
	cmdLog       = "LOG"
	cmdDevices   = "DEVICES"
	cmdMemviz    = "MEMVIZ"
	cmdHelp      = "HELP"
	cmdQuit      = "QUIT"
)

// commandLine is a single line of input. An empty line (or a line with only
// a comment) has a nil Command field.
type commandLine struct {
	Command *command `@@?`
}

// command is a keyword followed by any number of arguments. Arguments are
// words separated by whitespace or quoted strings. Quoted strings can contain
// whitespace and are useful for expressions.
type command struct {
	Keyword string   `@("STEP" | "RUN" | "UNTIL" | "BREAK" | "CLEAR" | "WATCH" | "UNWATCH" | "REGS" | "DISASM" | "PEEK" | "POKE" | "RESET" | "INTERRUPT" | "LOAD" | "SAVE" | "LOG" | "DEVICES" | "MEMVIZ" | "HELP" | "QUIT")`
	Args    []string `@(String | Word)*`
}

var monitorLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Word", Pattern: `[^\s"#]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var monitorParser = participle.MustBuild[commandLine](
	participle.Lexer(monitorLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
	participle.CaseInsensitive("Word"),
)

// parseCommand parses a single line of input. Returns a nil command for
// empty input.
func parseCommand(input string) (*command, error) {
	ln, err := monitorParser.ParseString("", input)
	if err != nil {
		return nil, err
	}
	return ln.Command, nil
}
