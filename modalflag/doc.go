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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes and sub-modes, with a different set of
// flags for each mode.
//
// Arguments are first given with NewArgs() and then processed with Parse().
// A Modes instance is created with an output for help messages:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "monitor", "disasm")
//	_, _ = md.Parse()
//
// Sub-mode comparisons are case insensitive and the first sub-mode in the list
// is the default. After Parse() the selected mode is returned by Mode():
//
//	switch md.Mode() {
//	case "DISASM":
//		disasm(md)
//	}
//
// Each mode can then call NewMode(), add its own flags, and Parse() again.
// This can be repeated for as many levels of sub-mode as required.
//
//	func disasm(md *modalflag.Modes) {
//		md.NewMode()
//		from := md.AddAddress("from", 0x0000, "first address")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			fmt.Println(err)
//			return
//		case modalflag.ParseHelp:
//			return
//		}
//		...
//	}
//
// Arguments that are neither flags nor a sub-mode are available through the
// RemainingArgs() and GetArg() functions.
//
// Flag values of type address can be specified in decimal, with a 0x or $
// prefix, or with the Intel h suffix.
package modalflag
