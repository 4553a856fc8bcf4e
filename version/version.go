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

// Package version reports the version of the program. The version number is
// set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher8080/version.number=v0.1.0"
//
// When no number has been set the version is derived from the build
// information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name of the program as it should be presented to
// the user.
const ApplicationName = "Gopher8080"

// set by the linker
var number string

var (
	version   string
	revision  string
	goVersion string
)

// Version returns the version string, the revision string and whether the
// version is a release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line summary of the version information.
func String() string {
	return fmt.Sprintf("%s %s (%s) %s", ApplicationName, version, revision, goVersion)
}

func init() {
	version, revision, goVersion = fromBuildInfo(number)
}

func fromBuildInfo(number string) (string, string, string) {
	var vcs bool
	var rev string
	var modified bool
	var gov string

	if info, ok := debug.ReadBuildInfo(); ok {
		gov = info.GoVersion
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	switch {
	case rev == "":
		rev = "no revision information"
	case modified:
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	if gov == "" {
		gov = "unknown go version"
	}

	switch {
	case number != "":
		return number, rev, gov
	case vcs:
		return "unreleased", rev, gov
	}
	return "local", rev, gov
}
