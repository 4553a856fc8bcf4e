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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
var colors = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attribute.
const (
	attrBold = 1
	attrDim  = 2
)

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// Bold is the CSI sequence for bold text.
var Bold = ColorBuild("", false, true)

// NormalPen is the CSI sequence for regular text.
var NormalPen = "\033[0m"

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	for c := range colors {
		Pens[c] = ColorBuild(c, true, false)
		DimPens[c] = ColorBuild(c, false, false)
	}
}

// ColorBuild creates the ANSI sequence for the named pen color. An empty or
// unrecognised color leaves the pen color unchanged.
func ColorBuild(pen string, bright bool, bold bool) string {
	var attrs []string

	if bold {
		attrs = append(attrs, fmt.Sprint(attrBold))
	}

	if c, ok := colors[pen]; ok {
		if bright {
			attrs = append(attrs, fmt.Sprintf("%d%d", targetBrightPen, c))
		} else {
			attrs = append(attrs, fmt.Sprint(attrDim), fmt.Sprintf("%d%d", targetPen, c))
		}
	}

	if len(attrs) == 0 {
		return ""
	}

	return fmt.Sprintf("\033[%sm", strings.Join(attrs, ";"))
}
