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
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
)

// the part of the machine drawn by the MEMVIZ command. memory is not
// included because the graph of 64KiB of bytes is not useful
type vizMachine struct {
	Registers registers.File
	Devices   []any
}

// memviz writes a Graphviz dot file of the CPU registers and the peripheral
// devices.
func (dbg *Debugger) memviz(filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("memviz: %v", err)
		}
	}()

	viz := vizMachine{
		Registers: dbg.machine.CPU.Regs,
	}
	for _, d := range dbg.machine.Devices() {
		viz.Devices = append(viz.Devices, d)
	}

	memviz.Map(f, &viz)

	return nil
}
