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

// Package ports implements the I/O port space of the CPU. There are 256 input
// ports and 256 output ports. Any number of elements can be registered against
// a port.
//
// Writing to a port sends the data to every output element registered against
// that port. Reading from a port is an AND of the response of every input
// element registered against that port. A port with no input elements reads
// as 0xff.
package ports

import (
	"fmt"
	"strings"
)

// Input is implemented by elements that respond to the CPU reading a port.
type Input interface {
	PortInput(port uint8) uint8
}

// Output is implemented by elements that respond to the CPU writing a port.
type Output interface {
	PortOutput(port uint8, data uint8)
}

// Element is implemented by elements that are both Input and Output.
type Element interface {
	Input
	Output
}

// Space is the port space of the CPU. The zero value is ready to use.
type Space struct {
	inputs  [256][]Input
	outputs [256][]Output
}

// NewSpace is the preferred method of initialisation for the Space type.
func NewSpace() *Space {
	return &Space{}
}

func (sp *Space) String() string {
	s := strings.Builder{}
	for p := range 256 {
		in := len(sp.inputs[p])
		out := len(sp.outputs[p])
		if in > 0 || out > 0 {
			s.WriteString(fmt.Sprintf("%02x: in=%d out=%d\n", p, in, out))
		}
	}
	return s.String()
}

// AddInput registers an input element against the port.
func (sp *Space) AddInput(port uint8, in Input) {
	if in == nil {
		panic("ports: nil input element")
	}
	sp.inputs[port] = append(sp.inputs[port], in)
}

// AddOutput registers an output element against the port.
func (sp *Space) AddOutput(port uint8, out Output) {
	if out == nil {
		panic("ports: nil output element")
	}
	sp.outputs[port] = append(sp.outputs[port], out)
}

// AddElement registers the element as both an input and an output against the
// port.
func (sp *Space) AddElement(port uint8, e Element) {
	sp.AddInput(port, e)
	sp.AddOutput(port, e)
}

// RemoveInput removes the first registration of the input element from the
// port. Returns false if the element was not registered against the port.
func (sp *Space) RemoveInput(port uint8, in Input) bool {
	for i, e := range sp.inputs[port] {
		if e == in {
			sp.inputs[port] = append(sp.inputs[port][:i], sp.inputs[port][i+1:]...)
			return true
		}
	}
	return false
}

// RemoveOutput removes the first registration of the output element from the
// port. Returns false if the element was not registered against the port.
func (sp *Space) RemoveOutput(port uint8, out Output) bool {
	for i, e := range sp.outputs[port] {
		if e == out {
			sp.outputs[port] = append(sp.outputs[port][:i], sp.outputs[port][i+1:]...)
			return true
		}
	}
	return false
}

// ClearInput removes every input element from the port.
func (sp *Space) ClearInput(port uint8) {
	sp.inputs[port] = nil
}

// ClearOutput removes every output element from the port.
func (sp *Space) ClearOutput(port uint8) {
	sp.outputs[port] = nil
}

// Read the port.
func (sp *Space) Read(port uint8) uint8 {
	v := uint8(0xff)
	for _, in := range sp.inputs[port] {
		v &= in.PortInput(port)
	}
	return v
}

// Write data to the port.
func (sp *Space) Write(port uint8, data uint8) {
	for _, out := range sp.outputs[port] {
		out.PortOutput(port, data)
	}
}
