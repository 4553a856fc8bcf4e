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

package signal

import "fmt"

// Function is the truth function of a Gate.
type Function int

// List of valid Function values. Inverter and Buffer are single input
// functions.
const (
	NAND Function = iota
	NOR
	XNOR
	AND
	OR
	XOR
	Inverter
	Buffer
)

func (f Function) String() string {
	switch f {
	case NAND:
		return "NAND"
	case NOR:
		return "NOR"
	case XNOR:
		return "XNOR"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case XOR:
		return "XOR"
	case Inverter:
		return "Inverter"
	case Buffer:
		return "Buffer"
	}
	return fmt.Sprintf("Function(%d)", int(f))
}

// eval applies the function to normalised input levels.
func (f Function) eval(inputs []Level) Level {
	var and, or, xor bool
	and = true
	for _, l := range inputs {
		b := l == High
		and = and && b
		or = or || b
		xor = xor != b
	}

	var r bool
	switch f {
	case NAND, Inverter:
		r = !and
	case NOR:
		r = !or
	case XNOR:
		r = !xor
	case AND, Buffer:
		r = and
	case OR:
		r = or
	case XOR:
		r = xor
	}

	if r {
		return High
	}
	return Low
}

// Gate is a combinational logic gate with any number of inputs and one
// output. The output is a function of the normalised levels of the nodes the
// input pins are attached to. An unattached or undriven input reads high.
//
// The output is recomputed whenever an input node changes but the output node
// is notified only if the output level has changed. Between changes the output
// pin drives the cached level, so querying a node never recurses through a
// chain of gates.
//
// Wiring a gate does not evaluate it. Call Update() once the inputs have been
// attached, or notify the input nodes.
type Gate struct {
	net   *Network
	label string
	fn    Function

	inputs []PinID
	output PinID

	// the level driven by the output pin
	last Level

	// reused by evaluate()
	levels []Level
}

// NewGate is the preferred method of initialisation for the Gate type. The
// Inverter and Buffer functions must have exactly one input.
func NewGate(net *Network, label string, fn Function, numInputs int) *Gate {
	if numInputs < 1 {
		panic(fmt.Sprintf("signal: %s: gate must have at least one input", label))
	}
	if (fn == Inverter || fn == Buffer) && numInputs != 1 {
		panic(fmt.Sprintf("signal: %s: %s must have exactly one input", label, fn))
	}

	g := &Gate{
		net:    net,
		label:  label,
		fn:     fn,
		inputs: make([]PinID, numInputs),
		levels: make([]Level, numInputs),
	}

	for i := range g.inputs {
		g.inputs[i] = net.NewPin(fmt.Sprintf("%s.in%d", label, i), nil, g.inputChanged)
	}
	g.output = net.NewPin(fmt.Sprintf("%s.out", label), g.query, nil)
	g.last = g.evaluate()

	return g
}

func (g *Gate) String() string {
	return fmt.Sprintf("%s (%s) out=%s", g.label, g.fn, g.last)
}

// Function returns the truth function of the gate.
func (g *Gate) Function() Function {
	return g.fn
}

// NumInputs returns the number of input pins.
func (g *Gate) NumInputs() int {
	return len(g.inputs)
}

// Input returns the numbered input pin.
func (g *Gate) Input(n int) PinID {
	return g.inputs[n]
}

// Output returns the output pin.
func (g *Gate) Output() PinID {
	return g.output
}

func (g *Gate) evaluate() Level {
	for i, p := range g.inputs {
		g.levels[i] = Normalize(g.net.QueryPin(p))
	}
	return g.fn.eval(g.levels)
}

func (g *Gate) query() Level {
	return g.last
}

// Update evaluates the gate and notifies the output node if the output has
// changed.
func (g *Gate) Update() {
	g.inputChanged()
}

func (g *Gate) inputChanged() {
	l := g.evaluate()
	if l == g.last {
		return
	}
	g.last = l
	g.net.NotifyPin(g.output)
}
