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

package chips

import (
	"fmt"

	"github.com/jetsetilly/gopher8080/hardware/instance"
	"github.com/jetsetilly/gopher8080/hardware/signal"
)

// FrequencyDivider counts edges of one polarity on its input pin and toggles
// its output every ratio edges. The output frequency is therefore the input
// frequency divided by twice the ratio.
type FrequencyDivider struct {
	ins   *instance.Instance
	label string

	ratio int

	// count rising edges if true, falling edges otherwise
	rising bool

	counter int
	input   bool
	output  bool

	inPin  signal.PinID
	outPin signal.PinID
}

// NewFrequencyDivider is the preferred method of initialisation for the
// FrequencyDivider type. The ratio must be greater than one.
func NewFrequencyDivider(ins *instance.Instance, label string, ratio int, rising bool) *FrequencyDivider {
	if ratio <= 1 {
		panic(fmt.Sprintf("chips: %s: ratio must be greater than one (%d)", label, ratio))
	}

	div := &FrequencyDivider{
		ins:    ins,
		label:  label,
		ratio:  ratio,
		rising: rising,
	}
	div.inPin = ins.Network.NewPin(fmt.Sprintf("%s.in", label), nil, div.inputChanged)
	div.outPin = ins.Network.NewPin(fmt.Sprintf("%s.out", label), div.query, nil)
	div.Reset()

	return div
}

func (div *FrequencyDivider) String() string {
	return fmt.Sprintf("%s: ratio=%d count=%d out=%v", div.label, div.ratio, div.counter, div.output)
}

// Label returns the label given to the divider when it was created.
func (div *FrequencyDivider) Label() string {
	return div.label
}

// InPin returns the input pin of the divider.
func (div *FrequencyDivider) InPin() signal.PinID {
	return div.inPin
}

// OutPin returns the output pin of the divider.
func (div *FrequencyDivider) OutPin() signal.PinID {
	return div.outPin
}

// Out returns the level of the output.
func (div *FrequencyDivider) Out() bool {
	return div.output
}

// Reset the divider. The input level is sampled and the output is set low.
func (div *FrequencyDivider) Reset() {
	div.counter = 0
	div.input = signal.Normalize(div.ins.Network.QueryPin(div.inPin)) == signal.High
	div.output = false
	div.ins.Network.NotifyPin(div.outPin)
}

func (div *FrequencyDivider) query() signal.Level {
	if div.output {
		return signal.High
	}
	return signal.Low
}

func (div *FrequencyDivider) inputChanged() {
	l := signal.Normalize(div.ins.Network.QueryPin(div.inPin)) == signal.High
	if l == div.input {
		return
	}
	div.input = l

	if l != div.rising {
		return
	}

	div.counter++
	if div.counter == div.ratio {
		div.counter = 0
		div.output = !div.output
		div.ins.Network.NotifyPin(div.outPin)
	}
}
