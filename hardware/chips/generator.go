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

// FrequencyGenerator drives its output pin with a square wave. The output is
// low for the off period and high for the on period. Periods are measured in
// clock units of the scheduler.
type FrequencyGenerator struct {
	ins   *instance.Instance
	label string

	offPeriod int64
	onPeriod  int64

	output bool
	pin    signal.PinID

	// time remaining until the next edge when the generator was suspended.
	// -1 if the generator is not suspended
	held int64
}

// NewFrequencyGenerator is the preferred method of initialisation for the
// FrequencyGenerator type. Both periods must be greater than zero. The
// generator starts immediately with the output low.
func NewFrequencyGenerator(ins *instance.Instance, label string, offPeriod int64, onPeriod int64) *FrequencyGenerator {
	if offPeriod <= 0 || onPeriod <= 0 {
		panic(fmt.Sprintf("chips: %s: periods must be greater than zero (%d, %d)", label, offPeriod, onPeriod))
	}

	gen := &FrequencyGenerator{
		ins:       ins,
		label:     label,
		offPeriod: offPeriod,
		onPeriod:  onPeriod,
		held:      -1,
	}
	gen.pin = ins.Network.NewPin(fmt.Sprintf("%s.out", label), gen.query, nil)
	gen.Reset()

	return gen
}

func (gen *FrequencyGenerator) String() string {
	next := gen.ins.Scheduler.Remaining(gen)
	if gen.held >= 0 {
		next = gen.held
	}
	return fmt.Sprintf("%s: off=%d on=%d out=%v next=%d", gen.label,
		gen.offPeriod, gen.onPeriod, gen.output, next)
}

// Label returns the label given to the generator when it was created.
func (gen *FrequencyGenerator) Label() string {
	return gen.label
}

// OutPin returns the output pin of the generator.
func (gen *FrequencyGenerator) OutPin() signal.PinID {
	return gen.pin
}

// Out returns the level of the output.
func (gen *FrequencyGenerator) Out() bool {
	return gen.output
}

// Reset the generator to the start of the off period. A suspended generator
// remains suspended.
func (gen *FrequencyGenerator) Reset() {
	gen.ins.Scheduler.CancelAll(gen)
	gen.output = false
	gen.ins.Network.NotifyPin(gen.pin)
	if gen.held >= 0 {
		gen.held = gen.offPeriod
		return
	}
	gen.ins.Scheduler.AddRelative(gen, gen.offPeriod, 0)
}

// Suspend stops the generator. The output holds its level and the time to
// the next edge is preserved.
func (gen *FrequencyGenerator) Suspend() {
	if gen.held >= 0 {
		return
	}
	gen.held = gen.ins.Scheduler.Remaining(gen)
	gen.ins.Scheduler.CancelAll(gen)
}

// Resume a suspended generator.
func (gen *FrequencyGenerator) Resume() {
	if gen.held < 0 {
		return
	}
	gen.ins.Scheduler.AddRelative(gen, gen.held, 0)
	gen.held = -1
}

// IsSuspended returns true if the generator is suspended.
func (gen *FrequencyGenerator) IsSuspended() bool {
	return gen.held >= 0
}

func (gen *FrequencyGenerator) period() int64 {
	if gen.output {
		return gen.onPeriod
	}
	return gen.offPeriod
}

func (gen *FrequencyGenerator) query() signal.Level {
	if gen.output {
		return signal.High
	}
	return signal.Low
}

// PerformScheduledEvent implements the scheduler.Owner interface.
//
// The scheduler is drained between instructions so the event may arrive late.
// Edges that fell due in the meantime are produced now, one after the other,
// and the next edge is scheduled relative to when this one was due.
func (gen *FrequencyGenerator) PerformScheduledEvent(_ int, delay int64) {
	for {
		gen.output = !gen.output
		gen.ins.Network.NotifyPin(gen.pin)

		p := gen.period()
		if p > delay {
			gen.ins.Scheduler.AddRelative(gen, p-delay, 0)
			return
		}
		delay -= p
	}
}
