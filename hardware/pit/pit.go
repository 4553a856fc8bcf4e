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

package pit

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8080/hardware/instance"
	"github.com/jetsetilly/gopher8080/logger"
)

// NumCounters is the number of counters in the 8254.
const NumCounters = 3

// Model distinguishes the 8254 from its predecessor.
type Model int

// List of valid Model values.
const (
	I8254 Model = iota

	// the 8253 does not have the read-back command
	I8253
)

func (m Model) String() string {
	if m == I8253 {
		return "8253"
	}
	return "8254"
}

// PIT is the Intel 8254 programmable interval timer.
type PIT struct {
	ins   *instance.Instance
	label string
	model Model

	Counters [NumCounters]*Counter
}

// NewPIT is the preferred method of initialisation for the PIT type. The
// direct argument specifies whether each counter is connected to the system
// clock rather than to a clock pin.
func NewPIT(ins *instance.Instance, label string, direct [NumCounters]bool) *PIT {
	return newPIT(ins, label, I8254, direct)
}

// New8253 creates a PIT that behaves as an 8253. It is the same as the 8254
// except that the read-back command is ignored.
func New8253(ins *instance.Instance, label string, direct [NumCounters]bool) *PIT {
	return newPIT(ins, label, I8253, direct)
}

func newPIT(ins *instance.Instance, label string, model Model, direct [NumCounters]bool) *PIT {
	pit := &PIT{
		ins:   ins,
		label: label,
		model: model,
	}
	for i := range pit.Counters {
		pit.Counters[i] = newCounter(pit, i, direct[i])
	}
	pit.Reset()
	return pit
}

// Model returns the model of the PIT.
func (pit *PIT) Model() Model {
	return pit.model
}

// Label returns the label given to the PIT when it was created.
func (pit *PIT) Label() string {
	return pit.label
}

func (pit *PIT) String() string {
	s := strings.Builder{}
	for i, c := range pit.Counters {
		if i > 0 {
			s.WriteRune('\n')
		}
		s.WriteString(fmt.Sprintf("%s.%d: %s", pit.label, i, c))
	}
	return s.String()
}

// Reset every counter.
func (pit *PIT) Reset() {
	for _, c := range pit.Counters {
		c.Reset()
	}
}

// PortInput implements the ports.Input interface. Only the low two bits of
// the port number are used.
func (pit *PIT) PortInput(port uint8) uint8 {
	n := port & 0x03
	if n == 0x03 {
		return 0xff
	}
	return pit.Counters[n].read()
}

// PortOutput implements the ports.Output interface. Only the low two bits of
// the port number are used.
func (pit *PIT) PortOutput(port uint8, data uint8) {
	n := port & 0x03
	if n != 0x03 {
		pit.Counters[n].write(int(data))
		return
	}

	n = data >> 6

	// read-back command
	if n == 0x03 {
		if pit.model == I8253 {
			logger.Logf(pit.ins, "pit", "%s: read-back command not supported by the 8253 (%02x)", pit.label, data)
			return
		}
		if data&0x01 == 0x01 {
			logger.Logf(pit.ins, "pit", "%s: illegal read-back command (%02x)", pit.label, data)
			return
		}
		for i, c := range pit.Counters {
			if data&(0x02<<i) == 0x00 {
				continue
			}
			if data&0x20 == 0x00 {
				c.latchCount()
			}
			if data&0x10 == 0x00 {
				c.latchStatus()
			}
		}
		return
	}

	c := pit.Counters[n]

	rw := int(data>>4) & 0x03
	if rw == 0 {
		c.latchCount()
		return
	}

	c.rw = rw
	c.mode = int(data>>1) & 0x07
	if c.mode > 5 {
		c.mode -= 4
	}
	c.bcd = data&0x01 == 0x01
	c.Reset()
}
