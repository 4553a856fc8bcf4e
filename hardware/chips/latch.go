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
	"github.com/jetsetilly/gopher8080/logger"
)

// OutputLatch is an eight bit register written through an output port. Each
// bit of the register drives one of the output pins.
type OutputLatch struct {
	ins   *instance.Instance
	label string

	register uint8
	pins     [8]signal.PinID
}

// NewOutputLatch is the preferred method of initialisation for the
// OutputLatch type.
func NewOutputLatch(ins *instance.Instance, label string) *OutputLatch {
	lat := &OutputLatch{
		ins:   ins,
		label: label,
	}
	for i := range lat.pins {
		lat.pins[i] = ins.Network.NewPin(fmt.Sprintf("%s.q%d", label, i), func() signal.Level {
			return signal.Level((lat.register >> i) & 0x01)
		}, nil)
	}
	return lat
}

func (lat *OutputLatch) String() string {
	return fmt.Sprintf("%s: %02x", lat.label, lat.register)
}

// Label returns the label given to the latch when it was created.
func (lat *OutputLatch) Label() string {
	return lat.label
}

// OutPin returns the pin driven by bit n of the register.
func (lat *OutputLatch) OutPin(n int) signal.PinID {
	if n < 0 || n > 7 {
		panic(fmt.Sprintf("chips: %s has no pin %d", lat.label, n))
	}
	return lat.pins[n]
}

// Value returns the contents of the register.
func (lat *OutputLatch) Value() uint8 {
	return lat.register
}

// Reset clears the register.
func (lat *OutputLatch) Reset() {
	lat.register = 0
	lat.notify()
}

func (lat *OutputLatch) notify() {
	for _, p := range lat.pins {
		lat.ins.Network.NotifyPin(p)
	}
}

// PortInput implements the ports.Input interface. The latch is write-only
// and reads as 0xff.
func (lat *OutputLatch) PortInput(port uint8) uint8 {
	logger.Logf(lat.ins, "chips", "%s: input port %02x polled", lat.label, port)
	return 0xff
}

// PortOutput implements the ports.Output interface.
func (lat *OutputLatch) PortOutput(_ uint8, data uint8) {
	lat.register = data
	lat.notify()
}
