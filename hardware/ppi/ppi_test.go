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

package ppi_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/instance"
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/hardware/ppi"
	"github.com/jetsetilly/gopher8080/hardware/signal"
	"github.com/jetsetilly/gopher8080/test"
)

const (
	portA   = 0xf0
	portB   = 0xf1
	portC   = 0xf2
	control = 0xf3
)

// board connects every PPI pin to its own node. a driver can be added to any
// of the nodes after the PPI pin
type board struct {
	net     *signal.Network
	ppi     *ppi.PPI
	sp      *ports.Space
	nodes   [ppi.NumPins]signal.NodeID
	drivers map[int]*signal.Level
}

func newBoard() *board {
	ins := instance.NewTestingInstance()
	b := &board{
		net:     ins.Network,
		ppi:     ppi.NewPPI(ins, "ppi"),
		sp:      ports.NewSpace(),
		drivers: make(map[int]*signal.Level),
	}
	for i := range b.nodes {
		b.nodes[i] = b.net.NewNode("")
		b.net.Attach(b.nodes[i], b.ppi.Pin(i))
	}
	for p := portA; p <= control; p++ {
		b.sp.AddElement(uint8(p), b.ppi)
	}
	return b
}

func (b *board) drive(pin int, l signal.Level) {
	d, ok := b.drivers[pin]
	if !ok {
		d = new(signal.Level)
		b.drivers[pin] = d
		b.net.Attach(b.nodes[pin], b.net.NewPin("driver", func() signal.Level { return *d }, nil))
	}
	*d = l
	b.net.NotifyChange(b.nodes[pin])
}

// drive the eight pins starting at first with the bits of v
func (b *board) driveByte(first int, v uint8) {
	for i := range 8 {
		b.drive(first+i, signal.Level((v>>i)&0x01))
	}
}

// the levels of the eight nodes starting at first. high impedance reads as
// high
func (b *board) levels(first int) uint8 {
	var v uint8
	for i := range 8 {
		if signal.Normalize(b.net.Query(b.nodes[first+i])) == signal.High {
			v |= 1 << i
		}
	}
	return v
}

func (b *board) level(pin int) signal.Level {
	return b.net.Query(b.nodes[pin])
}

func TestMode0Output(t *testing.T) {
	b := newBoard()
	b.sp.Write(control, 0x80)

	b.sp.Write(portA, 0xa5)
	b.sp.Write(portB, 0x3c)
	b.sp.Write(portC, 0x81)

	for i := range ppi.NumPins {
		test.ExpectInequality(t, b.level(i), signal.HighImpedance, i)
	}
	test.ExpectEquality(t, b.levels(0), uint8(0xa5))
	test.ExpectEquality(t, b.levels(8), uint8(0x3c))
	test.ExpectEquality(t, b.levels(ppi.PC0), uint8(0x81))

	test.ExpectEquality(t, b.sp.Read(portA), uint8(0xa5))
	test.ExpectEquality(t, b.sp.Read(portB), uint8(0x3c))
	test.ExpectEquality(t, b.sp.Read(portC), uint8(0x81))

	// the control word can't be read
	test.ExpectEquality(t, b.sp.Read(control), uint8(0xff))
}

func TestMode0Input(t *testing.T) {
	b := newBoard()
	b.sp.Write(control, 0x9b)

	// nothing is driving the pins
	test.ExpectEquality(t, b.sp.Read(portA), uint8(0xff))
	test.ExpectEquality(t, b.sp.Read(portB), uint8(0xff))
	test.ExpectEquality(t, b.sp.Read(portC), uint8(0xff))

	b.driveByte(0, 0x5a)
	b.driveByte(8, 0x01)
	b.driveByte(ppi.PC0, 0xf0)
	test.ExpectEquality(t, b.sp.Read(portA), uint8(0x5a))
	test.ExpectEquality(t, b.sp.Read(portB), uint8(0x01))
	test.ExpectEquality(t, b.sp.Read(portC), uint8(0xf0))

	// writing an input port sets the latch but doesn't drive the pins
	b.sp.Write(portA, 0x00)
	test.ExpectEquality(t, b.sp.Read(portA), uint8(0x5a))
	test.ExpectEquality(t, b.levels(0), uint8(0x5a))

	// mixed directions. port C upper is output and port C lower is input
	b.sp.Write(control, 0x91)
	b.sp.Write(portC, 0x30)
	test.ExpectEquality(t, b.sp.Read(portC), uint8(0x30))
}

func TestBitSetReset(t *testing.T) {
	b := newBoard()
	b.sp.Write(control, 0x80)

	b.sp.Write(control, 0x07)
	test.ExpectEquality(t, b.level(ppi.PC3), signal.High)
	test.ExpectEquality(t, b.sp.Read(portC), uint8(0x08))

	b.sp.Write(control, 0x0f)
	test.ExpectEquality(t, b.level(ppi.PC7), signal.High)
	test.ExpectEquality(t, b.sp.Read(portC), uint8(0x88))

	b.sp.Write(control, 0x06)
	test.ExpectEquality(t, b.level(ppi.PC3), signal.Low)
	test.ExpectEquality(t, b.sp.Read(portC), uint8(0x80))

	// bit set/reset doesn't change the mode
	test.ExpectEquality(t, b.level(0), signal.Low)
	b.sp.Write(portA, 0xff)
	test.ExpectEquality(t, b.levels(0), uint8(0xff))

	// a pin in an input half port is latched but not driven
	b.sp.Write(control, 0x81)
	b.sp.Write(control, 0x01)
	test.ExpectEquality(t, b.level(ppi.PC0), signal.HighImpedance)
	b.sp.Write(control, 0x80)
	test.ExpectEquality(t, b.level(ppi.PC0), signal.Low)
}

func TestMode1Input(t *testing.T) {
	b := newBoard()
	b.drive(ppi.PC4, signal.High)
	b.sp.Write(control, 0xb0)

	// enable the interrupt
	b.sp.Write(control, 0x09)
	test.ExpectEquality(t, b.level(ppi.PC3), signal.Low)

	b.driveByte(0, 0xc3)

	// strobe. the input buffer is full on the falling edge and the data is
	// latched on the rising edge
	b.drive(ppi.PC4, signal.Low)
	test.ExpectEquality(t, b.level(ppi.PC5), signal.High)
	test.ExpectEquality(t, b.level(ppi.PC3), signal.Low)
	b.drive(ppi.PC4, signal.High)
	test.ExpectEquality(t, b.level(ppi.PC3), signal.High)
	test.ExpectEquality(t, b.sp.Read(portC), uint8(0x38))

	b.driveByte(0, 0x00)
	test.ExpectEquality(t, b.sp.Read(portA), uint8(0xc3))
	test.ExpectEquality(t, b.level(ppi.PC5), signal.Low)
	test.ExpectEquality(t, b.level(ppi.PC3), signal.Low)
	test.ExpectEquality(t, b.sp.Read(portC), uint8(0x10))

	// without the interrupt enabled
	b.sp.Write(control, 0x08)
	b.drive(ppi.PC4, signal.Low)
	b.drive(ppi.PC4, signal.High)
	test.ExpectEquality(t, b.level(ppi.PC5), signal.High)
	test.ExpectEquality(t, b.level(ppi.PC3), signal.Low)
	test.ExpectEquality(t, b.sp.Read(portA), uint8(0x00))
}

func TestMode1Output(t *testing.T) {
	b := newBoard()
	b.drive(ppi.PC2, signal.High)
	b.sp.Write(control, 0x84)

	// the output buffer is empty
	test.ExpectEquality(t, b.level(ppi.PC1), signal.High)

	// enabling the interrupt with an empty buffer requests an interrupt
	b.sp.Write(control, 0x05)
	test.ExpectEquality(t, b.level(ppi.PC0), signal.High)

	b.sp.Write(portB, 0x42)
	test.ExpectEquality(t, b.levels(8), uint8(0x42))
	test.ExpectEquality(t, b.level(ppi.PC1), signal.Low)
	test.ExpectEquality(t, b.level(ppi.PC0), signal.Low)
	test.ExpectEquality(t, b.sp.Read(portB), uint8(0x42))

	// acknowledge
	b.drive(ppi.PC2, signal.Low)
	test.ExpectEquality(t, b.level(ppi.PC1), signal.High)
	test.ExpectEquality(t, b.level(ppi.PC0), signal.Low)
	b.drive(ppi.PC2, signal.High)
	test.ExpectEquality(t, b.level(ppi.PC0), signal.High)

	// PC0 and PC1 are handshake lines and PC2 reads the acknowledge input
	test.ExpectEquality(t, b.sp.Read(portC)&0x07, uint8(0x07))
}

func TestMode2(t *testing.T) {
	b := newBoard()
	b.drive(ppi.PC4, signal.High)
	b.drive(ppi.PC6, signal.High)
	b.driveByte(0, 0x00)
	for i := range 8 {
		b.drive(i, signal.HighImpedance)
	}
	b.sp.Write(control, 0xd0)
	test.ExpectEquality(t, b.level(ppi.PC7), signal.High)

	// the bus is only driven while the output is acknowledged
	b.sp.Write(portA, 0x99)
	test.ExpectEquality(t, b.level(ppi.PC7), signal.Low)
	for i := range 8 {
		test.ExpectEquality(t, b.level(i), signal.HighImpedance, i)
	}
	b.drive(ppi.PC6, signal.Low)
	test.ExpectEquality(t, b.level(ppi.PC7), signal.High)
	for i := range 8 {
		test.ExpectEquality(t, b.level(i), signal.Level((0x99>>i)&0x01), i)
	}
	b.drive(ppi.PC6, signal.High)
	for i := range 8 {
		test.ExpectEquality(t, b.level(i), signal.HighImpedance, i)
	}

	// strobed input on the same pins
	b.driveByte(0, 0x3c)
	b.drive(ppi.PC4, signal.Low)
	test.ExpectEquality(t, b.level(ppi.PC5), signal.High)
	b.drive(ppi.PC4, signal.High)
	test.ExpectEquality(t, b.sp.Read(portA), uint8(0x3c))
	test.ExpectEquality(t, b.level(ppi.PC5), signal.Low)
}

func TestReset(t *testing.T) {
	b := newBoard()
	b.sp.Write(control, 0x80)
	b.sp.Write(portA, 0x00)
	b.sp.Write(portC, 0x00)
	test.ExpectEquality(t, b.level(0), signal.Low)

	b.ppi.Reset()
	for i := range ppi.NumPins {
		test.ExpectEquality(t, b.level(i), signal.HighImpedance, i)
	}
	test.ExpectEquality(t, b.sp.Read(portA), uint8(0xff))
	test.ExpectEquality(t, b.ppi.Label(), "ppi")
}

func TestPinRange(t *testing.T) {
	b := newBoard()
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	b.ppi.Pin(ppi.NumPins)
}
