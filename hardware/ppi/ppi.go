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

package ppi

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8080/hardware/instance"
	"github.com/jetsetilly/gopher8080/hardware/signal"
	"github.com/jetsetilly/gopher8080/logger"
)

// NumPins is the number of port pins of the PPI.
const NumPins = 24

// Pin numbers of the port C pins.
const (
	PC0 = 16 + iota
	PC1
	PC2
	PC3
	PC4
	PC5
	PC6
	PC7
)

// port C handshake lines in modes 1 and 2
const (
	intrB = PC0
	ibfB  = PC1 // input
	obfB  = PC1 // output, active low
	stbB  = PC2 // input, active low
	ackB  = PC2 // output, active low
	inteB = PC2
	intrA = PC3
	stbA  = PC4 // input, active low
	inteA = PC4 // input and inte2 in mode 2
	ibfA  = PC5
	ackA  = PC6 // output, active low
	inte1 = PC6 // output and mode 2
	obfA  = PC7 // output, active low
)

type direction int

// the values of the direction bits in the control word
const (
	output direction = 0
	input  direction = 1
)

func (d direction) String() string {
	if d == input {
		return "in"
	}
	return "out"
}

// PPI is the Intel 8255A programmable peripheral interface.
type PPI struct {
	ins   *instance.Instance
	label string

	modeA int
	modeB int

	dirA  direction
	dirB  direction
	dirCL direction
	dirCH direction

	// previous levels of the strobe and acknowledge inputs
	strobeA bool
	strobeB bool
	ackA    bool
	ackB    bool

	// output latches for every pin and the input latches of ports A and B
	out [NumPins]bool
	in  [16]bool

	pins [NumPins]signal.PinID
}

// NewPPI is the preferred method of initialisation for the PPI type.
func NewPPI(ins *instance.Instance, label string) *PPI {
	ppi := &PPI{
		ins:   ins,
		label: label,
	}

	for n := range ppi.pins {
		var notify func()
		switch n {
		case stbB, stbA, ackA:
			notify = func() { ppi.handshake(n) }
		}
		ppi.pins[n] = ins.Network.NewPin(pinName(label, n), func() signal.Level { return ppi.query(n) }, notify)
	}

	ppi.Reset()

	return ppi
}

func pinName(label string, n int) string {
	switch {
	case n < 8:
		return fmt.Sprintf("%s.pa%d", label, n)
	case n < 16:
		return fmt.Sprintf("%s.pb%d", label, n-8)
	}
	return fmt.Sprintf("%s.pc%d", label, n-16)
}

// Label returns the label given to the PPI when it was created.
func (ppi *PPI) Label() string {
	return ppi.label
}

func (ppi *PPI) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: A=%d/%s B=%d/%s CH=%s CL=%s", ppi.label,
		ppi.modeA, ppi.dirA, ppi.modeB, ppi.dirB, ppi.dirCH, ppi.dirCL))
	s.WriteString(fmt.Sprintf(" out=%06x in=%04x", bits(ppi.out[:]), bits(ppi.in[:])))
	return s.String()
}

// bits packs the slice into an integer. the first entry is bit 0
func bits(b []bool) int {
	var v int
	for i, o := range b {
		if o {
			v |= 1 << i
		}
	}
	return v
}

// Pin returns the numbered pin. Port A is pins 0 to 7, port B 8 to 15 and
// port C 16 to 23.
func (ppi *PPI) Pin(n int) signal.PinID {
	if n < 0 || n >= NumPins {
		panic(fmt.Sprintf("ppi: %s: no such pin (%d)", ppi.label, n))
	}
	return ppi.pins[n]
}

// Reset puts all ports into mode 0 input.
func (ppi *PPI) Reset() {
	ppi.modeA = 0
	ppi.modeB = 0
	ppi.dirA = input
	ppi.dirB = input
	ppi.dirCL = input
	ppi.dirCH = input
	ppi.clearRegisters()
	ppi.notifyAll()
}

func (ppi *PPI) clearRegisters() {
	ppi.strobeA = true
	ppi.strobeB = true
	ppi.ackA = true
	ppi.ackB = true
	clear(ppi.out[:])
	clear(ppi.in[:])
}

func (ppi *PPI) notify(n int) {
	ppi.ins.Network.NotifyPin(ppi.pins[n])
}

func (ppi *PPI) notifyAll() {
	for n := range ppi.pins {
		ppi.notify(n)
	}
}

// set the output latch of the pin and notify the node it is attached to
func (ppi *PPI) set(n int, v bool) {
	ppi.out[n] = v
	ppi.notify(n)
}

// pin returns the level of the node the pin is attached to. high impedance
// reads as high
func (ppi *PPI) pin(n int) bool {
	return signal.Normalize(ppi.ins.Network.QueryPin(ppi.pins[n])) == signal.High
}

// conditions used throughout to decide the function of port C pins
func (ppi *PPI) strobedInputA() bool {
	return (ppi.modeA == 1 && ppi.dirA == input) || ppi.modeA == 2
}

func (ppi *PPI) strobedOutputA() bool {
	return (ppi.modeA == 1 && ppi.dirA == output) || ppi.modeA == 2
}

func (ppi *PPI) generalC7() bool {
	return ppi.modeA == 0 || (ppi.modeA == 1 && ppi.dirA == input)
}

func (ppi *PPI) generalC4() bool {
	return ppi.modeA == 0 || (ppi.modeA == 1 && ppi.dirA == output)
}

func level(v bool) signal.Level {
	if v {
		return signal.High
	}
	return signal.Low
}

func (ppi *PPI) query(n int) signal.Level {
	drive := func(d direction) signal.Level {
		if d == output {
			return level(ppi.out[n])
		}
		return signal.HighImpedance
	}

	switch {
	case n < 8:
		if ppi.modeA < 2 {
			return drive(ppi.dirA)
		}

		// the bus is driven while the acknowledge input is low
		if ppi.ins.Network.QueryPin(ppi.pins[ackA]) == signal.Low {
			return level(ppi.out[n])
		}
		return signal.HighImpedance

	case n < 16:
		return drive(ppi.dirB)
	}

	switch n {
	case PC0, PC1:
		if ppi.modeB == 1 {
			return level(ppi.out[n])
		}
		return drive(ppi.dirCL)
	case PC2:
		if ppi.modeB == 1 {
			return signal.HighImpedance
		}
		return drive(ppi.dirCL)
	case PC3:
		if ppi.modeA != 0 {
			return level(ppi.out[n])
		}
		return drive(ppi.dirCL)
	case PC4:
		if ppi.strobedInputA() {
			return signal.HighImpedance
		}
		return drive(ppi.dirCH)
	case PC5:
		if ppi.strobedInputA() {
			return level(ppi.out[n])
		}
		return drive(ppi.dirCH)
	case PC6:
		if ppi.strobedOutputA() {
			return signal.HighImpedance
		}
		return drive(ppi.dirCH)
	}

	// PC7
	if ppi.strobedOutputA() {
		return level(ppi.out[n])
	}
	return drive(ppi.dirCH)
}

// handshake is called when the node attached to one of the strobe or
// acknowledge pins changes.
func (ppi *PPI) handshake(n int) {
	s := ppi.pin(n)

	switch n {
	case stbB:
		if ppi.modeB != 1 {
			return
		}
		if ppi.dirB == input {
			if ppi.strobeB && !s {
				ppi.set(ibfB, true)
			} else if !ppi.strobeB && s {
				for i := range 8 {
					ppi.in[8+i] = ppi.pin(8 + i)
				}
				if ppi.out[inteB] {
					ppi.set(intrB, true)
				}
			}
			ppi.strobeB = s
		} else {
			if ppi.ackB && !s {
				ppi.set(obfB, true)
			} else if !ppi.ackB && s {
				if ppi.out[inteB] {
					ppi.set(intrB, true)
				}
			}
			ppi.ackB = s
		}

	case stbA:
		if !ppi.strobedInputA() {
			return
		}
		if ppi.strobeA && !s {
			ppi.set(ibfA, true)
		} else if !ppi.strobeA && s {
			for i := range 8 {
				ppi.in[i] = ppi.pin(i)
			}
			if ppi.out[inteA] {
				ppi.set(intrA, true)
			}
		}
		ppi.strobeA = s

	case ackA:
		if !ppi.strobedOutputA() {
			return
		}

		// in mode 2 the port A pins are driven while acknowledge is low
		bus := func() {
			if ppi.modeA == 2 {
				for i := range 8 {
					ppi.notify(i)
				}
			}
		}

		if ppi.ackA && !s {
			bus()
			ppi.set(obfA, true)
		} else if !ppi.ackA && s {
			bus()
			if ppi.out[inte1] {
				ppi.set(intrA, true)
			}
		}
		ppi.ackA = s
	}
}

// PortInput implements the ports.Input interface. Only the low two bits of
// the port number are used.
func (ppi *PPI) PortInput(port uint8) uint8 {
	switch port & 0x03 {
	case 0:
		return ppi.readA()
	case 1:
		return ppi.readB()
	case 2:
		return ppi.readC()
	}
	return 0xff
}

func (ppi *PPI) readA() uint8 {
	var d uint8
	for i := range 8 {
		var v bool
		switch {
		case ppi.dirA == output:
			v = ppi.out[i]
		case ppi.modeA == 0:
			v = ppi.pin(i)
		default:
			v = ppi.in[i]
		}
		if v {
			d |= 1 << i
		}
	}

	switch ppi.modeA {
	case 1:
		if ppi.dirA == input {
			ppi.set(ibfA, false)
			if ppi.out[inteA] {
				ppi.set(intrA, false)
			}
		}
	case 2:
		ppi.set(ibfA, false)
		if ppi.out[inteA] && (!ppi.out[inte1] || !ppi.out[obfA]) {
			ppi.set(intrA, false)
		}
	}

	return d
}

func (ppi *PPI) readB() uint8 {
	var d uint8
	for i := range 8 {
		var v bool
		switch {
		case ppi.dirB == output:
			v = ppi.out[8+i]
		case ppi.modeB == 0:
			v = ppi.pin(8 + i)
		default:
			v = ppi.in[8+i]
		}
		if v {
			d |= 1 << i
		}
	}

	if ppi.modeB == 1 && ppi.dirB == input {
		ppi.set(ibfB, false)
		if ppi.out[inteB] {
			ppi.set(intrB, false)
		}
	}

	return d
}

func (ppi *PPI) readC() uint8 {
	// general purpose pins read the output latch or the pin depending on
	// the direction of the half port
	general := func(n int, d direction) bool {
		if d == output {
			return ppi.out[n]
		}
		return ppi.pin(n)
	}

	var b [8]bool

	if ppi.generalC7() {
		b[7] = general(PC7, ppi.dirCH)
		b[6] = general(PC6, ppi.dirCH)
	} else {
		b[7] = ppi.out[PC7]
		b[6] = ppi.pin(PC6)
	}

	if ppi.generalC4() {
		b[5] = general(PC5, ppi.dirCH)
		b[4] = general(PC4, ppi.dirCH)
	} else {
		b[5] = ppi.out[PC5]
		b[4] = ppi.pin(PC4)
	}

	if ppi.modeA == 0 {
		b[3] = general(PC3, ppi.dirCL)
	} else {
		b[3] = ppi.out[PC3]
	}

	if ppi.modeB == 0 {
		b[2] = general(PC2, ppi.dirCL)
		b[1] = general(PC1, ppi.dirCL)
		b[0] = general(PC0, ppi.dirCL)
	} else {
		b[2] = ppi.pin(PC2)
		b[1] = ppi.out[PC1]
		b[0] = ppi.out[PC0]
	}

	return uint8(bits(b[:]))
}

// PortOutput implements the ports.Output interface. Only the low two bits of
// the port number are used.
func (ppi *PPI) PortOutput(port uint8, data uint8) {
	switch port & 0x03 {
	case 0:
		ppi.writeA(data)
	case 1:
		ppi.writeB(data)
	case 2:
		ppi.writeC(data)
	case 3:
		if data&0x80 == 0x80 {
			ppi.control(data)
		} else {
			ppi.bitSetReset(data)
		}
	}
}

func (ppi *PPI) writeA(data uint8) {
	switch {
	case ppi.modeA == 0 || (ppi.modeA == 1 && ppi.dirA == input):
		for i := range 8 {
			ppi.out[i] = data&(1<<i) != 0
			if ppi.modeA == 0 && ppi.dirA == output {
				ppi.notify(i)
			}
		}
	case ppi.modeA == 1:
		ppi.set(intrA, false)
		for i := range 8 {
			ppi.set(i, data&(1<<i) != 0)
		}
		ppi.set(obfA, false)
	default:
		// mode 2. the bus is not driven until acknowledged
		ppi.set(intrA, false)
		for i := range 8 {
			ppi.out[i] = data&(1<<i) != 0
		}
		ppi.set(obfA, false)
	}
}

func (ppi *PPI) writeB(data uint8) {
	if ppi.modeB == 0 || ppi.dirB == input {
		for i := range 8 {
			ppi.out[8+i] = data&(1<<i) != 0
			if ppi.modeB == 0 && ppi.dirB == output {
				ppi.notify(8 + i)
			}
		}
		return
	}

	ppi.set(intrB, false)
	for i := range 8 {
		ppi.set(8+i, data&(1<<i) != 0)
	}
	ppi.set(obfB, false)
}

func (ppi *PPI) writeC(data uint8) {
	if ppi.modeB != 0 {
		return
	}

	// only the general purpose pins are written
	last := PC2
	if ppi.modeA == 0 {
		last = PC7
	}

	for n := PC0; n <= last; n++ {
		ppi.out[n] = data&(1<<(n-PC0)) != 0
		if (n < PC4 && ppi.dirCL == output) || (n >= PC4 && ppi.dirCH == output) {
			ppi.notify(n)
		}
	}
}

func (ppi *PPI) control(data uint8) {
	ppi.dirCL = direction(data & 0x01)
	ppi.dirB = direction((data >> 1) & 0x01)
	ppi.modeB = int(data>>2) & 0x01
	ppi.dirCH = direction((data >> 3) & 0x01)
	ppi.dirA = direction((data >> 4) & 0x01)
	ppi.modeA = min(int(data>>5)&0x03, 2)

	logger.Logf(ppi.ins, "ppi", "%s: control %02x: A=%d/%s B=%d/%s CH=%s CL=%s", ppi.label, data,
		ppi.modeA, ppi.dirA, ppi.modeB, ppi.dirB, ppi.dirCH, ppi.dirCL)

	ppi.clearRegisters()

	// output buffers start empty
	if ppi.strobedOutputA() {
		ppi.out[obfA] = true
	}
	if ppi.modeB == 1 && ppi.dirB == output {
		ppi.out[obfB] = true
	}

	ppi.notifyAll()
}

func (ppi *PPI) bitSetReset(data uint8) {
	d := data&0x01 == 0x01
	n := PC0 + int(data>>1)&0x07

	// set a general purpose pin
	general := func(dir direction) {
		ppi.out[n] = d
		if dir == output {
			ppi.notify(n)
		}
	}

	// set an interrupt enable flag. the interrupt request follows the buffer
	// flag
	enable := func(intr int, flag int) {
		ppi.out[n] = d
		ppi.set(intr, d && ppi.out[flag])
	}

	switch n {
	case PC0, PC1:
		if ppi.modeB == 0 {
			general(ppi.dirCL)
		}
	case PC2:
		if ppi.modeB == 0 {
			general(ppi.dirCL)
		} else {
			enable(intrB, ibfB)
		}
	case PC3:
		if ppi.generalC7() {
			general(ppi.dirCL)
		}
	case PC4:
		if ppi.generalC4() {
			general(ppi.dirCH)
		} else {
			enable(intrA, ibfA)
		}
	case PC5:
		if ppi.generalC4() {
			general(ppi.dirCH)
		}
	case PC6:
		if ppi.generalC7() {
			general(ppi.dirCH)
		} else {
			enable(intrA, obfA)
		}
	case PC7:
		if ppi.generalC7() {
			general(ppi.dirCH)
		}
	}
}
