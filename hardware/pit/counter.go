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

	"github.com/jetsetilly/gopher8080/hardware/scheduler"
	"github.com/jetsetilly/gopher8080/hardware/signal"
	"github.com/jetsetilly/gopher8080/logger"
)

// List of read/write orders as programmed by the control word.
const (
	rwLSB    = 1
	rwMSB    = 2
	rwLSBMSB = 3
)

var rwNames = []string{"latch", "LSB", "MSB", "LSB/MSB"}

// Counter is one of the three counters of the 8254.
type Counter struct {
	pit *PIT
	num int

	// counter is connected to the system clock rather than to its clock pin
	direct bool

	// the second byte of a LSB/MSB access is expected
	reading bool
	writing bool

	countingElement    int
	counterRegister    int
	newCounterRegister int

	outputLatch   int
	outputLatched bool
	statusLatch   uint8
	statusLatched bool

	// the gate level as sampled on the last rising clock edge. for a direct
	// counter this is always the level of the gate pin
	gate bool

	// rising edge of the gate has been seen and is waiting for the next
	// rising clock edge
	trigger   bool
	triggered bool

	// a rising clock edge has been seen and the next falling edge is a
	// clock pulse
	pulse bool

	bcd  bool
	base int
	rw   int
	mode int

	nullCount bool
	loaded    bool
	reset     bool

	// scheduling lateness not yet accounted for by a direct counter
	delay int64

	clockLevel bool
	gateLevel  bool
	outLevel   bool

	clockPin signal.PinID
	gatePin  signal.PinID
	outPin   signal.PinID
}

func newCounter(pit *PIT, num int, direct bool) *Counter {
	c := &Counter{
		pit:    pit,
		num:    num,
		direct: direct,
	}

	net := pit.ins.Network
	c.clockPin = net.NewPin(fmt.Sprintf("%s.clk%d", pit.label, num), nil, c.clockChanged)
	c.gatePin = net.NewPin(fmt.Sprintf("%s.gate%d", pit.label, num), nil, c.gateChanged)
	c.outPin = net.NewPin(fmt.Sprintf("%s.out%d", pit.label, num), c.queryOut, nil)

	return c
}

func (c *Counter) String() string {
	connection := "pin"
	if c.direct {
		connection = "direct"
	}
	return fmt.Sprintf("%s mode=%d rw=%s bcd=%v count=%d out=%v", connection,
		c.mode, rwNames[c.rw], c.bcd, c.count(), c.outLevel)
}

// IsDirect returns true if the counter is connected to the system clock.
func (c *Counter) IsDirect() bool {
	return c.direct
}

// ClockPin returns the clock input of the counter. It is a contract violation
// to ask for the clock pin of a counter connected to the system clock.
func (c *Counter) ClockPin() signal.PinID {
	if c.direct {
		panic(fmt.Sprintf("pit: counter %d of %s is connected to the system clock", c.num, c.pit.label))
	}
	return c.clockPin
}

// GatePin returns the gate input of the counter.
func (c *Counter) GatePin() signal.PinID {
	return c.gatePin
}

// OutPin returns the output of the counter.
func (c *Counter) OutPin() signal.PinID {
	return c.outPin
}

// Out returns the level of the counter's output.
func (c *Counter) Out() bool {
	return c.outLevel
}

func (c *Counter) sch() *scheduler.Scheduler {
	return c.pit.ins.Scheduler
}

func (c *Counter) level(p signal.PinID) bool {
	return signal.Normalize(c.pit.ins.Network.QueryPin(p)) == signal.High
}

func (c *Counter) lsb(v int) int {
	if c.bcd {
		return v % 100
	}
	return v & 0xff
}

func (c *Counter) msb(v int) int {
	if c.bcd {
		return (v / 100) % 100
	}
	return (v >> 8) & 0xff
}

// Reset the counter to the quiescent state. The mode, read/write order and
// BCD setting are not changed.
func (c *Counter) Reset() {
	c.sch().CancelAll(c)

	c.clockLevel = c.level(c.clockPin)
	c.gateLevel = c.level(c.gatePin)
	c.outLevel = c.mode != 0
	c.pit.ins.Network.NotifyPin(c.outPin)

	c.outputLatched = false
	c.statusLatched = false
	c.reading = false
	c.writing = false
	c.trigger = false
	c.triggered = false
	c.pulse = false
	c.loaded = false
	c.nullCount = true
	c.reset = true
	c.gate = c.gateLevel
	c.newCounterRegister = 0
	c.delay = 0

	if c.bcd {
		c.base = 10000
	} else {
		c.base = 0x10000
	}
}

// the current value of the counting element. a direct counter calculates the
// value from the time remaining until the next scheduled event
func (c *Counter) count() int {
	if !c.direct {
		return c.countingElement % c.base
	}

	if !c.reset || !c.loaded {
		return 0
	}

	remains := c.sch().Remaining(c)
	if remains < 0 {
		return c.countingElement % c.base
	}

	switch c.mode {
	case 0:
		if c.gate {
			return int(remains) % c.base
		}
		return c.countingElement % c.base
	case 1:
		return int(remains) % c.base
	case 2, 4, 5:
		if c.gate {
			if c.outLevel {
				return (int(remains) + 1) % c.base
			}
			return 1
		}
		return c.counterRegister % c.base
	case 3:
		if c.gate {
			return (int(remains)/2 + 1) % c.base
		}
		return c.counterRegister % c.base
	}

	return 0
}

func (c *Counter) latchCount() {
	if c.outputLatched {
		logger.Logf(c.pit.ins, "pit", "%s: counter %d already latched", c.pit.label, c.num)
		return
	}
	c.outputLatch = c.count()
	c.outputLatched = true
}

func (c *Counter) latchStatus() {
	if c.statusLatched {
		logger.Logf(c.pit.ins, "pit", "%s: status of counter %d already latched", c.pit.label, c.num)
		return
	}

	c.statusLatch = uint8(c.mode<<1) | uint8(c.rw<<4)
	if c.outLevel {
		c.statusLatch |= 0x80
	}
	if c.nullCount {
		c.statusLatch |= 0x40
	}
	if c.bcd {
		c.statusLatch |= 0x01
	}
	c.statusLatched = true
}

// stop a direct counter. the counting element takes the value it had reached
func (c *Counter) stop() {
	if !c.direct {
		return
	}

	remains := c.sch().Remaining(c)
	if remains < 0 {
		return
	}

	c.sch().CancelAll(c)
	switch c.mode {
	case 0, 1:
		c.countingElement = int(remains)
	case 2:
		c.countingElement = int(remains) + 1
	}
}

func (c *Counter) write(data int) {
	mult := 0x100
	if c.bcd {
		mult = 100
	}

	switch c.rw {
	case rwLSB:
		c.newCounterRegister = data
	case rwMSB:
		c.newCounterRegister = data * mult
	case rwLSBMSB:
		if c.writing {
			c.newCounterRegister += data * mult
		} else {
			c.newCounterRegister = data
		}
		c.writing = !c.writing
	}

	// writing the first byte of a two byte count stops a mode 0 counter
	if c.writing {
		if c.mode == 0 {
			c.out(false)
			c.stop()
		}
		return
	}

	c.counterRegister = c.newCounterRegister
	if c.counterRegister == 0 {
		c.counterRegister = c.base
	} else if (c.mode == 2 || c.mode == 3) && c.counterRegister == 1 {
		c.counterRegister = c.base + 1
	}
	c.nullCount = true

	if !c.direct {
		if c.mode == 2 || c.mode == 3 {
			if c.reset {
				c.loaded = true
				c.reset = false
			}
		} else {
			c.loaded = true
		}
		return
	}

	switch c.mode {
	case 0:
		delta := c.delay
		if int64(c.counterRegister)-delta < 1 {
			delta = int64(c.counterRegister - 1)
		}
		c.delay -= delta
		c.countingElement = c.counterRegister - int(delta)
		c.nullCount = false
		c.loaded = true
		if c.gate {
			c.sch().CancelAll(c)
			c.sch().AddRelative(c, int64(c.countingElement+1), 0)
		}
	case 1:
		c.loaded = true
	case 2:
		c.nullCount = false
		c.loaded = true
		if c.gate {
			delta := c.delay
			if int64(c.counterRegister)-delta-1 < 1 {
				delta = int64(c.counterRegister - 2)
			}
			c.delay -= delta
			c.countingElement = c.counterRegister - int(delta)
			c.sch().CancelAll(c)
			c.sch().AddRelative(c, int64(c.countingElement), 0)
		}
	}
}

func (c *Counter) read() uint8 {
	if c.statusLatched {
		c.statusLatched = false
		return c.statusLatch
	}

	var v int
	if c.outputLatched {
		v = c.outputLatch
		if c.reading || c.rw != rwLSBMSB {
			c.outputLatched = false
		}
	} else {
		v = c.count()
	}

	var data int
	switch c.rw {
	case rwLSB:
		data = c.lsb(v)
	case rwMSB:
		data = c.msb(v)
	case rwLSBMSB:
		if c.reading {
			data = c.msb(v)
		} else {
			data = c.lsb(v)
		}
		c.reading = !c.reading
	}

	return uint8(data)
}

// PerformScheduledEvent implements the scheduler.Owner interface. Only
// direct counters schedule events.
func (c *Counter) PerformScheduledEvent(_ int, delay int64) {
	if !c.direct {
		panic(fmt.Sprintf("pit: scheduled event for counter %d of %s which has a clock pin", c.num, c.pit.label))
	}

	c.delay += delay

	// the counting element wraps around after the terminal count. the
	// accumulated delay is taken off the next period
	wrap := func(period int) {
		delta := c.delay
		if int64(period)-delta < 1 {
			delta = int64(period - 1)
		}
		c.delay -= delta
		c.countingElement = period - int(delta)
	}

	switch c.mode {
	case 0:
		wrap(c.base - 1)
		if c.gate && !c.writing {
			c.out(true)
			c.sch().AddRelative(c, int64(max(c.countingElement+1, 1)), 0)
		}
	case 1:
		wrap(c.base - 1)
		c.out(true)
		c.sch().AddRelative(c, int64(max(c.countingElement+1, 1)), 0)
	case 2:
		if c.outLevel {
			c.out(false)
			c.sch().AddRelative(c, 1, 0)
		} else {
			wrap(c.counterRegister - 1)
			c.out(true)
			c.sch().AddRelative(c, int64(max(c.countingElement, 1)), 0)
		}
	}
}

func (c *Counter) queryOut() signal.Level {
	if c.outLevel {
		return signal.High
	}
	return signal.Low
}

func (c *Counter) out(level bool) {
	c.outLevel = level
	c.pit.ins.Network.NotifyPin(c.outPin)
}

func (c *Counter) clockChanged() {
	if c.direct {
		return
	}

	l := c.level(c.clockPin)
	if l == c.clockLevel {
		return
	}
	c.clockLevel = l

	if l {
		c.risingClock()
		c.pulse = true
	} else if c.pulse {
		c.clockPulse()
		c.pulse = false
	}
}

// the gate is sampled on the rising edge of the clock
func (c *Counter) risingClock() {
	c.gateChanged()
	c.gate = c.gateLevel
	if c.trigger {
		c.triggered = true
		c.trigger = false
	}
}

func (c *Counter) gateChanged() {
	l := c.level(c.gatePin)
	if l == c.gateLevel {
		return
	}
	c.gateLevel = l

	if l {
		c.trigger = true
	}

	if !c.direct {
		if !l && (c.mode == 2 || c.mode == 3) {
			c.out(true)
		}
		return
	}

	c.gate = l

	switch c.mode {
	case 0:
		if l && c.reset && c.loaded {
			if !c.writing {
				c.sch().CancelAll(c)
				c.sch().AddRelative(c, int64(max(c.countingElement, 1)), 0)
			}
		} else {
			c.stop()
		}
	case 1:
		if l && c.reset && c.loaded {
			c.out(false)
			c.sch().CancelAll(c)
			c.sch().AddRelative(c, int64(c.counterRegister+1), 0)
			c.nullCount = false
		}
	case 2:
		if l && c.reset && c.loaded {
			c.sch().CancelAll(c)
			c.sch().AddRelative(c, int64(max(c.counterRegister, 1)), 0)
		} else {
			c.stop()
		}
	}
}

func (c *Counter) load() {
	c.countingElement = c.counterRegister
	c.nullCount = false
	c.reset = false
	c.triggered = false
}

func (c *Counter) reload01() {
	c.countingElement--
	if c.countingElement == 0 {
		c.out(true)
	} else if c.countingElement < 0 {
		c.countingElement = c.base - 1
	}
}

func (c *Counter) reload45() {
	c.countingElement--
	if c.countingElement == 0 {
		c.out(false)
	} else if c.countingElement < 0 {
		c.out(true)
		c.countingElement = c.base - 1
	}
}

// falling edge of the clock following a rising edge
func (c *Counter) clockPulse() {
	switch c.mode {
	case 0:
		if c.loaded {
			c.load()
			c.loaded = false
		} else if c.gate && !c.writing && !c.reset {
			c.reload01()
		}
	case 1:
		if c.triggered {
			c.out(false)
			c.load()
		} else if c.loaded && !c.reset {
			c.reload01()
		}
	case 2:
		if c.loaded || c.triggered {
			c.out(true)
			c.load()
			c.loaded = false
		} else if c.gate && !c.reset {
			c.countingElement--
			if c.countingElement == 1 {
				c.out(false)
			} else if c.countingElement == 0 {
				c.out(true)
				c.load()
			}
		}
	case 3:
		if c.loaded || c.triggered {
			c.out(true)
			c.load()
			c.loaded = false
		} else if c.gate && !c.reset {
			if c.counterRegister%2 == 1 && c.countingElement == c.counterRegister {
				if c.outLevel {
					c.countingElement++
				} else {
					c.countingElement--
				}
			}
			c.countingElement -= 2
			if c.countingElement == 0 {
				c.out(!c.outLevel)
				c.load()
			}
		}
	case 4:
		if c.loaded {
			c.load()
			c.loaded = false
		} else if c.gate && !c.reset {
			c.reload45()
		}
	case 5:
		if c.triggered {
			c.load()
		} else if c.loaded && !c.reset {
			c.reload45()
		}
	}
}
