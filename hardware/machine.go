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

package hardware

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8080/hardware/chips"
	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/instance"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/hardware/pit"
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/hardware/ppi"
	"github.com/jetsetilly/gopher8080/hardware/signal"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/prefs"
)

// Port assignments of the peripherals.
const (
	PPIPort   = 0xf0
	PITPort   = 0xf4
	LatchPort = 0xf8
)

// The frequency generator clocking counter 0 of the PIT. Periods are in CPU
// cycles and are both longer than the longest instruction (18 cycles). With
// the default clock of 2MHz counter 0 is clocked at 31.25kHz.
const (
	GeneratorOffPeriod = 32
	GeneratorOnPeriod  = 32
)

// DividerRatio is the number of falling edges of the counter 0 output
// required to toggle the divider output.
const DividerRatio = 2

// Device is implemented by every component of the machine.
type Device interface {
	Label() string
	String() string
	Reset()
}

// Suspender is implemented by devices that can be suspended.
type Suspender interface {
	Suspend()
	Resume()
}

// Machine is the reference board.
type Machine struct {
	Instance *instance.Instance

	CPU   *cpu.CPU
	Mem   *memory.MappedMemory
	Ports *ports.Space

	PPI       *ppi.PPI
	PIT       *pit.PIT
	Latch     *chips.OutputLatch
	Generator *chips.FrequencyGenerator
	Divider   *chips.FrequencyDivider

	// nodes owned by the machine
	Clock0  signal.NodeID
	Out0    signal.NodeID
	Divided signal.NodeID

	// observes the output of counter 0
	Probe *signal.Probe

	// breakpoints are consulted by Run() and RunUntil()
	Breakpoints map[uint16]bool

	// a CPU write to an address in the watches set stops Run() and
	// RunUntil() after the instruction
	Watches map[uint16]bool

	// the most recent write to a watched address. only valid when watched
	// is true
	watched bool
	watch   Watch

	devices []Device

	// nested suspend count
	suspended int
}

// NewMachine creates a new Machine and everything associated with the
// hardware.
func NewMachine(ins *instance.Instance) *Machine {
	m := &Machine{
		Instance:    ins,
		Ports:       ports.NewSpace(),
		Breakpoints: make(map[uint16]bool),
		Watches:     make(map[uint16]bool),
	}

	m.Mem = memory.NewMappedMemory(ins, "memory",
		ins.Prefs.ROMStart.Get().(int), ins.Prefs.RAMStart.Get().(int))
	m.Mem.OnWrite = m.write

	ins.Prefs.ROMStart.SetHookPost(func(v prefs.Value) error {
		m.Mem.SetROMStart(v.(int))
		return nil
	})
	ins.Prefs.RAMStart.SetHookPost(func(v prefs.Value) error {
		m.Mem.SetRAMStart(v.(int))
		return nil
	})
	ins.Prefs.PropagationLimit.SetHookPost(func(v prefs.Value) error {
		ins.Network.SetPropagationLimit(v.(int))
		return nil
	})

	m.CPU = cpu.NewCPU(ins, m.Mem, m.Ports)

	m.PPI = ppi.NewPPI(ins, "ppi")
	for i := range 4 {
		m.Ports.AddElement(PPIPort+uint8(i), m.PPI)
	}

	m.PIT = pit.NewPIT(ins, "pit", [pit.NumCounters]bool{false, true, true})
	for i := range 4 {
		m.Ports.AddElement(PITPort+uint8(i), m.PIT)
	}

	m.Latch = chips.NewOutputLatch(ins, "latch")
	m.Ports.AddElement(LatchPort, m.Latch)

	net := ins.Network

	m.Generator = chips.NewFrequencyGenerator(ins, "generator", GeneratorOffPeriod, GeneratorOnPeriod)
	m.Clock0 = net.NewNode("clk0")
	net.Attach(m.Clock0, m.Generator.OutPin())
	net.Attach(m.Clock0, m.PIT.Counters[0].ClockPin())

	m.Divider = chips.NewFrequencyDivider(ins, "divider", DividerRatio, false)
	m.Out0 = net.NewNode("out0")
	net.Attach(m.Out0, m.PIT.Counters[0].OutPin())
	net.Attach(m.Out0, m.Divider.InPin())
	m.Probe = signal.NewProbe(net, "probe", m.Out0)

	m.Divided = net.NewNode("divided")
	net.Attach(m.Divided, m.Divider.OutPin())
	net.Attach(m.Divided, m.PPI.Pin(ppi.PC0))

	m.devices = []Device{m.PPI, m.PIT, m.Latch, m.Generator, m.Divider}

	m.Reset()

	return m
}

func (m *Machine) String() string {
	s := strings.Builder{}
	s.WriteString(m.CPU.String())
	s.WriteString("\n")
	s.WriteString(m.Mem.String())
	s.WriteString("\n")
	for _, d := range m.devices {
		s.WriteString(d.String())
		s.WriteString("\n")
	}
	s.WriteString(m.Instance.Scheduler.String())
	return s.String()
}

// Devices returns the peripheral devices of the machine.
func (m *Machine) Devices() []Device {
	return m.devices
}

// Reset the CPU and every device. Memory is not cleared.
func (m *Machine) Reset() {
	m.CPU.Reset()
	for _, d := range m.devices {
		d.Reset()
	}
	logger.Log(m.Instance, "machine", "reset")
}

// Suspend the machine. Calls to Suspend() nest and only the first call
// suspends the devices.
func (m *Machine) Suspend() {
	if m.suspended == 0 {
		m.CPU.Suspend()
		for _, d := range m.devices {
			if s, ok := d.(Suspender); ok {
				s.Suspend()
			}
		}
	}
	m.suspended++
}

// Resume the machine. The devices are only resumed when every call to
// Suspend() has been matched by a call to Resume().
func (m *Machine) Resume() {
	if m.suspended == 0 {
		panic("hardware: resume of a machine that is not suspended")
	}
	m.suspended--
	if m.suspended == 0 {
		m.CPU.Resume()
		for _, d := range m.devices {
			if s, ok := d.(Suspender); ok {
				s.Resume()
			}
		}
	}
}

// IsSuspended returns true if the machine is suspended.
func (m *Machine) IsSuspended() bool {
	return m.suspended > 0
}

// Load the named file into memory. Raw binary data is loaded at the dest
// address. Intel HEX data is relocated to the dest address if dest is not
// negative. The program counter is set to the start address of a HEX file if
// it has one.
func (m *Machine) Load(filename string, dest int) (memory.Info, error) {
	inf, err := memory.Load(filename, m.Mem, dest)
	if err != nil {
		return inf, err
	}
	if inf.Start != -1 {
		m.CPU.Regs.PC = uint16(inf.Start)
	}
	logger.Logf(m.Instance, "machine", "loaded %s: %s", filename, inf)
	return inf, nil
}

// Step the emulation by one instruction. A halted CPU is stepped by one clock
// unit. Returns the number of cycles that elapsed.
func (m *Machine) Step() int64 {
	return m.CPU.Exec(1, 0, nil)
}

// Interrupt requests an interrupt with an RST instruction for the numbered
// vector. The request is held until the CPU accepts it.
func (m *Machine) Interrupt(n int) {
	if n < 0 || n > 7 {
		panic(fmt.Sprintf("hardware: interrupt vector out of range (%d)", n))
	}
	m.CPU.RequestInterrupt(0xc7 | n<<3)
}

// Watch is a CPU write to a watched address.
type Watch struct {
	Address uint16
	Old     uint8
	Data    uint8
}

func (w Watch) String() string {
	return fmt.Sprintf("%04x: %02x -> %02x", w.Address, w.Old, w.Data)
}

// write is the OnWrite listener of the machine's memory.
func (m *Machine) write(address uint16, old uint8, data uint8) {
	if !m.Watches[address] {
		return
	}
	m.watched = true
	m.watch = Watch{Address: address, Old: old, Data: data}
	m.CPU.Yield()
}

// LastWatch returns the write that stopped the most recent run with the
// Watchpoint halt.
func (m *Machine) LastWatch() Watch {
	return m.watch
}
