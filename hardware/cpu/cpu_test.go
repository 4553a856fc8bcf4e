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

package cpu_test

import (
	"math/bits"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/hardware/instance"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/test"
)

// mockBus is used to call opcode behaviours directly
type mockBus struct {
	mem    [0x10000]uint8
	input  uint8
	output []uint8
}

func (b *mockBus) Read(address uint16) uint8 {
	return b.mem[address]
}

func (b *mockBus) Write(address uint16, data uint8) {
	b.mem[address] = data
}

func (b *mockBus) Input(port uint8) uint8 {
	return b.input
}

func (b *mockBus) Output(port uint8, data uint8) {
	b.output = append(b.output, port, data)
}

// run the opcode with the immediate data following it in memory. returns the
// number of cycles consumed
func run(r *registers.File, b *mockBus, opcode uint8, data ...uint8) int {
	r.PC = 0x1000
	for i, d := range data {
		b.mem[0x1001+i] = d
	}
	b.mem[0x1000] = opcode
	r.PC++
	return cpu.Opcodes[opcode].Behaviour(r, b)
}

func newCPU(program ...uint8) (*cpu.CPU, *memory.SimpleMemory, *instance.Instance) {
	ins := instance.NewTestingInstance()
	mem := memory.NewSimpleMemory(ins, "test", 0, 0)
	for i, v := range program {
		mem.Poke(uint16(i), v)
	}
	mc := cpu.NewCPU(ins, mem, ports.NewSpace())
	mc.Regs.SP = 0x8000
	return mc, mem, ins
}

func TestOpcodeTable(t *testing.T) {
	for i, op := range cpu.Opcodes {
		test.ExpectEquality(t, int(op.OpCode), i)
		test.ExpectSuccess(t, op.Behaviour != nil, op)
	}
}

func TestLogicFlags(t *testing.T) {
	var r registers.File
	b := &mockBus{}

	for v := range 256 {
		even := bits.OnesCount8(uint8(v))%2 == 0

		// ANA A, ORA A and XRA B (with B set to zero) all leave A unchanged
		for _, opcode := range []uint8{0xa7, 0xb7, 0xa8} {
			r = registers.NewFile()
			r.A = uint8(v)
			r.F.Set(registers.Carry, true)
			test.ExpectEquality(t, run(&r, b, opcode), 4)
			test.ExpectEquality(t, r.A, uint8(v))
			test.ExpectEquality(t, r.F.Is(registers.Parity), even, v, opcode)
			test.ExpectEquality(t, r.F.Is(registers.Zero), v == 0, v, opcode)
			test.ExpectEquality(t, r.F.Is(registers.Sign), v&0x80 == 0x80, v, opcode)
			test.ExpectFailure(t, r.F.Is(registers.Carry), v, opcode)
		}
	}

	// the auxiliary carry of ANA is the OR of bit 3 of the operands
	r = registers.NewFile()
	r.A = 0x08
	r.B = 0x00
	run(&r, b, 0xa0)
	test.ExpectSuccess(t, r.F.Is(registers.AuxCarry))
	r.A = 0x07
	run(&r, b, 0xa0)
	test.ExpectFailure(t, r.F.Is(registers.AuxCarry))
}

func TestArithmeticFlags(t *testing.T) {
	var r registers.File
	b := &mockBus{}

	for x := range 256 {
		for y := range 256 {
			// ADD B
			r = registers.NewFile()
			r.A = uint8(x)
			r.B = uint8(y)
			run(&r, b, 0x80)
			res := uint8(x + y)
			test.ExpectEquality(t, r.A, res)
			test.ExpectEquality(t, r.F.Is(registers.Zero), res == 0)
			test.ExpectEquality(t, r.F.Is(registers.Sign), res&0x80 == 0x80)
			test.ExpectEquality(t, r.F.Is(registers.Carry), x+y > 0xff)
			test.ExpectEquality(t, r.F.Is(registers.AuxCarry), x&0x0f+y&0x0f > 0x0f)

			// SUI
			r = registers.NewFile()
			r.A = uint8(x)
			run(&r, b, 0xd6, uint8(y))
			res = uint8(x - y)
			test.ExpectEquality(t, r.A, res)
			test.ExpectEquality(t, r.F.Is(registers.Zero), res == 0)
			test.ExpectEquality(t, r.F.Is(registers.Sign), res&0x80 == 0x80)
			test.ExpectEquality(t, r.F.Is(registers.Carry), x < y)
		}
	}
}

func TestCompare(t *testing.T) {
	var r registers.File
	b := &mockBus{}

	r = registers.NewFile()
	r.A = 0x0a
	r.E = 0x05
	run(&r, b, 0xbb)
	test.ExpectEquality(t, r.A, uint8(0x0a))
	test.ExpectFailure(t, r.F.Is(registers.Carry))
	test.ExpectFailure(t, r.F.Is(registers.Zero))

	r.E = 0x0a
	run(&r, b, 0xbb)
	test.ExpectSuccess(t, r.F.Is(registers.Zero))

	r.E = 0x0b
	run(&r, b, 0xbb)
	test.ExpectSuccess(t, r.F.Is(registers.Carry))
	test.ExpectSuccess(t, r.F.Is(registers.Sign))
}

func TestIncrementDecrement(t *testing.T) {
	var r registers.File
	b := &mockBus{}

	r = registers.NewFile()
	r.F.Set(registers.Carry, true)
	r.C = 0x0f
	test.ExpectEquality(t, run(&r, b, 0x0c), 5)
	test.ExpectEquality(t, r.C, uint8(0x10))
	test.ExpectSuccess(t, r.F.Is(registers.AuxCarry))

	r.C = 0xff
	run(&r, b, 0x0c)
	test.ExpectEquality(t, r.C, uint8(0x00))
	test.ExpectSuccess(t, r.F.Is(registers.Zero))

	// carry is never affected
	test.ExpectSuccess(t, r.F.Is(registers.Carry))

	run(&r, b, 0x0d)
	test.ExpectEquality(t, r.C, uint8(0xff))
	test.ExpectFailure(t, r.F.Is(registers.AuxCarry))
	test.ExpectSuccess(t, r.F.Is(registers.Sign))

	run(&r, b, 0x0d)
	test.ExpectEquality(t, r.C, uint8(0xfe))
	test.ExpectSuccess(t, r.F.Is(registers.AuxCarry))

	// INR M
	r.SetHL(0x2000)
	b.mem[0x2000] = 0x7f
	test.ExpectEquality(t, run(&r, b, 0x34), 10)
	test.ExpectEquality(t, b.mem[0x2000], uint8(0x80))
	test.ExpectSuccess(t, r.F.Is(registers.Sign))

	// INX and DCX do not affect flags
	r = registers.NewFile()
	r.SetDE(0xffff)
	run(&r, b, 0x13)
	test.ExpectEquality(t, r.DE(), uint16(0x0000))
	test.ExpectFailure(t, r.F.Is(registers.Zero))
	run(&r, b, 0x1b)
	test.ExpectEquality(t, r.DE(), uint16(0xffff))
}

func TestDAA(t *testing.T) {
	var r registers.File
	b := &mockBus{}

	// example from the 8080 programmer's manual
	r = registers.NewFile()
	r.A = 0x9b
	run(&r, b, 0x27)
	test.ExpectEquality(t, r.A, uint8(0x01))
	test.ExpectSuccess(t, r.F.Is(registers.Carry))
	test.ExpectSuccess(t, r.F.Is(registers.AuxCarry))

	// 15 + 27 = 42
	r = registers.NewFile()
	r.A = 0x15
	r.B = 0x27
	run(&r, b, 0x80)
	run(&r, b, 0x27)
	test.ExpectEquality(t, r.A, uint8(0x42))
	test.ExpectFailure(t, r.F.Is(registers.Carry))

	// carry is never cleared
	r = registers.NewFile()
	r.A = 0x00
	r.F.Set(registers.Carry, true)
	run(&r, b, 0x27)
	test.ExpectEquality(t, r.A, uint8(0x60))
	test.ExpectSuccess(t, r.F.Is(registers.Carry))
}

func TestRotates(t *testing.T) {
	var r registers.File
	b := &mockBus{}

	r = registers.NewFile()
	r.A = 0x80
	run(&r, b, 0x07)
	test.ExpectEquality(t, r.A, uint8(0x01))
	test.ExpectSuccess(t, r.F.Is(registers.Carry))

	r.A = 0x01
	r.F.Set(registers.Carry, false)
	run(&r, b, 0x0f)
	test.ExpectEquality(t, r.A, uint8(0x80))
	test.ExpectSuccess(t, r.F.Is(registers.Carry))

	r.A = 0x80
	r.F.Set(registers.Carry, false)
	run(&r, b, 0x17)
	test.ExpectEquality(t, r.A, uint8(0x00))
	test.ExpectSuccess(t, r.F.Is(registers.Carry))

	r.A = 0x01
	r.F.Set(registers.Carry, true)
	run(&r, b, 0x1f)
	test.ExpectEquality(t, r.A, uint8(0x80))
	test.ExpectSuccess(t, r.F.Is(registers.Carry))
}

func TestDAD(t *testing.T) {
	var r registers.File
	b := &mockBus{}

	r = registers.NewFile()
	r.SetHL(0x8000)
	r.SetBC(0x8001)
	test.ExpectEquality(t, run(&r, b, 0x09), 10)
	test.ExpectEquality(t, r.HL(), uint16(0x0001))
	test.ExpectSuccess(t, r.F.Is(registers.Carry))

	// DAD H doubles HL
	run(&r, b, 0x29)
	test.ExpectEquality(t, r.HL(), uint16(0x0002))
	test.ExpectFailure(t, r.F.Is(registers.Carry))
}

func TestStack(t *testing.T) {
	var r registers.File
	b := &mockBus{}

	r = registers.NewFile()
	r.SP = 0x0100
	r.A = 0x12
	r.F = registers.FixFlags(0xff)
	test.ExpectEquality(t, run(&r, b, 0xf5), 11)
	test.ExpectEquality(t, r.SP, uint16(0x00fe))
	test.ExpectEquality(t, b.mem[0x00ff], uint8(0x12))
	test.ExpectEquality(t, b.mem[0x00fe], uint8(0xd7))

	// the fixed bits are forced when popping the flags
	b.mem[0x00fe] = 0x28
	test.ExpectEquality(t, run(&r, b, 0xf1), 10)
	test.ExpectEquality(t, uint8(r.F), uint8(0x02))
	test.ExpectEquality(t, r.SP, uint16(0x0100))

	// XTHL
	r.SP = 0x0100
	r.SetHL(0xabcd)
	b.mem[0x0100] = 0x34
	b.mem[0x0101] = 0x12
	test.ExpectEquality(t, run(&r, b, 0xe3), 18)
	test.ExpectEquality(t, r.HL(), uint16(0x1234))
	test.ExpectEquality(t, b.mem[0x0100], uint8(0xcd))
	test.ExpectEquality(t, b.mem[0x0101], uint8(0xab))
}

func TestFlowControl(t *testing.T) {
	var r registers.File
	b := &mockBus{}

	// JZ not taken and taken. both take 10 cycles
	r = registers.NewFile()
	r.SP = 0x0100
	test.ExpectEquality(t, run(&r, b, 0xca, 0x00, 0x20), 10)
	test.ExpectEquality(t, r.PC, uint16(0x1003))
	r.F.Set(registers.Zero, true)
	test.ExpectEquality(t, run(&r, b, 0xca, 0x00, 0x20), 10)
	test.ExpectEquality(t, r.PC, uint16(0x2000))

	// CNZ not taken and CZ taken
	test.ExpectEquality(t, run(&r, b, 0xc4, 0x00, 0x30), 11)
	test.ExpectEquality(t, r.PC, uint16(0x1003))
	test.ExpectEquality(t, run(&r, b, 0xcc, 0x00, 0x30), 17)
	test.ExpectEquality(t, r.PC, uint16(0x3000))
	test.ExpectEquality(t, r.SP, uint16(0x00fe))

	// RNZ not taken and RZ taken
	test.ExpectEquality(t, run(&r, b, 0xc0), 5)
	test.ExpectEquality(t, r.PC, uint16(0x1001))
	test.ExpectEquality(t, run(&r, b, 0xc8), 11)
	test.ExpectEquality(t, r.PC, uint16(0x1003))

	// parity odd and sign conditions
	r.F = registers.FixFlags(0)
	run(&r, b, 0xe2, 0x00, 0x40)
	test.ExpectEquality(t, r.PC, uint16(0x4000))
	run(&r, b, 0xfa, 0x00, 0x40)
	test.ExpectEquality(t, r.PC, uint16(0x1003))

	// RST 5
	r.SP = 0x0100
	test.ExpectEquality(t, run(&r, b, 0xef), 11)
	test.ExpectEquality(t, r.PC, uint16(0x0028))
	test.ExpectEquality(t, b.mem[0x00ff], uint8(0x10))
	test.ExpectEquality(t, b.mem[0x00fe], uint8(0x01))

	// PCHL
	r.SetHL(0x5555)
	test.ExpectEquality(t, run(&r, b, 0xe9), 5)
	test.ExpectEquality(t, r.PC, uint16(0x5555))
}

func TestUndocumented(t *testing.T) {
	var r registers.File
	b := &mockBus{}

	for _, opcode := range []uint8{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		r = registers.NewFile()
		test.ExpectEquality(t, run(&r, b, opcode), 4)
		test.ExpectEquality(t, r.PC, uint16(0x1001))
	}

	r = registers.NewFile()
	r.SP = 0x0100
	test.ExpectEquality(t, run(&r, b, 0xcb, 0x00, 0x20), 10)
	test.ExpectEquality(t, r.PC, uint16(0x2000))

	for _, opcode := range []uint8{0xdd, 0xed, 0xfd} {
		test.ExpectEquality(t, run(&r, b, opcode, 0x00, 0x30), 17)
		test.ExpectEquality(t, r.PC, uint16(0x3000))
		test.ExpectEquality(t, run(&r, b, 0xd9), 10)
		test.ExpectEquality(t, r.PC, uint16(0x1003))
	}
	test.ExpectEquality(t, r.SP, uint16(0x0100))
}

func TestInputOutput(t *testing.T) {
	var r registers.File
	b := &mockBus{}

	r = registers.NewFile()
	b.input = 0x5a
	test.ExpectEquality(t, run(&r, b, 0xdb, 0x10), 10)
	test.ExpectEquality(t, r.A, uint8(0x5a))

	r.A = 0x33
	test.ExpectEquality(t, run(&r, b, 0xd3, 0x20), 10)
	test.ExpectEquality(t, len(b.output), 2)
	test.ExpectEquality(t, b.output[0], uint8(0x20))
	test.ExpectEquality(t, b.output[1], uint8(0x33))
}

type value uint8

func (v value) PortInput(_ uint8) uint8 {
	return uint8(v)
}

func TestPortSpace(t *testing.T) {
	// unattached ports read as 0xff
	mc, _, _ := newCPU(0xdb, 0x77)
	mc.Exec(0, instructions.None, nil)
	test.ExpectEquality(t, mc.Regs.A, uint8(0xff))

	// inputs sharing a port are ANDed together
	sp := ports.NewSpace()
	sp.AddInput(0x10, value(0x0f))
	sp.AddInput(0x10, value(0xf3))

	mem := memory.NewSimpleMemory(logger.Allow, "test", 0, 0)
	mem.Poke(0, 0xdb)
	mem.Poke(1, 0x10)
	mc = cpu.NewCPU(instance.NewTestingInstance(), mem, sp)
	mc.Exec(0, instructions.None, nil)
	test.ExpectEquality(t, mc.Regs.A, uint8(0x03))
}

func TestExclusion(t *testing.T) {
	// NOP ; IN 0x10 ; NOP
	mc, _, _ := newCPU(0x00, 0xdb, 0x10, 0x00)

	test.ExpectEquality(t, mc.Exec(0, instructions.IO, nil), int64(4))
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0001))

	// the I/O instruction is not executed
	test.ExpectEquality(t, mc.Exec(0, instructions.IO, nil), int64(0))
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0001))
	test.ExpectEquality(t, mc.Exec(1000, instructions.IO, nil), int64(0))
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0001))

	// unless it isn't excluded
	test.ExpectEquality(t, mc.Exec(0, instructions.IOW, nil), int64(10))
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0003))
}

func TestRunUntilCycles(t *testing.T) {
	// a program of NOPs
	mc, _, ins := newCPU()

	test.ExpectEquality(t, mc.Exec(10, instructions.None, nil), int64(12))
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0003))
	test.ExpectEquality(t, mc.Cycles(), int64(12))
	test.ExpectEquality(t, ins.Scheduler.Now(), int64(12))
	test.ExpectEquality(t, mc.LastResult.Address, uint16(0x0002))
	test.ExpectEquality(t, mc.LastResult.Opcode.Mnemonic, "NOP")
}

func TestBreakpoints(t *testing.T) {
	mc, _, _ := newCPU()

	breakpoints := map[uint16]bool{0x0005: true}
	test.ExpectEquality(t, mc.Exec(1000, instructions.None, breakpoints), int64(20))
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0005))

	// continuing from a breakpoint executes at least one instruction
	mc.Exec(0, instructions.None, breakpoints)
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0006))
}

type owner struct {
	fired int
	f     func()
}

func (o *owner) PerformScheduledEvent(param int, delay int64) {
	o.fired++
	if o.f != nil {
		o.f()
	}
}

func TestDrainBeforeExecute(t *testing.T) {
	// MVI A,0x01 ; NOP
	mc, mem, ins := newCPU(0x3e, 0x01, 0x00)

	// an event due now changes the operand of the next instruction before it
	// is executed
	o := &owner{f: func() {
		mem.Poke(0x0001, 0x02)
	}}
	ins.Scheduler.AddRelative(o, 0, 0)
	mc.Exec(0, instructions.None, nil)
	test.ExpectEquality(t, o.fired, 1)
	test.ExpectEquality(t, mc.Regs.A, uint8(0x02))

	ins.Scheduler.AddRelative(o, 7, 0)
	mc.Exec(0, instructions.None, nil)
	test.ExpectEquality(t, o.fired, 1)
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0003))
}

func TestResetPriority(t *testing.T) {
	mc, _, ins := newCPU()
	mc.Regs.PC = 0x1234
	mc.Regs.IE = true

	// an event due now requests an interrupt
	o := &owner{f: func() {
		mc.RequestInterrupt(0xff)
	}}
	ins.Scheduler.AddRelative(o, 0, 0)

	mc.RequestReset()
	test.ExpectEquality(t, mc.Exec(100, instructions.None, nil), int64(0))
	test.ExpectEquality(t, o.fired, 1)
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0000))
	test.ExpectFailure(t, mc.Regs.IE)
	test.ExpectFailure(t, mc.InterruptPending())
}

func TestInterrupts(t *testing.T) {
	// EI ; HLT ; NOP
	mc, mem, _ := newCPU(0xfb, 0x76, 0x00)

	// RET at RST 7
	mem.Poke(0x0038, 0xc9)

	// interrupts are disabled and the request waits
	mc.RequestInterrupt(0xff)
	test.ExpectEquality(t, mc.Exec(0, instructions.None, nil), int64(4))
	test.ExpectSuccess(t, mc.Regs.IE)
	test.ExpectSuccess(t, mc.InterruptPending())

	// the interrupt is not accepted for the instruction after EI
	test.ExpectEquality(t, mc.Exec(0, instructions.None, nil), int64(5))
	test.ExpectSuccess(t, mc.Regs.Halted)
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0001))

	// the halt is released and execution continues after the HLT
	test.ExpectEquality(t, mc.Exec(100, instructions.None, nil), int64(11))
	test.ExpectFailure(t, mc.Regs.Halted)
	test.ExpectFailure(t, mc.Regs.IE)
	test.ExpectFailure(t, mc.InterruptPending())
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0038))
	test.ExpectEquality(t, mc.LastResult.Opcode, (*cpu.Opcode)(nil))
	test.ExpectEquality(t, mc.LastResult.Vector, 0xff)

	mc.Exec(0, instructions.None, nil)
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0002))
}

func TestHalted(t *testing.T) {
	// HLT
	mc, _, _ := newCPU(0x76)

	test.ExpectEquality(t, mc.Exec(0, instructions.None, nil), int64(5))
	test.ExpectSuccess(t, mc.Regs.Halted)

	// the clock advances one cycle at a time while halted
	test.ExpectEquality(t, mc.Exec(10, instructions.None, nil), int64(10))
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0000))

	// execution stops before the HLT instruction
	mc.Reset()
	test.ExpectEquality(t, mc.Exec(0, instructions.HLT, nil), int64(0))
	test.ExpectFailure(t, mc.Regs.Halted)
}

func TestCallVector(t *testing.T) {
	mc, _, _ := newCPU()
	mc.Regs.IE = true
	mc.Regs.PC = 0x0100

	mc.RequestInterrupt(0x1234cd)
	test.ExpectEquality(t, mc.Exec(0, instructions.None, nil), int64(17))
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x1234))
	test.ExpectEquality(t, mc.Regs.SP, uint16(0x7ffe))
}

func TestUnsupportedVector(t *testing.T) {
	mc, _, _ := newCPU()
	mc.Regs.IE = true
	mc.Regs.PC = 0x0100

	logger.Clear()
	mc.RequestInterrupt(0x00)
	test.ExpectEquality(t, mc.Exec(0, instructions.None, nil), int64(4))
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0100))
	test.ExpectEquality(t, mc.Regs.SP, uint16(0x8000))

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectSuccess(t, strings.Contains(s.String(), "unsupported interrupt vector"))

	// a silent instance logs nothing
	ins, err := instance.NewInstance(instance.Silent, instance.NewTestingInstance().Prefs)
	test.ExpectSuccess(t, err)
	mc = cpu.NewCPU(ins, memory.NewSimpleMemory(ins, "test", 0, 0), ports.NewSpace())
	mc.Regs.IE = true

	logger.Clear()
	mc.RequestInterrupt(0x00)
	mc.Exec(0, instructions.None, nil)
	s.Reset()
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "")
}

func TestImmediateInterrupt(t *testing.T) {
	mc, _, _ := newCPU()
	mc.Regs.PC = 0x0100

	test.ExpectFailure(t, mc.Interrupt(2))
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0100))

	mc.Regs.IE = true
	test.ExpectSuccess(t, mc.Interrupt(2))
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0010))
	test.ExpectEquality(t, mc.Cycles(), int64(11))
	test.ExpectFailure(t, mc.Regs.IE)

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	mc.Interrupt(8)
}

func TestSuspendAndIdle(t *testing.T) {
	mc, _, ins := newCPU()

	o := &owner{}
	ins.Scheduler.AddRelative(o, 50, 0)

	mc.Suspend()
	test.ExpectSuccess(t, mc.IsSuspended())
	test.ExpectEquality(t, mc.Exec(100, instructions.None, nil), int64(0))
	mc.Idle(100)
	test.ExpectEquality(t, mc.Cycles(), int64(0))

	mc.Resume()
	mc.Idle(100)
	test.ExpectEquality(t, mc.Cycles(), int64(100))
	test.ExpectEquality(t, o.fired, 1)
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0000))
}
