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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/hardware/instance"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/logger"
)

// the value of interruptPending when there is no interrupt waiting
const noInterrupt = -1

// CPU implements the Intel 8080A. Register logic is implemented by the File
// type in the registers sub-package.
type CPU struct {
	instance *instance.Instance

	Regs registers.File

	bus *bus

	// last result. the Opcode field is nil if the CPU has not executed an
	// instruction since it was created
	LastResult Result

	// a suspended CPU does not execute instructions or drain the scheduler
	suspended bool

	// a reset is performed at the start of the next call to Exec()
	resetPending bool

	// the data placed on the bus by an interrupting device. noInterrupt if
	// no interrupt is waiting
	interruptPending int

	// the current call to Exec() ends after the instruction being executed
	yield bool
}

// bus connects the CPU to memory and to the port space.
type bus struct {
	mem   memory.Memory
	ports *ports.Space
}

func (b *bus) Read(address uint16) uint8 {
	return b.mem.Read(address)
}

func (b *bus) Write(address uint16, data uint8) {
	b.mem.Write(address, data)
}

func (b *bus) Input(port uint8) uint8 {
	return b.ports.Read(port)
}

func (b *bus) Output(port uint8, data uint8) {
	b.ports.Write(port, data)
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(ins *instance.Instance, mem memory.Memory, sp *ports.Space) *CPU {
	mc := &CPU{
		instance: ins,
		Regs:     registers.NewFile(),
		bus: &bus{
			mem:   mem,
			ports: sp,
		},
		interruptPending: noInterrupt,
	}
	return mc
}

func (mc *CPU) String() string {
	return mc.Regs.String()
}

// Cycles returns the current value of the logical clock.
func (mc *CPU) Cycles() int64 {
	return mc.instance.Scheduler.Now()
}

// Reset the CPU. The program counter is set to zero and interrupts are
// disabled. Any pending reset or interrupt request is forgotten. The other
// registers are not affected.
func (mc *CPU) Reset() {
	mc.Regs.PC = 0
	mc.Regs.IE = false
	mc.Regs.TID = false
	mc.Regs.Halted = false
	mc.resetPending = false
	mc.interruptPending = noInterrupt
}

// RequestReset causes the CPU to be reset at the start of the next call to
// Exec().
func (mc *CPU) RequestReset() {
	mc.resetPending = true
}

// RequestInterrupt raises the interrupt line. The vector is the data placed
// on the bus by the interrupting device: an RST instruction in the low byte
// or a CALL instruction with the address in the upper bytes. The interrupt is
// acknowledged by Exec() once interrupts are enabled.
func (mc *CPU) RequestInterrupt(vector int) {
	mc.interruptPending = vector
}

// InterruptPending returns true if an interrupt has been requested but not
// yet acknowledged.
func (mc *CPU) InterruptPending() bool {
	return mc.interruptPending != noInterrupt
}

// Interrupt performs the RST instruction for the vector immediately.
// Returns false if interrupts are disabled, in which case nothing happens.
//
// Vector must be in the range 0 to 7.
func (mc *CPU) Interrupt(vector int) bool {
	if vector < 0 || vector > 7 {
		panic(fmt.Sprintf("cpu: interrupt vector out of range (%d)", vector))
	}
	if !mc.Regs.IE {
		return false
	}
	mc.acknowledge(0xc7 | vector<<3)
	return true
}

// Suspend the CPU. Exec() and Idle() return immediately while the CPU is
// suspended.
func (mc *CPU) Suspend() {
	mc.suspended = true
}

// Resume a suspended CPU.
func (mc *CPU) Resume() {
	mc.suspended = false
}

// IsSuspended returns true if the CPU is suspended.
func (mc *CPU) IsSuspended() bool {
	return mc.suspended
}

// acknowledge an interrupt. the vector has the same meaning as for
// RequestInterrupt()
func (mc *CPU) acknowledge(vector int) {
	mc.Regs.IE = false
	if mc.Regs.Halted {
		mc.Regs.Halted = false
		mc.Regs.PC++
	}

	mc.LastResult = Result{
		Address: mc.Regs.PC,
		Vector:  vector,
	}

	switch {
	case vector&0xc7 == 0xc7:
		push(&mc.Regs, mc.bus, mc.Regs.PC)
		mc.Regs.PC = uint16(vector & 0x38)
		mc.LastResult.Cycles = 11
	case vector&0xff == 0xcd:
		push(&mc.Regs, mc.bus, mc.Regs.PC)
		mc.Regs.PC = uint16(vector >> 8)
		mc.LastResult.Cycles = 17
	default:
		logger.Logf(mc.instance, "cpu", "unsupported interrupt vector %#x", vector)
		mc.LastResult.Cycles = 4
	}

	if mc.instance.Prefs.LogInterrupts.Get().(bool) {
		logger.Logf(mc.instance, "cpu", "interrupt: %s", mc.LastResult)
	}

	mc.instance.Scheduler.Advance(int64(mc.LastResult.Cycles))
}

// Exec executes instructions until at least minCycles cycles have elapsed.
//
// Execution also stops without executing the next instruction if the
// category of that instruction intersects the exclude mask, or after any
// instruction that leaves the program counter at an address in the
// breakpoints set. The breakpoints argument can be nil.
//
// A pending reset is performed at the start of the call and nothing else
// happens. An acknowledged interrupt also ends the call, as does a call to
// Yield() during an instruction.
//
// Returns the number of cycles that elapsed.
func (mc *CPU) Exec(minCycles int64, exclude instructions.Category, breakpoints map[uint16]bool) int64 {
	sch := mc.instance.Scheduler
	start := sch.Now()
	end := start + minCycles
	mc.yield = false

	for !mc.suspended {
		// peripherals see the clock before the CPU does
		sch.Drain(sch.Now())

		if mc.resetPending {
			mc.Reset()
			break
		}

		if mc.interruptPending != noInterrupt && mc.Regs.IE && !mc.Regs.TID {
			v := mc.interruptPending
			mc.interruptPending = noInterrupt
			mc.acknowledge(v)
			break
		}

		if mc.Regs.Halted {
			sch.Advance(1)
		} else {
			mc.Regs.TID = false

			address := mc.Regs.PC
			op := &Opcodes[mc.bus.Read(address)]
			if op.Category&exclude != instructions.None {
				break
			}

			mc.Regs.PC++
			cycles := op.Behaviour(&mc.Regs, mc.bus)
			sch.Advance(int64(cycles))

			mc.LastResult = Result{
				Address: address,
				Opcode:  op,
				Cycles:  cycles,
			}
		}

		if sch.Now() >= end || breakpoints[mc.Regs.PC] || mc.yield {
			break
		}
	}

	return sch.Now() - start
}

// Yield ends the current call to Exec() once the instruction being executed
// has completed. Intended to be called by memory or by a peripheral while an
// instruction is accessing it. Has no effect outside of Exec().
func (mc *CPU) Yield() {
	mc.yield = true
}

// Idle advances the clock by minCycles without executing any instructions.
// The scheduler is drained at the new time. Does nothing if the CPU is
// suspended.
func (mc *CPU) Idle(minCycles int64) {
	if mc.suspended {
		return
	}
	sch := mc.instance.Scheduler
	sch.Advance(minCycles)
	sch.Drain(sch.Now())
}
