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
)

// Bus is the view of the machine available to an instruction. Memory and the
// port space are reached only through the Bus.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
	Input(port uint8) uint8
	Output(port uint8, data uint8)
}

// Behaviour of an instruction. The program counter points to the byte after
// the opcode when the function is called. The return value is the number of
// cycles consumed.
type Behaviour func(r *registers.File, bus Bus) int

// Opcode pairs the definition of an instruction with its behaviour.
type Opcode struct {
	instructions.Definition
	Behaviour Behaviour
}

// Table is a dispatch table indexed by opcode byte. An architecture with
// prefix bytes would dispatch the prefix to a behaviour that fetches the next
// byte and indexes a secondary Table. The 8080A has no prefix bytes and uses
// only the primary table.
type Table [256]Opcode

// Opcodes is the primary dispatch table of the 8080A.
var Opcodes Table

func init() {
	for i, defn := range instructions.Definitions {
		Opcodes[i] = Opcode{Definition: defn}
	}

	set := func(opcode int, b Behaviour) {
		Opcodes[opcode].Behaviour = b
	}

	// undocumented NOPs share the NOP behaviour
	for _, o := range []int{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		set(o, func(r *registers.File, bus Bus) int {
			return 4
		})
	}

	// register pair instructions. rp 3 is SP except for PUSH and POP
	for rp := range 4 {
		set(0x01|rp<<4, func(r *registers.File, bus Bus) int {
			setPair(r, rp, fetch16(r, bus))
			return 10
		})
		set(0x03|rp<<4, func(r *registers.File, bus Bus) int {
			setPair(r, rp, getPair(r, rp)+1)
			return 5
		})
		set(0x0b|rp<<4, func(r *registers.File, bus Bus) int {
			setPair(r, rp, getPair(r, rp)-1)
			return 5
		})
		set(0x09|rp<<4, func(r *registers.File, bus Bus) int {
			v := uint32(r.HL()) + uint32(getPair(r, rp))
			r.F.Set(registers.Carry, v > 0xffff)
			r.SetHL(uint16(v))
			return 10
		})
		set(0xc1|rp<<4, func(r *registers.File, bus Bus) int {
			if rp == 3 {
				r.SetPSW(pop(r, bus))
			} else {
				setPair(r, rp, pop(r, bus))
			}
			return 10
		})
		set(0xc5|rp<<4, func(r *registers.File, bus Bus) int {
			if rp == 3 {
				push(r, bus, r.PSW())
			} else {
				push(r, bus, getPair(r, rp))
			}
			return 11
		})
	}

	set(0x02, func(r *registers.File, bus Bus) int {
		bus.Write(r.BC(), r.A)
		return 7
	})
	set(0x12, func(r *registers.File, bus Bus) int {
		bus.Write(r.DE(), r.A)
		return 7
	})
	set(0x0a, func(r *registers.File, bus Bus) int {
		r.A = bus.Read(r.BC())
		return 7
	})
	set(0x1a, func(r *registers.File, bus Bus) int {
		r.A = bus.Read(r.DE())
		return 7
	})
	set(0x22, func(r *registers.File, bus Bus) int {
		a := fetch16(r, bus)
		bus.Write(a, r.L)
		bus.Write(a+1, r.H)
		return 16
	})
	set(0x2a, func(r *registers.File, bus Bus) int {
		a := fetch16(r, bus)
		r.L = bus.Read(a)
		r.H = bus.Read(a + 1)
		return 16
	})
	set(0x32, func(r *registers.File, bus Bus) int {
		bus.Write(fetch16(r, bus), r.A)
		return 13
	})
	set(0x3a, func(r *registers.File, bus Bus) int {
		r.A = bus.Read(fetch16(r, bus))
		return 13
	})

	// single register instructions. register 6 is the memory location M
	for reg := range 8 {
		cycles := 5
		if reg == registers.RegM {
			cycles = 10
		}

		set(0x04|reg<<3, func(r *registers.File, bus Bus) int {
			v := getReg(r, bus, reg) + 1
			r.F.Set(registers.AuxCarry, v&0x0f == 0)
			r.F.SZP(v)
			setReg(r, bus, reg, v)
			return cycles
		})
		set(0x05|reg<<3, func(r *registers.File, bus Bus) int {
			v := getReg(r, bus, reg) - 1
			r.F.Set(registers.AuxCarry, v&0x0f != 0x0f)
			r.F.SZP(v)
			setReg(r, bus, reg, v)
			return cycles
		})
		set(0x06|reg<<3, func(r *registers.File, bus Bus) int {
			setReg(r, bus, reg, fetch8(r, bus))
			if reg == registers.RegM {
				return 10
			}
			return 7
		})
	}

	// rotates
	set(0x07, func(r *registers.File, bus Bus) int {
		c := r.A >> 7
		r.F.Set(registers.Carry, c == 1)
		r.A = r.A<<1 | c
		return 4
	})
	set(0x0f, func(r *registers.File, bus Bus) int {
		c := r.A & 0x01
		r.F.Set(registers.Carry, c == 1)
		r.A = r.A>>1 | c<<7
		return 4
	})
	set(0x17, func(r *registers.File, bus Bus) int {
		c := carry(r)
		r.F.Set(registers.Carry, r.A&0x80 == 0x80)
		r.A = r.A<<1 | c
		return 4
	})
	set(0x1f, func(r *registers.File, bus Bus) int {
		c := carry(r)
		r.F.Set(registers.Carry, r.A&0x01 == 0x01)
		r.A = r.A>>1 | c<<7
		return 4
	})

	set(0x27, func(r *registers.File, bus Bus) int {
		daa(r)
		return 4
	})
	set(0x2f, func(r *registers.File, bus Bus) int {
		r.A = ^r.A
		return 4
	})
	set(0x37, func(r *registers.File, bus Bus) int {
		r.F.Set(registers.Carry, true)
		return 4
	})
	set(0x3f, func(r *registers.File, bus Bus) int {
		r.F.Set(registers.Carry, !r.F.Is(registers.Carry))
		return 4
	})

	// MOV. 0x76 would be MOV M,M and is HLT instead
	for dst := range 8 {
		for src := range 8 {
			o := 0x40 | dst<<3 | src
			if o == 0x76 {
				continue
			}
			cycles := 5
			if dst == registers.RegM || src == registers.RegM {
				cycles = 7
			}
			set(o, func(r *registers.File, bus Bus) int {
				setReg(r, bus, dst, getReg(r, bus, src))
				return cycles
			})
		}
	}

	// the PC is left on the HLT instruction. it is moved past it when an
	// interrupt releases the halt
	set(0x76, func(r *registers.File, bus Bus) int {
		r.PC--
		r.Halted = true
		return 5
	})

	// arithmetic and logic with register, memory and immediate operands
	for op := range 8 {
		for src := range 8 {
			cycles := 4
			if src == registers.RegM {
				cycles = 7
			}
			set(0x80|op<<3|src, func(r *registers.File, bus Bus) int {
				alu(r, op, getReg(r, bus, src))
				return cycles
			})
		}
		set(0xc6|op<<3, func(r *registers.File, bus Bus) int {
			alu(r, op, fetch8(r, bus))
			return 7
		})
	}

	// flow control
	for cc := range 8 {
		set(0xc0|cc<<3, func(r *registers.File, bus Bus) int {
			if condition(r, cc) {
				r.PC = pop(r, bus)
				return 11
			}
			return 5
		})
		set(0xc2|cc<<3, func(r *registers.File, bus Bus) int {
			a := fetch16(r, bus)
			if condition(r, cc) {
				r.PC = a
			}
			return 10
		})
		set(0xc4|cc<<3, func(r *registers.File, bus Bus) int {
			a := fetch16(r, bus)
			if condition(r, cc) {
				push(r, bus, r.PC)
				r.PC = a
				return 17
			}
			return 11
		})
		set(0xc7|cc<<3, func(r *registers.File, bus Bus) int {
			push(r, bus, r.PC)
			r.PC = uint16(cc) << 3
			return 11
		})
	}

	jmp := func(r *registers.File, bus Bus) int {
		r.PC = fetch16(r, bus)
		return 10
	}
	set(0xc3, jmp)
	set(0xcb, jmp)

	ret := func(r *registers.File, bus Bus) int {
		r.PC = pop(r, bus)
		return 10
	}
	set(0xc9, ret)
	set(0xd9, ret)

	call := func(r *registers.File, bus Bus) int {
		a := fetch16(r, bus)
		push(r, bus, r.PC)
		r.PC = a
		return 17
	}
	set(0xcd, call)
	set(0xdd, call)
	set(0xed, call)
	set(0xfd, call)

	set(0xd3, func(r *registers.File, bus Bus) int {
		bus.Output(fetch8(r, bus), r.A)
		return 10
	})
	set(0xdb, func(r *registers.File, bus Bus) int {
		r.A = bus.Input(fetch8(r, bus))
		return 10
	})
	set(0xe3, func(r *registers.File, bus Bus) int {
		l := bus.Read(r.SP)
		h := bus.Read(r.SP + 1)
		bus.Write(r.SP, r.L)
		bus.Write(r.SP+1, r.H)
		r.L = l
		r.H = h
		return 18
	})
	set(0xe9, func(r *registers.File, bus Bus) int {
		r.PC = r.HL()
		return 5
	})
	set(0xeb, func(r *registers.File, bus Bus) int {
		r.D, r.H = r.H, r.D
		r.E, r.L = r.L, r.E
		return 4
	})
	set(0xf9, func(r *registers.File, bus Bus) int {
		r.SP = r.HL()
		return 5
	})
	set(0xf3, func(r *registers.File, bus Bus) int {
		r.IE = false
		return 4
	})
	set(0xfb, func(r *registers.File, bus Bus) int {
		r.IE = true
		r.TID = true
		return 4
	})

	for i := range Opcodes {
		if Opcodes[i].Behaviour == nil {
			panic(fmt.Sprintf("cpu: no behaviour for opcode %02x", i))
		}
	}
}

func fetch8(r *registers.File, bus Bus) uint8 {
	v := bus.Read(r.PC)
	r.PC++
	return v
}

func fetch16(r *registers.File, bus Bus) uint16 {
	lo := fetch8(r, bus)
	hi := fetch8(r, bus)
	return uint16(hi)<<8 | uint16(lo)
}

func push(r *registers.File, bus Bus, v uint16) {
	r.SP--
	bus.Write(r.SP, uint8(v>>8))
	r.SP--
	bus.Write(r.SP, uint8(v))
}

func pop(r *registers.File, bus Bus) uint16 {
	lo := bus.Read(r.SP)
	r.SP++
	hi := bus.Read(r.SP)
	r.SP++
	return uint16(hi)<<8 | uint16(lo)
}

func getReg(r *registers.File, bus Bus, reg int) uint8 {
	switch reg {
	case registers.RegB:
		return r.B
	case registers.RegC:
		return r.C
	case registers.RegD:
		return r.D
	case registers.RegE:
		return r.E
	case registers.RegH:
		return r.H
	case registers.RegL:
		return r.L
	case registers.RegM:
		return bus.Read(r.HL())
	}
	return r.A
}

func setReg(r *registers.File, bus Bus, reg int, v uint8) {
	switch reg {
	case registers.RegB:
		r.B = v
	case registers.RegC:
		r.C = v
	case registers.RegD:
		r.D = v
	case registers.RegE:
		r.E = v
	case registers.RegH:
		r.H = v
	case registers.RegL:
		r.L = v
	case registers.RegM:
		bus.Write(r.HL(), v)
	default:
		r.A = v
	}
}

func getPair(r *registers.File, rp int) uint16 {
	switch rp {
	case 0:
		return r.BC()
	case 1:
		return r.DE()
	case 2:
		return r.HL()
	}
	return r.SP
}

func setPair(r *registers.File, rp int, v uint16) {
	switch rp {
	case 0:
		r.SetBC(v)
	case 1:
		r.SetDE(v)
	case 2:
		r.SetHL(v)
	default:
		r.SP = v
	}
}

func carry(r *registers.File) uint8 {
	if r.F.Is(registers.Carry) {
		return 1
	}
	return 0
}

// condition codes in encoding order: NZ, Z, NC, C, PO, PE, P, M
func condition(r *registers.File, cc int) bool {
	var f registers.Flags
	switch cc >> 1 {
	case 0:
		f = registers.Zero
	case 1:
		f = registers.Carry
	case 2:
		f = registers.Parity
	default:
		f = registers.Sign
	}
	return r.F.Is(f) == (cc&0x01 == 0x01)
}

// alu performs the arithmetic or logic operation in encoding order: ADD,
// ADC, SUB, SBB, ANA, XRA, ORA, CMP
func alu(r *registers.File, op int, v uint8) {
	switch op {
	case 0:
		r.A = add(r, v, 0)
	case 1:
		r.A = add(r, v, int(carry(r)))
	case 2:
		r.A = sub(r, v, 0)
	case 3:
		r.A = sub(r, v, int(carry(r)))
	case 4:
		r.F.Set(registers.AuxCarry, (r.A|v)&0x08 == 0x08)
		r.F.Set(registers.Carry, false)
		r.A &= v
		r.F.SZP(r.A)
	case 5:
		r.F.Set(registers.AuxCarry|registers.Carry, false)
		r.A ^= v
		r.F.SZP(r.A)
	case 6:
		r.F.Set(registers.AuxCarry|registers.Carry, false)
		r.A |= v
		r.F.SZP(r.A)
	case 7:
		_ = sub(r, v, 0)
	}
}

func add(r *registers.File, v uint8, c int) uint8 {
	sum := int(r.A) + int(v) + c
	r.F.Set(registers.AuxCarry, int(r.A&0x0f)+int(v&0x0f)+c > 0x0f)
	r.F.Set(registers.Carry, sum&0x100 == 0x100)
	r.F.SZP(uint8(sum))
	return uint8(sum)
}

// the auxiliary carry of a subtraction is set when there is no borrow from
// bit 4
func sub(r *registers.File, v uint8, c int) uint8 {
	diff := int(r.A) - int(v) - c
	r.F.Set(registers.AuxCarry, int(r.A&0x0f)-int(v&0x0f)-c >= 0)
	r.F.Set(registers.Carry, diff&0x100 == 0x100)
	r.F.SZP(uint8(diff))
	return uint8(diff)
}

// daa never clears the carry flag
func daa(r *registers.File) {
	a := int(r.A)
	if a&0x0f > 9 || r.F.Is(registers.AuxCarry) {
		r.F.Set(registers.AuxCarry, a&0x0f > 9)
		a += 0x06
	}
	if a > 0x9f || r.F.Is(registers.Carry) {
		a += 0x60
		r.F.Set(registers.Carry, true)
	}
	r.A = uint8(a)
	r.F.SZP(r.A)
}
