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

// Package memory implements the 64KiB address space of the machine. The
// SimpleMemory type is a flat array of bytes with a configurable region that
// cannot be written to by the CPU.
//
// Memory is accessed by the CPU through the Memory interface. The Area
// interface gives debuggers and loaders access to the whole of memory
// regardless of the ROM region.
//
// The package also provides functions to load and save memory as Intel HEX
// or raw binary data, and helpers to copy, fill and compare regions of
// memory.
package memory

import (
	"fmt"

	"github.com/jetsetilly/gopher8080/logger"
)

// Memory defines the operations for the memory system when accessed from the
// CPU. Addresses are 16 bit and every address is valid.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Area defines the meta-operations for memory. Think of these functions as
// debugging functions, that is operations outside of the normal operation of
// the machine. Peek and Poke ignore the ROM region.
type Area interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}

// BlockSize is the unit of the ROM and RAM start values.
const BlockSize = 0x0400

// MaxBlock is the largest valid value for ROM and RAM start values.
const MaxBlock = 0x10000 / BlockSize

// SimpleMemory is 64KiB of memory divided into three regions. Memory below
// the ROM start address and memory at or above the RAM start address can be
// written to. Memory in between is read only to the CPU.
//
// The ROM and RAM start values are expressed in blocks of 1KiB. With both
// values at zero the entire address space is writable.
type SimpleMemory struct {
	perm  logger.Permission
	label string
	data  []uint8

	romStart int
	ramStart int
}

// NewSimpleMemory is the preferred method of initialisation for the
// SimpleMemory type. Writes to the ROM region are logged if the permission
// allows it.
func NewSimpleMemory(perm logger.Permission, label string, romStart int, ramStart int) *SimpleMemory {
	mem := &SimpleMemory{
		perm:  perm,
		label: label,
		data:  make([]uint8, 0x10000),
	}
	mem.SetROMStart(romStart)
	mem.SetRAMStart(ramStart)
	return mem
}

func (mem *SimpleMemory) String() string {
	return fmt.Sprintf("%s: rom=%04x ram=%04x", mem.label, mem.romStart*BlockSize, mem.ramStart*BlockSize)
}

// Label returns the label given to the memory when it was created.
func (mem *SimpleMemory) Label() string {
	return mem.label
}

// ROMStart returns the start of the ROM region in blocks.
func (mem *SimpleMemory) ROMStart() int {
	return mem.romStart
}

// SetROMStart sets the start of the ROM region in blocks. Values outside the
// range 0 to MaxBlock are a contract violation.
func (mem *SimpleMemory) SetROMStart(block int) {
	if block < 0 || block > MaxBlock {
		panic(fmt.Sprintf("memory: rom start out of range (%d)", block))
	}
	mem.romStart = block
}

// RAMStart returns the start of the upper RAM region in blocks.
func (mem *SimpleMemory) RAMStart() int {
	return mem.ramStart
}

// SetRAMStart sets the start of the upper RAM region in blocks. Values outside
// the range 0 to MaxBlock are a contract violation.
func (mem *SimpleMemory) SetRAMStart(block int) {
	if block < 0 || block > MaxBlock {
		panic(fmt.Sprintf("memory: ram start out of range (%d)", block))
	}
	mem.ramStart = block
}

// Writable returns true if the CPU can write to the address.
func (mem *SimpleMemory) Writable(address uint16) bool {
	a := int(address)
	return a < mem.romStart*BlockSize || a >= mem.ramStart*BlockSize
}

// Read implements the Memory interface.
func (mem *SimpleMemory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write implements the Memory interface. Writes to the ROM region are
// ignored.
func (mem *SimpleMemory) Write(address uint16, data uint8) {
	if !mem.Writable(address) {
		logger.Logf(mem.perm, "memory", "%s: write to rom ignored (%04x)", mem.label, address)
		return
	}
	mem.data[address] = data
}

// Peek implements the Area interface.
func (mem *SimpleMemory) Peek(address uint16) uint8 {
	return mem.data[address]
}

// Poke implements the Area interface.
func (mem *SimpleMemory) Poke(address uint16, data uint8) {
	mem.data[address] = data
}

// Clear sets every byte of memory to zero.
func (mem *SimpleMemory) Clear() {
	clear(mem.data)
}
