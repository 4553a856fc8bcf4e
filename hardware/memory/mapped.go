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

package memory

import "github.com/jetsetilly/gopher8080/logger"

// MappedMemory is a SimpleMemory that reports CPU accesses to listeners. It
// can be used to map a device into the address space or to watch for writes
// to an address.
//
// Peek() and Poke() do not call the listeners.
type MappedMemory struct {
	*SimpleMemory

	// called on every read by the CPU with the value stored in memory. the
	// value returned is the value seen by the CPU. can be nil
	OnRead func(address uint16, data uint8) uint8

	// called after every write by the CPU that is not to the ROM region,
	// with the value before the write and the value written. can be nil
	OnWrite func(address uint16, old uint8, data uint8)
}

// NewMappedMemory is the preferred method of initialisation for the
// MappedMemory type. Listeners are added by setting the OnRead and OnWrite
// fields.
func NewMappedMemory(perm logger.Permission, label string, romStart int, ramStart int) *MappedMemory {
	return &MappedMemory{
		SimpleMemory: NewSimpleMemory(perm, label, romStart, ramStart),
	}
}

// Read implements the Memory interface.
func (mem *MappedMemory) Read(address uint16) uint8 {
	data := mem.SimpleMemory.Read(address)
	if mem.OnRead != nil {
		data = mem.OnRead(address, data)
	}
	return data
}

// Write implements the Memory interface.
func (mem *MappedMemory) Write(address uint16, data uint8) {
	if !mem.Writable(address) {
		mem.SimpleMemory.Write(address, data)
		return
	}
	old := mem.data[address]
	mem.data[address] = data
	if mem.OnWrite != nil {
		mem.OnWrite(address, old, data)
	}
}
