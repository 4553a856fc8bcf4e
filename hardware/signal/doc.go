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

// Package signal models the wiring between chips. A Network holds nodes and
// pins. A node is a shared bus with any number of pins attached to it. A pin
// is owned by a chip and is attached to at most one node at a time.
//
// A pin can drive a level on to the node it is attached to, be notified when
// the node changes, or both. The level of a node is the level of the first
// attached pin, in attachment order, that is not reporting HighImpedance.
// This is not real bus arbitration and chips must not rely on two pins
// driving a node at the same time.
//
// Nodes and pins are referred to by NodeID and PinID handles and are never
// freed. Change propagation is iterative so any wiring, including wiring with
// feedback loops, is safe to notify. A feedback loop that does not settle
// will stop after the network's propagation limit.
//
// The Gate type implements combinational logic on top of the network and the
// Probe type is a passive observer for use by the debugger and other
// consumers that should not affect the machine.
package signal
