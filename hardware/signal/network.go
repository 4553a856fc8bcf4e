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

package signal

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8080/logger"
)

// Level is the signal level reported by a pin or a node.
type Level int

// List of valid Level values. Any non-zero level other than HighImpedance is
// treated as logic high by Normalize().
const (
	HighImpedance Level = -1
	Low           Level = 0
	High          Level = 1
)

func (l Level) String() string {
	switch l {
	case HighImpedance:
		return "Z"
	case Low:
		return "0"
	}
	return "1"
}

// Normalize returns Low if the level is Low and High otherwise. A high
// impedance level is therefore read as High, as it would be by a TTL input.
func Normalize(l Level) Level {
	if l == Low {
		return Low
	}
	return High
}

// NodeID is a handle for a node in the network.
type NodeID int

// PinID is a handle for a pin in the network.
type PinID int

// NoNode is the value returned by PinNode() when the pin is not attached.
const NoNode NodeID = -1

type node struct {
	label string
	pins  []PinID

	// a fixed node reports its level regardless of the pins attached to it
	fixed bool
	level Level

	// node is in the propagation work list
	queued bool
}

type pin struct {
	label string
	node  NodeID

	// query returns the level driven by the pin. nil means the pin never
	// drives the node
	query func() Level

	// notify is called when the node the pin is attached to has changed. nil
	// means the pin is not interested in changes
	notify func()
}

// Network is the arena holding every node and pin of a machine. Nodes and
// pins are referred to by their handles. They are never freed.
type Network struct {
	perm logger.Permission

	nodes []node
	pins  []pin

	// nodes waiting to have their pins notified
	work []NodeID

	// a propagation run is in progress. calls to NotifyChange() during a run
	// add to the work list and return immediately
	propagating bool

	// maximum number of node notifications in a single propagation run
	limit int
}

// DefaultPropagationLimit is used by NewNetwork().
const DefaultPropagationLimit = 65536

// NewNetwork is the preferred method of initialisation for the Network type.
// Warnings about the propagation limit are logged if the permission allows it.
func NewNetwork(perm logger.Permission) *Network {
	return &Network{
		perm:  perm,
		limit: DefaultPropagationLimit,
	}
}

// SetPropagationLimit sets the maximum number of node notifications in a
// single propagation run. Values less than one are ignored.
func (net *Network) SetPropagationLimit(limit int) {
	if limit < 1 {
		return
	}
	net.limit = limit
}

func (net *Network) String() string {
	s := strings.Builder{}
	for i := range net.nodes {
		n := &net.nodes[i]
		s.WriteString(fmt.Sprintf("%s=%s", n.label, net.Query(NodeID(i))))
		if len(n.pins) > 0 {
			s.WriteString(" [")
			for j, p := range n.pins {
				if j > 0 {
					s.WriteString(" ")
				}
				s.WriteString(net.pins[p].label)
			}
			s.WriteString("]")
		}
		s.WriteString("\n")
	}
	return s.String()
}

func (net *Network) checkNode(id NodeID) *node {
	if id < 0 || int(id) >= len(net.nodes) {
		panic(fmt.Sprintf("signal: no such node (%d)", id))
	}
	return &net.nodes[id]
}

func (net *Network) checkPin(id PinID) *pin {
	if id < 0 || int(id) >= len(net.pins) {
		panic(fmt.Sprintf("signal: no such pin (%d)", id))
	}
	return &net.pins[id]
}

// NewNode adds a node to the network.
func (net *Network) NewNode(label string) NodeID {
	net.nodes = append(net.nodes, node{label: label})
	return NodeID(len(net.nodes) - 1)
}

// NewFixedNode adds a node that always reports the specified level. The level
// can be changed with SetLevel().
func (net *Network) NewFixedNode(label string, level Level) NodeID {
	net.nodes = append(net.nodes, node{label: label, fixed: true, level: level})
	return NodeID(len(net.nodes) - 1)
}

// SetLevel changes the level of a fixed node and notifies the pins attached to
// it.
func (net *Network) SetLevel(id NodeID, level Level) {
	n := net.checkNode(id)
	if !n.fixed {
		panic(fmt.Sprintf("signal: %s is not a fixed node", n.label))
	}
	n.level = level
	net.NotifyChange(id)
}

// NodeLabel returns the label given to the node when it was created.
func (net *Network) NodeLabel(id NodeID) string {
	return net.checkNode(id).label
}

// Pins returns the pins attached to the node in registration order.
func (net *Network) Pins(id NodeID) []PinID {
	n := net.checkNode(id)
	p := make([]PinID, len(n.pins))
	copy(p, n.pins)
	return p
}

// NewPin adds a pin to the network. The query function is called when the
// node the pin is attached to is queried and the notify function is called
// when the node changes. Either function can be nil.
func (net *Network) NewPin(label string, query func() Level, notify func()) PinID {
	net.pins = append(net.pins, pin{
		label:  label,
		node:   NoNode,
		query:  query,
		notify: notify,
	})
	return PinID(len(net.pins) - 1)
}

// NewFixedPin adds a pin that always drives the node at the specified level.
func (net *Network) NewFixedPin(label string, level Level) PinID {
	return net.NewPin(label, func() Level { return level }, nil)
}

// PinLabel returns the label given to the pin when it was created.
func (net *Network) PinLabel(id PinID) string {
	return net.checkPin(id).label
}

// PinNode returns the node the pin is attached to or NoNode.
func (net *Network) PinNode(id PinID) NodeID {
	return net.checkPin(id).node
}

// Attach pin to node. If the pin is attached to another node it is detached
// from that node first. Attaching a pin to the node it is already attached to
// is a contract violation.
func (net *Network) Attach(id NodeID, p PinID) {
	n := net.checkNode(id)
	pn := net.checkPin(p)

	for _, q := range n.pins {
		if q == p {
			panic(fmt.Sprintf("signal: %s already attached to %s", pn.label, n.label))
		}
	}

	if pn.node != NoNode {
		net.Detach(pn.node, p)
	}

	n.pins = append(n.pins, p)
	pn.node = id
}

// Detach pin from node. Detaching a pin that is not attached to the node is a
// contract violation.
func (net *Network) Detach(id NodeID, p PinID) {
	n := net.checkNode(id)
	pn := net.checkPin(p)

	for i, q := range n.pins {
		if q == p {
			n.pins = append(n.pins[:i], n.pins[i+1:]...)
			if pn.node == id {
				pn.node = NoNode
			}
			return
		}
	}

	panic(fmt.Sprintf("signal: %s not attached to %s", pn.label, n.label))
}

// Query returns the level of the node. For a fixed node this is the fixed
// level. Otherwise it is the level of the first pin, in the order in which
// pins were attached, that is not reporting high impedance. If no pin is
// driving the node then the node is high impedance.
func (net *Network) Query(id NodeID) Level {
	n := net.checkNode(id)
	if n.fixed {
		return n.level
	}
	for _, p := range n.pins {
		if q := net.pins[p].query; q != nil {
			if l := q(); l != HighImpedance {
				return l
			}
		}
	}
	return HighImpedance
}

// QueryPin returns the level of the node the pin is attached to. An
// unattached pin reads high impedance.
func (net *Network) QueryPin(p PinID) Level {
	pn := net.checkPin(p)
	if pn.node == NoNode {
		return HighImpedance
	}
	return net.Query(pn.node)
}

// NotifyPin notifies the node the pin is attached to that it has changed. Has
// no effect if the pin is not attached.
func (net *Network) NotifyPin(p PinID) {
	pn := net.checkPin(p)
	if pn.node == NoNode {
		return
	}
	net.NotifyChange(pn.node)
}

// NotifyChange calls the notify function of every pin attached to the node.
//
// Propagation is iterative. Pins that notify other nodes during the run add
// those nodes to a work list rather than recursing. A node already in the work
// list is not added again. Wiring that never settles stops after the
// propagation limit has been reached and the remainder of the work list is
// discarded.
func (net *Network) NotifyChange(id NodeID) {
	n := net.checkNode(id)
	if !n.queued {
		n.queued = true
		net.work = append(net.work, id)
	}

	if net.propagating {
		return
	}

	net.propagating = true
	defer func() {
		net.propagating = false
	}()

	count := 0
	for len(net.work) > 0 {
		if count >= net.limit {
			logger.Logf(net.perm, "signal", "propagation limit reached (%d)", net.limit)
			for _, w := range net.work {
				net.nodes[w].queued = false
			}
			net.work = net.work[:0]
			return
		}
		count++

		w := net.work[0]
		net.work = net.work[1:]
		net.nodes[w].queued = false

		// the pin list may change during notification so iterate over a copy
		pins := net.nodes[w].pins
		if len(pins) == 0 {
			continue
		}
		pins = append([]PinID(nil), pins...)
		for _, p := range pins {
			if f := net.pins[p].notify; f != nil {
				f()
			}
		}
	}
}
