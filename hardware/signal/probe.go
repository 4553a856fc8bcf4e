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

// Probe is a passive observer of a node. It never drives the node it is
// attached to.
type Probe struct {
	net *Network
	pin PinID

	level   Level
	changes int

	// OnChange is called with the new normalised level whenever it differs
	// from the previous level. Can be nil.
	OnChange func(Level)
}

// NewProbe is the preferred method of initialisation for the Probe type. The
// probe is attached to the node immediately.
func NewProbe(net *Network, label string, node NodeID) *Probe {
	pr := &Probe{net: net}
	pr.pin = net.NewPin(label, nil, pr.notify)
	net.Attach(node, pr.pin)
	pr.level = Normalize(net.Query(node))
	return pr
}

// Pin returns the pin used by the probe.
func (pr *Probe) Pin() PinID {
	return pr.pin
}

// Level returns the normalised level of the node at the time of the most
// recent notification.
func (pr *Probe) Level() Level {
	return pr.level
}

// Changes returns the number of level changes seen by the probe.
func (pr *Probe) Changes() int {
	return pr.changes
}

func (pr *Probe) notify() {
	l := Normalize(pr.net.QueryPin(pr.pin))
	if l == pr.level {
		return
	}
	pr.level = l
	pr.changes++
	if pr.OnChange != nil {
		pr.OnChange(l)
	}
}
