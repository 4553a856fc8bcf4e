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

package signal_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/signal"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/test"
)

// panics returns true if f panics
func panics(f func()) (p bool) {
	defer func() {
		p = recover() != nil
	}()
	f()
	return false
}

// a permission that allows logging only when enabled
type permission bool

func (p permission) AllowLogging() bool {
	return bool(p)
}

func TestNormalize(t *testing.T) {
	test.ExpectEquality(t, signal.Normalize(signal.Low), signal.Low)
	test.ExpectEquality(t, signal.Normalize(signal.High), signal.High)
	test.ExpectEquality(t, signal.Normalize(signal.HighImpedance), signal.High)
	test.ExpectEquality(t, signal.Normalize(5), signal.High)
}

func TestQuery(t *testing.T) {
	net := signal.NewNetwork(logger.Allow)
	n := net.NewNode("bus")

	// an empty node is high impedance
	test.ExpectEquality(t, net.Query(n), signal.HighImpedance)

	tristate := net.NewPin("tristate", func() signal.Level { return signal.HighImpedance }, nil)
	driver := net.NewFixedPin("driver", signal.High)

	net.Attach(n, tristate)
	net.Attach(n, driver)
	test.ExpectEquality(t, net.Query(n), signal.High)

	net.Detach(n, driver)
	test.ExpectEquality(t, net.Query(n), signal.HighImpedance)
	test.ExpectEquality(t, net.PinNode(driver), signal.NoNode)
	test.ExpectEquality(t, net.QueryPin(driver), signal.HighImpedance)
}

func TestRegistrationOrder(t *testing.T) {
	net := signal.NewNetwork(logger.Allow)
	n := net.NewNode("bus")

	lo := net.NewFixedPin("lo", signal.Low)
	hi := net.NewFixedPin("hi", signal.High)

	// the first driving pin wins
	net.Attach(n, lo)
	net.Attach(n, hi)
	test.ExpectEquality(t, net.Query(n), signal.Low)

	net.Detach(n, lo)
	net.Attach(n, lo)
	test.ExpectEquality(t, net.Query(n), signal.High)
	pins := net.Pins(n)
	test.DemandEquality(t, len(pins), 2)
	test.ExpectEquality(t, pins[0], hi)
	test.ExpectEquality(t, pins[1], lo)
}

func TestAttachContract(t *testing.T) {
	net := signal.NewNetwork(logger.Allow)
	a := net.NewNode("a")
	b := net.NewNode("b")
	p := net.NewFixedPin("p", signal.Low)

	net.Attach(a, p)
	test.ExpectSuccess(t, panics(func() { net.Attach(a, p) }))

	// attaching to another node moves the pin
	net.Attach(b, p)
	test.ExpectEquality(t, net.PinNode(p), b)
	test.ExpectEquality(t, len(net.Pins(a)), 0)
	test.ExpectEquality(t, net.Query(a), signal.HighImpedance)
	test.ExpectEquality(t, net.Query(b), signal.Low)

	test.ExpectSuccess(t, panics(func() { net.Detach(a, p) }))
	test.ExpectFailure(t, panics(func() { net.Detach(b, p) }))
	test.ExpectSuccess(t, panics(func() { net.Detach(b, p) }))
}

func TestNotify(t *testing.T) {
	net := signal.NewNetwork(logger.Allow)
	n := net.NewFixedNode("fixed", signal.Low)

	var seen []signal.Level
	var p signal.PinID
	p = net.NewPin("in", nil, func() {
		seen = append(seen, net.QueryPin(p))
	})
	net.Attach(n, p)

	net.SetLevel(n, signal.High)
	net.SetLevel(n, signal.Low)
	test.DemandEquality(t, len(seen), 2)
	test.ExpectEquality(t, seen[0], signal.High)
	test.ExpectEquality(t, seen[1], signal.Low)

	// SetLevel() is only for fixed nodes
	m := net.NewNode("plain")
	test.ExpectSuccess(t, panics(func() { net.SetLevel(m, signal.High) }))

	// notifying through an unattached pin does nothing
	q := net.NewPin("loose", nil, func() { t.Error("unexpected notification") })
	net.NotifyPin(q)
}

func TestGateTruthTables(t *testing.T) {
	type row struct {
		a, b signal.Level
		out  [6]signal.Level
	}

	// NAND, NOR, XNOR, AND, OR, XOR
	rows := []row{
		{signal.Low, signal.Low, [6]signal.Level{1, 1, 1, 0, 0, 0}},
		{signal.Low, signal.High, [6]signal.Level{1, 0, 0, 0, 1, 1}},
		{signal.High, signal.Low, [6]signal.Level{1, 0, 0, 0, 1, 1}},
		{signal.High, signal.High, [6]signal.Level{0, 0, 1, 1, 1, 0}},

		// high impedance reads as high
		{signal.HighImpedance, signal.High, [6]signal.Level{0, 0, 1, 1, 1, 0}},
		{signal.HighImpedance, signal.Low, [6]signal.Level{1, 0, 0, 0, 1, 1}},
	}

	fns := []signal.Function{signal.NAND, signal.NOR, signal.XNOR, signal.AND, signal.OR, signal.XOR}

	for fi, fn := range fns {
		net := signal.NewNetwork(logger.Allow)
		a := net.NewFixedNode("a", signal.Low)
		b := net.NewFixedNode("b", signal.Low)
		out := net.NewNode("out")

		g := signal.NewGate(net, fn.String(), fn, 2)
		net.Attach(a, g.Input(0))
		net.Attach(b, g.Input(1))
		net.Attach(out, g.Output())
		g.Update()

		for ri, r := range rows {
			net.SetLevel(a, r.a)
			net.SetLevel(b, r.b)
			test.ExpectEquality(t, net.Query(out), r.out[fi], fn, ri)
		}
	}
}

func TestSingleInputGates(t *testing.T) {
	net := signal.NewNetwork(logger.Allow)
	in := net.NewFixedNode("in", signal.Low)
	inv := net.NewNode("inv")
	buf := net.NewNode("buf")

	i := signal.NewGate(net, "inverter", signal.Inverter, 1)
	b := signal.NewGate(net, "buffer", signal.Buffer, 1)
	net.Attach(in, i.Input(0))
	net.Attach(in, b.Input(0))
	net.Attach(inv, i.Output())
	net.Attach(buf, b.Output())
	net.NotifyChange(in)

	test.ExpectEquality(t, net.Query(inv), signal.High)
	test.ExpectEquality(t, net.Query(buf), signal.Low)

	net.SetLevel(in, signal.High)
	test.ExpectEquality(t, net.Query(inv), signal.Low)
	test.ExpectEquality(t, net.Query(buf), signal.High)

	test.ExpectSuccess(t, panics(func() { signal.NewGate(net, "bad", signal.Inverter, 2) }))
	test.ExpectSuccess(t, panics(func() { signal.NewGate(net, "bad", signal.NAND, 0) }))
}

func TestChangeGatedPropagation(t *testing.T) {
	net := signal.NewNetwork(logger.Allow)
	a := net.NewFixedNode("a", signal.Low)
	b := net.NewFixedNode("b", signal.High)
	out := net.NewNode("out")

	g := signal.NewGate(net, "nand", signal.NAND, 2)
	net.Attach(a, g.Input(0))
	net.Attach(b, g.Input(1))
	net.Attach(out, g.Output())
	g.Update()

	pr := signal.NewProbe(net, "probe", out)
	test.ExpectEquality(t, pr.Level(), signal.High)

	// input changes that do not change the output do not reach the probe
	net.SetLevel(b, signal.Low)
	net.SetLevel(b, signal.High)
	test.ExpectEquality(t, pr.Changes(), 0)

	var levels []signal.Level
	pr.OnChange = func(l signal.Level) {
		levels = append(levels, l)
	}

	net.SetLevel(a, signal.High)
	net.SetLevel(a, signal.Low)
	test.ExpectEquality(t, pr.Changes(), 2)
	test.DemandEquality(t, len(levels), 2)
	test.ExpectEquality(t, levels[0], signal.Low)
	test.ExpectEquality(t, levels[1], signal.High)
}

func TestChain(t *testing.T) {
	net := signal.NewNetwork(logger.Allow)
	in := net.NewFixedNode("in", signal.Low)

	// a chain of inverters. an even number of inverters is a buffer
	const length = 64
	prev := in
	for i := 0; i < length; i++ {
		g := signal.NewGate(net, "inv", signal.Inverter, 1)
		n := net.NewNode("n")
		net.Attach(prev, g.Input(0))
		net.Attach(n, g.Output())
		g.Update()
		prev = n
	}

	test.ExpectEquality(t, net.Query(prev), signal.Low)
	net.SetLevel(in, signal.High)
	test.ExpectEquality(t, net.Query(prev), signal.High)
}

func TestRingOfInverters(t *testing.T) {
	logger.Clear()

	net := signal.NewNetwork(logger.Allow)
	net.SetPropagationLimit(100)

	// three inverters in a ring never settle
	nodes := []signal.NodeID{net.NewNode("n0"), net.NewNode("n1"), net.NewNode("n2")}
	for i := range nodes {
		g := signal.NewGate(net, "inv", signal.Inverter, 1)
		net.Attach(nodes[i], g.Input(0))
		net.Attach(nodes[(i+1)%len(nodes)], g.Output())
	}

	pr := signal.NewProbe(net, "probe", nodes[0])

	// the call must return
	for _, n := range nodes {
		net.NotifyChange(n)
	}
	test.DemandSuccess(t, pr.Changes() > 0)

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectSuccess(t, strings.Contains(s.String(), "propagation limit reached"))

	// the network is still usable after the limit has been reached
	m := net.NewFixedNode("m", signal.Low)
	p := signal.NewProbe(net, "m", m)
	net.SetLevel(m, signal.High)
	test.ExpectEquality(t, p.Level(), signal.High)
}

func TestRingOfInvertersQuiet(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	net := signal.NewNetwork(permission(false))
	net.SetPropagationLimit(10)

	a := net.NewNode("a")
	b := net.NewNode("b")
	c := net.NewNode("c")
	for _, w := range [][2]signal.NodeID{{a, b}, {b, c}, {c, a}} {
		g := signal.NewGate(net, "inv", signal.Inverter, 1)
		net.Attach(w[0], g.Input(0))
		net.Attach(w[1], g.Output())
	}
	net.NotifyChange(a)

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "")
}
