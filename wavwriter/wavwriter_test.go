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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/instance"
	"github.com/jetsetilly/gopher8080/hardware/signal"
	"github.com/jetsetilly/gopher8080/test"
	"github.com/jetsetilly/gopher8080/wavwriter"
)

func TestRecording(t *testing.T) {
	ins := instance.NewTestingInstance()
	test.DemandSuccess(t, ins.Prefs.Clock.Set(100))

	n := ins.Network.NewFixedNode("tone", signal.Low)
	prb := signal.NewProbe(ins.Network, "probe", n)

	fn := filepath.Join(t.TempDir(), "tone.wav")
	aw, err := wavwriter.New(ins, fn, prb, 50)
	test.DemandSuccess(t, err)

	// samples are taken every two clock units
	for i := range 10 {
		ins.Scheduler.Advance(1)
		if i == 4 {
			ins.Network.SetLevel(n, signal.High)
		}
		ins.Scheduler.Drain(ins.Scheduler.Now())
	}
	test.ExpectEquality(t, aw.Samples(), 5)

	test.DemandSuccess(t, aw.Close())
	test.ExpectEquality(t, ins.Scheduler.Pending(), 0)

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, buf.Format.NumChannels, 1)
	test.ExpectEquality(t, buf.Format.SampleRate, 50)
	test.DemandEquality(t, len(buf.Data), 5)

	test.ExpectEquality(t, buf.Data[0], buf.Data[1])
	test.ExpectInequality(t, buf.Data[1], buf.Data[2])
	test.ExpectEquality(t, buf.Data[2], buf.Data[4])
}

func TestBadParameters(t *testing.T) {
	ins := instance.NewTestingInstance()
	n := ins.Network.NewNode("")
	prb := signal.NewProbe(ins.Network, "probe", n)

	_, err := wavwriter.New(ins, "", prb, 0)
	test.ExpectFailure(t, err)

	test.DemandSuccess(t, ins.Prefs.Clock.Set(100))
	_, err = wavwriter.New(ins, "", prb, 200)
	test.ExpectFailure(t, err)
}

func TestSampleCount(t *testing.T) {
	m := hardware.NewMachine(instance.NewTestingInstance())
	clk := int64(m.Instance.Prefs.Clock.Get().(int))

	aw, err := wavwriter.New(m.Instance, filepath.Join(t.TempDir(), "second.wav"), m.Probe, wavwriter.SampleRate)
	test.DemandSuccess(t, err)

	// one second of emulated time. memory is empty so the CPU executes NOP
	// instructions
	elapsed, _ := m.Run(clk)
	test.ExpectApproximate(t, aw.Samples(), wavwriter.SampleRate, 0.01)
	test.ExpectApproximate(t, aw.Samples(), int(elapsed*wavwriter.SampleRate/clk), 0.0001)

	// a clock that does not divide by the sample rate
	ins := instance.NewTestingInstance()
	test.DemandSuccess(t, ins.Prefs.Clock.Set(1000))
	n := ins.Network.NewNode("")
	aw, err = wavwriter.New(ins, "", signal.NewProbe(ins.Network, "probe", n), 300)
	test.DemandSuccess(t, err)

	for range 100 {
		ins.Scheduler.Advance(7)
		ins.Scheduler.Drain(ins.Scheduler.Now())
	}

	// 700 clock units at 0.3 samples per unit
	test.ExpectEquality(t, aw.Samples(), 210)
}
