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

// Package wavwriter records the level of a node in the signal network as a
// WAV file. The node is sampled through a signal.Probe at a fixed rate by
// scheduling events on the machine's logical clock, so the recording is in
// emulated time rather than wall clock time.
//
// Note that audio data is buffered in memory in its entirety and written to
// disk when the writer is closed. It is therefore probably only suitable for
// short recordings and for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/instance"
	"github.com/jetsetilly/gopher8080/hardware/signal"
	"github.com/jetsetilly/gopher8080/logger"
)

// SampleRate is the default sample rate of the recording.
const SampleRate = 44100

// 8 bit PCM is unsigned. the two levels are placed either side of the
// silence value of 128
const (
	sampleLow  = 0x40
	sampleHigh = 0xc0
)

// WavWriter samples a probe and writes the samples to a WAV file.
type WavWriter struct {
	ins      *instance.Instance
	filename string
	probe    *signal.Probe

	sampleRate int
	clock      int64

	// the clock time at which sampling began and the number of the next
	// sample. the time of sample n is start + n*clock/sampleRate so that
	// rounding never accumulates
	start int64
	next  int64

	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type.
//
// The sampling times are derived from the clock preference of the instance
// and the sample rate. Sampling begins immediately.
func New(ins *instance.Instance, filename string, probe *signal.Probe, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "sample rate must be greater than zero")
	}

	clk := ins.Prefs.Clock.Get().(int)
	if clk < sampleRate {
		return nil, curated.Errorf("wavwriter: %v", "clock is slower than the sample rate")
	}

	aw := &WavWriter{
		ins:        ins,
		filename:   filename,
		probe:      probe,
		sampleRate: sampleRate,
		clock:      int64(clk),
		start:      ins.Scheduler.Now(),
		next:       1,
		buffer:     make([]int, 0, sampleRate),
	}

	ins.Scheduler.AddAbsolute(aw, aw.due(aw.next), 0)

	return aw, nil
}

// Samples returns the number of samples recorded so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// due returns the clock time of the numbered sample.
func (aw *WavWriter) due(n int64) int64 {
	return aw.start + n*aw.clock/int64(aw.sampleRate)
}

// PerformScheduledEvent implements the scheduler.Owner interface.
//
// Samples that fell due while an instruction was executing are taken now.
// They all record the current level of the probe.
func (aw *WavWriter) PerformScheduledEvent(_ int, _ int64) {
	v := sampleHigh
	if aw.probe.Level() == signal.Low {
		v = sampleLow
	}

	now := aw.ins.Scheduler.Now()
	for aw.due(aw.next) <= now {
		aw.buffer = append(aw.buffer, v)
		aw.next++
	}

	aw.ins.Scheduler.AddAbsolute(aw, aw.due(aw.next), 0)
}

// Close stops sampling and writes the samples to disk.
func (aw *WavWriter) Close() (rerr error) {
	aw.ins.Scheduler.CancelAll(aw)

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	logger.Logf(aw.ins, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
