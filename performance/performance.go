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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8080/debugger/govern"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
)

// the emulation is allowed to settle for this long before measurement begins
const warmup = 2 * time.Second

var timedOut = errors.New("performance timed out")

// CalcSpeed returns the effective clock speed in Hz of the number of cycles
// executed in the duration (in seconds). The accuracy value is the
// percentage of the clock preference that the speed represents.
func CalcSpeed(m *hardware.Machine, cycles int64, duration float64) (speed float64, accuracy float64) {
	speed = float64(cycles) / duration
	clock := m.Instance.Prefs.Clock.Get().(int)
	accuracy = 100 * speed / float64(clock)
	return speed, accuracy
}

// Check runs the machine for the duration, after a short warmup period, and
// writes the effective clock speed to output.
func Check(output io.Writer, profile Profile, m *hardware.Machine, duration string) error {
	return check(output, profile, m, duration, warmup)
}

func check(output io.Writer, profile Profile, m *hardware.Machine, duration string, warmup time.Duration) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	startCycle := m.Instance.Scheduler.Now()

	runner := func() error {
		timerChan := make(chan bool, 2)

		time.AfterFunc(warmup, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		_, err := m.RunUntil(instructions.None, func() (govern.State, error) {
			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startCycle = m.Instance.Scheduler.Now()
			default:
			}
			return govern.Running, nil
		})
		return err
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	cycles := m.Instance.Scheduler.Now() - startCycle
	speed, accuracy := CalcSpeed(m, cycles, dur.Seconds())
	fmt.Fprintf(output, "%.3f MHz (%d cycles in %.2f seconds) %.1f%%\n", speed/1000000, cycles, dur.Seconds(), accuracy)

	return nil
}
