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

// Package scheduler implements the CPU clock driven event scheduler. The
// scheduler holds the logical clock of the emulated machine. The clock is
// advanced only by the CPU, and only by the number of cycles an instruction
// actually consumed.
//
// Peripherals that need to do something at a given point in time implement
// the Owner interface and add an event to the scheduler. The CPU drains the
// scheduler before every instruction, so a peripheral will always see an
// event before the first instruction that starts at or after the event's
// time.
//
// Events with the same time are fired in the order in which they were
// scheduled.
package scheduler

import (
	"container/heap"
	"fmt"
	"strings"
)

// Owner is implemented by types that can receive scheduled events.
//
// The delay argument is the number of clock units between the time the
// event was scheduled for and the time at which the scheduler was drained.
// Peripherals use this to compensate for the granularity of instruction
// execution.
type Owner interface {
	PerformScheduledEvent(param int, delay int64)
}

// event is a single entry in the scheduler's queue.
type event struct {
	owner Owner
	time  int64
	param int

	// sequence number assigned when the event was scheduled. used to order
	// events with the same time
	seq uint64
}

// Scheduler is the CPU clock and the queue of events waiting on it. The zero
// value is ready to use.
type Scheduler struct {
	now   int64
	seq   uint64
	queue queue
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("clock=%d pending=%d", s.now, len(s.queue)))
	if len(s.queue) > 0 {
		b.WriteString(fmt.Sprintf(" next=%d", s.queue[0].time))
	}
	return b.String()
}

// Now returns the current value of the clock.
func (s *Scheduler) Now() int64 {
	return s.now
}

// Advance the clock by the number of cycles. Advancing the clock does not
// drain the scheduler.
func (s *Scheduler) Advance(cycles int64) {
	if cycles < 0 {
		panic(fmt.Sprintf("scheduler: clock cannot go backwards (%d)", cycles))
	}
	s.now += cycles
}

// Pending returns the number of events in the queue.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// AddRelative schedules an event for the owner delta clock units from now.
// A delta of zero is allowed and the event will be fired by the next call to
// Drain(). A negative delta is a programming error.
func (s *Scheduler) AddRelative(owner Owner, delta int64, param int) {
	if delta < 0 {
		panic(fmt.Sprintf("scheduler: negative relative time (%d)", delta))
	}
	s.add(owner, s.now+delta, param)
}

// AddAbsolute schedules an event for the owner at the absolute clock time.
// The time must be in the future.
func (s *Scheduler) AddAbsolute(owner Owner, time int64, param int) {
	if time <= s.now {
		panic(fmt.Sprintf("scheduler: absolute time is not in the future (%d <= %d)", time, s.now))
	}
	s.add(owner, time, param)
}

func (s *Scheduler) add(owner Owner, time int64, param int) {
	if owner == nil {
		panic("scheduler: nil owner")
	}
	heap.Push(&s.queue, &event{
		owner: owner,
		time:  time,
		param: param,
		seq:   s.seq,
	})
	s.seq++
}

// CancelAll removes every pending event for the owner.
func (s *Scheduler) CancelAll(owner Owner) {
	n := 0
	for _, e := range s.queue {
		if e.owner != owner {
			s.queue[n] = e
			n++
		}
	}
	if n == len(s.queue) {
		return
	}
	for i := n; i < len(s.queue); i++ {
		s.queue[i] = nil
	}
	s.queue = s.queue[:n]
	heap.Init(&s.queue)
}

// Remaining returns the number of clock units until the owner's next event.
// Returns -1 if the owner has no pending events.
func (s *Scheduler) Remaining(owner Owner) int64 {
	var next *event
	for _, e := range s.queue {
		if e.owner == owner && (next == nil || e.before(next)) {
			next = e
		}
	}
	if next == nil {
		return -1
	}
	return next.time - s.now
}

// Drain fires every event with a time less than or equal to the time
// argument, in time order. Events added by an owner during the drain will
// also be fired if they are due.
func (s *Scheduler) Drain(time int64) {
	for len(s.queue) > 0 && s.queue[0].time <= time {
		e := heap.Pop(&s.queue).(*event)
		e.owner.PerformScheduledEvent(e.param, time-e.time)
	}
}
