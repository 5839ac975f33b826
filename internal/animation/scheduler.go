// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package animation runs the timed state machines of the public profile page:
the typewriter that cycles through bio lines and the simulated audio player.

# Timers

Each machine owns at most one pending timer. Starting, restarting or stopping
a machine cancels that timer first. A generation counter guards against a
timer that already fired and is waiting on the lock: its tick is dropped when
the generation moved on.

Machines read their input once at Start. They never write to a profile.
*/
package animation

import "time"

// Timer is a cancellable scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports false when the callback already
	// ran or was already stopped.
	Stop() bool
}

// Scheduler runs f once after d on its own goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ClockScheduler schedules on the wall clock.
type ClockScheduler struct{}

// AfterFunc implements [Scheduler] with [time.AfterFunc].
func (ClockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
