// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package animation

import (
	"strings"
	"sync"
	"time"
)

// Typewriter timings.
const (
	TypeInterval   = 55 * time.Millisecond
	DeleteInterval = 30 * time.Millisecond
	FullHold       = 2400 * time.Millisecond
	EmptyHold      = 500 * time.Millisecond
)

// FallbackLine is typed when a profile has no bio lines.
const FallbackLine = "Welcome to my profile!"

// Phase is the typewriter state tag.
type Phase string

// Typewriter phases.
const (
	PhaseIdle         Phase = "idle"
	PhaseTyping       Phase = "typing"
	PhaseHoldingFull  Phase = "holding_full"
	PhaseDeleting     Phase = "deleting"
	PhaseHoldingEmpty Phase = "holding_empty"
)

// TypewriterState is a snapshot of the machine.
//
// Char counts runes of the current line. Text is the visible prefix.
type TypewriterState struct {
	Phase Phase
	Line  int
	Char  int
	Text  string
}

// Typewriter cycles through lines one rune at a time:
//
//	Typing(l, c) -> ... -> HoldingFull(l) -> Deleting(l, c) -> ... -> HoldingEmpty(l) -> Typing(l+1 mod n, 0)
type Typewriter struct {
	mu         sync.Mutex
	scheduler  Scheduler
	onChange   func(TypewriterState)
	lines      [][]rune
	state      TypewriterState
	timer      Timer
	generation uint64
}

// NewTypewriter returns an idle typewriter. onChange, if set, receives every
// new state outside the internal lock.
func NewTypewriter(scheduler Scheduler, onChange func(TypewriterState)) *Typewriter {
	return &Typewriter{
		scheduler: scheduler,
		onChange:  onChange,
		state:     TypewriterState{Phase: PhaseIdle},
	}
}

// Start cancels any pending tick and restarts at Typing(0, 0) over lines.
// Blank lines are skipped; with nothing left, [FallbackLine] is used.
func (typewriter *Typewriter) Start(lines []string) {
	typewriter.mu.Lock()

	typewriter.cancelLocked()
	typewriter.lines = typewriter.lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			typewriter.lines = append(typewriter.lines, []rune(line))
		}
	}
	if len(typewriter.lines) == 0 {
		typewriter.lines = [][]rune{[]rune(FallbackLine)}
	}

	typewriter.state = TypewriterState{Phase: PhaseTyping}
	typewriter.scheduleLocked(TypeInterval)
	state := typewriter.state

	typewriter.mu.Unlock()
	typewriter.emit(state)
}

// Stop cancels the pending tick and leaves the text as it is. Stopping an
// idle or stopped typewriter is a no-op.
func (typewriter *Typewriter) Stop() {
	typewriter.mu.Lock()
	defer typewriter.mu.Unlock()

	typewriter.cancelLocked()
	typewriter.state.Phase = PhaseIdle
}

// State returns the current snapshot.
func (typewriter *Typewriter) State() TypewriterState {
	typewriter.mu.Lock()
	defer typewriter.mu.Unlock()
	return typewriter.state
}

func (typewriter *Typewriter) tick(generation uint64) {
	typewriter.mu.Lock()
	if generation != typewriter.generation {
		typewriter.mu.Unlock()
		return
	}
	typewriter.timer = nil

	state := &typewriter.state
	line := typewriter.lines[state.Line]
	var next time.Duration

	switch state.Phase {
	case PhaseTyping:
		state.Char++
		if state.Char >= len(line) {
			state.Phase = PhaseHoldingFull
			next = FullHold
		} else {
			next = TypeInterval
		}

	case PhaseHoldingFull:
		state.Char = len(line) - 1
		if state.Char <= 0 {
			state.Char = 0
			state.Phase = PhaseHoldingEmpty
			next = EmptyHold
		} else {
			state.Phase = PhaseDeleting
			next = DeleteInterval
		}

	case PhaseDeleting:
		state.Char--
		if state.Char <= 0 {
			state.Char = 0
			state.Phase = PhaseHoldingEmpty
			next = EmptyHold
		} else {
			next = DeleteInterval
		}

	case PhaseHoldingEmpty:
		state.Line = (state.Line + 1) % len(typewriter.lines)
		state.Char = 0
		state.Phase = PhaseTyping
		next = TypeInterval

	default:
		typewriter.mu.Unlock()
		return
	}

	state.Text = string(typewriter.lines[state.Line][:state.Char])
	typewriter.scheduleLocked(next)
	snapshot := *state

	typewriter.mu.Unlock()
	typewriter.emit(snapshot)
}

func (typewriter *Typewriter) scheduleLocked(delay time.Duration) {
	generation := typewriter.generation
	typewriter.timer = typewriter.scheduler.AfterFunc(delay, func() {
		typewriter.tick(generation)
	})
}

func (typewriter *Typewriter) cancelLocked() {
	typewriter.generation++
	if typewriter.timer != nil {
		typewriter.timer.Stop()
		typewriter.timer = nil
	}
}

func (typewriter *Typewriter) emit(state TypewriterState) {
	if typewriter.onChange != nil {
		typewriter.onChange(state)
	}
}
