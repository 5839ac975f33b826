// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package animation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/biolink/internal/animation"
)

func state(phase animation.Phase, line, char int, text string) animation.TypewriterState {
	return animation.TypewriterState{Phase: phase, Line: line, Char: char, Text: text}
}

/*
TestTypewriter_FullCycle walks two lines through every phase and back to the start.
*/
func TestTypewriter_FullCycle(t *testing.T) {
	scheduler := &manualScheduler{}
	typewriter := animation.NewTypewriter(scheduler, nil)

	typewriter.Start([]string{"a", "bb"})
	assert.Equal(t, state(animation.PhaseTyping, 0, 0, ""), typewriter.State())

	steps := []struct {
		advance time.Duration
		want    animation.TypewriterState
	}{
		{animation.TypeInterval, state(animation.PhaseHoldingFull, 0, 1, "a")},
		{animation.FullHold, state(animation.PhaseHoldingEmpty, 0, 0, "")},
		{animation.EmptyHold, state(animation.PhaseTyping, 1, 0, "")},
		{animation.TypeInterval, state(animation.PhaseTyping, 1, 1, "b")},
		{animation.TypeInterval, state(animation.PhaseHoldingFull, 1, 2, "bb")},
		{animation.FullHold, state(animation.PhaseDeleting, 1, 1, "b")},
		{animation.DeleteInterval, state(animation.PhaseHoldingEmpty, 1, 0, "")},
		{animation.EmptyHold, state(animation.PhaseTyping, 0, 0, "")},
	}

	for i, step := range steps {
		scheduler.Advance(step.advance)
		require.Equal(t, step.want, typewriter.State(), "step %d", i)
		require.Equal(t, 1, scheduler.Pending(), "step %d", i)
	}

	typewriter.Stop()
}

/*
TestTypewriter_TicksEarlyDoNothing verifies a tick only fires once its delay elapsed.
*/
func TestTypewriter_TicksEarlyDoNothing(t *testing.T) {
	scheduler := &manualScheduler{}
	typewriter := animation.NewTypewriter(scheduler, nil)

	typewriter.Start([]string{"hey"})
	scheduler.Advance(animation.TypeInterval - time.Millisecond)
	assert.Equal(t, 0, typewriter.State().Char)

	scheduler.Advance(time.Millisecond)
	assert.Equal(t, "h", typewriter.State().Text)
}

/*
TestTypewriter_CountsRunes verifies multi-byte characters advance one tick each.
*/
func TestTypewriter_CountsRunes(t *testing.T) {
	scheduler := &manualScheduler{}
	typewriter := animation.NewTypewriter(scheduler, nil)

	typewriter.Start([]string{"hé🚀"})
	scheduler.Advance(2 * animation.TypeInterval)
	assert.Equal(t, "hé", typewriter.State().Text)

	scheduler.Advance(animation.TypeInterval)
	assert.Equal(t, state(animation.PhaseHoldingFull, 0, 3, "hé🚀"), typewriter.State())
}

/*
TestTypewriter_FallbackLine verifies blank input types the default line.
*/
func TestTypewriter_FallbackLine(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"nil", nil},
		{"blank_entries", []string{"", "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheduler := &manualScheduler{}
			typewriter := animation.NewTypewriter(scheduler, nil)

			typewriter.Start(tt.lines)
			scheduler.Advance(time.Duration(len(animation.FallbackLine)) * animation.TypeInterval)

			assert.Equal(t, animation.PhaseHoldingFull, typewriter.State().Phase)
			assert.Equal(t, animation.FallbackLine, typewriter.State().Text)
			typewriter.Stop()
		})
	}
}

/*
TestTypewriter_RestartCancelsPendingTick verifies a restart leaves exactly one
timer and the old lines never show up again.
*/
func TestTypewriter_RestartCancelsPendingTick(t *testing.T) {
	scheduler := &manualScheduler{}
	var seen []string
	typewriter := animation.NewTypewriter(scheduler, func(s animation.TypewriterState) {
		seen = append(seen, s.Text)
	})

	typewriter.Start([]string{"old"})
	scheduler.Advance(animation.TypeInterval)
	require.Equal(t, "o", typewriter.State().Text)

	typewriter.Start([]string{"new"})
	assert.Equal(t, 1, scheduler.Pending())
	assert.Equal(t, state(animation.PhaseTyping, 0, 0, ""), typewriter.State())

	seen = nil
	scheduler.Advance(3 * animation.TypeInterval)
	assert.Equal(t, []string{"n", "ne", "new"}, seen)
}

/*
TestTypewriter_StopIsIdempotent verifies stopping twice, or before starting, is safe.
*/
func TestTypewriter_StopIsIdempotent(t *testing.T) {
	scheduler := &manualScheduler{}
	typewriter := animation.NewTypewriter(scheduler, nil)

	typewriter.Stop()
	typewriter.Start([]string{"abc"})
	scheduler.Advance(animation.TypeInterval)

	typewriter.Stop()
	typewriter.Stop()
	assert.Equal(t, 0, scheduler.Pending())

	scheduler.Advance(time.Minute)
	assert.Equal(t, animation.PhaseIdle, typewriter.State().Phase)
	assert.Equal(t, "a", typewriter.State().Text)
}

/*
TestTypewriter_WallClock runs briefly on the real clock and checks no
goroutine outlives Stop.
*/
func TestTypewriter_WallClock(t *testing.T) {
	typewriter := animation.NewTypewriter(animation.ClockScheduler{}, nil)

	typewriter.Start([]string{"hello"})
	assert.Eventually(t, func() bool {
		return typewriter.State().Char > 0
	}, time.Second, 5*time.Millisecond)

	typewriter.Stop()
}
