// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package animation

import (
	"sync"

	"github.com/taibuivan/biolink/internal/profile"
)

// Frame is what the public page shows at one instant.
type Frame struct {
	Bio   TypewriterState
	Audio AudioState
	// HasAudio is false when the profile has no now-playing widget.
	HasAudio bool
}

// Stage owns the single typewriter and audio player of a process and points
// them at one profile at a time.
type Stage struct {
	typewriter *Typewriter
	audio      *AudioPlayer

	mu       sync.Mutex
	hasAudio bool
	onFrame  func(Frame)
}

// NewStage wires both machines to scheduler. onFrame, if set, is called on
// every state change of either machine.
func NewStage(scheduler Scheduler, onFrame func(Frame)) *Stage {
	stage := &Stage{onFrame: onFrame}
	stage.typewriter = NewTypewriter(scheduler, func(TypewriterState) { stage.publish() })
	stage.audio = NewAudioPlayer(scheduler, func(AudioState) { stage.publish() })
	return stage
}

// Enter shows record: the typewriter restarts on its bio lines and the player
// rewinds. Whatever the previous record was running is cancelled first.
func (stage *Stage) Enter(record *profile.Record) {
	stage.mu.Lock()
	stage.hasAudio = record != nil && record.Audio.Title != ""
	stage.mu.Unlock()

	stage.audio.Reset()

	var lines []string
	if record != nil {
		lines = record.BioLines
	}
	stage.typewriter.Start(lines)
}

// TogglePlay flips the audio player. It is a no-op without an audio widget.
func (stage *Stage) TogglePlay() bool {
	stage.mu.Lock()
	hasAudio := stage.hasAudio
	stage.mu.Unlock()

	if !hasAudio {
		return false
	}
	return stage.audio.Toggle()
}

// Stop cancels both machines. It is idempotent.
func (stage *Stage) Stop() {
	stage.typewriter.Stop()
	stage.audio.Stop()
}

// Frame returns the current snapshot of both machines.
func (stage *Stage) Frame() Frame {
	stage.mu.Lock()
	hasAudio := stage.hasAudio
	stage.mu.Unlock()

	return Frame{
		Bio:      stage.typewriter.State(),
		Audio:    stage.audio.State(),
		HasAudio: hasAudio,
	}
}

func (stage *Stage) publish() {
	if stage.onFrame != nil {
		stage.onFrame(stage.Frame())
	}
}
