// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package animation

import (
	"fmt"
	"sync"
	"time"
)

// Audio simulation constants. Progress is held in hundredths of a percent so
// repeated increments do not drift.
const (
	AudioTick = 100 * time.Millisecond

	// TrackLength is the nominal length shown next to the progress bar.
	TrackLength = 227 * time.Second

	progressStep    = 12    // 0.12% per tick
	progressFull    = 10000 // 100%
	progressInitial = 3500  // 35%, where the bar sits before the first play
)

// AudioState is a snapshot of the player.
type AudioState struct {
	Playing bool
	// Progress is the bar position in percent, 0..100.
	Progress float64
	// Elapsed is Progress projected onto [TrackLength], truncated to seconds.
	Elapsed time.Duration
	// Display reads "m:ss / m:ss".
	Display string
}

// AudioPlayer is a cosmetic now-playing simulation: Stopped or Playing(progress).
// Reaching 100% stops the player and rewinds it to 0.
type AudioPlayer struct {
	mu         sync.Mutex
	scheduler  Scheduler
	onChange   func(AudioState)
	playing    bool
	progress   int
	timer      Timer
	generation uint64
}

// NewAudioPlayer returns a stopped player at the initial position.
func NewAudioPlayer(scheduler Scheduler, onChange func(AudioState)) *AudioPlayer {
	return &AudioPlayer{
		scheduler: scheduler,
		onChange:  onChange,
		progress:  progressInitial,
	}
}

// Toggle flips between Playing and Stopped and reports whether it is now playing.
func (player *AudioPlayer) Toggle() bool {
	player.mu.Lock()

	player.cancelLocked()
	player.playing = !player.playing
	if player.playing {
		player.scheduleLocked()
	}
	state := player.stateLocked()

	player.mu.Unlock()
	player.emit(state)
	return state.Playing
}

// Stop pauses playback at the current position. Stopping a stopped player is a no-op.
func (player *AudioPlayer) Stop() {
	player.mu.Lock()
	defer player.mu.Unlock()

	player.cancelLocked()
	player.playing = false
}

// Reset stops playback and returns to the initial position.
func (player *AudioPlayer) Reset() {
	player.mu.Lock()
	player.cancelLocked()
	player.playing = false
	player.progress = progressInitial
	state := player.stateLocked()
	player.mu.Unlock()

	player.emit(state)
}

// InitialAudioState is the snapshot of a player that was never started.
func InitialAudioState() AudioState {
	player := &AudioPlayer{progress: progressInitial}
	return player.stateLocked()
}

// State returns the current snapshot.
func (player *AudioPlayer) State() AudioState {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.stateLocked()
}

func (player *AudioPlayer) tick(generation uint64) {
	player.mu.Lock()
	if generation != player.generation || !player.playing {
		player.mu.Unlock()
		return
	}
	player.timer = nil

	player.progress = min(player.progress+progressStep, progressFull)
	states := []AudioState{player.stateLocked()}

	if player.progress >= progressFull {
		player.playing = false
		player.progress = 0
		states = append(states, player.stateLocked())
	} else {
		player.scheduleLocked()
	}
	player.mu.Unlock()

	for _, state := range states {
		player.emit(state)
	}
}

func (player *AudioPlayer) stateLocked() AudioState {
	elapsed := time.Duration(int64(player.progress)*int64(TrackLength/time.Second)/progressFull) * time.Second
	return AudioState{
		Playing:  player.playing,
		Progress: float64(player.progress) / 100,
		Elapsed:  elapsed,
		Display:  fmt.Sprintf("%s / %s", clock(elapsed), clock(TrackLength)),
	}
}

func (player *AudioPlayer) scheduleLocked() {
	generation := player.generation
	player.timer = player.scheduler.AfterFunc(AudioTick, func() {
		player.tick(generation)
	})
}

func (player *AudioPlayer) cancelLocked() {
	player.generation++
	if player.timer != nil {
		player.timer.Stop()
		player.timer = nil
	}
}

func (player *AudioPlayer) emit(state AudioState) {
	if player.onChange != nil {
		player.onChange(state)
	}
}

// clock formats d as m:ss.
func clock(d time.Duration) string {
	seconds := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
