package audio

import "time"

// LoopForever repeats a sound or track until it is stopped
const LoopForever = -1

// Sound is a loaded, replayable sound resource
type Sound interface {
	Duration() time.Duration
}

// Channel is one output slot of the engine
type Channel interface {
	// Busy reports whether the channel is producing sound
	Busy() bool
	Stop()
	// FadeOut ramps the current sound to silence over d, then stops it
	FadeOut(d time.Duration)
	// Queue plays snd once after the current sound ends, or immediately when idle
	Queue(snd Sound)
	// SetVolume sets left and right gain in [0, 1]
	SetVolume(left, right float64)
}

// Music is the engine's single streaming music slot
type Music interface {
	Load(path string) error
	// Play starts the loaded track; loops is the number of extra repeats, LoopForever repeats indefinitely
	Play(loops int) error
	Stop()
	Busy() bool
	SetVolume(v float64)
}

// Engine is the audio backend consumed by SoundManager
type Engine interface {
	Load(path string) (Sound, error)
	// Play starts snd on a free channel. Returns nil when every channel is busy
	Play(snd Sound, loops int) Channel
	// FindChannel returns a free channel; with force it reclaims a busy one instead of returning nil
	FindChannel(force bool) Channel
	// Music returns the music slot, nil when the backend has none
	Music() Music
	Close()
}
