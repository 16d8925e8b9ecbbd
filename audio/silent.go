package audio

import "time"

// SilentEngine stands in when no audio device is available.
// Every sound loads and plays on a channel that is never busy, so SoundManager keeps
// its bookkeeping while producing no output.
type SilentEngine struct{}

type silentSound struct{}

func (silentSound) Duration() time.Duration { return 0 }

type silentChannel struct{}

func (silentChannel) Busy() bool                 { return false }
func (silentChannel) Stop()                      {}
func (silentChannel) FadeOut(time.Duration)      {}
func (silentChannel) Queue(Sound)                {}
func (silentChannel) SetVolume(float64, float64) {}

func (SilentEngine) Load(string) (Sound, error) { return silentSound{}, nil }
func (SilentEngine) Play(Sound, int) Channel    { return silentChannel{} }
func (SilentEngine) FindChannel(bool) Channel   { return silentChannel{} }
func (SilentEngine) Music() Music               { return nil }
func (SilentEngine) Close()                     {}
