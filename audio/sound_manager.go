package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/woger/asset"
	"github.com/lixenwraith/woger/cyclic"
)

// reclaimFade is the fade applied to a channel stolen for a looping sound
const reclaimFade = 100 * time.Millisecond

// WaitPolicy decides what Play does when the channel for a name is still busy
type WaitPolicy int

const (
	WaitNone  WaitPolicy = iota // Start another playback regardless
	WaitQueue                   // Defer until the next Update
	WaitSkip                    // Drop the request
)

func (w WaitPolicy) String() string {
	switch w {
	case WaitNone:
		return "none"
	case WaitQueue:
		return "queue"
	case WaitSkip:
		return "skip"
	}
	return "unknown"
}

// Volume is a left/right gain pair in [0, 1]
type Volume struct {
	Left, Right float64
}

// FullVolume plays at unity gain on both sides
var FullVolume = Volume{Left: 1, Right: 1}

type pendingPlay struct {
	name   string
	volume Volume
	wait   WaitPolicy
}

// SoundManager arbitrates named sound playback over the engine's channels and rotates music.
//
// Channels and deferred plays are keyed by sound name, not by emitter: two emitters sharing
// a name share one channel slot and may preempt or defer each other.
// Not safe for concurrent use; call from the frame goroutine.
type SoundManager struct {
	engine   Engine
	soundDir string
	musicDir string
	log      *log.Logger

	// nil value marks a sound that failed to load; plays on it are no-ops
	sounds   map[string]Sound
	channels map[string]Channel
	queued   []pendingPlay

	tracks *cyclic.List[string]
}

// NewSoundManager creates a manager reading sounds and music from dataDir
func NewSoundManager(engine Engine, dataDir string, logger *log.Logger) *SoundManager {
	return &SoundManager{
		engine:   engine,
		soundDir: asset.SoundDir(dataDir),
		musicDir: asset.MusicDir(dataDir),
		log:      logger,
		sounds:   make(map[string]Sound),
		channels: make(map[string]Channel),
	}
}

// Load caches the named sounds. Names without a file are skipped with a diagnostic
func (m *SoundManager) Load(names ...string) {
	for _, name := range names {
		if _, ok := m.sounds[name]; ok {
			continue
		}
		if _, err := m.sound(name); err != nil {
			m.log.Warn("sound not preloaded", "name", name, "err", err)
		}
	}
}

// sound resolves name through the cache, loading on first use.
// A file that exists but fails to decode caches a nil entry.
// Without an audio device every name resolves to a silent sound, file or not.
func (m *SoundManager) sound(name string) (Sound, error) {
	if snd, ok := m.sounds[name]; ok {
		return snd, nil
	}
	if _, ok := m.engine.(SilentEngine); ok {
		m.sounds[name] = silentSound{}
		return m.sounds[name], nil
	}

	path, ok := asset.FindSound(m.soundDir, name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSoundNotFound, name)
	}

	snd, err := m.engine.Load(path)
	if err != nil {
		m.log.Warn("error loading sound", "path", path, "err", err)
		snd = nil
	}
	m.sounds[name] = snd
	return snd, nil
}

// Play starts the named sound at the given volume.
// loops is the number of extra repeats, LoopForever repeats until stopped.
// Returns ErrSoundNotFound for unknown names and ErrChannelUnavailable only when a
// looping sound cannot reclaim any channel.
func (m *SoundManager) Play(name string, vol Volume, wait WaitPolicy, loops int) error {
	snd, err := m.sound(name)
	if err != nil {
		return err
	}
	if snd == nil {
		return nil
	}

	if wait == WaitQueue || wait == WaitSkip {
		if ch, ok := m.channels[name]; ok && ch != nil && ch.Busy() {
			if wait == WaitQueue {
				m.queued = append(m.queued, pendingPlay{name: name, volume: vol, wait: wait})
			}
			return nil
		}
	}

	ch := m.engine.Play(snd, loops)
	if ch != nil {
		m.channels[name] = ch
		ch.SetVolume(vol.Left, vol.Right)
		return nil
	}

	if loops == LoopForever {
		// Queued sounds play once; the loop request is approximated by a single queued play
		ch = m.engine.FindChannel(true)
		if ch == nil {
			delete(m.channels, name)
			return fmt.Errorf("%w: %q", ErrChannelUnavailable, name)
		}
		ch.FadeOut(reclaimFade)
		ch.Queue(snd)
		m.channels[name] = ch
		return nil
	}

	m.queued = append(m.queued, pendingPlay{name: name, volume: vol, wait: wait})
	delete(m.channels, name)
	return nil
}

// PlayCue plays a one-shot sound at full volume without waiting
func (m *SoundManager) PlayCue(name string) error {
	return m.Play(name, FullVolume, WaitNone, 0)
}

// Stop halts the channel playing name, if any
func (m *SoundManager) Stop(name string) {
	if ch, ok := m.channels[name]; ok && ch != nil && ch.Busy() {
		ch.Stop()
	}
}

// StopAll halts every tracked channel
func (m *SoundManager) StopAll() {
	for name := range m.channels {
		m.Stop(name)
	}
}

// Busy reports whether the channel for name is playing
func (m *SoundManager) Busy(name string) bool {
	ch, ok := m.channels[name]
	return ok && ch != nil && ch.Busy()
}

// Pending returns the number of deferred plays awaiting the next Update
func (m *SoundManager) Pending() int {
	return len(m.queued)
}

// Update reaps finished channels, retries deferred plays once each, then advances music.
// Call once per frame.
func (m *SoundManager) Update(elapsed time.Duration) error {
	for name, ch := range m.channels {
		if ch == nil || !ch.Busy() {
			delete(m.channels, name)
		}
	}

	retry := m.queued
	m.queued = nil

	var errs []error
	for _, p := range retry {
		if err := m.Play(p.name, p.volume, p.wait, 0); err != nil {
			errs = append(errs, err)
		}
	}

	if err := m.UpdateMusic(elapsed); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SetMusicTracks installs the music rotation. Only the first call has effect
func (m *SoundManager) SetMusicTracks(tracks []string) {
	if m.tracks != nil {
		return
	}
	m.tracks = cyclic.New(tracks)
}

// UpdateMusic plays the next track once when the music slot is idle
func (m *SoundManager) UpdateMusic(elapsed time.Duration) error {
	if m.tracks == nil {
		return nil
	}
	music := m.engine.Music()
	if music == nil || music.Busy() {
		return nil
	}

	name, ok := m.tracks.Cur()
	if !ok {
		return nil
	}
	err := m.PlayMusic(name, 0)
	m.tracks.Next()
	return err
}

// PlayMusic replaces any playing track with name. The current track is cut, not faded
func (m *SoundManager) PlayMusic(name string, loops int) error {
	music := m.engine.Music()
	if music == nil {
		return nil
	}
	if music.Busy() {
		music.Stop()
	}

	path := asset.MusicPath(m.musicDir, name)
	if err := music.Load(path); err != nil {
		return fmt.Errorf("load music %q: %w", name, err)
	}
	if err := music.Play(loops); err != nil {
		return fmt.Errorf("play music %q: %w", name, err)
	}
	music.SetVolume(1.0)
	return nil
}

// StopMusic halts the music slot
func (m *SoundManager) StopMusic() {
	if music := m.engine.Music(); music != nil && music.Busy() {
		music.Stop()
	}
}

// Close stops all sound and releases the engine
func (m *SoundManager) Close() {
	m.StopAll()
	m.StopMusic()
	m.engine.Close()
}
