package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// musicChannel streams one decoded track from disk
type musicChannel struct {
	rate   beep.SampleRate
	lock   func()
	unlock func()

	source beep.StreamSeekCloser
	format beep.Format

	// Guarded by lock
	current *effects.Volume
	gain    float64
}

func newMusicChannel(rate beep.SampleRate, lock, unlock func()) *musicChannel {
	return &musicChannel{
		rate:   rate,
		lock:   lock,
		unlock: unlock,
		gain:   1,
	}
}

// Stream implements beep.Streamer
func (m *musicChannel) Stream(samples [][2]float64) (n int, ok bool) {
	got := 0
	if m.current != nil {
		var more bool
		got, more = m.current.Stream(samples)
		if !more || got < len(samples) {
			m.current = nil
		}
	}
	for i := got; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

// Err implements beep.Streamer
func (m *musicChannel) Err() error {
	return nil
}

func (m *musicChannel) Load(path string) error {
	source, format, err := decodeFile(path)
	if err != nil {
		return err
	}

	m.lock()
	old := m.source
	m.source = source
	m.format = format
	m.current = nil
	m.unlock()

	if old != nil {
		old.Close()
	}
	return nil
}

func (m *musicChannel) Play(loops int) error {
	if m.source == nil {
		return ErrNoMusicLoaded
	}

	m.lock()
	defer m.unlock()

	if err := m.source.Seek(0); err != nil {
		return err
	}

	var s beep.Streamer = m.source
	if loops != 0 {
		count := loops + 1
		if loops == LoopForever {
			count = -1
		}
		s = beep.Loop(count, m.source)
	}
	if m.format.SampleRate != m.rate {
		s = beep.Resample(resampleQuality, m.format.SampleRate, m.rate, s)
	}

	m.current = &effects.Volume{Streamer: s, Base: 2}
	m.applyGain()
	return nil
}

func (m *musicChannel) Stop() {
	m.lock()
	defer m.unlock()
	m.current = nil
}

func (m *musicChannel) Busy() bool {
	m.lock()
	defer m.unlock()
	return m.current != nil
}

func (m *musicChannel) SetVolume(v float64) {
	m.lock()
	defer m.unlock()
	m.gain = clampUnit(v)
	m.applyGain()
}

// applyGain maps linear gain onto the log-scale volume effect; caller holds lock
func (m *musicChannel) applyGain() {
	if m.current == nil {
		return
	}
	if m.gain <= 0 {
		m.current.Silent = true
		return
	}
	m.current.Silent = false
	m.current.Volume = math.Log2(m.gain)
}

func (m *musicChannel) close() {
	m.lock()
	source := m.source
	m.source = nil
	m.current = nil
	m.unlock()

	if source != nil {
		source.Close()
	}
}
