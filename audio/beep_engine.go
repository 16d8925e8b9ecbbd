package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

const resampleQuality = 4

// BeepConfig sizes the beep-backed engine
type BeepConfig struct {
	SampleRate int
	Channels   int
	Buffer     time.Duration
}

// BeepEngine mixes a fixed set of channels plus one music slot into the speaker
type BeepEngine struct {
	rate     beep.SampleRate
	format   beep.Format
	mixer    *beep.Mixer
	channels []*channel
	music    *musicChannel
	reclaim  int

	lock   func()
	unlock func()
}

// NewBeepEngine initializes the speaker and starts mixing
func NewBeepEngine(cfg BeepConfig) (*BeepEngine, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(cfg.Buffer)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}

	e := newBeepEngine(rate, cfg.Channels, speaker.Lock, speaker.Unlock)
	speaker.Play(e.mixer)
	return e, nil
}

// newBeepEngine builds the mixer graph without touching the speaker
func newBeepEngine(rate beep.SampleRate, channels int, lock, unlock func()) *BeepEngine {
	e := &BeepEngine{
		rate:   rate,
		format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
		mixer:  &beep.Mixer{},
		lock:   lock,
		unlock: unlock,
	}

	for i := 0; i < channels; i++ {
		ch := newChannel(rate, lock, unlock)
		e.channels = append(e.channels, ch)
		e.mixer.Add(ch)
	}

	e.music = newMusicChannel(rate, lock, unlock)
	e.mixer.Add(e.music)
	return e
}

// bufferedSound is a fully decoded sound at the engine sample rate
type bufferedSound struct {
	buf *beep.Buffer
}

func (s *bufferedSound) Duration() time.Duration {
	return s.buf.Format().SampleRate.D(s.buf.Len())
}

// streamerFor returns a fresh streamer over snd; nil for sounds from other engines
func streamerFor(snd Sound, loops int) beep.Streamer {
	bs, ok := snd.(*bufferedSound)
	if !ok || bs == nil {
		return nil
	}
	s := bs.buf.Streamer(0, bs.buf.Len())
	if loops == 0 {
		return s
	}
	count := loops + 1
	if loops == LoopForever {
		count = -1
	}
	return beep.Loop(count, s)
}

// Load decodes a .wav or .ogg file into memory
func (e *BeepEngine) Load(path string) (Sound, error) {
	source, format, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	var s beep.Streamer = source
	if format.SampleRate != e.rate {
		s = beep.Resample(resampleQuality, format.SampleRate, e.rate, source)
	}

	buf := beep.NewBuffer(e.format)
	buf.Append(s)
	if err := source.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &bufferedSound{buf: buf}, nil
}

func (e *BeepEngine) Play(snd Sound, loops int) Channel {
	s := streamerFor(snd, loops)
	if s == nil {
		return nil
	}

	ch := e.freeChannel()
	if ch == nil {
		return nil
	}
	ch.start(s)
	return ch
}

func (e *BeepEngine) FindChannel(force bool) Channel {
	if ch := e.freeChannel(); ch != nil {
		return ch
	}
	if !force || len(e.channels) == 0 {
		return nil
	}
	ch := e.channels[e.reclaim%len(e.channels)]
	e.reclaim++
	return ch
}

func (e *BeepEngine) freeChannel() *channel {
	e.lock()
	defer e.unlock()
	for _, ch := range e.channels {
		if ch.idle() {
			return ch
		}
	}
	return nil
}

func (e *BeepEngine) Music() Music {
	return e.music
}

// Close silences every channel and releases the music source
func (e *BeepEngine) Close() {
	for _, ch := range e.channels {
		ch.Stop()
	}
	e.music.close()
	speaker.Clear()
}

// decodeFile opens and decodes path by extension
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".wav" && ext != ".ogg" {
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		source beep.StreamSeekCloser
		format beep.Format
	)
	switch ext {
	case ".wav":
		source, format, err = wav.Decode(f)
	case ".ogg":
		source, format, err = vorbis.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return source, format, nil
}
