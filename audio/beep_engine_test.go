package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

const testRate = beep.SampleRate(1000)

func noLock() {}

// constStreamer emits n samples of value v
type constStreamer struct {
	n int
	v float64
}

func (s *constStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.n <= 0 {
		return 0, false
	}
	n := len(samples)
	if s.n < n {
		n = s.n
	}
	for i := 0; i < n; i++ {
		samples[i] = [2]float64{s.v, s.v}
	}
	s.n -= n
	return n, true
}

func (s *constStreamer) Err() error { return nil }

func newTestSound(n int, v float64) *bufferedSound {
	buf := beep.NewBuffer(beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 2})
	buf.Append(&constStreamer{n: n, v: v})
	return &bufferedSound{buf: buf}
}

func stream(s beep.Streamer, n int) [][2]float64 {
	samples := make([][2]float64, n)
	for i := range samples {
		samples[i] = [2]float64{9, 9}
	}
	s.Stream(samples)
	return samples
}

func TestChannelIdleStreamsSilence(t *testing.T) {
	ch := newChannel(testRate, noLock, noLock)

	samples := make([][2]float64, 8)
	samples[3] = [2]float64{1, 1}
	n, ok := ch.Stream(samples)

	if n != 8 || !ok {
		t.Fatalf("Stream = %d, %v; want 8, true", n, ok)
	}
	for i, s := range samples {
		if s != [2]float64{} {
			t.Errorf("sample %d = %v, want silence", i, s)
		}
	}
	if ch.Busy() {
		t.Error("idle channel busy")
	}
}

func TestChannelPlaysToCompletion(t *testing.T) {
	ch := newChannel(testRate, noLock, noLock)
	ch.start(&constStreamer{n: 5, v: 1})

	if !ch.Busy() {
		t.Fatal("channel not busy after start")
	}

	samples := stream(ch, 10)
	for i := 0; i < 5; i++ {
		if samples[i][0] != 1 {
			t.Errorf("sample %d = %v, want 1", i, samples[i])
		}
	}
	for i := 5; i < 10; i++ {
		if samples[i] != [2]float64{} {
			t.Errorf("sample %d = %v, want silence", i, samples[i])
		}
	}
	if ch.Busy() {
		t.Error("channel busy after source drained")
	}
}

func TestChannelStereoVolume(t *testing.T) {
	ch := newChannel(testRate, noLock, noLock)
	ch.start(&constStreamer{n: 4, v: 1})
	ch.SetVolume(0.5, 2)

	samples := stream(ch, 4)
	if samples[0][0] != 0.5 || samples[0][1] != 1 {
		t.Errorf("sample = %v, want [0.5 1] (right clamped)", samples[0])
	}
}

func TestChannelFadeOut(t *testing.T) {
	ch := newChannel(testRate, noLock, noLock)
	ch.start(&constStreamer{n: 100, v: 1})
	ch.FadeOut(10 * time.Millisecond) // 10 samples at 1kHz

	samples := stream(ch, 20)
	if samples[0][0] != 1 {
		t.Errorf("fade start = %v, want 1", samples[0][0])
	}
	if got := samples[9][0]; got <= 0 || got >= 0.2 {
		t.Errorf("fade tail = %v, want in (0, 0.2)", got)
	}
	for i := 1; i < 10; i++ {
		if samples[i][0] >= samples[i-1][0] {
			t.Errorf("fade not decreasing at %d: %v >= %v", i, samples[i][0], samples[i-1][0])
		}
	}
	for i := 10; i < 20; i++ {
		if samples[i] != [2]float64{} {
			t.Errorf("sample %d after fade = %v, want silence", i, samples[i])
		}
	}
	if ch.Busy() {
		t.Error("channel busy after fade completed")
	}
}

func TestChannelFadeThenQueued(t *testing.T) {
	ch := newChannel(testRate, noLock, noLock)
	ch.start(&constStreamer{n: 100, v: 1})
	ch.FadeOut(5 * time.Millisecond)
	ch.Queue(newTestSound(3, 0.5))

	samples := stream(ch, 10)
	for i := 5; i < 8; i++ {
		if samples[i][0] < 0.49 || samples[i][0] > 0.51 {
			t.Errorf("queued sample %d = %v, want ~0.5", i, samples[i][0])
		}
	}
	if samples[8] != [2]float64{} {
		t.Errorf("sample 8 = %v, want silence", samples[8])
	}
}

func TestChannelQueueAfterCurrent(t *testing.T) {
	ch := newChannel(testRate, noLock, noLock)
	ch.start(&constStreamer{n: 3, v: 1})
	ch.Queue(newTestSound(4, 0.5))

	samples := stream(ch, 10)
	for i := 0; i < 3; i++ {
		if samples[i][0] != 1 {
			t.Errorf("sample %d = %v, want 1", i, samples[i][0])
		}
	}
	for i := 3; i < 7; i++ {
		if samples[i][0] < 0.49 || samples[i][0] > 0.51 {
			t.Errorf("sample %d = %v, want ~0.5", i, samples[i][0])
		}
	}
	for i := 7; i < 10; i++ {
		if samples[i] != [2]float64{} {
			t.Errorf("sample %d = %v, want silence", i, samples[i])
		}
	}
}

func TestChannelQueueOnIdleStartsImmediately(t *testing.T) {
	ch := newChannel(testRate, noLock, noLock)
	ch.Queue(newTestSound(2, 0.5))

	if !ch.Busy() {
		t.Error("queue on idle channel should start playback")
	}
}

func TestChannelStop(t *testing.T) {
	ch := newChannel(testRate, noLock, noLock)
	ch.start(&constStreamer{n: 100, v: 1})
	ch.Queue(newTestSound(2, 0.5))

	ch.Stop()

	if ch.Busy() {
		t.Error("channel busy after Stop")
	}
	if samples := stream(ch, 4); samples[0] != [2]float64{} {
		t.Error("stopped channel produced sound")
	}
}

func TestBeepEngineChannelAllocation(t *testing.T) {
	e := newBeepEngine(testRate, 2, noLock, noLock)
	snd := newTestSound(50, 1)

	a := e.Play(snd, 0)
	b := e.Play(snd, 0)
	if a == nil || b == nil {
		t.Fatal("expected two channels")
	}
	if a == b {
		t.Error("same channel granted twice")
	}
	if c := e.Play(snd, 0); c != nil {
		t.Error("third play should find no free channel")
	}
	if c := e.FindChannel(false); c != nil {
		t.Error("FindChannel(false) should return nil when all busy")
	}

	first := e.FindChannel(true)
	second := e.FindChannel(true)
	if first == nil || second == nil || first == second {
		t.Error("forced FindChannel should rotate over busy channels")
	}
}

func TestBeepEngineRejectsForeignSound(t *testing.T) {
	e := newBeepEngine(testRate, 1, noLock, noLock)

	if ch := e.Play(fakeSound{}, 0); ch != nil {
		t.Error("foreign sound should not play")
	}
}

func TestBeepEngineLoopingSound(t *testing.T) {
	e := newBeepEngine(testRate, 1, noLock, noLock)
	ch := e.Play(newTestSound(4, 1), 2) // three passes

	samples := stream(e.channels[0], 16)
	for i := 0; i < 12; i++ {
		if samples[i][0] < 0.99 {
			t.Errorf("sample %d = %v, want ~1", i, samples[i][0])
		}
	}
	if samples[12] != [2]float64{} {
		t.Errorf("sample 12 = %v, want silence", samples[12])
	}
	if ch.Busy() {
		t.Error("looped sound should finish after its repeats")
	}
}

func writeTestWav(t *testing.T, n int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, &constStreamer{n: n, v: 0.5}, format); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestBeepEngineLoadWav(t *testing.T) {
	e := newBeepEngine(testRate, 1, noLock, noLock)
	path := writeTestWav(t, 50)

	snd, err := e.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d := snd.Duration(); d != 50*time.Millisecond {
		t.Errorf("Duration = %v, want 50ms", d)
	}
}

func TestBeepEngineLoadErrors(t *testing.T) {
	e := newBeepEngine(testRate, 1, noLock, noLock)
	dir := t.TempDir()

	if _, err := e.Load(filepath.Join(dir, "song.mp3")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(mp3) = %v, want ErrUnsupportedFormat", err)
	}

	if _, err := e.Load(filepath.Join(dir, "absent.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(absent) = %v, want not exist", err)
	}

	garbage := filepath.Join(dir, "garbage.wav")
	if err := os.WriteFile(garbage, []byte("not a wav file"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Load(garbage); err == nil {
		t.Error("Load(garbage) succeeded")
	}
}

func TestMusicChannelLifecycle(t *testing.T) {
	e := newBeepEngine(testRate, 1, noLock, noLock)
	music := e.Music()

	if err := music.Play(0); !errors.Is(err, ErrNoMusicLoaded) {
		t.Errorf("Play before Load = %v, want ErrNoMusicLoaded", err)
	}

	if err := music.Load(writeTestWav(t, 20)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := music.Play(0); err != nil {
		t.Fatalf("Play: %v", err)
	}
	music.SetVolume(1)
	if !music.Busy() {
		t.Fatal("music not busy after Play")
	}

	samples := stream(e.music, 30)
	if samples[0][0] < 0.45 || samples[0][0] > 0.55 {
		t.Errorf("music sample = %v, want ~0.5", samples[0][0])
	}
	if samples[25] != [2]float64{} {
		t.Errorf("sample after track = %v, want silence", samples[25])
	}
	if music.Busy() {
		t.Error("music busy after track ended")
	}

	music.Play(LoopForever)
	music.Stop()
	if music.Busy() {
		t.Error("music busy after Stop")
	}
	e.music.close()
}

func TestMusicChannelSilentVolume(t *testing.T) {
	e := newBeepEngine(testRate, 1, noLock, noLock)
	if err := e.music.Load(writeTestWav(t, 20)); err != nil {
		t.Fatal(err)
	}
	e.music.Play(0)
	e.music.SetVolume(0)

	if samples := stream(e.music, 10); samples[0] != [2]float64{} {
		t.Errorf("muted music sample = %v, want silence", samples[0])
	}
}
