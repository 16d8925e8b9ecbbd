package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// channel is one mixer voice. It always reports itself as streaming so the mixer
// never drops it; an idle channel produces silence.
type channel struct {
	rate   beep.SampleRate
	lock   func()
	unlock func()

	// Guarded by lock; read by the speaker goroutine in Stream
	current beep.Streamer
	next    beep.Streamer
	left    float64
	right   float64

	fadeTotal int
	fadeLeft  int
}

func newChannel(rate beep.SampleRate, lock, unlock func()) *channel {
	return &channel{
		rate:   rate,
		lock:   lock,
		unlock: unlock,
		left:   1,
		right:  1,
	}
}

// Stream implements beep.Streamer
func (c *channel) Stream(samples [][2]float64) (n int, ok bool) {
	i := 0
	for i < len(samples) && c.current != nil {
		if c.fadeTotal > 0 && c.fadeLeft <= 0 {
			c.advance()
			continue
		}

		want := len(samples) - i
		if c.fadeTotal > 0 && c.fadeLeft < want {
			want = c.fadeLeft
		}

		got, more := c.current.Stream(samples[i : i+want])
		for j := i; j < i+got; j++ {
			gain := 1.0
			if c.fadeTotal > 0 {
				gain = float64(c.fadeLeft) / float64(c.fadeTotal)
				c.fadeLeft--
			}
			samples[j][0] *= c.left * gain
			samples[j][1] *= c.right * gain
		}
		i += got

		if !more || got < want {
			c.advance()
		}
	}

	for ; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

// Err implements beep.Streamer
func (c *channel) Err() error {
	return nil
}

// advance moves the queued streamer into place; caller holds lock
func (c *channel) advance() {
	c.current = c.next
	c.next = nil
	c.fadeTotal = 0
	c.fadeLeft = 0
}

// start replaces whatever is playing with s at unity gain
func (c *channel) start(s beep.Streamer) {
	c.lock()
	defer c.unlock()
	c.current = s
	c.next = nil
	c.fadeTotal = 0
	c.fadeLeft = 0
	c.left = 1
	c.right = 1
}

// idle reports whether nothing is playing; caller holds lock
func (c *channel) idle() bool {
	return c.current == nil
}

func (c *channel) Busy() bool {
	c.lock()
	defer c.unlock()
	return c.current != nil
}

func (c *channel) Stop() {
	c.lock()
	defer c.unlock()
	c.current = nil
	c.next = nil
	c.fadeTotal = 0
	c.fadeLeft = 0
}

func (c *channel) FadeOut(d time.Duration) {
	c.lock()
	defer c.unlock()
	if c.current == nil {
		return
	}
	n := c.rate.N(d)
	if n <= 0 {
		c.advance()
		return
	}
	c.fadeTotal = n
	c.fadeLeft = n
}

func (c *channel) Queue(snd Sound) {
	s := streamerFor(snd, 0)
	if s == nil {
		return
	}
	c.lock()
	defer c.unlock()
	if c.current == nil {
		c.current = s
		return
	}
	c.next = s
}

func (c *channel) SetVolume(left, right float64) {
	c.lock()
	defer c.unlock()
	c.left = clampUnit(left)
	c.right = clampUnit(right)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
