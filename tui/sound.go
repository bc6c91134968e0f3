package tui

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Clicker plays a short tick when operands trade places and a low buzz
// when the input does not parse.
type Clicker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewClicker() *Clicker {
	return &Clicker{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device. The editor works without it, so
// callers usually log the error and carry on.
func (c *Clicker) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

func (c *Clicker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

func (c *Clicker) Swapped() {
	sine, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return
	}
	c.play(beep.Take(sampleRate.N(30*time.Millisecond), sine))
}

func (c *Clicker) Rejected() {
	low, err := generators.SineTone(sampleRate, 110)
	if err != nil {
		return
	}
	beat, err := generators.SineTone(sampleRate, 117)
	if err != nil {
		return
	}
	n := sampleRate.N(150 * time.Millisecond)
	c.play(beep.Take(n, newDecay(beep.Mix(low, beat), n, 0.2)))
}

func (c *Clicker) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// decay scales a streamer down to silence over length samples along a
// quadratic curve.
type decay struct {
	s      beep.Streamer
	length int
	gain   float64
	pos    int
}

func newDecay(s beep.Streamer, length int, gain float64) *decay {
	return &decay{s: s, length: length, gain: gain}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.s.Stream(samples)
	for i := 0; i < n; i++ {
		rest := 0.0
		if d.pos < d.length {
			rest = 1 - float64(d.pos)/float64(d.length)
		}
		g := d.gain * rest * rest
		samples[i][0] *= g
		samples[i][1] *= g
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error {
	return d.s.Err()
}
