// Package chime plays an audible tick each time the clock's second changes.
package chime

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/fractal-clock/internal/config"
)

// click is a short sine burst with a linear fade out.
type click struct {
	pos, length int
	step        float64 // radians per sample
}

func newClick(sr beep.SampleRate) *click {
	return &click{
		length: sr.N(config.TickLength),
		step:   2 * math.Pi * config.TickFrequency / float64(sr),
	}
}

func (c *click) Stream(samples [][2]float64) (int, bool) {
	if c.pos >= c.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if c.pos >= c.length {
			break
		}
		env := 1 - float64(c.pos)/float64(c.length)
		v := 0.3 * env * math.Sin(float64(c.pos)*c.step)
		samples[i] = [2]float64{v, v}
		c.pos++
		n++
	}
	return n, true
}

func (c *click) Err() error { return nil }

// Ticker plays a click whenever the sampled second changes.
type Ticker struct {
	sr         beep.SampleRate
	play       func(beep.Streamer)
	lastSecond int

	mu     sync.Mutex
	ctrl   *beep.Ctrl
	paused bool
}

// NewSpeaker initialises the speaker and keeps one mixer playing on it.
func NewSpeaker() (*Ticker, error) {
	sr := beep.SampleRate(config.TickSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, err
	}
	mixer := &beep.Mixer{}
	ctrl := &beep.Ctrl{Streamer: mixer}
	speaker.Play(ctrl)

	t := New(sr, func(s beep.Streamer) {
		speaker.Lock()
		mixer.Add(s)
		speaker.Unlock()
	})
	t.ctrl = ctrl
	return t, nil
}

// New returns a ticker that hands every click to play.
func New(sr beep.SampleRate, play func(beep.Streamer)) *Ticker {
	return &Ticker{sr: sr, play: play, lastSecond: -1}
}

// Observe is called once per frame with the frame's time sample.
func (t *Ticker) Observe(now time.Time) {
	sec := now.Second()
	if t.lastSecond == sec {
		return
	}
	first := t.lastSecond < 0
	t.lastSecond = sec
	if first || t.isPaused() {
		return
	}
	t.play(newClick(t.sr))
}

// SetPaused mutes the ticker, e.g. while the window is not focused.
func (t *Ticker) SetPaused(paused bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.paused == paused {
		return
	}
	t.paused = paused
	if t.ctrl != nil {
		speaker.Lock()
		t.ctrl.Paused = paused
		speaker.Unlock()
	}
}

func (t *Ticker) isPaused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.paused
}
