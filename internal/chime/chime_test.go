package chime

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func TestClickEnvelope(t *testing.T) {
	sr := beep.SampleRate(44100)
	c := newClick(sr)
	if c.length != sr.N(30*time.Millisecond) {
		t.Fatalf("length = %d, want %d", c.length, sr.N(30*time.Millisecond))
	}

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := c.Stream(buf)
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 0.3 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d = %v out of range or not mono", total+i, buf[i])
			}
		}
		total += n
	}
	if total != c.length {
		t.Errorf("streamed %d samples, want %d", total, c.length)
	}
	if c.Err() != nil {
		t.Errorf("Err() = %v", c.Err())
	}
}

func TestObserve(t *testing.T) {
	var plays int
	tk := New(beep.SampleRate(8000), func(beep.Streamer) { plays++ })
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tk.Observe(base)
	if plays != 0 {
		t.Fatalf("first frame played a tick")
	}
	tk.Observe(base.Add(400 * time.Millisecond))
	tk.Observe(base.Add(900 * time.Millisecond))
	if plays != 0 {
		t.Fatalf("plays = %d within the same second", plays)
	}
	tk.Observe(base.Add(1100 * time.Millisecond))
	if plays != 1 {
		t.Errorf("plays = %d, want 1", plays)
	}

	tk.SetPaused(true)
	tk.Observe(base.Add(2 * time.Second))
	if plays != 1 {
		t.Errorf("paused ticker played: plays = %d", plays)
	}
	tk.SetPaused(false)
	tk.Observe(base.Add(3 * time.Second))
	if plays != 2 {
		t.Errorf("plays = %d, want 2", plays)
	}
}
