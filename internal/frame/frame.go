// Package frame turns a clock sample and a viewport into the segments of one
// frame. It knows nothing about windows; the game and the exporters draw what
// it returns.
package frame

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/iburimskiy/fractal-clock/internal/config"
	"github.com/iburimskiy/fractal-clock/internal/fractal"
)

// Frame is everything needed to draw one picture.
type Frame struct {
	Time     time.Time
	Center   fractal.Point
	Radius   float64
	Depth    int // depth ceiling the segments were built with
	Segments []fractal.LineSegment
}

// Level is every segment of one recursion depth. They share thickness and
// brightness, so a renderer can stroke them as a single path.
type Level struct {
	Depth      int
	Thickness  float64
	Brightness float64
	Segments   []fractal.LineSegment
}

// Batches splits the level into runs of at most n segments.
func (l Level) Batches(n int) [][]fractal.LineSegment {
	if n <= 0 {
		n = len(l.Segments)
	}
	var out [][]fractal.LineSegment
	for start := 0; start < len(l.Segments); start += n {
		out = append(out, l.Segments[start:min(start+n, len(l.Segments))])
	}
	return out
}

// Levels groups f.Segments by recursion depth, leaves first, so drawing them
// in order leaves the brighter arms on top.
func (f Frame) Levels() []Level {
	levels := make([]Level, f.Depth+1)
	for i := range levels {
		levels[i].Depth = i
	}
	for _, s := range f.Segments {
		d := int(math.Round(s.Brightness*float64(f.Depth+1))) - 1
		if d < 0 {
			d = 0
		} else if d > f.Depth {
			d = f.Depth
		}
		l := &levels[d]
		if len(l.Segments) == 0 {
			l.Thickness = s.Thickness
			l.Brightness = s.Brightness
			l.Segments = make([]fractal.LineSegment, 0, 2<<(f.Depth-d))
		}
		l.Segments = append(l.Segments, s)
	}
	return levels
}

// Driver samples the clock once per call to Next.
type Driver struct {
	cfg   config.Config
	clock clockwork.Clock
}

func NewDriver(cfg config.Config, clock clockwork.Clock) *Driver {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Driver{cfg: cfg, clock: clock}
}

// Config is the configuration the driver was built with.
func (d *Driver) Config() config.Config { return d.cfg }

// Next builds the frame for a width x height viewport at the current time.
func (d *Driver) Next(width, height int) Frame {
	return d.At(d.clock.Now(), width, height)
}

// At builds the frame for a given instant.
func (d *Driver) At(now time.Time, width, height int) Frame {
	center, radius := Viewport(width, height, d.cfg.Depth)
	segs := fractal.GenerateWith(
		fractal.Options{ThicknessScale: d.cfg.ThicknessScale},
		center, radius, fractal.FromTime(now), d.cfg.Depth, d.cfg.Depth,
	)
	return Frame{Time: now, Center: center, Radius: radius, Depth: d.cfg.Depth, Segments: segs}
}

// NextConcurrent is Next with the two root subtrees built in parallel.
func (d *Driver) NextConcurrent(ctx context.Context, width, height int) (Frame, error) {
	now := d.clock.Now()
	center, radius := Viewport(width, height, d.cfg.Depth)
	segs, err := fractal.GenerateConcurrentWith(ctx,
		fractal.Options{ThicknessScale: d.cfg.ThicknessScale},
		center, radius, fractal.FromTime(now), d.cfg.Depth, d.cfg.Depth,
	)
	if err != nil {
		return Frame{}, err
	}
	return Frame{Time: now, Center: center, Radius: radius, Depth: d.cfg.Depth, Segments: segs}, nil
}

// Viewport returns the tree origin and arm length for a viewport. A ceiling
// of 0 is treated as 1.
func Viewport(width, height, ceiling int) (fractal.Point, float64) {
	if ceiling < 1 {
		ceiling = 1
	}
	minDim := float64(min(width, height))
	center := fractal.Point{X: float64(width) / 2, Y: float64(height) / 2}
	return center, minDim / float64(ceiling)
}

// Color is white with brightness as alpha.
func Color(brightness float64) color.NRGBA {
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(clamp01(brightness)*255 + 0.5)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var clockLayouts = []string{"15:04:05.000", "15:04:05", "15:04"}

// ParseClock reads a wall-clock time such as "12:00:00.000" and places it on
// day's date in day's location.
func ParseClock(s string, day time.Time) (time.Time, error) {
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		y, m, d := day.Date()
		return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), day.Location()), nil
	}
	return time.Time{}, fmt.Errorf("parse clock %q: want HH:MM[:SS[.mmm]]", s)
}
