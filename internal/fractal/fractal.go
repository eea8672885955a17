// Package fractal builds the line segments of a fractal clock for one frame.
//
// Coordinates are screen space: +x right, +y down. An angle of -0.25 turns
// therefore points straight up, towards 12 o'clock.
package fractal

import (
	"math"
	"time"
)

// DefaultThicknessScale is the stroke width of a root arm.
const DefaultThicknessScale = 3.0

// Point is a position in screen space.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// LineSegment is one arm of the tree.
type LineSegment struct {
	Start      Point
	End        Point
	Thickness  float64
	Brightness float64 // (0,1], 1 at the root
}

// ClockTime is the part of the wall clock the hands depend on.
type ClockTime struct {
	Minute      int
	Second      int
	Millisecond int
}

// FromTime samples t in its own location.
func FromTime(t time.Time) ClockTime {
	return ClockTime{
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}
}

// SecondsTurn is the seconds hand angle in full turns, 12 o'clock at -0.25.
func (c ClockTime) SecondsTurn() float64 {
	millisFrac := float64(c.Millisecond) / 1000
	return (float64(c.Second)/60 - 0.25) + millisFrac/60
}

// MinutesTurn is the minutes hand angle in full turns, 12 o'clock at -0.25.
func (c ClockTime) MinutesTurn() float64 {
	millisFrac := float64(c.Millisecond) / 1000
	return (float64(c.Minute)/60 - 0.25) + float64(c.Second)/3600 + millisFrac/3_600_000
}

// Options tunes segment attributes. The zero value uses the defaults.
type Options struct {
	ThicknessScale float64
}

func (o Options) thicknessScale() float64 {
	if o.ThicknessScale <= 0 {
		return DefaultThicknessScale
	}
	return o.ThicknessScale
}

// SegmentCount returns how many segments a tree of the given depth has.
func SegmentCount(depth int) int {
	return 2 * (1<<(depth+1) - 1)
}

// Generate returns the whole tree for one frame. depth must be non-negative;
// pass the same value as ceiling at the root.
func Generate(center Point, radius float64, t ClockTime, depth, ceiling int) []LineSegment {
	return GenerateWith(Options{}, center, radius, t, depth, ceiling)
}

// GenerateWith is Generate with explicit options.
func GenerateWith(opts Options, center Point, radius float64, t ClockTime, depth, ceiling int) []LineSegment {
	return GenerateIntoWith(make([]LineSegment, 0, SegmentCount(depth)), opts, center, radius, t, depth, ceiling)
}

// GenerateInto appends the tree to dst and returns the extended slice.
func GenerateInto(dst []LineSegment, center Point, radius float64, t ClockTime, depth, ceiling int) []LineSegment {
	return GenerateIntoWith(dst, Options{}, center, radius, t, depth, ceiling)
}

// GenerateIntoWith is GenerateInto with explicit options.
func GenerateIntoWith(dst []LineSegment, opts Options, center Point, radius float64, t ClockTime, depth, ceiling int) []LineSegment {
	g := generator{t: t, radius: radius, ceiling: ceiling, scale: opts.thicknessScale()}
	g.node(&dst, center, depth, 0)
	return dst
}

// generator holds what stays constant across one recursive call chain.
type generator struct {
	t       ClockTime
	radius  float64
	ceiling int
	scale   float64
}

func (g *generator) node(acc *[]LineSegment, origin Point, depth int, offset float64) {
	sTheta := g.t.SecondsTurn() + offset
	sEnd := g.arm(acc, origin, sTheta, depth)
	if depth > 0 {
		g.node(acc, sEnd, depth-1, sTheta)
	}

	mTheta := g.t.MinutesTurn() + offset
	mEnd := g.arm(acc, origin, mTheta, depth)
	if depth > 0 {
		g.node(acc, mEnd, depth-1, mTheta)
	}
}

// arm appends one segment of angle theta (full turns) and returns its tip.
func (g *generator) arm(acc *[]LineSegment, origin Point, theta float64, depth int) Point {
	end := origin.Add(polar(g.radius, theta))
	brightness := g.brightness(depth)
	*acc = append(*acc, LineSegment{
		Start:      origin,
		End:        end,
		Thickness:  brightness * g.scale,
		Brightness: brightness,
	})
	return end
}

func (g *generator) brightness(depth int) float64 {
	return float64(1+depth) / float64(1+g.ceiling)
}

func polar(r, theta float64) Point {
	rad := theta * 2 * math.Pi
	return Point{X: r * math.Cos(rad), Y: r * math.Sin(rad)}
}
