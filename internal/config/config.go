package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Fractal Clock"

	// Antialiasing
	SampleCount = 16

	// 16,382 segments per frame at the default, 65,534 at the maximum
	DefaultDepth   = 12
	MaxDepth       = 15
	ThicknessScale = 3.0

	// Audible tick
	TickSampleRate = 44100
	TickFrequency  = 1760.0
	TickLength     = 30 * time.Millisecond
)

var ErrInvalid = errors.New("invalid config")

// Config is built once at startup and never mutated afterwards.
type Config struct {
	Title          string
	Width, Height  int
	Depth          int // depth ceiling of every frame
	ThicknessScale float64
	AntiAlias      bool
	Tick           bool
}

func Default() Config {
	return Config{
		Title:          WindowTitle,
		Width:          WindowWidth,
		Height:         WindowHeight,
		Depth:          DefaultDepth,
		ThicknessScale: ThicknessScale,
		AntiAlias:      SampleCount > 1,
	}
}

// Validate reports the first field outside its range.
func (c Config) Validate() error {
	if c.Depth < 0 || c.Depth > MaxDepth {
		return fmt.Errorf("%w: depth %d not in [0,%d]", ErrInvalid, c.Depth, MaxDepth)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.ThicknessScale <= 0 {
		return fmt.Errorf("%w: thickness scale %v", ErrInvalid, c.ThicknessScale)
	}
	return nil
}
