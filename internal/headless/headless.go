// Package headless drives the frame loop without a window.
package headless

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/iburimskiy/fractal-clock/internal/frame"
)

type Config struct {
	Hz       int    // frames per second, 60 when unset
	Frames   uint64 // stop after N frames (0 = run until ctx is done)
	Width    int
	Height   int
	Parallel bool
}

// Stats summarises one run.
type Stats struct {
	Frames   uint64
	Segments uint64
	Elapsed  time.Duration
}

// Run generates a frame on every tick of clock and hands it to sink. It
// returns when cfg.Frames frames were produced, sink fails, or ctx is done.
func Run(ctx context.Context, d *frame.Driver, clock clockwork.Clock, cfg Config, sink func(frame.Frame) error) (Stats, error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	interval := time.Second / time.Duration(cfg.Hz)
	if interval <= 0 {
		return Stats{}, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	t := clock.NewTicker(interval)
	defer t.Stop()

	var st Stats
	start := clock.Now()
	for {
		select {
		case <-ctx.Done():
			st.Elapsed = clock.Since(start)
			return st, ctx.Err()
		case <-t.Chan():
			f, err := next(ctx, d, cfg)
			if err != nil {
				st.Elapsed = clock.Since(start)
				return st, err
			}
			if sink != nil {
				if err := sink(f); err != nil {
					st.Elapsed = clock.Since(start)
					return st, err
				}
			}
			st.Frames++
			st.Segments += uint64(len(f.Segments))
			if cfg.Frames > 0 && st.Frames >= cfg.Frames {
				st.Elapsed = clock.Since(start)
				return st, nil
			}
		}
	}
}

func next(ctx context.Context, d *frame.Driver, cfg Config) (frame.Frame, error) {
	if cfg.Parallel {
		return d.NextConcurrent(ctx, cfg.Width, cfg.Height)
	}
	return d.Next(cfg.Width, cfg.Height), nil
}
