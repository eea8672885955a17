package headless

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/iburimskiy/fractal-clock/internal/config"
	"github.com/iburimskiy/fractal-clock/internal/fractal"
	"github.com/iburimskiy/fractal-clock/internal/frame"
)

func testDriver(depth int) *frame.Driver {
	cfg := config.Default()
	cfg.Depth = depth
	return frame.NewDriver(cfg, clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestRunFrames(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		var seen int
		st, err := Run(ctx, testDriver(4), clockwork.NewRealClock(), Config{
			Hz: 1000, Frames: 3, Width: 200, Height: 200, Parallel: parallel,
		}, func(f frame.Frame) error {
			seen++
			return nil
		})
		cancel()
		if err != nil {
			t.Fatalf("parallel=%v: Run: %v", parallel, err)
		}
		if st.Frames != 3 || seen != 3 {
			t.Errorf("parallel=%v: frames = %d, sink saw %d, want 3", parallel, st.Frames, seen)
		}
		if want := uint64(3 * fractal.SegmentCount(4)); st.Segments != want {
			t.Errorf("parallel=%v: segments = %d, want %d", parallel, st.Segments, want)
		}
	}
}

func TestRunSinkError(t *testing.T) {
	boom := errors.New("boom")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	st, err := Run(ctx, testDriver(1), nil, Config{Hz: 1000, Width: 10, Height: 10}, func(frame.Frame) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if st.Frames != 0 {
		t.Errorf("frames = %d, want 0", st.Frames)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, testDriver(1), clockwork.NewFakeClock(), Config{Width: 10, Height: 10}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
