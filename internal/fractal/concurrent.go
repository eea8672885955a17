package fractal

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// GenerateConcurrent builds the seconds and minutes subtrees of the root on
// separate goroutines. The result is identical to Generate.
func GenerateConcurrent(ctx context.Context, center Point, radius float64, t ClockTime, depth, ceiling int) ([]LineSegment, error) {
	return GenerateConcurrentWith(ctx, Options{}, center, radius, t, depth, ceiling)
}

// GenerateConcurrentWith is GenerateConcurrent with explicit options.
func GenerateConcurrentWith(ctx context.Context, opts Options, center Point, radius float64, t ClockTime, depth, ceiling int) ([]LineSegment, error) {
	g := generator{t: t, radius: radius, ceiling: ceiling, scale: opts.thicknessScale()}

	var sArm, mArm []LineSegment
	sTheta := t.SecondsTurn()
	mTheta := t.MinutesTurn()
	sEnd := g.arm(&sArm, center, sTheta, depth)
	mEnd := g.arm(&mArm, center, mTheta, depth)
	if depth == 0 {
		return append(sArm, mArm...), nil
	}

	sub := SegmentCount(depth - 1)
	secs := make([]LineSegment, 0, sub)
	mins := make([]LineSegment, 0, sub)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.node(&secs, sEnd, depth-1, sTheta)
		return nil
	})
	eg.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.node(&mins, mEnd, depth-1, mTheta)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make([]LineSegment, 0, SegmentCount(depth))
	out = append(out, sArm...)
	out = append(out, secs...)
	out = append(out, mArm...)
	out = append(out, mins...)
	return out, nil
}
