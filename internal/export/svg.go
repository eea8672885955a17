// Package export writes frames to files.
package export

import (
	"fmt"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/iburimskiy/fractal-clock/internal/frame"
)

// svgo works in integers; coordinates are written at this many units per pixel
// inside a scaled group.
const precision = 100

// WriteSVG renders f on a black width x height canvas.
func WriteSVG(w io.Writer, f frame.Frame, width, height int, title string) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title(title)
	canvas.Rect(0, 0, width, height, "fill:black")

	canvas.Scale(1.0 / precision)
	for _, s := range f.Segments {
		canvas.Line(
			scaled(s.Start.X), scaled(s.Start.Y),
			scaled(s.End.X), scaled(s.End.Y),
			fmt.Sprintf("stroke:white;stroke-opacity:%.4f;stroke-width:%d;stroke-linecap:round",
				s.Brightness, scaled(s.Thickness)),
		)
	}
	canvas.Gend()
	canvas.End()
}

// SaveSVG writes the frame to path.
func SaveSVG(path string, f frame.Frame, width, height int, title string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	WriteSVG(out, f, width, height, title)
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func scaled(v float64) int {
	return int(math.Round(v * precision))
}
