package game

import (
	"errors"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jonboulle/clockwork"

	"github.com/iburimskiy/fractal-clock/internal/chime"
	"github.com/iburimskiy/fractal-clock/internal/config"
	"github.com/iburimskiy/fractal-clock/internal/fractal"
	"github.com/iburimskiy/fractal-clock/internal/frame"
)

// fullscreenKey is the only input the window reacts to.
const fullscreenKey = ebiten.KeyF

// maxBatch bounds the segments per DrawTriangles call so the round caps stay
// well inside uint16 indices.
const maxBatch = 512

type Game struct {
	driver *frame.Driver
	tick   *chime.Ticker

	// reused between frames by drawLevel
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// New builds the game. A nil clock means wall-clock time.
func New(cfg config.Config, clock clockwork.Clock) (*Game, error) {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	g := &Game{
		driver: frame.NewDriver(cfg, clock),
		white:  white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
	if cfg.Tick {
		t, err := chime.NewSpeaker()
		if err != nil {
			return nil, err
		}
		g.tick = t
	}
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(fullscreenKey) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if g.tick != nil {
		g.tick.SetPaused(!ebiten.IsFocused())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	b := screen.Bounds()
	f := g.driver.Next(b.Dx(), b.Dy())
	aa := g.driver.Config().AntiAlias
	for _, l := range f.Levels() {
		g.drawLevel(screen, l, aa)
	}

	if g.tick != nil {
		g.tick.Observe(f.Time)
	}
}

// Layout follows the window so resizing and fullscreen rescale the clock.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// drawLevel strokes all segments of one depth as a few large paths, one
// DrawTriangles call per maxBatch segments.
func (g *Game) drawLevel(dst *ebiten.Image, l frame.Level, antialias bool) {
	op := &ebiten.DrawTrianglesOptions{AntiAlias: antialias}
	stroke := &vector.StrokeOptions{
		Width:   float32(l.Thickness),
		LineCap: vector.LineCapRound,
	}
	alpha := float32(frame.Color(l.Brightness).A) / 0xff

	for _, batch := range l.Batches(maxBatch) {
		var path vector.Path
		for _, s := range batch {
			path.MoveTo(float32(s.Start.X), float32(s.Start.Y))
			path.LineTo(float32(s.End.X), float32(s.End.Y))
		}
		g.vertices, g.indices = path.AppendVerticesAndIndicesForStroke(g.vertices[:0], g.indices[:0], stroke)
		for i := range g.vertices {
			v := &g.vertices[i]
			v.SrcX, v.SrcY = 1, 1
			v.ColorR, v.ColorG, v.ColorB, v.ColorA = 1, 1, 1, alpha
		}
		dst.DrawTriangles(g.vertices, g.indices, g.white, op)
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config, clock clockwork.Clock) error {
	g, err := New(cfg, clock)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("fractal clock: depth %d, %d segments per frame", cfg.Depth, fractal.SegmentCount(cfg.Depth))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
