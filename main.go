package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/fractal-clock/internal/config"
	"github.com/iburimskiy/fractal-clock/internal/export"
	"github.com/iburimskiy/fractal-clock/internal/frame"
	"github.com/iburimskiy/fractal-clock/internal/game"
	"github.com/iburimskiy/fractal-clock/internal/headless"
)

var (
	depth int
	tick  bool

	exportOut    string
	exportAt     string
	exportWidth  int
	exportHeight int

	headlessFrames   uint64
	headlessHz       int
	headlessParallel bool
)

var rootCmd = &cobra.Command{
	Use:           "fractal-clock",
	Short:         "Animated fractal clock. Press F to toggle fullscreen.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		cfg.Tick = tick
		return game.Run(cfg, clockwork.NewRealClock())
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write one frame as SVG",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run the frame loop without a window and report timings",
	Args:  cobra.NoArgs,
	RunE:  runHeadless,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&depth, "depth", "d", config.DefaultDepth, "Recursion depth")
	rootCmd.Flags().BoolVar(&tick, "tick", false, "Play a tick every second")

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (asks when empty)")
	exportCmd.Flags().StringVar(&exportAt, "at", "", "Render this time of day, e.g. 12:00:00.000 (default now)")
	exportCmd.Flags().IntVar(&exportWidth, "width", config.WindowWidth, "Canvas width")
	exportCmd.Flags().IntVar(&exportHeight, "height", config.WindowHeight, "Canvas height")

	headlessCmd.Flags().Uint64Var(&headlessFrames, "frames", 600, "Stop after N frames (0 = until interrupted)")
	headlessCmd.Flags().IntVar(&headlessHz, "hz", 60, "Frames per second")
	headlessCmd.Flags().BoolVar(&headlessParallel, "parallel", false, "Build the two root subtrees concurrently")

	rootCmd.AddCommand(exportCmd, headlessCmd)
}

func buildConfig() (config.Config, error) {
	cfg := config.Default()
	cfg.Depth = depth
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	clock := clockwork.NewRealClock()
	if exportAt != "" {
		at, err := frame.ParseClock(exportAt, time.Now())
		if err != nil {
			return err
		}
		clock = clockwork.NewFakeClockAt(at)
	}

	path := exportOut
	if path == "" {
		path, err = zenity.SelectFileSave(
			zenity.Title("Save Fractal Clock"),
			zenity.Filename("fractal-clock.svg"),
			zenity.ConfirmOverwrite(),
			zenity.FileFilters{{
				Name:     "SVG",
				Patterns: []string{"*.svg"},
			}},
		)
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				return nil
			}
			return err
		}
	}

	f := frame.NewDriver(cfg, clock).Next(exportWidth, exportHeight)
	if err := export.SaveSVG(path, f, exportWidth, exportHeight, cfg.Title); err != nil {
		return err
	}
	log.Printf("wrote %d segments at %s to %s", len(f.Segments), f.Time.Format("15:04:05.000"), path)
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	clock := clockwork.NewRealClock()
	st, err := headless.Run(ctx, frame.NewDriver(cfg, clock), clock, headless.Config{
		Hz:       headlessHz,
		Frames:   headlessFrames,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Parallel: headlessParallel,
	}, nil)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if st.Frames > 0 {
		log.Printf("%d frames, %d segments in %v (%.1f segments/frame)",
			st.Frames, st.Segments, st.Elapsed, float64(st.Segments)/float64(st.Frames))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
