// Command jfademo seeds five markers on a zero grid, fills it with the jump
// flooding driver and prints the absolute output values, one row per line.
//
// Markers: 6 at (0,0), 2 at (0,H-1), 3 at (W-1,H-1), 4 at (W-1,0) and
// 5 at (0,15) (clamped to the last row on short grids), in that order, so a
// later marker overwrites an earlier one sharing its cell. The sentinel is -1
// and the predicate is v > 0 || v == -1, so the grid border is itself a
// boundary.
//
// Usage:
//
//	jfademo [-width 32] [-height 32] [-png field.png] [-scale 8] [-v]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/katalvlaran/jumpflood/field"
	"github.com/katalvlaran/jumpflood/jfa"
)

const sentinel = -1

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "jfademo:", err)
		os.Exit(1)
	}
}

// config holds the parsed command-line flags.
type config struct {
	width, height int
	pngPath       string
	scale         int
	verbose       bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("jfademo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.width, "width", 32, "grid width")
	fs.IntVar(&cfg.height, "height", 32, "grid height")
	fs.StringVar(&cfg.pngPath, "png", "", "write the normalized distance field to this PNG file")
	fs.IntVar(&cfg.scale, "scale", 8, "PNG pixels per grid cell")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// seed builds the zero grid with the five demo markers, set in the order
// 6, 2, 3, 4, 5: on grids small enough for markers to share a cell, the
// later one wins. w and h must be positive.
func seed(w, h int) []int {
	values := make([]int, w*h)
	set := func(x, y, v int) { values[y*w+x] = v }
	set(0, 0, 6)
	set(0, h-1, 2)
	set(w-1, h-1, 3)
	set(w-1, 0, 4)
	set(0, min(15, h-1), 5)

	return values
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.width <= 0 || cfg.height <= 0 || cfg.width > math.MaxInt/cfg.height {
		return fmt.Errorf("build driver: %w: got %d×%d", jfa.ErrInvalidDimensions, cfg.width, cfg.height)
	}

	opts := []jfa.Option{}
	if cfg.verbose {
		opts = append(opts, jfa.WithLogger(slog.New(slog.NewTextHandler(stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug}))))
	}
	d, err := jfa.New(cfg.width, cfg.height, seed(cfg.width, cfg.height), sentinel, opts...)
	if err != nil {
		return fmt.Errorf("build driver: %w", err)
	}
	res, err := d.Run(func(v int) bool { return v > 0 || v == sentinel })
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	for y := 0; y < res.Height; y++ {
		for x := 0; x < res.Width; x++ {
			v := res.At(x, y)
			if v < 0 {
				v = -v
			}
			fmt.Fprintf(stdout, "%d ", v)
		}
		fmt.Fprintln(stdout)
	}

	if cfg.pngPath == "" {
		return nil
	}

	return writePNG(cfg.pngPath, res, cfg.scale)
}

func writePNG(path string, res *jfa.Result[int], scale int) error {
	img, err := field.Render(field.Normalize(field.Distances(res)), scale)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = png.Encode(f, img); err != nil {
		_ = f.Close()

		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}
