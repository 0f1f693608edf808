// Command imggen renders a procedural noise or maze volume to an image file.
//
// Usage:
//
//	imggen -preset perlin -unit 1,32,32 -size 1,256,256 -seed spam -o perlin.png
//	imggen -preset animatedmaze -unit 1,16,16 -size 60,256,256 -o maze.gif
//
// Still formats (png, bmp, tif) write one depth slice; gif writes them all.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/imggen/render"
	"github.com/katalvlaran/imggen/volume"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "imggen:", err)
		}
		os.Exit(2)
	}
}

// run parses args, builds the source, fills the volume and writes it.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("imggen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		name    = fs.String("preset", "unitnoise", "source preset (see -list)")
		list    = fs.Bool("list", false, "print the preset names and exit")
		sizeArg = fs.String("size", "1,256,256", "fill size as depth,rows,cols")
		locArg  = fs.String("loc", "0,0,0", "fill location as z,y,x")
		unitArg = fs.String("unit", "1,32,32", "lattice spacing as z,y,x")
		seedArg = fs.String("seed", "", "seed: decimal integer or text; empty draws fresh entropy")
		out     = fs.String("o", "out.png", "output file; the extension picks the format")
		frame   = fs.Int("frame", 0, "depth slice written by still formats")
		gifCS   = fs.Int("gif-delay", render.DefaultDelay, "gif frame delay in hundredths of a second")
		verbose = fs.Bool("v", false, "debug logging")

		s settings
	)
	fs.IntVar(&s.points, "points", 8, "worley feature points")
	fs.IntVar(&s.octaves, "octaves", 0, "octave count; 0 keeps the preset default")
	fs.Float64Var(&s.width, "width", 0.2, "maze path width as a fraction of the col unit")
	fs.StringVar(&s.start, "start", "", "solved maze start (e.g. tl, 0,1,2)")
	fs.StringVar(&s.end, "end", "", "solved maze end (e.g. br)")
	fs.StringVar(&s.solver, "solver", "", "solved maze algorithm: branches or breadcrumb")
	fs.IntVar(&s.delay, "delay", 0, "animated maze: blank frames before the replay")
	fs.IntVar(&s.linger, "linger", 0, "animated maze: copies of the last frame")
	fs.BoolVar(&s.trace, "trace", true, "animated maze: keep earlier steps on later frames")

	if err := fs.Parse(args); err != nil {
		return err
	}
	for flagName, n := range map[string]float64{
		"frame": float64(*frame), "gif-delay": float64(*gifCS), "octaves": float64(s.octaves),
		"width": s.width, "delay": float64(s.delay), "linger": float64(s.linger),
	} {
		if !(n >= 0) {
			return fmt.Errorf("-%s: must be non-negative, got %v", flagName, n)
		}
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *list {
		fmt.Fprintln(stdout, strings.Join(presetNames(), "\n"))
		return nil
	}

	build, ok := presets[*name]
	if !ok {
		return fmt.Errorf("unknown preset %q (have %s)", *name, strings.Join(presetNames(), ", "))
	}
	size, err := parseTriple(*sizeArg)
	if err != nil {
		return fmt.Errorf("-size: %w", err)
	}
	loc, err := parseTriple(*locArg)
	if err != nil {
		return fmt.Errorf("-loc: %w", err)
	}
	if s.unit, err = parseUnit(*unitArg); err != nil {
		return fmt.Errorf("-unit: %w", err)
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "unit" {
			s.unitSet = true
		}
	})
	s.seed = parseSeed(*seedArg)

	src, err := build(s)
	if err != nil {
		return err
	}
	log.Debug("source built", "source", src.String())

	shape := volume.Shape{Depth: size[0], Rows: size[1], Cols: size[2]}
	at := volume.Loc{Z: loc[0], Y: loc[1], X: loc[2]}
	began := time.Now()
	v, err := src.Fill(shape, at)
	if err != nil {
		return err
	}
	log.Debug("filled", "preset", *name, "size", shape, "loc", at, "elapsed", time.Since(began))

	if err := render.WriteFile(*out, v, render.WithFrame(*frame), render.WithDelay(*gifCS)); err != nil {
		return err
	}
	log.Info("wrote image", "preset", *name, "size", v.Shape(), "loc", at, "path", *out)
	return nil
}
