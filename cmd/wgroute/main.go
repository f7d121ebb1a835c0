// Command wgroute routes waveguides described in a job file and writes the
// resulting layout as SVG.
//
// Usage:
//
//	wgroute [-c job.toml] [-o out.svg] [-merge] [-v]
//
// A job file lists waveguides by their waypoints:
//
//	[layout]
//	dbu = 0.001
//
//	[output]
//	file = "routes.svg"
//
//	[[waveguides]]
//	layer = "1/0"
//	points = [[0, 0], [100, 0], [100, 20], [10, 5]]
//	width = 0.5
//	radius = 5
//	taper_width = 3
//	taper_length = 10
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"honnef.co/go/waveguide"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "wgroute:", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("wgroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgFile := fs.String("c", "", "job file (default ./wgroute.toml)")
	outFile := fs.String("o", "", "output file, overrides the job file")
	merge := fs.Bool("merge", false, "merge overlapping polygons per layer")
	verbose := fs.Bool("v", false, "log debug messages")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	waveguide.SetLogger(log)
	defer waveguide.SetLogger(nil)

	v := viper.New()
	setDefaults(v)
	if *cfgFile != "" {
		v.SetConfigFile(*cfgFile)
	}
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading job file: %w", err)
	}
	j, err := loadJob(v)
	if err != nil {
		return err
	}
	if *outFile != "" {
		j.Output = *outFile
	}
	if *merge {
		j.Merge = true
	}

	cell, err := route(j, log)
	if err != nil {
		return err
	}

	f, err := os.Create(j.Output)
	if err != nil {
		return err
	}
	if err := cell.WriteSVG(f, waveguide.SVGOptions{MaxPrecision: j.Precision, Merge: j.Merge}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info("wrote layout", slog.String("file", j.Output), slog.Int("polygons", cell.Len()))
	return nil
}

// route lays out every waveguide and arc of j into a new cell. The
// waveguides are independent, so they are computed in parallel.
func route(j *job, log *slog.Logger) (*waveguide.Cell, error) {
	cell := waveguide.NewCell(j.Cell, j.DBU)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, wc := range j.Waveguides {
		g.Go(func() error {
			layer, err := waveguide.ParseLayer(wc.Layer)
			if err != nil {
				return fmt.Errorf("%s: %w", wc.Name, err)
			}
			pts, err := wc.points()
			if err != nil {
				return fmt.Errorf("%s: %w", wc.Name, err)
			}
			if log.Enabled(context.Background(), slog.LevelDebug) {
				if path, err := waveguide.RoundPath(pts, wc.Radius); err == nil {
					log.Debug("rounded path", slog.String("name", wc.Name),
						slog.Int("elements", len(path)),
						slog.String("svg", waveguide.PathSVG(path, waveguide.SVGOptions{MaxPrecision: j.Precision})))
				}
			}
			if _, err := waveguide.LayoutWaveguide(cell, layer, pts, wc.width(), wc.Radius, wc.options(j)...); err != nil {
				return fmt.Errorf("%s: %w", wc.Name, err)
			}
			return nil
		})
	}
	for i, ac := range j.Arcs {
		g.Go(func() error {
			layer, err := waveguide.ParseLayer(ac.Layer)
			if err != nil {
				return fmt.Errorf("arc %d: %w", i, err)
			}
			spec, err := ac.spec(j)
			if err != nil {
				return fmt.Errorf("arc %d: %w", i, err)
			}
			poly, err := waveguide.ArcRibbon(spec)
			if err != nil {
				return fmt.Errorf("arc %d: %w", i, err)
			}
			if poly.IsEmpty() {
				return nil
			}
			return cell.Insert(poly, layer)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cell, nil
}
