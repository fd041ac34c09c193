package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/erinpentecost/paintref/internal/config"
	"github.com/erinpentecost/paintref/internal/hue"
	"github.com/erinpentecost/paintref/internal/quantize"
	"github.com/erinpentecost/paintref/internal/render"
	"github.com/erinpentecost/paintref/internal/stats"
	"github.com/erinpentecost/paintref/internal/transform"
)

func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	q := quantize.New()
	swapper := hue.NewSwapper(cfg.Seed)
	catalog, err := transform.NewCatalog(q, swapper).Only(cfg.Only)
	if err != nil {
		return &config.ConfigError{Key: "only", Err: err}
	}

	fmt.Fprintf(out, ">> Loading Image\n")
	fmt.Fprintf(out, "   %+v\n", cfg)
	set, err := render.Load(cfg.Image, render.Options{
		Threads:      cfg.Threads,
		MaxDimension: cfg.MaxDimension,
		Out:          out,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "   Image is %d wide x %d high for pixel count of %d\n",
		set.Width, set.Height, set.PixelCount())

	var (
		dominant  []*stats.HueDetails
		reportErr error
	)
	if cfg.DominantHues > 0 || cfg.Report {
		fmt.Fprintf(out, ">> Pass 1 to gather statistics\n")
		st := stats.NewCollector(q).Collect(set.Source())
		fmt.Fprintf(out, "   Found %d distinct hues, average hue %.1f\n", len(st.HueOnly), st.AverageHue)
		if cfg.Report {
			path := cfg.Image + ".hues.yaml"
			fmt.Fprintf(out, " -> Writing hue report %q\n", path)
			// A failed report does not stop the images; it is joined with
			// any write failures at the end.
			if err := st.Report(cfg.Image).Write(path); err != nil {
				reportErr = &render.OutputError{Path: path, Err: err}
			}
		}
		dominant = st.Top(cfg.DominantHues)
	}

	fmt.Fprintf(out, ">> Registering %d fixed transformations\n", len(catalog))
	for _, t := range catalog {
		set.InitOutput(t.Name, t, nil)
	}

	if len(dominant) > 0 {
		fmt.Fprintf(out, ">> Registering transformations for %d most-used hues\n", len(dominant))
		for i, d := range dominant {
			h := d.Hue
			t := transform.HueRange(q, i, h)
			set.InitOutput(t.Name, t, &h)
		}
	}

	fmt.Fprintf(out, ">> Pass 2 to process output images\n")
	if err := set.Process(ctx); err != nil {
		return err
	}
	if err := set.PostProcess(); err != nil {
		return err
	}
	if n := swapper.Len(); n > 0 {
		fmt.Fprintf(out, "   Randomized %d distinct hues\n", n)
	}

	fmt.Fprintf(out, ">> Writing output\n")
	return errors.Join(reportErr, set.WriteFiles(ctx))
}
