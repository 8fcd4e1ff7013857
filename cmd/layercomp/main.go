// Command layercomp composites image files and solid colours into one PNG.
//
// Usage:
//
//	layercomp [flags] layer [layer ...]
//	layercomp [flags] -manifest layers.json
//
// A layer is "path[,opacity=0.5][,mode=multiply]" or
// "solid:#rrggbb[@alpha]:WxH[,opacity=..][,mode=..]". The first layer is the
// base and sets the output size.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/composite"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	output   string
	interp   string
	workers  int
	verbose  bool
	cid      bool
	summary  bool
	manifest string
	layers   []string
}

func parseFlags(args []string, errOut io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("layercomp", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.output, "o", "composite.png", "output PNG file")
	fs.StringVar(&cfg.interp, "interp", "nearest", "resize kernel: nearest, approx-bilinear, bilinear, catmull-rom")
	fs.IntVar(&cfg.workers, "workers", 1, "compositing goroutines (0 = GOMAXPROCS)")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.BoolVar(&cfg.cid, "cid", false, "print the content id of the result")
	fs.BoolVar(&cfg.summary, "summary", false, "print size and dominant colour of the result")
	fs.StringVar(&cfg.manifest, "manifest", "", "JSON file listing the layers")
	fs.Usage = func() {
		fmt.Fprintln(errOut, "usage: layercomp [flags] layer [layer ...]")
		fmt.Fprintln(errOut, "  layer: path[,opacity=v][,mode=m] | solid:#rrggbb[@a]:WxH[,opacity=v][,mode=m]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	cfg.layers = fs.Args()

	switch {
	case cfg.manifest != "" && len(cfg.layers) > 0:
		return config{}, errors.New("give layers either as arguments or with -manifest, not both")
	case cfg.manifest == "" && len(cfg.layers) == 0:
		fs.Usage()
		return config{}, errors.New("no layers")
	}
	return cfg, nil
}

func run(args []string, out, errOut io.Writer) int {
	cfg, err := parseFlags(args, errOut)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(errOut, "layercomp:", err)
		}
		return 2
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
	composite.SetLogger(log)

	if err := compose(cfg, out, log); err != nil {
		log.Error("layercomp failed", "err", err)
		return 1
	}
	return 0
}

func compose(cfg config, out io.Writer, log *slog.Logger) error {
	interp, err := composite.ParseInterpolation(cfg.interp)
	if err != nil {
		return err
	}

	defs, err := collectLayers(cfg)
	if err != nil {
		return err
	}

	inputs := make([]composite.LayerInput, len(defs))
	for i, s := range defs {
		in, err := s.load()
		if err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
		inputs[i] = in
	}

	img, err := composite.Compose(inputs,
		composite.WithInterpolation(interp),
		composite.WithWorkers(cfg.workers),
	)
	if err != nil {
		return err
	}

	if err := img.SavePNG(cfg.output); err != nil {
		return err
	}
	log.Info("wrote composite", "path", cfg.output, "layers", len(inputs), "width", img.Width(), "height", img.Height())

	if cfg.cid {
		fmt.Fprintln(out, img.ContentID())
	}
	if cfg.summary {
		fmt.Fprintln(out, summarize(img))
	}
	return nil
}

func collectLayers(cfg config) ([]layerDef, error) {
	if cfg.manifest != "" {
		return readManifest(cfg.manifest)
	}
	defs := make([]layerDef, len(cfg.layers))
	for i, arg := range cfg.layers {
		s, err := parseLayerArg(arg)
		if err != nil {
			return nil, err
		}
		defs[i] = s
	}
	return defs, nil
}

// summarize reports the size and dominant colour of img.
func summarize(img *composite.Image) string {
	dom := dominantcolor.Find(img.NRGBA())
	c, _ := colorful.MakeColor(dom)
	return fmt.Sprintf("%dx%d dominant %s", img.Width(), img.Height(), c.Hex())
}
