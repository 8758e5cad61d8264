package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/1broseidon/dragzone/internal/config"
	"github.com/1broseidon/dragzone/internal/daemon"
	"github.com/1broseidon/dragzone/internal/geom"
	"github.com/1broseidon/dragzone/internal/platform"
	"github.com/1broseidon/dragzone/internal/preview"
	"gopkg.in/yaml.v3"
)

type computeOutput struct {
	Titlebar    string      `json:"titlebar" yaml:"titlebar"`
	Width       int         `json:"window_width" yaml:"window_width"`
	Height      int         `json:"height" yaml:"height"`
	Scale       float64     `json:"scale" yaml:"scale"`
	Zones       []geom.Rect `json:"zones" yaml:"zones"`
	ScaledZones []geom.Rect `json:"scaled_zones,omitempty" yaml:"scaled_zones,omitempty"`
}

func runCompute(args []string) int {
	fs := flag.NewFlagSet("compute", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: dragzone compute [--titlebar NAME] [--width N | --window ID | --title TEXT] [--format text|json|yaml]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Compute the drag zones of a title bar profile. Without --width the")
		fmt.Fprintln(os.Stderr, "width (and scale, when not fixed) is measured from an X11 window.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	var profile profileOptions
	var target targetOptions
	profile.register(fs)
	target.register(fs)
	width := fs.Int("width", 0, "Window content width in pixels (skips X11)")
	format := fs.String("format", "text", "Output format: text, json or yaml")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "compute takes no arguments")
		fs.Usage()
		return 2
	}
	switch *format {
	case "text", "json", "yaml":
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q (want text, json or yaml)\n", *format)
		return 2
	}

	out, err := computeFromFlags(&profile, &target, *width)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := writeCompute(os.Stdout, out, *format); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runPreview(args []string) int {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: dragzone preview [--titlebar NAME] [--width N | --window ID | --title TEXT] [--cols N]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Draw the title bar with its exclusions and drag zones.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	var profile profileOptions
	var target targetOptions
	profile.register(fs)
	target.register(fs)
	width := fs.Int("width", 0, "Window content width in pixels (skips X11)")
	cols := fs.Int("cols", 0, "Canvas width in characters (default: terminal width)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "preview takes no arguments")
		fs.Usage()
		return 2
	}

	res, err := loadConfig(profile.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	name, tb, err := profile.profile(res.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	out, err := computeProfile(res.Config, name, tb, &target, *width)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	columns := *cols
	if columns <= 0 {
		columns = preview.TerminalColumns(80)
	}
	title := fmt.Sprintf("%s  %dx%d", name, out.Width, tb.Height)
	fmt.Print(preview.Render(title, out.Width, tb.Height, out.Zones, tb.Rects(), out.Scale, columns))
	return 0
}

func computeFromFlags(profile *profileOptions, target *targetOptions, width int) (computeOutput, error) {
	res, err := loadConfig(profile.configPath)
	if err != nil {
		return computeOutput{}, err
	}
	name, tb, err := profile.profile(res.Config)
	if err != nil {
		return computeOutput{}, err
	}
	return computeProfile(res.Config, name, tb, target, width)
}

// computeProfile runs the applier against a static backend so that compute
// and apply share one code path without publishing anything.
func computeProfile(cfg *config.Config, name string, tb config.Titlebar, target *targetOptions, width int) (computeOutput, error) {
	logger := newLogger(cfg)
	scale := tb.Scale
	if width <= 0 {
		var err error
		width, scale, err = measureWindow(cfg, tb, target, logger)
		if err != nil {
			return computeOutput{}, err
		}
	}

	backend := platform.NewStaticBackend(width, scale)
	applier := daemon.NewApplier(backend, daemon.ApplierConfig{
		Name:     name,
		Titlebar: tb,
		Logger:   logger,
	})
	result, err := applier.Apply(platform.StaticWindow)
	if err != nil {
		return computeOutput{}, err
	}

	out := computeOutput{
		Titlebar: name,
		Width:    result.Width,
		Height:   tb.Height,
		Scale:    result.Scale,
		Zones:    result.Zones,
	}
	if out.Zones == nil {
		out.Zones = []geom.Rect{}
	}
	if result.Scale != 1 {
		out.ScaledZones = result.Scaled
	}
	return out, nil
}

func measureWindow(cfg *config.Config, tb config.Titlebar, target *targetOptions, logger *slog.Logger) (int, float64, error) {
	backend, err := platform.NewDisplayBackend(cfg.Display, cfg.PropertyName)
	if err != nil {
		return 0, 0, fmt.Errorf("no --width given and X11 is unavailable: %w", err)
	}
	defer backend.Close()

	id, err := target.resolve(backend)
	if err != nil {
		return 0, 0, err
	}
	width, err := backend.ContentWidth(id)
	if err != nil {
		return 0, 0, err
	}
	scale := tb.Scale
	if scale <= 0 {
		scale, err = backend.ScaleFactor(id)
		if err != nil {
			logger.Warn("scale detection failed, using 1", "window_id", uint32(id), "error", err)
			scale = 1
		}
	}
	logger.Debug("measured window", "window_id", uint32(id), "width", width, "scale", scale)
	return width, scale, nil
}

func writeCompute(w io.Writer, out computeOutput, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		data, err := yaml.Marshal(out)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "text":
		fmt.Fprintf(w, "titlebar: %s\n", out.Titlebar)
		fmt.Fprintf(w, "window:   %dx%d (scale %.2f)\n", out.Width, out.Height, out.Scale)
		writeRects(w, "zones", out.Zones)
		if len(out.ScaledZones) > 0 {
			writeRects(w, "scaled", out.ScaledZones)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeRects(w io.Writer, label string, rects []geom.Rect) {
	fmt.Fprintf(w, "%s:\n", label)
	if len(rects) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, r := range rects {
		fmt.Fprintf(w, "  x=%-5d y=%-5d w=%-5d h=%d\n", r.X, r.Y, r.Width, r.Height)
	}
}
