package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/1broseidon/dragzone/internal/config"
	"github.com/1broseidon/dragzone/internal/geom"
	"github.com/1broseidon/dragzone/internal/platform"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "compute":
		os.Exit(runCompute(os.Args[2:]))
	case "preview":
		os.Exit(runPreview(os.Args[2:]))
	case "apply":
		os.Exit(runApply(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: dragzone <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  compute             Print the drag zones of a title bar")
	fmt.Fprintln(w, "  preview             Draw a title bar and its drag zones in the terminal")
	fmt.Fprintln(w, "  apply               Publish drag zones on a window (--watch to follow resizes)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "  config explain      Show where a config value comes from")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start the MCP server (stdio)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'dragzone <command> --help' for command-specific options.")
}

func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
}

func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.LoadWithSources()
	}
	return config.LoadFromPath(path)
}

// rectList collects repeated --exclude x,y,w,h flags.
type rectList []geom.Rect

func (l *rectList) String() string {
	parts := make([]string, len(*l))
	for i, r := range *l {
		parts[i] = fmt.Sprintf("%d,%d,%d,%d", r.X, r.Y, r.Width, r.Height)
	}
	return strings.Join(parts, " ")
}

func (l *rectList) Set(value string) error {
	fields := strings.Split(value, ",")
	if len(fields) != 4 {
		return fmt.Errorf("expected x,y,width,height, got %q", value)
	}
	var n [4]int
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return fmt.Errorf("invalid rectangle %q: %w", value, err)
		}
		n[i] = v
	}
	*l = append(*l, geom.Rect{X: n[0], Y: n[1], Width: n[2], Height: n[3]})
	return nil
}

// optionalInt is an int flag that remembers whether it was given.
type optionalInt struct {
	value int
	set   bool
}

func (o *optionalInt) String() string {
	if o == nil || !o.set {
		return ""
	}
	return strconv.Itoa(o.value)
}

func (o *optionalInt) Set(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	o.value, o.set = v, true
	return nil
}

// profileOptions are the flags that select and adjust a titlebar profile.
type profileOptions struct {
	configPath string
	titlebar   string
	height     optionalInt
	indent     optionalInt
	scale      float64
	excludes   rectList
}

func (o *profileOptions) register(fs *flag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "Config file path (default: ~/.config/dragzone/config.yaml)")
	fs.StringVar(&o.titlebar, "titlebar", "", "Titlebar profile (default: default_titlebar)")
	fs.Var(&o.height, "height", "Override the profile's title bar height")
	fs.Var(&o.indent, "indent", "Override the profile's left indent")
	fs.Float64Var(&o.scale, "scale", 0, "Fixed scale factor (default: profile, then monitor)")
	fs.Var(&o.excludes, "exclude", "Extra exclusion as x,y,width,height (repeatable)")
}

// profile resolves the selected titlebar and applies flag overrides. The
// returned titlebar never aliases the config's exclusion slice.
func (o *profileOptions) profile(cfg *config.Config) (string, config.Titlebar, error) {
	tb, err := cfg.Titlebar(o.titlebar)
	if err != nil {
		return "", config.Titlebar{}, err
	}
	name := strings.TrimSpace(o.titlebar)
	if name == "" {
		name = cfg.DefaultTitlebar
	}
	if o.height.set {
		if o.height.value < 0 {
			return "", config.Titlebar{}, fmt.Errorf("--height must be >= 0, got %d", o.height.value)
		}
		tb.Height = o.height.value
	}
	if o.indent.set {
		if o.indent.value < 0 {
			return "", config.Titlebar{}, fmt.Errorf("--indent must be >= 0, got %d", o.indent.value)
		}
		tb.LeftIndent = o.indent.value
	}
	if o.scale < 0 {
		return "", config.Titlebar{}, fmt.Errorf("--scale must be >= 0")
	}
	if o.scale > 0 {
		tb.Scale = o.scale
	}
	tb.Exclusions = slices.Clone(tb.Exclusions)
	for i, r := range o.excludes {
		tb.Exclusions = append(tb.Exclusions, config.Exclusion{
			Name:   fmt.Sprintf("flag-%d", i+1),
			X:      r.X,
			Y:      r.Y,
			Width:  r.Width,
			Height: r.Height,
		})
	}
	return name, tb, nil
}

// targetOptions pick the window to measure or publish on.
type targetOptions struct {
	window string
	title  string
}

func (o *targetOptions) register(fs *flag.FlagSet) {
	fs.StringVar(&o.window, "window", "", "Window id, decimal or 0x-prefixed (default: active window)")
	fs.StringVar(&o.title, "title", "", "Select the first window whose title contains this text")
}

func (o *targetOptions) resolve(backend platform.Backend) (platform.WindowID, error) {
	switch {
	case o.window != "":
		return parseWindowID(o.window)
	case o.title != "":
		return backend.FindWindow(o.title)
	default:
		return backend.ActiveWindow()
	}
}

func parseWindowID(s string) (platform.WindowID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid window id %q: %w", s, err)
	}
	if v == 0 {
		return 0, fmt.Errorf("invalid window id %q", s)
	}
	return platform.WindowID(v), nil
}
