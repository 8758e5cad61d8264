package config

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/1broseidon/dragzone/internal/geom"
)

// DefaultPropertyName is the X11 window property drag regions are published on.
const DefaultPropertyName = "_DRAGZONE_REGIONS"

// Exclusion is a named control inside a title bar that must stay clickable.
type Exclusion struct {
	Name   string `yaml:"name" json:"name"`
	X      int    `yaml:"x" json:"x"`
	Y      int    `yaml:"y" json:"y"`
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
}

// Rect returns the exclusion's rectangle.
func (e Exclusion) Rect() geom.Rect {
	return geom.Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Titlebar describes a custom title bar: a strip at the top of the window
// content and the controls drawn inside it.
type Titlebar struct {
	Height     int         `yaml:"height"`
	LeftIndent int         `yaml:"left_indent"`
	Scale      float64     `yaml:"scale"` // 0 = detect from the monitor
	Exclusions []Exclusion `yaml:"exclusions"`
}

// Rects returns the exclusion rectangles in declaration order.
func (t Titlebar) Rects() []geom.Rect {
	out := make([]geom.Rect, len(t.Exclusions))
	for i, ex := range t.Exclusions {
		out[i] = ex.Rect()
	}
	return out
}

// Config is the effective dragzone configuration.
type Config struct {
	LogLevel        string              `yaml:"log_level"`
	Display         string              `yaml:"display,omitempty"`
	PropertyName    string              `yaml:"property_name"`
	DefaultTitlebar string              `yaml:"default_titlebar"`
	Titlebars       map[string]Titlebar `yaml:"titlebars"`
}

// DefaultConfig returns the built-in configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:        "info",
		PropertyName:    DefaultPropertyName,
		DefaultTitlebar: DefaultBuiltinTitlebar,
		Titlebars:       BuiltinTitlebars(),
	}
}

// Titlebar returns the named profile, or the default profile when name is
// empty.
func (c *Config) Titlebar(name string) (Titlebar, error) {
	if strings.TrimSpace(name) == "" {
		name = c.DefaultTitlebar
	}
	tb, ok := c.Titlebars[name]
	if !ok {
		return Titlebar{}, fmt.Errorf("unknown titlebar %q (available: %s)", name, strings.Join(c.TitlebarNames(), ", "))
	}
	return tb, nil
}

// TitlebarNames returns the configured profile names, sorted.
func (c *Config) TitlebarNames() []string {
	names := make([]string, 0, len(c.Titlebars))
	for name := range c.Titlebars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SlogLevel maps log_level onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) Validate() error {
	if c.LogLevel != "debug" && c.LogLevel != "info" && c.LogLevel != "warning" && c.LogLevel != "error" {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	if strings.TrimSpace(c.PropertyName) == "" {
		return &ValidationError{Path: "property_name", Err: fmt.Errorf("property_name must not be empty")}
	}
	if len(c.Titlebars) == 0 {
		return &ValidationError{Path: "titlebars", Err: fmt.Errorf("titlebars must not be empty")}
	}
	for _, name := range c.TitlebarNames() {
		tb := c.Titlebars[name]
		if err := validateTitlebar(&tb); err != nil {
			if verr, ok := err.(*ValidationError); ok {
				verr.Path = "titlebars." + name + "." + verr.Path
				return verr
			}
			return &ValidationError{Path: "titlebars." + name, Err: err}
		}
	}
	if c.DefaultTitlebar == "" {
		return &ValidationError{Path: "default_titlebar", Err: fmt.Errorf("default_titlebar is required")}
	}
	if _, ok := c.Titlebars[c.DefaultTitlebar]; !ok {
		return &ValidationError{Path: "default_titlebar", Err: fmt.Errorf("unknown titlebar %q", c.DefaultTitlebar)}
	}
	return nil
}

func validateTitlebar(tb *Titlebar) error {
	if tb.Height < 0 {
		return &ValidationError{Path: "height", Err: fmt.Errorf("height must be >= 0")}
	}
	if tb.LeftIndent < 0 {
		return &ValidationError{Path: "left_indent", Err: fmt.Errorf("left_indent must be >= 0")}
	}
	if tb.Scale < 0 {
		return &ValidationError{Path: "scale", Err: fmt.Errorf("scale must be >= 0 (0 = detect)")}
	}
	seen := make(map[string]struct{}, len(tb.Exclusions))
	for i, ex := range tb.Exclusions {
		if strings.TrimSpace(ex.Name) == "" {
			return &ValidationError{Path: "exclusions", Err: fmt.Errorf("exclusion %d has no name", i)}
		}
		if _, dup := seen[ex.Name]; dup {
			return &ValidationError{Path: "exclusions", Err: fmt.Errorf("duplicate exclusion name %q", ex.Name)}
		}
		seen[ex.Name] = struct{}{}
		if ex.Width < 0 || ex.Height < 0 {
			return &ValidationError{Path: "exclusions", Err: fmt.Errorf("exclusion %q: width and height must be >= 0", ex.Name)}
		}
	}
	return nil
}
