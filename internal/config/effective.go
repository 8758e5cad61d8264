package config

import (
	"fmt"
	"sort"
	"strings"
)

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BuildEffectiveConfig applies raw on top of DefaultConfig and returns the
// result together with the builtin base of every titlebar.
func BuildEffectiveConfig(raw RawConfig) (*Config, map[string]string, error) {
	cfg := DefaultConfig()

	if raw.LogLevel != nil {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(*raw.LogLevel))
	}
	if raw.Display != nil {
		cfg.Display = strings.TrimSpace(*raw.Display)
	}
	if raw.PropertyName != nil {
		cfg.PropertyName = strings.TrimSpace(*raw.PropertyName)
	}
	if raw.DefaultTitlebar != nil {
		cfg.DefaultTitlebar = strings.TrimSpace(*raw.DefaultTitlebar)
	}

	bases, err := applyTitlebars(cfg, raw)
	if err != nil {
		return nil, nil, err
	}
	return cfg, bases, nil
}

func applyTitlebars(cfg *Config, raw RawConfig) (map[string]string, error) {
	builtin := BuiltinTitlebars()

	cfg.Titlebars = make(map[string]Titlebar, len(builtin)+len(raw.Titlebars))
	bases := make(map[string]string, len(builtin)+len(raw.Titlebars))
	for name, tb := range builtin {
		cfg.Titlebars[name] = tb
		bases[name] = name
	}

	for _, name := range sortedKeys(raw.Titlebars) {
		patch := raw.Titlebars[name]
		if strings.TrimSpace(name) == "" {
			return nil, &ValidationError{Path: "titlebars", Err: fmt.Errorf("titlebar name must not be empty")}
		}
		baseName, base, err := selectTitlebarBase(name, patch, builtin)
		if err != nil {
			return nil, err
		}
		cfg.Titlebars[name] = mergeTitlebarPatch(base, patch)
		bases[name] = baseName
	}
	return bases, nil
}

func selectTitlebarBase(name string, patch RawTitlebar, builtin map[string]Titlebar) (string, Titlebar, error) {
	ref := ""
	if patch.Inherits != nil {
		ref = strings.TrimSpace(*patch.Inherits)
	}

	baseName := DefaultBuiltinTitlebar
	if _, ok := builtin[name]; ok {
		baseName = name
	}

	if ref != "" {
		const prefix = "builtin:"
		if !strings.HasPrefix(ref, prefix) {
			return "", Titlebar{}, &ValidationError{
				Path: "titlebars." + name + ".inherits",
				Err:  fmt.Errorf("inherits must be %q-prefixed (builtin-only), got %q", prefix, ref),
			}
		}
		baseName = strings.TrimSpace(strings.TrimPrefix(ref, prefix))
	}

	base, ok := builtin[baseName]
	if !ok {
		return "", Titlebar{}, &ValidationError{
			Path: "titlebars." + name + ".inherits",
			Err:  fmt.Errorf("unknown builtin titlebar %q", baseName),
		}
	}
	return baseName, base, nil
}

func mergeTitlebarPatch(base Titlebar, patch RawTitlebar) Titlebar {
	out := base
	if patch.Height != nil {
		out.Height = *patch.Height
	}
	if patch.LeftIndent != nil {
		out.LeftIndent = *patch.LeftIndent
	}
	if patch.Scale != nil {
		out.Scale = *patch.Scale
	}
	if patch.Exclusions != nil {
		out.Exclusions = append([]Exclusion(nil), patch.Exclusions...)
	} else if base.Exclusions != nil {
		out.Exclusions = append([]Exclusion(nil), base.Exclusions...)
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
