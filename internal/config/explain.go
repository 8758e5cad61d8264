package config

import (
	"fmt"
	"strings"
)

// Explain returns the effective value at the given YAML-like path and its source.
//
// Supported paths:
//
//	log_level
//	display
//	property_name
//	default_titlebar
//	titlebars.<name>
//	titlebars.<name>.height
//	titlebars.<name>.left_indent
//	titlebars.<name>.scale
//	titlebars.<name>.exclusions
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}

	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}

	if strings.HasPrefix(path, "titlebars.") {
		parts := strings.SplitN(path, ".", 3)
		return value, Source{Kind: SourceBuiltin, Name: res.TitlebarBases[parts[1]]}, nil
	}

	return value, Source{Kind: SourceDefault, Name: "defaults"}, nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	parts := strings.Split(path, ".")
	if parts[0] != "titlebars" && len(parts) != 1 {
		return nil, fmt.Errorf("unknown path: %s", path)
	}
	switch parts[0] {
	case "log_level":
		return cfg.LogLevel, nil
	case "display":
		return cfg.Display, nil
	case "property_name":
		return cfg.PropertyName, nil
	case "default_titlebar":
		return cfg.DefaultTitlebar, nil
	case "titlebars":
		return lookupTitlebar(cfg, path, parts[1:])
	default:
		return nil, fmt.Errorf("unknown path: %s", path)
	}
}

func lookupTitlebar(cfg *Config, path string, parts []string) (any, error) {
	if len(parts) == 0 || len(parts) > 2 {
		return nil, fmt.Errorf("unknown path: %s", path)
	}
	tb, ok := cfg.Titlebars[parts[0]]
	if !ok {
		return nil, fmt.Errorf("unknown titlebar %q", parts[0])
	}
	if len(parts) == 1 {
		return tb, nil
	}
	switch parts[1] {
	case "height":
		return tb.Height, nil
	case "left_indent":
		return tb.LeftIndent, nil
	case "scale":
		return tb.Scale, nil
	case "exclusions":
		return tb.Exclusions, nil
	default:
		return nil, fmt.Errorf("unknown path: %s", path)
	}
}

// FormatSource renders a source for `config explain` output.
func FormatSource(src Source) string {
	switch src.Kind {
	case SourceFile:
		return fmt.Sprintf("%s:%d:%d", src.File, src.Line, src.Column)
	case SourceBuiltin:
		return "builtin:" + src.Name
	default:
		return string(src.Kind)
	}
}
