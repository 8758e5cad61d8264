package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IncludeList supports either:
//
//	include: "/path/to/file.yaml"
//
// or:
//
//	include:
//	  - "/path/to/file.yaml"
//	  - "/path/to/dir"
type IncludeList []string

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("include must be a string or list of strings")
		}
		*l = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

// RawTitlebar is a title bar as written in YAML. Unset fields inherit from
// the base profile. Exclusions, when present, replace the base list.
type RawTitlebar struct {
	Inherits   *string     `yaml:"inherits"`
	Height     *int        `yaml:"height"`
	LeftIndent *int        `yaml:"left_indent"`
	Scale      *float64    `yaml:"scale"`
	Exclusions []Exclusion `yaml:"exclusions"`
}

type RawConfig struct {
	Include         IncludeList            `yaml:"include"`
	LogLevel        *string                `yaml:"log_level"`
	Display         *string                `yaml:"display"`
	PropertyName    *string                `yaml:"property_name"`
	DefaultTitlebar *string                `yaml:"default_titlebar"`
	Titlebars       map[string]RawTitlebar `yaml:"titlebars"`
}

// merge applies overlay on top of c. Later files win field by field.
func (c RawConfig) merge(overlay RawConfig) RawConfig {
	out := c

	if overlay.LogLevel != nil {
		out.LogLevel = overlay.LogLevel
	}
	if overlay.Display != nil {
		out.Display = overlay.Display
	}
	if overlay.PropertyName != nil {
		out.PropertyName = overlay.PropertyName
	}
	if overlay.DefaultTitlebar != nil {
		out.DefaultTitlebar = overlay.DefaultTitlebar
	}
	if overlay.Titlebars != nil {
		merged := make(map[string]RawTitlebar, len(c.Titlebars)+len(overlay.Titlebars))
		for name, tb := range c.Titlebars {
			merged[name] = tb
		}
		for name, patch := range overlay.Titlebars {
			merged[name] = mergeRawTitlebar(merged[name], patch)
		}
		out.Titlebars = merged
	}
	return out
}

func mergeRawTitlebar(base, overlay RawTitlebar) RawTitlebar {
	out := base
	if overlay.Inherits != nil {
		out.Inherits = overlay.Inherits
	}
	if overlay.Height != nil {
		out.Height = overlay.Height
	}
	if overlay.LeftIndent != nil {
		out.LeftIndent = overlay.LeftIndent
	}
	if overlay.Scale != nil {
		out.Scale = overlay.Scale
	}
	if overlay.Exclusions != nil {
		out.Exclusions = overlay.Exclusions
	}
	return out
}
