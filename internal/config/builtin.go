package config

const DefaultBuiltinTitlebar = "default"

// BuiltinTitlebars returns the built-in title bar library.
//
// These are always available without being defined in YAML and can be used
// as bases via inherits: "builtin:<name>".
func BuiltinTitlebars() map[string]Titlebar {
	return map[string]Titlebar{
		"default": {
			Height: 32,
		},
		"tall": {
			Height: 48,
		},
		"navigation": {
			Height: 48,
			Exclusions: []Exclusion{
				{Name: "back", X: 0, Y: 0, Width: 48, Height: 48},
				{Name: "pane-toggle", X: 48, Y: 0, Width: 48, Height: 48},
			},
		},
		"tabs": {
			Height:     40,
			LeftIndent: 0,
			Exclusions: []Exclusion{
				{Name: "app-icon", X: 8, Y: 8, Width: 24, Height: 24},
				{Name: "tab-strip", X: 40, Y: 4, Width: 480, Height: 36},
			},
		},
	}
}
