package mcp

import (
	"github.com/1broseidon/dragzone/internal/config"
	"github.com/1broseidon/dragzone/internal/geom"
)

// ComputeDragZonesInput is the input for the compute_drag_zones tool.
type ComputeDragZonesInput struct {
	Height      int         `json:"height" jsonschema:"Height of the title bar strip in pixels, measured from the top of the window content"`
	LeftIndent  int         `json:"left_indent,omitempty" jsonschema:"X coordinate where the strip starts (default: 0)"`
	WindowWidth int         `json:"window_width" jsonschema:"Width of the window content in pixels; the strip ends here"`
	Scale       float64     `json:"scale,omitempty" jsonschema:"Optional DPI scale factor applied to the result (e.g. 1.5)"`
	Exclusions  []geom.Rect `json:"exclusions,omitempty" jsonschema:"Rectangles of interactive controls that must not be draggable"`
}

// DragZonesOutput is the output for the zone tools.
type DragZonesOutput struct {
	Zones       []geom.Rect `json:"zones"`
	ScaledZones []geom.Rect `json:"scaled_zones,omitempty"`
	Scale       float64     `json:"scale,omitempty"`
}

// ListTitlebarsInput is the input for the list_titlebars tool.
type ListTitlebarsInput struct{}

// TitlebarInfo describes one configured title bar profile.
type TitlebarInfo struct {
	Name       string             `json:"name"`
	Default    bool               `json:"default"`
	Height     int                `json:"height"`
	LeftIndent int                `json:"left_indent"`
	Scale      float64            `json:"scale"`
	Exclusions []config.Exclusion `json:"exclusions"`
}

// ListTitlebarsOutput is the output for the list_titlebars tool.
type ListTitlebarsOutput struct {
	Titlebars []TitlebarInfo `json:"titlebars"`
}

// TitlebarZonesInput is the input for the titlebar_zones tool.
type TitlebarZonesInput struct {
	Name        string  `json:"name,omitempty" jsonschema:"Title bar profile name (default: default_titlebar from config)"`
	WindowWidth int     `json:"window_width" jsonschema:"Width of the window content in pixels"`
	Scale       float64 `json:"scale,omitempty" jsonschema:"DPI scale factor; overrides the profile's scale"`
}
