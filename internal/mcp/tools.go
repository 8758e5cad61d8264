package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/dragzone/internal/config"
	"github.com/1broseidon/dragzone/internal/dragzone"
	"github.com/1broseidon/dragzone/internal/geom"
)

func (s *Server) handleComputeDragZones(_ context.Context, _ *mcpsdk.CallToolRequest, args ComputeDragZonesInput) (*mcpsdk.CallToolResult, DragZonesOutput, error) {
	if args.Scale < 0 {
		return nil, DragZonesOutput{}, fmt.Errorf("scale must be >= 0, got %v", args.Scale)
	}
	out, err := zonesOutput(args.Height, args.LeftIndent, args.WindowWidth, args.Exclusions, args.Scale)
	if err != nil {
		s.logger.Debug("compute_drag_zones rejected", "error", err)
		return nil, DragZonesOutput{}, err
	}
	s.logger.Debug("compute_drag_zones", "width", args.WindowWidth, "exclusions", len(args.Exclusions), "zones", len(out.Zones))
	return nil, out, nil
}

func (s *Server) handleListTitlebars(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListTitlebarsInput) (*mcpsdk.CallToolResult, ListTitlebarsOutput, error) {
	cfg := s.currentConfig()
	out := ListTitlebarsOutput{Titlebars: []TitlebarInfo{}}
	for _, name := range cfg.TitlebarNames() {
		tb := cfg.Titlebars[name]
		exclusions := tb.Exclusions
		if exclusions == nil {
			exclusions = []config.Exclusion{}
		}
		out.Titlebars = append(out.Titlebars, TitlebarInfo{
			Name:       name,
			Default:    name == cfg.DefaultTitlebar,
			Height:     tb.Height,
			LeftIndent: tb.LeftIndent,
			Scale:      tb.Scale,
			Exclusions: exclusions,
		})
	}
	return nil, out, nil
}

func (s *Server) handleTitlebarZones(_ context.Context, _ *mcpsdk.CallToolRequest, args TitlebarZonesInput) (*mcpsdk.CallToolResult, DragZonesOutput, error) {
	if args.Scale < 0 {
		return nil, DragZonesOutput{}, fmt.Errorf("scale must be >= 0, got %v", args.Scale)
	}
	tb, err := s.currentConfig().Titlebar(args.Name)
	if err != nil {
		return nil, DragZonesOutput{}, err
	}
	scale := tb.Scale
	if args.Scale > 0 {
		scale = args.Scale
	}
	out, err := zonesOutput(tb.Height, tb.LeftIndent, args.WindowWidth, tb.Rects(), scale)
	if err != nil {
		return nil, DragZonesOutput{}, err
	}
	return nil, out, nil
}

func zonesOutput(height, indent, width int, exclusions []geom.Rect, scale float64) (DragZonesOutput, error) {
	zones, err := dragzone.GetDragZones(height, indent, width, exclusions)
	if err != nil {
		return DragZonesOutput{}, err
	}
	if zones == nil {
		zones = []geom.Rect{}
	}
	out := DragZonesOutput{Zones: zones}
	if scale > 0 {
		out.Scale = scale
		out.ScaledZones = dragzone.Scale(zones, scale)
	}
	return out, nil
}
