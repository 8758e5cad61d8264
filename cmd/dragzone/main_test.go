package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/1broseidon/dragzone/internal/config"
	"github.com/1broseidon/dragzone/internal/geom"
	"github.com/1broseidon/dragzone/internal/platform"
)

func someInt(v int) optionalInt {
	return optionalInt{value: v, set: true}
}

func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.yaml")
}

func TestRectListSet(t *testing.T) {
	var l rectList
	if err := l.Set("10, 0,40,32"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := l.Set("0,0,8,8"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	want := rectList{{X: 10, Y: 0, Width: 40, Height: 32}, {X: 0, Y: 0, Width: 8, Height: 8}}
	if diff := cmp.Diff(want, l); diff != "" {
		t.Fatalf("rects mismatch (-want +got):\n%s", diff)
	}
	if got := l.String(); got != "10,0,40,32 0,0,8,8" {
		t.Fatalf("String() = %q", got)
	}

	for _, bad := range []string{"", "1,2,3", "1,2,3,x", "1,2,3,4,5"} {
		if err := l.Set(bad); err == nil {
			t.Errorf("Set(%q): expected error", bad)
		}
	}
}

func TestParseWindowID(t *testing.T) {
	tests := []struct {
		in      string
		want    platform.WindowID
		wantErr bool
	}{
		{in: "0x1a00003", want: 0x1a00003},
		{in: "42", want: 42},
		{in: " 7 ", want: 7},
		{in: "0", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "0x1ffffffff", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseWindowID(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseWindowID(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseWindowID(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseWindowID(%q) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestProfileOverrides(t *testing.T) {
	cfg := config.DefaultConfig()
	opts := profileOptions{titlebar: "navigation", height: someInt(40), indent: someInt(4), scale: 1.5}
	if err := opts.excludes.Set("200,0,40,40"); err != nil {
		t.Fatal(err)
	}

	name, tb, err := opts.profile(cfg)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if name != "navigation" {
		t.Fatalf("name = %q", name)
	}
	if tb.Height != 40 || tb.LeftIndent != 4 || tb.Scale != 1.5 {
		t.Fatalf("overrides not applied: %+v", tb)
	}
	if len(tb.Exclusions) != 3 || tb.Exclusions[2].Name != "flag-1" {
		t.Fatalf("exclusions = %+v", tb.Exclusions)
	}
	if n := len(cfg.Titlebars["navigation"].Exclusions); n != 2 {
		t.Fatalf("config profile mutated: %d exclusions", n)
	}
}

func TestProfileDefaultsAndErrors(t *testing.T) {
	cfg := config.DefaultConfig()

	opts := profileOptions{}
	name, tb, err := opts.profile(cfg)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if name != cfg.DefaultTitlebar || tb.Height != 32 {
		t.Fatalf("got %q %+v, want default profile", name, tb)
	}

	opts = profileOptions{titlebar: "missing"}
	if _, _, err := opts.profile(cfg); err == nil || !strings.Contains(err.Error(), "navigation") {
		t.Fatalf("expected unknown-titlebar error listing profiles, got %v", err)
	}

	opts = profileOptions{scale: -1}
	if _, _, err := opts.profile(cfg); err == nil {
		t.Fatal("expected error for negative scale")
	}
}

func TestProfileRejectsNegativeOverrides(t *testing.T) {
	cfg := config.DefaultConfig()
	for _, args := range [][]string{
		{"--height", "-5"},
		{"--indent", "-3"},
		{"--height", "-1"},
	} {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		var opts profileOptions
		opts.register(fs)
		if err := fs.Parse(args); err != nil {
			t.Fatalf("parse %v: %v", args, err)
		}
		if _, _, err := opts.profile(cfg); err == nil || !strings.Contains(err.Error(), "must be >= 0") {
			t.Errorf("%v: expected rejection, got %v", args, err)
		}
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var opts profileOptions
	opts.register(fs)
	if err := fs.Parse([]string{"--height", "0"}); err != nil {
		t.Fatal(err)
	}
	if _, tb, err := opts.profile(cfg); err != nil || tb.Height != 0 {
		t.Fatalf("--height 0: got height %d err %v", tb.Height, err)
	}
}

func TestComputeFromFlags_FixedWidth(t *testing.T) {
	profile := profileOptions{configPath: missingConfig(t), titlebar: "navigation"}
	out, err := computeFromFlags(&profile, &targetOptions{}, 400)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	want := []geom.Rect{{X: 96, Y: 0, Width: 304, Height: 48}}
	if diff := cmp.Diff(want, out.Zones); diff != "" {
		t.Fatalf("zones mismatch (-want +got):\n%s", diff)
	}
	if out.Scale != 1 || out.ScaledZones != nil {
		t.Fatalf("expected unscaled output, got scale %v scaled %v", out.Scale, out.ScaledZones)
	}
	if out.Width != 400 || out.Height != 48 || out.Titlebar != "navigation" {
		t.Fatalf("unexpected header: %+v", out)
	}
}

func TestComputeFromFlags_ScaleAndExtraExclusion(t *testing.T) {
	profile := profileOptions{configPath: missingConfig(t), titlebar: "navigation", scale: 2}
	if err := profile.excludes.Set("200,0,40,48"); err != nil {
		t.Fatal(err)
	}
	out, err := computeFromFlags(&profile, &targetOptions{}, 400)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	wantZones := []geom.Rect{
		{X: 96, Y: 0, Width: 104, Height: 48},
		{X: 240, Y: 0, Width: 160, Height: 48},
	}
	if diff := cmp.Diff(wantZones, out.Zones); diff != "" {
		t.Fatalf("zones mismatch (-want +got):\n%s", diff)
	}
	wantScaled := []geom.Rect{
		{X: 192, Y: 0, Width: 208, Height: 96},
		{X: 480, Y: 0, Width: 320, Height: 96},
	}
	if diff := cmp.Diff(wantScaled, out.ScaledZones); diff != "" {
		t.Fatalf("scaled mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeFromFlags_FullyCoveredIsEmptyNotNil(t *testing.T) {
	profile := profileOptions{configPath: missingConfig(t)}
	if err := profile.excludes.Set("0,0,300,32"); err != nil {
		t.Fatal(err)
	}
	out, err := computeFromFlags(&profile, &targetOptions{}, 300)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if out.Zones == nil || len(out.Zones) != 0 {
		t.Fatalf("expected empty non-nil zones, got %#v", out.Zones)
	}
}

func TestWriteCompute_Formats(t *testing.T) {
	out := computeOutput{
		Titlebar:    "navigation",
		Width:       400,
		Height:      48,
		Scale:       2,
		Zones:       []geom.Rect{{X: 96, Y: 0, Width: 304, Height: 48}},
		ScaledZones: []geom.Rect{{X: 192, Y: 0, Width: 608, Height: 96}},
	}

	var buf bytes.Buffer
	if err := writeCompute(&buf, out, "json"); err != nil {
		t.Fatalf("json: %v", err)
	}
	var decoded computeOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode json: %v\n%s", err, buf.String())
	}
	if diff := cmp.Diff(out, decoded); diff != "" {
		t.Fatalf("json output mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := writeCompute(&buf, out, "yaml"); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	for _, want := range []string{"window_width: 400", "scaled_zones:", "width: 304"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("yaml output missing %q:\n%s", want, buf.String())
		}
	}

	buf.Reset()
	if err := writeCompute(&buf, out, "text"); err != nil {
		t.Fatalf("text: %v", err)
	}
	for _, want := range []string{"titlebar: navigation", "400x48 (scale 2.00)", "x=96", "scaled:"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("text output missing %q:\n%s", want, buf.String())
		}
	}

	if err := writeCompute(&buf, out, "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestWriteCompute_TextNoZones(t *testing.T) {
	var buf bytes.Buffer
	if err := writeCompute(&buf, computeOutput{Titlebar: "default", Zones: []geom.Rect{}}, "text"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "(none)") {
		t.Fatalf("expected (none) marker:\n%s", buf.String())
	}
}

func TestRunCompute_UsageErrors(t *testing.T) {
	if rc := runCompute([]string{"--format", "xml", "--width", "100"}); rc != 2 {
		t.Fatalf("unknown format rc=%d, want 2", rc)
	}
	if rc := runCompute([]string{"extra"}); rc != 2 {
		t.Fatalf("positional arg rc=%d, want 2", rc)
	}
	if rc := runCompute([]string{"--bogus"}); rc != 2 {
		t.Fatalf("unknown flag rc=%d, want 2", rc)
	}
}

func TestRunConfig_ValidateAndExplain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if rc := runConfig([]string{"validate", "--path", path}); rc != 0 {
		t.Fatalf("validate missing file rc=%d, want 0", rc)
	}
	if rc := runConfig([]string{"explain", "--path", path, "titlebars.navigation.height"}); rc != 0 {
		t.Fatalf("explain rc=%d, want 0", rc)
	}
	if rc := runConfig([]string{"explain", "--path", path}); rc != 2 {
		t.Fatalf("explain without path rc=%d, want 2", rc)
	}
	if rc := runConfig([]string{"nope"}); rc != 2 {
		t.Fatalf("unknown subcommand rc=%d, want 2", rc)
	}
}
