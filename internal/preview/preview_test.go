package preview

import (
	"strings"
	"testing"

	"github.com/1broseidon/dragzone/internal/geom"
)

func TestCanvas_MarksZonesAndExclusions(t *testing.T) {
	exclusions := []geom.Rect{{X: 0, Y: 0, Width: 20, Height: 10}}
	zones := []geom.Rect{{X: 20, Y: 0, Width: 60, Height: 10}}

	lines := Canvas(100, 10, zones, exclusions, 10, 1)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	want := "██░░░░░░··"
	if lines[0] != want {
		t.Fatalf("canvas = %q, want %q", lines[0], want)
	}
}

func TestCanvas_InvalidSizes(t *testing.T) {
	if Canvas(0, 10, nil, nil, 10, 2) != nil {
		t.Fatalf("expected nil for zero width")
	}
	if Canvas(100, 10, nil, nil, 0, 2) != nil {
		t.Fatalf("expected nil for zero columns")
	}
}

func TestColorizeKeepsText(t *testing.T) {
	line := "██░░··"
	got := Colorize(line)
	for _, r := range []string{"██", "░░", "··"} {
		if !strings.Contains(got, r) {
			t.Fatalf("colorized line %q lost run %q", got, r)
		}
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize([]geom.Rect{{Width: 10, Height: 4}}, 200, 1.5)
	want := "1 drag zone • 40 px² draggable • window 200 px • scale 1.50"
	if got != want {
		t.Fatalf("Summarize = %q, want %q", got, want)
	}
}

func TestRowsFor(t *testing.T) {
	tests := []struct {
		height, width, cols, want int
	}{
		{32, 800, 80, 2},
		{48, 200, 80, 9},
		{400, 200, 80, 12},
		{32, 0, 80, 1},
	}
	for _, tt := range tests {
		if got := rowsFor(tt.height, tt.width, tt.cols); got != tt.want {
			t.Errorf("rowsFor(%d, %d, %d) = %d, want %d", tt.height, tt.width, tt.cols, got, tt.want)
		}
	}
}

func TestRender_ListsZones(t *testing.T) {
	zones := []geom.Rect{{X: 48, Y: 0, Width: 352, Height: 48}}
	out := Render("navigation", 400, 48, zones, nil, 1, 40)
	if !strings.Contains(out, "navigation") || !strings.Contains(out, "352x48+48+0") {
		t.Fatalf("unexpected render:\n%s", out)
	}
}
