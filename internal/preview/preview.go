// Package preview draws a title bar's drag zones as a character canvas.
package preview

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/1broseidon/dragzone/internal/geom"
)

const (
	cellDrag     = '░'
	cellExcluded = '█'
	cellOutside  = '·'
)

var (
	dragStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	excludedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	outsideStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	footStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Canvas samples the strip [0,width) x [0,height) at the centre of every
// character cell. Cells over an exclusion are drawn as █, cells over a drag
// zone as ░, everything else (e.g. the left indent) as ·.
func Canvas(width, height int, zones, exclusions []geom.Rect, cols, rows int) []string {
	if width <= 0 || height <= 0 || cols <= 0 || rows <= 0 {
		return nil
	}

	lines := make([]string, rows)
	for cy := 0; cy < rows; cy++ {
		var b strings.Builder
		py := (2*cy + 1) * height / (2 * rows)
		for cx := 0; cx < cols; cx++ {
			px := (2*cx + 1) * width / (2 * cols)
			b.WriteRune(classify(px, py, zones, exclusions))
		}
		lines[cy] = b.String()
	}
	return lines
}

func classify(x, y int, zones, exclusions []geom.Rect) rune {
	p := geom.Rect{X: x, Y: y, Width: 1, Height: 1}
	for _, ex := range exclusions {
		if ex.Overlaps(p) {
			return cellExcluded
		}
	}
	for _, z := range zones {
		if z.Overlaps(p) {
			return cellDrag
		}
	}
	return cellOutside
}

// Colorize styles each run of identical cells in a canvas line.
func Colorize(line string) string {
	var out strings.Builder
	runes := []rune(line)
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		run := string(runes[i:j])
		switch runes[i] {
		case cellDrag:
			out.WriteString(dragStyle.Render(run))
		case cellExcluded:
			out.WriteString(excludedStyle.Render(run))
		default:
			out.WriteString(outsideStyle.Render(run))
		}
		i = j
	}
	return out.String()
}

// Summarize describes a zone set in one line.
func Summarize(zones []geom.Rect, width int, scale float64) string {
	area := 0
	for _, z := range zones {
		area += z.Area()
	}
	noun := "zones"
	if len(zones) == 1 {
		noun = "zone"
	}
	return fmt.Sprintf("%d drag %s • %d px² draggable • window %d px • scale %.2f", len(zones), noun, area, width, scale)
}

// Render builds the full styled preview: title, canvas, zone list.
func Render(title string, width, height int, zones, exclusions []geom.Rect, scale float64, cols int) string {
	rows := rowsFor(height, width, cols)
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	for _, line := range Canvas(width, height, zones, exclusions, cols, rows) {
		b.WriteString(Colorize(line))
		b.WriteString("\n")
	}
	b.WriteString(footStyle.Render(Summarize(zones, width, scale)))
	b.WriteString("\n")
	for i, z := range zones {
		b.WriteString(footStyle.Render(fmt.Sprintf("  %2d  %s", i+1, z)))
		b.WriteString("\n")
	}
	return b.String()
}

// rowsFor keeps the canvas roughly to scale, assuming character cells are
// twice as tall as they are wide.
func rowsFor(height, width, cols int) int {
	if width <= 0 || cols <= 0 {
		return 1
	}
	rows := height * cols / width / 2
	return min(max(rows, 2), 12)
}

// TerminalColumns returns the usable width of stdout, or fallback when
// stdout is not a terminal.
func TerminalColumns(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
