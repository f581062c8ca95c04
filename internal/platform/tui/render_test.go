package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockflap/internal/core"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name         string
		termW, termH int
		wantCols     int
		wantRows     int
	}{
		{"small terminal limited by height", 80, 22, 44, 22},
		{"wide terminal limited by height", 200, 40, 80, 40},
		{"large terminal capped at canvas width", 300, 100, 128, 64},
		{"narrow terminal limited by width", 30, 60, 30, 15},
		{"too small", 1, 1, 0, 0},
		{"zero size", 0, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cols, rows := Fit(128, 128, tc.termW, tc.termH)
			if cols != tc.wantCols || rows != tc.wantRows {
				t.Errorf("Fit(128, 128, %d, %d) = %d, %d, expected %d, %d",
					tc.termW, tc.termH, cols, rows, tc.wantCols, tc.wantRows)
			}
		})
	}
}

func TestProjectFullResolution(t *testing.T) {
	c := core.NewCanvas(128, 128)
	c.Set(10, 20, core.ColorPlayer)   // upper half of cell row 10
	c.Set(11, 21, core.ColorObstacle) // lower half of cell row 10

	grid := project(c, 128, 64)
	if len(grid) != 64 || len(grid[0]) != 128 {
		t.Fatalf("grid is %dx%d, expected 128x64", len(grid[0]), len(grid))
	}

	if got := grid[10][10]; got.fg != core.ColorPlayer || got.bg != core.ColorBackground || got.r != upperHalf {
		t.Errorf("cell (10,10) = %+v", got)
	}
	if got := grid[10][11]; got.fg != core.ColorBackground || got.bg != core.ColorObstacle {
		t.Errorf("cell (11,10) = %+v", got)
	}
}

func TestProjectDownsampled(t *testing.T) {
	c := core.NewCanvas(128, 128)
	c.FillRect(core.NewRect(64, 64, 64, 64), core.ColorObstacle)

	grid := project(c, 32, 16)

	// Lower right quadrant filled, upper left empty
	if got := grid[12][24]; got.fg != core.ColorObstacle || got.bg != core.ColorObstacle {
		t.Errorf("filled cell = %+v", got)
	}
	if got := grid[3][3]; got.fg != core.ColorBackground || got.bg != core.ColorBackground {
		t.Errorf("empty cell = %+v", got)
	}
}

func TestProjectLabels(t *testing.T) {
	c := core.NewCanvas(128, 128)
	c.FillRect(core.NewRect(0, 0, 128, 128), core.ColorObstacle)
	c.DrawText(60, 10, "12", core.ColorText)
	c.DrawText(124, 64, "CLIPPED", core.ColorText)

	grid := project(c, 128, 64)

	// (60, 10) lands on row 5
	if got := grid[5][60]; got.r != '1' || got.fg != core.ColorText || got.bg != core.ColorObstacle {
		t.Errorf("label cell = %+v", got)
	}
	if got := grid[5][61]; got.r != '2' {
		t.Errorf("second label rune = %q", got.r)
	}
	// Runes past the right edge are dropped
	if got := grid[32][124]; got.r != 'C' {
		t.Errorf("clipped label start = %q", got.r)
	}
	if got := grid[32][127]; got.r != 'P' {
		t.Errorf("clipped label at edge = %q", got.r)
	}
}

func TestRenderDimensions(t *testing.T) {
	c := core.NewCanvas(128, 128)
	c.FillRect(core.NewRect(32, 64, 16, 16), core.ColorPlayer)
	c.DrawText(60, 10, "0", core.ColorText)

	p := NewProjector(lipgloss.DefaultRenderer(), core.DefaultPalette)
	out := p.Render(c, 44, 22)

	lines := strings.Split(out, "\n")
	if len(lines) != 22 {
		t.Fatalf("rendered %d lines, expected 22", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 44 {
			t.Errorf("line %d width = %d, expected 44", i, w)
		}
	}

	if p.Render(c, 0, 0) != "" {
		t.Error("empty area should render nothing")
	}
}
