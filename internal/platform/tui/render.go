package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockflap/internal/core"
)

// upperHalf draws the upper pixel as foreground and the lower as background.
const upperHalf = '▀'

// cell is one projected terminal cell.
type cell struct {
	r      rune
	fg, bg core.ColorIndex
}

// Projector maps the fixed-resolution game canvas onto terminal cells.
// Each cell shows two vertically stacked pixels using a half block, so a
// square canvas keeps its aspect ratio in a cols x cols/2 cell area.
type Projector struct {
	styles [core.PaletteSize][core.PaletteSize]lipgloss.Style // [fg][bg]
}

// NewProjector creates a projector for a palette. A nil renderer uses the
// default lipgloss renderer; SSH sessions pass a per-session renderer so
// colors match the client terminal.
func NewProjector(r *lipgloss.Renderer, pal core.Palette) *Projector {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Projector{}
	for fg := 0; fg < core.PaletteSize; fg++ {
		for bg := 0; bg < core.PaletteSize; bg++ {
			p.styles[fg][bg] = r.NewStyle().
				Foreground(lipgloss.Color(pal.Hex(core.ColorIndex(fg)))).
				Background(lipgloss.Color(pal.Hex(core.ColorIndex(bg))))
		}
	}
	return p
}

// Fit returns the largest cell area for a w x h pixel canvas inside a
// termW x termH terminal, never upscaling past one pixel per column.
func Fit(w, h, termW, termH int) (cols, rows int) {
	if w <= 0 || h <= 0 || termW <= 0 || termH <= 0 {
		return 0, 0
	}
	cols = core.Min(termW, w)
	// rows*2 pixels tall must keep the canvas aspect
	if cols*h > termH*2*w {
		cols = termH * 2 * w / h
	}
	rows = cols * h / (2 * w)
	if rows == 0 {
		return 0, 0
	}
	return cols, rows
}

// project samples the canvas nearest-neighbor into a cols x rows grid and
// overlays the text labels at their scaled positions.
func project(c *core.Canvas, cols, rows int) [][]cell {
	w, h := c.Width(), c.Height()
	sub := rows * 2

	grid := make([][]cell, rows)
	for row := 0; row < rows; row++ {
		line := make([]cell, cols)
		for col := 0; col < cols; col++ {
			px := col * w / cols
			line[col] = cell{
				r:  upperHalf,
				fg: c.Get(px, (row*2)*h/sub),
				bg: c.Get(px, (row*2+1)*h/sub),
			}
		}
		grid[row] = line
	}

	for _, lbl := range c.Labels() {
		row := int(lbl.Y) * rows / h
		col := int(lbl.X) * cols / w
		if row < 0 || row >= rows {
			continue
		}
		for i, r := range []rune(lbl.Text) {
			x := col + i
			if x < 0 || x >= cols {
				continue
			}
			bg := grid[row][x].bg
			grid[row][x] = cell{r: r, fg: lbl.Color, bg: bg}
		}
	}

	return grid
}

// Render projects the canvas into a cols x rows area.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Projector) Render(c *core.Canvas, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	grid := project(c, cols, rows)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(cols*rows*8 + rows)

	for y, line := range grid {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < len(line) {
			start := line[x]

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < len(line) && line[x].fg == start.fg && line[x].bg == start.bg {
				run.WriteRune(line[x].r)
				x++
			}
			sb.WriteString(p.styles[start.fg][start.bg].Render(run.String()))
		}
	}
	return sb.String()
}
