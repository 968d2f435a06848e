package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/mathmodel/internal/export"
	"github.com/san-kum/mathmodel/internal/fractal"
)

// Shade draws grid as cols x rows terminal cells. Each cell is an upper
// half block, so one cell covers two grid samples stacked vertically.
func Shade(grid *fractal.Grid, cmap *export.Colormap, cols, rows int) string {
	if grid == nil || grid.Width == 0 || grid.Height == 0 || cols <= 0 || rows <= 0 {
		return ""
	}
	sample := func(col, sub int) lipgloss.Color {
		x := min(col*grid.Width/cols, grid.Width-1)
		y := min(sub*grid.Height/(2*rows), grid.Height-1)
		c := cmap.At(grid.At(x, y))
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	}

	var b strings.Builder
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			style := lipgloss.NewStyle().
				Foreground(sample(col, 2*r)).
				Background(sample(col, 2*r+1))
			b.WriteString(style.Render("▀"))
		}
		if r < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Ramp draws grid with ASCII density characters, darkest first.
func Ramp(grid *fractal.Grid, cols, rows int) string {
	const ramp = " .:-=+*#%@"
	if grid == nil || grid.Width == 0 || grid.Height == 0 || cols <= 0 || rows <= 0 {
		return ""
	}
	var b strings.Builder
	for r := 0; r < rows; r++ {
		y := min(r*grid.Height/rows, grid.Height-1)
		for col := 0; col < cols; col++ {
			x := min(col*grid.Width/cols, grid.Width-1)
			b.WriteByte(ramp[min(int(export.Level(grid.At(x, y)))*len(ramp)/256, len(ramp)-1)])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
