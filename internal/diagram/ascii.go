// Package diagram renders ASCII cross-section sketches of checked
// members for terminal output. The sketches are schematic: proportions
// are clamped to stay readable, only bar count and placement are
// meaningful.
package diagram

import (
	"fmt"
	"strings"

	"github.com/structuraltools/goiscc/internal/design"
)

const (
	sketchWidth  = 28 // interior columns
	minRows      = 5
	maxRows      = 14
	slabRows     = 3
	footingDepth = 4
)

// Sketch draws the member cross-section with its reinforcement. It
// returns an empty string when the geometry is incomplete rather than
// failing; the sketch is decoration, not a check.
func Sketch(member design.MemberType, in *design.Input) string {
	if in.Dimensions.Validate() != nil {
		return ""
	}
	switch member {
	case design.Beam:
		return beamSection(in)
	case design.Column:
		return columnSection(in)
	case design.Slab:
		return slabStrip(in)
	case design.Footing:
		return footingSection(in)
	}
	return ""
}

// grid is a rune canvas; rows are built top down and joined at the
// end. Runes, not bytes: the borders are multi-byte box characters.
type grid [][]rune

func newGrid(rows, cols int) grid {
	g := make(grid, rows)
	for i := range g {
		g[i] = []rune(strings.Repeat(" ", cols))
	}
	return g
}

func (g grid) box(top, left, bottom, right int) {
	for c := left + 1; c < right; c++ {
		g[top][c] = '─'
		g[bottom][c] = '─'
	}
	for r := top + 1; r < bottom; r++ {
		g[r][left] = '│'
		g[r][right] = '│'
	}
	g[top][left] = '┌'
	g[top][right] = '┐'
	g[bottom][left] = '└'
	g[bottom][right] = '┘'
}

// barRow spreads n bar markers evenly across [left+2, right-2].
func (g grid) barRow(row, left, right, n int) {
	if n < 1 {
		return
	}
	lo, hi := left+2, right-2
	if n == 1 {
		g[row][(lo+hi)/2] = '●'
		return
	}
	span := hi - lo
	for i := 0; i < n; i++ {
		g[row][lo+i*span/(n-1)] = '●'
	}
}

func (g grid) render(indent string) string {
	var sb strings.Builder
	for _, row := range g {
		sb.WriteString(indent)
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// sectionRows maps the depth/width aspect ratio onto a readable row
// count. Terminal cells are roughly twice as tall as wide.
func sectionRows(widthMM, depthMM float64) int {
	rows := int(depthMM / widthMM * float64(sketchWidth) / 2)
	if rows < minRows {
		rows = minRows
	}
	if rows > maxRows {
		rows = maxRows
	}
	return rows
}

func beamSection(in *design.Input) string {
	width := in.Dimensions.Breadth.Float()
	depth := in.Dimensions.Depth.Float()
	numBars := int(in.Reinforcement.NumBars.Or(2))
	barDia := in.Reinforcement.BarDiameter.Or(16)

	rows := sectionRows(width, depth)
	g := newGrid(rows+1, sketchWidth+2)
	g.box(0, 0, rows, sketchWidth+1)
	g.barRow(rows-1, 0, sketchWidth+1, numBars)

	return g.render("  ") +
		fmt.Sprintf("  %d × %.0f mm bars, b=%.0f D=%.0f mm\n", numBars, barDia, width, depth)
}

func columnSection(in *design.Input) string {
	width := in.Dimensions.Breadth.Float()
	depth := in.Dimensions.Depth.Float()
	numBars := int(in.Reinforcement.NumBars.Or(8))
	barDia := in.Reinforcement.BarDiameter.Or(16)

	rows := sectionRows(width, depth)
	g := newGrid(rows+1, sketchWidth+2)
	g.box(0, 0, rows, sketchWidth+1)
	// Split the bars between the two faces, extras to the bottom
	g.barRow(1, 0, sketchWidth+1, numBars/2)
	g.barRow(rows-1, 0, sketchWidth+1, numBars-numBars/2)

	return g.render("  ") +
		fmt.Sprintf("  %d × %.0f mm bars with ties, %.0f × %.0f mm\n", numBars, barDia, width, depth)
}

func slabStrip(in *design.Input) string {
	thickness := in.Dimensions.Depth.Float()
	barDia := in.Reinforcement.BarDiameter.Or(10)
	spacing := in.Reinforcement.Spacing.Or(150)

	// Bars across a one metre strip at the given spacing
	numBars := int(1000/spacing) + 1
	if numBars > sketchWidth/2 {
		numBars = sketchWidth / 2
	}

	g := newGrid(slabRows+1, sketchWidth+2)
	g.box(0, 0, slabRows, sketchWidth+1)
	g.barRow(slabRows-1, 0, sketchWidth+1, numBars)

	return g.render("  ") +
		fmt.Sprintf("  %.0f mm @ %.0f c/c, t=%.0f mm (1 m strip)\n", barDia, spacing, thickness)
}

func footingSection(in *design.Input) string {
	length := in.Dimensions.Length.Float()
	breadth := in.Dimensions.Breadth.Float()
	thickness := in.Dimensions.Depth.Float()
	columnSize := in.Dimensions.ColumnSize.Or(300)
	barDia := in.Reinforcement.BarDiameter.Or(16)
	spacing := in.Reinforcement.Spacing.Or(150)

	// Column stub width in grid columns, proportional to the footing
	stub := int(columnSize / (breadth * 1000) * float64(sketchWidth))
	if stub < 4 {
		stub = 4
	}
	if stub > sketchWidth-6 {
		stub = sketchWidth - 6
	}
	stubLeft := (sketchWidth + 2 - stub) / 2
	stubRight := stubLeft + stub

	rows := footingDepth + 3
	g := newGrid(rows+1, sketchWidth+2)

	// Column stub above the footing body
	for r := 0; r < 3; r++ {
		g[r][stubLeft] = '│'
		g[r][stubRight] = '│'
	}

	g.box(3, 0, rows, sketchWidth+1)
	// The stub walls meet the footing top
	g[3][stubLeft] = '┴'
	g[3][stubRight] = '┴'
	g.barRow(rows-1, 0, sketchWidth+1, sketchWidth/3)

	return g.render("  ") +
		fmt.Sprintf("  %.2f × %.2f m × %.0f mm, %.0f mm @ %.0f c/c\n",
			length, breadth, thickness, barDia, spacing)
}
