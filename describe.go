package textab

import (
	"fmt"
	"strconv"
	"strings"
)

// Describe returns a human-readable summary of the grid: dimensions and
// fill count, header specs with the 1-based rows and columns they
// resolve to, merged regions with their anchor content, and any cells
// containing template expressions. Useful for inspecting documents from
// the command line.
func (g *Grid) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "grid %dx%d, %d of %d cells filled\n",
		g.rows, g.cols, g.filledCount(), g.rows*g.cols)

	if g.headerRowSpec != "" {
		fmt.Fprintf(&b, "header rows %q -> %s\n", g.headerRowSpec, formatResolved(g.HeaderRows()))
	}
	if g.headerColSpec != "" {
		fmt.Fprintf(&b, "header cols %q -> %s\n", g.headerColSpec, formatResolved(g.HeaderCols()))
	}

	if len(g.regions) > 0 {
		b.WriteString("merged regions:\n")
		for _, reg := range g.regions {
			preview := ""
			if anchor := g.Cell(reg.StartRow, reg.StartCol); anchor != nil {
				preview = anchor.Content
			}
			fmt.Fprintf(&b, "  %s %s %q\n", reg, reg.Span(), preview)
		}
	}

	var exprLines []string
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := g.Cell(row, col)
			if cell.MergedPart || !strings.Contains(cell.Content, "${") {
				continue
			}
			for _, seg := range ParseExpressions(cell.Content, "", "") {
				if seg.IsExpression {
					exprLines = append(exprLines, fmt.Sprintf("  (%d,%d): ${%s}", row, col, seg.Text))
				}
			}
		}
	}
	if len(exprLines) > 0 {
		b.WriteString("expressions:\n")
		for _, line := range exprLines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// filledCount counts cells holding content.
func (g *Grid) filledCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Content != "" {
			n++
		}
	}
	return n
}

// formatResolved renders resolved header indices back in the 1-based
// terms the range spec grammar uses.
func formatResolved(indices []int) string {
	if len(indices) == 0 {
		return "(nothing)"
	}
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = strconv.Itoa(idx + 1)
	}
	return strings.Join(parts, ",")
}
