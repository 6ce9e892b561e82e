package textab

import "fmt"

// Expand returns a copy of the grid with every ${...} expression in cell
// content evaluated against the context data. The receiver is left
// untouched. Merged-part cells hold no content and are skipped. The first
// evaluation error aborts the expansion, identifying the failing cell.
func (g *Grid) Expand(ctx *Context) (*Grid, error) {
	if ctx == nil {
		ctx = NewContext(nil)
	}
	out := g.Clone()
	for row := 0; row < out.rows; row++ {
		for col := 0; col < out.cols; col++ {
			cell := out.Cell(row, col)
			if cell.MergedPart || cell.Content == "" {
				continue
			}
			if !ctx.HasExpression(cell.Content) {
				continue
			}
			expanded, err := ctx.EvaluateCellValue(cell.Content)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", row, col, err)
			}
			cell.Content = expanded
		}
	}
	return out, nil
}
