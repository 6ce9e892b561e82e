package textab

import "fmt"

// Region is a rectangular merged area, inclusive on all four bounds.
type Region struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// Contains reports whether the position lies inside the region.
func (r Region) Contains(row, col int) bool {
	return row >= r.StartRow && row <= r.EndRow && col >= r.StartCol && col <= r.EndCol
}

// Span returns the region's extent in rows and columns.
func (r Region) Span() Span {
	return Span{Rows: r.EndRow - r.StartRow + 1, Cols: r.EndCol - r.StartCol + 1}
}

// String formats the region as "(r1,c1)-(r2,c2)".
func (r Region) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.StartRow, r.StartCol, r.EndRow, r.EndCol)
}

// Merge combines the rectangle from (startRow,startCol) through
// (endRow,endCol) inclusive into a single region anchored at its top-left
// cell. It reports false and leaves the grid untouched when the rectangle
// is degenerate (a single cell), out of bounds, or overlaps an existing
// merged region. On success the anchor keeps its content and takes the
// region's span; every other covered cell is marked merged-part with its
// content cleared.
func (g *Grid) Merge(startRow, startCol, endRow, endCol int) bool {
	if startRow < 0 || startCol < 0 || endRow < startRow || endCol < startCol ||
		endRow >= g.rows || endCol >= g.cols {
		return false
	}
	if startRow == endRow && startCol == endCol {
		return false
	}

	// Any touched cell already involved in a merge rejects the whole
	// request; the grid is never left partially merged.
	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			cell := g.Cell(row, col)
			if cell == nil || cell.MergedPart || !cell.Span.IsUnit() {
				return false
			}
		}
	}

	region := Region{StartRow: startRow, StartCol: startCol, EndRow: endRow, EndCol: endCol}
	g.Cell(startRow, startCol).Span = region.Span()

	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			if row == startRow && col == startCol {
				continue
			}
			cell := g.Cell(row, col)
			cell.MergedPart = true
			cell.Content = ""
		}
	}

	g.regions = append(g.regions, region)
	return true
}

// Unmerge dissolves the merged region anchored at (row,col). It reports
// false when the cell there has a unit span (nothing to unmerge).
// Every cell of the recorded region returns to default span and
// merged-part state, and the region record is removed.
func (g *Grid) Unmerge(row, col int) bool {
	cell := g.Cell(row, col)
	if cell == nil || cell.Span.IsUnit() {
		return false
	}

	endRow := row + cell.Span.Rows - 1
	endCol := col + cell.Span.Cols - 1

	for r := row; r <= endRow; r++ {
		for c := col; c <= endCol; c++ {
			if target := g.Cell(r, c); target != nil {
				target.resetMerge()
			}
		}
	}

	match := Region{StartRow: row, StartCol: col, EndRow: endRow, EndCol: endCol}
	kept := g.regions[:0]
	for _, reg := range g.regions {
		if reg != match {
			kept = append(kept, reg)
		}
	}
	g.regions = kept
	return true
}

// IsMerged reports whether the cell participates in any merge, either as
// an anchor or as a covered cell.
func (g *Grid) IsMerged(row, col int) bool {
	cell := g.Cell(row, col)
	return cell != nil && (cell.MergedPart || !cell.Span.IsUnit())
}

// MergedRegion returns the recorded region containing the position, if any.
func (g *Grid) MergedRegion(row, col int) (Region, bool) {
	for _, reg := range g.regions {
		if reg.Contains(row, col) {
			return reg, true
		}
	}
	return Region{}, false
}

// Regions returns a copy of the recorded merged regions in creation order.
func (g *Grid) Regions() []Region {
	out := make([]Region, len(g.regions))
	copy(out, g.regions)
	return out
}
