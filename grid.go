package textab

import "strings"

// Default dimensions for a freshly created grid.
const (
	DefaultRows = 5
	DefaultCols = 5
)

// Grid is an editable two-dimensional table: a dense row-major arena of
// cells plus bookkeeping for merged regions and declarative header ranges.
//
// Rows and columns are 0-based throughout the API. Header range specs are
// the only 1-based surface, mirroring how authors write them ("1,3-5").
//
// A Grid assumes exclusive ownership by one caller at a time; concurrent
// hosts must serialize access or work on a Clone per edit.
type Grid struct {
	rows  int
	cols  int
	cells []Cell // index row*cols+col

	regions []Region

	headerRowSpec string
	headerColSpec string
}

// New creates a grid with the given dimensions and center-aligned empty
// cells. Dimensions below 1 are clamped to 1.
func New(rows, cols int) *Grid {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for i := range g.cells {
		g.cells[i] = defaultCell()
	}
	return g
}

// NewDefault creates a grid with the default 5x5 dimensions.
func NewDefault() *Grid {
	return New(DefaultRows, DefaultCols)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether the position lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cell returns a pointer to the cell at the given position, or nil when
// the position is out of bounds. The pointer stays valid until the next
// Resize on the grid.
func (g *Grid) Cell(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.cells[row*g.cols+col]
}

// SetContent sets the text content of a cell. It reports false without
// mutating anything when the position is out of bounds or the cell is
// covered by a merge region.
func (g *Grid) SetContent(row, col int, content string) bool {
	cell := g.Cell(row, col)
	if cell == nil || cell.MergedPart {
		return false
	}
	cell.Content = content
	return true
}

// SetAlignment sets the horizontal alignment of a cell. Out-of-bounds
// positions and values outside the Alignment enum are ignored.
func (g *Grid) SetAlignment(row, col int, a Alignment) bool {
	cell := g.Cell(row, col)
	if cell == nil || a < AlignLeft || a > AlignRight {
		return false
	}
	cell.Alignment = a
	return true
}

// SetBold sets the bold flag of a cell.
func (g *Grid) SetBold(row, col int, bold bool) bool {
	cell := g.Cell(row, col)
	if cell == nil {
		return false
	}
	cell.Bold = bold
	return true
}

// SetItalic sets the italic flag of a cell.
func (g *Grid) SetItalic(row, col int, italic bool) bool {
	cell := g.Cell(row, col)
	if cell == nil {
		return false
	}
	cell.Italic = italic
	return true
}

// SetFontStyle sets the explicit font style of a cell and keeps the
// Bold/Italic flags in sync with it. Values outside the FontStyle enum
// are ignored.
func (g *Grid) SetFontStyle(row, col int, fs FontStyle) bool {
	cell := g.Cell(row, col)
	if cell == nil || fs < FontUnset || fs > FontItalic {
		return false
	}
	cell.Font = fs
	cell.Bold = fs == FontBold
	cell.Italic = fs == FontItalic
	return true
}

// ResetFormatting returns a cell's font treatment to FontUnset so it
// inherits the style configuration defaults again.
func (g *Grid) ResetFormatting(row, col int) bool {
	cell := g.Cell(row, col)
	if cell == nil {
		return false
	}
	cell.Bold = false
	cell.Italic = false
	cell.Font = FontUnset
	return true
}

// SetRowHeader marks or unmarks every cell of a row via the per-cell
// header flag. This is the older of the two header mechanisms; boundary
// detection for line drawing consults only the declarative range specs.
func (g *Grid) SetRowHeader(row int, isHeader bool) {
	for col := 0; col < g.cols; col++ {
		if cell := g.Cell(row, col); cell != nil {
			cell.Header = isHeader
		}
	}
}

// SetColumnHeader marks or unmarks every cell of a column via the
// per-cell header flag.
func (g *Grid) SetColumnHeader(col int, isHeader bool) {
	for row := 0; row < g.rows; row++ {
		if cell := g.Cell(row, col); cell != nil {
			cell.Header = isHeader
		}
	}
}

// ToggleRowHeader flips the per-cell header flag across a row. The row
// counts as a header when any of its cells carries the flag; the toggle
// moves every cell to the opposite state and returns that new state.
func (g *Grid) ToggleRowHeader(row int) bool {
	current := false
	for col := 0; col < g.cols; col++ {
		if cell := g.Cell(row, col); cell != nil && cell.Header {
			current = true
			break
		}
	}
	g.SetRowHeader(row, !current)
	return !current
}

// ToggleColumnHeader flips the per-cell header flag across a column,
// returning the new state.
func (g *Grid) ToggleColumnHeader(col int) bool {
	current := false
	for row := 0; row < g.rows; row++ {
		if cell := g.Cell(row, col); cell != nil && cell.Header {
			current = true
			break
		}
	}
	g.SetColumnHeader(col, !current)
	return !current
}

// ClearHeaders removes the per-cell header flag from every cell.
func (g *Grid) ClearHeaders() {
	for i := range g.cells {
		g.cells[i].Header = false
	}
}

// SetHeaderRowSpec sets the declarative 1-based header row spec,
// e.g. "1", "1,2", or "1-3". The spec is stored verbatim (trimmed);
// indices beyond the current bounds simply never match.
func (g *Grid) SetHeaderRowSpec(spec string) {
	g.headerRowSpec = strings.TrimSpace(spec)
}

// SetHeaderColSpec sets the declarative 1-based header column spec.
func (g *Grid) SetHeaderColSpec(spec string) {
	g.headerColSpec = strings.TrimSpace(spec)
}

// HeaderRowSpec returns the raw header row spec.
func (g *Grid) HeaderRowSpec() string { return g.headerRowSpec }

// HeaderColSpec returns the raw header column spec.
func (g *Grid) HeaderColSpec() string { return g.headerColSpec }

// HeaderRows returns the 0-based header row indices parsed from the spec.
func (g *Grid) HeaderRows() []int {
	return ParseRangeSpec(g.headerRowSpec)
}

// HeaderCols returns the 0-based header column indices parsed from the spec.
func (g *Grid) HeaderCols() []int {
	return ParseRangeSpec(g.headerColSpec)
}

// IsHeaderRow reports whether the row is named by the header row spec.
func (g *Grid) IsHeaderRow(row int) bool {
	return containsIndex(g.HeaderRows(), row)
}

// IsHeaderCol reports whether the column is named by the header column spec.
func (g *Grid) IsHeaderCol(col int) bool {
	return containsIndex(g.HeaderCols(), col)
}

// IsHeaderCell reports whether the cell lies in a declared header row or
// header column. Per-cell header flags play no part here.
func (g *Grid) IsHeaderCell(row, col int) bool {
	return g.IsHeaderRow(row) || g.IsHeaderCol(col)
}

// Resize changes the grid dimensions. It reports false for non-positive
// dimensions. Cell data in the intersecting sub-rectangle is preserved,
// new cells are default-initialized, and merged regions no longer fully
// contained in the new bounds are dropped together with the merge state
// of their surviving cells.
func (g *Grid) Resize(newRows, newCols int) bool {
	if newRows <= 0 || newCols <= 0 {
		return false
	}

	cells := make([]Cell, newRows*newCols)
	for row := 0; row < newRows; row++ {
		for col := 0; col < newCols; col++ {
			if row < g.rows && col < g.cols {
				cells[row*newCols+col] = g.cells[row*g.cols+col]
			} else {
				cells[row*newCols+col] = defaultCell()
			}
		}
	}

	var kept []Region
	for _, reg := range g.regions {
		if reg.EndRow < newRows && reg.EndCol < newCols {
			kept = append(kept, reg)
		}
	}

	g.rows = newRows
	g.cols = newCols
	g.cells = cells
	g.regions = kept

	// Merge state survives only on cells still covered by a kept region.
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := &g.cells[row*g.cols+col]
			if cell.Span.IsUnit() && !cell.MergedPart {
				continue
			}
			if _, ok := g.MergedRegion(row, col); !ok {
				cell.resetMerge()
			}
		}
	}
	return true
}

// Clear empties every cell and removes all merged regions. Alignment
// returns to the center default; font flags and header state are left
// untouched.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Content = ""
		g.cells[i].resetMerge()
		g.cells[i].Alignment = AlignCenter
	}
	g.regions = nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		rows:          g.rows,
		cols:          g.cols,
		cells:         make([]Cell, len(g.cells)),
		regions:       make([]Region, len(g.regions)),
		headerRowSpec: g.headerRowSpec,
		headerColSpec: g.headerColSpec,
	}
	copy(clone.cells, g.cells)
	copy(clone.regions, g.regions)
	return clone
}
