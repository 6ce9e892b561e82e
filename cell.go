package textab

import (
	"fmt"
	"strings"
)

// Alignment is the horizontal alignment of a cell's content. Each value
// maps directly onto a single-letter LaTeX column token.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns a human-readable name for the Alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Letter returns the LaTeX column token for the alignment: "l", "c", or "r".
func (a Alignment) Letter() string {
	switch a {
	case AlignLeft:
		return "l"
	case AlignRight:
		return "r"
	default:
		return "c"
	}
}

// ParseAlignment parses an alignment from its column letter or full name.
// It accepts "l", "c", "r" as well as "left", "center", and "right".
func ParseAlignment(s string) (Alignment, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left":
		return AlignLeft, true
	case "c", "center", "centre":
		return AlignCenter, true
	case "r", "right":
		return AlignRight, true
	}
	return AlignLeft, false
}

// FontStyle is an explicit font treatment for a cell. FontUnset means the
// cell inherits the default for its role (header or data) from the active
// style configuration; FontNormal suppresses that inheritance.
type FontStyle int

const (
	FontUnset FontStyle = iota
	FontNormal
	FontBold
	FontItalic
)

// String returns a human-readable name for the FontStyle.
func (fs FontStyle) String() string {
	switch fs {
	case FontNormal:
		return "normal"
	case FontBold:
		return "bold"
	case FontItalic:
		return "italic"
	default:
		return "unset"
	}
}

// ParseFontStyle parses a font style name. The empty string parses as FontUnset.
func ParseFontStyle(s string) (FontStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return FontUnset, true
	case "normal":
		return FontNormal, true
	case "bold":
		return FontBold, true
	case "italic":
		return FontItalic, true
	}
	return FontUnset, false
}

// Span is the merge extent of an anchor cell, in rows and columns.
// A span of 1x1 means the cell is not merged.
type Span struct {
	Rows int
	Cols int
}

// UnitSpan is the span of an unmerged cell.
var UnitSpan = Span{Rows: 1, Cols: 1}

// IsUnit returns true if the span covers a single cell.
func (s Span) IsUnit() bool {
	return s.Rows <= 1 && s.Cols <= 1
}

// String formats the span as "RxC".
func (s Span) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Cell holds the content and formatting of a single grid position.
//
// A cell is either independent, the anchor of a merged region (Span larger
// than 1x1), or covered by another anchor's region (MergedPart true).
// Covered cells hold no content and contribute nothing to encoded output.
type Cell struct {
	Content    string
	Alignment  Alignment
	Span       Span
	MergedPart bool      // covered by another cell's merge region
	Header     bool      // per-cell header flag (toggle mechanism)
	Bold       bool
	Italic     bool
	Font       FontStyle // explicit style; kept in sync with Bold/Italic by SetFontStyle
}

// defaultCell returns a Cell with model defaults applied.
func defaultCell() Cell {
	return Cell{Alignment: AlignCenter, Span: UnitSpan}
}

// IsAnchor returns true if the cell anchors a merged region.
func (c *Cell) IsAnchor() bool {
	return !c.MergedPart && !c.Span.IsUnit()
}

// resetMerge returns the cell to unmerged state without touching formatting.
func (c *Cell) resetMerge() {
	c.Span = UnitSpan
	c.MergedPart = false
}
