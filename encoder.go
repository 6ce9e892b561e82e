package textab

import (
	"fmt"
	"strings"
)

// latexEscaper rewrites the characters that carry markup meaning in cell
// content. Replacement happens in a single pass, so backslashes introduced
// by one escape are never picked up again by another.
var latexEscaper = strings.NewReplacer(
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`\`, `\textbackslash{}`,
)

// EscapeLaTeX escapes LaTeX-significant characters in raw cell content.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}
	return latexEscaper.Replace(text)
}

// Encoder renders a Grid as LaTeX table markup. Encoding never mutates
// the grid and is deterministic: the same grid, style, and capabilities
// always produce identical text.
type Encoder struct {
	grid  *Grid
	style *Style
	caps  CapabilityProvider
}

// NewEncoder creates an encoder for the given grid. Without options the
// encoder carries no style (the styled variant then degrades to the
// simple grid) and assumes every rendering capability is available.
func NewEncoder(grid *Grid, opts ...EncoderOption) *Encoder {
	e := &Encoder{grid: grid, caps: AllCapabilities()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode renders the grid in the requested variant.
func (e *Encoder) Encode(v Variant) string {
	switch v {
	case Longtable:
		return e.encodeLongtable()
	case Booktabs:
		return e.encodeBooktabs()
	case Array:
		return e.encodeArray()
	case Styled:
		return e.encodeStyled()
	default:
		return e.encodeTabular()
	}
}

// effectiveVariant resolves the variant actually emitted once fallbacks
// are taken into account.
func (e *Encoder) effectiveVariant(v Variant) Variant {
	switch v {
	case Booktabs:
		if !e.caps.Has(CapBooktabs) {
			return Tabular
		}
	case Styled:
		if e.style == nil {
			return Tabular
		}
	}
	return v
}

// encodeTabular emits the simple grid: a horizontal line before the first
// row and after every row.
func (e *Encoder) encodeTabular() string {
	lines := []string{"\\begin{tabular}{" + e.columnSpec() + "}", "\\hline"}
	for row := 0; row < e.grid.Rows(); row++ {
		content := e.encodeRow(row)
		if content == "" {
			continue
		}
		lines = append(lines, content+" \\\\", "\\hline")
	}
	lines = append(lines, "\\end{tabular}")
	return strings.Join(lines, "\n")
}

// encodeLongtable emits the multi-page dialect. Row 0 is treated as the
// header and repeated through the first-head/head/foot/last-foot marker
// block; the remaining rows follow with a line after each.
func (e *Encoder) encodeLongtable() string {
	lines := []string{"\\begin{longtable}{" + e.columnSpec() + "}", "\\hline"}
	header := e.encodeRow(0)
	if header != "" {
		lines = append(lines,
			header+" \\\\",
			"\\hline",
			"\\endfirsthead",
			"",
			"\\hline",
			header+" \\\\",
			"\\hline",
			"\\endhead",
			"",
			"\\hline",
			"\\endfoot",
			"",
			"\\hline",
			"\\endlastfoot",
			"",
		)
		for row := 1; row < e.grid.Rows(); row++ {
			content := e.encodeRow(row)
			if content == "" {
				continue
			}
			lines = append(lines, content+" \\\\", "\\hline")
		}
	}
	lines = append(lines, "\\end{longtable}")
	return strings.Join(lines, "\n")
}

// encodeBooktabs emits the rule-based dialect: top rule, a mid rule after
// row 0 when more rows follow, bottom rule, and no inter-row lines. When
// the booktabs capability is unavailable it falls back to the simple grid.
func (e *Encoder) encodeBooktabs() string {
	if !e.caps.Has(CapBooktabs) {
		return e.encodeTabular()
	}
	lines := []string{"\\begin{tabular}{" + e.columnSpec() + "}", "\\toprule"}
	for row := 0; row < e.grid.Rows(); row++ {
		content := e.encodeRow(row)
		if content == "" {
			continue
		}
		lines = append(lines, content+" \\\\")
		if row == 0 && e.grid.Rows() > 1 {
			lines = append(lines, "\\midrule")
		}
	}
	lines = append(lines, "\\bottomrule", "\\end{tabular}")
	return strings.Join(lines, "\n")
}

// encodeArray emits the math-mode dialect: no rules at all, and the final
// row carries no row terminator.
func (e *Encoder) encodeArray() string {
	lines := []string{"\\begin{array}{" + e.columnSpec() + "}"}
	last := e.grid.Rows() - 1
	for row := 0; row <= last; row++ {
		content := e.encodeRow(row)
		if content == "" {
			continue
		}
		if row < last {
			lines = append(lines, content+" \\\\")
		} else {
			lines = append(lines, content)
		}
	}
	lines = append(lines, "\\end{array}")
	return strings.Join(lines, "\n")
}

// encodeStyled emits the configuration-driven dialect. Without a style it
// degrades to the simple grid. Every interior row boundary is decided
// independently: header emphasis wins outright immediately after the
// declared header rows, otherwise the all-rows flag chooses between one
// ordinary line and none. Column boundaries follow the same precedence
// inside the column spec. Outer borders are controlled separately and are
// always single lines.
func (e *Encoder) encodeStyled() string {
	if e.style == nil {
		return e.encodeTabular()
	}
	style := e.style

	var lines []string
	withTitle := style.IncludeTitle && style.TitleText != ""
	if withTitle {
		lines = append(lines,
			"\\begin{table}[htbp]",
			"\\centering",
			"\\caption{"+style.TitleText+"}",
		)
	}

	lines = append(lines, "\\begin{tabular}{"+e.styledColumnSpec()+"}")
	if style.OuterHorizontal {
		lines = append(lines, "\\hline")
	}

	last := e.grid.Rows() - 1
	for row := 0; row <= last; row++ {
		lines = append(lines, e.encodeRow(row)+" \\\\")
		if row == last {
			continue
		}
		switch {
		case e.isHeaderRowBoundary(row+1) && style.HeaderRows.Enabled:
			lines = append(lines, lineCommand(style.HeaderRows.Line))
		case style.AllRowLines:
			lines = append(lines, lineCommand(LineSingle))
		}
	}

	if style.OuterHorizontal {
		lines = append(lines, "\\hline")
	}
	lines = append(lines, "\\end{tabular}")

	if withTitle {
		lines = append(lines, "\\end{table}")
	}
	return strings.Join(lines, "\n")
}

// encodeRow renders one row as " & "-joined cell tokens without a row
// terminator. Cells covered by a merge contribute no token; a row fully
// covered by merges yields the empty string. A multi-column anchor emits
// a column-spanning wrapper carrying its span count and alignment; a
// multi-row anchor is additionally wrapped in a row-spanning wrapper when
// the multirow capability is available, and otherwise emits its content
// bare.
func (e *Encoder) encodeRow(row int) string {
	var cells []string
	col := 0
	for col < e.grid.Cols() {
		cell := e.grid.Cell(row, col)
		if cell.MergedPart {
			col++
			continue
		}

		content := EscapeLaTeX(cell.Content)
		content = e.applyFont(content, cell, row, col)

		if cell.Span.Cols > 1 {
			content = fmt.Sprintf("\\multicolumn{%d}{%s}{%s}", cell.Span.Cols, cell.Alignment.Letter(), content)
		}
		if cell.Span.Rows > 1 && e.caps.Has(CapMultirow) {
			content = fmt.Sprintf("\\multirow{%d}{*}{%s}", cell.Span.Rows, content)
		}

		cells = append(cells, content)
		advance := cell.Span.Cols
		if advance < 1 {
			advance = 1
		}
		col += advance
	}
	return strings.Join(cells, " & ")
}

// applyFont wraps content in the font markup the cell calls for. Explicit
// cell formatting wins, bold before italic; FontNormal suppresses any
// default. An unset font falls through to the style configuration's
// header or data default, picked by the cell's header position.
func (e *Encoder) applyFont(content string, cell *Cell, row, col int) string {
	switch {
	case cell.Bold || cell.Font == FontBold:
		return "\\textbf{" + content + "}"
	case cell.Italic || cell.Font == FontItalic:
		return "\\textit{" + content + "}"
	case cell.Font == FontNormal:
		return content
	}

	if e.style == nil {
		return content
	}
	def := e.style.DataFont
	if e.grid.IsHeaderCell(row, col) {
		def = e.style.HeaderFont
	}
	switch def {
	case FontBold:
		return "\\textbf{" + content + "}"
	case FontItalic:
		return "\\textit{" + content + "}"
	}
	return content
}

// columnSpec builds the plain column specification: one alignment letter
// per column, no separators.
func (e *Encoder) columnSpec() string {
	var b strings.Builder
	for col := 0; col < e.grid.Cols(); col++ {
		b.WriteString(e.columnAlignment(col).Letter())
	}
	return b.String()
}

// columnAlignment picks a column's alignment from its topmost cell with
// content that is not covered by a merge, defaulting to center.
func (e *Encoder) columnAlignment(col int) Alignment {
	for row := 0; row < e.grid.Rows(); row++ {
		cell := e.grid.Cell(row, col)
		if cell != nil && cell.Content != "" && !cell.MergedPart {
			return cell.Alignment
		}
	}
	return AlignCenter
}

// styledColumnSpec builds the column specification with border tokens
// decided per column boundary, plus optional outer vertical borders.
func (e *Encoder) styledColumnSpec() string {
	style := e.style
	var b strings.Builder
	if style.OuterVertical {
		b.WriteString("|")
	}
	last := e.grid.Cols() - 1
	for col := 0; col <= last; col++ {
		b.WriteString(e.columnAlignment(col).Letter())
		if col == last {
			continue
		}
		switch {
		case e.isHeaderColumnBoundary(col+1) && style.HeaderColumns.Enabled:
			b.WriteString(columnSeparator(style.HeaderColumns.Line))
		case style.AllColumnLines:
			b.WriteString("|")
		}
	}
	if style.OuterVertical {
		b.WriteString("|")
	}
	return b.String()
}

// isHeaderRowBoundary reports whether the row starts immediately after
// the declared header rows: the previous row is a header and this one is
// not. Row 0 is never a boundary.
func (e *Encoder) isHeaderRowBoundary(row int) bool {
	if row == 0 {
		return false
	}
	return e.grid.IsHeaderRow(row-1) && !e.grid.IsHeaderRow(row)
}

// isHeaderColumnBoundary is the column analogue of isHeaderRowBoundary.
func (e *Encoder) isHeaderColumnBoundary(col int) bool {
	if col == 0 {
		return false
	}
	return e.grid.IsHeaderCol(col-1) && !e.grid.IsHeaderCol(col)
}

// lineCommand maps a line style onto its horizontal rule markup.
func lineCommand(ls LineStyle) string {
	if ls == LineDouble {
		return "\\hline\\hline"
	}
	return "\\hline"
}

// columnSeparator maps a line style onto its vertical separator token.
func columnSeparator(ls LineStyle) string {
	if ls == LineDouble {
		return "||"
	}
	return "|"
}

// hasRowSpans reports whether any cell spans multiple rows.
func (e *Encoder) hasRowSpans() bool {
	for row := 0; row < e.grid.Rows(); row++ {
		for col := 0; col < e.grid.Cols(); col++ {
			if cell := e.grid.Cell(row, col); cell != nil && cell.Span.Rows > 1 {
				return true
			}
		}
	}
	return false
}

// Defaults applied by EncodeWithCaption when the caller leaves arguments
// empty.
const (
	defaultCaption  = "Performance Comparison"
	defaultLabel    = "tab:comparison"
	defaultPosition = "htbp"
)

// EncodeWithCaption wraps the encoded table in a floating container with
// a caption and label. Empty arguments fall back to the package defaults.
func (e *Encoder) EncodeWithCaption(v Variant, caption, label, position string) string {
	if caption == "" {
		caption = defaultCaption
	}
	if label == "" {
		label = defaultLabel
	}
	if position == "" {
		position = defaultPosition
	}
	lines := []string{
		"\\begin{table}[" + position + "]",
		"\\caption{" + caption + "}",
		"\\label{" + label + "}",
		"\\centering",
		e.Encode(v),
		"\\end{table}",
	}
	return strings.Join(lines, "\n")
}

// CompleteDocument wraps the encoded table in a minimal standalone
// document. The preamble declares the document class (default "article")
// and only the packages the emitted markup actually needs: the effective
// variant's environment package, plus multirow when row spans are present
// and the capability is available. Extra packages are listed first and
// never duplicated.
func (e *Encoder) CompleteDocument(v Variant, docClass string, extra ...string) string {
	if docClass == "" {
		docClass = "article"
	}

	packages := append([]string(nil), extra...)
	addPackage := func(name string) {
		if name == "" {
			return
		}
		for _, p := range packages {
			if p == name {
				return
			}
		}
		packages = append(packages, name)
	}
	addPackage(e.effectiveVariant(v).requiredPackage())
	if e.hasRowSpans() && e.caps.Has(CapMultirow) {
		addPackage("multirow")
	}

	lines := []string{"\\documentclass{" + docClass + "}", ""}
	for _, p := range packages {
		lines = append(lines, "\\usepackage{"+p+"}")
	}
	if len(packages) > 0 {
		lines = append(lines, "")
	}
	lines = append(lines,
		"\\begin{document}",
		"",
		e.Encode(v),
		"",
		"\\end{document}",
	)
	return strings.Join(lines, "\n")
}
