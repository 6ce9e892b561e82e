package textab

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// Severity indicates the severity of a validation issue.
type Severity int

const (
	SeverityError   Severity = iota // model state violates an invariant
	SeverityWarning                 // model state is legal but suspicious
)

// ValidationIssue represents a single problem found in a grid.
// Row and Col identify the offending cell; both are -1 for grid-level
// issues such as a malformed header spec.
type ValidationIssue struct {
	Severity Severity
	Row      int
	Col      int
	Message  string
}

// String formats the issue as "[ERROR] (2,3): message". Grid-level issues
// omit the position.
func (v ValidationIssue) String() string {
	sev := "ERROR"
	if v.Severity == SeverityWarning {
		sev = "WARN"
	}
	if v.Row < 0 || v.Col < 0 {
		return fmt.Sprintf("[%s] %s", sev, v.Message)
	}
	return fmt.Sprintf("[%s] (%d,%d): %s", sev, v.Row, v.Col, v.Message)
}

func gridIssue(sev Severity, format string, args ...any) ValidationIssue {
	return ValidationIssue{Severity: sev, Row: -1, Col: -1, Message: fmt.Sprintf(format, args...)}
}

func cellIssue(sev Severity, row, col int, format string, args ...any) ValidationIssue {
	return ValidationIssue{Severity: sev, Row: row, Col: col, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the grid's structural invariants: merged regions in
// bounds, non-degenerate and pairwise disjoint, anchor and member cells
// consistent with their region, no merge state outside a recorded region.
// Header specs are checked for tokens that parse to nothing and for
// indices beyond the current bounds, both reported as warnings. A grid
// built exclusively through the model's own operations never produces
// errors; loaded documents can.
func (g *Grid) Validate() []ValidationIssue {
	var issues []ValidationIssue
	issues = append(issues, g.validateRegions()...)
	issues = append(issues, g.validateMergeState()...)
	issues = append(issues, g.validateHeaderSpec("row", g.headerRowSpec, g.rows)...)
	issues = append(issues, g.validateHeaderSpec("column", g.headerColSpec, g.cols)...)
	return issues
}

// validateRegions checks each recorded region and the cells it covers.
func (g *Grid) validateRegions() []ValidationIssue {
	var issues []ValidationIssue

	for i, reg := range g.regions {
		if reg.StartRow < 0 || reg.StartCol < 0 || reg.EndRow < reg.StartRow || reg.EndCol < reg.StartCol {
			issues = append(issues, gridIssue(SeverityError, "merged region %s is malformed", reg))
			continue
		}
		if reg.EndRow >= g.rows || reg.EndCol >= g.cols {
			issues = append(issues, gridIssue(SeverityError,
				"merged region %s extends beyond the %dx%d grid", reg, g.rows, g.cols))
			continue
		}
		if reg.Span().IsUnit() {
			issues = append(issues, gridIssue(SeverityError, "merged region %s covers a single cell", reg))
			continue
		}

		for _, other := range g.regions[i+1:] {
			if regionsOverlap(reg, other) {
				issues = append(issues, gridIssue(SeverityError,
					"merged regions %s and %s overlap", reg, other))
			}
		}

		anchor := g.Cell(reg.StartRow, reg.StartCol)
		if anchor.MergedPart {
			issues = append(issues, cellIssue(SeverityError, reg.StartRow, reg.StartCol,
				"anchor of merged region %s is itself marked merged-part", reg))
		}
		if anchor.Span != reg.Span() {
			issues = append(issues, cellIssue(SeverityError, reg.StartRow, reg.StartCol,
				"anchor span %s does not match merged region %s", anchor.Span, reg))
		}

		for row := reg.StartRow; row <= reg.EndRow; row++ {
			for col := reg.StartCol; col <= reg.EndCol; col++ {
				if row == reg.StartRow && col == reg.StartCol {
					continue
				}
				cell := g.Cell(row, col)
				if !cell.MergedPart {
					issues = append(issues, cellIssue(SeverityError, row, col,
						"cell inside merged region %s is not marked merged-part", reg))
				}
				if !cell.Span.IsUnit() {
					issues = append(issues, cellIssue(SeverityError, row, col,
						"cell inside merged region %s has span %s", reg, cell.Span))
				}
				if cell.Content != "" {
					issues = append(issues, cellIssue(SeverityWarning, row, col,
						"cell inside merged region %s holds content that will never render", reg))
				}
			}
		}
	}

	return issues
}

// validateMergeState flags merge markers on cells no recorded region covers.
func (g *Grid) validateMergeState() []ValidationIssue {
	var issues []ValidationIssue
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := g.Cell(row, col)
			if cell.Span.IsUnit() && !cell.MergedPart {
				continue
			}
			if _, ok := g.MergedRegion(row, col); !ok {
				issues = append(issues, cellIssue(SeverityError, row, col,
					"cell carries merge state but no recorded region covers it"))
			}
		}
	}
	return issues
}

// validateHeaderSpec reports malformed tokens and out-of-range indices in
// one header spec. Out-of-range indices are legal (they simply never
// match) but usually mean the grid shrank after the spec was written.
func (g *Grid) validateHeaderSpec(axis, spec string, limit int) []ValidationIssue {
	var issues []ValidationIssue
	indices, dropped := parseRangeTokens(spec)

	for _, token := range dropped {
		issues = append(issues, gridIssue(SeverityWarning,
			"header %s spec %q: token %q is malformed and will be ignored", axis, spec, token))
	}
	if spec != "" && len(indices) == 0 {
		issues = append(issues, gridIssue(SeverityWarning,
			"header %s spec %q matches nothing", axis, spec))
		return issues
	}
	for _, idx := range indices {
		if idx >= limit {
			issues = append(issues, gridIssue(SeverityWarning,
				"header %s spec %q names %s %d, but the grid has only %d", axis, spec, axis, idx+1, limit))
		}
	}
	return issues
}

// ValidateTemplate checks every embedded ${...} expression in cell
// content for syntax errors without evaluating anything. Unknown
// variables are not reported; they resolve to nil during expansion.
func (g *Grid) ValidateTemplate() []ValidationIssue {
	var issues []ValidationIssue
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := g.Cell(row, col)
			if cell.Content == "" || cell.MergedPart {
				continue
			}
			for _, seg := range ParseExpressions(cell.Content, "", "") {
				if !seg.IsExpression {
					continue
				}
				if _, err := expr.Compile(seg.Text, expr.AllowUndefinedVariables()); err != nil {
					issues = append(issues, cellIssue(SeverityError, row, col,
						"invalid expression syntax %q: %v", seg.Text, err))
				}
			}
		}
	}
	return issues
}

// regionsOverlap reports whether two regions share any cell.
func regionsOverlap(a, b Region) bool {
	return a.StartRow <= b.EndRow && b.StartRow <= a.EndRow &&
		a.StartCol <= b.EndCol && b.StartCol <= a.EndCol
}
