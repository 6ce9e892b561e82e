// Package textab models editable two-dimensional tables and encodes
// them as LaTeX in several layout variants. Grids carry merged
// regions, per-cell alignment and fonts, declarative header rows and
// columns, and ${expr} placeholders expanded against runtime data.
package textab

import "fmt"

// Encode renders the grid in the given variant with default options.
func Encode(g *Grid, v Variant, opts ...EncoderOption) string {
	return NewEncoder(g, opts...).Encode(v)
}

// EncodeDocument renders the grid as a complete compilable document,
// declaring the packages the variant needs.
func EncodeDocument(g *Grid, v Variant, docClass string, opts ...EncoderOption) string {
	return NewEncoder(g, opts...).CompleteDocument(v, docClass)
}

// Render reconstructs a grid from its serialized document, expands any
// template expressions against data, and encodes the result. A nil
// data map skips expansion.
func Render(doc *Document, data map[string]any, v Variant, opts ...EncoderOption) (string, error) {
	g, err := FromDocument(doc)
	if err != nil {
		return "", err
	}
	if data != nil {
		g, err = g.Expand(NewContext(data))
		if err != nil {
			return "", fmt.Errorf("expand template: %w", err)
		}
	}
	return Encode(g, v, opts...), nil
}
