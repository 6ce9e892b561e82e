package textab

import (
	"fmt"
	"strings"
)

// Variant selects one of the five table markup dialects the encoder
// produces.
type Variant int

const (
	Tabular   Variant = iota // simple grid, line after every row
	Longtable                // multi-page with repeating header block
	Booktabs                 // top/mid/bottom rules only
	Array                    // math mode, no outer rules
	Styled                   // driven by a Style configuration
)

// String returns the variant name as it appears on the command line and
// in configuration files.
func (v Variant) String() string {
	switch v {
	case Tabular:
		return "tabular"
	case Longtable:
		return "longtable"
	case Booktabs:
		return "booktabs"
	case Array:
		return "array"
	case Styled:
		return "styled"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Variants lists all encoder variants in declaration order.
func Variants() []Variant {
	return []Variant{Tabular, Longtable, Booktabs, Array, Styled}
}

// ParseVariant parses a variant name; unknown names return an error.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tabular":
		return Tabular, nil
	case "longtable":
		return Longtable, nil
	case "booktabs":
		return Booktabs, nil
	case "array":
		return Array, nil
	case "styled":
		return Styled, nil
	}
	return Tabular, fmt.Errorf("unknown table variant %q", s)
}

// requiredPackage returns the package the variant's environment needs in
// a complete document, or "" when the base environment suffices.
func (v Variant) requiredPackage() string {
	switch v {
	case Longtable:
		return "longtable"
	case Booktabs:
		return "booktabs"
	case Array:
		return "array"
	default:
		return ""
	}
}
