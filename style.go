package textab

import "strings"

// LineStyle selects the weight of an emphasized boundary line.
type LineStyle int

const (
	LineSingle LineStyle = iota
	LineDouble
)

// String returns a human-readable name for the LineStyle.
func (ls LineStyle) String() string {
	if ls == LineDouble {
		return "double"
	}
	return "single"
}

// ParseLineStyle parses a line style name. "thick" and "very_thick" are
// accepted as aliases for single, matching how older style presets spelled
// emphasized lines. The empty string parses as single.
func ParseLineStyle(s string) (LineStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single", "thick", "very_thick":
		return LineSingle, true
	case "double":
		return LineDouble, true
	}
	return LineSingle, false
}

// HeaderEmphasis configures the boundary line drawn immediately after the
// declared header rows or columns. When Enabled, the emphasis line takes
// absolute priority over the general all-lines flag at that boundary.
type HeaderEmphasis struct {
	Enabled bool
	Line    LineStyle
}

// Style is the configuration consumed by the Styled encoder variant. It is
// a plain value object: copy it freely, pass it by value, and treat a
// stored instance as immutable.
type Style struct {
	AllRowLines    bool // ordinary line after every interior row boundary
	AllColumnLines bool // ordinary line between every column

	HeaderRows    HeaderEmphasis
	HeaderColumns HeaderEmphasis

	OuterHorizontal bool // top and bottom border lines
	OuterVertical   bool // leftmost and rightmost border lines

	IncludeTitle bool
	TitleText    string

	// Default fonts applied to cells whose font style is unset, chosen by
	// whether the cell falls in a declared header row or column.
	HeaderFont FontStyle
	DataFont   FontStyle
}

// DefaultTitle is the placeholder title carried by a fresh style.
const DefaultTitle = "Unnamed Table"

// DefaultStyle returns the standard starting configuration: grid lines in
// both directions, top and bottom borders, no side borders, no header
// emphasis, bold header cells, plain data cells.
func DefaultStyle() Style {
	return Style{
		AllRowLines:     true,
		AllColumnLines:  true,
		HeaderRows:      HeaderEmphasis{Line: LineSingle},
		HeaderColumns:   HeaderEmphasis{Line: LineSingle},
		OuterHorizontal: true,
		OuterVertical:   false,
		IncludeTitle:    false,
		TitleText:       DefaultTitle,
		HeaderFont:      FontBold,
		DataFont:        FontNormal,
	}
}
