package textab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultStyle_Values(t *testing.T) {
	s := DefaultStyle()
	assert.True(t, s.AllRowLines)
	assert.True(t, s.AllColumnLines)
	assert.False(t, s.HeaderRows.Enabled)
	assert.Equal(t, LineSingle, s.HeaderRows.Line)
	assert.True(t, s.OuterHorizontal)
	assert.False(t, s.OuterVertical)
	assert.False(t, s.IncludeTitle)
	assert.Equal(t, DefaultTitle, s.TitleText)
	assert.Equal(t, FontBold, s.HeaderFont)
	assert.Equal(t, FontNormal, s.DataFont)
}

func TestParseLineStyle_AliasesAndUnknown(t *testing.T) {
	for _, in := range []string{"", "single", "thick", "very_thick"} {
		ls, ok := ParseLineStyle(in)
		assert.True(t, ok, "input %q", in)
		assert.Equal(t, LineSingle, ls, "input %q", in)
	}

	ls, ok := ParseLineStyle("double")
	assert.True(t, ok)
	assert.Equal(t, LineDouble, ls)

	ls, ok = ParseLineStyle("dotted")
	assert.False(t, ok)
	assert.Equal(t, LineSingle, ls)
}

func TestLineStyle_String(t *testing.T) {
	assert.Equal(t, "single", LineSingle.String())
	assert.Equal(t, "double", LineDouble.String())
}
