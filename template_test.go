package textab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_Variables(t *testing.T) {
	ctx := NewContext(map[string]any{"a": 1})

	assert.Equal(t, 1, ctx.GetVar("a"))
	assert.Nil(t, ctx.GetVar("b"))
	assert.True(t, ctx.ContainsVar("a"))
	assert.False(t, ctx.ContainsVar("b"))

	ctx.PutVar("b", "two")
	assert.Equal(t, "two", ctx.GetVar("b"))

	ctx.RemoveVar("a")
	assert.False(t, ctx.ContainsVar("a"))
}

func TestContext_NilDataIsEmpty(t *testing.T) {
	ctx := NewContext(nil)
	assert.False(t, ctx.ContainsVar("x"))
	ctx.PutVar("x", 1)
	assert.Equal(t, 1, ctx.GetVar("x"))
}

func TestContext_ToMapTracksChanges(t *testing.T) {
	ctx := NewContext(map[string]any{"a": 1})
	assert.Equal(t, map[string]any{"a": 1}, ctx.ToMap())

	ctx.PutVar("b", 2)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, ctx.ToMap())

	ctx.RemoveVar("a")
	assert.Equal(t, map[string]any{"b": 2}, ctx.ToMap())
}

func TestContext_Evaluate(t *testing.T) {
	ctx := NewContext(map[string]any{"price": 3, "qty": 4})
	result, err := ctx.Evaluate("price * qty")
	require.NoError(t, err)
	assert.Equal(t, 12, result)
}

func TestContext_HasExpression(t *testing.T) {
	ctx := NewContext(nil)
	assert.True(t, ctx.HasExpression("${x}"))
	assert.True(t, ctx.HasExpression("text ${x} more"))
	assert.False(t, ctx.HasExpression("plain"))
	assert.False(t, ctx.HasExpression("${unclosed"))
	assert.False(t, ctx.HasExpression("$ {x}"))
	assert.False(t, ctx.HasExpression(""))
}

func TestContext_CustomNotation(t *testing.T) {
	ctx := NewContext(map[string]any{"x": 7}, WithNotation("<<", ">>"))
	assert.True(t, ctx.HasExpression("<<x>>"))
	assert.False(t, ctx.HasExpression("${x}"))

	out, err := ctx.EvaluateCellValue("<<x>>")
	require.NoError(t, err)
	assert.Equal(t, "7", out)
}

func TestEvaluateCellValue_SingleExpression(t *testing.T) {
	ctx := NewContext(map[string]any{"total": 42})

	out, err := ctx.EvaluateCellValue("${total}")
	require.NoError(t, err)
	assert.Equal(t, "42", out)

	// Whitespace around a lone expression is trimmed away.
	out, err = ctx.EvaluateCellValue("  ${total} ")
	require.NoError(t, err)
	assert.Equal(t, "42", out)
}

func TestEvaluateCellValue_MixedContent(t *testing.T) {
	ctx := NewContext(map[string]any{"a": 1, "b": 2})
	out, err := ctx.EvaluateCellValue("Total: ${a + b} units")
	require.NoError(t, err)
	assert.Equal(t, "Total: 3 units", out)
}

func TestEvaluateCellValue_PlainTextUnchanged(t *testing.T) {
	ctx := NewContext(nil)
	out, err := ctx.EvaluateCellValue("50% done")
	require.NoError(t, err)
	assert.Equal(t, "50% done", out)
}

func TestEvaluateCellValue_NilRendersEmpty(t *testing.T) {
	ctx := NewContext(nil)

	out, err := ctx.EvaluateCellValue("${missing}")
	require.NoError(t, err)
	assert.Equal(t, "", out)

	out, err = ctx.EvaluateCellValue("x${missing}y")
	require.NoError(t, err)
	assert.Equal(t, "xy", out)
}

func TestEvaluateCellValue_ValueFormatting(t *testing.T) {
	ctx := NewContext(map[string]any{
		"f": 2.5,
		"w": 10.0,
		"b": true,
	})

	out, err := ctx.EvaluateCellValue("${f}")
	require.NoError(t, err)
	assert.Equal(t, "2.5", out)

	out, err = ctx.EvaluateCellValue("${w}")
	require.NoError(t, err)
	assert.Equal(t, "10", out)

	out, err = ctx.EvaluateCellValue("${b}")
	require.NoError(t, err)
	assert.Equal(t, "true", out)
}

func TestEvaluateCellValue_Errors(t *testing.T) {
	ctx := NewContext(nil)

	_, err := ctx.EvaluateCellValue("${1 +}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `evaluate "${1 +}"`)

	_, err = ctx.EvaluateCellValue("x ${1 +} y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `evaluate expression "1 +" in "x ${1 +} y"`)
}

func TestExpand_EvaluatesTemplateCells(t *testing.T) {
	g := New(2, 2)
	require.True(t, g.SetContent(0, 0, "Item"))
	require.True(t, g.SetContent(0, 1, "Price"))
	require.True(t, g.SetContent(1, 0, "${item}"))
	require.True(t, g.SetContent(1, 1, "$${price * 2}"))

	expanded, err := g.Expand(NewContext(map[string]any{"item": "Widget", "price": 5}))
	require.NoError(t, err)

	assert.Equal(t, "Item", expanded.Cell(0, 0).Content)
	assert.Equal(t, "Widget", expanded.Cell(1, 0).Content)
	assert.Equal(t, "$10", expanded.Cell(1, 1).Content)

	// The template grid itself is untouched.
	assert.Equal(t, "${item}", g.Cell(1, 0).Content)
}

func TestExpand_NilContextUsesEmptyData(t *testing.T) {
	g := New(1, 1)
	require.True(t, g.SetContent(0, 0, "${missing}"))

	expanded, err := g.Expand(nil)
	require.NoError(t, err)
	assert.Equal(t, "", expanded.Cell(0, 0).Content)
}

func TestExpand_ErrorNamesFailingCell(t *testing.T) {
	g := New(2, 2)
	require.True(t, g.SetContent(1, 0, "${1 +}"))

	_, err := g.Expand(NewContext(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cell (1,0):")
}

func TestExpand_PreservesStructure(t *testing.T) {
	g := New(2, 2)
	require.True(t, g.SetContent(0, 0, "${h}"))
	require.True(t, g.Merge(0, 0, 0, 1))
	g.SetHeaderRowSpec("1")

	expanded, err := g.Expand(NewContext(map[string]any{"h": "Head"}))
	require.NoError(t, err)

	assert.Equal(t, "Head", expanded.Cell(0, 0).Content)
	assert.True(t, expanded.Cell(0, 1).MergedPart)
	assert.Equal(t, "1", expanded.HeaderRowSpec())
	assert.True(t, expanded.IsMerged(0, 0))
}
