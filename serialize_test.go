package textab

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDocument_SparseCells(t *testing.T) {
	g := New(2, 3)
	require.True(t, g.SetContent(0, 1, "x"))
	require.True(t, g.SetAlignment(0, 1, AlignRight))
	g.SetHeaderRowSpec("1")

	doc := g.ToDocument()
	assert.Equal(t, 2, doc.Rows)
	assert.Equal(t, 3, doc.Cols)
	assert.Equal(t, "1", doc.HeaderRows)
	assert.Empty(t, doc.HeaderCols)

	// Only the one touched cell is carried; empty defaults stay out.
	require.Len(t, doc.Cells, 1)
	dc, ok := doc.Cells["0,1"]
	require.True(t, ok)
	assert.Equal(t, "x", dc.Content)
	assert.Equal(t, "r", dc.Alignment)
	assert.Equal(t, 1, dc.RowSpan)
	assert.Equal(t, 1, dc.ColSpan)
	assert.False(t, dc.MergedPart)
}

func TestToDocument_MergedRegions(t *testing.T) {
	g := New(3, 3)
	require.True(t, g.SetContent(0, 0, "head"))
	require.True(t, g.Merge(0, 0, 1, 1))

	doc := g.ToDocument()
	require.Len(t, doc.MergedRegions, 1)
	assert.Equal(t, [4]int{0, 0, 1, 1}, doc.MergedRegions[0])

	anchor := doc.Cells["0,0"]
	assert.Equal(t, 2, anchor.RowSpan)
	assert.Equal(t, 2, anchor.ColSpan)
	assert.True(t, doc.Cells["0,1"].MergedPart)
	assert.True(t, doc.Cells["1,1"].MergedPart)
}

func TestDocumentRoundTrip(t *testing.T) {
	g := New(3, 3)
	require.True(t, g.SetContent(0, 0, "Region"))
	require.True(t, g.SetContent(2, 0, "total"))
	require.True(t, g.SetAlignment(2, 0, AlignRight))
	require.True(t, g.Merge(0, 0, 0, 1))
	g.SetHeaderRowSpec("1")
	g.SetHeaderColSpec("1,3")

	var buf bytes.Buffer
	require.NoError(t, WriteGrid(g, &buf))

	loaded, err := LoadGrid(&buf)
	require.NoError(t, err)

	assert.Equal(t, 3, loaded.Rows())
	assert.Equal(t, 3, loaded.Cols())
	assert.Equal(t, "Region", loaded.Cell(0, 0).Content)
	assert.Equal(t, Span{Rows: 1, Cols: 2}, loaded.Cell(0, 0).Span)
	assert.True(t, loaded.Cell(0, 1).MergedPart)
	assert.Equal(t, AlignRight, loaded.Cell(2, 0).Alignment)
	assert.Equal(t, "1", loaded.HeaderRowSpec())
	assert.Equal(t, "1,3", loaded.HeaderColSpec())

	reg, ok := loaded.MergedRegion(0, 0)
	require.True(t, ok)
	assert.Equal(t, Region{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 1}, reg)
}

func TestDocumentRoundTrip_AlignmentOnlyCellReverts(t *testing.T) {
	g := New(2, 2)
	require.True(t, g.SetAlignment(1, 1, AlignRight))

	var buf bytes.Buffer
	require.NoError(t, WriteGrid(g, &buf))
	loaded, err := LoadGrid(&buf)
	require.NoError(t, err)

	// An empty unmerged cell is not persisted, so its alignment
	// falls back to the grid default on load.
	assert.Equal(t, AlignCenter, loaded.Cell(1, 1).Alignment)
}

func TestFromDocument_NilDocument(t *testing.T) {
	_, err := FromDocument(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil document")
}

func TestFromDocument_BadDimensions(t *testing.T) {
	_, err := FromDocument(&Document{Rows: 0, Cols: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document dimensions 0x5 invalid")

	_, err = FromDocument(&Document{Rows: 2, Cols: -1})
	require.Error(t, err)
}

func TestFromDocument_MalformedCellKey(t *testing.T) {
	doc := &Document{
		Rows:  2,
		Cols:  2,
		Cells: map[string]DocumentCell{"banana": {Content: "x"}},
	}
	_, err := FromDocument(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `malformed cell position "banana"`)

	doc.Cells = map[string]DocumentCell{"1,b": {Content: "x"}}
	_, err = FromDocument(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `malformed cell position "1,b"`)
}

func TestFromDocument_OutOfRangeCellIgnored(t *testing.T) {
	doc := &Document{
		Rows:  2,
		Cols:  2,
		Cells: map[string]DocumentCell{"9,9": {Content: "ghost"}},
	}
	g, err := FromDocument(doc)
	require.NoError(t, err)
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			assert.Empty(t, g.Cell(row, col).Content)
		}
	}
}

func TestFromDocument_EntryDefaults(t *testing.T) {
	doc := &Document{
		Rows: 1,
		Cols: 1,
		Cells: map[string]DocumentCell{
			"0,0": {Content: "x", Alignment: "", RowSpan: 0, ColSpan: -3},
		},
	}
	g, err := FromDocument(doc)
	require.NoError(t, err)

	cell := g.Cell(0, 0)
	assert.Equal(t, AlignLeft, cell.Alignment)
	assert.Equal(t, UnitSpan, cell.Span)
}

func TestLoadGrid_FromJSON(t *testing.T) {
	const raw = `{
  "rows": 2,
  "cols": 2,
  "cells": {
    "0,0": {"content": "a", "alignment": "l", "row_span": 1, "col_span": 1}
  },
  "merged_regions": [],
  "header_rows": "  1 "
}`
	g, err := LoadGrid(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "a", g.Cell(0, 0).Content)
	assert.Equal(t, AlignLeft, g.Cell(0, 0).Alignment)
	assert.Equal(t, "1", g.HeaderRowSpec())
}

func TestLoadDocument_InvalidJSON(t *testing.T) {
	_, err := LoadDocument(strings.NewReader("{"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode document")
}

func TestDocumentWrite_IndentedJSON(t *testing.T) {
	g := New(1, 1)
	require.True(t, g.SetContent(0, 0, "x"))

	var buf bytes.Buffer
	require.NoError(t, WriteGrid(g, &buf))

	out := buf.String()
	assert.Contains(t, out, "\"rows\": 1")
	assert.Contains(t, out, "\"0,0\"")
	assert.True(t, strings.HasSuffix(out, "\n"))
}
