package textab

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportImportXLSX_RoundTrip(t *testing.T) {
	g := New(2, 3)
	require.True(t, g.SetContent(0, 0, "Span"))
	require.True(t, g.SetContent(0, 2, "Head"))
	require.True(t, g.SetContent(1, 0, "a"))
	require.True(t, g.SetContent(1, 1, "b"))
	require.True(t, g.SetContent(1, 2, "c"))
	require.True(t, g.Merge(0, 0, 0, 1))
	require.True(t, g.SetAlignment(1, 2, AlignRight))
	g.SetBold(0, 2, true)
	g.SetItalic(1, 0, true)

	var buf bytes.Buffer
	require.NoError(t, ExportXLSXWriter(g, &buf, ""))

	loaded, err := ImportXLSXReader(&buf, "")
	require.NoError(t, err)

	assert.Equal(t, 2, loaded.Rows())
	assert.Equal(t, 3, loaded.Cols())
	assert.Equal(t, "Span", loaded.Cell(0, 0).Content)
	assert.Equal(t, "Head", loaded.Cell(0, 2).Content)
	assert.Equal(t, "c", loaded.Cell(1, 2).Content)

	reg, ok := loaded.MergedRegion(0, 0)
	require.True(t, ok)
	assert.Equal(t, Region{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 1}, reg)
	assert.True(t, loaded.Cell(0, 1).MergedPart)

	assert.Equal(t, AlignRight, loaded.Cell(1, 2).Alignment)
	assert.True(t, loaded.Cell(0, 2).Bold)
	assert.True(t, loaded.Cell(1, 0).Italic)
}

func TestExportXLSXWriter_CustomSheet(t *testing.T) {
	g := New(1, 1)
	require.True(t, g.SetContent(0, 0, "x"))

	var buf bytes.Buffer
	require.NoError(t, ExportXLSXWriter(g, &buf, "Data"))
	raw := buf.Bytes()

	loaded, err := ImportXLSXReader(bytes.NewReader(raw), "Data")
	require.NoError(t, err)
	assert.Equal(t, "x", loaded.Cell(0, 0).Content)

	_, err = ImportXLSXReader(bytes.NewReader(raw), "Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `workbook has no sheet "Missing"`)
}

func TestImportXLSXReader_FirstSheetByDefault(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "hello"))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	g, err := ImportXLSXReader(&buf, "")
	require.NoError(t, err)
	assert.Equal(t, "hello", g.Cell(0, 0).Content)
}

func TestImportXLSXReader_RaggedRowsPadded(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "a"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "b"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "c"))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	g, err := ImportXLSXReader(&buf, "")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, "c", g.Cell(1, 0).Content)
	assert.Equal(t, "", g.Cell(1, 1).Content)
}

func TestImportXLSXReader_NotAWorkbook(t *testing.T) {
	_, err := ImportXLSXReader(strings.NewReader("not a zip"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open workbook")
}

func TestImportXLSX_MissingFile(t *testing.T) {
	_, err := ImportXLSX(filepath.Join(t.TempDir(), "none.xlsx"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open workbook")
}

func TestExportXLSX_WritesFile(t *testing.T) {
	g := New(1, 2)
	require.True(t, g.SetContent(0, 0, "left"))
	require.True(t, g.SetContent(0, 1, "right"))

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, ExportXLSX(g, path, ""))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(0))

	loaded, err := ImportXLSX(path, "")
	require.NoError(t, err)
	assert.Equal(t, "left", loaded.Cell(0, 0).Content)
	assert.Equal(t, "right", loaded.Cell(0, 1).Content)
}

func TestExportXLSXWriter_FontStyleTreatedAsBold(t *testing.T) {
	g := New(1, 1)
	require.True(t, g.SetContent(0, 0, "h"))
	require.True(t, g.SetFontStyle(0, 0, FontBold))

	var buf bytes.Buffer
	require.NoError(t, ExportXLSXWriter(g, &buf, ""))

	loaded, err := ImportXLSXReader(&buf, "")
	require.NoError(t, err)
	assert.True(t, loaded.Cell(0, 0).Bold)
}
