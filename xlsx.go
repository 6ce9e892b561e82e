package textab

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is used when no sheet is named on export.
const DefaultSheetName = "Sheet1"

// ImportXLSX reads a workbook sheet into a grid. An empty sheet name
// selects the first sheet. Cell contents, merged ranges, horizontal
// alignment, and bold and italic fonts are carried over.
func ImportXLSX(path, sheet string) (*Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	defer f.Close()
	return importSheet(f, sheet)
}

// ImportXLSXReader reads a workbook sheet from a stream into a grid.
func ImportXLSXReader(r io.Reader, sheet string) (*Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return importSheet(f, sheet)
}

func importSheet(f *excelize.File, sheet string) (*Grid, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	if sheet == "" {
		sheet = sheets[0]
	} else if !containsSheet(sheets, sheet) {
		return nil, fmt.Errorf("workbook has no sheet %q", sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %q: %w", sheet, err)
	}

	rowCount := len(rows)
	if rowCount < 1 {
		rowCount = 1
	}
	colCount := 1
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	g := New(rowCount, colCount)
	for r, row := range rows {
		for c, val := range row {
			g.SetContent(r, c, val)
		}
	}

	// Merges come after content so continuation cells are blanked the
	// way the grid keeps them.
	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, fmt.Errorf("read merges from sheet %q: %w", sheet, err)
	}
	for _, mc := range merges {
		startCol, startRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			continue
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			continue
		}
		g.Merge(startRow-1, startCol-1, endRow-1, endCol-1)
	}

	importStyles(f, sheet, g)
	log.Debug().Str("sheet", sheet).Int("rows", g.Rows()).Int("cols", g.Cols()).
		Int("merges", len(merges)).Msg("Imported workbook sheet")
	return g, nil
}

// importStyles copies horizontal alignment and the bold and italic
// flags of each styled cell. Unstyled cells keep the grid defaults.
func importStyles(f *excelize.File, sheet string, g *Grid) {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				continue
			}
			styleID, err := f.GetCellStyle(sheet, axis)
			if err != nil || styleID == 0 {
				continue
			}
			st, err := f.GetStyle(styleID)
			if err != nil || st == nil {
				continue
			}
			if st.Alignment != nil {
				if a, ok := ParseAlignment(st.Alignment.Horizontal); ok {
					g.SetAlignment(r, c, a)
				}
			}
			if st.Font != nil {
				if st.Font.Bold {
					g.SetBold(r, c, true)
				}
				if st.Font.Italic {
					g.SetItalic(r, c, true)
				}
			}
		}
	}
}

// ExportXLSX writes the grid to an xlsx file. An empty sheet name
// falls back to DefaultSheetName.
func ExportXLSX(g *Grid, path, sheet string) error {
	f, err := buildWorkbook(g, sheet)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %q: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("Saved workbook")
	return nil
}

// ExportXLSXWriter writes the grid as an xlsx workbook to w.
func ExportXLSXWriter(g *Grid, w io.Writer, sheet string) error {
	f, err := buildWorkbook(g, sheet)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

type cellStyleKey struct {
	align  Alignment
	bold   bool
	italic bool
}

func buildWorkbook(g *Grid, sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	if sheet == "" {
		sheet = DefaultSheetName
	}
	if sheet != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheet); err != nil {
			return nil, fmt.Errorf("name sheet %q: %w", sheet, err)
		}
	}

	styleIDs := make(map[cellStyleKey]int)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := g.Cell(r, c)
			if cell.MergedPart {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", r, c, err)
			}
			if cell.Content != "" {
				if err := f.SetCellValue(sheet, axis, cell.Content); err != nil {
					return nil, fmt.Errorf("set cell %s: %w", axis, err)
				}
			}

			bold := cell.Bold || cell.Font == FontBold
			italic := cell.Italic || cell.Font == FontItalic
			if cell.Content == "" && !bold && !italic {
				continue
			}
			key := cellStyleKey{align: cell.Alignment, bold: bold, italic: italic}
			styleID, ok := styleIDs[key]
			if !ok {
				styleID, err = f.NewStyle(&excelize.Style{
					Font:      &excelize.Font{Bold: bold, Italic: italic},
					Alignment: &excelize.Alignment{Horizontal: cell.Alignment.String()},
				})
				if err != nil {
					return nil, fmt.Errorf("create style: %w", err)
				}
				styleIDs[key] = styleID
			}
			if err := f.SetCellStyle(sheet, axis, axis, styleID); err != nil {
				return nil, fmt.Errorf("style cell %s: %w", axis, err)
			}
		}
	}

	for _, reg := range g.Regions() {
		start, err := excelize.CoordinatesToCellName(reg.StartCol+1, reg.StartRow+1)
		if err != nil {
			return nil, fmt.Errorf("region %s: %w", reg, err)
		}
		end, err := excelize.CoordinatesToCellName(reg.EndCol+1, reg.EndRow+1)
		if err != nil {
			return nil, fmt.Errorf("region %s: %w", reg, err)
		}
		if err := f.MergeCell(sheet, start, end); err != nil {
			return nil, fmt.Errorf("merge %s: %w", reg, err)
		}
	}

	return f, nil
}

func containsSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}
