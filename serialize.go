package textab

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DocumentCell is the wire form of a single non-default cell.
type DocumentCell struct {
	Content    string `json:"content"`
	Alignment  string `json:"alignment"`
	RowSpan    int    `json:"row_span"`
	ColSpan    int    `json:"col_span"`
	MergedPart bool   `json:"is_merged_part"`
}

// Document is the persisted wire form of a grid. The cell map is sparse:
// it carries only non-default cells (content, merged-part status, or a
// span above 1x1), keyed by "row,col" position strings. Header specs are
// optional keys; absent specs load as empty.
type Document struct {
	Rows          int                     `json:"rows"`
	Cols          int                     `json:"cols"`
	Cells         map[string]DocumentCell `json:"cells"`
	MergedRegions [][4]int                `json:"merged_regions"`
	HeaderRows    string                  `json:"header_rows,omitempty"`
	HeaderCols    string                  `json:"header_cols,omitempty"`
}

// ToDocument converts the grid into its wire form.
func (g *Grid) ToDocument() *Document {
	doc := &Document{
		Rows:          g.rows,
		Cols:          g.cols,
		Cells:         make(map[string]DocumentCell),
		MergedRegions: make([][4]int, 0, len(g.regions)),
		HeaderRows:    g.headerRowSpec,
		HeaderCols:    g.headerColSpec,
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := g.Cell(row, col)
			if cell.Content == "" && !cell.MergedPart && cell.Span.IsUnit() {
				continue
			}
			doc.Cells[fmt.Sprintf("%d,%d", row, col)] = DocumentCell{
				Content:    cell.Content,
				Alignment:  cell.Alignment.Letter(),
				RowSpan:    cell.Span.Rows,
				ColSpan:    cell.Span.Cols,
				MergedPart: cell.MergedPart,
			}
		}
	}
	for _, reg := range g.regions {
		doc.MergedRegions = append(doc.MergedRegions,
			[4]int{reg.StartRow, reg.StartCol, reg.EndRow, reg.EndCol})
	}
	return doc
}

// FromDocument builds a grid from its wire form. Dimensions below 1 and
// malformed cell position keys are errors; a sparse cell map is expected,
// with absent positions keeping grid defaults. A cell entry with a
// missing or unrecognized alignment loads as left-aligned; spans below 1
// are clamped to 1. Cell entries outside the stated dimensions are
// ignored.
func FromDocument(doc *Document) (*Grid, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil document")
	}
	if doc.Rows < 1 || doc.Cols < 1 {
		return nil, fmt.Errorf("document dimensions %dx%d invalid: rows and cols must be at least 1", doc.Rows, doc.Cols)
	}

	g := New(doc.Rows, doc.Cols)
	for key, dc := range doc.Cells {
		row, col, err := parseCellKey(key)
		if err != nil {
			return nil, err
		}
		cell := g.Cell(row, col)
		if cell == nil {
			continue
		}
		cell.Content = dc.Content
		alignment, _ := ParseAlignment(dc.Alignment)
		cell.Alignment = alignment
		cell.Span = Span{Rows: dc.RowSpan, Cols: dc.ColSpan}
		if cell.Span.Rows < 1 {
			cell.Span.Rows = 1
		}
		if cell.Span.Cols < 1 {
			cell.Span.Cols = 1
		}
		cell.MergedPart = dc.MergedPart
	}

	for _, reg := range doc.MergedRegions {
		g.regions = append(g.regions, Region{
			StartRow: reg[0], StartCol: reg[1], EndRow: reg[2], EndCol: reg[3],
		})
	}
	g.headerRowSpec = strings.TrimSpace(doc.HeaderRows)
	g.headerColSpec = strings.TrimSpace(doc.HeaderCols)
	return g, nil
}

// parseCellKey parses a "row,col" position key.
func parseCellKey(key string) (int, int, error) {
	parts := strings.SplitN(key, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed cell position %q", key)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed cell position %q: %w", key, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed cell position %q: %w", key, err)
	}
	return row, col, nil
}

// LoadDocument decodes a document from JSON.
func LoadDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

// Write encodes the document as indented JSON.
func (d *Document) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}

// LoadGrid decodes a document from JSON and builds the grid it describes.
func LoadGrid(r io.Reader) (*Grid, error) {
	doc, err := LoadDocument(r)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc)
}

// WriteGrid encodes the grid's wire form as indented JSON.
func WriteGrid(g *Grid, w io.Writer) error {
	return g.ToDocument().Write(w)
}
