package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/textab/textab"
)

var (
	previewData  []string
	previewPlain bool
)

var previewCmd = &cobra.Command{
	Use:   "preview [document]",
	Short: "Render a table document in the terminal",
	Long: `Preview draws the grid with box characters, honoring alignment,
bold and italic fonts, and header emphasis, so a document can be
checked without compiling any LaTeX.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGridArg(argOrDash(args))
		if err != nil {
			return err
		}
		g, err = expandData(g, previewData)
		if err != nil {
			return err
		}
		fmt.Println(renderPreview(g, cfg.Color && !previewPlain))
		return nil
	},
}

func init() {
	previewCmd.Flags().StringArrayVarP(&previewData, "data", "d", nil,
		"Template data as key=value, repeatable")
	previewCmd.Flags().BoolVar(&previewPlain, "plain", false, "Disable color and emphasis")
	rootCmd.AddCommand(previewCmd)
}

func renderPreview(g *textab.Grid, color bool) string {
	widths := previewWidths(g)

	var b strings.Builder
	b.WriteString(previewRule(widths, "┌", "┬", "┐"))
	for r := 0; r < g.Rows(); r++ {
		b.WriteByte('\n')
		b.WriteString(previewRow(g, r, widths, color))
		if r < g.Rows()-1 {
			b.WriteByte('\n')
			b.WriteString(previewRule(widths, "├", "┼", "┤"))
		}
	}
	b.WriteByte('\n')
	b.WriteString(previewRule(widths, "└", "┴", "┘"))
	return b.String()
}

func previewRule(widths []int, left, mid, right string) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w)
	}
	return left + strings.Join(parts, mid) + right
}

func previewRow(g *textab.Grid, r int, widths []int, color bool) string {
	cells := make([]string, g.Cols())
	for c := 0; c < g.Cols(); c++ {
		cell := g.Cell(r, c)
		content := cell.Content
		if cell.MergedPart {
			content = ""
		}
		st := lipgloss.NewStyle().
			Width(widths[c]).
			Padding(0, 1).
			Align(previewAlign(cell.Alignment))
		if color {
			if cell.Bold || cell.Font == textab.FontBold {
				st = st.Bold(true)
			}
			if cell.Italic || cell.Font == textab.FontItalic {
				st = st.Italic(true)
			}
			if g.IsHeaderCell(r, c) {
				st = st.Bold(true).Foreground(lipgloss.Color("6"))
			}
		}
		cells[c] = st.Render(content)
	}
	return "│" + strings.Join(cells, "│") + "│"
}

func previewAlign(a textab.Alignment) lipgloss.Position {
	switch a {
	case textab.AlignLeft:
		return lipgloss.Left
	case textab.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}

// previewWidths sizes each column to its widest cell plus one space of
// padding on each side. Merged continuations do not count.
func previewWidths(g *textab.Grid) []int {
	widths := make([]int, g.Cols())
	for c := 0; c < g.Cols(); c++ {
		w := 1
		for r := 0; r < g.Rows(); r++ {
			cell := g.Cell(r, c)
			if cell.MergedPart {
				continue
			}
			if cw := lipgloss.Width(cell.Content); cw > w {
				w = cw
			}
		}
		widths[c] = w + 2
	}
	return widths
}
