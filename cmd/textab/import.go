package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/textab/textab"
)

var (
	importSheet  string
	importOutput string
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Build a table document from a spreadsheet or delimited text",
	Long: `Import reads an xlsx workbook, or CSV, TSV, or plain text, and
writes the equivalent JSON table document. Files ending in .xlsx are
read as workbooks; anything else, including stdin, is treated as
delimited text and its format detected from the first line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := argOrDash(args)

		var g *textab.Grid
		if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
			grid, err := textab.ImportXLSX(path, importSheet)
			if err != nil {
				return err
			}
			g = grid
		} else {
			in, err := openInput(path)
			if err != nil {
				return err
			}
			defer in.Close()
			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			rows, format := textab.ParseDelimited(string(data))
			log.Debug().Stringer("format", format).Int("rows", len(rows)).Msg("Parsed delimited input")
			g = textab.GridFromRows(rows)
		}

		out, err := openOutput(importOutput)
		if err != nil {
			return err
		}
		defer out.Close()
		return textab.WriteGrid(g, out)
	},
}

func init() {
	importCmd.Flags().StringVar(&importSheet, "sheet", "", "Workbook sheet to read (default first)")
	importCmd.Flags().StringVarP(&importOutput, "output", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(importCmd)
}
