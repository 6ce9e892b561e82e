package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/textab/textab"
)

var (
	exportSheet  string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export [document]",
	Short: "Write a table document as an xlsx workbook",
	Long: `Export turns a JSON table document into an xlsx workbook, carrying
over contents, merged ranges, alignment, and bold and italic fonts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGridArg(argOrDash(args))
		if err != nil {
			return err
		}
		if exportOutput == "" || exportOutput == "-" {
			return textab.ExportXLSXWriter(g, os.Stdout, exportSheet)
		}
		return textab.ExportXLSX(g, exportOutput, exportSheet)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportSheet, "sheet", "", "Sheet name (default Sheet1)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
