package main

import (
	"github.com/spf13/cobra"

	"github.com/textab/textab"
)

var (
	documentVariant string
	documentClass   string
	documentOutput  string
	documentData    []string
)

var documentCmd = &cobra.Command{
	Use:   "document [document]",
	Short: "Encode a table as a complete compilable LaTeX document",
	Long: `Document wraps the encoded table in a documentclass preamble that
declares the packages the chosen variant needs, so the output compiles
on its own.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGridArg(argOrDash(args))
		if err != nil {
			return err
		}
		v, err := pickVariant(documentVariant)
		if err != nil {
			return err
		}
		g, err = expandData(g, documentData)
		if err != nil {
			return err
		}
		class := documentClass
		if class == "" {
			class = cfg.DocumentClass
		}
		rendered := textab.EncodeDocument(g, v, class, textab.WithStyle(cfg.Style.ToStyle()))
		return writeOutput(documentOutput, rendered)
	},
}

func init() {
	documentCmd.Flags().StringVarP(&documentVariant, "variant", "t", "",
		"Table variant: tabular, longtable, booktabs, array, styled")
	documentCmd.Flags().StringVar(&documentClass, "class", "", "Document class (default from config)")
	documentCmd.Flags().StringVarP(&documentOutput, "output", "o", "", "Output file (default stdout)")
	documentCmd.Flags().StringArrayVarP(&documentData, "data", "d", nil,
		"Template data as key=value, repeatable")
	rootCmd.AddCommand(documentCmd)
}
