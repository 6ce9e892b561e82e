package main

import (
	"github.com/spf13/cobra"

	"github.com/textab/textab"
)

var (
	encodeVariant  string
	encodeOutput   string
	encodeData     []string
	encodeCaption  string
	encodeLabel    string
	encodePosition string
	encodeFloat    bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode [document]",
	Short: "Encode a table document as LaTeX",
	Long: `Encode reads a JSON table document from a file or stdin and writes
its LaTeX rendering. The variant defaults to the configured one, and
--data expands ${expr} placeholders before encoding.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGridArg(argOrDash(args))
		if err != nil {
			return err
		}
		v, err := pickVariant(encodeVariant)
		if err != nil {
			return err
		}
		g, err = expandData(g, encodeData)
		if err != nil {
			return err
		}

		enc := textab.NewEncoder(g, textab.WithStyle(cfg.Style.ToStyle()))
		var rendered string
		if encodeFloat || encodeCaption != "" || encodeLabel != "" {
			rendered = enc.EncodeWithCaption(v, encodeCaption, encodeLabel, encodePosition)
		} else {
			rendered = enc.Encode(v)
		}
		return writeOutput(encodeOutput, rendered)
	},
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeVariant, "variant", "t", "",
		"Table variant: tabular, longtable, booktabs, array, styled")
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "Output file (default stdout)")
	encodeCmd.Flags().StringArrayVarP(&encodeData, "data", "d", nil,
		"Template data as key=value, repeatable")
	encodeCmd.Flags().BoolVar(&encodeFloat, "float", false, "Wrap the table in a float environment")
	encodeCmd.Flags().StringVar(&encodeCaption, "caption", "", "Float caption, implies --float")
	encodeCmd.Flags().StringVar(&encodeLabel, "label", "", "Float label, implies --float")
	encodeCmd.Flags().StringVar(&encodePosition, "position", "", "Float position specifier")
	rootCmd.AddCommand(encodeCmd)
}

// pickVariant resolves the variant flag against the configured
// default.
func pickVariant(flag string) (textab.Variant, error) {
	name := flag
	if name == "" {
		name = cfg.Variant
	}
	return textab.ParseVariant(name)
}

// expandData applies key=value template data to the grid when any was
// given.
func expandData(g *textab.Grid, pairs []string) (*textab.Grid, error) {
	data, err := parseDataPairs(pairs)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return g, nil
	}
	return g.Expand(textab.NewContext(data))
}
