package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe [document]",
	Short: "Summarize a table document",
	Long: `Describe prints the grid's dimensions, header specs with the rows
and columns they resolve to, merged regions, and any cells holding
template expressions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGridArg(argOrDash(args))
		if err != nil {
			return err
		}
		fmt.Print(g.Describe())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
