package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/textab/textab"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

var validateCmd = &cobra.Command{
	Use:   "validate [document]",
	Short: "Check a table document for inconsistencies",
	Long: `Validate checks the grid's merged regions, merge flags, header
specs, and template expression syntax. Warnings are advisory; errors
mean the document will not render faithfully and fail the command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGridArg(argOrDash(args))
		if err != nil {
			return err
		}

		issues := g.Validate()
		issues = append(issues, g.ValidateTemplate()...)
		if len(issues) == 0 {
			fmt.Println(styled(okStyle, "no issues found"))
			return nil
		}

		errorCount := 0
		for _, issue := range issues {
			line := issue.String()
			switch issue.Severity {
			case textab.SeverityError:
				errorCount++
				line = styled(errorStyle, line)
			case textab.SeverityWarning:
				line = styled(warnStyle, line)
			}
			fmt.Println(line)
		}
		if errorCount > 0 {
			return fmt.Errorf("%d error(s) found", errorCount)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// styled applies a lipgloss style unless color output is disabled.
func styled(st lipgloss.Style, s string) string {
	if !cfg.Color {
		return s
	}
	return st.Render(s)
}
