package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/textab/textab/internal/config"
)

var (
	verbosity  int
	configPath string

	cfg = config.Default()

	rootCmd = &cobra.Command{
		Use:   "textab",
		Short: "Edit tables and turn them into LaTeX",
		Long: `textab edits two-dimensional tables as JSON documents and encodes
them as LaTeX in several layout variants: plain tabular, longtable,
booktabs, array, and a styled form driven by configuration. Cells may
hold ${expr} placeholders that are expanded against runtime data.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbosity)
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Errors are reported here so main
// stays a plain exit-code shim.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "textab:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file (default "+config.DefaultPath()+")")
}

func setupLogging(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
}
