// Package cli implements the schedulyze command line interface. Commands
// run the scheduling engine in-process; no server is required.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Aanishnithin07/Schedulyze/internal/logging"
)

var (
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for the schedulyze CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "schedulyze",
		Short: "Schedulyze — study schedule generator",
		Long:  "Schedulyze turns a list of subjects with deadlines into a prioritized, day-by-day study plan with sessions and breaks.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.New(flagLogLevel, flagLogFormat)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newPlanCmd(),
		newScoresCmd(),
		newDemoCmd(),
	)

	return root
}
