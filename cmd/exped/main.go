package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var log = commonlog.GetLogger("exped")

func newRootCmd() *cobra.Command {
	var verbosity int
	var logFile string

	rootCmd := &cobra.Command{
		Use:           "exped",
		Short:         "Edit arithmetic expressions by dragging their operands",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var path *string
			if logFile != "" {
				path = &logFile
			}
			commonlog.Configure(verbosity, path)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newFlattenCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newReorderCmd())

	rootCmd.AddCommand(newUICmd())
	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
