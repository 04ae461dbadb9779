package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "tictactoe",
	Short:         "Tic-tac-toe board engine",
	Long:          "Checks tic-tac-toe boards for a winner and for reachability, and serves live games over HTTP.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command selected by the process arguments.
func Execute() error {
	return rootCmd.Execute()
}
