package cmd

import (
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Analyze the yard snapshot and write the dwell report",
	RunE:  run,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
