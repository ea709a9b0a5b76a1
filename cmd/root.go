package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nmt",
	Short: "Mock NMT mathematics exam",
	Long:  "nmt runs a timed mock of the Ukrainian NMT mathematics test in the terminal and manages classes, results and the question bank.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTake(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: nmt.yaml in . or the user config dir)")
	rootCmd.PersistentFlags().String("db", "", "Database DSN or SQLite file path (overrides database.dsn)")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(classCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
