package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizbox",
	Short: "Multiple-choice quiz in the terminal",
	Long:  "Quizbox: a terminal quiz that asks a fixed set of questions, comments on every answer and reports your score.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("bank", "", "Question bank file (.toml or .json); defaults to the built-in quiz")
	flags.Uint64("seed", 0, "Seed for feedback selection (0 seeds from the clock)")
	flags.String("log-file", "", "Log file path (overrides QUIZBOX_LOG_PATH)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("journal", "", "SQLite DSN for the answer journal")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}
