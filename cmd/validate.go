package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizbox/internal/quiz"
)

var validateCmd = &cobra.Command{
	Use:   "validate <bank>",
	Short: "Check a question bank file without starting the quiz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := quiz.LoadBank(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d questions, %d praises, %d admonishments)\n",
			args[0], len(bank.Questions), len(bank.Praises), len(bank.Admonishments))
		return nil
	},
}
