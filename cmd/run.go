package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizbox/internal/app"
	"github.com/abhisek/quizbox/internal/config"
	"github.com/abhisek/quizbox/internal/logger"
	"github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/store"
)

// runApp loads configuration, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	state, err := newState(cfg)
	if err != nil {
		return err
	}

	opts := app.Options{State: state, Logger: log}

	st, err := store.Open(cfg.Journal.DSN)
	if err != nil {
		// The quiz works without a journal; only the review is lost.
		log.Warn("journal unavailable", zap.String("dsn", cfg.Journal.DSN), zap.Error(err))
	} else {
		defer st.Close()
		opts.EventRepo = st.EventRepo()
	}

	log.Info("starting quiz",
		zap.String("bank", bankName(cfg)),
		zap.Int("questions", len(state.Questions)),
	)
	return app.Run(opts)
}

// loadBank reads the configured bank file, or returns the built-in quiz.
func loadBank(cfg *config.Config) (quiz.Bank, error) {
	if cfg.BankPath == "" {
		return quiz.DefaultBank(), nil
	}
	bank, err := quiz.LoadBank(cfg.BankPath)
	if err != nil {
		return quiz.Bank{}, fmt.Errorf("load bank: %w", err)
	}
	return bank, nil
}

func newState(cfg *config.Config) (*quiz.State, error) {
	bank, err := loadBank(cfg)
	if err != nil {
		return nil, err
	}
	state, err := quiz.New(bank, quiz.NewRandSource(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("init quiz: %w", err)
	}
	return state, nil
}

func bankName(cfg *config.Config) string {
	if cfg.BankPath == "" {
		return "built-in"
	}
	return cfg.BankPath
}
