package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration loaded from files, environment
// variables and command-line flags.
type Config struct {
	Env      string  `mapstructure:"env"`       // local, production
	BankPath string  `mapstructure:"bank_path"` // question bank file; empty uses the built-in quiz
	Seed     uint64  `mapstructure:"seed"`      // feedback sampler seed; 0 seeds from the clock
	Log      Log     `mapstructure:"log"`
	Journal  Journal `mapstructure:"journal"`
}

// Log configures the file logger. The terminal belongs to the UI, so
// logs never go to stdout or stderr.
type Log struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// Journal configures the answer journal database.
type Journal struct {
	DSN string `mapstructure:"dsn"`
}

// IsProduction reports whether production logging should be used.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration in priority order: flags, QUIZBOX_* environment
// variables (a .env file in the working directory is loaded first), an
// optional quizbox.yaml, then defaults. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("quizbox")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "quizbox"))
	}

	v.SetDefault("env", "local")
	v.SetDefault("bank_path", "")
	v.SetDefault("seed", 0)
	v.SetDefault("log.path", defaultLogPath())
	v.SetDefault("log.level", "info")
	v.SetDefault("journal.dsn", "file::memory:?cache=shared")

	v.SetEnvPrefix("QUIZBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		bindings := map[string]string{
			"bank_path":   "bank",
			"seed":        "seed",
			"log.path":    "log-file",
			"log.level":   "log-level",
			"journal.dsn": "journal",
		}
		for key, name := range bindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// defaultLogPath resolves $XDG_STATE_HOME/quizbox/quizbox.log, falling
// back to ~/.local/state.
func defaultLogPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "quizbox.log")
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "quizbox", "quizbox.log")
}
