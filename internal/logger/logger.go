package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/quizbox/internal/config"
)

// New builds a file logger. Production uses JSON output, everything else
// the development console encoder.
func New(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	if cfg.Log.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}

	var zc zap.Config
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.Log.Path}
	zc.ErrorOutputPaths = []string{cfg.Log.Path}
	if cfg.Log.Path == "" {
		zc.OutputPaths = nil
		zc.ErrorOutputPaths = nil
	}

	return zc.Build(zap.Fields(zap.String("env", cfg.Env)))
}
