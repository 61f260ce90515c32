package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir runs the test from an empty directory so no stray quizbox.yaml
// or .env is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Empty(t, cfg.BankPath)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join("/tmp/state", "quizbox", "quizbox.log"), cfg.Log.Path)
	assert.Equal(t, "file::memory:?cache=shared", cfg.Journal.DSN)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t)
	t.Setenv("QUIZBOX_ENV", "production")
	t.Setenv("QUIZBOX_BANK_PATH", "bank.toml")
	t.Setenv("QUIZBOX_SEED", "42")
	t.Setenv("QUIZBOX_LOG_LEVEL", "debug")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "bank.toml", cfg.BankPath)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFlagsBeatEnv(t *testing.T) {
	chdir(t)
	t.Setenv("QUIZBOX_BANK_PATH", "from-env.toml")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("bank", "", "")
	flags.Uint64("seed", 0, "")
	require.NoError(t, flags.Parse([]string{"--bank", "from-flag.json", "--seed", "7"}))

	cfg, err := Load(flags)
	require.NoError(t, err)
	assert.Equal(t, "from-flag.json", cfg.BankPath)
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestLoadConfigFile(t *testing.T) {
	dir := chdir(t)
	yaml := "env: production\nlog:\n  level: warn\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quizbox.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("QUIZBOX_SEED=99\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("QUIZBOX_SEED") })

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), cfg.Seed)
}
