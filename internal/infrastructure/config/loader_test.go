package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(body), 0o600))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(Test, []string{t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "mdy", cfg.Calculator.SlashDateOrder)
	assert.Equal(t, 1024, cfg.Calculator.ParseCacheSize)
	assert.Equal(t, "%H:%M:%S", cfg.Calculator.DefaultFormat)
	assert.Equal(t, "minutes", cfg.Calculator.DefaultTargetUnit)
}

func TestLoad_File(t *testing.T) {
	dir := writeConfig(t, Production, `
server:
  port: 9090
  readTimeout: 5
  writeTimeout: 2m
logger:
  level: WARN
  format: console
calculator:
  slashDateOrder: dmy
  parseCacheSize: 0
`)

	cfg, err := Load(Production, []string{dir})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Server.WriteTimeout)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "dmy", cfg.Calculator.SlashDateOrder)
	assert.Equal(t, 0, cfg.Calculator.ParseCacheSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, Development, "server:\n  port: 9090\n")
	t.Setenv("TC_SERVER_PORT", "7070")
	t.Setenv("TC_LOGGER_LEVEL", "debug")
	t.Setenv("TC_CALCULATOR_SLASHDATEORDER", "dmy")

	cfg, err := Load(Development, []string{dir})
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "dmy", cfg.Calculator.SlashDateOrder)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"port", "server:\n  port: 70000\n"},
		{"log level", "logger:\n  level: loud\n"},
		{"log format", "logger:\n  format: xml\n"},
		{"log output", "logger:\n  output: file\n"},
		{"slash order", "calculator:\n  slashDateOrder: ymd\n"},
		{"cache size", "calculator:\n  parseCacheSize: -1\n"},
		{"malformed yaml", "server: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(Test, []string{writeConfig(t, Test, tt.body)})
			assert.Error(t, err)
		})
	}
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("TC_ENV", "")
	assert.Equal(t, Development, getEnvironment())

	t.Setenv("TC_ENV", "Production")
	assert.Equal(t, Production, getEnvironment())
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TC_DOTENV_PROBE=loaded\n"), 0o600))
	t.Setenv("TC_DOTENV_PROBE", "")
	require.NoError(t, os.Unsetenv("TC_DOTENV_PROBE"))

	require.NoError(t, loadDotEnvFile([]string{filepath.Join(dir, "missing"), path}))
	assert.Equal(t, "loaded", os.Getenv("TC_DOTENV_PROBE"))

	assert.ErrorIs(t, loadDotEnvFile([]string{filepath.Join(dir, "missing")}), errNoDotEnv)
}
