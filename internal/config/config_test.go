package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Test Biz", "corporation")
	cfg.Fiscal.YearStart = "07-01"
	cfg.Statement.TieTolerance = decimal.RequireFromString("0.01")
	cfg.Statement.Output = "yaml"
	cfg.RunLog = false

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Business, got.Business)
	assert.Equal(t, "07-01", got.Fiscal.YearStart)
	assert.True(t, cfg.Statement.TieTolerance.Equal(got.Statement.TieTolerance))
	assert.Equal(t, "yaml", got.Statement.Output)
	assert.Equal(t, cfg.Logging, got.Logging)
	assert.False(t, got.RunLog)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Company", "corporation")

	assert.Equal(t, "My Company", cfg.Business.Name)
	assert.Equal(t, "corporation", cfg.Business.EntityType)
	assert.Equal(t, "01-01", cfg.Fiscal.YearStart)
	assert.True(t, cfg.Statement.TieTolerance.IsZero())
	assert.Equal(t, "json", cfg.Statement.Output)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.RunLog)
	assert.False(t, cfg.Git.AutoCommit)
	assert.Equal(t, "Statements", cfg.Git.AuthorName)
	assert.Equal(t, "statements@cleared.dev", cfg.Git.AuthorEmail)
	assert.NoError(t, cfg.Validate())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("business:\n  name: Acme\n  entity_type: corporation\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme", cfg.Business.Name)
	assert.Equal(t, "01-01", cfg.Fiscal.YearStart)
	assert.Equal(t, "json", cfg.Statement.Output)
	assert.True(t, cfg.RunLog)
	assert.NoError(t, cfg.Validate())
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Test Biz", "corporation")
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Biz")
	assert.Contains(t, contents, "entity_type: corporation")
	assert.Contains(t, contents, "year_start: 01-01")
	assert.Contains(t, contents, "output: json")
	assert.Contains(t, contents, "run_log: true")
	assert.Contains(t, contents, "auto_commit: false")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing name", func(c *Config) { c.Business.Name = "" }, "Name"},
		{"bad year start", func(c *Config) { c.Fiscal.YearStart = "13-01" }, "YearStart"},
		{"year start format", func(c *Config) { c.Fiscal.YearStart = "1-1" }, "YearStart"},
		{"year start feb 30", func(c *Config) { c.Fiscal.YearStart = "02-30" }, "YearStart"},
		{"year start feb 31", func(c *Config) { c.Fiscal.YearStart = "02-31" }, "YearStart"},
		{"year start apr 31", func(c *Config) { c.Fiscal.YearStart = "04-31" }, "YearStart"},
		{"year start leap day", func(c *Config) { c.Fiscal.YearStart = "02-29" }, "YearStart"},
		{"negative tolerance", func(c *Config) { c.Statement.TieTolerance = decimal.RequireFromString("-0.01") }, "TieTolerance"},
		{"unknown output", func(c *Config) { c.Statement.Output = "xml" }, "Output"},
		{"unknown level", func(c *Config) { c.Logging.Level = "verbose" }, "Level"},
		{"unknown format", func(c *Config) { c.Logging.Format = "logfmt" }, "Format"},
		{"bad author email", func(c *Config) { c.Git.AuthorEmail = "nobody" }, "AuthorEmail"},
		{"auto commit without author", func(c *Config) { c.Git.AutoCommit = true; c.Git.AuthorName = "" }, "AuthorName"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default("Acme", "corporation")
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestApplyEnv_DotenvFile(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvOutput, "")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STATEMENTS_LOG_LEVEL=debug\nSTATEMENTS_OUTPUT=yaml\n"), 0o644))

	cfg := Default("Acme", "corporation")
	require.NoError(t, cfg.ApplyEnv(path))
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "yaml", cfg.Statement.Output)
}

func TestApplyEnv_ProcessEnvWins(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvOutput, "")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STATEMENTS_LOG_LEVEL=debug\n"), 0o644))

	cfg := Default("Acme", "corporation")
	require.NoError(t, cfg.ApplyEnv(path))
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Statement.Output)
}

func TestApplyEnv_MissingFile(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvOutput, "")

	cfg := Default("Acme", "corporation")
	require.NoError(t, cfg.ApplyEnv(filepath.Join(t.TempDir(), ".env")))
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestValidate_YearStart(t *testing.T) {
	for _, start := range []string{"01-01", "02-28", "04-30", "07-01", "12-31"} {
		cfg := Default("Acme", "corporation")
		cfg.Fiscal.YearStart = start
		assert.NoError(t, cfg.Validate(), start)
	}
}
