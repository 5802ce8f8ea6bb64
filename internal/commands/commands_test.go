package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cleared-dev/statements/internal/model"
)

func runWith(t *testing.T, logger *zap.Logger, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STATEMENTS_LOG_LEVEL", "")
	t.Setenv("STATEMENTS_OUTPUT", "")

	cmd := newRootCommand(&app{logger: logger})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWith(t, zap.NewNop(), args...)
}

func copyFile(t *testing.T, src, dst string) {
	t.Helper()
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0o755))
	require.NoError(t, os.WriteFile(dst, data, 0o644))
}

// initRepo initializes a repository holding the January 2025 fixture journal.
func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := run(t, "init", dir, "--name", "Test Corp")
	require.NoError(t, err)

	copyFile(t, filepath.Join("..", "..", "testdata", "chart-of-accounts.csv"), filepath.Join(dir, "accounts", "chart-of-accounts.csv"))
	copyFile(t, filepath.Join("..", "..", "testdata", "journal.csv"), filepath.Join(dir, "journal", "2025", "01", "journal.csv"))
	return dir
}

func decodeDigest(t *testing.T, out string) model.Digest {
	t.Helper()
	var d model.Digest
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	require.NotNil(t, d.CashFlowStatement)
	return d
}

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev (commit: none")
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		logger, err := newLogger("debug", format)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zap.DebugLevel))
	}

	logger, err := newLogger("warn", "json")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))

	_, err = newLogger("loud", "json")
	assert.Error(t, err)
	_, err = newLogger("info", "logfmt")
	assert.Error(t, err)
}
