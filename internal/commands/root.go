package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/statements/internal/buildinfo"
	"github.com/cleared-dev/statements/internal/config"
)

// app carries state shared by every subcommand.
type app struct {
	logLevel string
	// logger, when set, replaces the one built from config.
	logger *zap.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "statements",
		Short:   "Derive financial statements from a plain-text ledger",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newInitCommand(a))
	rootCmd.AddCommand(newAccountsCommand())
	rootCmd.AddCommand(newCashflowCommand(a))
	rootCmd.AddCommand(newDigestCommand(a))

	return rootCmd
}

// loggerFor returns the logger for a run configured by cfg.
func (a *app) loggerFor(cfg *config.Config) (*zap.Logger, error) {
	if a.logger != nil {
		return a.logger, nil
	}
	level := cfg.Logging.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	return newLogger(level, cfg.Logging.Format)
}

// loadConfig reads statements.yaml from repoRoot and applies environment
// overrides from the process and repoRoot/.env.
func loadConfig(repoRoot string) (*config.Config, error) {
	cfg, err := config.Load(filepath.Join(repoRoot, config.FileName))
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(filepath.Join(repoRoot, ".env")); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func absDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return abs, nil
}
