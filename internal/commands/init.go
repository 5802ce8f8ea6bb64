package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/statements/internal/accounts"
	"github.com/cleared-dev/statements/internal/config"
	"github.com/cleared-dev/statements/internal/gitops"
)

func newInitCommand(a *app) *cobra.Command {
	var name string
	var entityType string
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new statements repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			abs, err := absDir(dir)
			if err != nil {
				return err
			}

			cfg := config.Default(name, entityType)
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := a.loggerFor(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if useGit {
				cfg.Git.AutoCommit = true
			}
			if err := runInit(abs, cfg); err != nil {
				return err
			}
			logger.Info("repository initialized",
				zap.String("dir", abs),
				zap.String("entity_type", entityType),
				zap.Bool("git", useGit),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized statements repository at %s\n", abs)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&entityType, "entity-type", "corporation", "entity type")
	cmd.Flags().BoolVar(&useGit, "git", false, "initialize a git repository and commit run logs")

	return cmd
}

func runInit(dir string, cfg *config.Config) error {
	for _, d := range []string{"accounts", "journal", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	svc := accounts.NewService(accounts.DefaultChart(cfg.Business.EntityType))
	if err := svc.Save(dir); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "journal", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if !cfg.Git.AutoCommit {
		return nil
	}
	if err := gitops.Init(dir); err != nil {
		return err
	}
	if _, err := gitops.CommitAll(dir, "init: Initialize "+cfg.Business.Name, gitAuthor(cfg)); err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}
	return nil
}

func gitAuthor(cfg *config.Config) gitops.Author {
	return gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
}
