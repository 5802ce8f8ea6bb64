package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/statements/internal/accounts"
	"github.com/cleared-dev/statements/internal/aggregate"
	"github.com/cleared-dev/statements/internal/cashflow"
	"github.com/cleared-dev/statements/internal/config"
	"github.com/cleared-dev/statements/internal/gitops"
	"github.com/cleared-dev/statements/internal/journal"
	"github.com/cleared-dev/statements/internal/runlog"
)

type cashflowOptions struct {
	repoDir string
	year    int
	from    string
	to      string
	output  string
}

func newCashflowCommand(a *app) *cobra.Command {
	var opts cashflowOptions

	cmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Derive the cash-flow statement for a period",
		Long: "Aggregates the journal over a fiscal year (--year) or an explicit date\n" +
			"range (--from and --to), derives the cash-flow statement and writes the\n" +
			"resulting digest to stdout.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCashflow(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.repoDir, "repo", ".", "repository directory")
	cmd.Flags().IntVar(&opts.year, "year", 0, "fiscal year, starting on the configured year_start")
	cmd.Flags().StringVar(&opts.from, "from", "", "first day of the period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.to, "to", "", "last day of the period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.output, "output", "", "output format: json or yaml (default from config)")
	cmd.MarkFlagsMutuallyExclusive("year", "from")
	cmd.MarkFlagsMutuallyExclusive("year", "to")
	cmd.MarkFlagsRequiredTogether("from", "to")

	return cmd
}

func (a *app) runCashflow(cmd *cobra.Command, opts cashflowOptions) error {
	root, err := absDir(opts.repoDir)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if opts.output != "" {
		cfg.Statement.Output = opts.output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := a.loggerFor(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var period aggregate.Period
	switch {
	case opts.from != "":
		period, err = aggregate.ParsePeriod(opts.from, opts.to)
	case opts.year != 0:
		period, err = aggregate.FiscalYear(cfg.Fiscal.YearStart, opts.year)
	default:
		err = errors.New("either --year or --from and --to is required")
	}
	if err != nil {
		return err
	}

	logger.Info("deriving cash-flow statement",
		zap.String("repo", root),
		zap.Stringer("period", period),
	)

	chart, err := accounts.Load(root)
	if err != nil {
		return err
	}
	legs, err := journal.NewService(root, chart).ReadRange(period.From, period.To)
	if err != nil {
		return err
	}
	logger.Debug("journal loaded", zap.Int("legs", len(legs)))

	d, err := aggregate.Build(chart, legs, period)
	if err != nil {
		return fmt.Errorf("aggregating journal: %w", err)
	}
	if _, err := cashflow.Digest(d); err != nil {
		return fmt.Errorf("deriving cash-flow statement: %w", err)
	}
	stmt := d.CashFlowStatement

	cashChange := aggregate.CashChange(d)
	if err := cashflow.Tie(stmt, cashChange, cfg.Statement.TieTolerance); err != nil {
		var tie *cashflow.TieOutError
		if !errors.As(err, &tie) {
			return err
		}
		logger.Warn("cash-flow statement does not tie out",
			zap.Stringer("net_cash", tie.NetCash),
			zap.Stringer("cash_change", tie.CashChange),
			zap.Stringer("difference", tie.Difference()),
		)
	}

	if cfg.RunLog {
		entry := runlog.NewEntry(cmd.Name(), period.From, period.To, stmt)
		if err := runlog.Append(root, []runlog.Entry{entry}); err != nil {
			logger.Warn("writing run log", zap.Error(err))
		} else {
			logger.Debug("run logged", zap.Stringer("run_id", entry.RunID))
			commitRunLog(logger, root, cfg, period)
		}
	}

	logger.Info("cash-flow statement derived",
		zap.Stringer("period", period),
		zap.Stringer("net_cash", stmt.NetCash),
	)
	return writeDigest(cmd.OutOrStdout(), d, cfg.Statement.Output)
}

// commitRunLog records the updated run log in git when auto-commit is on.
// Failures are logged, not returned: the statement itself is already derived.
func commitRunLog(logger *zap.Logger, root string, cfg *config.Config, period aggregate.Period) {
	if !cfg.Git.AutoCommit || !gitops.IsRepo(root) {
		return
	}
	hash, err := gitops.CommitPaths(root, "statements: cash flow "+period.String(), gitAuthor(cfg), runlog.File)
	if err != nil {
		logger.Warn("committing run log", zap.Error(err))
		return
	}
	logger.Info("run log committed", zap.String("commit", hash))
}
