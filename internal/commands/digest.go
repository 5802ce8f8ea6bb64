package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/statements/internal/cashflow"
	"github.com/cleared-dev/statements/internal/config"
)

func newDigestCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "digest <file>",
		Short: "Derive the cash-flow statement of an IO digest file",
		Long: "Reads an IO digest from a .json or .yaml file, derives its cash-flow\n" +
			"statement and writes the completed digest to stdout.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			cfg := config.Default("", "")
			if err := cfg.ApplyEnv(".env"); err != nil {
				return err
			}
			logger, err := a.loggerFor(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if output == "" {
				if output, err = formatFor(path); err != nil {
					return err
				}
			}

			d, err := readDigest(path)
			if err != nil {
				return err
			}
			logger.Debug("digest loaded",
				zap.String("path", path),
				zap.Int("accounts", len(d.Accounts)),
				zap.Int("group_balances", len(d.GroupBalances)),
			)

			if _, err := cashflow.Digest(d); err != nil {
				return fmt.Errorf("deriving cash-flow statement: %w", err)
			}
			logger.Info("cash-flow statement derived",
				zap.String("path", path),
				zap.Stringer("net_cash", d.CashFlowStatement.NetCash),
			)

			return writeDigest(cmd.OutOrStdout(), d, output)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "output format: json or yaml (default: same as input)")
	return cmd
}
