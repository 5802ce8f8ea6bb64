package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/statements/internal/accounts"
	"github.com/cleared-dev/statements/internal/model"
)

func newAccountsCommand() *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Chart of accounts operations",
	}
	accountsCmd.AddCommand(newAccountsListCommand())
	accountsCmd.AddCommand(newAccountsVerifyCommand())
	return accountsCmd
}

func newAccountsListCommand() *cobra.Command {
	var repoDir string
	var role string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts, optionally filtered by role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := absDir(repoDir)
			if err != nil {
				return err
			}
			svc, err := accounts.Load(root)
			if err != nil {
				return err
			}

			list := svc.All()
			if role != "" {
				r, err := model.ParseRole(role)
				if err != nil {
					return err
				}
				list = svc.ByRole(r)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME\tROLE\tBALANCE")
			for _, acct := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", acct.Code, acct.Name, acct.Role, acct.Balance)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "repository directory")
	cmd.Flags().StringVar(&role, "role", "", "only list accounts with this role")
	return cmd
}

func newAccountsVerifyCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the chart of accounts for duplicate and dangling codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := absDir(repoDir)
			if err != nil {
				return err
			}
			svc, err := accounts.Load(root)
			if err != nil {
				return err
			}
			if err := accounts.Verify(svc.All()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Chart of accounts OK (%d accounts)\n", len(svc.All()))
			return nil
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "repository directory")
	return cmd
}
