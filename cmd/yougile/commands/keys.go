package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/yougile/go-yougile/internal/constants"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// NewKeysCommand creates the API keys command group.
func NewKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage API keys",
		Long:  "List, issue, and revoke API keys for a company",
	}

	cmd.AddCommand(newKeysListCommand())
	cmd.AddCommand(newKeysCreateCommand())
	cmd.AddCommand(newKeysRevokeCommand())

	return cmd
}

// resolveCompanyID falls back to the logged-in company when no flag is set.
func resolveCompanyID(companyID string) (string, error) {
	if companyID != "" {
		return companyID, nil
	}

	if stored := loadConfig().CompanyID; stored != "" {
		return stored, nil
	}

	return "", ErrCompanyRequired
}

func newKeysListCommand() *cobra.Command {
	var (
		login    string
		password string
		company  string
		reveal   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List API keys",
		Long:  "List the API keys issued for a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			companyID, err := resolveCompanyID(company)
			if err != nil {
				return err
			}

			ctx := context.Background()

			client, err := createPasswordClient(ctx, login, password)
			if err != nil {
				return err
			}

			keys, err := client.Auth().Keys(ctx, companyID)
			if err != nil {
				return fmt.Errorf("failed to list API keys: %w", err)
			}

			return renderWithFormat(keys, func(keys []yougile.APIKey) error {
				if len(keys) == 0 {
					_, _ = os.Stdout.WriteString("No API keys found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Company", "Issued", "Deleted")

				for _, key := range keys {
					shown := constants.MaskedSecret
					if reveal {
						shown = key.Key
					}

					_ = table.Append(shown, key.CompanyID,
						formatMillis(key.Timestamp), formatBool(key.Deleted))
				}

				_ = table.Render()

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&login, "login", "u", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&company, "company", "", "company ID (defaults to the logged-in company)")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "print key values instead of masking them")

	return cmd
}

func newKeysCreateCommand() *cobra.Command {
	var (
		login    string
		password string
		company  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Issue a new API key",
		Long:  "Issue a new API key scoped to a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			companyID, err := resolveCompanyID(company)
			if err != nil {
				return err
			}

			ctx := context.Background()

			client, err := createPasswordClient(ctx, login, password)
			if err != nil {
				return err
			}

			key, err := client.Auth().CreateKey(ctx, companyID)
			if err != nil {
				return fmt.Errorf("failed to issue API key: %w", err)
			}

			fmt.Println(key.Key)

			return nil
		},
	}

	cmd.Flags().StringVarP(&login, "login", "u", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&company, "company", "", "company ID (defaults to the logged-in company)")

	return cmd
}

func newKeysRevokeCommand() *cobra.Command {
	var (
		login    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "revoke KEY",
		Short: "Revoke an API key",
		Long:  "Revoke an issued API key so it can no longer authenticate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createPasswordClient(ctx, login, password)
			if err != nil {
				return err
			}

			if err := client.Auth().DeleteKey(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to revoke API key: %w", err)
			}

			fmt.Println("API key revoked")

			return nil
		},
	}

	cmd.Flags().StringVarP(&login, "login", "u", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")

	return cmd
}
