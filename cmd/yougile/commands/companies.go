package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// NewCompaniesCommand creates the companies command group.
func NewCompaniesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "companies",
		Aliases: []string{"company"},
		Short:   "Manage companies",
		Long:    "List account companies and view or rename the current company",
	}

	cmd.AddCommand(newCompaniesListCommand())
	cmd.AddCommand(newCompaniesShowCommand())
	cmd.AddCommand(newCompaniesRenameCommand())

	return cmd
}

func newCompaniesListCommand() *cobra.Command {
	var (
		login    string
		password string
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies",
		Long:  "List the companies the account belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createPasswordClient(ctx, login, password)
			if err != nil {
				return err
			}

			page, err := client.Auth().Companies(ctx, listOptions(limit, offset))
			if err != nil {
				return fmt.Errorf("failed to list companies: %w", err)
			}

			return renderWithFormat(page.Content, func(companies []yougile.AuthCompany) error {
				if len(companies) == 0 {
					_, _ = os.Stdout.WriteString("No companies found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "ID", "Admin")

				for _, company := range companies {
					_ = table.Append(company.Name, company.ID, formatBool(company.IsAdmin))
				}

				_ = table.Render()
				renderPageFooter(page.Paging)

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&login, "login", "u", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "paging offset")

	return cmd
}

func newCompaniesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current company",
		Long:  "Display details of the company the stored API key is scoped to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			company, err := client.Company().Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get company: %w", err)
			}

			return renderWithFormat(company, func(company *yougile.Company) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("Title", company.Title)
				_ = table.Append("ID", company.ID)
				_ = table.Append("Created", formatMillis(company.Timestamp))
				_ = table.Append("Deleted", formatBool(company.Deleted))

				_ = table.Render()

				return nil
			})
		},
	}
}

func newCompaniesRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename NEW_TITLE",
		Short: "Rename current company",
		Long:  "Change the title of the company the stored API key is scoped to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrTitleRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			company, err := client.Company().Update(context.Background(), &yougile.CompanyUpdateRequest{
				Title: args[0],
			})
			if err != nil {
				return fmt.Errorf("failed to rename company: %w", err)
			}

			fmt.Printf("Company renamed to '%s'\n", company.Title)

			return nil
		},
	}
}
