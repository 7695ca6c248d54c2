package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		login    string
		password string
		company  string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to YouGile",
		Long:  "Authenticate with YouGile, select a company, and store an issued API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			login, password, err := promptCredentials(login, password)
			if err != nil {
				return err
			}

			// A client without a company can still list companies and
			// issue keys; those endpoints authenticate with the password.
			client, err := createPasswordClient(ctx, login, password)
			if err != nil {
				return err
			}

			selected, err := selectCompany(ctx, client, company)
			if err != nil {
				return err
			}

			key, err := client.Auth().CreateKey(ctx, selected.ID)
			if err != nil {
				return fmt.Errorf("failed to issue API key: %w", err)
			}

			config := loadConfig()
			config.Login = login
			config.CompanyID = selected.ID
			config.CompanyName = selected.Name
			config.Key = key.Key

			if err := saveConfigStruct(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in to company '%s'\n", selected.Name)

			return nil
		},
	}

	cmd.Flags().StringVarP(&login, "login", "u", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&company, "company", "", "company name or ID to log in to")

	return cmd
}

// selectCompany resolves the company to log in to: an explicit name or ID
// wins, a single membership is picked automatically, otherwise the user
// chooses from a numbered list.
func selectCompany(ctx context.Context, client yougile.Client, company string) (*yougile.AuthCompany, error) {
	page, err := client.Auth().Companies(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	companies := page.Content
	if len(companies) == 0 {
		return nil, yougile.ErrCompanyNotFound
	}

	if company != "" {
		for i := range companies {
			if companies[i].ID == company || companies[i].Name == company {
				return &companies[i], nil
			}
		}

		return nil, fmt.Errorf("company '%s': %w", company, yougile.ErrCompanyNotFound)
	}

	if len(companies) == 1 {
		return &companies[0], nil
	}

	fmt.Println("Available companies:")
	for i, c := range companies {
		fmt.Printf("  %d. %s (%s)\n", i+1, c.Name, c.ID)
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Select company: ")
	answer, _ := reader.ReadString('\n')

	index, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || index < 1 || index > len(companies) {
		return nil, ErrCompanyOutOfRange
	}

	return &companies[index-1], nil
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from YouGile",
		Long:  "Clear the stored API key and company selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Key = ""
			config.CompanyID = ""
			config.CompanyName = ""

			if err := saveConfigStruct(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")
			return nil
		},
	}
}
