package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage company members",
		Long:    "List, invite, update, and remove company members",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersInviteCommand())
	cmd.AddCommand(newUsersRemoveCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List members",
		Long:  "List the company's members",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			page, err := client.Users().List(context.Background(), listOptions(limit, offset))
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			return renderWithFormat(page.Content, func(users []yougile.User) error {
				if len(users) == 0 {
					_, _ = os.Stdout.WriteString("No users found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Email", "ID", "Admin", "Last activity")

				for _, user := range users {
					_ = table.Append(user.RealName, user.Email, user.ID,
						formatBool(user.IsAdmin), formatMillis(user.LastActivity))
				}

				_ = table.Render()
				renderPageFooter(page.Paging)

				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "paging offset")

	return cmd
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get member details",
		Long:  "Display detailed information about a company member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := client.Users().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return renderWithFormat(user, func(user *yougile.User) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("Name", user.RealName)
				_ = table.Append("Email", user.Email)
				_ = table.Append("ID", user.ID)
				_ = table.Append("Admin", formatBool(user.IsAdmin))
				_ = table.Append("Status", user.Status)
				_ = table.Append("Last activity", formatMillis(user.LastActivity))

				_ = table.Render()

				return nil
			})
		},
	}
}

func newUsersInviteCommand() *cobra.Command {
	var (
		email string
		admin bool
	)

	cmd := &cobra.Command{
		Use:   "invite",
		Short: "Invite a member",
		Long:  "Invite a user into the company by email",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return ErrEmailRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ref, err := client.Users().Invite(context.Background(), &yougile.UserInviteRequest{
				Email:   email,
				IsAdmin: admin,
			})
			if err != nil {
				return fmt.Errorf("failed to invite user: %w", err)
			}

			fmt.Printf("User '%s' invited with ID %s\n", email, ref.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email to invite (required)")
	cmd.Flags().BoolVar(&admin, "admin", false, "grant company admin rights")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newUsersRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove USER_ID",
		Short: "Remove a member",
		Long:  "Remove a member from the company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Users().Delete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to remove user: %w", err)
			}

			fmt.Println("User removed")

			return nil
		},
	}
}
