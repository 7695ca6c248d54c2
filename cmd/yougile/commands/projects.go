package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage projects",
		Long:    "List, create, update, and archive YouGile projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	cmd.AddCommand(newProjectsCreateCommand())
	cmd.AddCommand(newProjectsRenameCommand())
	cmd.AddCommand(newProjectsRolesCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List the company's projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			page, err := client.Projects().List(context.Background(), listOptions(limit, offset))
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			return renderWithFormat(page.Content, func(projects []yougile.Project) error {
				if len(projects) == 0 {
					_, _ = os.Stdout.WriteString("No projects found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Title", "ID", "Members", "Created")

				for _, project := range projects {
					_ = table.Append(project.Title, project.ID,
						fmt.Sprintf("%d", len(project.Users)),
						formatMillis(project.Timestamp))
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

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_ID",
		Short: "Get project details",
		Long:  "Display detailed information about a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			project, err := client.Projects().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}

			return renderWithFormat(project, func(project *yougile.Project) error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("Title", project.Title)
				_ = table.Append("ID", project.ID)
				_ = table.Append("Created", formatMillis(project.Timestamp))
				_ = table.Append("Deleted", formatBool(project.Deleted))

				_ = table.Render()

				if len(project.Users) > 0 {
					_, _ = os.Stdout.WriteString("\nMembers:\n")

					memberTable := tablewriter.NewWriter(os.Stdout)
					memberTable.Header("User ID", "Role")

					for userID, role := range project.Users {
						_ = memberTable.Append(userID, role)
					}

					_ = memberTable.Render()
				}

				return nil
			})
		},
	}
}

func newProjectsCreateCommand() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long:  "Create a new YouGile project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return ErrTitleRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ref, err := client.Projects().Create(context.Background(), &yougile.ProjectCreateRequest{
				Title: title,
			})
			if err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}

			fmt.Printf("Project '%s' created with ID %s\n", title, ref.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "project title (required)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newProjectsRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename PROJECT_ID NEW_TITLE",
		Short: "Rename a project",
		Long:  "Change the title of a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = client.Projects().Update(context.Background(), args[0], &yougile.ProjectUpdateRequest{
				Title: args[1],
			})
			if err != nil {
				return fmt.Errorf("failed to rename project: %w", err)
			}

			fmt.Printf("Project renamed to '%s'\n", args[1])

			return nil
		},
	}
}

func newProjectsRolesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "roles PROJECT_ID",
		Short: "List project roles",
		Long:  "List the custom roles defined for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			page, err := client.Projects().ListRoles(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list project roles: %w", err)
			}

			return renderWithFormat(page.Content, func(roles []yougile.ProjectRole) error {
				if len(roles) == 0 {
					_, _ = os.Stdout.WriteString("No roles found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "ID", "Description")

				for _, role := range roles {
					_ = table.Append(role.Name, role.ID, role.Description)
				}

				_ = table.Render()

				return nil
			})
		},
	}
}
