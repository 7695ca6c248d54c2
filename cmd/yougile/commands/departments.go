package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// NewDepartmentsCommand creates the departments command group.
func NewDepartmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "departments",
		Aliases: []string{"department", "deps"},
		Short:   "Manage departments",
		Long:    "List, create, and update company departments",
	}

	cmd.AddCommand(newDepartmentsListCommand())
	cmd.AddCommand(newDepartmentsCreateCommand())

	return cmd
}

func newDepartmentsListCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List departments",
		Long:  "List the company's departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			page, err := client.Departments().List(context.Background(), listOptions(limit, offset))
			if err != nil {
				return fmt.Errorf("failed to list departments: %w", err)
			}

			return renderWithFormat(page.Content, func(departments []yougile.Department) error {
				if len(departments) == 0 {
					_, _ = os.Stdout.WriteString("No departments found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Title", "ID", "Parent", "Members")

				for _, department := range departments {
					_ = table.Append(department.Title, department.ID,
						department.ParentID, fmt.Sprintf("%d", len(department.Users)))
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

func newDepartmentsCreateCommand() *cobra.Command {
	var (
		title  string
		parent string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a department",
		Long:  "Create a new department, optionally nested under a parent",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return ErrTitleRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ref, err := client.Departments().Create(context.Background(), &yougile.DepartmentRequest{
				Title:    title,
				ParentID: parent,
			})
			if err != nil {
				return fmt.Errorf("failed to create department: %w", err)
			}

			fmt.Printf("Department '%s' created with ID %s\n", title, ref.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "department title (required)")
	cmd.Flags().StringVar(&parent, "parent", "", "parent department ID")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
