package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// NewBoardsCommand creates the boards command group.
func NewBoardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "boards",
		Aliases: []string{"board"},
		Short:   "Manage boards",
		Long:    "List, create, and update kanban boards",
	}

	cmd.AddCommand(newBoardsListCommand())
	cmd.AddCommand(newBoardsGetCommand())
	cmd.AddCommand(newBoardsCreateCommand())
	cmd.AddCommand(newBoardsRenameCommand())

	return cmd
}

func newBoardsListCommand() *cobra.Command {
	var (
		project string
		title   string
		limit   int
		offset  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List boards",
		Long:  "List boards, optionally filtered by project",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := &yougile.BoardListOptions{
				ListOptions: yougile.ListOptions{Limit: limit, Offset: offset},
				ProjectID:   project,
				Title:       title,
			}

			page, err := client.Boards().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list boards: %w", err)
			}

			return renderWithFormat(page.Content, func(boards []yougile.Board) error {
				if len(boards) == 0 {
					_, _ = os.Stdout.WriteString("No boards found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Title", "ID", "Project")

				for _, board := range boards {
					_ = table.Append(board.Title, board.ID, board.ProjectID)
				}

				_ = table.Render()
				renderPageFooter(page.Paging)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "filter by project ID")
	cmd.Flags().StringVar(&title, "title", "", "filter by title")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "paging offset")

	return cmd
}

func newBoardsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BOARD_ID",
		Short: "Get board details",
		Long:  "Display detailed information about a board, including its columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			board, err := client.Boards().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get board: %w", err)
			}

			columns, err := client.Columns().List(ctx, &yougile.ColumnListOptions{BoardID: board.ID})
			if err != nil {
				return fmt.Errorf("failed to list columns: %w", err)
			}

			type boardDetails struct {
				Board   *yougile.Board   `json:"board"   yaml:"board"`
				Columns []yougile.Column `json:"columns" yaml:"columns"`
			}

			return renderWithFormat(&boardDetails{Board: board, Columns: columns.Content},
				func(details *boardDetails) error {
					table := tablewriter.NewWriter(os.Stdout)
					table.Header("Property", "Value")

					_ = table.Append("Title", details.Board.Title)
					_ = table.Append("ID", details.Board.ID)
					_ = table.Append("Project", details.Board.ProjectID)
					_ = table.Append("Deleted", formatBool(details.Board.Deleted))

					_ = table.Render()

					if len(details.Columns) > 0 {
						_, _ = os.Stdout.WriteString("\nColumns:\n")

						columnTable := tablewriter.NewWriter(os.Stdout)
						columnTable.Header("Title", "ID")

						for _, column := range details.Columns {
							_ = columnTable.Append(column.Title, column.ID)
						}

						_ = columnTable.Render()
					}

					return nil
				})
		},
	}
}

func newBoardsCreateCommand() *cobra.Command {
	var (
		title   string
		project string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long:  "Create a new kanban board in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return ErrTitleRequired
			}
			if project == "" {
				return ErrProjectRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ref, err := client.Boards().Create(context.Background(), &yougile.BoardCreateRequest{
				Title:     title,
				ProjectID: project,
			})
			if err != nil {
				return fmt.Errorf("failed to create board: %w", err)
			}

			fmt.Printf("Board '%s' created with ID %s\n", title, ref.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "board title (required)")
	cmd.Flags().StringVar(&project, "project", "", "project ID (required)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newBoardsRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename BOARD_ID NEW_TITLE",
		Short: "Rename a board",
		Long:  "Change the title of a board",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = client.Boards().Update(context.Background(), args[0], &yougile.BoardUpdateRequest{
				Title: args[1],
			})
			if err != nil {
				return fmt.Errorf("failed to rename board: %w", err)
			}

			fmt.Printf("Board renamed to '%s'\n", args[1])

			return nil
		},
	}
}
