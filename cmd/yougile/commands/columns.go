package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// NewColumnsCommand creates the columns command group.
func NewColumnsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "columns",
		Aliases: []string{"column"},
		Short:   "Manage board columns",
		Long:    "List, create, and update board columns",
	}

	cmd.AddCommand(newColumnsListCommand())
	cmd.AddCommand(newColumnsCreateCommand())
	cmd.AddCommand(newColumnsRenameCommand())

	return cmd
}

func newColumnsListCommand() *cobra.Command {
	var (
		board  string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns",
		Long:  "List columns, optionally filtered by board",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := &yougile.ColumnListOptions{
				ListOptions: yougile.ListOptions{Limit: limit, Offset: offset},
				BoardID:     board,
			}

			page, err := client.Columns().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list columns: %w", err)
			}

			return renderWithFormat(page.Content, func(columns []yougile.Column) error {
				if len(columns) == 0 {
					_, _ = os.Stdout.WriteString("No columns found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Title", "ID", "Board", "Color")

				for _, column := range columns {
					_ = table.Append(column.Title, column.ID, column.BoardID,
						strconv.Itoa(column.Color))
				}

				_ = table.Render()
				renderPageFooter(page.Paging)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&board, "board", "", "filter by board ID")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "paging offset")

	return cmd
}

func newColumnsCreateCommand() *cobra.Command {
	var (
		title string
		board string
		color int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new column",
		Long:  "Create a new column on a board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return ErrTitleRequired
			}
			if board == "" {
				return ErrBoardRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ref, err := client.Columns().Create(context.Background(), &yougile.ColumnCreateRequest{
				Title:   title,
				BoardID: board,
				Color:   color,
			})
			if err != nil {
				return fmt.Errorf("failed to create column: %w", err)
			}

			fmt.Printf("Column '%s' created with ID %s\n", title, ref.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "column title (required)")
	cmd.Flags().StringVar(&board, "board", "", "board ID (required)")
	cmd.Flags().IntVar(&color, "color", 0, "column color index")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("board")

	return cmd
}

func newColumnsRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename COLUMN_ID NEW_TITLE",
		Short: "Rename a column",
		Long:  "Change the title of a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = client.Columns().Update(context.Background(), args[0], &yougile.ColumnUpdateRequest{
				Title: args[1],
			})
			if err != nil {
				return fmt.Errorf("failed to rename column: %w", err)
			}

			fmt.Printf("Column renamed to '%s'\n", args[1])

			return nil
		},
	}
}
