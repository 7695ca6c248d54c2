package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// NewTasksCommand creates the tasks command group.
func NewTasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Manage tasks",
		Long:    "List, create, update, complete, and archive tasks",
	}

	cmd.AddCommand(newTasksListCommand())
	cmd.AddCommand(newTasksGetCommand())
	cmd.AddCommand(newTasksCreateCommand())
	cmd.AddCommand(newTasksUpdateCommand())
	cmd.AddCommand(newTasksCompleteCommand())
	cmd.AddCommand(newTasksMoveCommand())
	cmd.AddCommand(newTasksSubscribersCommand())

	return cmd
}

func newTasksListCommand() *cobra.Command {
	var (
		column     string
		assignedTo string
		title      string
		deleted    bool
		boardOrder bool
		limit      int
		offset     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks newest first. With --board-order, tasks are returned in the
order they appear on their boards instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := &yougile.TaskListOptions{
				ListOptions:    yougile.ListOptions{Limit: limit, Offset: offset},
				ColumnID:       column,
				AssignedTo:     assignedTo,
				Title:          title,
				IncludeDeleted: deleted,
			}

			ctx := context.Background()

			var page *yougile.Page[yougile.Task]
			if boardOrder {
				page, err = client.Tasks().ListCompact(ctx, opts)
			} else {
				page, err = client.Tasks().List(ctx, opts)
			}
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}

			return renderWithFormat(page.Content, func(tasks []yougile.Task) error {
				if len(tasks) == 0 {
					_, _ = os.Stdout.WriteString("No tasks found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Title", "ID", "Column", "Done", "Assigned", "Deadline")

				for _, task := range tasks {
					_ = table.Append(task.Title, task.ID, task.ColumnID,
						formatBool(task.Completed),
						strings.Join(task.Assigned, ", "),
						formatDeadline(task.Deadline))
				}

				_ = table.Render()
				renderPageFooter(page.Paging)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "filter by column ID")
	cmd.Flags().StringVar(&assignedTo, "assigned-to", "", "filter by assigned user ID")
	cmd.Flags().StringVar(&title, "title", "", "filter by title")
	cmd.Flags().BoolVar(&deleted, "deleted", false, "include deleted tasks")
	cmd.Flags().BoolVar(&boardOrder, "board-order", false, "return tasks in board order")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "paging offset")

	return cmd
}

func formatDeadline(deadline *yougile.Deadline) string {
	if deadline == nil || deadline.Deadline == 0 {
		return ""
	}

	if deadline.WithTime {
		return time.UnixMilli(deadline.Deadline).Format("2006-01-02 15:04")
	}

	return time.UnixMilli(deadline.Deadline).Format("2006-01-02")
}

func newTasksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TASK_ID",
		Short: "Get task details",
		Long:  "Display detailed information about a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			task, err := client.Tasks().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get task: %w", err)
			}

			return renderWithFormat(task, renderTaskDetailsTable)
		},
	}
}

func renderTaskDetailsTable(task *yougile.Task) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Title", task.Title)
	_ = table.Append("ID", task.ID)
	_ = table.Append("Column", task.ColumnID)
	_ = table.Append("Completed", formatBool(task.Completed))
	_ = table.Append("Archived", formatBool(task.Archived))
	_ = table.Append("Assigned", strings.Join(task.Assigned, ", "))
	_ = table.Append("Created by", task.CreatedBy)
	_ = table.Append("Created", formatMillis(task.Timestamp))
	_ = table.Append("Deadline", formatDeadline(task.Deadline))

	if task.Description != "" {
		_ = table.Append("Description", task.Description)
	}

	_ = table.Render()

	if len(task.Checklists) > 0 {
		_, _ = os.Stdout.WriteString("\nChecklists:\n")

		checkTable := tablewriter.NewWriter(os.Stdout)
		checkTable.Header("Checklist", "Item", "Done")

		for _, checklist := range task.Checklists {
			for _, item := range checklist.Items {
				_ = checkTable.Append(checklist.Title, item.Title,
					formatBool(item.IsCompleted))
			}
		}

		_ = checkTable.Render()
	}

	return nil
}

func newTasksCreateCommand() *cobra.Command {
	var (
		title       string
		column      string
		description string
		assigned    []string
		deadline    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long:  "Create a new task in a column",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return ErrTitleRequired
			}
			if column == "" {
				return ErrColumnRequired
			}

			request := &yougile.TaskCreateRequest{
				Title:       title,
				ColumnID:    column,
				Description: description,
				Assigned:    assigned,
			}

			if deadline != "" {
				parsed, err := parseDeadline(deadline)
				if err != nil {
					return err
				}
				request.Deadline = parsed
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ref, err := client.Tasks().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create task: %w", err)
			}

			fmt.Printf("Task '%s' created with ID %s\n", title, ref.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "task title (required)")
	cmd.Flags().StringVar(&column, "column", "", "column ID (required)")
	cmd.Flags().StringVar(&description, "description", "", "task description")
	cmd.Flags().StringSliceVar(&assigned, "assign", nil, "user IDs to assign")
	cmd.Flags().StringVar(&deadline, "deadline", "", "deadline date (2006-01-02 or 2006-01-02 15:04)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

func parseDeadline(value string) (*yougile.Deadline, error) {
	if parsed, err := time.Parse("2006-01-02 15:04", value); err == nil {
		return &yougile.Deadline{Deadline: parsed.UnixMilli(), WithTime: true}, nil
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid deadline %q: %w", value, err)
	}

	return &yougile.Deadline{Deadline: parsed.UnixMilli()}, nil
}

func newTasksUpdateCommand() *cobra.Command {
	var (
		title       string
		description string
		assigned    []string
	)

	cmd := &cobra.Command{
		Use:   "update TASK_ID",
		Short: "Update a task",
		Long:  "Update a task's title, description, or assignees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &yougile.TaskUpdateRequest{
				Title:       title,
				Description: description,
				Assigned:    assigned,
			}

			_, err = client.Tasks().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update task: %w", err)
			}

			fmt.Println("Task updated")

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new task title")
	cmd.Flags().StringVar(&description, "description", "", "new task description")
	cmd.Flags().StringSliceVar(&assigned, "assign", nil, "user IDs to assign")

	return cmd
}

func newTasksCompleteCommand() *cobra.Command {
	var reopen bool

	cmd := &cobra.Command{
		Use:   "complete TASK_ID",
		Short: "Complete a task",
		Long:  "Mark a task as completed, or reopen it with --reopen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			completed := !reopen

			_, err = client.Tasks().Update(context.Background(), args[0], &yougile.TaskUpdateRequest{
				Completed: &completed,
			})
			if err != nil {
				return fmt.Errorf("failed to update task: %w", err)
			}

			if reopen {
				fmt.Println("Task reopened")
			} else {
				fmt.Println("Task completed")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&reopen, "reopen", false, "mark the task as not completed")

	return cmd
}

func newTasksMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move TASK_ID COLUMN_ID",
		Short: "Move a task to another column",
		Long:  "Move a task to a different board column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = client.Tasks().Update(context.Background(), args[0], &yougile.TaskUpdateRequest{
				ColumnID: args[1],
			})
			if err != nil {
				return fmt.Errorf("failed to move task: %w", err)
			}

			fmt.Println("Task moved")

			return nil
		},
	}
}

func newTasksSubscribersCommand() *cobra.Command {
	var set []string

	cmd := &cobra.Command{
		Use:   "subscribers TASK_ID",
		Short: "Manage task chat subscribers",
		Long:  "List the users subscribed to a task's chat, or replace them with --set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if cmd.Flags().Changed("set") {
				if err := client.Tasks().SetChatSubscribers(ctx, args[0], set); err != nil {
					return fmt.Errorf("failed to set chat subscribers: %w", err)
				}

				fmt.Println("Chat subscribers updated")

				return nil
			}

			subscribers, err := client.Tasks().ChatSubscribers(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to list chat subscribers: %w", err)
			}

			return renderWithFormat(subscribers, func(users []yougile.User) error {
				if len(users) == 0 {
					_, _ = os.Stdout.WriteString("No subscribers\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Email", "ID")

				for _, user := range users {
					_ = table.Append(user.RealName, user.Email, user.ID)
				}

				_ = table.Render()

				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&set, "set", nil, "replace subscribers with these user IDs")

	return cmd
}
