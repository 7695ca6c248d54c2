package client

import (
	"context"

	"github.com/yougile/go-yougile/internal/gateway"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// TasksClient implements yougile.TasksClient.
type TasksClient struct {
	client *gateway.Client
}

// List returns tasks, newest first.
func (c *TasksClient) List(ctx context.Context, opts *yougile.TaskListOptions) (*yougile.Page[yougile.Task], error) {
	var page yougile.Page[yougile.Task]
	if err := getJSON(ctx, c.client, "/tasks", opts.Values(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// ListCompact returns tasks in board order via the compact listing endpoint.
func (c *TasksClient) ListCompact(ctx context.Context, opts *yougile.TaskListOptions) (*yougile.Page[yougile.Task], error) {
	var page yougile.Page[yougile.Task]
	if err := getJSON(ctx, c.client, "/task-list", opts.Values(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Create creates a task.
func (c *TasksClient) Create(ctx context.Context, request *yougile.TaskCreateRequest) (*yougile.ObjectRef, error) {
	var ref yougile.ObjectRef
	if err := postJSON(ctx, c.client, "/tasks", request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// Get returns a task by ID.
func (c *TasksClient) Get(ctx context.Context, taskID string) (*yougile.Task, error) {
	if err := validateID(taskID); err != nil {
		return nil, err
	}

	var task yougile.Task
	if err := getJSON(ctx, c.client, "/tasks/"+taskID, nil, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

// Update modifies a task.
func (c *TasksClient) Update(ctx context.Context, taskID string, request *yougile.TaskUpdateRequest) (*yougile.ObjectRef, error) {
	if err := validateID(taskID); err != nil {
		return nil, err
	}

	var ref yougile.ObjectRef
	if err := putJSON(ctx, c.client, "/tasks/"+taskID, request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// ChatSubscribers returns the users following the task's chat.
func (c *TasksClient) ChatSubscribers(ctx context.Context, taskID string) ([]yougile.User, error) {
	if err := validateID(taskID); err != nil {
		return nil, err
	}

	var subscribers []yougile.User
	if err := getJSON(ctx, c.client, "/tasks/"+taskID+"/chat-subscribers", nil, &subscribers); err != nil {
		return nil, err
	}

	return subscribers, nil
}

// SetChatSubscribers replaces the task chat's subscriber list.
func (c *TasksClient) SetChatSubscribers(ctx context.Context, taskID string, userIDs []string) error {
	if err := validateID(taskID); err != nil {
		return err
	}

	body := map[string][]string{"subscribers": userIDs}

	return putJSON(ctx, c.client, "/tasks/"+taskID+"/chat-subscribers", body, nil)
}
