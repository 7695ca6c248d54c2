package client

import (
	"context"

	"github.com/yougile/go-yougile/internal/gateway"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// ColumnsClient implements yougile.ColumnsClient.
type ColumnsClient struct {
	client *gateway.Client
}

// List returns columns.
func (c *ColumnsClient) List(ctx context.Context, opts *yougile.ColumnListOptions) (*yougile.Page[yougile.Column], error) {
	var page yougile.Page[yougile.Column]
	if err := getJSON(ctx, c.client, "/columns", opts.Values(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Create creates a column.
func (c *ColumnsClient) Create(ctx context.Context, request *yougile.ColumnCreateRequest) (*yougile.ObjectRef, error) {
	var ref yougile.ObjectRef
	if err := postJSON(ctx, c.client, "/columns", request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// Get returns a column by ID.
func (c *ColumnsClient) Get(ctx context.Context, columnID string) (*yougile.Column, error) {
	if err := validateID(columnID); err != nil {
		return nil, err
	}

	var column yougile.Column
	if err := getJSON(ctx, c.client, "/columns/"+columnID, nil, &column); err != nil {
		return nil, err
	}

	return &column, nil
}

// Update modifies a column.
func (c *ColumnsClient) Update(ctx context.Context, columnID string, request *yougile.ColumnUpdateRequest) (*yougile.ObjectRef, error) {
	if err := validateID(columnID); err != nil {
		return nil, err
	}

	var ref yougile.ObjectRef
	if err := putJSON(ctx, c.client, "/columns/"+columnID, request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}
