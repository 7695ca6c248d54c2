package client

import (
	"context"

	"github.com/yougile/go-yougile/internal/gateway"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// DepartmentsClient implements yougile.DepartmentsClient.
type DepartmentsClient struct {
	client *gateway.Client
}

// List returns departments.
func (c *DepartmentsClient) List(ctx context.Context, opts *yougile.ListOptions) (*yougile.Page[yougile.Department], error) {
	var page yougile.Page[yougile.Department]
	if err := getJSON(ctx, c.client, "/departments", opts.Values(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Create creates a department.
func (c *DepartmentsClient) Create(ctx context.Context, request *yougile.DepartmentRequest) (*yougile.ObjectRef, error) {
	var ref yougile.ObjectRef
	if err := postJSON(ctx, c.client, "/departments", request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// Get returns a department by ID.
func (c *DepartmentsClient) Get(ctx context.Context, departmentID string) (*yougile.Department, error) {
	if err := validateID(departmentID); err != nil {
		return nil, err
	}

	var department yougile.Department
	if err := getJSON(ctx, c.client, "/departments/"+departmentID, nil, &department); err != nil {
		return nil, err
	}

	return &department, nil
}

// Update modifies a department.
func (c *DepartmentsClient) Update(ctx context.Context, departmentID string, request *yougile.DepartmentRequest) (*yougile.ObjectRef, error) {
	if err := validateID(departmentID); err != nil {
		return nil, err
	}

	var ref yougile.ObjectRef
	if err := putJSON(ctx, c.client, "/departments/"+departmentID, request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}
