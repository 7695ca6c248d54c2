package client

import (
	"context"

	"github.com/yougile/go-yougile/internal/gateway"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// ProjectsClient implements yougile.ProjectsClient, covering projects and
// their roles.
type ProjectsClient struct {
	client *gateway.Client
}

// List returns projects.
func (c *ProjectsClient) List(ctx context.Context, opts *yougile.ListOptions) (*yougile.Page[yougile.Project], error) {
	var page yougile.Page[yougile.Project]
	if err := getJSON(ctx, c.client, "/projects", opts.Values(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Create creates a project.
func (c *ProjectsClient) Create(ctx context.Context, request *yougile.ProjectCreateRequest) (*yougile.ObjectRef, error) {
	var ref yougile.ObjectRef
	if err := postJSON(ctx, c.client, "/projects", request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// Get returns a project by ID.
func (c *ProjectsClient) Get(ctx context.Context, projectID string) (*yougile.Project, error) {
	if err := validateID(projectID); err != nil {
		return nil, err
	}

	var project yougile.Project
	if err := getJSON(ctx, c.client, "/projects/"+projectID, nil, &project); err != nil {
		return nil, err
	}

	return &project, nil
}

// Update modifies a project.
func (c *ProjectsClient) Update(ctx context.Context, projectID string, request *yougile.ProjectUpdateRequest) (*yougile.ObjectRef, error) {
	if err := validateID(projectID); err != nil {
		return nil, err
	}

	var ref yougile.ObjectRef
	if err := putJSON(ctx, c.client, "/projects/"+projectID, request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// ListRoles returns the project's roles.
func (c *ProjectsClient) ListRoles(ctx context.Context, projectID string) (*yougile.Page[yougile.ProjectRole], error) {
	if err := validateID(projectID); err != nil {
		return nil, err
	}

	var page yougile.Page[yougile.ProjectRole]
	if err := getJSON(ctx, c.client, "/projects/"+projectID+"/roles", nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// CreateRole creates a role in the project.
func (c *ProjectsClient) CreateRole(ctx context.Context, projectID string, request *yougile.ProjectRoleRequest) (*yougile.ObjectRef, error) {
	if err := validateID(projectID); err != nil {
		return nil, err
	}

	var ref yougile.ObjectRef
	if err := postJSON(ctx, c.client, "/projects/"+projectID+"/roles", request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// GetRole returns a project role by ID.
func (c *ProjectsClient) GetRole(ctx context.Context, projectID, roleID string) (*yougile.ProjectRole, error) {
	if err := validateID(projectID); err != nil {
		return nil, err
	}

	if err := validateID(roleID); err != nil {
		return nil, err
	}

	var role yougile.ProjectRole
	if err := getJSON(ctx, c.client, "/projects/"+projectID+"/roles/"+roleID, nil, &role); err != nil {
		return nil, err
	}

	return &role, nil
}

// UpdateRole modifies a project role.
func (c *ProjectsClient) UpdateRole(ctx context.Context, projectID, roleID string, request *yougile.ProjectRoleRequest) (*yougile.ObjectRef, error) {
	if err := validateID(projectID); err != nil {
		return nil, err
	}

	if err := validateID(roleID); err != nil {
		return nil, err
	}

	var ref yougile.ObjectRef
	if err := putJSON(ctx, c.client, "/projects/"+projectID+"/roles/"+roleID, request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// DeleteRole removes a project role.
func (c *ProjectsClient) DeleteRole(ctx context.Context, projectID, roleID string) error {
	if err := validateID(projectID); err != nil {
		return err
	}

	if err := validateID(roleID); err != nil {
		return err
	}

	_, err := c.client.Delete(ctx, "/projects/"+projectID+"/roles/"+roleID)

	return err
}
