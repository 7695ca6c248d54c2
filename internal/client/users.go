package client

import (
	"context"

	"github.com/yougile/go-yougile/internal/gateway"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// UsersClient implements yougile.UsersClient.
type UsersClient struct {
	client *gateway.Client
}

// List returns the company's members.
func (c *UsersClient) List(ctx context.Context, opts *yougile.ListOptions) (*yougile.Page[yougile.User], error) {
	var page yougile.Page[yougile.User]
	if err := getJSON(ctx, c.client, "/users", opts.Values(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Invite adds a user to the company by email.
func (c *UsersClient) Invite(ctx context.Context, request *yougile.UserInviteRequest) (*yougile.ObjectRef, error) {
	var ref yougile.ObjectRef
	if err := postJSON(ctx, c.client, "/users", request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// Get returns a user by ID.
func (c *UsersClient) Get(ctx context.Context, userID string) (*yougile.User, error) {
	if err := validateID(userID); err != nil {
		return nil, err
	}

	var user yougile.User
	if err := getJSON(ctx, c.client, "/users/"+userID, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Update modifies a user's role.
func (c *UsersClient) Update(ctx context.Context, userID string, request *yougile.UserUpdateRequest) (*yougile.ObjectRef, error) {
	if err := validateID(userID); err != nil {
		return nil, err
	}

	var ref yougile.ObjectRef
	if err := putJSON(ctx, c.client, "/users/"+userID, request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// Delete removes a user from the company.
func (c *UsersClient) Delete(ctx context.Context, userID string) error {
	if err := validateID(userID); err != nil {
		return err
	}

	_, err := c.client.Delete(ctx, "/users/"+userID)

	return err
}
