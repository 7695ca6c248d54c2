package client

import (
	"context"

	"github.com/yougile/go-yougile/internal/auth"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// AuthKeysClient implements yougile.AuthClient. These endpoints authenticate
// with the account's login and password rather than a bearer key, so they
// delegate to the negotiator's credential-bearing transport.
type AuthKeysClient struct {
	negotiator *auth.Negotiator
}

// Companies lists the companies the account belongs to.
func (c *AuthKeysClient) Companies(ctx context.Context, opts *yougile.ListOptions) (*yougile.Page[yougile.AuthCompany], error) {
	limit, offset := 0, 0
	if opts != nil {
		limit, offset = opts.Limit, opts.Offset
	}

	return c.negotiator.Companies(ctx, limit, offset)
}

// Keys lists the API keys issued for a company.
func (c *AuthKeysClient) Keys(ctx context.Context, companyID string) ([]yougile.APIKey, error) {
	return c.negotiator.ListKeys(ctx, companyID)
}

// CreateKey issues a new API key scoped to a company.
func (c *AuthKeysClient) CreateKey(ctx context.Context, companyID string) (*yougile.APIKey, error) {
	return c.negotiator.CreateKey(ctx, companyID)
}

// DeleteKey revokes an API key.
func (c *AuthKeysClient) DeleteKey(ctx context.Context, key string) error {
	return c.negotiator.DeleteKey(ctx, key)
}
