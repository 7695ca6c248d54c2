package client

import (
	"context"

	"github.com/yougile/go-yougile/internal/gateway"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// CompanyClient implements yougile.CompanyClient. The company is implied by
// the credential's scope, so the endpoints take no ID.
type CompanyClient struct {
	client    *gateway.Client
	companyID string
}

// Get returns the company the credential is scoped to.
func (c *CompanyClient) Get(ctx context.Context) (*yougile.Company, error) {
	var company yougile.Company
	if err := getJSON(ctx, c.client, "/companies", nil, &company); err != nil {
		return nil, err
	}

	if company.ID == "" {
		company.ID = c.companyID
	}

	return &company, nil
}

// Update modifies the company's settings.
func (c *CompanyClient) Update(ctx context.Context, request *yougile.CompanyUpdateRequest) (*yougile.Company, error) {
	var company yougile.Company
	if err := putJSON(ctx, c.client, "/companies", request, &company); err != nil {
		return nil, err
	}

	return &company, nil
}
