// Package ygclient provides the main entry point for creating YouGile API clients
package ygclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/yougile/go-yougile/internal/client"
	"github.com/yougile/go-yougile/internal/constants"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// New creates a YouGile API client from configuration. The base URL defaults
// to the public API origin; credentials may be either a pre-issued API key or
// a login/password/company triple, negotiated lazily on first use.
func New(ctx context.Context, config *yougile.Config) (yougile.Client, error) {
	if config == nil {
		return nil, yougile.ErrConfigRequired
	}

	if config.BaseURL == "" {
		config.BaseURL = constants.APIBaseURL
	}

	// Normalize the base URL
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	baseURL = strings.TrimSuffix(baseURL, constants.APIPrefix)
	config.BaseURL = baseURL

	apiClient, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithKey creates a client using a pre-issued API key.
func NewWithKey(ctx context.Context, key string) (yougile.Client, error) {
	return New(ctx, &yougile.Config{
		APIKey: key,
	})
}

// NewWithPassword creates a client using login/password authentication
// scoped to a company.
func NewWithPassword(ctx context.Context, login, password, companyID string) (yougile.Client, error) {
	return New(ctx, &yougile.Config{
		Login:     login,
		Password:  password,
		CompanyID: companyID,
	})
}
