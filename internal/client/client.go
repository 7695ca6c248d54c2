// Package client implements the resource-oriented API clients on top of the
// request gateway.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/yougile/go-yougile/internal/auth"
	"github.com/yougile/go-yougile/internal/constants"
	"github.com/yougile/go-yougile/internal/gateway"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// Client implements yougile.Client.
type Client struct {
	gateway    *gateway.Client
	negotiator *auth.Negotiator
	companyID  string
}

// New creates a fully wired client from configuration.
func New(ctx context.Context, config *yougile.Config) (*Client, error) {
	if config == nil {
		return nil, yougile.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, yougile.ErrBaseURLRequired
	}

	rateLimit := config.RateLimit
	if rateLimit == 0 {
		rateLimit = constants.DefaultRateLimit
	}

	rateWindow := config.RateWindow
	if rateWindow <= 0 {
		rateWindow = constants.DefaultRateWindow
	}

	limiter := gateway.NewRateLimiter(rateLimit, rateWindow)

	negotiator := auth.NewNegotiator(&auth.Config{
		BaseURL:   config.BaseURL,
		Login:     config.Login,
		Password:  config.Password,
		CompanyID: config.CompanyID,
		StaticKey: config.APIKey,
		Limiter:   limiter,
		Timeout:   config.HTTPTimeout,
		UserAgent: config.UserAgent,
		Logger:    config.Logger,
	})

	options := []gateway.Option{
		gateway.WithRateLimiter(limiter),
		gateway.WithDebug(config.Debug),
	}

	if config.Logger != nil {
		options = append(options, gateway.WithLogger(config.Logger))
	}

	if config.UserAgent != "" {
		options = append(options, gateway.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		options = append(options, gateway.WithTimeout(config.HTTPTimeout))
	}

	if config.Observer != nil {
		options = append(options, gateway.WithObserver(config.Observer))
	}

	policy := gateway.DefaultRetryPolicy()
	if config.MaxAttempts > 0 {
		policy.MaxAttempts = config.MaxAttempts
	}

	if config.RetryWaitMin > 0 {
		policy.WaitMin = config.RetryWaitMin
	}

	if config.RetryWaitMax > 0 {
		policy.WaitMax = config.RetryWaitMax
	}

	options = append(options, gateway.WithRetryPolicy(policy))

	if config.Cache != nil && config.Cache.Type != yougile.CacheTypeNone {
		cache, err := yougile.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("creating cache: %w", err)
		}

		options = append(options, gateway.WithCache(cache, config.Cache.Policy))
	}

	return &Client{
		gateway:    gateway.NewClient(config.BaseURL, auth.NewManager(negotiator), options...),
		negotiator: negotiator,
		companyID:  config.CompanyID,
	}, nil
}

// NewWithGateway wires a client over an existing gateway, for tests.
func NewWithGateway(gw *gateway.Client, negotiator *auth.Negotiator, companyID string) *Client {
	return &Client{gateway: gw, negotiator: negotiator, companyID: companyID}
}

// Auth returns the authentication operations client.
func (c *Client) Auth() yougile.AuthClient {
	return &AuthKeysClient{negotiator: c.negotiator}
}

// Company returns the company client.
func (c *Client) Company() yougile.CompanyClient {
	return &CompanyClient{client: c.gateway, companyID: c.companyID}
}

// Projects returns the projects client.
func (c *Client) Projects() yougile.ProjectsClient {
	return &ProjectsClient{client: c.gateway}
}

// Boards returns the boards client.
func (c *Client) Boards() yougile.BoardsClient {
	return &BoardsClient{client: c.gateway}
}

// Columns returns the columns client.
func (c *Client) Columns() yougile.ColumnsClient {
	return &ColumnsClient{client: c.gateway}
}

// Tasks returns the tasks client.
func (c *Client) Tasks() yougile.TasksClient {
	return &TasksClient{client: c.gateway}
}

// StringStickers returns the string stickers client.
func (c *Client) StringStickers() yougile.StringStickersClient {
	return &StringStickersClient{client: c.gateway}
}

// SprintStickers returns the sprint stickers client.
func (c *Client) SprintStickers() yougile.SprintStickersClient {
	return &SprintStickersClient{client: c.gateway}
}

// Chats returns the chats client.
func (c *Client) Chats() yougile.ChatsClient {
	return &ChatsClient{client: c.gateway}
}

// Users returns the users client.
func (c *Client) Users() yougile.UsersClient {
	return &UsersClient{client: c.gateway}
}

// Departments returns the departments client.
func (c *Client) Departments() yougile.DepartmentsClient {
	return &DepartmentsClient{client: c.gateway}
}

// Webhooks returns the webhooks client.
func (c *Client) Webhooks() yougile.WebhooksClient {
	return &WebhooksClient{client: c.gateway}
}

// Files returns the files client.
func (c *Client) Files() yougile.FilesClient {
	return &FilesClient{client: c.gateway}
}

// validateID rejects malformed resource identifiers before they reach the
// wire; YouGile IDs are UUIDs.
func validateID(id string) error {
	if err := uuid.Validate(id); err != nil {
		return fmt.Errorf("%w: %q", yougile.ErrInvalidResourceID, id)
	}

	return nil
}

func decodeInto(response *gateway.Response, out interface{}) error {
	if out == nil || len(response.Body) == 0 {
		return nil
	}

	if err := json.Unmarshal(response.Body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

func getJSON(ctx context.Context, gw *gateway.Client, path string, query url.Values, out interface{}) error {
	response, err := gw.Get(ctx, path, query)
	if err != nil {
		return err
	}

	return decodeInto(response, out)
}

func postJSON(ctx context.Context, gw *gateway.Client, path string, body, out interface{}) error {
	response, err := gw.Post(ctx, path, body)
	if err != nil {
		return err
	}

	return decodeInto(response, out)
}

func putJSON(ctx context.Context, gw *gateway.Client, path string, body, out interface{}) error {
	response, err := gw.Put(ctx, path, body)
	if err != nil {
		return err
	}

	return decodeInto(response, out)
}
