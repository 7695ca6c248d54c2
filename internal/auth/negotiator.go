package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/sync/singleflight"

	"github.com/yougile/go-yougile/internal/constants"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// Limiter admits a request against the shared quota, blocking until a slot
// is free or the context is done.
type Limiter interface {
	Admit(ctx context.Context) error
}

// Config configures a Negotiator.
type Config struct {
	// BaseURL is the API origin without the version prefix.
	BaseURL string

	// Login, Password and CompanyID drive the key issuance sequence.
	Login     string
	Password  string
	CompanyID string

	// StaticKey short-circuits negotiation when set.
	StaticKey string

	// Limiter shares the request quota with the gateway. Authentication
	// calls are ordinary API requests and spend quota like any other.
	Limiter Limiter

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client

	// Timeout bounds each negotiation request. Defaults to 30s.
	Timeout time.Duration

	// UserAgent is sent on negotiation requests.
	UserAgent string

	// Logger is optional.
	Logger yougile.Logger
}

// Negotiator performs the login sequence: it lists the account's companies,
// confirms the configured company is among them, and requests an API key
// scoped to that company. Concurrent refreshes are coalesced so a burst of
// 401s triggers a single negotiation.
type Negotiator struct {
	baseURL    string
	login      string
	password   string
	companyID  string
	staticKey  string
	limiter    Limiter
	httpClient *http.Client
	userAgent  string
	logger     yougile.Logger
	group      singleflight.Group
}

// NewNegotiator creates a negotiator from config.
func NewNegotiator(config *Config) *Negotiator {
	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = constants.DefaultHTTPTimeout
		}

		httpClient = cleanhttp.DefaultPooledClient()
		httpClient.Timeout = timeout
	}

	return &Negotiator{
		baseURL:    config.BaseURL,
		login:      config.Login,
		password:   config.Password,
		companyID:  config.CompanyID,
		staticKey:  config.StaticKey,
		limiter:    config.Limiter,
		httpClient: httpClient,
		userAgent:  config.UserAgent,
		logger:     config.Logger,
	}
}

// Refresh runs the full negotiation sequence and returns a fresh credential.
// Concurrent callers share a single in-flight negotiation and receive the
// same result. The negotiation runs on a detached context so that one
// caller cancelling does not fail the coalesced waiters; the transport
// timeout still bounds each request. A cancelled caller stops waiting and
// gets its own context error.
func (n *Negotiator) Refresh(ctx context.Context) (*Credential, error) {
	results := n.group.DoChan("refresh", func() (interface{}, error) {
		return n.negotiate(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}

		credential, ok := result.Val.(*Credential)
		if !ok {
			return nil, yougile.ErrAuthenticationFailed
		}

		return credential, nil
	}
}

func (n *Negotiator) negotiate(ctx context.Context) (*Credential, error) {
	if n.staticKey != "" {
		return &Credential{
			Key:       n.staticKey,
			CompanyID: n.companyID,
			IssuedAt:  time.Now(),
		}, nil
	}

	if n.login == "" || n.password == "" {
		return nil, yougile.ErrLoginRequired
	}

	if n.companyID == "" {
		return nil, yougile.ErrCompanyIDRequired
	}

	if err := n.verifyCompany(ctx); err != nil {
		return nil, err
	}

	key, err := n.issueKey(ctx)
	if err != nil {
		return nil, err
	}

	if n.logger != nil {
		n.logger.Info("issued API key", map[string]interface{}{
			"company_id": n.companyID,
		})
	}

	return &Credential{
		Key:       key,
		CompanyID: n.companyID,
		IssuedAt:  time.Now(),
	}, nil
}

// verifyCompany pages through the account's companies until the configured
// company shows up.
func (n *Negotiator) verifyCompany(ctx context.Context) error {
	offset := 0

	for {
		page, err := n.Companies(ctx, constants.DefaultPageSize, offset)
		if err != nil {
			return err
		}

		for _, company := range page.Content {
			if company.ID == n.companyID {
				return nil
			}
		}

		if !page.Paging.Next {
			return fmt.Errorf("%w: %s", yougile.ErrCompanyNotFound, n.companyID)
		}

		offset += constants.DefaultPageSize
	}
}

// Companies lists the companies the account belongs to.
func (n *Negotiator) Companies(ctx context.Context, limit, offset int) (*yougile.Page[yougile.AuthCompany], error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	body := map[string]string{
		"login":    n.login,
		"password": n.password,
	}

	var page yougile.Page[yougile.AuthCompany]
	if err := n.post(ctx, "/auth/companies", query, body, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// ListKeys lists the API keys issued for a company.
func (n *Negotiator) ListKeys(ctx context.Context, companyID string) ([]yougile.APIKey, error) {
	body := map[string]string{
		"login":     n.login,
		"password":  n.password,
		"companyId": companyID,
	}

	var keys []yougile.APIKey
	if err := n.post(ctx, "/auth/keys/get", nil, body, &keys); err != nil {
		return nil, err
	}

	return keys, nil
}

// CreateKey requests a new API key scoped to a company.
func (n *Negotiator) CreateKey(ctx context.Context, companyID string) (*yougile.APIKey, error) {
	body := map[string]string{
		"login":     n.login,
		"password":  n.password,
		"companyId": companyID,
	}

	var issued struct {
		Key string `json:"key"`
	}

	if err := n.post(ctx, "/auth/keys", nil, body, &issued); err != nil {
		return nil, err
	}

	return &yougile.APIKey{
		Key:       issued.Key,
		CompanyID: companyID,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// DeleteKey revokes an API key.
func (n *Negotiator) DeleteKey(ctx context.Context, key string) error {
	if key == "" {
		return yougile.ErrKeyRequired
	}

	return n.do(ctx, http.MethodDelete, "/auth/keys/"+key, nil, nil, nil)
}

// issueKey runs the key issuance call for the configured company.
func (n *Negotiator) issueKey(ctx context.Context) (string, error) {
	key, err := n.CreateKey(ctx, n.companyID)
	if err != nil {
		return "", err
	}

	return key.Key, nil
}

func (n *Negotiator) post(ctx context.Context, path string, query url.Values, body, result interface{}) error {
	return n.do(ctx, http.MethodPost, path, query, body, result)
}

// do issues a negotiation request. These endpoints authenticate with the
// request body rather than a bearer header.
func (n *Negotiator) do(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	if n.limiter != nil {
		if err := n.limiter.Admit(ctx); err != nil {
			return err
		}
	}

	endpoint := n.baseURL + constants.APIPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}

		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")
	if n.userAgent != "" {
		request.Header.Set("User-Agent", n.userAgent)
	}

	response, err := n.httpClient.Do(request)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		return fmt.Errorf("%w: %v", yougile.ErrNetworkUnavailable, err)
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode >= 400 {
		return n.classifyFailure(response)
	}

	if result == nil {
		return nil
	}

	if err := json.NewDecoder(response.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// classifyFailure maps a negotiation error response to a terminal error kind.
func (n *Negotiator) classifyFailure(response *http.Response) error {
	var apiErr *yougile.APIError

	body := make([]byte, 0, 512)
	buf := bytes.NewBuffer(body)

	if _, err := buf.ReadFrom(response.Body); err == nil {
		apiErr, _ = yougile.ParseAPIError(buf.Bytes())
	}

	detail := ""
	if apiErr != nil {
		apiErr.StatusCode = response.StatusCode
		detail = ": " + apiErr.Error()
	}

	switch {
	case response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w%s", yougile.ErrInvalidCredentials, detail)
	case response.StatusCode >= 500:
		return fmt.Errorf("%w: status %d%s", yougile.ErrServerError, response.StatusCode, detail)
	default:
		return fmt.Errorf("%w: status %d%s", yougile.ErrRequestRejected, response.StatusCode, detail)
	}
}
