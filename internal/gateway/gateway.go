// Package gateway implements the authenticated, rate-limited request path
// shared by every resource client: credential attachment, sliding window
// quota admission, retry classification, and response caching.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/yougile/go-yougile/internal/auth"
	"github.com/yougile/go-yougile/internal/constants"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// Request is an API request relative to the version prefix.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is a completed API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes API requests. Every call acquires a credential, waits for
// quota admission, sends the attempt, and acts on the retry policy's verdict
// until the request succeeds or fails terminally.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	credentials *auth.Manager
	limiter     *RateLimiter
	policy      *RetryPolicy
	logger      yougile.Logger
	debug       bool
	userAgent   string
	observer    yougile.AttemptObserver
	cache       yougile.Cache
	cachePolicy *yougile.CachingPolicy
	sleep       SleepFunc
	jitter      func(time.Duration) time.Duration
}

// NewClient creates a gateway client for the given API origin.
func NewClient(baseURL string, credentials *auth.Manager, options ...Option) *Client {
	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:     baseURL,
		httpClient:  httpClient,
		credentials: credentials,
		limiter:     NewRateLimiter(constants.DefaultRateLimit, constants.DefaultRateWindow),
		policy:      DefaultRetryPolicy(),
		userAgent:   "go-yougile",
		cachePolicy: yougile.DefaultCachingPolicy(),
		sleep:       sleepContext,
	}

	client.jitter = defaultJitter

	for _, option := range options {
		option(client)
	}

	return client
}

// defaultJitter spreads a delay uniformly over [d/2, d]. Jittering downward
// only keeps every slept delay within the policy's configured cap.
func defaultJitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}

	return d/2 + time.Duration(rand.Int63n(int64(d/2)+1))
}

// Limiter returns the shared rate limiter so the authentication path can
// spend from the same quota.
func (c *Client) Limiter() *RateLimiter {
	return c.limiter
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// Do executes a request through the full pipeline. It returns only 2xx
// responses; any other terminal result surfaces as a *yougile.RequestError.
func (c *Client) Do(ctx context.Context, request *Request) (*Response, error) {
	cacheKey := ""
	if c.cacheable(request) {
		cacheKey = yougile.CacheKey(request.Method, request.Path, queryMap(request.Query))

		if entry, err := c.cache.Get(ctx, cacheKey); err == nil {
			if c.debug && c.logger != nil {
				c.logger.Debug("cache hit", map[string]interface{}{
					"method": request.Method,
					"path":   request.Path,
				})
			}

			return &Response{StatusCode: http.StatusOK, Body: entry.Data}, nil
		}
	}

	bodyBytes, err := encodeBody(request.Body)
	if err != nil {
		return nil, err
	}

	state := RetryState{}

	for {
		state.Attempt++

		response, outcome, err := c.attempt(ctx, request, bodyBytes)
		if err != nil {
			// Admission or credential acquisition failed before a
			// request went out.
			return nil, err
		}

		decision := c.policy.Classify(outcome, state)
		c.notify(state.Attempt, outcome, decision)

		switch decision.Kind {
		case DecisionReturn:
			c.storeInCache(ctx, cacheKey, request, response)
			c.invalidateOnWrite(ctx, request)

			return response, nil

		case DecisionReauthenticate:
			if err := c.reauthenticate(ctx, state.Attempt); err != nil {
				return nil, err
			}

			state.Reauthenticated = true

		case DecisionRetryAfter:
			if err := c.sleep(ctx, c.jitter(decision.Delay)); err != nil {
				return nil, err
			}

		case DecisionFail:
			return nil, c.terminalError(decision, outcome, response, state.Attempt)
		}
	}
}

// attempt performs one transport attempt: credential, admission, send.
func (c *Client) attempt(ctx context.Context, request *Request, bodyBytes []byte) (*Response, Outcome, error) {
	credential, err := c.credentials.Current(ctx)
	if err != nil {
		return nil, Outcome{}, err
	}

	if err := c.limiter.Admit(ctx); err != nil {
		return nil, Outcome{}, err
	}

	httpRequest, err := c.buildRequest(ctx, request, bodyBytes, credential.Key)
	if err != nil {
		return nil, Outcome{}, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("http request", map[string]interface{}{
			"method": request.Method,
			"path":   request.Path,
		})
	}

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		if ctx.Err() != nil {
			return nil, Outcome{}, ctx.Err()
		}

		return nil, ClassifyResponse(nil, err), nil
	}
	defer func() { _ = httpResponse.Body.Close() }()

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, ClassifyResponse(nil, err), nil
	}

	response := &Response{
		StatusCode: httpResponse.StatusCode,
		Headers:    httpResponse.Header,
		Body:       body,
	}

	outcome := ClassifyResponse(httpResponse, nil)

	if c.debug && c.logger != nil {
		c.logger.Debug("http response", map[string]interface{}{
			"method": request.Method,
			"path":   request.Path,
			"status": httpResponse.StatusCode,
		})
	}

	return response, outcome, nil
}

func (c *Client) buildRequest(ctx context.Context, request *Request, bodyBytes []byte, key string) (*http.Request, error) {
	endpoint := c.baseURL + constants.APIPrefix + request.Path
	if len(request.Query) > 0 {
		endpoint += "?" + request.Query.Encode()
	}

	httpRequest, err := http.NewRequestWithContext(ctx, request.Method, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpRequest.Header.Set("Authorization", "Bearer "+key)
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("User-Agent", c.userAgent)

	for name, value := range request.Headers {
		httpRequest.Header.Set(name, value)
	}

	return httpRequest, nil
}

// reauthenticate drops the rejected credential and negotiates a fresh one.
// A failed negotiation is terminal for the request.
func (c *Client) reauthenticate(ctx context.Context, attempts int) error {
	if credential, err := c.credentials.Current(ctx); err == nil {
		c.credentials.Invalidate(credential.Key)
	}

	if c.logger != nil {
		c.logger.Warn("credential rejected, reauthenticating", nil)
	}

	if _, err := c.credentials.Refresh(ctx); err != nil {
		return &yougile.RequestError{
			Kind:       yougile.ErrAuthenticationFailed,
			StatusCode: http.StatusUnauthorized,
			Attempts:   attempts,
		}
	}

	return nil
}

func (c *Client) terminalError(decision Decision, outcome Outcome, response *Response, attempts int) error {
	requestError := &yougile.RequestError{
		Kind:       decision.Err,
		StatusCode: outcome.StatusCode,
		Attempts:   attempts,
	}

	if response != nil {
		if apiErr, err := yougile.ParseAPIError(response.Body); err == nil && apiErr != nil {
			apiErr.StatusCode = outcome.StatusCode
			requestError.APIError = apiErr
		}
	}

	return requestError
}

// notify reports attempt progress to the observer, if any.
func (c *Client) notify(attempt int, outcome Outcome, decision Decision) {
	if c.observer == nil {
		return
	}

	delay := time.Duration(0)
	if decision.Kind == DecisionRetryAfter {
		delay = decision.Delay
	}

	c.observer(attempt, outcome.Kind.String(), delay)
}

func (c *Client) cacheable(request *Request) bool {
	return c.cache != nil &&
		request.Method == http.MethodGet &&
		c.cachePolicy.ShouldCache(request.Method, request.Path, http.StatusOK)
}

// storeInCache saves a successful GET response under its cache key.
func (c *Client) storeInCache(ctx context.Context, cacheKey string, request *Request, response *Response) {
	if cacheKey == "" || !c.cachePolicy.ShouldCache(request.Method, request.Path, response.StatusCode) {
		return
	}

	entry := &yougile.CacheEntry{
		Data:      response.Body,
		ExpiresAt: time.Now().Add(c.cachePolicy.TTL),
		ETag:      response.Headers.Get("ETag"),
	}

	if err := c.cache.Set(ctx, cacheKey, entry); err != nil && c.logger != nil {
		c.logger.Warn("cache write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// invalidateOnWrite clears cached reads after a successful mutation. Listing
// keys vary by query string, so the whole cache is dropped rather than
// guessing which entries a write touched.
func (c *Client) invalidateOnWrite(ctx context.Context, request *Request) {
	if c.cache == nil || request.Method == http.MethodGet {
		return
	}

	if err := c.cache.Clear(ctx); err != nil && c.logger != nil {
		c.logger.Warn("cache invalidation failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func encodeBody(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	return data, nil
}

func queryMap(query url.Values) map[string]string {
	if len(query) == 0 {
		return nil
	}

	params := make(map[string]string, len(query))
	for name := range query {
		params[name] = query.Get(name)
	}

	return params
}
