package gateway

import (
	"net/http"
	"time"

	"github.com/yougile/go-yougile/pkg/yougile"
)

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger.
func WithLogger(logger yougile.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds each transport attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the transport, mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRetryPolicy replaces the retry policy.
func WithRetryPolicy(policy *RetryPolicy) Option {
	return func(c *Client) {
		c.policy = policy
	}
}

// WithRateLimiter replaces the shared rate limiter.
func WithRateLimiter(limiter *RateLimiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// WithObserver sets the per-attempt progress callback.
func WithObserver(observer yougile.AttemptObserver) Option {
	return func(c *Client) {
		c.observer = observer
	}
}

// WithCache enables the response cache. A nil policy uses
// yougile.DefaultCachingPolicy.
func WithCache(cache yougile.Cache, policy *yougile.CachingPolicy) Option {
	return func(c *Client) {
		c.cache = cache

		if policy != nil {
			c.cachePolicy = policy
		}
	}
}

// WithSleep overrides the wait primitive used between retries, for tests.
func WithSleep(sleep SleepFunc) Option {
	return func(c *Client) {
		c.sleep = sleep
	}
}

// WithJitter overrides delay jitter, for tests. The function receives the
// policy delay and returns the actual sleep.
func WithJitter(jitter func(time.Duration) time.Duration) Option {
	return func(c *Client) {
		c.jitter = jitter
	}
}
