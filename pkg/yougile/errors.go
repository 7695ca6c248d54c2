package yougile

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError represents an error body returned by the YouGile API.
type APIError struct {
	StatusCode int        `json:"statusCode" yaml:"statusCode"`
	Name       string     `json:"error"      yaml:"error"`
	Message    apiMessage `json:"message"    yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.Name, e.Message, e.StatusCode)
	}

	return fmt.Sprintf("%s (status: %d)", e.Name, e.StatusCode)
}

// apiMessage tolerates both the string and string-array forms the API uses
// for the "message" field.
type apiMessage string

func (m *apiMessage) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*m = apiMessage(single)

		return nil
	}

	var many []string

	err := json.Unmarshal(data, &many)
	if err != nil {
		return fmt.Errorf("unmarshaling error message: %w", err)
	}

	*m = apiMessage(strings.Join(many, "; "))

	return nil
}

// Terminal error kinds surfaced by the gateway. Exactly one of these is
// returned per logical call that does not succeed.
var (
	// ErrAuthenticationRequired is returned by the credential store when no
	// credential has ever been issued.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrInvalidCredentials is returned when the login/password pair is
	// rejected during the authentication sequence.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCompanyNotFound is returned when the configured company ID is not
	// among the account's companies.
	ErrCompanyNotFound = errors.New("company not found for account")

	// ErrAuthenticationFailed is returned when a freshly issued credential is
	// rejected again, to break out of a refresh loop.
	ErrAuthenticationFailed = errors.New("authentication failed after credential refresh")

	// ErrRequestRejected is returned for non-retryable 4xx responses.
	ErrRequestRejected = errors.New("request rejected")

	// ErrServerError is returned once retries against 5xx responses are
	// exhausted.
	ErrServerError = errors.New("server error")

	// ErrNetworkUnavailable is returned once retries against transport
	// failures are exhausted.
	ErrNetworkUnavailable = errors.New("network unavailable")
)

// Static configuration errors.
var (
	ErrConfigRequired    = errors.New("config is required")
	ErrBaseURLRequired   = errors.New("base URL is required")
	ErrLoginRequired     = errors.New("login and password are required")
	ErrCompanyIDRequired = errors.New("company ID is required")
	ErrInvalidResourceID = errors.New("invalid resource ID")
	ErrKeyRequired       = errors.New("API key is required")
	ErrCacheDisabled     = errors.New("cache disabled")
	ErrCacheKeyNotFound  = errors.New("cache key not found")
	ErrCacheEntryExpired = errors.New("cache entry expired")
	ErrUnsupportedCache  = errors.New("unsupported cache type")
	ErrNATSConfigMissing = errors.New("NATS configuration required for NATS cache")
)

// RequestError is the terminal error returned by the gateway for a logical
// call. Kind is one of the sentinel error kinds above; APIError carries the
// decoded upstream error body when one was available.
type RequestError struct {
	Kind       error
	StatusCode int
	Attempts   int
	APIError   *APIError
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.APIError != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.APIError)
	}

	if e.StatusCode > 0 {
		return fmt.Sprintf("%v (status: %d, attempts: %d)", e.Kind, e.StatusCode, e.Attempts)
	}

	return e.Kind.Error()
}

// Unwrap lets errors.Is match against the sentinel kinds.
func (e *RequestError) Unwrap() error {
	return e.Kind
}

// IsUnauthorized reports whether err is a credential rejection.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrAuthenticationFailed)
}

// IsNotFound reports whether err is a rejected request against a missing
// resource.
func IsNotFound(err error) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == 404
	}

	return false
}

// IsRetryExhausted reports whether err is a transient condition whose retry
// budget ran out.
func IsRetryExhausted(err error) bool {
	return errors.Is(err, ErrServerError) || errors.Is(err, ErrNetworkUnavailable)
}

// ParseAPIError decodes an error body from JSON. A nil result with nil error
// means the body held no recognizable error payload.
func ParseAPIError(data []byte) (*APIError, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var apiErr APIError

	err := json.Unmarshal(data, &apiErr)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal error body: %w", err)
	}

	if apiErr.StatusCode == 0 && apiErr.Name == "" && apiErr.Message == "" {
		return nil, nil
	}

	return &apiErr, nil
}
