package gateway

import (
	"net/http"
	"strconv"
	"time"
)

// OutcomeKind classifies the result of a single transport attempt.
type OutcomeKind int

const (
	// OutcomeSuccess is any 2xx response.
	OutcomeSuccess OutcomeKind = iota

	// OutcomeRateLimited is a 429 response.
	OutcomeRateLimited

	// OutcomeAuthExpired is a 401 response.
	OutcomeAuthExpired

	// OutcomeClientError is any other 4xx response.
	OutcomeClientError

	// OutcomeServerError is any 5xx response.
	OutcomeServerError

	// OutcomeTransportFailure is a request that produced no response.
	OutcomeTransportFailure
)

// String returns the outcome name for logs and observers.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRateLimited:
		return "rate_limited"
	case OutcomeAuthExpired:
		return "auth_expired"
	case OutcomeClientError:
		return "client_error"
	case OutcomeServerError:
		return "server_error"
	case OutcomeTransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of one attempt.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int

	// RetryAfter is the server's wait hint on 429, zero when absent.
	RetryAfter time.Duration

	// Err holds the transport error for OutcomeTransportFailure.
	Err error
}

// ClassifyResponse maps a transport result to an Outcome. A non-nil err means
// no response was received.
func ClassifyResponse(response *http.Response, err error) Outcome {
	if err != nil {
		return Outcome{Kind: OutcomeTransportFailure, Err: err}
	}

	status := response.StatusCode

	switch {
	case status >= 200 && status < 300:
		return Outcome{Kind: OutcomeSuccess, StatusCode: status}
	case status == http.StatusTooManyRequests:
		return Outcome{
			Kind:       OutcomeRateLimited,
			StatusCode: status,
			RetryAfter: retryAfterHint(response),
		}
	case status == http.StatusUnauthorized:
		return Outcome{Kind: OutcomeAuthExpired, StatusCode: status}
	case status >= 500:
		return Outcome{Kind: OutcomeServerError, StatusCode: status}
	default:
		return Outcome{Kind: OutcomeClientError, StatusCode: status}
	}
}

// retryAfterHint parses the Retry-After header as delay seconds. HTTP-date
// values and garbage are ignored.
func retryAfterHint(response *http.Response) time.Duration {
	value := response.Header.Get("Retry-After")
	if value == "" {
		return 0
	}

	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0
	}

	return time.Duration(seconds) * time.Second
}
