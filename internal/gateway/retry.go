package gateway

import (
	"time"

	"github.com/yougile/go-yougile/internal/constants"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// DecisionKind names what the gateway does next after an attempt.
type DecisionKind int

const (
	// DecisionReturn delivers the response to the caller.
	DecisionReturn DecisionKind = iota

	// DecisionRetryAfter sleeps Delay and replays the request.
	DecisionRetryAfter

	// DecisionReauthenticate drops the credential, negotiates a fresh one,
	// and replays the request immediately.
	DecisionReauthenticate

	// DecisionFail reports Err to the caller.
	DecisionFail
)

// Decision is the policy's verdict on one attempt.
type Decision struct {
	Kind  DecisionKind
	Delay time.Duration
	Err   error
}

// RetryState is what the policy knows about the request's history.
type RetryState struct {
	// Attempt is the number of attempts completed, starting at 1.
	Attempt int

	// Reauthenticated reports whether a credential refresh already ran for
	// this request.
	Reauthenticated bool
}

// RetryPolicy maps attempt outcomes to decisions. Classification is a pure
// function of outcome and state; the gateway adds jitter when it sleeps.
type RetryPolicy struct {
	// MaxAttempts caps attempts for transient failures.
	MaxAttempts int

	// WaitMin is the backoff base delay.
	WaitMin time.Duration

	// WaitMax caps the backoff delay.
	WaitMax time.Duration
}

// DefaultRetryPolicy returns the stock retry behavior.
func DefaultRetryPolicy() *RetryPolicy {
	return &RetryPolicy{
		MaxAttempts: constants.DefaultMaxAttempts,
		WaitMin:     constants.DefaultRetryWaitMin,
		WaitMax:     constants.DefaultRetryWaitMax,
	}
}

// Classify decides what to do after an attempt.
//
// Success returns. A 401 triggers one reauthentication; a second 401 on the
// same request is terminal. Other 4xx are never retried. 429 replays after
// the server's hint, or backoff when no hint was sent; quota waits are not
// counted as attempts since the limiter bounds their rate. 5xx and transport
// failures retry with capped exponential backoff until MaxAttempts.
func (p *RetryPolicy) Classify(outcome Outcome, state RetryState) Decision {
	switch outcome.Kind {
	case OutcomeSuccess:
		return Decision{Kind: DecisionReturn}

	case OutcomeAuthExpired:
		if state.Reauthenticated {
			return Decision{Kind: DecisionFail, Err: yougile.ErrAuthenticationFailed}
		}

		return Decision{Kind: DecisionReauthenticate}

	case OutcomeClientError:
		return Decision{Kind: DecisionFail, Err: yougile.ErrRequestRejected}

	case OutcomeRateLimited:
		delay := outcome.RetryAfter
		if delay <= 0 {
			delay = p.backoff(state.Attempt)
		}

		return Decision{Kind: DecisionRetryAfter, Delay: delay}

	case OutcomeServerError:
		if state.Attempt >= p.MaxAttempts {
			return Decision{Kind: DecisionFail, Err: yougile.ErrServerError}
		}

		return Decision{Kind: DecisionRetryAfter, Delay: p.backoff(state.Attempt)}

	case OutcomeTransportFailure:
		if state.Attempt >= p.MaxAttempts {
			return Decision{Kind: DecisionFail, Err: yougile.ErrNetworkUnavailable}
		}

		return Decision{Kind: DecisionRetryAfter, Delay: p.backoff(state.Attempt)}

	default:
		return Decision{Kind: DecisionFail, Err: yougile.ErrServerError}
	}
}

// backoff returns the capped exponential delay for a completed attempt count.
func (p *RetryPolicy) backoff(attempt int) time.Duration {
	delay := p.WaitMin

	for i := 1; i < attempt; i++ {
		delay *= constants.BackoffMultiplier
		if delay >= p.WaitMax {
			return p.WaitMax
		}
	}

	if delay > p.WaitMax {
		return p.WaitMax
	}

	return delay
}
