package gateway_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yougile/go-yougile/internal/gateway"
	"github.com/yougile/go-yougile/pkg/yougile"
)

func testPolicy() *gateway.RetryPolicy {
	return &gateway.RetryPolicy{
		MaxAttempts: 5,
		WaitMin:     500 * time.Millisecond,
		WaitMax:     30 * time.Second,
	}
}

func TestRetryPolicy_Classify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		outcome   gateway.Outcome
		state     gateway.RetryState
		wantKind  gateway.DecisionKind
		wantDelay time.Duration
		wantErr   error
	}{
		{
			name:     "success returns",
			outcome:  gateway.Outcome{Kind: gateway.OutcomeSuccess, StatusCode: 200},
			state:    gateway.RetryState{Attempt: 1},
			wantKind: gateway.DecisionReturn,
		},
		{
			name:     "first 401 reauthenticates",
			outcome:  gateway.Outcome{Kind: gateway.OutcomeAuthExpired, StatusCode: 401},
			state:    gateway.RetryState{Attempt: 1},
			wantKind: gateway.DecisionReauthenticate,
		},
		{
			name:     "401 after reauthentication is terminal",
			outcome:  gateway.Outcome{Kind: gateway.OutcomeAuthExpired, StatusCode: 401},
			state:    gateway.RetryState{Attempt: 2, Reauthenticated: true},
			wantKind: gateway.DecisionFail,
			wantErr:  yougile.ErrAuthenticationFailed,
		},
		{
			name:     "client error never retries",
			outcome:  gateway.Outcome{Kind: gateway.OutcomeClientError, StatusCode: 404},
			state:    gateway.RetryState{Attempt: 1},
			wantKind: gateway.DecisionFail,
			wantErr:  yougile.ErrRequestRejected,
		},
		{
			name: "rate limited honors server hint",
			outcome: gateway.Outcome{
				Kind:       gateway.OutcomeRateLimited,
				StatusCode: 429,
				RetryAfter: 7 * time.Second,
			},
			state:     gateway.RetryState{Attempt: 1},
			wantKind:  gateway.DecisionRetryAfter,
			wantDelay: 7 * time.Second,
		},
		{
			name:      "rate limited without hint backs off",
			outcome:   gateway.Outcome{Kind: gateway.OutcomeRateLimited, StatusCode: 429},
			state:     gateway.RetryState{Attempt: 2},
			wantKind:  gateway.DecisionRetryAfter,
			wantDelay: time.Second,
		},
		{
			name:      "server error retries with backoff",
			outcome:   gateway.Outcome{Kind: gateway.OutcomeServerError, StatusCode: 503},
			state:     gateway.RetryState{Attempt: 1},
			wantKind:  gateway.DecisionRetryAfter,
			wantDelay: 500 * time.Millisecond,
		},
		{
			name:     "server error exhausts attempts",
			outcome:  gateway.Outcome{Kind: gateway.OutcomeServerError, StatusCode: 503},
			state:    gateway.RetryState{Attempt: 5},
			wantKind: gateway.DecisionFail,
			wantErr:  yougile.ErrServerError,
		},
		{
			name:      "transport failure retries with backoff",
			outcome:   gateway.Outcome{Kind: gateway.OutcomeTransportFailure},
			state:     gateway.RetryState{Attempt: 3},
			wantKind:  gateway.DecisionRetryAfter,
			wantDelay: 2 * time.Second,
		},
		{
			name:     "transport failure exhausts attempts",
			outcome:  gateway.Outcome{Kind: gateway.OutcomeTransportFailure},
			state:    gateway.RetryState{Attempt: 5},
			wantKind: gateway.DecisionFail,
			wantErr:  yougile.ErrNetworkUnavailable,
		},
	}

	policy := testPolicy()

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			decision := policy.Classify(testCase.outcome, testCase.state)

			assert.Equal(t, testCase.wantKind, decision.Kind)

			if testCase.wantDelay > 0 {
				assert.Equal(t, testCase.wantDelay, decision.Delay)
			}

			if testCase.wantErr != nil {
				assert.ErrorIs(t, decision.Err, testCase.wantErr)
			}
		})
	}
}

func TestRetryPolicy_ClassifyIsDeterministic(t *testing.T) {
	t.Parallel()

	policy := testPolicy()
	outcome := gateway.Outcome{Kind: gateway.OutcomeServerError, StatusCode: 500}
	state := gateway.RetryState{Attempt: 2}

	first := policy.Classify(outcome, state)
	second := policy.Classify(outcome, state)

	assert.Equal(t, first, second)
}

func TestRetryPolicy_BackoffGrowsAndCaps(t *testing.T) {
	t.Parallel()

	policy := &gateway.RetryPolicy{
		MaxAttempts: 100,
		WaitMin:     500 * time.Millisecond,
		WaitMax:     30 * time.Second,
	}
	outcome := gateway.Outcome{Kind: gateway.OutcomeServerError, StatusCode: 500}

	previous := time.Duration(0)

	for attempt := 1; attempt <= 12; attempt++ {
		decision := policy.Classify(outcome, gateway.RetryState{Attempt: attempt})
		require.Equal(t, gateway.DecisionRetryAfter, decision.Kind)

		assert.GreaterOrEqual(t, decision.Delay, previous)
		assert.LessOrEqual(t, decision.Delay, 30*time.Second)

		previous = decision.Delay
	}

	assert.Equal(t, 30*time.Second, previous)
}

func TestClassifyResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		header   http.Header
		wantKind gateway.OutcomeKind
		wantHint time.Duration
	}{
		{name: "ok", status: 200, wantKind: gateway.OutcomeSuccess},
		{name: "created", status: 201, wantKind: gateway.OutcomeSuccess},
		{name: "unauthorized", status: 401, wantKind: gateway.OutcomeAuthExpired},
		{name: "forbidden", status: 403, wantKind: gateway.OutcomeClientError},
		{name: "not found", status: 404, wantKind: gateway.OutcomeClientError},
		{
			name:     "too many requests with hint",
			status:   429,
			header:   http.Header{"Retry-After": []string{"15"}},
			wantKind: gateway.OutcomeRateLimited,
			wantHint: 15 * time.Second,
		},
		{
			name:     "too many requests with garbage hint",
			status:   429,
			header:   http.Header{"Retry-After": []string{"soon"}},
			wantKind: gateway.OutcomeRateLimited,
		},
		{name: "server error", status: 500, wantKind: gateway.OutcomeServerError},
		{name: "bad gateway", status: 502, wantKind: gateway.OutcomeServerError},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			response := &http.Response{
				StatusCode: testCase.status,
				Header:     testCase.header,
			}
			if response.Header == nil {
				response.Header = http.Header{}
			}

			outcome := gateway.ClassifyResponse(response, nil)

			assert.Equal(t, testCase.wantKind, outcome.Kind)
			assert.Equal(t, testCase.status, outcome.StatusCode)
			assert.Equal(t, testCase.wantHint, outcome.RetryAfter)
		})
	}
}

func TestClassifyResponse_TransportError(t *testing.T) {
	t.Parallel()

	outcome := gateway.ClassifyResponse(nil, assert.AnError)

	assert.Equal(t, gateway.OutcomeTransportFailure, outcome.Kind)
	assert.Equal(t, assert.AnError, outcome.Err)
}
