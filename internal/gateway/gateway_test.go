package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yougile/go-yougile/internal/auth"
	"github.com/yougile/go-yougile/internal/gateway"
	"github.com/yougile/go-yougile/pkg/yougile"
)

func staticManager(key string) *auth.Manager {
	return auth.NewManager(auth.NewNegotiator(&auth.Config{StaticKey: key}))
}

func noSleep(ctx context.Context, d time.Duration) error { return nil }

func identityJitter(d time.Duration) time.Duration { return d }

func TestClient_SuccessRoundTrip(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api-v2/tasks", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"paging":  map[string]interface{}{"count": 1},
			"content": []map[string]interface{}{{"id": "t1", "title": "hello"}},
		})
	}))
	defer server.Close()

	client := gateway.NewClient(server.URL, staticManager("test-key"))

	query := map[string][]string{"limit": {"10"}}

	response, err := client.Get(context.Background(), "/tasks", query)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, string(response.Body), "hello")
}

func TestClient_FirstRequestNegotiatesCredential(t *testing.T) {
	t.Parallel()

	var companiesCalls, keysCalls, taskCalls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api-v2/auth/companies":
			companiesCalls.Add(1)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "user@example.com", body["login"])

			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"paging":  map[string]interface{}{"count": 1, "next": false},
				"content": []map[string]interface{}{{"id": "company-1", "name": "Acme"}},
			})
		case "/api-v2/auth/keys":
			keysCalls.Add(1)

			_ = json.NewEncoder(w).Encode(map[string]string{"key": "issued-key"})
		case "/api-v2/tasks":
			taskCalls.Add(1)

			assert.Equal(t, "Bearer issued-key", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"content": []interface{}{}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	negotiator := auth.NewNegotiator(&auth.Config{
		BaseURL:   server.URL,
		Login:     "user@example.com",
		Password:  "secret",
		CompanyID: "company-1",
	})
	client := gateway.NewClient(server.URL, auth.NewManager(negotiator))

	// Nothing happens until the first request.
	assert.Equal(t, int32(0), companiesCalls.Load())

	_, err := client.Get(context.Background(), "/tasks", nil)
	require.NoError(t, err)

	assert.Equal(t, int32(1), companiesCalls.Load())
	assert.Equal(t, int32(1), keysCalls.Load())
	assert.Equal(t, int32(1), taskCalls.Load())

	// The issued key is reused, not renegotiated.
	_, err = client.Get(context.Background(), "/tasks", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(1), companiesCalls.Load())
}

func TestClient_ExpiredKeyReauthenticatesOnce(t *testing.T) {
	t.Parallel()

	var taskCalls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api-v2/auth/companies":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"paging":  map[string]interface{}{"next": false},
				"content": []map[string]interface{}{{"id": "company-1"}},
			})
		case "/api-v2/auth/keys":
			_ = json.NewEncoder(w).Encode(map[string]string{"key": "fresh-key"})
		case "/api-v2/boards":
			taskCalls.Add(1)

			if r.Header.Get("Authorization") == "Bearer stale-key" {
				w.WriteHeader(http.StatusUnauthorized)

				return
			}

			_ = json.NewEncoder(w).Encode(map[string]interface{}{"content": []interface{}{}})
		}
	}))
	defer server.Close()

	negotiator := auth.NewNegotiator(&auth.Config{
		BaseURL:   server.URL,
		Login:     "user@example.com",
		Password:  "secret",
		CompanyID: "company-1",
	})
	manager := auth.NewManager(negotiator)
	manager.SetCredential(&auth.Credential{Key: "stale-key", CompanyID: "company-1"})

	client := gateway.NewClient(server.URL, manager)

	response, err := client.Get(context.Background(), "/boards", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, int32(2), taskCalls.Load())
}

func TestClient_PersistentUnauthorizedIsTerminal(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := gateway.NewClient(server.URL, staticManager("revoked-key"))

	_, err := client.Get(context.Background(), "/tasks", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, yougile.ErrAuthenticationFailed)

	// One original attempt plus one replay with the renegotiated key.
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_ClientErrorNeverRetries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Bad Request","message":"title is required"}`))
	}))
	defer server.Close()

	client := gateway.NewClient(server.URL, staticManager("test-key"))

	_, err := client.Post(context.Background(), "/tasks", map[string]string{})
	require.Error(t, err)
	assert.ErrorIs(t, err, yougile.ErrRequestRejected)
	assert.Equal(t, int32(1), calls.Load())

	var requestErr *yougile.RequestError
	require.ErrorAs(t, err, &requestErr)
	assert.Equal(t, http.StatusBadRequest, requestErr.StatusCode)
	assert.Equal(t, 1, requestErr.Attempts)
	require.NotNil(t, requestErr.APIError)
	assert.Contains(t, requestErr.APIError.Error(), "title is required")
}

func TestClient_ServerErrorRetriesWithBackoff(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": "t1"})
	}))
	defer server.Close()

	var slept []time.Duration

	client := gateway.NewClient(server.URL, staticManager("test-key"),
		gateway.WithJitter(identityJitter),
		gateway.WithSleep(func(ctx context.Context, d time.Duration) error {
			slept = append(slept, d)

			return nil
		}),
		gateway.WithRetryPolicy(&gateway.RetryPolicy{
			MaxAttempts: 5,
			WaitMin:     500 * time.Millisecond,
			WaitMax:     30 * time.Second,
		}),
	)

	response, err := client.Get(context.Background(), "/tasks/t1", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []time.Duration{500 * time.Millisecond, time.Second}, slept)
}

func TestClient_JitteredSleepsNeverExceedCap(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	waitCap := 10 * time.Millisecond

	var slept []time.Duration

	// The default jitter stays in place here: every slept delay must land
	// in [cap/2, cap] even when the policy returns the capped backoff.
	client := gateway.NewClient(server.URL, staticManager("test-key"),
		gateway.WithSleep(func(ctx context.Context, d time.Duration) error {
			slept = append(slept, d)

			return nil
		}),
		gateway.WithRetryPolicy(&gateway.RetryPolicy{
			MaxAttempts: 30,
			WaitMin:     waitCap,
			WaitMax:     waitCap,
		}),
	)

	_, err := client.Get(context.Background(), "/tasks", nil)
	require.Error(t, err)
	require.Len(t, slept, 29)

	for _, d := range slept {
		assert.LessOrEqual(t, d, waitCap)
		assert.GreaterOrEqual(t, d, waitCap/2)
	}
}

func TestClient_ServerErrorExhaustsAttempts(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := gateway.NewClient(server.URL, staticManager("test-key"),
		gateway.WithSleep(noSleep),
		gateway.WithRetryPolicy(&gateway.RetryPolicy{
			MaxAttempts: 3,
			WaitMin:     time.Millisecond,
			WaitMax:     time.Second,
		}),
	)

	_, err := client.Get(context.Background(), "/tasks", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, yougile.ErrServerError)
	assert.Equal(t, int32(3), calls.Load())

	var requestErr *yougile.RequestError
	require.ErrorAs(t, err, &requestErr)
	assert.Equal(t, 3, requestErr.Attempts)
}

func TestClient_RateLimitedHonorsRetryAfter(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "2")
			w.WriteHeader(http.StatusTooManyRequests)

			return
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"content": []interface{}{}})
	}))
	defer server.Close()

	var slept []time.Duration

	client := gateway.NewClient(server.URL, staticManager("test-key"),
		gateway.WithJitter(identityJitter),
		gateway.WithSleep(func(ctx context.Context, d time.Duration) error {
			slept = append(slept, d)

			return nil
		}),
	)

	_, err := client.Get(context.Background(), "/tasks", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, []time.Duration{2 * time.Second}, slept)
}

func TestClient_ObserverSeesEveryAttempt(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": "t1"})
	}))
	defer server.Close()

	type observation struct {
		attempt int
		outcome string
	}

	var seen []observation

	client := gateway.NewClient(server.URL, staticManager("test-key"),
		gateway.WithSleep(noSleep),
		gateway.WithObserver(func(attempt int, outcome string, delay time.Duration) {
			seen = append(seen, observation{attempt: attempt, outcome: outcome})
		}),
	)

	_, err := client.Get(context.Background(), "/tasks/t1", nil)
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, observation{attempt: 1, outcome: "server_error"}, seen[0])
	assert.Equal(t, observation{attempt: 2, outcome: "success"}, seen[1])
}

func TestClient_CacheServesRepeatedReads(t *testing.T) {
	t.Parallel()

	var gets, posts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			posts.Add(1)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"p2"}`))

			return
		}

		gets.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]interface{}{{"id": "p1", "title": "Project"}},
		})
	}))
	defer server.Close()

	client := gateway.NewClient(server.URL, staticManager("test-key"),
		gateway.WithCache(yougile.NewMemoryCache(10), nil),
	)

	ctx := context.Background()

	first, err := client.Get(ctx, "/projects", nil)
	require.NoError(t, err)

	second, err := client.Get(ctx, "/projects", nil)
	require.NoError(t, err)

	assert.Equal(t, first.Body, second.Body)
	assert.Equal(t, int32(1), gets.Load())

	// A write drops the cached reads.
	_, err = client.Post(ctx, "/projects", map[string]string{"title": "New"})
	require.NoError(t, err)

	_, err = client.Get(ctx, "/projects", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), gets.Load())
}

func TestClient_RequestBodyRoundTrip(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ship it", body["title"])
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "application/json"))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "task-9"})
	}))
	defer server.Close()

	client := gateway.NewClient(server.URL, staticManager("test-key"))

	response, err := client.Post(context.Background(), "/tasks", map[string]string{"title": "Ship it"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, response.StatusCode)
	assert.Contains(t, string(response.Body), "task-9")
}
