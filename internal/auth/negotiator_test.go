package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yougile/go-yougile/internal/auth"
	"github.com/yougile/go-yougile/pkg/yougile"
)

func authServer(t *testing.T, keyCalls *atomic.Int32) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api-v2/auth/companies":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

			if body["password"] != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Unauthorized","message":"invalid login or password"}`))

				return
			}

			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"paging": map[string]interface{}{"count": 2, "next": false},
				"content": []map[string]interface{}{
					{"id": "company-1", "name": "Acme", "isAdmin": true},
					{"id": "company-2", "name": "Globex"},
				},
			})
		case "/api-v2/auth/keys":
			if keyCalls != nil {
				keyCalls.Add(1)
			}

			_ = json.NewEncoder(w).Encode(map[string]string{"key": "issued-key"})
		case "/api-v2/auth/keys/get":
			_ = json.NewEncoder(w).Encode([]map[string]interface{}{
				{"key": "issued-key", "companyId": "company-1", "timestamp": 1717243200000},
			})
		default:
			if r.Method == http.MethodDelete {
				w.WriteHeader(http.StatusOK)

				return
			}

			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
}

func TestNegotiator_Refresh(t *testing.T) {
	t.Parallel()

	server := authServer(t, nil)
	defer server.Close()

	negotiator := auth.NewNegotiator(&auth.Config{
		BaseURL:   server.URL,
		Login:     "user@example.com",
		Password:  "secret",
		CompanyID: "company-1",
	})

	credential, err := negotiator.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "issued-key", credential.Key)
	assert.Equal(t, "company-1", credential.CompanyID)
	assert.False(t, credential.IssuedAt.IsZero())
}

func TestNegotiator_StaticKeySkipsNegotiation(t *testing.T) {
	t.Parallel()

	negotiator := auth.NewNegotiator(&auth.Config{StaticKey: "pre-issued"})

	credential, err := negotiator.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pre-issued", credential.Key)
}

func TestNegotiator_InvalidCredentials(t *testing.T) {
	t.Parallel()

	server := authServer(t, nil)
	defer server.Close()

	negotiator := auth.NewNegotiator(&auth.Config{
		BaseURL:   server.URL,
		Login:     "user@example.com",
		Password:  "wrong",
		CompanyID: "company-1",
	})

	_, err := negotiator.Refresh(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, yougile.ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "invalid login or password")
}

func TestNegotiator_CompanyNotFound(t *testing.T) {
	t.Parallel()

	server := authServer(t, nil)
	defer server.Close()

	negotiator := auth.NewNegotiator(&auth.Config{
		BaseURL:   server.URL,
		Login:     "user@example.com",
		Password:  "secret",
		CompanyID: "company-9",
	})

	_, err := negotiator.Refresh(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, yougile.ErrCompanyNotFound)
}

func TestNegotiator_MissingConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *auth.Config
		wantErr error
	}{
		{
			name:    "no login",
			config:  &auth.Config{CompanyID: "company-1"},
			wantErr: yougile.ErrLoginRequired,
		},
		{
			name:    "no company",
			config:  &auth.Config{Login: "user@example.com", Password: "secret"},
			wantErr: yougile.ErrCompanyIDRequired,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			negotiator := auth.NewNegotiator(testCase.config)

			_, err := negotiator.Refresh(context.Background())
			assert.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestNegotiator_ConcurrentRefreshesCoalesce(t *testing.T) {
	t.Parallel()

	var keyCalls atomic.Int32

	server := authServer(t, &keyCalls)
	defer server.Close()

	negotiator := auth.NewNegotiator(&auth.Config{
		BaseURL:   server.URL,
		Login:     "user@example.com",
		Password:  "secret",
		CompanyID: "company-1",
	})

	var wg sync.WaitGroup

	start := make(chan struct{})

	for n := 0; n < 10; n++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			<-start

			credential, err := negotiator.Refresh(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "issued-key", credential.Key)
		}()
	}

	close(start)
	wg.Wait()

	// A burst of refreshes shares in-flight negotiations instead of
	// issuing ten keys.
	assert.Less(t, keyCalls.Load(), int32(10))
}

func TestNegotiator_CancelledCallerDoesNotFailCoalescedWaiters(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})

	var once sync.Once

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api-v2/auth/companies":
			once.Do(func() {
				close(entered)
				<-release
			})

			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"paging":  map[string]interface{}{"count": 1, "next": false},
				"content": []map[string]interface{}{{"id": "company-1", "name": "Acme"}},
			})
		case "/api-v2/auth/keys":
			_ = json.NewEncoder(w).Encode(map[string]string{"key": "issued-key"})
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

	initiatorCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	initiatorErr := make(chan error, 1)

	go func() {
		_, err := negotiator.Refresh(initiatorCtx)
		initiatorErr <- err
	}()

	// The negotiation is blocked inside the handler, so the waiter joins
	// the in-flight refresh.
	<-entered

	var (
		waiterCredential *auth.Credential
		waiterErr        error
	)

	waiterDone := make(chan struct{})

	go func() {
		defer close(waiterDone)

		waiterCredential, waiterErr = negotiator.Refresh(context.Background())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-initiatorErr, context.Canceled)

	close(release)
	<-waiterDone
	require.NoError(t, waiterErr)
	assert.Equal(t, "issued-key", waiterCredential.Key)
}

func TestNegotiator_Companies(t *testing.T) {
	t.Parallel()

	server := authServer(t, nil)
	defer server.Close()

	negotiator := auth.NewNegotiator(&auth.Config{
		BaseURL:  server.URL,
		Login:    "user@example.com",
		Password: "secret",
	})

	page, err := negotiator.Companies(context.Background(), 50, 0)
	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "Acme", page.Content[0].Name)
	assert.True(t, page.Content[0].IsAdmin)
}

func TestNegotiator_ListAndDeleteKeys(t *testing.T) {
	t.Parallel()

	server := authServer(t, nil)
	defer server.Close()

	negotiator := auth.NewNegotiator(&auth.Config{
		BaseURL:  server.URL,
		Login:    "user@example.com",
		Password: "secret",
	})

	ctx := context.Background()

	keys, err := negotiator.ListKeys(ctx, "company-1")
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, "issued-key", keys[0].Key)

	require.NoError(t, negotiator.DeleteKey(ctx, "issued-key"))

	err = negotiator.DeleteKey(ctx, "")
	assert.ErrorIs(t, err, yougile.ErrKeyRequired)
}

func TestManager_CurrentNegotiatesWhenEmpty(t *testing.T) {
	t.Parallel()

	server := authServer(t, nil)
	defer server.Close()

	manager := auth.NewManager(auth.NewNegotiator(&auth.Config{
		BaseURL:   server.URL,
		Login:     "user@example.com",
		Password:  "secret",
		CompanyID: "company-1",
	}))

	credential, err := manager.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "issued-key", credential.Key)

	// The negotiated credential is stored for subsequent calls.
	again, err := manager.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, credential.Key, again.Key)
}
