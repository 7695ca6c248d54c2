package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yougile/go-yougile/internal/auth"
	"github.com/yougile/go-yougile/internal/gateway"
)

// Fixed UUIDs for path assertions.
const (
	testTaskID    = "11111111-1111-1111-1111-111111111111"
	testProjectID = "22222222-2222-2222-2222-222222222222"
	testRoleID    = "33333333-3333-3333-3333-333333333333"
	testBoardID   = "44444444-4444-4444-4444-444444444444"
	testUserID    = "55555555-5555-5555-5555-555555555555"
	testWebhookID = "66666666-6666-6666-6666-666666666666"
)

// testClient builds a client against a test server with a static credential.
func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	manager := auth.NewManager(auth.NewNegotiator(&auth.Config{StaticKey: "test-key"}))

	return NewWithGateway(gateway.NewClient(server.URL, manager), nil, "")
}
