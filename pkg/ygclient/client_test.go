package ygclient_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yougile/go-yougile/pkg/ygclient"
	"github.com/yougile/go-yougile/pkg/yougile"
)

func TestNew_NilConfig(t *testing.T) {
	t.Parallel()

	_, err := ygclient.New(context.Background(), nil)
	assert.ErrorIs(t, err, yougile.ErrConfigRequired)
}

func TestNew_DefaultsBaseURL(t *testing.T) {
	t.Parallel()

	config := &yougile.Config{APIKey: "key"}

	_, err := ygclient.New(context.Background(), config)
	require.NoError(t, err)
	assert.Equal(t, "https://yougile.com", config.BaseURL)
}

func TestNew_NormalizesBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trailing slash", in: "https://yougile.example.com/", want: "https://yougile.example.com"},
		{name: "no scheme", in: "yougile.example.com", want: "https://yougile.example.com"},
		{name: "version prefix stripped", in: "https://yougile.example.com/api-v2", want: "https://yougile.example.com"},
		{name: "http preserved", in: "http://localhost:8080", want: "http://localhost:8080"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			config := &yougile.Config{BaseURL: testCase.in, APIKey: "key"}

			_, err := ygclient.New(context.Background(), config)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, config.BaseURL)
		})
	}
}

func TestNewWithKey(t *testing.T) {
	t.Parallel()

	client, err := ygclient.NewWithKey(context.Background(), "pre-issued")
	require.NoError(t, err)
	assert.NotNil(t, client.Tasks())
	assert.NotNil(t, client.Boards())
	assert.NotNil(t, client.Users())
}

func TestNewWithPassword(t *testing.T) {
	t.Parallel()

	client, err := ygclient.NewWithPassword(context.Background(), "user@example.com", "secret", "company-1")
	require.NoError(t, err)
	assert.NotNil(t, client.Auth())
	assert.NotNil(t, client.Company())
}
