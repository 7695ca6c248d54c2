package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yougile/go-yougile/pkg/yougile"
)

func TestUsersClient_List(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api-v2/users", r.URL.Path)

		_ = json.NewEncoder(w).Encode(yougile.Page[yougile.User]{
			Content: []yougile.User{
				{ID: testUserID, Email: "ada@example.com", IsAdmin: true},
			},
		})
	})

	page, err := client.Users().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.True(t, page.Content[0].IsAdmin)
}

func TestUsersClient_InviteAndDelete(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "POST":
			var request yougile.UserInviteRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
			assert.Equal(t, "ada@example.com", request.Email)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(yougile.ObjectRef{ID: testUserID})
		case "DELETE":
			assert.Equal(t, "/api-v2/users/"+testUserID, r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}
	})

	ctx := context.Background()

	ref, err := client.Users().Invite(ctx, &yougile.UserInviteRequest{Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, testUserID, ref.ID)

	require.NoError(t, client.Users().Delete(ctx, testUserID))
}

func TestDepartmentsClient_CreateAndList(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api-v2/departments", r.URL.Path)

		switch r.Method {
		case "POST":
			var request yougile.DepartmentRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
			assert.Equal(t, "Engineering", request.Title)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(yougile.ObjectRef{ID: "dep-1"})
		case "GET":
			_ = json.NewEncoder(w).Encode(yougile.Page[yougile.Department]{
				Content: []yougile.Department{{ID: "dep-1", Title: "Engineering"}},
			})
		}
	})

	ctx := context.Background()

	_, err := client.Departments().Create(ctx, &yougile.DepartmentRequest{Title: "Engineering"})
	require.NoError(t, err)

	page, err := client.Departments().List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Engineering", page.Content[0].Title)
}
