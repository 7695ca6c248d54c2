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

func TestBoardsClient_ListFiltersByProject(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api-v2/boards", r.URL.Path)
		assert.Equal(t, testProjectID, r.URL.Query().Get("projectId"))

		_ = json.NewEncoder(w).Encode(yougile.Page[yougile.Board]{
			Content: []yougile.Board{
				{ID: testBoardID, Title: "Sprint 12", ProjectID: testProjectID},
			},
		})
	})

	page, err := client.Boards().List(context.Background(), &yougile.BoardListOptions{
		ProjectID: testProjectID,
	})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Sprint 12", page.Content[0].Title)
}

func TestBoardsClient_CreateAndGet(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "POST":
			var request yougile.BoardCreateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
			assert.Equal(t, "Sprint 13", request.Title)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(yougile.ObjectRef{ID: testBoardID})
		case "GET":
			assert.Equal(t, "/api-v2/boards/"+testBoardID, r.URL.Path)
			_ = json.NewEncoder(w).Encode(yougile.Board{ID: testBoardID, Title: "Sprint 13"})
		}
	})

	ctx := context.Background()

	ref, err := client.Boards().Create(ctx, &yougile.BoardCreateRequest{
		Title:     "Sprint 13",
		ProjectID: testProjectID,
	})
	require.NoError(t, err)

	board, err := client.Boards().Get(ctx, ref.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sprint 13", board.Title)
}

func TestColumnsClient_List(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api-v2/columns", r.URL.Path)
		assert.Equal(t, testBoardID, r.URL.Query().Get("boardId"))

		_ = json.NewEncoder(w).Encode(yougile.Page[yougile.Column]{
			Content: []yougile.Column{
				{ID: "col-1", Title: "In Progress", BoardID: testBoardID},
			},
		})
	})

	page, err := client.Columns().List(context.Background(), &yougile.ColumnListOptions{
		BoardID: testBoardID,
	})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "In Progress", page.Content[0].Title)
}
