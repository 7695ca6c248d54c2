package client

import (
	"context"

	"github.com/yougile/go-yougile/internal/gateway"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// BoardsClient implements yougile.BoardsClient.
type BoardsClient struct {
	client *gateway.Client
}

// List returns boards.
func (c *BoardsClient) List(ctx context.Context, opts *yougile.BoardListOptions) (*yougile.Page[yougile.Board], error) {
	var page yougile.Page[yougile.Board]
	if err := getJSON(ctx, c.client, "/boards", opts.Values(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Create creates a board.
func (c *BoardsClient) Create(ctx context.Context, request *yougile.BoardCreateRequest) (*yougile.ObjectRef, error) {
	var ref yougile.ObjectRef
	if err := postJSON(ctx, c.client, "/boards", request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// Get returns a board by ID.
func (c *BoardsClient) Get(ctx context.Context, boardID string) (*yougile.Board, error) {
	if err := validateID(boardID); err != nil {
		return nil, err
	}

	var board yougile.Board
	if err := getJSON(ctx, c.client, "/boards/"+boardID, nil, &board); err != nil {
		return nil, err
	}

	return &board, nil
}

// Update modifies a board.
func (c *BoardsClient) Update(ctx context.Context, boardID string, request *yougile.BoardUpdateRequest) (*yougile.ObjectRef, error) {
	if err := validateID(boardID); err != nil {
		return nil, err
	}

	var ref yougile.ObjectRef
	if err := putJSON(ctx, c.client, "/boards/"+boardID, request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}
