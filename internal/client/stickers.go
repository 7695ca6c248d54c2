package client

import (
	"context"

	"github.com/yougile/go-yougile/internal/gateway"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// StringStickersClient implements yougile.StringStickersClient.
type StringStickersClient struct {
	client *gateway.Client
}

// List returns string stickers.
func (c *StringStickersClient) List(ctx context.Context, opts *yougile.ListOptions) (*yougile.Page[yougile.StringSticker], error) {
	var page yougile.Page[yougile.StringSticker]
	if err := getJSON(ctx, c.client, "/string-stickers", opts.Values(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Create creates a string sticker.
func (c *StringStickersClient) Create(ctx context.Context, request *yougile.StringStickerRequest) (*yougile.ObjectRef, error) {
	var ref yougile.ObjectRef
	if err := postJSON(ctx, c.client, "/string-stickers", request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// Get returns a string sticker by ID.
func (c *StringStickersClient) Get(ctx context.Context, stickerID string) (*yougile.StringSticker, error) {
	if err := validateID(stickerID); err != nil {
		return nil, err
	}

	var sticker yougile.StringSticker
	if err := getJSON(ctx, c.client, "/string-stickers/"+stickerID, nil, &sticker); err != nil {
		return nil, err
	}

	return &sticker, nil
}

// Update modifies a string sticker.
func (c *StringStickersClient) Update(ctx context.Context, stickerID string, request *yougile.StringStickerRequest) (*yougile.ObjectRef, error) {
	if err := validateID(stickerID); err != nil {
		return nil, err
	}

	var ref yougile.ObjectRef
	if err := putJSON(ctx, c.client, "/string-stickers/"+stickerID, request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// GetState returns one state of a string sticker.
func (c *StringStickersClient) GetState(ctx context.Context, stickerID, stateID string) (*yougile.StickerState, error) {
	if err := validateID(stickerID); err != nil {
		return nil, err
	}

	var state yougile.StickerState
	if err := getJSON(ctx, c.client, "/string-stickers/"+stickerID+"/states/"+stateID, nil, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

// CreateState adds a state to a string sticker.
func (c *StringStickersClient) CreateState(ctx context.Context, stickerID string, request *yougile.StickerStateRequest) (*yougile.ObjectRef, error) {
	if err := validateID(stickerID); err != nil {
		return nil, err
	}

	var ref yougile.ObjectRef
	if err := postJSON(ctx, c.client, "/string-stickers/"+stickerID+"/states", request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// UpdateState modifies a state of a string sticker.
func (c *StringStickersClient) UpdateState(ctx context.Context, stickerID, stateID string, request *yougile.StickerStateRequest) (*yougile.ObjectRef, error) {
	if err := validateID(stickerID); err != nil {
		return nil, err
	}

	var ref yougile.ObjectRef
	if err := putJSON(ctx, c.client, "/string-stickers/"+stickerID+"/states/"+stateID, request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// SprintStickersClient implements yougile.SprintStickersClient.
type SprintStickersClient struct {
	client *gateway.Client
}

// List returns sprint stickers.
func (c *SprintStickersClient) List(ctx context.Context, opts *yougile.ListOptions) (*yougile.Page[yougile.SprintSticker], error) {
	var page yougile.Page[yougile.SprintSticker]
	if err := getJSON(ctx, c.client, "/sprint-stickers", opts.Values(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Create creates a sprint sticker.
func (c *SprintStickersClient) Create(ctx context.Context, request *yougile.SprintStickerRequest) (*yougile.ObjectRef, error) {
	var ref yougile.ObjectRef
	if err := postJSON(ctx, c.client, "/sprint-stickers", request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// Get returns a sprint sticker by ID.
func (c *SprintStickersClient) Get(ctx context.Context, stickerID string) (*yougile.SprintSticker, error) {
	if err := validateID(stickerID); err != nil {
		return nil, err
	}

	var sticker yougile.SprintSticker
	if err := getJSON(ctx, c.client, "/sprint-stickers/"+stickerID, nil, &sticker); err != nil {
		return nil, err
	}

	return &sticker, nil
}

// Update modifies a sprint sticker.
func (c *SprintStickersClient) Update(ctx context.Context, stickerID string, request *yougile.SprintStickerRequest) (*yougile.ObjectRef, error) {
	if err := validateID(stickerID); err != nil {
		return nil, err
	}

	var ref yougile.ObjectRef
	if err := putJSON(ctx, c.client, "/sprint-stickers/"+stickerID, request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// GetState returns one state of a sprint sticker.
func (c *SprintStickersClient) GetState(ctx context.Context, stickerID, stateID string) (*yougile.SprintStickerState, error) {
	if err := validateID(stickerID); err != nil {
		return nil, err
	}

	var state yougile.SprintStickerState
	if err := getJSON(ctx, c.client, "/sprint-stickers/"+stickerID+"/states/"+stateID, nil, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

// CreateState adds a state to a sprint sticker.
func (c *SprintStickersClient) CreateState(ctx context.Context, stickerID string, request *yougile.SprintStateRequest) (*yougile.ObjectRef, error) {
	if err := validateID(stickerID); err != nil {
		return nil, err
	}

	var ref yougile.ObjectRef
	if err := postJSON(ctx, c.client, "/sprint-stickers/"+stickerID+"/states", request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// UpdateState modifies a state of a sprint sticker.
func (c *SprintStickersClient) UpdateState(ctx context.Context, stickerID, stateID string, request *yougile.SprintStateRequest) (*yougile.ObjectRef, error) {
	if err := validateID(stickerID); err != nil {
		return nil, err
	}

	var ref yougile.ObjectRef
	if err := putJSON(ctx, c.client, "/sprint-stickers/"+stickerID+"/states/"+stateID, request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}
