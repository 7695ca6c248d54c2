package client

import (
	"context"

	"github.com/yougile/go-yougile/internal/gateway"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// ChatsClient implements yougile.ChatsClient, covering group chats and chat
// messages.
type ChatsClient struct {
	client *gateway.Client
}

// List returns group chats.
func (c *ChatsClient) List(ctx context.Context, opts *yougile.ListOptions) (*yougile.Page[yougile.GroupChat], error) {
	var page yougile.Page[yougile.GroupChat]
	if err := getJSON(ctx, c.client, "/group-chats", opts.Values(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Create creates a group chat.
func (c *ChatsClient) Create(ctx context.Context, request *yougile.GroupChatRequest) (*yougile.ObjectRef, error) {
	var ref yougile.ObjectRef
	if err := postJSON(ctx, c.client, "/group-chats", request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// Get returns a group chat by ID.
func (c *ChatsClient) Get(ctx context.Context, chatID string) (*yougile.GroupChat, error) {
	if err := validateID(chatID); err != nil {
		return nil, err
	}

	var chat yougile.GroupChat
	if err := getJSON(ctx, c.client, "/group-chats/"+chatID, nil, &chat); err != nil {
		return nil, err
	}

	return &chat, nil
}

// Update modifies a group chat.
func (c *ChatsClient) Update(ctx context.Context, chatID string, request *yougile.GroupChatRequest) (*yougile.ObjectRef, error) {
	if err := validateID(chatID); err != nil {
		return nil, err
	}

	var ref yougile.ObjectRef
	if err := putJSON(ctx, c.client, "/group-chats/"+chatID, request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// Messages returns a chat's message history. Task chats and group chats
// share the chat ID space, so chatID may name either.
func (c *ChatsClient) Messages(ctx context.Context, chatID string, opts *yougile.ListOptions) (*yougile.Page[yougile.ChatMessage], error) {
	if err := validateID(chatID); err != nil {
		return nil, err
	}

	var page yougile.Page[yougile.ChatMessage]
	if err := getJSON(ctx, c.client, "/chats/"+chatID+"/messages", opts.Values(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// SendMessage posts a message to a chat.
func (c *ChatsClient) SendMessage(ctx context.Context, chatID string, request *yougile.ChatMessageRequest) (*yougile.ObjectRef, error) {
	if err := validateID(chatID); err != nil {
		return nil, err
	}

	var ref yougile.ObjectRef
	if err := postJSON(ctx, c.client, "/chats/"+chatID+"/messages", request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// GetMessage returns one chat message.
func (c *ChatsClient) GetMessage(ctx context.Context, chatID, messageID string) (*yougile.ChatMessage, error) {
	if err := validateID(chatID); err != nil {
		return nil, err
	}

	var message yougile.ChatMessage
	if err := getJSON(ctx, c.client, "/chats/"+chatID+"/messages/"+messageID, nil, &message); err != nil {
		return nil, err
	}

	return &message, nil
}

// UpdateMessage modifies a chat message.
func (c *ChatsClient) UpdateMessage(ctx context.Context, chatID, messageID string, request *yougile.ChatMessageRequest) (*yougile.ObjectRef, error) {
	if err := validateID(chatID); err != nil {
		return nil, err
	}

	var ref yougile.ObjectRef
	if err := putJSON(ctx, c.client, "/chats/"+chatID+"/messages/"+messageID, request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}
