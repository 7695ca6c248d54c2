package client

import (
	"context"

	"github.com/yougile/go-yougile/internal/gateway"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// WebhooksClient implements yougile.WebhooksClient.
type WebhooksClient struct {
	client *gateway.Client
}

// List returns webhook subscriptions.
func (c *WebhooksClient) List(ctx context.Context) ([]yougile.Webhook, error) {
	var webhooks []yougile.Webhook
	if err := getJSON(ctx, c.client, "/webhooks", nil, &webhooks); err != nil {
		return nil, err
	}

	return webhooks, nil
}

// Create subscribes a URL to an event.
func (c *WebhooksClient) Create(ctx context.Context, request *yougile.WebhookRequest) (*yougile.ObjectRef, error) {
	var ref yougile.ObjectRef
	if err := postJSON(ctx, c.client, "/webhooks", request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}

// Update modifies a webhook subscription.
func (c *WebhooksClient) Update(ctx context.Context, webhookID string, request *yougile.WebhookRequest) (*yougile.ObjectRef, error) {
	if err := validateID(webhookID); err != nil {
		return nil, err
	}

	var ref yougile.ObjectRef
	if err := putJSON(ctx, c.client, "/webhooks/"+webhookID, request, &ref); err != nil {
		return nil, err
	}

	return &ref, nil
}
