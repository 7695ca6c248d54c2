package client

import (
	"context"

	"github.com/yougile/go-yougile/internal/gateway"
	"github.com/yougile/go-yougile/pkg/yougile"
)

// FilesClient implements yougile.FilesClient.
type FilesClient struct {
	client *gateway.Client
}

// Upload registers a file with the company and returns its hosted URL.
func (c *FilesClient) Upload(ctx context.Context, request *yougile.FileUploadRequest) (*yougile.FileUploadResponse, error) {
	var uploaded yougile.FileUploadResponse
	if err := postJSON(ctx, c.client, "/upload-file", request, &uploaded); err != nil {
		return nil, err
	}

	return &uploaded, nil
}
