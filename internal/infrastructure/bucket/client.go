// Package bucket uploads image files to the managed object storage service
// and hands back their public URLs.
package bucket

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nautica/internal/core/apperror"
	"nautica/internal/domain/catalog/media"
	"nautica/pkg/logger"
)

// Client talks to a Supabase-compatible storage HTTP API. Objects are
// written with the service key; reads go through the public URL.
type Client struct {
	baseURL    string
	serviceKey string
	bucketName string
	httpClient *http.Client
}

var _ media.Uploader = (*Client)(nil)

func NewClient(baseURL, serviceKey, bucketName string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		bucketName: bucketName,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload stores data under name and returns the public URL. Existing
// objects are not overwritten.
func (c *Client) Upload(ctx context.Context, name string, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", apperror.NewValidation("image data is empty")
	}
	if contentType == "" {
		contentType = "image/webp"
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucketName, escapePath(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Warn(ctx, "bucket upload rejected",
			"object", name,
			"status", resp.StatusCode,
			"body", string(body))
		if resp.StatusCode == http.StatusConflict {
			return "", apperror.NewConflict("object already exists").WithDetail("object", name)
		}
		return "", fmt.Errorf("upload %s: storage returned %d", name, resp.StatusCode)
	}

	return c.PublicURL(name), nil
}

// PublicURL returns the unauthenticated read URL for an object.
func (c *Client) PublicURL(name string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucketName, escapePath(name))
}

// Delete removes an object. Missing objects are not an error.
func (c *Client) Delete(ctx context.Context, name string) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucketName, escapePath(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete %s: storage returned %d", name, resp.StatusCode)
	}
	return nil
}

// escapePath escapes each path segment while keeping separators.
func escapePath(name string) string {
	segments := strings.Split(name, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
