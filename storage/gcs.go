package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Client wraps a GCS bucket used for uploaded media (blog images, profile
// pictures). Objects are made publicly readable and referenced by URL from
// the owning document.
type Client struct {
	gcs    *storage.Client
	bucket string
}

// NewClient creates a GCS-backed media client. If credsPath is empty, ADC is
// used.
func NewClient(ctx context.Context, bucket, credsPath string) (*Client, error) {
	var gcs *storage.Client
	var err error
	if credsPath == "" {
		gcs, err = storage.NewClient(ctx)
	} else {
		gcs, err = storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
	}
	if err != nil {
		return nil, err
	}
	return &Client{gcs: gcs, bucket: bucket}, nil
}

// Upload writes the object at objectPath with the provided contentType and
// returns its public URL.
func (c *Client) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	wc := c.gcs.Bucket(c.bucket).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // disable chunking for small files
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}
	return c.publicURL(objectPath), nil
}

// Delete removes a previously uploaded object given its public URL.
// URLs pointing outside this bucket are ignored.
func (c *Client) Delete(ctx context.Context, fileURL string) error {
	prefix := c.publicURL("")
	if !strings.HasPrefix(fileURL, prefix) {
		return nil
	}
	objectPath := strings.TrimPrefix(fileURL, prefix)
	if objectPath == "" {
		return nil
	}
	return c.gcs.Bucket(c.bucket).Object(objectPath).Delete(ctx)
}

func (c *Client) publicURL(objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucket, objectPath)
}
