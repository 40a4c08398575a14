package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSFileStore writes objects to a Google Cloud Storage bucket.
type GCSFileStore struct {
	client *gcs.Client
	bucket string
}

var _ FileStore = (*GCSFileStore)(nil)

// NewGCSFileStore uses credentialsJSON when given, application default credentials otherwise.
func NewGCSFileStore(ctx context.Context, bucket, credentialsJSON string) (*GCSFileStore, error) {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, errors.New("GCS_BUCKET is required")
	}

	var opts []option.ClientOption
	if strings.TrimSpace(credentialsJSON) != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcs client: %w", err)
	}

	if _, err := client.Bucket(bucket).Attrs(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("gcs bucket %q not found or not accessible: %w", bucket, err)
	}

	return &GCSFileStore{client: client, bucket: bucket}, nil
}

// Save streams content into objectKey.
func (s *GCSFileStore) Save(ctx context.Context, objectKey, contentType string, content io.Reader) error {
	if objectKey == "" {
		return ErrInvalidObjectKey
	}
	wc := s.client.Bucket(s.bucket).Object(objectKey).NewWriter(ctx)
	wc.ContentType = contentType

	if _, err := io.Copy(wc, content); err != nil {
		wc.Close()
		return fmt.Errorf("failed to upload %s to gcs: %w", objectKey, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s in gcs: %w", objectKey, err)
	}
	return nil
}

// Delete removes objectKey. A missing object is not an error.
func (s *GCSFileStore) Delete(ctx context.Context, objectKey string) error {
	err := s.client.Bucket(s.bucket).Object(objectKey).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete %s from gcs: %w", objectKey, err)
	}
	return nil
}

// Close releases the client.
func (s *GCSFileStore) Close() error {
	return s.client.Close()
}
