package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/rab_realization_app/internal/platform/config"
)

// ErrInvalidObjectKey is returned for keys that are empty or escape the store root.
var ErrInvalidObjectKey = errors.New("invalid object key")

// FileStore keeps the bytes of uploaded documents. Metadata lives in the database.
type FileStore interface {
	Save(ctx context.Context, objectKey, contentType string, content io.Reader) error
	Delete(ctx context.Context, objectKey string) error
	Close() error
}

// NewFileStore builds the store selected by STORAGE_PROVIDER.
func NewFileStore(ctx context.Context, cfg *config.Config) (FileStore, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.StorageProvider)) {
	case "", config.StorageProviderLocal:
		return NewLocalFileStore(cfg.StorageLocalDir)
	case config.StorageProviderGCS:
		return NewGCSFileStore(ctx, cfg.GCSBucket, cfg.GCSCredentialsJSON)
	default:
		return nil, fmt.Errorf("storage provider %q is not supported", cfg.StorageProvider)
	}
}
