package storage

import (
	"context"
	"io"
)

// Storage abstracts where idea attachments live. Blobs are opaque: no format
// validation happens at this layer, and Save is treated as an atomic put.
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	GetURL(ctx context.Context, path string) (string, error)
	GetSize(ctx context.Context, path string) (int64, error)
}

// Config holds storage configuration.
type Config struct {
	BasePath string // filesystem root
	BaseURL  string // public URL base
}

// NewStorage returns the configured backend. Only the local filesystem is
// deployed today; the interface is the seam for an object store later.
func NewStorage(cfg Config) (Storage, error) {
	return NewLocalStorage(cfg)
}
