package storage

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrNotConfigured is returned by every operation of the disabled
	// backend. Callers must surface it before attempting any remote call.
	ErrNotConfigured = errors.New("storage is not configured")

	// ErrAlreadyExists is returned by Save when an object is already
	// present at the path. Uploads never overwrite in place.
	ErrAlreadyExists = errors.New("object already exists at path")
)

// Storage is the blob-store adapter consumed by the managed-file workflow.
type Storage interface {
	// Save stores an object at the given path. Never overwrites.
	Save(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error

	// Delete removes the object at path. Deleting a missing path is not
	// an error.
	Delete(ctx context.Context, path string) error

	// Exists reports whether an object is present at path.
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns the public URL for the object at path.
	GetURL(ctx context.Context, path string) (string, error)
}

// Config holds storage configuration.
type Config struct {
	Type      string // s3, local, disabled
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string // for s3
	AccessKey string // for s3
	SecretKey string // for s3
	Endpoint  string // for s3
	UseSSL    bool   // for s3
}

// NewStorage creates a storage backend from configuration. An s3 backend
// with missing credentials degrades to the disabled backend so that
// file-accepting endpoints answer 503 instead of failing mid-upload.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		if cfg.Endpoint == "" || cfg.Bucket == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
			return NewDisabledStorage(), nil
		}
		return NewS3Storage(cfg)
	case "", "disabled":
		return NewDisabledStorage(), nil
	default:
		return nil, errors.New("unsupported storage type: " + cfg.Type)
	}
}
