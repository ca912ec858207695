package storage

import (
	"context"
	"io"
)

// DisabledStorage is the backend used when no object store is configured.
// Every operation fails immediately with ErrNotConfigured so the workflow
// can answer 503 without ever touching the network.
type DisabledStorage struct{}

func NewDisabledStorage() *DisabledStorage {
	return &DisabledStorage{}
}

func (s *DisabledStorage) Save(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error {
	return ErrNotConfigured
}

func (s *DisabledStorage) Delete(ctx context.Context, path string) error {
	return ErrNotConfigured
}

func (s *DisabledStorage) Exists(ctx context.Context, path string) (bool, error) {
	return false, ErrNotConfigured
}

func (s *DisabledStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "", ErrNotConfigured
}
