package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocal(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/api/files"})
	require.NoError(t, err)
	return s
}

func TestLocalSaveAndExists(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	err := s.Save(ctx, "projects/a.png", strings.NewReader("data"), 4, "image/png")
	require.NoError(t, err)

	exists, err := s.Exists(ctx, "projects/a.png")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalSaveNeverOverwrites(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "projects/a.png", strings.NewReader("one"), 3, "image/png"))

	err := s.Save(ctx, "projects/a.png", strings.NewReader("two"), 3, "image/png")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestLocalDeleteIsIdempotent(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "resumes/cv.pdf", strings.NewReader("pdf"), 3, "application/pdf"))
	require.NoError(t, s.Delete(ctx, "resumes/cv.pdf"))

	// Second delete of the same path must not fail.
	require.NoError(t, s.Delete(ctx, "resumes/cv.pdf"))

	exists, err := s.Exists(ctx, "resumes/cv.pdf")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalGetURL(t *testing.T) {
	s := newTestLocal(t)

	url, err := s.GetURL(context.Background(), "projects/a.png")
	require.NoError(t, err)
	assert.Equal(t, "/api/files/projects/a.png", url)
}

func TestDisabledStorageRefusesEverything(t *testing.T) {
	s := NewDisabledStorage()
	ctx := context.Background()

	err := s.Save(ctx, "x", strings.NewReader(""), 0, "")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = s.GetURL(ctx, "x")
	assert.ErrorIs(t, err, ErrNotConfigured)

	assert.ErrorIs(t, s.Delete(ctx, "x"), ErrNotConfigured)
}

func TestNewStorageDegradesToDisabled(t *testing.T) {
	s, err := NewStorage(Config{Type: "s3", Bucket: "media"}) // no credentials
	require.NoError(t, err)

	assert.ErrorIs(t, s.Save(context.Background(), "x", strings.NewReader(""), 0, ""), ErrNotConfigured)
}
