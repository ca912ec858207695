// Package managedfile implements the upload-then-persist-then-cleanup
// workflow shared by every resource that owns at most one stored file.
//
// Ordering is fixed: a new file is always uploaded to a fresh path before
// any document mutation, and a superseded file is only deleted after the
// new document state is durably saved. A failure can therefore leak a
// blob, but an active record never points at a missing one.
package managedfile

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/storage"

	"github.com/google/uuid"
)

// remoteCallTimeout bounds every individual call to the blob store.
const remoteCallTimeout = 30 * time.Second

// Blob describes a successfully staged file.
type Blob struct {
	Path         string // bucket key, kept on the record for later deletion
	URL          string // public URL, may carry transformation parameters
	MimeType     string
	Size         int64
	OriginalName string
}

// Manager coordinates blob uploads and best-effort deletions against a
// single storage backend.
type Manager struct {
	storage storage.Storage
}

func NewManager(st storage.Storage) *Manager {
	return &Manager{storage: st}
}

// Stage validates the incoming file against the rule and uploads it to a
// collision-resistant path ({folder}/{uuid}-{originalName}). Nothing is
// persisted by Stage; the caller saves the returned Blob onto its record
// and, only after a successful save, calls Cleanup on the superseded path.
//
// Returns ErrStorageNotConfigured without any network call when the
// backend is disabled, a validation error for size/type violations, and
// an UploadError when the store rejects the object.
func (m *Manager) Stage(ctx context.Context, rule Rule, file *multipart.FileHeader) (*Blob, error) {
	if err := rule.Validate(file); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s-%s", rule.Folder, uuid.NewString(), file.Filename)
	mimeType := file.Header.Get("Content-Type")

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.UploadError(err)
	}
	defer src.Close()

	saveCtx, cancel := context.WithTimeout(ctx, remoteCallTimeout)
	defer cancel()

	if err := m.storage.Save(saveCtx, path, src, file.Size, mimeType); err != nil {
		if apperrors.Is(err, storage.ErrNotConfigured) {
			return nil, apperrors.ErrStorageNotConfigured
		}
		return nil, apperrors.UploadError(err)
	}

	url, err := m.storage.GetURL(ctx, path)
	if err != nil {
		// The object is in the bucket but we cannot address it; treat as
		// a failed upload and drop the orphan.
		m.Discard(ctx, path)
		return nil, apperrors.UploadError(err)
	}

	return &Blob{
		Path:         path,
		URL:          url,
		MimeType:     mimeType,
		Size:         file.Size,
		OriginalName: file.Filename,
	}, nil
}

// Discard removes a staged blob after the subsequent record save failed.
// Best-effort: a failure leaves an orphaned blob, which is logged and
// accepted.
func (m *Manager) Discard(ctx context.Context, path string) {
	if path == "" {
		return
	}
	m.deleteQuietly(ctx, path, "failed to discard staged file, blob orphaned")
}

// Cleanup removes a superseded blob once the new record state has been
// persisted. Best-effort: the owning operation already succeeded and is
// never rolled back here.
func (m *Manager) Cleanup(ctx context.Context, path string) {
	if path == "" {
		return
	}
	m.deleteQuietly(ctx, path, "failed to delete superseded file, blob orphaned")
}

func (m *Manager) deleteQuietly(ctx context.Context, path, msg string) {
	delCtx, cancel := context.WithTimeout(ctx, remoteCallTimeout)
	defer cancel()

	if err := m.storage.Delete(delCtx, path); err != nil {
		logger.CtxWithError(ctx, msg, err, "path", path)
	}
}
