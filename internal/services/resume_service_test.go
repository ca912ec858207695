package services

import (
	"context"
	"testing"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/managedfile"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeCreateRequiresFile(t *testing.T) {
	repo := newFakeResumeRepo()
	manager, _ := newTestManager()
	svc := NewResumeService(repo, manager)

	_, err := svc.Create(context.Background(), &dto.CreateResumeRequest{Field: "Backend"}, nil)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrFileRequired))
	assert.Empty(t, repo.items, "nothing may be persisted without the file")
}

func TestResumeCreateStoresFileMetadata(t *testing.T) {
	repo := newFakeResumeRepo()
	manager, store := newTestManager()
	svc := NewResumeService(repo, manager)

	file := makeFileHeader(t, "resumeFile", "cv.pdf", "application/pdf", 256)
	resume, err := svc.Create(context.Background(), &dto.CreateResumeRequest{Field: "Backend"}, file)
	require.NoError(t, err)

	assert.Equal(t, "cv.pdf", resume.OriginalFilename)
	assert.Equal(t, "application/pdf", resume.MimeType)
	assert.Equal(t, int64(256), resume.Size)
	assert.Contains(t, resume.StoredFilePath, "resumes/")

	_, uploaded := store.objects[resume.StoredFilePath]
	assert.True(t, uploaded)
}

func TestResumeCreateRejectsNonPDF(t *testing.T) {
	repo := newFakeResumeRepo()
	manager, _ := newTestManager()
	svc := NewResumeService(repo, manager)

	file := makeFileHeader(t, "resumeFile", "cv.png", "image/png", 64)
	_, err := svc.Create(context.Background(), &dto.CreateResumeRequest{Field: "Backend"}, file)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidFileType))
	assert.Empty(t, repo.items)
}

func TestResumeCreateUnconfiguredStorage(t *testing.T) {
	repo := newFakeResumeRepo()
	svc := NewResumeService(repo, managedfile.NewManager(storage.NewDisabledStorage()))

	file := makeFileHeader(t, "resumeFile", "cv.pdf", "application/pdf", 64)
	_, err := svc.Create(context.Background(), &dto.CreateResumeRequest{Field: "Backend"}, file)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeStorageNotConfigured, appErr.Code)
	assert.Equal(t, 503, appErr.HTTPCode)
	assert.Empty(t, repo.items, "unconfigured storage must short-circuit before any persistence")
}

func TestResumeUpdateReplacesFile(t *testing.T) {
	repo := newFakeResumeRepo()
	manager, store := newTestManager()
	svc := NewResumeService(repo, manager)

	file := makeFileHeader(t, "resumeFile", "v1.pdf", "application/pdf", 64)
	resume, err := svc.Create(context.Background(), &dto.CreateResumeRequest{Field: "Backend"}, file)
	require.NoError(t, err)
	oldPath := resume.StoredFilePath

	newFile := makeFileHeader(t, "resumeFile", "v2.pdf", "application/pdf", 128)
	updated, err := svc.Update(context.Background(), resume.ID, &dto.UpdateResumeRequest{}, newFile)
	require.NoError(t, err)

	assert.Equal(t, "v2.pdf", updated.OriginalFilename)
	_, oldStillThere := store.objects[oldPath]
	assert.False(t, oldStillThere)
}
