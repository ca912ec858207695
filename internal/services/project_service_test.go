package services

import (
	"context"
	"strings"
	"testing"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProjectCreateWithImage(t *testing.T) {
	repo := newFakeProjectRepo()
	manager, store := newTestManager()
	svc := NewProjectService(repo, manager)

	file := makeFileHeader(t, "projectImage", "shot.png", "image/png", 64)
	project, err := svc.Create(context.Background(), &dto.CreateProjectRequest{
		Title:        "Portfolio",
		Description:  "My site",
		Technologies: []string{"Go", "Postgres"},
	}, file)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(project.StoredImagePath, "projects/"))
	assert.Equal(t, "https://cdn.test/bucket/"+project.StoredImagePath, project.ImageURL)

	_, uploaded := store.objects[project.StoredImagePath]
	assert.True(t, uploaded)

	saved, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.StoredImagePath, saved.StoredImagePath)
}

func TestProjectCreateWithoutImage(t *testing.T) {
	repo := newFakeProjectRepo()
	manager, store := newTestManager()
	svc := NewProjectService(repo, manager)

	project, err := svc.Create(context.Background(), &dto.CreateProjectRequest{
		Title:       "No image",
		Description: "Text only",
	}, nil)
	require.NoError(t, err)

	assert.Empty(t, project.ImageURL)
	assert.Empty(t, project.StoredImagePath)
	assert.Empty(t, store.objects)
}

func TestProjectCreatePersistFailureDiscardsBlob(t *testing.T) {
	repo := newFakeProjectRepo()
	repo.failCreate = true
	manager, store := newTestManager()
	svc := NewProjectService(repo, manager)

	file := makeFileHeader(t, "projectImage", "shot.png", "image/png", 64)
	_, err := svc.Create(context.Background(), &dto.CreateProjectRequest{
		Title:       "Doomed",
		Description: "Insert will fail",
	}, file)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeDatabaseError, appErr.Code)

	assert.Empty(t, store.objects, "staged blob must be discarded after a failed insert")
	assert.Len(t, store.deleted, 1)
}

func TestProjectUpdateReplacesImage(t *testing.T) {
	repo := newFakeProjectRepo()
	manager, store := newTestManager()
	svc := NewProjectService(repo, manager)

	file := makeFileHeader(t, "projectImage", "old.png", "image/png", 32)
	project, err := svc.Create(context.Background(), &dto.CreateProjectRequest{
		Title: "P", Description: "D",
	}, file)
	require.NoError(t, err)
	oldPath := project.StoredImagePath

	newFile := makeFileHeader(t, "projectImage", "new.png", "image/png", 32)
	updated, err := svc.Update(context.Background(), project.ID, &dto.UpdateProjectRequest{}, newFile)
	require.NoError(t, err)

	assert.NotEqual(t, oldPath, updated.StoredImagePath)
	_, oldStillThere := store.objects[oldPath]
	assert.False(t, oldStillThere, "superseded blob must be removed after the save")
	_, newThere := store.objects[updated.StoredImagePath]
	assert.True(t, newThere)
}

func TestProjectUpdateMetadataOnlyKeepsImage(t *testing.T) {
	repo := newFakeProjectRepo()
	manager, store := newTestManager()
	svc := NewProjectService(repo, manager)

	file := makeFileHeader(t, "projectImage", "keep.png", "image/png", 32)
	project, err := svc.Create(context.Background(), &dto.CreateProjectRequest{
		Title: "Before", Description: "D",
	}, file)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), project.ID, &dto.UpdateProjectRequest{
		Title: strPtr("After"),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "D", updated.Description, "omitted fields stay untouched")
	assert.Equal(t, project.StoredImagePath, updated.StoredImagePath)
	assert.Empty(t, store.deleted)
}

func TestProjectUpdateClearsProvidedEmptyValue(t *testing.T) {
	repo := newFakeProjectRepo()
	manager, _ := newTestManager()
	svc := NewProjectService(repo, manager)

	project, err := svc.Create(context.Background(), &dto.CreateProjectRequest{
		Title: "P", Description: "D", GithubURL: "https://github.com/x/y",
	}, nil)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), project.ID, &dto.UpdateProjectRequest{
		GithubURL: strPtr(""),
	}, nil)
	require.NoError(t, err)

	assert.Empty(t, updated.GithubURL, "an explicit empty value clears the field")
}

func TestProjectUpdatePersistFailureKeepsOldBlob(t *testing.T) {
	repo := newFakeProjectRepo()
	manager, store := newTestManager()
	svc := NewProjectService(repo, manager)

	file := makeFileHeader(t, "projectImage", "old.png", "image/png", 32)
	project, err := svc.Create(context.Background(), &dto.CreateProjectRequest{
		Title: "P", Description: "D",
	}, file)
	require.NoError(t, err)
	oldPath := project.StoredImagePath

	repo.failUpdate = true
	newFile := makeFileHeader(t, "projectImage", "new.png", "image/png", 32)
	_, err = svc.Update(context.Background(), project.ID, &dto.UpdateProjectRequest{}, newFile)
	require.Error(t, err)

	_, oldStillThere := store.objects[oldPath]
	assert.True(t, oldStillThere, "old blob survives a failed update")
	assert.Len(t, store.objects, 1, "staged replacement must be discarded")

	saved, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, oldPath, saved.StoredImagePath, "record still references the old blob")
}

func TestProjectDeleteRemovesRecordAndBlob(t *testing.T) {
	repo := newFakeProjectRepo()
	manager, store := newTestManager()
	svc := NewProjectService(repo, manager)

	file := makeFileHeader(t, "projectImage", "gone.png", "image/png", 32)
	project, err := svc.Create(context.Background(), &dto.CreateProjectRequest{
		Title: "P", Description: "D",
	}, file)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), project.ID))

	_, err = repo.FindByID(project.ID)
	assert.Error(t, err)
	assert.Empty(t, store.objects)
}

func TestProjectGetByIDNotFound(t *testing.T) {
	repo := newFakeProjectRepo()
	manager, _ := newTestManager()
	svc := NewProjectService(repo, manager)

	_, err := svc.GetByID("missing")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	assert.Equal(t, 404, appErr.HTTPCode)
}
