package services

import (
	"context"
	"testing"

	"portfolio_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsGetInitializesSingleton(t *testing.T) {
	repo := &fakeSettingRepo{}
	manager, _ := newTestManager()
	svc := NewSettingsService(repo, manager)

	setting, err := svc.Get()
	require.NoError(t, err)
	assert.NotEmpty(t, setting.ID)

	again, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, setting.ID, again.ID, "Get always returns the same row")
}

func TestSettingsPartialUpdate(t *testing.T) {
	repo := &fakeSettingRepo{}
	manager, _ := newTestManager()
	svc := NewSettingsService(repo, manager)

	_, err := svc.Update(&dto.UpdateSettingsRequest{
		OwnerName: strPtr("Ada"),
		JobTitle:  strPtr("Engineer"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(&dto.UpdateSettingsRequest{
		JobTitle: strPtr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada", updated.OwnerName, "omitted field untouched")
	assert.Empty(t, updated.JobTitle, "explicit empty value clears the field")
}

func TestProfilePhotoReplacement(t *testing.T) {
	repo := &fakeSettingRepo{}
	manager, store := newTestManager()
	svc := NewSettingsService(repo, manager)

	first := makeFileHeader(t, "profilePhoto", "me-v1.jpg", "image/jpeg", 64)
	setting, err := svc.UpdateProfilePhoto(context.Background(), first)
	require.NoError(t, err)
	oldPath := setting.StoredProfilePhotoPath
	assert.Contains(t, oldPath, "profile/")

	second := makeFileHeader(t, "profilePhoto", "me-v2.jpg", "image/jpeg", 64)
	setting, err = svc.UpdateProfilePhoto(context.Background(), second)
	require.NoError(t, err)

	assert.NotEqual(t, oldPath, setting.StoredProfilePhotoPath)
	_, oldStillThere := store.objects[oldPath]
	assert.False(t, oldStillThere)
	assert.Len(t, store.objects, 1)
}

func TestProfilePhotoPersistFailureDiscardsBlob(t *testing.T) {
	repo := &fakeSettingRepo{failUpdate: true}
	manager, store := newTestManager()
	svc := NewSettingsService(repo, manager)

	photo := makeFileHeader(t, "profilePhoto", "me.jpg", "image/jpeg", 64)
	_, err := svc.UpdateProfilePhoto(context.Background(), photo)
	require.Error(t, err)
	assert.Empty(t, store.objects)
}
