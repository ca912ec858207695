package services

import (
	"context"
	"mime/multipart"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/managedfile"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
)

type SettingsService struct {
	repo  repositories.SettingRepository
	files *managedfile.Manager
}

func NewSettingsService(repo repositories.SettingRepository, files *managedfile.Manager) *SettingsService {
	return &SettingsService{repo: repo, files: files}
}

// Get returns the singleton settings, initializing an empty row on first
// access so the frontend never sees a 404 here.
func (s *SettingsService) Get() (*models.Setting, error) {
	setting, err := s.repo.GetOrCreate()
	if err != nil {
		return nil, apperrors.PersistError(err)
	}
	return setting, nil
}

func (s *SettingsService) Update(req *dto.UpdateSettingsRequest) (*models.Setting, error) {
	setting, err := s.Get()
	if err != nil {
		return nil, err
	}

	if req.OwnerName != nil {
		setting.OwnerName = *req.OwnerName
	}
	if req.JobTitle != nil {
		setting.JobTitle = *req.JobTitle
	}
	if req.Specialization != nil {
		setting.Specialization = *req.Specialization
	}
	if req.HomePageIntro != nil {
		setting.HomePageIntro = *req.HomePageIntro
	}
	if req.AboutMeIntroduction != nil {
		setting.AboutMeIntroduction = *req.AboutMeIntroduction
	}
	if req.AboutMePhilosophy != nil {
		setting.AboutMePhilosophy = *req.AboutMePhilosophy
	}

	if err := s.repo.Update(setting); err != nil {
		return nil, apperrors.PersistError(err)
	}
	return setting, nil
}

// UpdateProfilePhoto replaces the owner photo through the same
// upload-then-persist-then-cleanup sequence used by the other resources.
func (s *SettingsService) UpdateProfilePhoto(ctx context.Context, photo *multipart.FileHeader) (*models.Setting, error) {
	if photo == nil {
		return nil, apperrors.ErrFileRequired
	}

	setting, err := s.Get()
	if err != nil {
		return nil, err
	}

	blob, err := s.files.Stage(ctx, managedfile.ProfilePhotoRule, photo)
	if err != nil {
		return nil, err
	}

	oldPath := setting.StoredProfilePhotoPath
	setting.ProfilePhotoURL = blob.URL
	setting.StoredProfilePhotoPath = blob.Path

	if err := s.repo.Update(setting); err != nil {
		s.files.Discard(ctx, blob.Path)
		return nil, apperrors.PersistError(err)
	}

	s.files.Cleanup(ctx, oldPath)
	return setting, nil
}
