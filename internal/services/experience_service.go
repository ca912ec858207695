package services

import (
	"context"
	"errors"
	"mime/multipart"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/managedfile"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
)

type ExperienceService struct {
	repo  repositories.ExperienceRepository
	files *managedfile.Manager
}

func NewExperienceService(repo repositories.ExperienceRepository, files *managedfile.Manager) *ExperienceService {
	return &ExperienceService{repo: repo, files: files}
}

func (s *ExperienceService) Create(ctx context.Context, req *dto.CreateExperienceRequest, logo *multipart.FileHeader) (*models.Experience, error) {
	experience := &models.Experience{
		Company:      req.Company,
		Position:     req.Position,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsCurrent:    req.IsCurrent,
		Location:     req.Location,
		Technologies: req.Technologies,
	}
	if experience.IsCurrent {
		experience.EndDate = nil
	}

	if logo != nil {
		blob, err := s.files.Stage(ctx, managedfile.ExperienceLogoRule, logo)
		if err != nil {
			return nil, err
		}
		experience.CompanyLogoURL = blob.URL
		experience.StoredLogoPath = blob.Path
	}

	if err := s.repo.Create(experience); err != nil {
		s.files.Discard(ctx, experience.StoredLogoPath)
		return nil, apperrors.PersistError(err)
	}
	return experience, nil
}

func (s *ExperienceService) GetAll() ([]models.Experience, error) {
	experiences, err := s.repo.FindAll()
	if err != nil {
		return nil, apperrors.PersistError(err)
	}
	return experiences, nil
}

func (s *ExperienceService) GetByID(id string) (*models.Experience, error) {
	experience, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrExperienceNotFound) {
			return nil, apperrors.NotFound("experience")
		}
		return nil, apperrors.PersistError(err)
	}
	return experience, nil
}

func (s *ExperienceService) Update(ctx context.Context, id string, req *dto.UpdateExperienceRequest, logo *multipart.FileHeader) (*models.Experience, error) {
	experience, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	oldPath := ""
	if logo != nil {
		blob, err := s.files.Stage(ctx, managedfile.ExperienceLogoRule, logo)
		if err != nil {
			return nil, err
		}
		oldPath = experience.StoredLogoPath
		experience.CompanyLogoURL = blob.URL
		experience.StoredLogoPath = blob.Path
	}

	if req.Company != nil {
		experience.Company = *req.Company
	}
	if req.Position != nil {
		experience.Position = *req.Position
	}
	if req.Description != nil {
		experience.Description = *req.Description
	}
	if req.StartDate != nil {
		experience.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		experience.EndDate = req.EndDate
	}
	if req.IsCurrent != nil {
		experience.IsCurrent = *req.IsCurrent
	}
	if experience.IsCurrent {
		experience.EndDate = nil
	}
	if req.Location != nil {
		experience.Location = *req.Location
	}
	if req.Technologies != nil {
		experience.Technologies = *req.Technologies
	}

	if err := s.repo.Update(experience); err != nil {
		if logo != nil {
			s.files.Discard(ctx, experience.StoredLogoPath)
		}
		return nil, apperrors.PersistError(err)
	}

	if oldPath != "" {
		s.files.Cleanup(ctx, oldPath)
	}
	return experience, nil
}

func (s *ExperienceService) Delete(ctx context.Context, id string) error {
	experience, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.PersistError(err)
	}

	s.files.Cleanup(ctx, experience.StoredLogoPath)
	return nil
}
