package services

import (
	"errors"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
)

type EducationService struct {
	repo repositories.EducationRepository
}

func NewEducationService(repo repositories.EducationRepository) *EducationService {
	return &EducationService{repo: repo}
}

func (s *EducationService) Create(req *dto.CreateEducationRequest) (*models.Education, error) {
	education := &models.Education{
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartYear:    req.StartYear,
		EndYear:      req.EndYear,
		Description:  req.Description,
	}
	if err := s.repo.Create(education); err != nil {
		return nil, apperrors.PersistError(err)
	}
	return education, nil
}

func (s *EducationService) GetAll() ([]models.Education, error) {
	entries, err := s.repo.FindAll()
	if err != nil {
		return nil, apperrors.PersistError(err)
	}
	return entries, nil
}

func (s *EducationService) GetByID(id string) (*models.Education, error) {
	education, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrEducationNotFound) {
			return nil, apperrors.NotFound("education entry")
		}
		return nil, apperrors.PersistError(err)
	}
	return education, nil
}

func (s *EducationService) Update(id string, req *dto.UpdateEducationRequest) (*models.Education, error) {
	education, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Institution != nil {
		education.Institution = *req.Institution
	}
	if req.Degree != nil {
		education.Degree = *req.Degree
	}
	if req.FieldOfStudy != nil {
		education.FieldOfStudy = *req.FieldOfStudy
	}
	if req.StartYear != nil {
		education.StartYear = *req.StartYear
	}
	if req.EndYear != nil {
		education.EndYear = req.EndYear
	}
	if req.Description != nil {
		education.Description = *req.Description
	}

	if err := s.repo.Update(education); err != nil {
		return nil, apperrors.PersistError(err)
	}
	return education, nil
}

func (s *EducationService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return apperrors.PersistError(err)
	}
	return nil
}
