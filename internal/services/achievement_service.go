package services

import (
	"errors"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
)

type AchievementService struct {
	repo repositories.AchievementRepository
}

func NewAchievementService(repo repositories.AchievementRepository) *AchievementService {
	return &AchievementService{repo: repo}
}

func (s *AchievementService) Create(req *dto.CreateAchievementRequest) (*models.Achievement, error) {
	achievement := &models.Achievement{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	}
	if err := s.repo.Create(achievement); err != nil {
		return nil, apperrors.PersistError(err)
	}
	return achievement, nil
}

func (s *AchievementService) GetAll() ([]models.Achievement, error) {
	achievements, err := s.repo.FindAll()
	if err != nil {
		return nil, apperrors.PersistError(err)
	}
	return achievements, nil
}

func (s *AchievementService) GetByID(id string) (*models.Achievement, error) {
	achievement, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrAchievementNotFound) {
			return nil, apperrors.NotFound("achievement")
		}
		return nil, apperrors.PersistError(err)
	}
	return achievement, nil
}

func (s *AchievementService) Update(id string, req *dto.UpdateAchievementRequest) (*models.Achievement, error) {
	achievement, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		achievement.Title = *req.Title
	}
	if req.Description != nil {
		achievement.Description = *req.Description
	}
	if req.Date != nil {
		achievement.Date = req.Date
	}

	if err := s.repo.Update(achievement); err != nil {
		return nil, apperrors.PersistError(err)
	}
	return achievement, nil
}

func (s *AchievementService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return apperrors.PersistError(err)
	}
	return nil
}
