package services

import (
	"errors"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
)

type SocialLinkService struct {
	repo repositories.SocialLinkRepository
}

func NewSocialLinkService(repo repositories.SocialLinkRepository) *SocialLinkService {
	return &SocialLinkService{repo: repo}
}

func (s *SocialLinkService) Create(req *dto.CreateSocialLinkRequest) (*models.SocialLink, error) {
	link := &models.SocialLink{
		Platform:     req.Platform,
		URL:          req.URL,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.repo.Create(link); err != nil {
		return nil, apperrors.PersistError(err)
	}
	return link, nil
}

func (s *SocialLinkService) GetAll() ([]models.SocialLink, error) {
	links, err := s.repo.FindAll()
	if err != nil {
		return nil, apperrors.PersistError(err)
	}
	return links, nil
}

func (s *SocialLinkService) GetByID(id string) (*models.SocialLink, error) {
	link, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrSocialLinkNotFound) {
			return nil, apperrors.NotFound("social link")
		}
		return nil, apperrors.PersistError(err)
	}
	return link, nil
}

func (s *SocialLinkService) Update(id string, req *dto.UpdateSocialLinkRequest) (*models.SocialLink, error) {
	link, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Platform != nil {
		link.Platform = *req.Platform
	}
	if req.URL != nil {
		link.URL = *req.URL
	}
	if req.Icon != nil {
		link.Icon = *req.Icon
	}
	if req.DisplayOrder != nil {
		link.DisplayOrder = *req.DisplayOrder
	}

	if err := s.repo.Update(link); err != nil {
		return nil, apperrors.PersistError(err)
	}
	return link, nil
}

func (s *SocialLinkService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return apperrors.PersistError(err)
	}
	return nil
}
