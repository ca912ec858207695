package services

import (
	"errors"
	"strings"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
)

type SkillService struct {
	repo repositories.SkillCategoryRepository
}

func NewSkillService(repo repositories.SkillCategoryRepository) *SkillService {
	return &SkillService{repo: repo}
}

func (s *SkillService) CreateCategory(req *dto.CreateSkillCategoryRequest) (*models.SkillCategory, error) {
	if _, err := s.repo.FindByName(req.Name); err == nil {
		return nil, apperrors.NewConflictError("skill category already exists")
	} else if !errors.Is(err, repositories.ErrSkillCategoryNotFound) {
		return nil, apperrors.PersistError(err)
	}

	category := &models.SkillCategory{
		Name:   req.Name,
		Skills: req.Skills,
	}
	if err := s.repo.Create(category); err != nil {
		return nil, apperrors.PersistError(err)
	}
	return category, nil
}

func (s *SkillService) GetAll() ([]models.SkillCategory, error) {
	categories, err := s.repo.FindAll()
	if err != nil {
		return nil, apperrors.PersistError(err)
	}
	return categories, nil
}

func (s *SkillService) GetByID(id string) (*models.SkillCategory, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrSkillCategoryNotFound) {
			return nil, apperrors.NotFound("skill category")
		}
		return nil, apperrors.PersistError(err)
	}
	return category, nil
}

func (s *SkillService) UpdateCategory(id string, req *dto.UpdateSkillCategoryRequest) (*models.SkillCategory, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Skills != nil {
		category.Skills = *req.Skills
	}

	if err := s.repo.Update(category); err != nil {
		return nil, apperrors.PersistError(err)
	}
	return category, nil
}

func (s *SkillService) DeleteCategory(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return apperrors.PersistError(err)
	}
	return nil
}

// AddSkill appends a skill to the category, ignoring case-insensitive
// duplicates.
func (s *SkillService) AddSkill(id string, skill string) (*models.SkillCategory, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	for _, existing := range category.Skills {
		if strings.EqualFold(existing, skill) {
			return category, nil
		}
	}
	category.Skills = append(category.Skills, skill)

	if err := s.repo.Update(category); err != nil {
		return nil, apperrors.PersistError(err)
	}
	return category, nil
}

func (s *SkillService) RemoveSkill(id string, skill string) (*models.SkillCategory, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	kept := category.Skills[:0]
	for _, existing := range category.Skills {
		if !strings.EqualFold(existing, skill) {
			kept = append(kept, existing)
		}
	}
	category.Skills = kept

	if err := s.repo.Update(category); err != nil {
		return nil, apperrors.PersistError(err)
	}
	return category, nil
}
