package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSkillCategoryNotFound = errors.New("skill category not found")
	ErrSkillCategoryExists   = errors.New("skill category already exists")
)

type SkillCategoryRepository interface {
	Create(category *models.SkillCategory) error
	FindByID(id string) (*models.SkillCategory, error)
	FindByName(name string) (*models.SkillCategory, error)
	FindAll() ([]models.SkillCategory, error)
	Update(category *models.SkillCategory) error
	Delete(id string) error
}

type SkillCategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewSkillCategoryRepository(db *gorm.DB) SkillCategoryRepository {
	return &SkillCategoryRepositoryImpl{db: db}
}

func (r *SkillCategoryRepositoryImpl) Create(category *models.SkillCategory) error {
	return r.db.Create(category).Error
}

func (r *SkillCategoryRepositoryImpl) FindByID(id string) (*models.SkillCategory, error) {
	var category models.SkillCategory
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *SkillCategoryRepositoryImpl) FindByName(name string) (*models.SkillCategory, error) {
	var category models.SkillCategory
	err := r.db.First(&category, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *SkillCategoryRepositoryImpl) FindAll() ([]models.SkillCategory, error) {
	var categories []models.SkillCategory
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *SkillCategoryRepositoryImpl) Update(category *models.SkillCategory) error {
	return r.db.Save(category).Error
}

func (r *SkillCategoryRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.SkillCategory{}, "id = ?", id).Error
}
