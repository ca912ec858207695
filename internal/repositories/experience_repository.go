package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrExperienceNotFound = errors.New("experience not found")

type ExperienceRepository interface {
	Create(experience *models.Experience) error
	FindByID(id string) (*models.Experience, error)
	FindAll() ([]models.Experience, error)
	Update(experience *models.Experience) error
	Delete(id string) error
}

type ExperienceRepositoryImpl struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &ExperienceRepositoryImpl{db: db}
}

func (r *ExperienceRepositoryImpl) Create(experience *models.Experience) error {
	return r.db.Create(experience).Error
}

func (r *ExperienceRepositoryImpl) FindByID(id string) (*models.Experience, error) {
	var experience models.Experience
	err := r.db.First(&experience, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}
	return &experience, nil
}

// FindAll returns experiences most recent first by start date.
func (r *ExperienceRepositoryImpl) FindAll() ([]models.Experience, error) {
	var experiences []models.Experience
	err := r.db.Order("start_date DESC").Find(&experiences).Error
	return experiences, err
}

func (r *ExperienceRepositoryImpl) Update(experience *models.Experience) error {
	return r.db.Save(experience).Error
}

func (r *ExperienceRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Experience{}, "id = ?", id).Error
}
