package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEducationNotFound = errors.New("education entry not found")

type EducationRepository interface {
	Create(education *models.Education) error
	FindByID(id string) (*models.Education, error)
	FindAll() ([]models.Education, error)
	Update(education *models.Education) error
	Delete(id string) error
}

type EducationRepositoryImpl struct {
	db *gorm.DB
}

func NewEducationRepository(db *gorm.DB) EducationRepository {
	return &EducationRepositoryImpl{db: db}
}

func (r *EducationRepositoryImpl) Create(education *models.Education) error {
	return r.db.Create(education).Error
}

func (r *EducationRepositoryImpl) FindByID(id string) (*models.Education, error) {
	var education models.Education
	err := r.db.First(&education, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEducationNotFound
		}
		return nil, err
	}
	return &education, nil
}

func (r *EducationRepositoryImpl) FindAll() ([]models.Education, error) {
	var entries []models.Education
	err := r.db.Order("start_date DESC").Find(&entries).Error
	return entries, err
}

func (r *EducationRepositoryImpl) Update(education *models.Education) error {
	return r.db.Save(education).Error
}

func (r *EducationRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Education{}, "id = ?", id).Error
}
