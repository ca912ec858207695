package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAchievementNotFound = errors.New("achievement not found")

type AchievementRepository interface {
	Create(achievement *models.Achievement) error
	FindByID(id string) (*models.Achievement, error)
	FindAll() ([]models.Achievement, error)
	Update(achievement *models.Achievement) error
	Delete(id string) error
}

type AchievementRepositoryImpl struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &AchievementRepositoryImpl{db: db}
}

func (r *AchievementRepositoryImpl) Create(achievement *models.Achievement) error {
	return r.db.Create(achievement).Error
}

func (r *AchievementRepositoryImpl) FindByID(id string) (*models.Achievement, error) {
	var achievement models.Achievement
	err := r.db.First(&achievement, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAchievementNotFound
		}
		return nil, err
	}
	return &achievement, nil
}

func (r *AchievementRepositoryImpl) FindAll() ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := r.db.Order("date DESC NULLS LAST, created_at DESC").Find(&achievements).Error
	return achievements, err
}

func (r *AchievementRepositoryImpl) Update(achievement *models.Achievement) error {
	return r.db.Save(achievement).Error
}

func (r *AchievementRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Achievement{}, "id = ?", id).Error
}
