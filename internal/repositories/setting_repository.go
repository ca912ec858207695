package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

type SettingRepository interface {
	// GetOrCreate returns the singleton settings row, creating an
	// empty one on first access.
	GetOrCreate() (*models.Setting, error)
	Update(setting *models.Setting) error
}

type SettingRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &SettingRepositoryImpl{db: db}
}

func (r *SettingRepositoryImpl) GetOrCreate() (*models.Setting, error) {
	var setting models.Setting
	err := r.db.First(&setting).Error
	if err == nil {
		return &setting, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	setting = models.Setting{}
	if err := r.db.Create(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepositoryImpl) Update(setting *models.Setting) error {
	return r.db.Save(setting).Error
}
