package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	Create(resume *models.Resume) error
	FindByID(id string) (*models.Resume, error)
	FindAll() ([]models.Resume, error)
	Update(resume *models.Resume) error
	Delete(id string) error
	Count() (int64, error)
}

type ResumeRepositoryImpl struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &ResumeRepositoryImpl{db: db}
}

func (r *ResumeRepositoryImpl) Create(resume *models.Resume) error {
	return r.db.Create(resume).Error
}

func (r *ResumeRepositoryImpl) FindByID(id string) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.First(&resume, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepositoryImpl) FindAll() ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.Order("created_at DESC").Find(&resumes).Error
	return resumes, err
}

func (r *ResumeRepositoryImpl) Update(resume *models.Resume) error {
	return r.db.Save(resume).Error
}

func (r *ResumeRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Resume{}, "id = ?", id).Error
}

func (r *ResumeRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Resume{}).Count(&count).Error
	return count, err
}
