package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSocialLinkNotFound = errors.New("social link not found")

type SocialLinkRepository interface {
	Create(link *models.SocialLink) error
	FindByID(id string) (*models.SocialLink, error)
	FindAll() ([]models.SocialLink, error)
	Update(link *models.SocialLink) error
	Delete(id string) error
}

type SocialLinkRepositoryImpl struct {
	db *gorm.DB
}

func NewSocialLinkRepository(db *gorm.DB) SocialLinkRepository {
	return &SocialLinkRepositoryImpl{db: db}
}

func (r *SocialLinkRepositoryImpl) Create(link *models.SocialLink) error {
	return r.db.Create(link).Error
}

func (r *SocialLinkRepositoryImpl) FindByID(id string) (*models.SocialLink, error) {
	var link models.SocialLink
	err := r.db.First(&link, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSocialLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (r *SocialLinkRepositoryImpl) FindAll() ([]models.SocialLink, error) {
	var links []models.SocialLink
	err := r.db.Order("display_order ASC, created_at ASC").Find(&links).Error
	return links, err
}

func (r *SocialLinkRepositoryImpl) Update(link *models.SocialLink) error {
	return r.db.Save(link).Error
}

func (r *SocialLinkRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.SocialLink{}, "id = ?", id).Error
}
