package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCertificateNotFound = errors.New("certificate not found")

type CertificateRepository interface {
	Create(certificate *models.Certificate) error
	FindByID(id string) (*models.Certificate, error)
	FindAll() ([]models.Certificate, error)
	Update(certificate *models.Certificate) error
	Delete(id string) error
	Count() (int64, error)
}

type CertificateRepositoryImpl struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) CertificateRepository {
	return &CertificateRepositoryImpl{db: db}
}

func (r *CertificateRepositoryImpl) Create(certificate *models.Certificate) error {
	return r.db.Create(certificate).Error
}

func (r *CertificateRepositoryImpl) FindByID(id string) (*models.Certificate, error) {
	var certificate models.Certificate
	err := r.db.First(&certificate, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, err
	}
	return &certificate, nil
}

// FindAll returns certificates newest first by issue date, then creation.
func (r *CertificateRepositoryImpl) FindAll() ([]models.Certificate, error) {
	var certificates []models.Certificate
	err := r.db.Order("date_issued DESC NULLS LAST, created_at DESC").Find(&certificates).Error
	return certificates, err
}

func (r *CertificateRepositoryImpl) Update(certificate *models.Certificate) error {
	return r.db.Save(certificate).Error
}

func (r *CertificateRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Certificate{}, "id = ?", id).Error
}

func (r *CertificateRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Certificate{}).Count(&count).Error
	return count, err
}
