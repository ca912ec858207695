package services

import (
	"context"
	"errors"
	"mime/multipart"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/managedfile"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
)

type CertificateService struct {
	repo  repositories.CertificateRepository
	files *managedfile.Manager
}

func NewCertificateService(repo repositories.CertificateRepository, files *managedfile.Manager) *CertificateService {
	return &CertificateService{repo: repo, files: files}
}

// Create requires the certificate scan (image or PDF).
func (s *CertificateService) Create(ctx context.Context, req *dto.CreateCertificateRequest, file *multipart.FileHeader) (*models.Certificate, error) {
	if file == nil {
		return nil, apperrors.ErrFileRequired
	}

	blob, err := s.files.Stage(ctx, managedfile.CertificateFileRule, file)
	if err != nil {
		return nil, err
	}

	certificate := &models.Certificate{
		Name:                req.Name,
		IssuingOrganization: req.IssuingOrganization,
		Description:         req.Description,
		CredentialID:        req.CredentialID,
		CredentialURL:       req.CredentialURL,
		DateIssued:          req.DateIssued,
		FileURL:             blob.URL,
		StoredFilePath:      blob.Path,
		MimeType:            blob.MimeType,
	}

	if err := s.repo.Create(certificate); err != nil {
		s.files.Discard(ctx, blob.Path)
		return nil, apperrors.PersistError(err)
	}
	return certificate, nil
}

func (s *CertificateService) GetAll() ([]models.Certificate, error) {
	certificates, err := s.repo.FindAll()
	if err != nil {
		return nil, apperrors.PersistError(err)
	}
	return certificates, nil
}

func (s *CertificateService) GetByID(id string) (*models.Certificate, error) {
	certificate, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCertificateNotFound) {
			return nil, apperrors.NotFound("certificate")
		}
		return nil, apperrors.PersistError(err)
	}
	return certificate, nil
}

func (s *CertificateService) Update(ctx context.Context, id string, req *dto.UpdateCertificateRequest, file *multipart.FileHeader) (*models.Certificate, error) {
	certificate, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	oldPath := ""
	if file != nil {
		blob, err := s.files.Stage(ctx, managedfile.CertificateFileRule, file)
		if err != nil {
			return nil, err
		}
		oldPath = certificate.StoredFilePath
		certificate.FileURL = blob.URL
		certificate.StoredFilePath = blob.Path
		certificate.MimeType = blob.MimeType
	}

	if req.Name != nil {
		certificate.Name = *req.Name
	}
	if req.IssuingOrganization != nil {
		certificate.IssuingOrganization = *req.IssuingOrganization
	}
	if req.Description != nil {
		certificate.Description = *req.Description
	}
	if req.CredentialID != nil {
		certificate.CredentialID = *req.CredentialID
	}
	if req.CredentialURL != nil {
		certificate.CredentialURL = *req.CredentialURL
	}
	if req.DateIssued != nil {
		certificate.DateIssued = req.DateIssued
	}

	if err := s.repo.Update(certificate); err != nil {
		if file != nil {
			s.files.Discard(ctx, certificate.StoredFilePath)
		}
		return nil, apperrors.PersistError(err)
	}

	if oldPath != "" {
		s.files.Cleanup(ctx, oldPath)
	}
	return certificate, nil
}

func (s *CertificateService) Delete(ctx context.Context, id string) error {
	certificate, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.PersistError(err)
	}

	s.files.Cleanup(ctx, certificate.StoredFilePath)
	return nil
}
