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

type ResumeService struct {
	repo  repositories.ResumeRepository
	files *managedfile.Manager
}

func NewResumeService(repo repositories.ResumeRepository, files *managedfile.Manager) *ResumeService {
	return &ResumeService{repo: repo, files: files}
}

// Create requires a PDF: a resume record without a file behind it is
// rejected before anything is uploaded or stored.
func (s *ResumeService) Create(ctx context.Context, req *dto.CreateResumeRequest, file *multipart.FileHeader) (*models.Resume, error) {
	if file == nil {
		return nil, apperrors.ErrFileRequired
	}

	blob, err := s.files.Stage(ctx, managedfile.ResumeFileRule, file)
	if err != nil {
		return nil, err
	}

	resume := &models.Resume{
		Field:            req.Field,
		OriginalFilename: blob.OriginalName,
		FileURL:          blob.URL,
		StoredFilePath:   blob.Path,
		MimeType:         blob.MimeType,
		Size:             blob.Size,
	}

	if err := s.repo.Create(resume); err != nil {
		s.files.Discard(ctx, blob.Path)
		return nil, apperrors.PersistError(err)
	}
	return resume, nil
}

func (s *ResumeService) GetAll() ([]models.Resume, error) {
	resumes, err := s.repo.FindAll()
	if err != nil {
		return nil, apperrors.PersistError(err)
	}
	return resumes, nil
}

func (s *ResumeService) GetByID(id string) (*models.Resume, error) {
	resume, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return nil, apperrors.NotFound("resume")
		}
		return nil, apperrors.PersistError(err)
	}
	return resume, nil
}

func (s *ResumeService) Update(ctx context.Context, id string, req *dto.UpdateResumeRequest, file *multipart.FileHeader) (*models.Resume, error) {
	resume, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	oldPath := ""
	if file != nil {
		blob, err := s.files.Stage(ctx, managedfile.ResumeFileRule, file)
		if err != nil {
			return nil, err
		}
		oldPath = resume.StoredFilePath
		resume.OriginalFilename = blob.OriginalName
		resume.FileURL = blob.URL
		resume.StoredFilePath = blob.Path
		resume.MimeType = blob.MimeType
		resume.Size = blob.Size
	}

	if req.Field != nil {
		resume.Field = *req.Field
	}

	if err := s.repo.Update(resume); err != nil {
		if file != nil {
			s.files.Discard(ctx, resume.StoredFilePath)
		}
		return nil, apperrors.PersistError(err)
	}

	if oldPath != "" {
		s.files.Cleanup(ctx, oldPath)
	}
	return resume, nil
}

func (s *ResumeService) Delete(ctx context.Context, id string) error {
	resume, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.PersistError(err)
	}

	s.files.Cleanup(ctx, resume.StoredFilePath)
	return nil
}
