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

type ProjectService struct {
	repo  repositories.ProjectRepository
	files *managedfile.Manager
}

func NewProjectService(repo repositories.ProjectRepository, files *managedfile.Manager) *ProjectService {
	return &ProjectService{repo: repo, files: files}
}

// Create stages the image (if any) before touching the database, so a
// failed insert can only leak a blob, never produce a record pointing at
// a file that was never uploaded.
func (s *ProjectService) Create(ctx context.Context, req *dto.CreateProjectRequest, image *multipart.FileHeader) (*models.Project, error) {
	project := &models.Project{
		Title:        req.Title,
		Description:  req.Description,
		ProjectLink:  req.ProjectLink,
		GithubURL:    req.GithubURL,
		Technologies: req.Technologies,
	}

	if image != nil {
		blob, err := s.files.Stage(ctx, managedfile.ProjectImageRule, image)
		if err != nil {
			return nil, err
		}
		project.ImageURL = blob.URL
		project.StoredImagePath = blob.Path
	}

	if err := s.repo.Create(project); err != nil {
		s.files.Discard(ctx, project.StoredImagePath)
		return nil, apperrors.PersistError(err)
	}
	return project, nil
}

func (s *ProjectService) GetAll() ([]models.Project, error) {
	projects, err := s.repo.FindAll()
	if err != nil {
		return nil, apperrors.PersistError(err)
	}
	return projects, nil
}

func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	project, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NotFound("project")
		}
		return nil, apperrors.PersistError(err)
	}
	return project, nil
}

// Update applies a partial update. When a replacement image arrives, the
// new blob is uploaded first and the superseded one is only deleted after
// the record is saved.
func (s *ProjectService) Update(ctx context.Context, id string, req *dto.UpdateProjectRequest, image *multipart.FileHeader) (*models.Project, error) {
	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	oldPath := ""
	if image != nil {
		blob, err := s.files.Stage(ctx, managedfile.ProjectImageRule, image)
		if err != nil {
			return nil, err
		}
		oldPath = project.StoredImagePath
		project.ImageURL = blob.URL
		project.StoredImagePath = blob.Path
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ProjectLink != nil {
		project.ProjectLink = *req.ProjectLink
	}
	if req.GithubURL != nil {
		project.GithubURL = *req.GithubURL
	}
	if req.Technologies != nil {
		project.Technologies = *req.Technologies
	}

	if err := s.repo.Update(project); err != nil {
		if image != nil {
			s.files.Discard(ctx, project.StoredImagePath)
		}
		return nil, apperrors.PersistError(err)
	}

	if oldPath != "" {
		s.files.Cleanup(ctx, oldPath)
	}
	return project, nil
}

// Delete removes the record first; the blob is cleaned up afterwards so
// a storage hiccup cannot resurrect a half-deleted project.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	project, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.PersistError(err)
	}

	s.files.Cleanup(ctx, project.StoredImagePath)
	return nil
}
