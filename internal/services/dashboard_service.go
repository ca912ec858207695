package services

import (
	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
)

const recentMessageLimit = 5

type DashboardService struct {
	projects     repositories.ProjectRepository
	resumes      repositories.ResumeRepository
	certificates repositories.CertificateRepository
	messages     repositories.MessageRepository
	skills       repositories.SkillCategoryRepository
}

func NewDashboardService(
	projects repositories.ProjectRepository,
	resumes repositories.ResumeRepository,
	certificates repositories.CertificateRepository,
	messages repositories.MessageRepository,
	skills repositories.SkillCategoryRepository,
) *DashboardService {
	return &DashboardService{
		projects:     projects,
		resumes:      resumes,
		certificates: certificates,
		messages:     messages,
		skills:       skills,
	}
}

func (s *DashboardService) Summary() (*dto.DashboardSummary, error) {
	summary := &dto.DashboardSummary{}
	var err error

	if summary.ProjectCount, err = s.projects.Count(); err != nil {
		return nil, apperrors.PersistError(err)
	}
	if summary.ResumeCount, err = s.resumes.Count(); err != nil {
		return nil, apperrors.PersistError(err)
	}
	if summary.CertificateCount, err = s.certificates.Count(); err != nil {
		return nil, apperrors.PersistError(err)
	}
	if summary.MessageCount, err = s.messages.Count(); err != nil {
		return nil, apperrors.PersistError(err)
	}

	// Skills live as lists inside their categories, so the total is the
	// sum of list lengths rather than a row count.
	categories, err := s.skills.FindAll()
	if err != nil {
		return nil, apperrors.PersistError(err)
	}
	for _, category := range categories {
		summary.SkillCount += int64(len(category.Skills))
	}

	if summary.RecentMessages, err = s.messages.FindRecent(recentMessageLimit); err != nil {
		return nil, apperrors.PersistError(err)
	}
	return summary, nil
}
