package handlers

import (
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth         *AuthHandler
	Projects     *ProjectHandler
	Experiences  *ExperienceHandler
	Resumes      *ResumeHandler
	Certificates *CertificateHandler
	Settings     *SettingsHandler
	Education    *EducationHandler
	Achievements *AchievementHandler
	Skills       *SkillHandler
	SocialLinks  *SocialLinkHandler
	Contact      *ContactHandler
	Dashboard    *DashboardHandler
}

func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		Auth:         NewAuthHandler(base, sc.Auth),
		Projects:     NewProjectHandler(base, sc.Projects),
		Experiences:  NewExperienceHandler(base, sc.Experiences),
		Resumes:      NewResumeHandler(base, sc.Resumes),
		Certificates: NewCertificateHandler(base, sc.Certificates),
		Settings:     NewSettingsHandler(base, sc.Settings),
		Education:    NewEducationHandler(base, sc.Education),
		Achievements: NewAchievementHandler(base, sc.Achievements),
		Skills:       NewSkillHandler(base, sc.Skills),
		SocialLinks:  NewSocialLinkHandler(base, sc.SocialLinks),
		Contact:      NewContactHandler(base, sc.Contact),
		Dashboard:    NewDashboardHandler(base, sc.Dashboard),
	}
}
