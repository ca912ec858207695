package services

import (
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/managedfile"
	"portfolio_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer wires every service over shared repositories, the
// managed-file workflow and the mailer.
type ServiceContainer struct {
	Auth         *AuthService
	Projects     *ProjectService
	Experiences  *ExperienceService
	Resumes      *ResumeService
	Certificates *CertificateService
	Settings     *SettingsService
	Education    *EducationService
	Achievements *AchievementService
	Skills       *SkillService
	SocialLinks  *SocialLinkService
	Contact      *ContactService
	Dashboard    *DashboardService
}

func NewServiceContainer(db *gorm.DB, files *managedfile.Manager, cfg *config.Config) *ServiceContainer {
	users := repositories.NewUserRepository(db)
	projects := repositories.NewProjectRepository(db)
	experiences := repositories.NewExperienceRepository(db)
	resumes := repositories.NewResumeRepository(db)
	certificates := repositories.NewCertificateRepository(db)
	settings := repositories.NewSettingRepository(db)
	education := repositories.NewEducationRepository(db)
	achievements := repositories.NewAchievementRepository(db)
	skills := repositories.NewSkillCategoryRepository(db)
	socialLinks := repositories.NewSocialLinkRepository(db)
	messages := repositories.NewMessageRepository(db)

	mailer := NewMailer(cfg.Email)

	return &ServiceContainer{
		Auth:         NewAuthService(users, mailer, cfg.FrontendURL),
		Projects:     NewProjectService(projects, files),
		Experiences:  NewExperienceService(experiences, files),
		Resumes:      NewResumeService(resumes, files),
		Certificates: NewCertificateService(certificates, files),
		Settings:     NewSettingsService(settings, files),
		Education:    NewEducationService(education),
		Achievements: NewAchievementService(achievements),
		Skills:       NewSkillService(skills),
		SocialLinks:  NewSocialLinkService(socialLinks),
		Contact:      NewContactService(messages, mailer, cfg.FirstAdminEmail),
		Dashboard: NewDashboardService(
			projects, resumes, certificates, messages, skills),
	}
}
