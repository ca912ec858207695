package routes

import (
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes declares the full HTTP surface. Reads are public, all
// content mutation is admin-only, and the contact form is the single
// public write.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/forgotpassword", h.Auth.ForgotPassword)
		authGroup.PUT("/resetpassword/:resettoken", h.Auth.ResetPassword)
		authGroup.GET("/profile", middleware.AuthMiddleware(), h.Auth.Profile)
	}

	admin := middleware.AdminMiddleware()
	authed := middleware.AuthMiddleware()

	projects := api.Group("/projects")
	{
		projects.GET("", h.Projects.GetAll)
		projects.GET("/:id", h.Projects.GetByID)
		projects.POST("", authed, admin, h.Projects.Create)
		projects.PUT("/:id", authed, admin, h.Projects.Update)
		projects.DELETE("/:id", authed, admin, h.Projects.Delete)
	}

	experiences := api.Group("/experiences")
	{
		experiences.GET("", h.Experiences.GetAll)
		experiences.GET("/:id", h.Experiences.GetByID)
		experiences.POST("", authed, admin, h.Experiences.Create)
		experiences.PUT("/:id", authed, admin, h.Experiences.Update)
		experiences.DELETE("/:id", authed, admin, h.Experiences.Delete)
	}

	resumes := api.Group("/resumes")
	{
		resumes.GET("", h.Resumes.GetAll)
		resumes.GET("/:id", h.Resumes.GetByID)
		resumes.POST("", authed, admin, h.Resumes.Create)
		resumes.PUT("/:id", authed, admin, h.Resumes.Update)
		resumes.DELETE("/:id", authed, admin, h.Resumes.Delete)
	}

	certificates := api.Group("/certificates")
	{
		certificates.GET("", h.Certificates.GetAll)
		certificates.GET("/:id", h.Certificates.GetByID)
		certificates.POST("", authed, admin, h.Certificates.Create)
		certificates.PUT("/:id", authed, admin, h.Certificates.Update)
		certificates.DELETE("/:id", authed, admin, h.Certificates.Delete)
	}

	settings := api.Group("/settings")
	{
		settings.GET("", h.Settings.Get)
		settings.PUT("", authed, admin, h.Settings.Update)
		settings.POST("/profile-photo", authed, admin, h.Settings.UpdateProfilePhoto)
	}

	education := api.Group("/education")
	{
		education.GET("", h.Education.GetAll)
		education.GET("/:id", h.Education.GetByID)
		education.POST("", authed, admin, h.Education.Create)
		education.PUT("/:id", authed, admin, h.Education.Update)
		education.DELETE("/:id", authed, admin, h.Education.Delete)
	}

	achievements := api.Group("/achievements")
	{
		achievements.GET("", h.Achievements.GetAll)
		achievements.GET("/:id", h.Achievements.GetByID)
		achievements.POST("", authed, admin, h.Achievements.Create)
		achievements.PUT("/:id", authed, admin, h.Achievements.Update)
		achievements.DELETE("/:id", authed, admin, h.Achievements.Delete)
	}

	skills := api.Group("/skillcategories")
	{
		skills.GET("", h.Skills.GetAll)
		skills.GET("/:id", h.Skills.GetByID)
		skills.POST("", authed, admin, h.Skills.CreateCategory)
		skills.PUT("/:id", authed, admin, h.Skills.UpdateCategory)
		skills.DELETE("/:id", authed, admin, h.Skills.DeleteCategory)
		skills.POST("/:id/skills", authed, admin, h.Skills.AddSkill)
		skills.DELETE("/:id/skills/:skill", authed, admin, h.Skills.RemoveSkill)
	}

	socialLinks := api.Group("/sociallinks")
	{
		socialLinks.GET("", h.SocialLinks.GetAll)
		socialLinks.GET("/:id", h.SocialLinks.GetByID)
		socialLinks.POST("", authed, admin, h.SocialLinks.Create)
		socialLinks.PUT("/:id", authed, admin, h.SocialLinks.Update)
		socialLinks.DELETE("/:id", authed, admin, h.SocialLinks.Delete)
	}

	contact := api.Group("/contact")
	{
		contact.POST("", h.Contact.Submit)
		contact.GET("", authed, admin, h.Contact.GetAll)
		contact.GET("/:id", authed, admin, h.Contact.GetByID)
		contact.DELETE("/:id", authed, admin, h.Contact.Delete)
	}

	adminGroup := api.Group("/admin", authed, admin)
	{
		adminGroup.GET("/summary", h.Dashboard.Summary)
	}
}
