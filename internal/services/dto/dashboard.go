package dto

import "portfolio_backend/internal/models"

// DashboardSummary backs the admin landing page.
type DashboardSummary struct {
	ProjectCount     int64            `json:"projectCount"`
	ResumeCount      int64            `json:"resumeCount"`
	CertificateCount int64            `json:"certificateCount"`
	MessageCount     int64            `json:"messageCount"`
	SkillCount       int64            `json:"skillCount"`
	RecentMessages   []models.Message `json:"recentMessages"`
}
