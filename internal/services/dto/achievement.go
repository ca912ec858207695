package dto

import "time"

type CreateAchievementRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
}

type UpdateAchievementRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
}
