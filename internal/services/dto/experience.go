package dto

import "time"

type CreateExperienceRequest struct {
	Company      string     `form:"company" validate:"required,max=200"`
	Position     string     `form:"position" validate:"required,max=200"`
	Description  string     `form:"description" validate:"required"`
	StartDate    time.Time  `form:"startDate" time_format:"2006-01-02" validate:"required"`
	EndDate      *time.Time `form:"endDate" time_format:"2006-01-02"`
	IsCurrent    bool       `form:"isCurrent"`
	Location     string     `form:"location"`
	Technologies []string   `form:"technologies"`
}

type UpdateExperienceRequest struct {
	Company      *string    `form:"company" validate:"omitempty,max=200"`
	Position     *string    `form:"position" validate:"omitempty,max=200"`
	Description  *string    `form:"description"`
	StartDate    *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate      *time.Time `form:"endDate" time_format:"2006-01-02"`
	IsCurrent    *bool      `form:"isCurrent"`
	Location     *string    `form:"location"`
	Technologies *[]string  `form:"technologies"`
}
