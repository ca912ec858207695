package dto

type CreateEducationRequest struct {
	Institution  string `json:"institution" validate:"required,max=200"`
	Degree       string `json:"degree" validate:"required,max=200"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartYear    int    `json:"startYear" validate:"required,gte=1900,lte=2100"`
	EndYear      *int   `json:"endYear" validate:"omitempty,gte=1900,lte=2100"`
	Description  string `json:"description"`
}

type UpdateEducationRequest struct {
	Institution  *string `json:"institution" validate:"omitempty,max=200"`
	Degree       *string `json:"degree" validate:"omitempty,max=200"`
	FieldOfStudy *string `json:"fieldOfStudy"`
	StartYear    *int    `json:"startYear" validate:"omitempty,gte=1900,lte=2100"`
	EndYear      *int    `json:"endYear" validate:"omitempty,gte=1900,lte=2100"`
	Description  *string `json:"description"`
}
