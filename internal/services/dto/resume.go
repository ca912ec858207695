package dto

type CreateResumeRequest struct {
	Field string `form:"field" validate:"required,max=200"`
}

type UpdateResumeRequest struct {
	Field *string `form:"field" validate:"omitempty,max=200"`
}
