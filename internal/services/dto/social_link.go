package dto

type CreateSocialLinkRequest struct {
	Platform     string `json:"platform" validate:"required,max=100"`
	URL          string `json:"url" validate:"required,url"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"displayOrder"`
}

type UpdateSocialLinkRequest struct {
	Platform     *string `json:"platform" validate:"omitempty,max=100"`
	URL          *string `json:"url" validate:"omitempty,url"`
	Icon         *string `json:"icon"`
	DisplayOrder *int    `json:"displayOrder"`
}
