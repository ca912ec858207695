package models

// SocialLink is an external profile link rendered in the site footer.
type SocialLink struct {
	BaseModel
	Platform     string `gorm:"not null" json:"platform"`
	URL          string `gorm:"not null" json:"url"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"displayOrder"`
}
