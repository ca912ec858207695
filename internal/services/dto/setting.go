package dto

// UpdateSettingsRequest is a JSON partial update of the singleton
// profile settings. The photo travels through its own endpoint.
type UpdateSettingsRequest struct {
	OwnerName           *string   `json:"ownerName"`
	JobTitle            *string   `json:"jobTitle"`
	Specialization      *string   `json:"specialization"`
	HomePageIntro       *string   `json:"homePageIntroParagraph"`
	AboutMeIntroduction *[]string `json:"aboutMeIntroduction"`
	AboutMePhilosophy   *string   `json:"aboutMePhilosophy"`
}
