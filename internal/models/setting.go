package models

import "gorm.io/datatypes"

// Setting is the site-wide profile configuration. Exactly one row exists;
// it is created on first access.
type Setting struct {
	BaseModel
	OwnerName      string `json:"ownerName"`
	JobTitle       string `json:"jobTitle"`
	Specialization string `json:"specialization"`
	HomePageIntro  string `gorm:"type:text" json:"homePageIntroParagraph"`

	AboutMeIntroduction datatypes.JSONSlice[string] `json:"aboutMeIntroduction"`
	AboutMePhilosophy   string                      `gorm:"type:text" json:"aboutMePhilosophy"`

	ProfilePhotoURL        string `json:"profilePhotoUrl"`
	StoredProfilePhotoPath string `json:"storedProfilePhotoPath"`
}
