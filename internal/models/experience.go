package models

import (
	"time"

	"gorm.io/datatypes"
)

// Experience is a work-history entry with an optional company logo.
type Experience struct {
	BaseModel
	Company     string     `gorm:"not null" json:"company"`
	Position    string     `gorm:"not null" json:"position"`
	Description string     `gorm:"not null;type:text" json:"description"`
	StartDate   time.Time  `gorm:"not null" json:"startDate"`
	EndDate     *time.Time `json:"endDate"` // nil while IsCurrent
	IsCurrent   bool       `json:"isCurrent"`
	Location    string     `json:"location"`

	Technologies datatypes.JSONSlice[string] `json:"technologies"`

	CompanyLogoURL string `json:"companyLogo"`
	StoredLogoPath string `json:"storedLogoPath"`
}
