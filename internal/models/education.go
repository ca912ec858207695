package models

// Education is a study-history entry. Text only, no managed file.
type Education struct {
	BaseModel
	Institution  string `gorm:"not null" json:"institution"`
	Degree       string `gorm:"not null" json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartYear    int    `gorm:"not null" json:"startYear"`
	EndYear      *int   `json:"endYear"`
	Description  string `gorm:"type:text" json:"description"`
}
