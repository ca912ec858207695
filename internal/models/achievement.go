package models

import "time"

// Achievement is an award or milestone highlighted on the site. Text
// only, no managed file.
type Achievement struct {
	BaseModel
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Date        *time.Time `json:"date"`
}
