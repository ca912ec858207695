package models

import "gorm.io/datatypes"

// SkillCategory groups related skills under one heading.
type SkillCategory struct {
	BaseModel
	Name   string                      `gorm:"uniqueIndex;not null" json:"name"`
	Skills datatypes.JSONSlice[string] `json:"skills"`
}
