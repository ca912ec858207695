package models

import "gorm.io/datatypes"

// Project is a portfolio project with an optional showcase image.
type Project struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null;type:text" json:"description"`
	ProjectLink string `json:"projectLink"`
	GithubURL   string `json:"githubUrl"`

	Technologies datatypes.JSONSlice[string] `json:"technologies"`

	// ImageURL is the public URL; StoredImagePath is the bucket key used
	// for deletion. The path is set iff the blob was uploaded and this
	// record was persisted referencing it.
	ImageURL        string `json:"imageUrl"`
	StoredImagePath string `json:"storedImagePath"`
}
