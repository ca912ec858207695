package models

import "time"

// Certificate is a professional certificate backed by a mandatory image
// or PDF scan.
type Certificate struct {
	BaseModel
	Name                string     `gorm:"not null" json:"name"`
	IssuingOrganization string     `gorm:"not null" json:"issuingOrganization"`
	Description         string     `gorm:"type:text" json:"description"`
	CredentialID        string     `json:"credentialId"`
	CredentialURL       string     `json:"credentialUrl"`
	DateIssued          *time.Time `json:"dateIssued"`

	FileURL        string `json:"imageUrl"`
	StoredFilePath string `json:"storedFilePath"`
	MimeType       string `json:"mimeType"`
}
