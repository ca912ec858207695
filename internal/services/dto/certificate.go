package dto

import "time"

type CreateCertificateRequest struct {
	Name                string     `form:"name" validate:"required,max=200"`
	IssuingOrganization string     `form:"issuingOrganization" validate:"required,max=200"`
	Description         string     `form:"description"`
	CredentialID        string     `form:"credentialId"`
	CredentialURL       string     `form:"credentialUrl" validate:"omitempty,url"`
	DateIssued          *time.Time `form:"dateIssued" time_format:"2006-01-02"`
}

type UpdateCertificateRequest struct {
	Name                *string    `form:"name" validate:"omitempty,max=200"`
	IssuingOrganization *string    `form:"issuingOrganization" validate:"omitempty,max=200"`
	Description         *string    `form:"description"`
	CredentialID        *string    `form:"credentialId"`
	CredentialURL       *string    `form:"credentialUrl" validate:"omitempty,url"`
	DateIssued          *time.Time `form:"dateIssued" time_format:"2006-01-02"`
}
