package models

// Resume is an uploaded resume document. The file is mandatory: a resume
// record without a PDF behind it is meaningless.
type Resume struct {
	BaseModel
	Field            string `gorm:"not null" json:"field"` // e.g. "Backend Engineering"
	OriginalFilename string `json:"originalFilename"`
	FileURL          string `json:"fileUrl"`
	StoredFilePath   string `json:"storedFilePath"`
	MimeType         string `json:"mimeType"`
	Size             int64  `json:"size"`
}
