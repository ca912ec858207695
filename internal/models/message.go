package models

// Message is a contact-form submission.
type Message struct {
	BaseModel
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Subject string `json:"subject"`
	Body    string `gorm:"not null;type:text" json:"message"`
}
