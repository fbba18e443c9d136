package model

type ContactMessage struct {
	DTO
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Subject string `json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
	Read    bool   `gorm:"default:false" json:"read"`
}

type CreateMessageInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required"`
}

type FilterMessageInput struct {
	Pagination
	Unread *bool `query:"unread"`
}
