package models

import "time"

// ContactMessage is a visitor submission from the public contact form. Read
// starts false and only ever flips to true.
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`

	FirstName string `json:"firstName" gorm:"not null"`
	LastName  string `json:"lastName" gorm:"not null"`
	Email     string `json:"email" gorm:"not null"`
	Subject   string `json:"subject" gorm:"not null"`
	Message   string `json:"message" gorm:"type:text;not null"`
	Read      bool   `json:"read" gorm:"default:false"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

// ContactMessageInput deliberately has no read field; visitors cannot set it.
type ContactMessageInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Subject   string `json:"subject" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

func (in ContactMessageInput) Model() ContactMessage {
	return ContactMessage{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
	}
}
