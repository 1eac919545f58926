package models

import "time"

// Service is an offering on the services page. Price is free-form text
// ("from $200", "on request").
type Service struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`

	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"type:text;not null"`
	Icon        string     `json:"icon" gorm:"not null"`
	Category    string     `json:"category" gorm:"not null;index"`
	Price       string     `json:"price,omitempty"`
	Features    StringList `json:"features" gorm:"type:text"`
}

func (Service) TableName() string {
	return "services"
}

type ServiceInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Icon        string   `json:"icon" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
}

func (in ServiceInput) Model() Service {
	return Service{
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		Category:    in.Category,
		Price:       in.Price,
		Features:    StringList(in.Features),
	}
}

type ServiceUpdate struct {
	Title       *string   `json:"title" binding:"omitempty,min=1"`
	Description *string   `json:"description" binding:"omitempty,min=1"`
	Icon        *string   `json:"icon" binding:"omitempty,min=1"`
	Category    *string   `json:"category" binding:"omitempty,min=1"`
	Price       *string   `json:"price"`
	Features    *[]string `json:"features"`
}

func (u ServiceUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Icon != nil {
		fields["icon"] = *u.Icon
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Price != nil {
		fields["price"] = *u.Price
	}
	if u.Features != nil {
		fields["features"] = StringList(*u.Features)
	}
	return fields
}
