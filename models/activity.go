package models

import "time"

// Activity is a highlight card on the home page. Icon holds a FontAwesome
// class and Color a theme color name.
type Activity struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`

	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	Icon        string `json:"icon" gorm:"not null"`
	Color       string `json:"color" gorm:"not null"`
}

func (Activity) TableName() string {
	return "activities"
}

type ActivityInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon" binding:"required"`
	Color       string `json:"color" binding:"required"`
}

func (in ActivityInput) Model() Activity {
	return Activity{
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		Color:       in.Color,
	}
}

type ActivityUpdate struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description" binding:"omitempty,min=1"`
	Icon        *string `json:"icon" binding:"omitempty,min=1"`
	Color       *string `json:"color" binding:"omitempty,min=1"`
}

func (u ActivityUpdate) Fields() map[string]interface{} {
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
	if u.Color != nil {
		fields["color"] = *u.Color
	}
	return fields
}
