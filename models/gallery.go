package models

import "time"

// Gallery is a photography portfolio item.
type Gallery struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`

	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	ImageURL    string     `json:"imageUrl" gorm:"not null"`
	Category    string     `json:"category" gorm:"not null;index"`
	Featured    bool       `json:"featured" gorm:"default:false"`
	Tags        StringList `json:"tags" gorm:"type:text"`
}

func (Gallery) TableName() string {
	return "galleries"
}

type GalleryInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Featured    *bool    `json:"featured"`
	Tags        []string `json:"tags"`
}

func (in GalleryInput) Model() Gallery {
	g := Gallery{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Tags:        StringList(in.Tags),
	}
	if in.Featured != nil {
		g.Featured = *in.Featured
	}
	return g
}

type GalleryUpdate struct {
	Title       *string   `json:"title" binding:"omitempty,min=1"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl" binding:"omitempty,min=1"`
	Category    *string   `json:"category" binding:"omitempty,min=1"`
	Featured    *bool     `json:"featured"`
	Tags        *[]string `json:"tags"`
}

func (u GalleryUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.ImageURL != nil {
		fields["image_url"] = *u.ImageURL
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Featured != nil {
		fields["featured"] = *u.Featured
	}
	if u.Tags != nil {
		fields["tags"] = StringList(*u.Tags)
	}
	return fields
}
