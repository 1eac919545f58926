package models

import "time"

// Project is a development portfolio entry.
type Project struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`

	Title        string     `json:"title" gorm:"not null"`
	Description  string     `json:"description" gorm:"type:text;not null"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	Category     string     `json:"category" gorm:"not null;index"`
	Technologies StringList `json:"technologies" gorm:"type:text"`
	ProjectURL   string     `json:"projectUrl,omitempty"`
	GithubURL    string     `json:"githubUrl,omitempty"`
	Featured     bool       `json:"featured" gorm:"default:false"`
}

func (Project) TableName() string {
	return "projects"
}

type ProjectInput struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	ImageURL     string   `json:"imageUrl"`
	Category     string   `json:"category" binding:"required"`
	Technologies []string `json:"technologies"`
	ProjectURL   string   `json:"projectUrl"`
	GithubURL    string   `json:"githubUrl"`
	Featured     *bool    `json:"featured"`
}

func (in ProjectInput) Model() Project {
	p := Project{
		Title:        in.Title,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		Category:     in.Category,
		Technologies: StringList(in.Technologies),
		ProjectURL:   in.ProjectURL,
		GithubURL:    in.GithubURL,
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	return p
}

type ProjectUpdate struct {
	Title        *string   `json:"title" binding:"omitempty,min=1"`
	Description  *string   `json:"description" binding:"omitempty,min=1"`
	ImageURL     *string   `json:"imageUrl"`
	Category     *string   `json:"category" binding:"omitempty,min=1"`
	Technologies *[]string `json:"technologies"`
	ProjectURL   *string   `json:"projectUrl"`
	GithubURL    *string   `json:"githubUrl"`
	Featured     *bool     `json:"featured"`
}

func (u ProjectUpdate) Fields() map[string]interface{} {
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
	if u.Technologies != nil {
		fields["technologies"] = StringList(*u.Technologies)
	}
	if u.ProjectURL != nil {
		fields["project_url"] = *u.ProjectURL
	}
	if u.GithubURL != nil {
		fields["github_url"] = *u.GithubURL
	}
	if u.Featured != nil {
		fields["featured"] = *u.Featured
	}
	return fields
}
