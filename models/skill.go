package models

import "time"

// Skill is a single ability shown on the skills page, with a 0-100
// proficiency bar.
type Skill struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`

	Name        string `json:"name" gorm:"not null"`
	Category    string `json:"category" gorm:"not null;index"`
	Proficiency int    `json:"proficiency" gorm:"not null"`
	Description string `json:"description,omitempty" gorm:"type:text"`
}

func (Skill) TableName() string {
	return "skills"
}

// SkillInput is the create payload. Proficiency is a pointer so that an
// explicit 0 passes the required check.
type SkillInput struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Proficiency *int   `json:"proficiency" binding:"required,gte=0,lte=100"`
	Description string `json:"description"`
}

func (in SkillInput) Model() Skill {
	return Skill{
		Name:        in.Name,
		Category:    in.Category,
		Proficiency: *in.Proficiency,
		Description: in.Description,
	}
}

// SkillUpdate carries the optional fields of a partial update; only fields
// present in the request body end up in the column map.
type SkillUpdate struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Category    *string `json:"category" binding:"omitempty,min=1"`
	Proficiency *int    `json:"proficiency" binding:"omitempty,gte=0,lte=100"`
	Description *string `json:"description"`
}

func (u SkillUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Proficiency != nil {
		fields["proficiency"] = *u.Proficiency
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	return fields
}
