package models

import "time"

// Education is a degree or formal training entry.
type Education struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`

	Degree      string `json:"degree" gorm:"not null"`
	Institution string `json:"institution" gorm:"not null"`
	Year        string `json:"year" gorm:"not null"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	GPA         string `json:"gpa,omitempty"`
}

func (Education) TableName() string {
	return "education"
}

type EducationInput struct {
	Degree      string `json:"degree" binding:"required"`
	Institution string `json:"institution" binding:"required"`
	Year        string `json:"year" binding:"required"`
	Description string `json:"description"`
	GPA         string `json:"gpa"`
}

func (in EducationInput) Model() Education {
	return Education{
		Degree:      in.Degree,
		Institution: in.Institution,
		Year:        in.Year,
		Description: in.Description,
		GPA:         in.GPA,
	}
}

type EducationUpdate struct {
	Degree      *string `json:"degree" binding:"omitempty,min=1"`
	Institution *string `json:"institution" binding:"omitempty,min=1"`
	Year        *string `json:"year" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	GPA         *string `json:"gpa"`
}

func (u EducationUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Degree != nil {
		fields["degree"] = *u.Degree
	}
	if u.Institution != nil {
		fields["institution"] = *u.Institution
	}
	if u.Year != nil {
		fields["year"] = *u.Year
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.GPA != nil {
		fields["gpa"] = *u.GPA
	}
	return fields
}
