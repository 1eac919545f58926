package models

import "time"

// Experience is a work-history entry. EndDate stays nil for the current
// position.
type Experience struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`

	Title        string     `json:"title" gorm:"not null"`
	Company      string     `json:"company" gorm:"not null"`
	StartDate    string     `json:"startDate" gorm:"not null"`
	EndDate      *string    `json:"endDate"`
	Description  string     `json:"description,omitempty" gorm:"type:text"`
	Technologies StringList `json:"technologies" gorm:"type:text"`
}

func (Experience) TableName() string {
	return "experiences"
}

type ExperienceInput struct {
	Title        string   `json:"title" binding:"required"`
	Company      string   `json:"company" binding:"required"`
	StartDate    string   `json:"startDate" binding:"required"`
	EndDate      *string  `json:"endDate"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

func (in ExperienceInput) Model() Experience {
	return Experience{
		Title:        in.Title,
		Company:      in.Company,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Description:  in.Description,
		Technologies: StringList(in.Technologies),
	}
}

type ExperienceUpdate struct {
	Title        *string   `json:"title" binding:"omitempty,min=1"`
	Company      *string   `json:"company" binding:"omitempty,min=1"`
	StartDate    *string   `json:"startDate" binding:"omitempty,min=1"`
	EndDate      *string   `json:"endDate"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
}

func (u ExperienceUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Company != nil {
		fields["company"] = *u.Company
	}
	if u.StartDate != nil {
		fields["start_date"] = *u.StartDate
	}
	if u.EndDate != nil {
		fields["end_date"] = *u.EndDate
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Technologies != nil {
		fields["technologies"] = StringList(*u.Technologies)
	}
	return fields
}
