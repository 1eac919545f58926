package models

import "time"

// Profile is the site owner's record. At most one row exists; Slot is a fixed
// singleton key with a unique index so the upsert stays atomic.
type Profile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Slot      int       `json:"-" gorm:"uniqueIndex;not null;default:1"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FullName string `json:"fullName" gorm:"not null"`
	Position string `json:"position" gorm:"not null"`
	Email    string `json:"email" gorm:"not null"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Bio      string `json:"bio,omitempty" gorm:"type:text"`
	Age      int    `json:"age,omitempty"`

	LinkedinURL  string `json:"linkedinUrl,omitempty"`
	GithubURL    string `json:"githubUrl,omitempty"`
	TwitterURL   string `json:"twitterUrl,omitempty"`
	InstagramURL string `json:"instagramUrl,omitempty"`
	YoutubeURL   string `json:"youtubeUrl,omitempty"`
	PhotoURL     string `json:"photoUrl,omitempty"`
}

func (Profile) TableName() string {
	return "profile"
}

// ProfileInput is the payload accepted by PUT /api/profile.
type ProfileInput struct {
	FullName     string `json:"fullName" binding:"required"`
	Position     string `json:"position" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Bio          string `json:"bio"`
	Age          int    `json:"age" binding:"omitempty,gte=0"`
	LinkedinURL  string `json:"linkedinUrl"`
	GithubURL    string `json:"githubUrl"`
	TwitterURL   string `json:"twitterUrl"`
	InstagramURL string `json:"instagramUrl"`
	YoutubeURL   string `json:"youtubeUrl"`
	PhotoURL     string `json:"photoUrl"`
}

// Model converts the input into a persistable row.
func (in ProfileInput) Model() Profile {
	return Profile{
		FullName:     in.FullName,
		Position:     in.Position,
		Email:        in.Email,
		Phone:        in.Phone,
		Location:     in.Location,
		Bio:          in.Bio,
		Age:          in.Age,
		LinkedinURL:  in.LinkedinURL,
		GithubURL:    in.GithubURL,
		TwitterURL:   in.TwitterURL,
		InstagramURL: in.InstagramURL,
		YoutubeURL:   in.YoutubeURL,
		PhotoURL:     in.PhotoURL,
	}
}
