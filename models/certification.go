package models

import "time"

// Certification is a professional credential entry.
type Certification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`

	Name          string `json:"name" gorm:"not null"`
	Issuer        string `json:"issuer" gorm:"not null"`
	Year          string `json:"year" gorm:"not null"`
	CredentialURL string `json:"credentialUrl,omitempty"`
}

func (Certification) TableName() string {
	return "certifications"
}

type CertificationInput struct {
	Name          string `json:"name" binding:"required"`
	Issuer        string `json:"issuer" binding:"required"`
	Year          string `json:"year" binding:"required"`
	CredentialURL string `json:"credentialUrl"`
}

func (in CertificationInput) Model() Certification {
	return Certification{
		Name:          in.Name,
		Issuer:        in.Issuer,
		Year:          in.Year,
		CredentialURL: in.CredentialURL,
	}
}

type CertificationUpdate struct {
	Name          *string `json:"name" binding:"omitempty,min=1"`
	Issuer        *string `json:"issuer" binding:"omitempty,min=1"`
	Year          *string `json:"year" binding:"omitempty,min=1"`
	CredentialURL *string `json:"credentialUrl"`
}

func (u CertificationUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Issuer != nil {
		fields["issuer"] = *u.Issuer
	}
	if u.Year != nil {
		fields["year"] = *u.Year
	}
	if u.CredentialURL != nil {
		fields["credential_url"] = *u.CredentialURL
	}
	return fields
}
