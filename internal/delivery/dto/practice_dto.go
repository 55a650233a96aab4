package dto

import "practice-site/internal/domain/entity"

// PracticeResponse is the practice record together with the contact, hours,
// stats and SEO sections the site renders alongside it.
type PracticeResponse struct {
	Name          string             `json:"name"`
	Tagline       string             `json:"tagline"`
	Description   string             `json:"description"`
	Established   string             `json:"established"`
	LicenseNumber string             `json:"licenseNumber"`
	Contact       entity.ContactInfo `json:"contact"`
	Hours         entity.Hours       `json:"hours"`
	Stats         entity.Stats       `json:"stats"`
	SocialMedia   entity.SocialMedia `json:"socialMedia"`
	SEO           entity.SEO         `json:"seo"`
}

// UpdatePracticeRequest is a shallow patch: every non-nil field replaces the
// stored value wholesale.
type UpdatePracticeRequest struct {
	Name          *string             `json:"name" validate:"omitempty,min=1"`
	Tagline       *string             `json:"tagline"`
	Description   *string             `json:"description"`
	Established   *string             `json:"established"`
	LicenseNumber *string             `json:"licenseNumber"`
	Contact       *entity.ContactInfo `json:"contact"`
	Hours         *entity.Hours       `json:"hours"`
	Stats         *entity.Stats       `json:"stats"`
	SocialMedia   *entity.SocialMedia `json:"socialMedia"`
	SEO           *entity.SEO         `json:"seo"`
}

type PracticeStatusResponse struct {
	Configured   bool     `json:"configured"`
	Placeholders []string `json:"placeholders"`
	LastModified string   `json:"lastModified"`
}
