package entity

// Practice describes the clinic operating the site. It is a singleton that is
// created with placeholder values on first boot and never deleted.
type Practice struct {
	Name          string      `json:"name"`
	Tagline       string      `json:"tagline"`
	Description   string      `json:"description"`
	Established   string      `json:"established"`
	LicenseNumber string      `json:"licenseNumber"`
	SocialMedia   SocialMedia `json:"socialMedia"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
	YouTube   string `json:"youtube"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// ContactInfo is the practice's public contact block, not a form submission.
type ContactInfo struct {
	Phone          string  `json:"phone"`
	WhatsApp       string  `json:"whatsapp"`
	Email          string  `json:"email"`
	EmergencyPhone string  `json:"emergencyPhone"`
	Address        Address `json:"address"`
}

type Hours struct {
	Weekdays  string `json:"weekdays"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
	Emergency string `json:"emergency"`
}

type Stats struct {
	YearsExperience string `json:"yearsExperience"`
	PatientsServed  string `json:"patientsServed"`
	SuccessRate     string `json:"successRate"`
	DoctorsCount    string `json:"doctorsCount"`
}

type SEO struct {
	SiteTitle       string   `json:"siteTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
}
