package entity

import "strings"

// Top-level section names of the site document.
const (
	SectionPractice  = "practice"
	SectionContact   = "contact"
	SectionHours     = "hours"
	SectionStats     = "stats"
	SectionServices  = "services"
	SectionTeam      = "team"
	SectionBlogPosts = "blogPosts"
	SectionGallery   = "gallery"
	SectionContacts  = "contacts"
	SectionUI        = "ui"
	SectionSEO       = "seo"
)

var Sections = []string{
	SectionPractice, SectionContact, SectionHours, SectionStats, SectionServices, SectionTeam,
	SectionBlogPosts, SectionGallery, SectionContacts, SectionUI, SectionSEO,
}

// SiteDocument is the single persisted document holding all site content.
type SiteDocument struct {
	Practice     Practice       `json:"practice"`
	Contact      ContactInfo    `json:"contact"`
	Hours        Hours          `json:"hours"`
	Stats        Stats          `json:"stats"`
	Services     []Service      `json:"services"`
	Team         []TeamMember   `json:"team"`
	BlogPosts    []BlogPost     `json:"blogPosts"`
	Gallery      Gallery        `json:"gallery"`
	Contacts     []Contact      `json:"contacts"`
	UI           map[string]any `json:"ui"`
	SEO          SEO            `json:"seo"`
	LastModified string         `json:"lastModified"`
}

// Normalize replaces nil collections with empty ones so the document always
// serializes lists as [] and the UI object as {}.
func (d *SiteDocument) Normalize() {
	if d.Services == nil {
		d.Services = []Service{}
	}
	if d.Team == nil {
		d.Team = []TeamMember{}
	}
	if d.BlogPosts == nil {
		d.BlogPosts = []BlogPost{}
	}
	if d.Contacts == nil {
		d.Contacts = []Contact{}
	}
	if d.Gallery.FacilityImages == nil {
		d.Gallery.FacilityImages = []FacilityImage{}
	}
	if d.Gallery.BeforeAfterCases == nil {
		d.Gallery.BeforeAfterCases = []BeforeAfterCase{}
	}
	if d.UI == nil {
		d.UI = map[string]any{}
	}
	if d.SEO.Keywords == nil {
		d.SEO.Keywords = []string{}
	}
}

// EmptyDocument is the blank-valued document served when the stored one
// cannot be read.
func EmptyDocument() *SiteDocument {
	doc := &SiteDocument{}
	doc.Normalize()
	return doc
}

// DefaultDocument is written on first boot. Every practice field holds a
// bracket-delimited placeholder so the admin UI can tell the site is not
// configured yet.
func DefaultDocument() *SiteDocument {
	doc := &SiteDocument{
		Practice: Practice{
			Name:          "[Enter Your Practice Name]",
			Tagline:       "[Enter Your Practice Tagline]",
			Description:   "[Enter a short description of your practice]",
			Established:   "[Year Established]",
			LicenseNumber: "[License Number]",
			SocialMedia: SocialMedia{
				Facebook:  "[Facebook URL]",
				Instagram: "[Instagram URL]",
				Twitter:   "[Twitter URL]",
				LinkedIn:  "[LinkedIn URL]",
				YouTube:   "[YouTube URL]",
			},
		},
		Contact: ContactInfo{
			Phone:          "[Phone Number]",
			WhatsApp:       "[WhatsApp Number]",
			Email:          "[Email Address]",
			EmergencyPhone: "[Emergency Phone]",
			Address: Address{
				Street:  "[Street Address]",
				City:    "[City]",
				State:   "[State]",
				Zip:     "[ZIP Code]",
				Country: "[Country]",
			},
		},
		Hours: Hours{
			Weekdays:  "[Weekday Hours]",
			Saturday:  "[Saturday Hours]",
			Sunday:    "[Sunday Hours]",
			Emergency: "[Emergency Availability]",
		},
		Stats: Stats{
			YearsExperience: "[Years]",
			PatientsServed:  "[Patients]",
			SuccessRate:     "[Success Rate]",
			DoctorsCount:    "[Doctors]",
		},
		SEO: SEO{
			SiteTitle:       "[Enter Your Site Title]",
			MetaDescription: "[Enter Your Meta Description]",
			Keywords:        []string{},
		},
	}
	doc.Normalize()
	return doc
}

// IsPlaceholder reports whether s is an unedited bracket placeholder.
func IsPlaceholder(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) > 2 && strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")
}

// Placeholders lists the dotted paths of practice fields that still hold
// placeholder values.
func (d *SiteDocument) Placeholders() []string {
	fields := []struct {
		path  string
		value string
	}{
		{"practice.name", d.Practice.Name},
		{"practice.tagline", d.Practice.Tagline},
		{"practice.description", d.Practice.Description},
		{"practice.established", d.Practice.Established},
		{"practice.licenseNumber", d.Practice.LicenseNumber},
		{"contact.phone", d.Contact.Phone},
		{"contact.whatsapp", d.Contact.WhatsApp},
		{"contact.email", d.Contact.Email},
		{"contact.emergencyPhone", d.Contact.EmergencyPhone},
		{"contact.address.street", d.Contact.Address.Street},
		{"contact.address.city", d.Contact.Address.City},
		{"contact.address.state", d.Contact.Address.State},
		{"contact.address.zip", d.Contact.Address.Zip},
		{"contact.address.country", d.Contact.Address.Country},
		{"hours.weekdays", d.Hours.Weekdays},
		{"hours.saturday", d.Hours.Saturday},
		{"hours.sunday", d.Hours.Sunday},
		{"hours.emergency", d.Hours.Emergency},
		{"stats.yearsExperience", d.Stats.YearsExperience},
		{"stats.patientsServed", d.Stats.PatientsServed},
		{"stats.successRate", d.Stats.SuccessRate},
		{"stats.doctorsCount", d.Stats.DoctorsCount},
		{"seo.siteTitle", d.SEO.SiteTitle},
		{"seo.metaDescription", d.SEO.MetaDescription},
	}

	placeholders := []string{}
	for _, f := range fields {
		if IsPlaceholder(f.value) {
			placeholders = append(placeholders, f.path)
		}
	}
	return placeholders
}
