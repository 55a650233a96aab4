package entity

const TeamMemberIDPrefix = "doctor-"

type TeamMember struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Specialty    string   `json:"specialty"`
	Credentials  []string `json:"credentials"`
	Bio          string   `json:"bio"`
	Specialties  []string `json:"specialties"`
	Languages    []string `json:"languages"`
	Availability string   `json:"availability"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Experience   string   `json:"experience"`
	Image        string   `json:"image"`
	IsActive     bool     `json:"isActive"`
}
