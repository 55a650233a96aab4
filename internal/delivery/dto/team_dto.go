package dto

type CreateTeamMemberRequest struct {
	Name         string   `json:"name" validate:"required,min=2"`
	Title        string   `json:"title" validate:"required"`
	Specialty    string   `json:"specialty"`
	Credentials  []string `json:"credentials"`
	Bio          string   `json:"bio"`
	Specialties  []string `json:"specialties"`
	Languages    []string `json:"languages"`
	Availability string   `json:"availability"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Experience   string   `json:"experience"`
	Image        string   `json:"image"`
	IsActive     *bool    `json:"isActive"`
}

type UpdateTeamMemberRequest struct {
	Name         *string   `json:"name" validate:"omitempty,min=2"`
	Title        *string   `json:"title" validate:"omitempty,min=1"`
	Specialty    *string   `json:"specialty"`
	Credentials  *[]string `json:"credentials"`
	Bio          *string   `json:"bio"`
	Specialties  *[]string `json:"specialties"`
	Languages    *[]string `json:"languages"`
	Availability *string   `json:"availability"`
	Phone        *string   `json:"phone"`
	Email        *string   `json:"email" validate:"omitempty,email"`
	Experience   *string   `json:"experience"`
	Image        *string   `json:"image"`
	IsActive     *bool     `json:"isActive"`
}

type TeamListQuery struct {
	ActiveOnly bool
}
