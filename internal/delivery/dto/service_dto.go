package dto

type CreateServiceRequest struct {
	Title       string   `json:"title" validate:"required,min=2"`
	Description string   `json:"description" validate:"required"`
	Icon        string   `json:"icon" validate:"omitempty,oneof=stethoscope heart tooth eye brain bone baby pill syringe activity shield smile"`
	Price       string   `json:"price"`
	Duration    string   `json:"duration"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
	IsActive    *bool    `json:"isActive"`
}

type UpdateServiceRequest struct {
	Title       *string   `json:"title" validate:"omitempty,min=2"`
	Description *string   `json:"description" validate:"omitempty,min=1"`
	Icon        *string   `json:"icon" validate:"omitempty,oneof=stethoscope heart tooth eye brain bone baby pill syringe activity shield smile"`
	Price       *string   `json:"price"`
	Duration    *string   `json:"duration"`
	Image       *string   `json:"image"`
	Features    *[]string `json:"features"`
	IsActive    *bool     `json:"isActive"`
}

type ServiceListQuery struct {
	ActiveOnly bool
}
