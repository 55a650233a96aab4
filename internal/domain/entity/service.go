package entity

const ServiceIDPrefix = "service-"

// ServiceIcons lists the icon names the public site knows how to render.
var ServiceIcons = []string{
	"stethoscope", "heart", "tooth", "eye", "brain", "bone",
	"baby", "pill", "syringe", "activity", "shield", "smile",
}

type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Price       string   `json:"price"`
	Duration    string   `json:"duration"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
	IsActive    bool     `json:"isActive"`
}
