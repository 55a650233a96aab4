package dto

type CreateContactRequest struct {
	FullName      string `json:"fullName" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=6,max=30"`
	Service       string `json:"service"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Message       string `json:"message" validate:"max=5000"`
	Priority      string `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Source        string `json:"source"`
}

// UpdateContactRequest only applies fields that were sent with a non-null value.
type UpdateContactRequest struct {
	FullName      *string `json:"fullName" validate:"omitempty,min=2"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Service       *string `json:"service"`
	PreferredDate *string `json:"preferredDate"`
	PreferredTime *string `json:"preferredTime"`
	Message       *string `json:"message"`
	Priority      *string `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Status        *string `json:"status" validate:"omitempty,oneof=new contacted scheduled completed"`
	Notes         *string `json:"notes"`
	AssignedTo    *string `json:"assignedTo"`
	FollowUpDate  *string `json:"followUpDate"`
}

type ContactListQuery struct {
	Status   string
	Priority string
	Page     int
	Limit    int
}

type ContactStatsResponse struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	ByPriority map[string]int `json:"byPriority"`
	Today      int            `json:"today"`
	ThisWeek   int            `json:"thisWeek"`
}
