package entity

import "time"

const ContactIDPrefix = "contact-"

// Contact submission statuses
const (
	ContactStatusNew       = "new"
	ContactStatusContacted = "contacted"
	ContactStatusScheduled = "scheduled"
	ContactStatusCompleted = "completed"
)

// Contact submission priorities
const (
	ContactPriorityLow    = "low"
	ContactPriorityNormal = "normal"
	ContactPriorityHigh   = "high"
	ContactPriorityUrgent = "urgent"
)

const ContactSourceWebsite = "website"

var ContactStatuses = []string{ContactStatusNew, ContactStatusContacted, ContactStatusScheduled, ContactStatusCompleted}

var ContactPriorities = []string{ContactPriorityLow, ContactPriorityNormal, ContactPriorityHigh, ContactPriorityUrgent}

// Contact is an appointment request submitted through the public contact form.
type Contact struct {
	ID            string     `json:"id"`
	FullName      string     `json:"fullName"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Service       string     `json:"service"`
	PreferredDate string     `json:"preferredDate"`
	PreferredTime string     `json:"preferredTime"`
	Message       string     `json:"message"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	Source        string     `json:"source"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
	Notes         string     `json:"notes"`
	AssignedTo    string     `json:"assignedTo"`
	FollowUpDate  string     `json:"followUpDate"`
}
