package converter

import (
	"time"

	"practice-site/internal/delivery/dto"
	"practice-site/internal/domain/entity"
)

func CreateContactRequestToEntity(id string, createdAt time.Time, req *dto.CreateContactRequest) entity.Contact {
	priority := req.Priority
	if priority == "" {
		priority = entity.ContactPriorityNormal
	}
	source := req.Source
	if source == "" {
		source = entity.ContactSourceWebsite
	}

	return entity.Contact{
		ID:            id,
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Service:       req.Service,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
		Priority:      priority,
		Status:        entity.ContactStatusNew,
		Source:        source,
		CreatedAt:     createdAt,
	}
}

func ApplyContactUpdate(contact *entity.Contact, req *dto.UpdateContactRequest) {
	apply(&contact.FullName, req.FullName)
	apply(&contact.Email, req.Email)
	apply(&contact.Phone, req.Phone)
	apply(&contact.Service, req.Service)
	apply(&contact.PreferredDate, req.PreferredDate)
	apply(&contact.PreferredTime, req.PreferredTime)
	apply(&contact.Message, req.Message)
	apply(&contact.Priority, req.Priority)
	apply(&contact.Status, req.Status)
	apply(&contact.Notes, req.Notes)
	apply(&contact.AssignedTo, req.AssignedTo)
	apply(&contact.FollowUpDate, req.FollowUpDate)
}
