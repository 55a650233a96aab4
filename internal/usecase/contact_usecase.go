package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"practice-site/internal/converter"
	"practice-site/internal/delivery/dto"
	"practice-site/internal/domain/entity"
	"practice-site/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrContactNotFound = errors.New("contact not found")
)

type ContactUsecase interface {
	Create(ctx context.Context, req *dto.CreateContactRequest) (*entity.Contact, error)
	List(ctx context.Context, query dto.ContactListQuery) ([]entity.Contact, Pagination, error)
	Get(ctx context.Context, id string) (*entity.Contact, error)
	Update(ctx context.Context, id string, req *dto.UpdateContactRequest) (*entity.Contact, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*dto.ContactStatsResponse, error)
}

type contactUsecase struct {
	data         *DataAccess
	log          *logrus.Logger
	auditService service.AuditService
}

func NewContactUsecase(data *DataAccess, log *logrus.Logger, auditService service.AuditService) ContactUsecase {
	return &contactUsecase{
		data:         data,
		log:          log,
		auditService: auditService,
	}
}

func (u *contactUsecase) Create(ctx context.Context, req *dto.CreateContactRequest) (*entity.Contact, error) {
	var created entity.Contact
	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		id := newID(entity.ContactIDPrefix, func(id string) bool { return findContact(doc, id) >= 0 })
		created = converter.CreateContactRequestToEntity(id, u.data.now().UTC(), req)
		doc.Contacts = append(doc.Contacts, created)
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to create contact: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"contact_id": created.ID,
		"priority":   created.Priority,
	}).Info("New appointment request received")

	return &created, nil
}

// List returns contacts newest first, filtered by status and priority.
func (u *contactUsecase) List(ctx context.Context, query dto.ContactListQuery) ([]entity.Contact, Pagination, error) {
	doc, err := u.data.read(ctx)
	if err != nil {
		u.log.Warnf("Failed to read contacts: %+v", err)
		return nil, Pagination{}, err
	}

	contacts := make([]entity.Contact, 0, len(doc.Contacts))
	for _, c := range doc.Contacts {
		if query.Status != "" && c.Status != query.Status {
			continue
		}
		if query.Priority != "" && c.Priority != query.Priority {
			continue
		}
		contacts = append(contacts, c)
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})

	page, pagination := paginate(contacts, query.Page, query.Limit)
	return page, pagination, nil
}

func (u *contactUsecase) Get(ctx context.Context, id string) (*entity.Contact, error) {
	doc, err := u.data.read(ctx)
	if err != nil {
		u.log.Warnf("Failed to read contacts: %+v", err)
		return nil, err
	}

	i := findContact(doc, id)
	if i < 0 {
		return nil, ErrContactNotFound
	}

	return &doc.Contacts[i], nil
}

// Update merges the non-null fields of req into the contact and stamps updatedAt.
func (u *contactUsecase) Update(ctx context.Context, id string, req *dto.UpdateContactRequest) (*entity.Contact, error) {
	var oldValue, updated entity.Contact
	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		i := findContact(doc, id)
		if i < 0 {
			return ErrContactNotFound
		}
		oldValue = doc.Contacts[i]
		converter.ApplyContactUpdate(&doc.Contacts[i], req)
		updatedAt := u.data.now().UTC()
		doc.Contacts[i].UpdatedAt = &updatedAt
		updated = doc.Contacts[i]
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrContactNotFound) {
			u.log.Warnf("Failed to update contact: %+v", err)
		}
		return nil, err
	}

	u.auditService.LogUpdate(ctx, service.AuditActionContactUpdate, "contact", id, oldValue, updated)

	return &updated, nil
}

// Delete removes the contact. Deleting an unknown id succeeds without writing.
func (u *contactUsecase) Delete(ctx context.Context, id string) error {
	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		i := findContact(doc, id)
		if i < 0 {
			return errNoChange
		}
		doc.Contacts = append(doc.Contacts[:i], doc.Contacts[i+1:]...)
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to delete contact: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, service.AuditActionContactDelete, "contact", id)

	return nil
}

// Stats counts contacts per status and priority plus those received since
// local midnight and during the last seven days.
func (u *contactUsecase) Stats(ctx context.Context) (*dto.ContactStatsResponse, error) {
	doc, err := u.data.read(ctx)
	if err != nil {
		u.log.Warnf("Failed to read contacts: %+v", err)
		return nil, err
	}

	stats := &dto.ContactStatsResponse{
		Total:      len(doc.Contacts),
		ByStatus:   make(map[string]int, len(entity.ContactStatuses)),
		ByPriority: make(map[string]int, len(entity.ContactPriorities)),
	}
	for _, status := range entity.ContactStatuses {
		stats.ByStatus[status] = 0
	}
	for _, priority := range entity.ContactPriorities {
		stats.ByPriority[priority] = 0
	}

	now := u.data.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)

	for _, c := range doc.Contacts {
		stats.ByStatus[c.Status]++
		stats.ByPriority[c.Priority]++
		if !c.CreatedAt.Before(startOfDay) {
			stats.Today++
		}
		if !c.CreatedAt.Before(weekAgo) {
			stats.ThisWeek++
		}
	}

	return stats, nil
}

func findContact(doc *entity.SiteDocument, id string) int {
	for i := range doc.Contacts {
		if doc.Contacts[i].ID == id {
			return i
		}
	}
	return -1
}
