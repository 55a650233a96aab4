package usecase

import (
	"context"
	"errors"

	"practice-site/internal/converter"
	"practice-site/internal/delivery/dto"
	"practice-site/internal/domain/entity"
	"practice-site/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrServiceNotFound = errors.New("service not found")
)

type ServiceUsecase interface {
	List(ctx context.Context, query dto.ServiceListQuery) ([]entity.Service, error)
	Get(ctx context.Context, id string) (*entity.Service, error)
	Create(ctx context.Context, req *dto.CreateServiceRequest) (*entity.Service, error)
	Update(ctx context.Context, id string, req *dto.UpdateServiceRequest) (*entity.Service, error)
	Delete(ctx context.Context, id string) error
}

type serviceUsecase struct {
	data         *DataAccess
	log          *logrus.Logger
	auditService service.AuditService
}

func NewServiceUsecase(data *DataAccess, log *logrus.Logger, auditService service.AuditService) ServiceUsecase {
	return &serviceUsecase{
		data:         data,
		log:          log,
		auditService: auditService,
	}
}

func (u *serviceUsecase) List(ctx context.Context, query dto.ServiceListQuery) ([]entity.Service, error) {
	doc, err := u.data.readOrEmpty(ctx)
	if err != nil {
		u.log.Warnf("Failed to read services: %+v", err)
		return nil, err
	}

	services := make([]entity.Service, 0, len(doc.Services))
	for _, s := range doc.Services {
		if query.ActiveOnly && !s.IsActive {
			continue
		}
		services = append(services, s)
	}

	return services, nil
}

func (u *serviceUsecase) Get(ctx context.Context, id string) (*entity.Service, error) {
	doc, err := u.data.read(ctx)
	if err != nil {
		u.log.Warnf("Failed to read services: %+v", err)
		return nil, err
	}

	i := findService(doc, id)
	if i < 0 {
		return nil, ErrServiceNotFound
	}

	return &doc.Services[i], nil
}

func (u *serviceUsecase) Create(ctx context.Context, req *dto.CreateServiceRequest) (*entity.Service, error) {
	var created entity.Service
	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		id := newID(entity.ServiceIDPrefix, func(id string) bool { return findService(doc, id) >= 0 })
		created = converter.CreateServiceRequestToEntity(id, req)
		doc.Services = append(doc.Services, created)
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, service.AuditActionServiceCreate, "service", created.ID, created)

	return &created, nil
}

func (u *serviceUsecase) Update(ctx context.Context, id string, req *dto.UpdateServiceRequest) (*entity.Service, error) {
	var oldValue, updated entity.Service
	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		i := findService(doc, id)
		if i < 0 {
			return ErrServiceNotFound
		}
		oldValue = doc.Services[i]
		converter.ApplyServiceUpdate(&doc.Services[i], req)
		updated = doc.Services[i]
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrServiceNotFound) {
			u.log.Warnf("Failed to update service: %+v", err)
		}
		return nil, err
	}

	u.auditService.LogUpdate(ctx, service.AuditActionServiceUpdate, "service", id, oldValue, updated)

	return &updated, nil
}

// Delete removes the service. Deleting an unknown id succeeds without writing.
func (u *serviceUsecase) Delete(ctx context.Context, id string) error {
	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		i := findService(doc, id)
		if i < 0 {
			return errNoChange
		}
		doc.Services = append(doc.Services[:i], doc.Services[i+1:]...)
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to delete service: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, service.AuditActionServiceDelete, "service", id)

	return nil
}

func findService(doc *entity.SiteDocument, id string) int {
	for i := range doc.Services {
		if doc.Services[i].ID == id {
			return i
		}
	}
	return -1
}
