package usecase

import (
	"context"

	"practice-site/internal/converter"
	"practice-site/internal/delivery/dto"
	"practice-site/internal/domain/entity"
	"practice-site/internal/service"

	"github.com/sirupsen/logrus"
)

type PracticeUsecase interface {
	GetPractice(ctx context.Context) (*dto.PracticeResponse, error)
	GetStatus(ctx context.Context) (*dto.PracticeStatusResponse, error)
	UpdatePractice(ctx context.Context, req *dto.UpdatePracticeRequest) (*dto.PracticeResponse, error)
	GetUI(ctx context.Context) (map[string]any, error)
	ReplaceUI(ctx context.Context, ui map[string]any) (map[string]any, error)
}

type practiceUsecase struct {
	data         *DataAccess
	log          *logrus.Logger
	auditService service.AuditService
}

func NewPracticeUsecase(data *DataAccess, log *logrus.Logger, auditService service.AuditService) PracticeUsecase {
	return &practiceUsecase{
		data:         data,
		log:          log,
		auditService: auditService,
	}
}

func (u *practiceUsecase) GetPractice(ctx context.Context) (*dto.PracticeResponse, error) {
	doc, err := u.data.readOrEmpty(ctx)
	if err != nil {
		u.log.Warnf("Failed to read practice: %+v", err)
		return nil, err
	}

	return converter.DocumentToPracticeResponse(doc), nil
}

func (u *practiceUsecase) GetStatus(ctx context.Context) (*dto.PracticeStatusResponse, error) {
	doc, err := u.data.read(ctx)
	if err != nil {
		u.log.Warnf("Failed to read practice status: %+v", err)
		return nil, err
	}

	placeholders := doc.Placeholders()
	return &dto.PracticeStatusResponse{
		Configured:   len(placeholders) == 0,
		Placeholders: placeholders,
		LastModified: doc.LastModified,
	}, nil
}

func (u *practiceUsecase) UpdatePractice(ctx context.Context, req *dto.UpdatePracticeRequest) (*dto.PracticeResponse, error) {
	var oldValue, newValue *dto.PracticeResponse
	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		oldValue = converter.DocumentToPracticeResponse(doc)
		converter.ApplyPracticeUpdate(doc, req)
		newValue = converter.DocumentToPracticeResponse(doc)
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to update practice: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, service.AuditActionPracticeUpdate, entity.SectionPractice, entity.SectionPractice, oldValue, newValue)

	return newValue, nil
}

func (u *practiceUsecase) GetUI(ctx context.Context) (map[string]any, error) {
	doc, err := u.data.readOrEmpty(ctx)
	if err != nil {
		u.log.Warnf("Failed to read ui text: %+v", err)
		return nil, err
	}

	return doc.UI, nil
}

func (u *practiceUsecase) ReplaceUI(ctx context.Context, ui map[string]any) (map[string]any, error) {
	if ui == nil {
		ui = map[string]any{}
	}

	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		doc.UI = ui
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to replace ui text: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, service.AuditActionUIUpdate, entity.SectionUI, entity.SectionUI, nil, ui)

	return ui, nil
}
