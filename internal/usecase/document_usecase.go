package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"practice-site/internal/domain/entity"
	"practice-site/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrDocumentConflict = errors.New("site data was modified by another session, reload and try again")
	ErrUnknownSection   = errors.New("unknown section")
	ErrInvalidSection   = errors.New("invalid section content")
)

// DocumentUsecase backs the admin editor, which loads and saves the whole
// site document at once.
type DocumentUsecase interface {
	GetDocument(ctx context.Context) (*entity.SiteDocument, error)
	SaveDocument(ctx context.Context, draft *entity.SiteDocument) (*entity.SiteDocument, error)
	SaveSection(ctx context.Context, name string, raw json.RawMessage) (*entity.SiteDocument, error)
}

type documentUsecase struct {
	data         *DataAccess
	log          *logrus.Logger
	auditService service.AuditService
}

func NewDocumentUsecase(data *DataAccess, log *logrus.Logger, auditService service.AuditService) DocumentUsecase {
	return &documentUsecase{
		data:         data,
		log:          log,
		auditService: auditService,
	}
}

func (u *documentUsecase) GetDocument(ctx context.Context) (*entity.SiteDocument, error) {
	doc, err := u.data.read(ctx)
	if err != nil {
		u.log.Warnf("Failed to read site document: %+v", err)
		return nil, err
	}

	return doc, nil
}

// SaveDocument replaces the stored document with draft. A non-empty
// draft.LastModified must match the stored value.
func (u *documentUsecase) SaveDocument(ctx context.Context, draft *entity.SiteDocument) (*entity.SiteDocument, error) {
	var saved *entity.SiteDocument
	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		if draft.LastModified != "" && draft.LastModified != doc.LastModified {
			return ErrDocumentConflict
		}
		*doc = *draft
		doc.Normalize()
		saved = doc
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrDocumentConflict) {
			u.log.Warnf("Failed to save site document: %+v", err)
		}
		return nil, err
	}

	u.auditService.LogUpdate(ctx, service.AuditActionDocumentSave, "document", "", nil, saved.LastModified)

	return saved, nil
}

// SaveSection replaces one top-level section of the document with raw.
func (u *documentUsecase) SaveSection(ctx context.Context, name string, raw json.RawMessage) (*entity.SiteDocument, error) {
	if !slices.Contains(entity.Sections, name) {
		return nil, ErrUnknownSection
	}

	var saved *entity.SiteDocument
	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		updated, err := replaceSection(doc, name, raw)
		if err != nil {
			return err
		}
		updated.Normalize()
		*doc = *updated
		saved = doc
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidSection) {
			u.log.Warnf("Failed to save section %s: %+v", name, err)
		}
		return nil, err
	}

	u.auditService.LogUpdate(ctx, service.AuditActionDocumentSave, "document", name, nil, saved.LastModified)

	return saved, nil
}

// replaceSection swaps the named key in the document's JSON form and decodes
// the result, so each section keeps its typed shape.
func replaceSection(doc *entity.SiteDocument, name string, raw json.RawMessage) (*entity.SiteDocument, error) {
	current, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(current, &fields); err != nil {
		return nil, err
	}
	fields[name] = raw

	merged, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSection, err)
	}

	var updated entity.SiteDocument
	if err := json.Unmarshal(merged, &updated); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSection, err)
	}

	return &updated, nil
}
