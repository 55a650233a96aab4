package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"practice-site/internal/domain/entity"
	domainRepo "practice-site/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const postgresSource = "postgres:site_documents"

type postgresDocumentRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

// NewPostgresDocumentRepository keeps the site document as a single JSONB row.
func NewPostgresDocumentRepository(db *gorm.DB, log *logrus.Logger) (domainRepo.DocumentRepository, error) {
	if err := db.AutoMigrate(&entity.SiteDocumentRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate site_documents: %w", err)
	}
	return &postgresDocumentRepository{db: db, log: log}, nil
}

func (r *postgresDocumentRepository) Read(ctx context.Context) (*entity.SiteDocument, error) {
	var record entity.SiteDocumentRecord
	err := r.db.WithContext(ctx).Where("id = ?", entity.SiteDocumentRowID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		doc := entity.DefaultDocument()
		doc.LastModified = time.Now().UTC().Format(time.RFC3339Nano)
		if err := r.Write(ctx, doc); err != nil {
			return nil, &domainRepo.DataReadError{Source: postgresSource, Err: err}
		}
		r.log.Info("Created default site document in postgres")
		return doc, nil
	}
	if err != nil {
		return nil, &domainRepo.DataReadError{Source: postgresSource, Err: err}
	}

	var doc entity.SiteDocument
	if err := json.Unmarshal([]byte(record.Content), &doc); err != nil {
		return nil, &domainRepo.DataReadError{Source: postgresSource, Err: err}
	}
	doc.Normalize()

	return &doc, nil
}

func (r *postgresDocumentRepository) Write(ctx context.Context, doc *entity.SiteDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return &domainRepo.DataWriteError{Source: postgresSource, Err: err}
	}

	record := &entity.SiteDocumentRecord{
		ID:      entity.SiteDocumentRowID,
		Content: string(raw),
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(record).Error
	if err != nil {
		return &domainRepo.DataWriteError{Source: postgresSource, Err: err}
	}

	return nil
}
