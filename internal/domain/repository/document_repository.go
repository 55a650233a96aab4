package repository

import (
	"context"
	"fmt"

	"practice-site/internal/domain/entity"
)

// DocumentRepository loads and stores the whole site document.
type DocumentRepository interface {
	Read(ctx context.Context) (*entity.SiteDocument, error)
	Write(ctx context.Context, doc *entity.SiteDocument) error
}

// DataReadError is returned when the stored document cannot be loaded or parsed.
type DataReadError struct {
	Source string
	Err    error
}

func (e *DataReadError) Error() string {
	return fmt.Sprintf("failed to read site data from %s: %v", e.Source, e.Err)
}

func (e *DataReadError) Unwrap() error {
	return e.Err
}

// DataWriteError is returned when the document cannot be persisted.
type DataWriteError struct {
	Source string
	Err    error
}

func (e *DataWriteError) Error() string {
	return fmt.Sprintf("failed to write site data to %s: %v", e.Source, e.Err)
}

func (e *DataWriteError) Unwrap() error {
	return e.Err
}
