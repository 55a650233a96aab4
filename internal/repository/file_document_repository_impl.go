package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"practice-site/internal/domain/entity"
	domainRepo "practice-site/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type fileDocumentRepository struct {
	path string
	log  *logrus.Logger
}

func NewFileDocumentRepository(path string, log *logrus.Logger) domainRepo.DocumentRepository {
	return &fileDocumentRepository{path: path, log: log}
}

func (r *fileDocumentRepository) Read(ctx context.Context) (*entity.SiteDocument, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		doc := entity.DefaultDocument()
		doc.LastModified = time.Now().UTC().Format(time.RFC3339Nano)
		if err := r.Write(ctx, doc); err != nil {
			return nil, &domainRepo.DataReadError{Source: r.path, Err: err}
		}
		r.log.Infof("Created default site document at %s", r.path)
		return doc, nil
	}
	if err != nil {
		return nil, &domainRepo.DataReadError{Source: r.path, Err: err}
	}

	var doc entity.SiteDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &domainRepo.DataReadError{Source: r.path, Err: err}
	}
	doc.Normalize()

	return &doc, nil
}

// Write replaces the document through a temp file and rename so readers never
// observe a partially written file.
func (r *fileDocumentRepository) Write(ctx context.Context, doc *entity.SiteDocument) error {
	if err := ctx.Err(); err != nil {
		return &domainRepo.DataWriteError{Source: r.path, Err: err}
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &domainRepo.DataWriteError{Source: r.path, Err: err}
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domainRepo.DataWriteError{Source: r.path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".site-*.json.tmp")
	if err != nil {
		return &domainRepo.DataWriteError{Source: r.path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return &domainRepo.DataWriteError{Source: r.path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return &domainRepo.DataWriteError{Source: r.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &domainRepo.DataWriteError{Source: r.path, Err: err}
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		return &domainRepo.DataWriteError{Source: r.path, Err: err}
	}

	return nil
}
