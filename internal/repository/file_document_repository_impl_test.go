package repository

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"practice-site/internal/domain/entity"
	domainRepo "practice-site/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestFileDocumentRepository_ReadMissingFileCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "site.json")
	repo := NewFileDocumentRepository(path, testLogger())

	doc, err := repo.Read(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "[Enter Your Practice Name]", doc.Practice.Name)
	assert.NotEmpty(t, doc.Placeholders())
	assert.NotEmpty(t, doc.LastModified)
	assert.Empty(t, doc.Services)
	assert.NotNil(t, doc.Services)

	_, err = os.Stat(path)
	assert.NoError(t, err, "default document should be persisted")
}

func TestFileDocumentRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.json")
	repo := NewFileDocumentRepository(path, testLogger())

	doc := entity.DefaultDocument()
	doc.Practice.Name = "Bright Smile Dental"
	doc.Services = append(doc.Services, entity.Service{
		ID:       "service-1",
		Title:    "Cleaning",
		Icon:     "tooth",
		Features: []string{"Polish", "X-ray"},
		IsActive: true,
	})
	doc.BlogPosts = append(doc.BlogPosts, entity.BlogPost{
		ID:     "post-1",
		Title:  "Hello",
		Slug:   "hello",
		Author: entity.Author{Name: "Dr. Lee"},
		Tags:   []string{"news"},
		Views:  4,
	})
	doc.Gallery.BeforeAfterCases = append(doc.Gallery.BeforeAfterCases, entity.BeforeAfterCase{
		Title: "Whitening", BeforeImage: "/uploads/a.jpg", AfterImage: "/uploads/b.jpg",
	})
	doc.Contacts = append(doc.Contacts, entity.Contact{
		ID:        "contact-1",
		FullName:  "Jane Doe",
		Status:    entity.ContactStatusNew,
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	doc.UI = map[string]any{"hero": map[string]any{"cta": "Book now"}}
	doc.LastModified = "2024-03-01T10:00:00Z"

	require.NoError(t, repo.Write(context.Background(), doc))

	got, err := repo.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestFileDocumentRepository_ReadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileDocumentRepository(path, testLogger()).Read(context.Background())

	var readErr *domainRepo.DataReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, path, readErr.Source)
}

func TestFileDocumentRepository_WriteFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	repo := NewFileDocumentRepository(filepath.Join(blocker, "site.json"), testLogger())
	err := repo.Write(context.Background(), entity.DefaultDocument())

	var writeErr *domainRepo.DataWriteError
	assert.True(t, errors.As(err, &writeErr))
}

func TestFileDocumentRepository_WriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileDocumentRepository(filepath.Join(dir, "site.json"), testLogger())

	require.NoError(t, repo.Write(context.Background(), entity.DefaultDocument()))
	require.NoError(t, repo.Write(context.Background(), entity.DefaultDocument()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "site.json", entries[0].Name())
}
