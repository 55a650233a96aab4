package usecase

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"practice-site/internal/repository"
	"practice-site/internal/service"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestDataAccess(t *testing.T) *DataAccess {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.json")
	return NewDataAccess(repository.NewFileDocumentRepository(path, testLogger()), testLogger())
}

func newTestAudit() service.AuditService {
	return service.NewAuditService(testLogger())
}

// fixedClock returns a clock that advances by step on every call.
func fixedClock(start time.Time, step time.Duration) func() time.Time {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(step)
		return now
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
