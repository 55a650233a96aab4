package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"practice-site/internal/domain/entity"
	"practice-site/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataAccess_MutateStampsLastModified(t *testing.T) {
	data := newTestDataAccess(t)
	data.now = fixedClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), time.Second)
	ctx := context.Background()

	err := data.mutate(ctx, func(doc *entity.SiteDocument) error {
		doc.Practice.Name = "Smile Dental"
		return nil
	})
	require.NoError(t, err)

	doc, err := data.read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Smile Dental", doc.Practice.Name)
	assert.Equal(t, "2024-03-01T10:00:00Z", doc.LastModified)
}

func TestDataAccess_MutateNoChangeSkipsWrite(t *testing.T) {
	data := newTestDataAccess(t)
	ctx := context.Background()

	before, err := data.read(ctx)
	require.NoError(t, err)

	err = data.mutate(ctx, func(doc *entity.SiteDocument) error {
		doc.Practice.Name = "not persisted"
		return errNoChange
	})
	require.NoError(t, err)

	after, err := data.read(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.LastModified, after.LastModified)
	assert.Equal(t, before.Practice.Name, after.Practice.Name)
}

func TestDataAccess_MutateErrorSkipsWrite(t *testing.T) {
	data := newTestDataAccess(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := data.mutate(ctx, func(doc *entity.SiteDocument) error {
		doc.Practice.Name = "not persisted"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	doc, err := data.read(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "not persisted", doc.Practice.Name)
}

func TestDataAccess_ReadOrEmptyDegradesOnCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	data := NewDataAccess(repository.NewFileDocumentRepository(path, testLogger()), testLogger())

	doc, err := data.readOrEmpty(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.EmptyDocument(), doc)

	_, err = data.read(context.Background())
	assert.Error(t, err)
}

func TestNewID_RetriesOnCollision(t *testing.T) {
	calls := 0
	id := newID("service-", func(id string) bool {
		calls++
		return calls < 3
	})

	assert.Equal(t, 3, calls)
	assert.Regexp(t, `^service-[0-9a-f-]{36}$`, id)
}
