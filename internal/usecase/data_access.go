package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"practice-site/internal/domain/entity"
	"practice-site/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// errNoChange lets a mutation finish without rewriting the document.
var errNoChange = errors.New("no change")

// DataAccess performs every read-modify-write of the site document as one
// sequential unit. The mutex only serializes writers inside this process;
// separate processes sharing the same store still overwrite each other.
type DataAccess struct {
	mu   sync.Mutex
	repo repository.DocumentRepository
	log  *logrus.Logger
	now  func() time.Time
}

func NewDataAccess(repo repository.DocumentRepository, log *logrus.Logger) *DataAccess {
	return &DataAccess{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

func (a *DataAccess) read(ctx context.Context) (*entity.SiteDocument, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.repo.Read(ctx)
}

// readOrEmpty is used by public pages: an unreadable document degrades to an
// empty one instead of failing the request.
func (a *DataAccess) readOrEmpty(ctx context.Context) (*entity.SiteDocument, error) {
	doc, err := a.read(ctx)
	var readErr *repository.DataReadError
	if errors.As(err, &readErr) {
		a.log.Warnf("Serving empty site document: %+v", err)
		return entity.EmptyDocument(), nil
	}
	return doc, err
}

// mutate loads the document, applies fn and persists the result. When fn
// returns an error nothing is written.
func (a *DataAccess) mutate(ctx context.Context, fn func(doc *entity.SiteDocument) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	doc, err := a.repo.Read(ctx)
	if err != nil {
		return err
	}

	if err := fn(doc); err != nil {
		if errors.Is(err, errNoChange) {
			return nil
		}
		return err
	}

	doc.LastModified = a.timestamp()
	return a.repo.Write(ctx, doc)
}

func (a *DataAccess) timestamp() string {
	return a.now().UTC().Format(time.RFC3339Nano)
}

func (a *DataAccess) today() string {
	return a.now().Format(entity.PublishDateLayout)
}

// newID returns prefix+uuid, retrying in the unlikely case the id is taken.
func newID(prefix string, taken func(id string) bool) string {
	for {
		id := prefix + uuid.New().String()
		if !taken(id) {
			return id
		}
	}
}
