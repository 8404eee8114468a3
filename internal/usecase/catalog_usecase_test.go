package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/google/uuid"
)

type fakeCatalogRepo struct {
	items      []domain.CatalogItem
	listCalls  int
	archiveErr error
	archived   []uuid.UUID
}

func (f *fakeCatalogRepo) ListActive(ctx context.Context) ([]domain.CatalogItem, error) {
	f.listCalls++
	return f.items, nil
}

func (f *fakeCatalogRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CatalogItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, e.ErrItemNotFound
}

func (f *fakeCatalogRepo) Archive(ctx context.Context, id uuid.UUID) (*domain.CatalogItem, error) {
	if f.archiveErr != nil {
		return nil, f.archiveErr
	}
	item, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.IsActive = false
	f.archived = append(f.archived, id)
	return item, nil
}

type fakeOutbox struct {
	created []*OutboxEvent
}

func (f *fakeOutbox) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	f.created = append(f.created, event)
	return event, nil
}

func (f *fakeOutbox) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkAsProcessed(ctx context.Context, id int64) error {
	return nil
}

func (f *fakeOutbox) MarkAsPending(ctx context.Context, id int64) error {
	return nil
}

type fakeCache struct {
	snapshot  []domain.CatalogItem
	hasSnap   bool
	getErr    error
	lockErr   error
	locks     map[uuid.UUID]bool
	released  []uuid.UUID
	deletions int
}

func newFakeCache() *fakeCache {
	return &fakeCache{locks: make(map[uuid.UUID]bool)}
}

func (f *fakeCache) GetSnapshot(ctx context.Context) ([]domain.CatalogItem, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	return f.snapshot, f.hasSnap, nil
}

func (f *fakeCache) SetSnapshot(ctx context.Context, items []domain.CatalogItem) error {
	f.snapshot = items
	f.hasSnap = true
	return nil
}

func (f *fakeCache) DeleteSnapshot(ctx context.Context) error {
	f.deletions++
	f.snapshot = nil
	f.hasSnap = false
	return nil
}

func (f *fakeCache) AcquireArchiveLock(ctx context.Context, id uuid.UUID) (bool, error) {
	if f.lockErr != nil {
		return false, f.lockErr
	}
	if f.locks[id] {
		return false, nil
	}
	f.locks[id] = true
	return true, nil
}

func (f *fakeCache) ReleaseArchiveLock(ctx context.Context, id uuid.UUID) error {
	delete(f.locks, id)
	f.released = append(f.released, id)
	return nil
}

type fakeTx struct {
	committed  int
	rolledBack int
}

func (f *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		f.rolledBack++
		return err
	}
	f.committed++
	return nil
}

type fakeEncoder struct{}

func (fakeEncoder) EncodeArchived(event *ArchivedEvent) ([]byte, error) {
	return []byte(event.ServiceID.String()), nil
}

type fixture struct {
	repo   *fakeCatalogRepo
	outbox *fakeOutbox
	cache  *fakeCache
	tx     *fakeTx
	uc     *CatalogUseCase
}

func newFixture(items ...domain.CatalogItem) *fixture {
	f := &fixture{
		repo:   &fakeCatalogRepo{items: items},
		outbox: &fakeOutbox{},
		cache:  newFakeCache(),
		tx:     &fakeTx{},
	}
	f.uc = NewCatalogUC(f.repo, f.outbox, f.cache, f.tx, fakeEncoder{}, logger.NewNop())
	f.uc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return f
}

func TestList_CacheThrough(t *testing.T) {
	item := *domain.NewCatalogItem(uuid.New(), "Haircut", "service", false)
	f := newFixture(item)

	for i := 0; i < 2; i++ {
		items, err := f.uc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
	}

	if f.repo.listCalls != 1 {
		t.Fatalf("expected one database read, got %d", f.repo.listCalls)
	}
}

func TestList_CacheErrorFallsBackToDatabase(t *testing.T) {
	f := newFixture(*domain.NewCatalogItem(uuid.New(), "Haircut", "service", false))
	f.cache.getErr = fmt.Errorf("redis down")

	items, err := f.uc.List(context.Background())
	if err != nil || len(items) != 1 {
		t.Fatalf("expected database fallback, got %v %v", items, err)
	}
}

func TestArchive_WritesOutboxAndInvalidatesCache(t *testing.T) {
	item := *domain.NewCatalogItem(uuid.New(), "Spa Day", "", true)
	f := newFixture(item)
	_, _ = f.uc.List(context.Background())

	if err := f.uc.Archive(context.Background(), item.ID, domain.RoleOwner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.repo.archived) != 1 || f.repo.archived[0] != item.ID {
		t.Fatalf("expected archive of %s, got %v", item.ID, f.repo.archived)
	}
	if f.tx.committed != 1 {
		t.Fatalf("expected one commit, got %d", f.tx.committed)
	}
	if len(f.outbox.created) != 1 {
		t.Fatalf("expected one outbox event, got %d", len(f.outbox.created))
	}
	ev := f.outbox.created[0]
	if ev.EventType != ServiceArchived || ev.AggregateID != item.ID || ev.Status != Pending {
		t.Fatalf("unexpected outbox event %+v", ev)
	}
	if f.cache.deletions != 1 || f.cache.hasSnap {
		t.Fatalf("expected snapshot invalidation")
	}
	if len(f.cache.released) != 1 || f.cache.locks[item.ID] {
		t.Fatalf("expected lock release")
	}
}

func TestArchive_Forbidden(t *testing.T) {
	item := *domain.NewCatalogItem(uuid.New(), "Haircut", "service", false)
	f := newFixture(item)

	err := f.uc.Archive(context.Background(), item.ID, domain.RoleAdmin)
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(f.repo.archived) != 0 || f.tx.committed != 0 {
		t.Fatalf("no database work without capability")
	}
}

func TestArchive_Pending(t *testing.T) {
	item := *domain.NewCatalogItem(uuid.New(), "Haircut", "service", false)
	f := newFixture(item)
	f.cache.locks[item.ID] = true

	err := f.uc.Archive(context.Background(), item.ID, domain.RoleOwner)
	if !errors.Is(err, e.ErrArchivePending) {
		t.Fatalf("expected ErrArchivePending, got %v", err)
	}
	if len(f.repo.archived) != 0 || len(f.cache.released) != 0 {
		t.Fatalf("foreign lock must not be touched")
	}
}

func TestArchive_LockUnavailableStillArchives(t *testing.T) {
	item := *domain.NewCatalogItem(uuid.New(), "Haircut", "service", false)
	f := newFixture(item)
	f.cache.lockErr = fmt.Errorf("redis down")

	if err := f.uc.Archive(context.Background(), item.ID, domain.RoleOwner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.cache.released) != 0 {
		t.Fatalf("lock was never taken, nothing to release")
	}
}

func TestArchive_NotFoundRollsBack(t *testing.T) {
	f := newFixture()

	err := f.uc.Archive(context.Background(), uuid.New(), domain.RoleOwner)
	if !errors.Is(err, e.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if msg, ok := e.PublicMessage(err); !ok || msg != "service not found" {
		t.Fatalf("expected public message, got %q", msg)
	}
	if f.tx.rolledBack != 1 || len(f.outbox.created) != 0 || f.cache.deletions != 0 {
		t.Fatalf("expected rollback without side effects")
	}
	if len(f.cache.released) != 1 {
		t.Fatalf("lock must be released on failure")
	}
}

func TestGet(t *testing.T) {
	item := *domain.NewCatalogItem(uuid.New(), "Haircut", "service", false)
	f := newFixture(item)

	got, err := f.uc.Get(context.Background(), item.ID)
	if err != nil || got.Name != "Haircut" {
		t.Fatalf("unexpected result %v %v", got, err)
	}

	if _, err := f.uc.Get(context.Background(), uuid.New()); !errors.Is(err, e.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
