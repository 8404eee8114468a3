package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/google/uuid"
)

type CatalogRepository interface {
	ListActive(ctx context.Context) ([]domain.CatalogItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CatalogItem, error)
	// Archive выполняется внутри транзакции из контекста.
	Archive(ctx context.Context, id uuid.UUID) (*domain.CatalogItem, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
	MarkAsPending(ctx context.Context, id int64) error
}

type CacheRepository interface {
	// GetSnapshot возвращает ok=false при промахе.
	GetSnapshot(ctx context.Context) (items []domain.CatalogItem, ok bool, err error)
	SetSnapshot(ctx context.Context, items []domain.CatalogItem) error
	DeleteSnapshot(ctx context.Context) error
	AcquireArchiveLock(ctx context.Context, id uuid.UUID) (bool, error)
	ReleaseArchiveLock(ctx context.Context, id uuid.UUID) error
}

type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
