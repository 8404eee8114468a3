package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/google/uuid"
)

// CatalogUseCase реализует чтение каталога услуг и их архивацию.
type CatalogUseCase struct {
	catalogRepo CatalogRepository
	outboxRepo  OutboxRepository
	cacheRepo   CacheRepository
	tx          Transactor
	encoder     EventEncoder
	logger      logger.Logger
	now         func() time.Time
}

func NewCatalogUC(
	catalogRepo CatalogRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	tx Transactor,
	encoder EventEncoder,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		outboxRepo:  outboxRepo,
		cacheRepo:   cacheRepo,
		tx:          tx,
		encoder:     encoder,
		logger:      logger,
		now:         time.Now,
	}
}

// List возвращает активные позиции каталога. Сначала смотрит в кэш, при
// промахе или ошибке Redis читает из PostgreSQL и обновляет кэш.
func (c *CatalogUseCase) List(ctx context.Context) ([]domain.CatalogItem, error) {
	const op = "CatalogUseCase.List"

	items, ok, err := c.cacheRepo.GetSnapshot(ctx)
	if err != nil {
		c.logger.Warnf("Failed to read catalog snapshot from cache: %v", e.Wrap(op, err))
	} else if ok {
		return items, nil
	}

	items, err = c.catalogRepo.ListActive(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := c.cacheRepo.SetSnapshot(ctx, items); err != nil {
		c.logger.Warnf("Failed to cache catalog snapshot: %v", e.Wrap(op, err))
	}

	return items, nil
}

// Get возвращает позицию по id, в том числе архивную.
func (c *CatalogUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.CatalogItem, error) {
	const op = "CatalogUseCase.Get"

	item, err := c.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return item, nil
}

// Archive снимает позицию с продажи (is_active=false) и в той же транзакции
// пишет событие service.archived в outbox. Одновременная архивация одной и
// той же позиции отсекается блокировкой в Redis.
func (c *CatalogUseCase) Archive(ctx context.Context, id uuid.UUID, actor domain.Role) error {
	const op = "CatalogUseCase.Archive"

	if !domain.CanManageCatalog(actor) {
		return e.Wrap(op, e.ErrForbidden)
	}

	locked, err := c.cacheRepo.AcquireArchiveLock(ctx, id)
	if err != nil {
		// Redis недоступен: продолжаем без блокировки, UPDATE идемпотентен.
		c.logger.Warnf("Failed to acquire archive lock for %s: %v", id, e.Wrap(op, err))
	} else if !locked {
		return e.Wrap(op, e.ErrArchivePending)
	}
	if locked {
		defer func() {
			if err := c.cacheRepo.ReleaseArchiveLock(context.WithoutCancel(ctx), id); err != nil {
				c.logger.Warnf("Failed to release archive lock for %s: %v", id, e.Wrap(op, err))
			}
		}()
	}

	err = c.tx.WithinTx(ctx, func(ctx context.Context) error {
		item, err := c.catalogRepo.Archive(ctx, id)
		if err != nil {
			return err
		}

		event := NewArchivedEvent(item, actor, c.now())
		payload, err := c.encoder.EncodeArchived(event)
		if err != nil {
			return err
		}

		_, err = c.outboxRepo.Create(ctx, NewOutboxEvent(event.EventID, ServiceArchived, item.ID, payload))
		return err
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := c.cacheRepo.DeleteSnapshot(ctx); err != nil {
		c.logger.Warnf("Failed to invalidate catalog snapshot: %v", e.Wrap(op, err))
	}

	c.logger.Infof("Service archived: id=%s actor=%s", id, actor)
	return nil
}
