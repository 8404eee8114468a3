package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DRSN-tech/catalog-service/internal/cfg"
	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/repository/redis/converter"
	"github.com/DRSN-tech/catalog-service/pkg/clients"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const (
	snapshotKey       = "catalog:snapshot"
	archiveLockPrefix = "catalog:archive-lock:"
)

type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.CatalogItemConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.CatalogItemConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetSnapshot возвращает закэшированный список. Битый кэш удаляется и
// считается промахом.
func (c *CacheRepo) GetSnapshot(ctx context.Context) ([]domain.CatalogItem, bool, error) {
	data, err := c.client.Client.Get(ctx, snapshotKey).Bytes()
	if errors.Is(err, r.Nil) {
		return nil, false, nil // cache miss
	}
	if err != nil {
		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	items, err := c.unmarshalSnapshot(data)
	if err != nil {
		c.logger.Warnf("Redis unmarshal failed, dropping snapshot: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(ctx, snapshotKey).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, false, nil
	}

	return items, true, nil
}

// SetSnapshot кэширует список на SnapshotTTL.
func (c *CacheRepo) SetSnapshot(ctx context.Context, items []domain.CatalogItem) error {
	data, err := json.Marshal(converter.SnapshotRedisModel{
		Items:    c.conv.ToArrRedisModel(items),
		CachedAt: time.Now().UTC(),
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, snapshotKey, data, c.cfg.SnapshotTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CacheRepo) DeleteSnapshot(ctx context.Context) error {
	if err := c.client.Client.Del(ctx, snapshotKey).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// AcquireArchiveLock ставит SET NX на ArchiveLockTTL. false — блокировку
// уже держит другой запрос.
func (c *CacheRepo) AcquireArchiveLock(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := c.client.Client.SetNX(ctx, archiveLockKey(id), time.Now().UTC().Format(time.RFC3339Nano), c.cfg.ArchiveLockTTL).Result()
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return ok, nil
}

func (c *CacheRepo) ReleaseArchiveLock(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Client.Del(ctx, archiveLockKey(id)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CacheRepo) unmarshalSnapshot(data []byte) ([]domain.CatalogItem, error) {
	var model converter.SnapshotRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	return c.conv.ToArrEntity(model.Items)
}

func archiveLockKey(id uuid.UUID) string {
	return fmt.Sprintf("%s%s", archiveLockPrefix, id)
}
