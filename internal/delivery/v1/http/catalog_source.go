package http

import (
	"context"
	"time"

	"github.com/DRSN-tech/catalog-service/internal/browser"
	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/google/uuid"
)

// catalogSource связывает экран каталога с usecase от имени конкретного пользователя.
type catalogSource struct {
	uc             usecase.CatalogUC
	actor          domain.Role
	readTimeout    time.Duration
	archiveTimeout time.Duration
}

func (s *catalogSource) List(ctx context.Context) ([]domain.CatalogItem, error) {
	ctx, cancel := withOptionalTimeout(ctx, s.readTimeout)
	defer cancel()

	return s.uc.List(ctx)
}

func (s *catalogSource) Archive(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withOptionalTimeout(ctx, s.archiveTimeout)
	defer cancel()

	return s.uc.Archive(ctx, id, s.actor)
}

func withOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, d)
}

// applyListParams переносит параметры запроса в состояние экрана.
// Ошибка означает недопустимый фильтр типа; остальные параметры применены.
func applyListParams(b *browser.Browser, p listParams) error {
	b.SetQuery(p.Query)
	b.SetTableSearch(p.TableSearch)

	if !p.HasType {
		return nil
	}

	return b.SetTypeFilter(p.Type)
}
