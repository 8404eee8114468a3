package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/google/uuid"
)

type CatalogUC interface {
	List(ctx context.Context) ([]domain.CatalogItem, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.CatalogItem, error)
	Archive(ctx context.Context, id uuid.UUID, actor domain.Role) error
}
