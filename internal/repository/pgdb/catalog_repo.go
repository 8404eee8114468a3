package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/tr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const catalogColumns = `
	id::text, name, description, price::text, duration_minutes,
	is_package, category, is_active, created_at, updated_at
`

// CatalogRepo реализует репозиторий каталога услуг поверх PostgreSQL.
type CatalogRepo struct {
	pool *pgxpool.Pool
	conv converter.CatalogItemConverter
}

func NewCatalogRepo(pool *pgxpool.Pool, conv converter.CatalogItemConverter) *CatalogRepo {
	return &CatalogRepo{
		pool: pool,
		conv: conv,
	}
}

// ListActive возвращает активные позиции: сначала услуги, затем пакеты,
// внутри группы по названию.
func (c *CatalogRepo) ListActive(ctx context.Context) ([]domain.CatalogItem, error) {
	query := `SELECT` + catalogColumns + `
		FROM services
		WHERE is_active
		ORDER BY is_package, name
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.CatalogItemModel, 0)
	for rows.Next() {
		model, err := scanCatalogItem(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	items, err := c.conv.ToArrEntity(models)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return items, nil
}

// GetByID возвращает позицию по id независимо от is_active.
func (c *CatalogRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CatalogItem, error) {
	query := `SELECT` + catalogColumns + `FROM services WHERE id = $1`

	model, err := scanCatalogItem(c.pool.QueryRow(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrItemNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	item, err := c.conv.ToEntity(model)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return item, nil
}

// Archive снимает позицию с продажи. Запись не удаляется. Повторная
// архивация уже архивной позиции не считается ошибкой.
func (c *CatalogRepo) Archive(ctx context.Context, id uuid.UUID) (*domain.CatalogItem, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE services
		SET is_active = false, updated_at = NOW()
		WHERE id = $1
		RETURNING` + catalogColumns

	model, err := scanCatalogItem(tx.QueryRow(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrItemNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	item, err := c.conv.ToEntity(model)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return item, nil
}

func scanCatalogItem(row pgx.Row) (*converter.CatalogItemModel, error) {
	var model converter.CatalogItemModel
	err := row.Scan(
		&model.ID, &model.Name, &model.Description, &model.Price, &model.DurationMinutes,
		&model.IsPackage, &model.Category, &model.IsActive, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}
