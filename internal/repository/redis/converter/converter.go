package converter

import (
	"fmt"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CatalogItemConverter interface {
	ToRedisModel(entity *domain.CatalogItem) *CatalogItemRedisModel
	ToEntity(model *CatalogItemRedisModel) (*domain.CatalogItem, error)
	ToArrRedisModel(entities []domain.CatalogItem) []CatalogItemRedisModel
	ToArrEntity(models []CatalogItemRedisModel) ([]domain.CatalogItem, error)
}

type CatalogItemConverterImpl struct{}

func (CatalogItemConverterImpl) ToRedisModel(entity *domain.CatalogItem) *CatalogItemRedisModel {
	if entity == nil {
		return nil
	}

	var price *string
	if entity.Price.Valid {
		s := entity.Price.Decimal.String()
		price = &s
	}

	return &CatalogItemRedisModel{
		ID:              entity.ID.String(),
		Name:            entity.Name,
		Description:     entity.Description,
		Price:           price,
		DurationMinutes: entity.DurationMinutes,
		IsPackage:       entity.IsPackage,
		Category:        entity.Category,
		IsActive:        entity.IsActive,
		CreatedAt:       entity.CreatedAt,
		UpdatedAt:       entity.UpdatedAt,
	}
}

func (CatalogItemConverterImpl) ToEntity(model *CatalogItemRedisModel) (*domain.CatalogItem, error) {
	if model == nil {
		return nil, nil
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("cached item id %q: %w", model.ID, err)
	}

	var price decimal.NullDecimal
	if model.Price != nil {
		d, err := decimal.NewFromString(*model.Price)
		if err != nil {
			return nil, fmt.Errorf("cached price of %s: %w", model.ID, err)
		}
		price = decimal.NewNullDecimal(d)
	}

	return &domain.CatalogItem{
		ID:              id,
		Name:            model.Name,
		Description:     model.Description,
		Price:           price,
		DurationMinutes: model.DurationMinutes,
		IsPackage:       model.IsPackage,
		Category:        model.Category,
		IsActive:        model.IsActive,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}, nil
}

func (c CatalogItemConverterImpl) ToArrRedisModel(entities []domain.CatalogItem) []CatalogItemRedisModel {
	result := make([]CatalogItemRedisModel, 0, len(entities))
	for i := range entities {
		result = append(result, *c.ToRedisModel(&entities[i]))
	}

	return result
}

func (c CatalogItemConverterImpl) ToArrEntity(models []CatalogItemRedisModel) ([]domain.CatalogItem, error) {
	result := make([]domain.CatalogItem, 0, len(models))
	for i := range models {
		item, err := c.ToEntity(&models[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}

	return result, nil
}
