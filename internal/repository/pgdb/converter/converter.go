package converter

import (
	"fmt"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogItemConverter преобразует CatalogItem между domain и моделью PostgreSQL.
type CatalogItemConverter interface {
	ToEntity(model *CatalogItemModel) (*domain.CatalogItem, error)
	ToArrEntity(models []*CatalogItemModel) ([]domain.CatalogItem, error)
}

// OutboxEventConverter преобразует OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) (*usecase.OutboxEvent, error)
	ToArrEntity(models []*OutboxEventModel) ([]*usecase.OutboxEvent, error)
}

type CatalogItemConverterImpl struct{}

func (CatalogItemConverterImpl) ToEntity(model *CatalogItemModel) (*domain.CatalogItem, error) {
	if model == nil {
		return nil, nil
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("parse service id %q: %w", model.ID, err)
	}

	price, err := ConvertPrice(model.Price)
	if err != nil {
		return nil, fmt.Errorf("parse price of service %s: %w", model.ID, err)
	}

	return &domain.CatalogItem{
		ID:              id,
		Name:            model.Name,
		Description:     ConvertPointerString(model.Description),
		Price:           price,
		DurationMinutes: ConvertDuration(model.DurationMinutes),
		IsPackage:       model.IsPackage,
		Category:        ConvertPointerString(model.Category),
		IsActive:        model.IsActive,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}, nil
}

func (c CatalogItemConverterImpl) ToArrEntity(models []*CatalogItemModel) ([]domain.CatalogItem, error) {
	result := make([]domain.CatalogItem, 0, len(models))
	for _, model := range models {
		item, err := c.ToEntity(model)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}

	return result, nil
}

type OutboxEventConverterImpl struct{}

func (OutboxEventConverterImpl) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	if entity == nil {
		return nil
	}

	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID.String(),
		EventType:   string(entity.EventType),
		AggregateID: entity.AggregateID.String(),
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (OutboxEventConverterImpl) ToEntity(model *OutboxEventModel) (*usecase.OutboxEvent, error) {
	if model == nil {
		return nil, nil
	}

	eventID, err := uuid.Parse(model.EventID)
	if err != nil {
		return nil, fmt.Errorf("parse event id %q: %w", model.EventID, err)
	}

	aggregateID, err := uuid.Parse(model.AggregateID)
	if err != nil {
		return nil, fmt.Errorf("parse aggregate id %q: %w", model.AggregateID, err)
	}

	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     eventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		AggregateID: aggregateID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}, nil
}

func (c OutboxEventConverterImpl) ToArrEntity(models []*OutboxEventModel) ([]*usecase.OutboxEvent, error) {
	result := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		event, err := c.ToEntity(model)
		if err != nil {
			return nil, err
		}
		result = append(result, event)
	}

	return result, nil
}

func ConvertPointerString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// ConvertPrice: NULL -> невалидный NullDecimal.
func ConvertPrice(s *string) (decimal.NullDecimal, error) {
	if s == nil {
		return decimal.NullDecimal{}, nil
	}

	d, err := decimal.NewFromString(*s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}

	return decimal.NewNullDecimal(d), nil
}

func ConvertDuration(m *int32) *int {
	if m == nil {
		return nil
	}

	v := int(*m)
	return &v
}
