package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddonCategory — значение категории, которое отличает дополнение от обычной услуги.
const AddonCategory = "addon"

// CatalogItem описывает продаваемую позицию каталога: услугу, дополнение или пакет.
type CatalogItem struct {
	ID              uuid.UUID
	Name            string
	Description     string              // пустая строка — описания нет
	Price           decimal.NullDecimal // Valid=false — цена не задана
	DurationMinutes *int
	IsPackage       bool
	Category        string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// Kind классифицирует позицию. Пакет определяется только флагом IsPackage,
// категория учитывается лишь для позиций, не являющихся пакетом.
func (c CatalogItem) Kind() Kind {
	switch {
	case c.IsPackage:
		return KindPackage
	case c.Category == AddonCategory:
		return KindAddon
	default:
		return KindService
	}
}

func NewCatalogItem(id uuid.UUID, name string, category string, isPackage bool) *CatalogItem {
	return &CatalogItem{
		ID:        id,
		Name:      name,
		Category:  category,
		IsPackage: isPackage,
		IsActive:  true,
	}
}
