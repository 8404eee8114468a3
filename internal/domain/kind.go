package domain

import (
	"strings"

	"github.com/DRSN-tech/catalog-service/pkg/e"
)

// Kind — одна из трёх взаимоисключающих категорий отображения.
type Kind string

const (
	KindService Kind = "service"
	KindAddon   Kind = "addon"
	KindPackage Kind = "package"
)

// Label возвращает подпись бейджа; у обычной услуги бейджа нет.
func (k Kind) Label() string {
	switch k {
	case KindPackage:
		return "Package"
	case KindAddon:
		return "Add-on"
	default:
		return ""
	}
}

// TypeFilter — фильтр списка по категории.
type TypeFilter string

const (
	FilterAll     TypeFilter = "all"
	FilterService TypeFilter = TypeFilter(KindService)
	FilterAddon   TypeFilter = TypeFilter(KindAddon)
	FilterPackage TypeFilter = TypeFilter(KindPackage)
)

type TypeFilterOption struct {
	Value TypeFilter
	Label string
}

// TypeFilterOptions перечисляет допустимые фильтры в порядке отображения.
var TypeFilterOptions = []TypeFilterOption{
	{Value: FilterAll, Label: "All"},
	{Value: FilterService, Label: "Services"},
	{Value: FilterAddon, Label: "Add-ons"},
	{Value: FilterPackage, Label: "Packages"},
}

// ParseTypeFilter разбирает значение фильтра. Допускаются только значения
// из TypeFilterOptions.
func ParseTypeFilter(s string) (TypeFilter, error) {
	s = strings.TrimSpace(s)
	for _, opt := range TypeFilterOptions {
		if string(opt.Value) == s {
			return opt.Value, nil
		}
	}

	return FilterAll, e.ErrUnknownTypeFilter
}

// Matches сообщает, проходит ли позиция фильтр.
func (f TypeFilter) Matches(item CatalogItem) bool {
	if f == FilterAll {
		return true
	}

	return Kind(f) == item.Kind()
}
