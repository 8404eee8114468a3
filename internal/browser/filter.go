package browser

import (
	"strings"

	"github.com/DRSN-tech/catalog-service/internal/domain"
)

// ByType оставляет позиции, подходящие под фильтр. Для FilterAll возвращает
// исходный срез без копирования.
func ByType(items []domain.CatalogItem, filter domain.TypeFilter) []domain.CatalogItem {
	if filter == domain.FilterAll {
		return items
	}

	out := make([]domain.CatalogItem, 0, len(items))
	for _, item := range items {
		if filter.Matches(item) {
			out = append(out, item)
		}
	}

	return out
}

// Search — регистронезависимый поиск подстроки по названию и описанию.
// Пустой запрос (или только пробелы) возвращает исходный срез.
func Search(items []domain.CatalogItem, query string) []domain.CatalogItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	out := make([]domain.CatalogItem, 0, len(items))
	for _, item := range items {
		if matches(item, q) {
			out = append(out, item)
		}
	}

	return out
}

func matches(item domain.CatalogItem, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(item.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(item.Description), lowerQuery)
}
