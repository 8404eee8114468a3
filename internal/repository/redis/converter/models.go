package converter

import "time"

// CatalogItemRedisModel хранит позицию в кэше в виде JSON.
type CatalogItemRedisModel struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	Price           *string    `json:"price,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	IsPackage       bool       `json:"is_package"`
	Category        string     `json:"category,omitempty"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// SnapshotRedisModel хранит весь список каталога под одним ключом.
type SnapshotRedisModel struct {
	Items    []CatalogItemRedisModel `json:"items"`
	CachedAt time.Time               `json:"cached_at"`
}
