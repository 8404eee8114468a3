package converter

import "time"

// CatalogItemModel представляет запись таблицы services в PostgreSQL.
// id и price читаются как текст (id::text, price::text).
type CatalogItemModel struct {
	ID              string     `db:"id"`
	Name            string     `db:"name"`
	Description     *string    `db:"description"`
	Price           *string    `db:"price"`
	DurationMinutes *int32     `db:"duration_minutes"`
	IsPackage       bool       `db:"is_package"`
	Category        *string    `db:"category"`
	IsActive        bool       `db:"is_active"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	AggregateID string     `db:"aggregate_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
