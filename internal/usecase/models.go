package usecase

import (
	"time"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/google/uuid"
)

// OUTBOX

// OutboxStatus — статус события в таблице outbox_events.
type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	ServiceArchived OutboxEventType = "service.archived"
)

// OutboxEvent — событие, ожидающее публикации в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     uuid.UUID
	EventType   OutboxEventType
	AggregateID uuid.UUID // id услуги, ключ сообщения в Kafka
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// ArchivedEvent — содержимое события об архивации услуги.
type ArchivedEvent struct {
	EventID    uuid.UUID
	ServiceID  uuid.UUID
	Name       string
	Kind       domain.Kind
	Actor      domain.Role
	ArchivedAt time.Time
}

// INFRASTRUCTURE

// WriteRawMessageReq — уже сериализованное сообщение для Kafka.
type WriteRawMessageReq struct {
	Key     string
	Payload []byte
}

// MAPPERS

func NewOutboxEvent(eventID uuid.UUID, eventType OutboxEventType, aggregateID uuid.UUID, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:     eventID,
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     payload,
		Status:      Pending,
		CreatedAt:   time.Now().UTC(),
	}
}

func NewArchivedEvent(item *domain.CatalogItem, actor domain.Role, at time.Time) *ArchivedEvent {
	return &ArchivedEvent{
		EventID:    uuid.New(),
		ServiceID:  item.ID,
		Name:       item.Name,
		Kind:       item.Kind(),
		Actor:      actor,
		ArchivedAt: at.UTC(),
	}
}

func NewWriteRawMessageReq(key string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		Key:     key,
		Payload: payload,
	}
}
