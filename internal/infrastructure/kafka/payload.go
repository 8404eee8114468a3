package kafka

import (
	"time"

	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/jimlawless/whereami"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// PayloadEncoder сериализует события каталога в protobuf Struct.
type PayloadEncoder struct{}

func NewPayloadEncoder() *PayloadEncoder {
	return &PayloadEncoder{}
}

// EncodeArchived кодирует событие service.archived.
func (PayloadEncoder) EncodeArchived(event *usecase.ArchivedEvent) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"event_id":    event.EventID.String(),
		"event_type":  string(usecase.ServiceArchived),
		"occurred_at": event.ArchivedAt.Format(time.RFC3339Nano),
		"service_id":  event.ServiceID.String(),
		"name":        event.Name,
		"kind":        string(event.Kind),
		"actor_role":  string(event.Actor),
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	data, err := proto.Marshal(s)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}

// DecodePayload разбирает payload обратно в map. Нужен потребителям и тестам.
func DecodePayload(data []byte) (map[string]any, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.AsMap(), nil
}
