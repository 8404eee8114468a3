package usecase

import "context"

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

type EventEncoder interface {
	EncodeArchived(event *ArchivedEvent) ([]byte, error)
}
