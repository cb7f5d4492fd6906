package service

import (
	"context"
	"encoding/json"
	"time"

	"med-voice-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

const RoomActivityEventType = "ROOM_ACTIVITY"

// NewRoomActivityEvent marks a room as active at the given instant. Consumed
// by the activity pipeline to advance the room's updated_at.
func NewRoomActivityEvent(roomId uuid.UUID, occurredAt time.Time) events.Event {
	return events.BaseEvent{
		Type: RoomActivityEventType,
		Data: map[string]interface{}{
			"chat_room_id": roomId.String(),
		},
		OccurredAt: occurredAt,
	}
}

type IPublisherService interface {
	Publish(ctx context.Context, evt events.Event) error
}

type publisherService struct {
	topicName string
	pubSub    message.Publisher
}

func NewPublisherService(topicName string, pubSub message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (ps *publisherService) Publish(ctx context.Context, evt events.Event) error {
	payload, err := json.Marshal(events.BaseEvent{
		Type:       evt.EventType(),
		Data:       evt.Payload(),
		OccurredAt: evt.Timestamp(),
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return ps.pubSub.Publish(ps.topicName, msg)
}
