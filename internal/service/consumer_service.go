package service

import (
	"context"
	"encoding/json"

	"med-voice-be/internal/constant"

	"med-voice-be/internal/pkg/logger"
	"med-voice-be/internal/repository/unitofwork"
	"med-voice-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains room-activity events and bumps the room's
// updated_at, so the most-recent-first ordering of the history view stays
// meaningful without putting the write on the request path.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var evt events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.logger.Error(constant.ModuleActivity, "Failed to unmarshal event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payloads are not retriable
		return
	}

	if evt.Type != RoomActivityEventType {
		msg.Ack()
		return
	}

	roomIdStr, _ := evt.Data["chat_room_id"].(string)
	roomId, err := uuid.Parse(roomIdStr)
	if err != nil {
		cs.logger.Error(constant.ModuleActivity, "Event carries no valid room id", map[string]interface{}{"chat_room_id": roomIdStr})
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatRoomRepository().Touch(ctx, roomId, evt.OccurredAt); err != nil {
		cs.logger.Warn(constant.ModuleActivity, "Failed to touch room", map[string]interface{}{
			"chat_room_id": roomId.String(),
			"error":        err.Error(),
		})
		msg.Nack() // store hiccups are retriable
		return
	}

	msg.Ack()
}
