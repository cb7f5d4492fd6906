package contract

import (
	"context"

	"med-voice-be/internal/entity"
	"med-voice-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	// DeleteByChatRoomId soft-deletes every message of a room and returns
	// how many rows were affected.
	DeleteByChatRoomId(ctx context.Context, roomId uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
