package contract

import (
	"context"
	"time"

	"med-voice-be/internal/entity"
	"med-voice-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatRoomRepository interface {
	Create(ctx context.Context, room *entity.ChatRoom) error
	// Rename overwrites the room name unconditionally and reports whether a
	// row was affected.
	Rename(ctx context.Context, id uuid.UUID, name string) (bool, error)
	// Touch advances updated_at so ListRooms keeps its most-recent-first
	// meaning when messages are appended.
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error
	// Delete soft-deletes the room and reports whether a row was affected.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatRoom, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatRoom, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
