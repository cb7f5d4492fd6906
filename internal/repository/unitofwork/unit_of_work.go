package unitofwork

import (
	"context"

	"med-voice-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatRoomRepository() contract.ChatRoomRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
