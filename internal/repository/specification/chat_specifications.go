package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByChatRoomID struct {
	ChatRoomID uuid.UUID
}

func (s ByChatRoomID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_room_id = ?", s.ChatRoomID)
}
