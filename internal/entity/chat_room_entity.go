package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatRoom struct {
	Id        uuid.UUID
	Name      *string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

// HasName reports whether auto-naming already ran for this room.
func (r *ChatRoom) HasName() bool {
	return r.Name != nil && *r.Name != ""
}
