package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatRoomResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      *string    `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatRoomWithMessagesResponse struct {
	ChatRoomResponse
	Messages []ChatMessageResponse `json:"messages"`
}

type AddMessageRequest struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content" validate:"required"`
}
