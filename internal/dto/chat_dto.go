package dto

import (
	"github.com/google/uuid"
)

type ChatMessageDTO struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content" validate:"required"`
}

type SendChatRequest struct {
	Messages []ChatMessageDTO `json:"messages" validate:"required,min=1,dive"`
	// LastResponse carries the previous assistant reply for continuity.
	LastResponse string `json:"lastResponse,omitempty"`
	// ChatRoomId is absent on the first turn of a conversation.
	ChatRoomId *uuid.UUID `json:"chatRoomId,omitempty"`
}

type SendChatResponse struct {
	Text       string    `json:"text"`
	ChatRoomId uuid.UUID `json:"chatRoomId"`
	// ChatRoomName is present only on the turn that produced it.
	ChatRoomName string `json:"chatRoomName,omitempty"`
}
