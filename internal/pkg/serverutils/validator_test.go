package serverutils

import (
	"testing"

	"med-voice-be/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequestChatPayloads(t *testing.T) {
	tests := []struct {
		name    string
		req     interface{}
		wantErr bool
	}{
		{
			name: "valid chat request",
			req: dto.SendChatRequest{
				Messages: []dto.ChatMessageDTO{{Role: "user", Content: "سوال"}},
			},
			wantErr: false,
		},
		{
			name:    "empty message list",
			req:     dto.SendChatRequest{},
			wantErr: true,
		},
		{
			name: "unknown role",
			req: dto.SendChatRequest{
				Messages: []dto.ChatMessageDTO{{Role: "operator", Content: "x"}},
			},
			wantErr: true,
		},
		{
			name: "message without content",
			req: dto.SendChatRequest{
				Messages: []dto.ChatMessageDTO{{Role: "user"}},
			},
			wantErr: true,
		},
		{
			name:    "valid add message",
			req:     dto.AddMessageRequest{Role: "assistant", Content: "پاسخ"},
			wantErr: false,
		},
		{
			name:    "add message without role",
			req:     dto.AddMessageRequest{Content: "پاسخ"},
			wantErr: true,
		},
		{
			name:    "tts without text",
			req:     dto.SynthesizeRequest{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
