package openai

import (
	"context"
	"fmt"

	"med-voice-be/pkg/llm"

	openai "github.com/sashabaranov/go-openai"
)

// Provider implements llm.LLMProvider on top of the OpenAI chat completion
// API.
type Provider struct {
	client *openai.Client
	model  string
}

func NewProvider(apiKey, model string) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: api key is required")
	}
	return &Provider{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	opts := llm.Options{Model: p.model}
	for _, opt := range options {
		opt(&opts)
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, msg := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       opts.Model,
		Messages:    messages,
		Temperature: float32(opts.Temperature),
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	// An empty choice list is not an error at this layer; callers treat the
	// empty string as "no reply".
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
