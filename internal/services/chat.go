package services

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const chatMaxOutputTokens = 256

// ChatService relays free-text messages to a generative-text provider and
// returns the reply verbatim. It is a pass-through: no conversation state is
// kept server-side.
type ChatService struct {
	client *openai.Client
}

func NewChatService(apiKey string) *ChatService {
	return &ChatService{
		client: openai.NewClient(apiKey),
	}
}

// Reply sends the message to the provider and returns its text completion.
func (s *ChatService) Reply(ctx context.Context, message string) (string, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: message,
				},
			},
			MaxTokens:   chatMaxOutputTokens,
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "No reply generated.", nil
	}

	return resp.Choices[0].Message.Content, nil
}
