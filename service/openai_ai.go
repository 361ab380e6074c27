package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"

	"github.com/tieubaoca/reporto-be/types"
)

// OpenAIService talks to any OpenAI-compatible chat completion endpoint.
type OpenAIService struct {
	client *openai.Client
	model  string
}

func NewOpenAIService(baseURL string, apiKey, model string) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIService{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (s *OpenAIService) request(prompt string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
}

func (s *OpenAIService) ChatStream(ctx context.Context, prompt string, handler types.StreamHandler) error {
	stream, err := s.client.CreateChatCompletionStream(ctx, s.request(prompt))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProvider, err)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrProvider, err)
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Delta.Content == "" {
			continue
		}
		if err := handler(resp.Choices[0].Delta.Content); err != nil {
			return err
		}
	}
}

func (s *OpenAIService) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, s.request(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProvider, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response generated", ErrProvider)
	}
	return resp.Choices[0].Message.Content, nil
}
