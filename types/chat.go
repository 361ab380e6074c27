package types

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single message in the conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message             string    `json:"message"`
	ContextText         *string   `json:"contextText"`
	ConversationHistory []Message `json:"conversationHistory"`
}

type TitleRequest struct {
	FirstUserMessage string `json:"firstUserMessage"`
	FirstAiMessage   string `json:"firstAiMessage"`
}

type TitleResponse struct {
	Title string `json:"title"`
}

// StreamHandler receives provider text chunks in arrival order. Returning an
// error stops the stream.
type StreamHandler func(chunk string) error
