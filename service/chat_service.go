package service

import (
	"context"
	"errors"
	"iter"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/tieubaoca/reporto-be/types"
)

const ChatErrorMessage = "An error occurred with the AI service."

var errStreamStopped = errors.New("stream consumer stopped")

type ChatService struct {
	ai     AIService
	logger *zap.Logger
}

func NewChatService(ai AIService, logger *zap.Logger) *ChatService {
	return &ChatService{
		ai:     ai,
		logger: logger,
	}
}

// StreamChat returns a lazy, single-pass sequence of events for prompt. Each
// provider chunk becomes a content event; the sequence then ends with exactly
// one terminal event, either done or error. The provider call starts when the
// sequence is first ranged over; ranging over it again yields nothing. When
// the consumer stops early no further provider chunks are read.
func (s *ChatService) StreamChat(ctx context.Context, prompt string) iter.Seq[types.StreamEvent] {
	var used atomic.Bool
	return func(yield func(types.StreamEvent) bool) {
		if used.Swap(true) {
			return
		}

		stopped := false
		err := s.ai.ChatStream(ctx, prompt, func(chunk string) error {
			if stopped {
				return errStreamStopped
			}
			if chunk == "" {
				return nil
			}
			if !yield(types.ContentEvent(chunk)) {
				stopped = true
				return errStreamStopped
			}
			return nil
		})
		if stopped {
			s.logger.Debug("chat stream stopped by consumer")
			return
		}
		if err != nil {
			s.logger.Error("chat stream failed", zap.Error(err))
			yield(types.ErrorEvent(ChatErrorMessage))
			return
		}
		yield(types.DoneEvent())
	}
}
