package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const DefaultTitle = "New Chat"

var titleQuoteStripper = strings.NewReplacer(`"`, "", "'", "")

type TitleService struct {
	ai     AIService
	logger *zap.Logger
}

func NewTitleService(ai AIService, logger *zap.Logger) *TitleService {
	return &TitleService{
		ai:     ai,
		logger: logger,
	}
}

// GenerateTitle asks the provider for a 4-5 word title for the first exchange.
// It never fails: any provider error yields DefaultTitle.
func (s *TitleService) GenerateTitle(ctx context.Context, firstUserMessage, firstAIMessage string) (title string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("title generation panicked", zap.Any("panic", r))
			title = DefaultTitle
		}
	}()

	raw, err := s.ai.Generate(ctx, buildTitlePrompt(firstUserMessage, firstAIMessage))
	if err != nil {
		s.logger.Error("title generation failed", zap.Error(fmt.Errorf("generate title: %w", err)))
		return DefaultTitle
	}
	return cleanTitle(raw)
}

// cleanTitle trims surrounding whitespace and then removes every quote. The
// order matters: whitespace inside removed quotes is kept.
func cleanTitle(raw string) string {
	return titleQuoteStripper.Replace(strings.TrimSpace(raw))
}
