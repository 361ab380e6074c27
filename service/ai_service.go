package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tieubaoca/reporto-be/config"
	"github.com/tieubaoca/reporto-be/types"
)

// AIService is the remote generative-text provider used for chat replies and
// titles.
type AIService interface {
	// ChatStream sends prompt in streaming mode and calls handler for every
	// non-empty text chunk in arrival order.
	ChatStream(ctx context.Context, prompt string, handler types.StreamHandler) error
	// Generate sends prompt in single-shot mode and returns the full text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderConfig is the process-wide provider configuration built once at
// startup.
type ProviderConfig struct {
	Provider      string
	Model         string
	GoogleAPIKey  string
	OpenAIBaseURL string
	OpenAIAPIKey  string
}

func ProviderConfigFrom(cfg *config.Config) ProviderConfig {
	return ProviderConfig{
		Provider:      cfg.Provider,
		Model:         cfg.Model,
		GoogleAPIKey:  cfg.GoogleAPIKey,
		OpenAIBaseURL: cfg.OpenAI.BaseURL,
		OpenAIAPIKey:  cfg.OpenAI.APIKey,
	}
}

// NewAIService builds the configured provider. Client construction failures
// are logged and kept: the returned service reports them on every call so the
// server can still start.
func NewAIService(ctx context.Context, cfg ProviderConfig, logger *zap.Logger) AIService {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIService(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.Model)
	case config.ProviderGemini, "":
		svc, err := NewGeminiService(ctx, cfg.GoogleAPIKey, cfg.Model)
		if err != nil {
			logger.Error("Error configuring Gemini API", zap.Error(err))
			return &unavailableAIService{err: err}
		}
		logger.Info("Gemini API configured successfully", zap.String("model", cfg.Model))
		return svc
	default:
		err := fmt.Errorf("unknown provider %q", cfg.Provider)
		logger.Error("Error configuring AI provider", zap.Error(err))
		return &unavailableAIService{err: err}
	}
}

type unavailableAIService struct {
	err error
}

func (s *unavailableAIService) ChatStream(context.Context, string, types.StreamHandler) error {
	return fmt.Errorf("%w: %w", ErrProvider, s.err)
}

func (s *unavailableAIService) Generate(context.Context, string) (string, error) {
	return "", fmt.Errorf("%w: %w", ErrProvider, s.err)
}
