package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/tieubaoca/reporto-be/types"
)

// chatSafetySettings turns off blocking for every adjustable harm category on
// chat replies. This is a product decision; changing it needs sign-off.
var chatSafetySettings = []*genai.SafetySetting{
	{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
	{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
	{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockNone},
	{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockNone},
}

type GeminiService struct {
	client     *genai.Client
	chatModel  *genai.GenerativeModel
	titleModel *genai.GenerativeModel
}

func NewGeminiService(ctx context.Context, apiKey string, modelName string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, errors.New("GOOGLE_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	chatModel := client.GenerativeModel(modelName)
	chatModel.SafetySettings = chatSafetySettings

	return &GeminiService{
		client:     client,
		chatModel:  chatModel,
		titleModel: client.GenerativeModel(modelName),
	}, nil
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}

func (s *GeminiService) ChatStream(ctx context.Context, prompt string, handler types.StreamHandler) error {
	iter := s.chatModel.GenerateContentStream(ctx, genai.Text(prompt))

	for {
		resp, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrProvider, err)
		}

		text := responseText(resp)
		if text == "" {
			continue
		}
		if err := handler(text); err != nil {
			return err
		}
	}
}

func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.titleModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProvider, err)
	}
	return generatedText(resp)
}

// generatedText rejects responses without any text part, e.g. a candidate
// stopped by safety filters.
func generatedText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no response generated", ErrProvider)
	}
	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("%w: response has no text", ErrProvider)
	}
	return text, nil
}

// ListModels returns the names of models supporting generateContent.
func (s *GeminiService) ListModels(ctx context.Context) ([]string, error) {
	var names []string
	iter := s.client.ListModels(ctx)
	for {
		m, err := iter.Next()
		if err == iterator.Done {
			return names, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrProvider, err)
		}
		for _, method := range m.SupportedGenerationMethods {
			if method == "generateContent" {
				names = append(names, m.Name)
				break
			}
		}
	}
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
